/*
Package order provides comparators and fixed-width codecs for payloads stored
in bstdict containers.

Containers store raw bytes and delegate every ordering decision to a
cell.Comparator. This package holds the comparators most clients need:
integers in fixed-width little-endian encoding, byte strings and text.
All integer comparators compare by explicit branches and never by
subtraction, so extreme values cannot overflow into a wrong sign.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package order

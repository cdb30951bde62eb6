/*
Command dictdump loads a YAML mapping into a bstdict dictionary and prints it.

Usage:

	dictdump [flags] [file.yaml]

Without a file argument the mapping is read from stdin. Pairs are inserted in
document order; a key appearing twice keeps its first value.

Flags:

	-keys string|int          key encoding and order (default string)
	-format list|dot|yaml|cbor
	                          output format (default list)
	-find key                 print only the value stored for key
	-color auto|always|never  colourize the listing (default auto)
	-trace error|info|debug   tracing level (default error)

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/bstdict"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer writes to trace with key 'bstdict'
func tracer() tracing.Trace {
	return tracing.Select("bstdict")
}

// options collects the command line settings.
type options struct {
	keys   string
	format string
	find   string
	color  string
	trace  string
	input  string
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain runs the command and returns its exit status, so deferred
// cleanup runs before the process exits.
func realMain(args []string) int {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return 2
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(opts.trace))

	in := io.Reader(os.Stdin)
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dictdump: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}
	return exitCode(run(opts, in, os.Stdout, consoleFromTerminal(opts.color)))
}

// exitCode reports err on stderr and maps it to the exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(os.Stderr, "dictdump: %v\n", err)
	if errors.Is(err, bstdict.ErrNotFound) {
		return 3
	}
	return 1
}

func parseFlags(args []string, errout io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("dictdump", flag.ContinueOnError)
	fs.SetOutput(errout)
	fs.StringVar(&opts.keys, "keys", "string", "key encoding and order: string|int")
	fs.StringVar(&opts.format, "format", "list", "output format: list|dot|yaml|cbor")
	fs.StringVar(&opts.find, "find", "", "print only the value stored for this key")
	fs.StringVar(&opts.color, "color", "auto", "colourize the listing: auto|always|never")
	fs.StringVar(&opts.trace, "trace", "error", "tracing level: error|info|debug")
	fs.Usage = func() {
		fmt.Fprintf(errout, "usage: dictdump [flags] [file.yaml]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		opts.input = fs.Arg(0)
	default:
		fs.Usage()
		return opts, fmt.Errorf("too many arguments")
	}
	return opts, nil
}

// run loads the input, writes the requested output and releases the dictionary.
func run(opts options, in io.Reader, out io.Writer, con *console) error {
	codec, err := codecFor(opts.keys)
	if err != nil {
		return err
	}
	pairs, err := readPairs(in)
	if err != nil {
		return err
	}
	dict, dropped, err := load(pairs, codec)
	if err != nil {
		return err
	}
	defer dict.Destroy()
	tracer().Infof("loaded %d entries, %d duplicates dropped", dict.Len(), dropped)

	if opts.find != "" {
		k, err := codec.encode(opts.find)
		if err != nil {
			return fmt.Errorf("invalid %s key %q: %w", codec.name, opts.find, err)
		}
		v, err := dict.Search(k)
		if err != nil {
			return fmt.Errorf("%q: %w", opts.find, err)
		}
		_, err = fmt.Fprintln(out, string(v))
		return err
	}
	switch opts.format {
	case "list":
		return con.list(out, dict, codec)
	case "dot":
		return dict.Dot(out, func(k, _ []byte) string { return codec.decode(k) })
	case "yaml":
		return exportYAML(out, dict, codec)
	case "cbor":
		return exportCBOR(out, dict, codec)
	}
	return fmt.Errorf("unknown output format %q", opts.format)
}

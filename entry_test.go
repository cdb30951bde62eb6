package bstdict

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/bstdict/cell"
	"github.com/npillmayer/bstdict/order"
)

func TestEntryLayout(t *testing.T) {
	e, err := MakeEntry([]byte("key"), []byte("value"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(e) != 1+3+5 {
		t.Fatalf("unexpected entry size %d", len(e))
	}
	k, v, err := e.Split()
	if err != nil || string(k) != "key" || string(v) != "value" {
		t.Fatalf("split returned %q, %q, %v", k, v, err)
	}
	long := []byte(strings.Repeat("k", 300))
	e, _ = MakeEntry(long, []byte{0})
	if string(e.Key()) != string(long) || len(e.Value()) != 1 {
		t.Fatalf("multi-byte length prefix not decoded correctly")
	}
}

func TestMakeEntryRejectsEmptyParts(t *testing.T) {
	if _, err := MakeEntry(nil, []byte("v")); !errors.Is(err, cell.ErrInvalidSize) {
		t.Errorf("expected cell.ErrInvalidSize for empty key, got %v", err)
	}
	if _, err := MakeEntry([]byte("k"), nil); !errors.Is(err, cell.ErrInvalidSize) {
		t.Errorf("expected cell.ErrInvalidSize for empty value, got %v", err)
	}
}

func TestMalformedEntry(t *testing.T) {
	for _, e := range []Entry{nil, {0x80}, {5, 'a'}} {
		if _, _, err := e.Split(); !errors.Is(err, ErrMalformedEntry) {
			t.Errorf("expected ErrMalformedEntry for %v, got %v", []byte(e), err)
		}
		if e.Key() != nil || e.Value() != nil {
			t.Errorf("expected nil parts for malformed entry %v", []byte(e))
		}
	}
}

func TestEntryComparatorIgnoresValue(t *testing.T) {
	cmp := entryComparator(order.Int32)
	a, _ := MakeEntry(order.PutInt32(3), []byte("zzz"))
	b, _ := MakeEntry(order.PutInt32(3), []byte("a"))
	c, _ := MakeEntry(order.PutInt32(-8), []byte("zzz"))
	if cmp(a, b) != 0 {
		t.Errorf("entries with equal keys must compare equal")
	}
	if cmp(c, a) >= 0 || cmp(a, c) <= 0 {
		t.Errorf("entries must order by key")
	}
	if cmp(encodeEntry(order.PutInt32(3), nil), a) != 0 {
		t.Errorf("search probe must match stored entry")
	}
}

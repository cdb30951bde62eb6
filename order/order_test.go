package order

import (
	"math"
	"testing"
)

func TestCompareDoesNotOverflow(t *testing.T) {
	small, large := PutInt32(math.MinInt32), PutInt32(math.MaxInt32)
	if Int32(small, large) >= 0 {
		t.Fatalf("expected MinInt32 < MaxInt32")
	}
	if Int32(large, small) <= 0 {
		t.Fatalf("expected MaxInt32 > MinInt32")
	}
	lo, hi := PutInt64(math.MinInt64), PutInt64(math.MaxInt64)
	if Int64(lo, hi) != -1 || Int64(hi, lo) != 1 || Int64(hi, hi) != 0 {
		t.Fatalf("int64 comparison wrong at the extremes")
	}
	if Uint64(PutUint64(0), PutUint64(math.MaxUint64)) != -1 {
		t.Fatalf("uint64 comparison wrong at the extremes")
	}
}

func TestCodecRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 500, math.MinInt32, math.MaxInt32} {
		if got := Int32Of(PutInt32(v)); got != v {
			t.Errorf("int32 round trip: got %d, want %d", got, v)
		}
	}
	for _, v := range []int64{0, -42, math.MinInt64, math.MaxInt64} {
		if got := Int64Of(PutInt64(v)); got != v {
			t.Errorf("int64 round trip: got %d, want %d", got, v)
		}
	}
	if got := Int32Of([]byte{7}); got != 7 {
		t.Errorf("expected short payload to be zero-extended, got %d", got)
	}
}

func TestTextAndBytes(t *testing.T) {
	if String([]byte("apple"), []byte("banana")) >= 0 {
		t.Errorf("expected apple < banana")
	}
	if Bytes([]byte{1, 2}, []byte{1, 2}) != 0 {
		t.Errorf("expected equal byte strings")
	}
	if Bytes([]byte{1, 2, 3}, []byte{1, 2}) <= 0 {
		t.Errorf("expected longer byte string to order after its prefix")
	}
}

func TestOrderedAndEqual(t *testing.T) {
	byLen := Ordered(func(b []byte) int { return len(b) })
	if byLen([]byte("aa"), []byte("b")) != 1 {
		t.Errorf("expected length comparator to order longer payload after")
	}
	eq := Equal(Int32)
	if !eq(PutInt32(5), PutInt32(5)) || eq(PutInt32(5), PutInt32(6)) {
		t.Errorf("Equal predicate does not follow comparator")
	}
}

package bstdict

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/bstdict/cell"
	"github.com/npillmayer/bstdict/order"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstdict")
	defer teardown()

	dict, err := New(order.Int32)
	require.NoError(t, err)
	for k := range int32(10) {
		ok, err := dict.Insert(order.PutInt32(k), order.PutInt32(k*100))
		require.NoError(t, err)
		require.True(t, ok)
	}
	v, err := dict.Search(order.PutInt32(5))
	require.NoError(t, err)
	assert.Equal(t, int32(500), order.Int32Of(v))

	_, err = dict.Search(order.PutInt32(42))
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, dict.Check())
}

func TestNewRejectsMissingComparator(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = NewWithConfig(Config{CompareKey: order.Bytes, MaxPayload: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRoundTripRandomPayloads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstdict")
	defer teardown()

	rnd := rand.New(rand.NewSource(1))
	dict, err := New(order.Bytes)
	require.NoError(t, err)
	randomBytes := func() []byte {
		b := make([]byte, 1+rnd.Intn(40))
		rnd.Read(b)
		return b
	}
	for range 300 {
		k, v := randomBytes(), randomBytes()
		existing, err := dict.Search(k)
		ok, insErr := dict.Insert(k, v)
		require.NoError(t, insErr)
		got, err2 := dict.Search(k)
		require.NoError(t, err2)
		if err == nil {
			assert.False(t, ok, "duplicate key must not be inserted")
			assert.Equal(t, existing, got)
		} else {
			assert.True(t, ok)
			assert.Equal(t, v, got)
		}
	}
	require.NoError(t, dict.Check())
}

func TestDuplicateKeyKeepsFirstValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstdict")
	defer teardown()

	dict, _ := New(order.String)
	ok, err := dict.Insert([]byte("lang"), []byte("Go"))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = dict.Insert([]byte("lang"), []byte("C"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, dict.Len())

	v, err := dict.Search([]byte("lang"))
	require.NoError(t, err)
	assert.Equal(t, "Go", string(v))

	var keys []string
	for k := range dict.Keys() {
		keys = append(keys, string(k))
	}
	assert.Equal(t, []string{"lang"}, keys, "duplicate must not be recorded as key")
}

func TestInsertCopiesCallerBuffers(t *testing.T) {
	dict, _ := New(order.String)
	key, value := []byte("k"), []byte("original")
	_, err := dict.Insert(key, value)
	require.NoError(t, err)
	copy(value, "mutated!")
	key[0] = 'x'
	v, err := dict.Search([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(v))
}

func TestInvalidSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstdict")
	defer teardown()

	dict, _ := New(order.Bytes)
	_, err := dict.Insert(nil, []byte("v"))
	assert.ErrorIs(t, err, cell.ErrInvalidSize)
	_, err = dict.Insert([]byte("k"), []byte{})
	assert.ErrorIs(t, err, cell.ErrInvalidSize)
	_, err = dict.Search(nil)
	assert.ErrorIs(t, err, cell.ErrInvalidSize)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, 0, dict.Len())
}

func TestPayloadLimit(t *testing.T) {
	dict, err := NewWithConfig(Config{CompareKey: order.Bytes, MaxPayload: 10})
	require.NoError(t, err)
	_, err = dict.Insert([]byte("key"), []byte("small"))
	require.NoError(t, err)
	_, err = dict.Insert([]byte("big"), []byte("far too large"))
	assert.ErrorIs(t, err, cell.ErrAllocationFailure)
	assert.Equal(t, 1, dict.Len())
	require.NoError(t, dict.Check())
}

func TestKeysAndAllOrders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstdict")
	defer teardown()

	dict, _ := New(order.String)
	for _, w := range []string{"pear", "apple", "fig", "banana"} {
		_, err := dict.Insert([]byte(w), []byte(strings.ToUpper(w)))
		require.NoError(t, err)
	}
	var inserted []string
	for k := range dict.Keys() {
		inserted = append(inserted, string(k))
	}
	assert.Equal(t, []string{"pear", "apple", "fig", "banana"}, inserted)

	var sorted, values []string
	for k, v := range dict.All() {
		sorted = append(sorted, string(k))
		values = append(values, string(v))
	}
	assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, sorted)
	assert.Equal(t, []string{"APPLE", "BANANA", "FIG", "PEAR"}, values)

	n := 0
	for range dict.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestDestroy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstdict")
	defer teardown()

	dict, _ := New(order.Int64)
	for i := range int64(50) {
		dict.Insert(order.PutInt64(i*7%50), order.PutInt64(i))
	}
	require.Equal(t, 50, dict.Len())
	dict.Destroy()
	assert.Equal(t, 0, dict.Len())
	assert.Equal(t, 0, dict.Height())
	require.NoError(t, dict.Check())
	_, err := dict.Search(order.PutInt64(3))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDot(t *testing.T) {
	dict, _ := New(order.String)
	for _, w := range []string{"m", "c", "x"} {
		dict.Insert([]byte(w), []byte("v-"+w))
	}
	var buf bytes.Buffer
	require.NoError(t, dict.Dot(&buf, nil))
	out := buf.String()
	for _, w := range []string{"m", "c", "x"} {
		assert.Contains(t, out, `label="\"`+w+`\""`)
	}
	buf.Reset()
	require.NoError(t, dict.Dot(&buf, func(_, v []byte) string { return string(v) }))
	assert.Contains(t, buf.String(), `label="v-m"`)
}

package main

import (
	"io"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/npillmayer/bstdict"
	"gopkg.in/yaml.v3"
)

// exportYAML writes the entries as a YAML mapping in key order.
func exportYAML(w io.Writer, dict *bstdict.Dictionary, codec keyCodec) error {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for k, v := range dict.All() {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: codec.tag, Value: codec.decode(k)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v)},
		)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}

// cborEntry is the CBOR shape of one entry: a two-element array [key, value].
type cborEntry struct {
	_     struct{} `cbor:",toarray"`
	Key   any
	Value []byte
}

// exportCBOR writes the entries as a deterministic CBOR array in key order.
// Integer keys are encoded as CBOR integers, all other keys as text.
func exportCBOR(w io.Writer, dict *bstdict.Dictionary, codec keyCodec) error {
	entries := make([]cborEntry, 0, dict.Len())
	for k, v := range dict.All() {
		var key any = codec.decode(k)
		if codec.name == intKeys.name {
			n, err := strconv.ParseInt(codec.decode(k), 10, 64)
			if err != nil {
				return err
			}
			key = n
		}
		entries = append(entries, cborEntry{Key: key, Value: v})
	}
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	data, err := em.Marshal(entries)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/bstdict"
	"github.com/npillmayer/bstdict/cell"
	"github.com/npillmayer/bstdict/order"
	"gopkg.in/yaml.v3"
)

// keyCodec translates between the textual keys of the input document and
// dictionary key payloads.
type keyCodec struct {
	name    string
	compare cell.Comparator
	encode  func(string) ([]byte, error)
	decode  func([]byte) string
	tag     string // YAML tag used on export
}

var stringKeys = keyCodec{
	name:    "string",
	compare: order.String,
	encode: func(s string) ([]byte, error) {
		return []byte(s), nil
	},
	decode: func(b []byte) string { return string(b) },
	tag:    "!!str",
}

var intKeys = keyCodec{
	name:    "int",
	compare: order.Int64,
	encode: func(s string) ([]byte, error) {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
		if err != nil {
			return nil, err
		}
		return order.PutInt64(v), nil
	},
	decode: func(b []byte) string { return strconv.FormatInt(order.Int64Of(b), 10) },
	tag:    "!!int",
}

func codecFor(name string) (keyCodec, error) {
	switch name {
	case "string", "str":
		return stringKeys, nil
	case "int", "integer":
		return intKeys, nil
	}
	return keyCodec{}, fmt.Errorf("unknown key type %q", name)
}

// pair is a key/value pair in document order.
type pair struct {
	key   string
	value string
	line  int
}

// readPairs decodes a YAML mapping and returns its pairs in document order.
// Scalar values are taken literally, nested values are kept as YAML text.
func readPairs(r io.Reader) ([]pair, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot parse input: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("input must be a mapping, line %d", root.Line)
	}
	pairs := make([]pair, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: keys must be scalars", k.Line)
		}
		value := v.Value
		if v.Kind != yaml.ScalarNode {
			out, err := yaml.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", v.Line, err)
			}
			value = strings.TrimRight(string(out), "\n")
		}
		pairs = append(pairs, pair{key: k.Value, value: value, line: k.Line})
	}
	return pairs, nil
}

// load inserts pairs into a fresh dictionary. Later duplicates of a key are
// dropped, as the dictionary keeps the first value.
func load(pairs []pair, codec keyCodec) (*bstdict.Dictionary, int, error) {
	dict, err := bstdict.New(codec.compare)
	if err != nil {
		return nil, 0, err
	}
	dropped := 0
	for _, p := range pairs {
		k, err := codec.encode(p.key)
		if err != nil {
			dict.Destroy()
			return nil, 0, fmt.Errorf("line %d: invalid %s key %q: %w", p.line, codec.name, p.key, err)
		}
		ok, err := dict.Insert(k, []byte(p.value))
		if err != nil {
			dict.Destroy()
			return nil, 0, fmt.Errorf("line %d: key %q: %w", p.line, p.key, err)
		}
		if !ok {
			tracer().Infof("line %d: duplicate key %q ignored", p.line, p.key)
			dropped++
		}
	}
	return dict, dropped, nil
}

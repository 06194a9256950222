package shape

import (
	"bytes"
	"encoding/json"
	"iter"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field is a single key-value pair of a [Record].
type Field struct {
	Key   string
	Value any
}

// Record is a JSON object that remembers the order its keys were first set.
// Values are *Record, []any, string, json.Number, bool, or nil when produced by
// [Decode]; flattened records hold no *Record or []any values.
type Record struct {
	keys []string
	vals map[string]any
}

// NewRecord returns a record holding fields in the given order.
func NewRecord(fields ...Field) *Record {
	r := &Record{vals: make(map[string]any, len(fields))}
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

// Set stores v under key. An existing key keeps its position.
func (r *Record) Set(key string, v any) {
	if r.vals == nil {
		r.vals = make(map[string]any)
	}
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = v
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.vals[key]
	return v, ok
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns a copy of the keys in order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Fields returns the key-value pairs in order.
func (r *Record) Fields() []Field {
	out := make([]Field, 0, r.Len())
	for k, v := range r.All() {
		out = append(out, Field{Key: k, Value: v})
	}
	return out
}

// All iterates over the key-value pairs in order.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if r == nil {
			return
		}
		for _, k := range r.keys {
			if !yield(k, r.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of r.
func (r *Record) Clone() *Record {
	return NewRecord(r.Fields()...)
}

// MarshalJSON encodes r as a JSON object with keys in order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range r.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		kb, err := marshalJSON(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := marshalJSON(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes r as a YAML mapping with keys in order.
func (r *Record) MarshalYAML() (any, error) {
	return yamlNode(r)
}

// marshalJSON encodes v without HTML escaping or a trailing newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func yamlNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *Record:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, val := range t.All() {
			child, err := yamlNode(val)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
			node.Content = append(node.Content, key, child)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, val := range t {
			child, err := yamlNode(val)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(string(t), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(t)}, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}
}

package shape

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
)

// Decode parses JSON text into ordered values. Objects become *Record, arrays
// become []any, and numbers keep their original text as json.Number.
func Decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrDecode)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		r := NewRecord()
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", kt)
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			r.Set(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return r, nil
	case '[':
		list := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", rune(d))
	}
}

// normalize converts already-decoded Go values into the ordered model. Keys of
// maps are sorted since their insertion order is lost. Any map becomes a
// *Record and any slice or array becomes []any.
func normalize(v any) any {
	switch t := v.(type) {
	case *Record:
		out := NewRecord()
		for k, val := range t.All() {
			out.Set(k, normalize(val))
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out := NewRecord()
		for _, k := range keys {
			out.Set(k, normalize(t[k]))
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case []*Record:
		out := make([]any, len(t))
		for i, r := range t {
			out[i] = normalize(r)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = normalize(m)
		}
		return out
	case json.RawMessage:
		if d, err := Decode(t); err == nil {
			return d
		}
		return string(t)
	case []byte:
		return string(t)
	default:
		return normalizeValue(reflect.ValueOf(v))
	}
}

// normalizeValue covers typed containers such as []string or
// map[string]float64. Other values are returned as is.
func normalizeValue(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		vals := make(map[string]reflect.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := mapKey(iter.Key())
			keys = append(keys, k)
			vals[k] = iter.Value()
		}
		slices.Sort(keys)
		out := NewRecord()
		for _, k := range keys {
			out.Set(k, normalize(vals[k].Interface()))
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Invalid:
		return nil
	default:
		return rv.Interface()
	}
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

// load turns caller input into the ordered model, decoding textual JSON.
func load(input any) (any, error) {
	switch t := input.(type) {
	case []byte:
		return Decode(t)
	case json.RawMessage:
		return Decode(t)
	case string:
		return Decode([]byte(t))
	default:
		return normalize(input), nil
	}
}

package shape

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Separator joins the keys of nested objects in flattened records.
const Separator = "_"

// Flatten collapses nested records into a single level. The key of a nested
// value is the path of keys joined with [Separator]. Arrays are not expanded;
// they are stored as text, e.g. [1, 2] or ["a", "b"].
func Flatten(r *Record) *Record {
	out := NewRecord()
	flattenInto(out, r, "")
	return out
}

func flattenInto(out, r *Record, prefix string) {
	for k, v := range r.All() {
		key := k
		if prefix != "" {
			key = prefix + Separator + k
		}
		switch t := v.(type) {
		case *Record:
			flattenInto(out, t, key)
		case []any:
			out.Set(key, listText(t))
		default:
			out.Set(key, v)
		}
	}
}

// listText renders an array with ", " between elements and ": " after keys.
func listText(list []any) string {
	var sb strings.Builder
	writeText(&sb, list)
	return sb.String()
}

func writeText(sb *strings.Builder, v any) {
	switch t := v.(type) {
	case []any:
		sb.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeText(sb, e)
		}
		sb.WriteByte(']')
	case *Record:
		sb.WriteByte('{')
		i := 0
		for k, e := range t.All() {
			if i > 0 {
				sb.WriteString(", ")
			}
			i++
			sb.WriteString(strconv.Quote(k))
			sb.WriteString(": ")
			writeText(sb, e)
		}
		sb.WriteByte('}')
	case string:
		sb.WriteString(strconv.Quote(t))
	case nil:
		sb.WriteString("null")
	default:
		sb.WriteString(cellText(t))
	}
}

// cellText renders a flattened value for text formats.
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case []any:
		return listText(t)
	case *Record:
		var sb strings.Builder
		writeText(&sb, t)
		return sb.String()
	default:
		return fmt.Sprint(t)
	}
}

package shape

import (
	"encoding/json"
	"io"
	"strings"
)

func writeJSON(w io.Writer, records []*Record) error {
	if records == nil {
		records = []*Record{}
	}
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return err
	}
	_, err := io.WriteString(w, strings.TrimSuffix(sb.String(), "\n"))
	return err
}

// writeCompact writes the first record, or {} when there is none, without
// any whitespace.
func writeCompact(w io.Writer, records []*Record) error {
	r := NewRecord()
	if len(records) > 0 {
		r = records[0]
	}
	data, err := marshalJSON(r)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

package shape

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, records []*Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

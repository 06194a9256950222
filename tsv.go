package shape

import (
	"fmt"
	"io"
	"strings"
)

var tsvEscaper = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

func writeTSV(w io.Writer, records []*Record) error {
	if len(records) == 0 {
		return nil
	}
	cols := columns(records)
	if err := writeTSVRow(w, cols); err != nil {
		return err
	}
	for _, row := range rows(records, cols) {
		if err := writeTSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// writeTSVRow replaces tabs and line breaks inside cells with spaces.
func writeTSVRow(w io.Writer, cells []string) error {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = tsvEscaper.Replace(c)
	}
	_, err := fmt.Fprintln(w, strings.Join(escaped, "\t"))
	return err
}

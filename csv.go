package shape

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, records []*Record) error {
	if len(records) == 0 {
		return nil
	}
	cols := columns(records)
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}
	for _, row := range rows(records, cols) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

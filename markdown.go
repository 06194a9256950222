package shape

import (
	"fmt"
	"io"
	"strings"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")

func writeMarkdown(w io.Writer, records []*Record) error {
	if len(records) == 0 {
		return nil
	}
	cols := columns(records)
	header := escapeMarkdown(cols)
	body := rows(records, cols)
	for i, row := range body {
		body[i] = escapeMarkdown(row)
	}

	// Minimum width 3 so the separator row is valid.
	widths := cellWidths(header, body)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range body {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = padCell(cells[i], width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapeMarkdown(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markdownEscaper.Replace(c)
	}
	return out
}

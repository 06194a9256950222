package shape

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderASCII                      // +-+|
	BorderNone                       // No borders, space-separated columns
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"ascii":   BorderASCII,
	"none":    BorderNone,
}

// ParseBorder parses a border style name. The empty string means
// [BorderRounded].
func ParseBorder(s string) (BorderStyle, error) {
	if s == "" {
		return BorderRounded, nil
	}
	if b, ok := borderNames[s]; ok {
		return b, nil
	}
	return BorderRounded, fmt.Errorf("unknown border style %q", s)
}

type borderChars struct {
	topLeft, topMid, topRight          string
	midLeft, midMid, midRight          string
	bottomLeft, bottomMid, bottomRight string
	horizontal, vertical               string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topMid: "┬", topRight: "╮",
		midLeft: "├", midMid: "┼", midRight: "┤",
		bottomLeft: "╰", bottomMid: "┴", bottomRight: "╯",
		horizontal: "─", vertical: "│",
	},
	BorderASCII: {
		topLeft: "+", topMid: "+", topRight: "+",
		midLeft: "+", midMid: "+", midRight: "+",
		bottomLeft: "+", bottomMid: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
	},
}

func writeTable(w io.Writer, records []*Record, border BorderStyle) error {
	if len(records) == 0 {
		return nil
	}
	header := columns(records)
	body := rows(records, header)
	widths := cellWidths(header, body)

	bc, ok := borderSets[border]
	if !ok {
		return writePlainTable(w, header, body, widths)
	}
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topMid, bc.topRight); err != nil {
		return err
	}
	if err := drawRow(w, header, widths, bc.vertical); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.midLeft, bc.horizontal, bc.midMid, bc.midRight); err != nil {
		return err
	}
	for _, row := range body {
		if err := drawRow(w, row, widths, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomMid, bc.bottomRight)
}

func writePlainTable(w io.Writer, header []string, body [][]string, widths []int) error {
	if err := writePlainRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
		return err
	}
	for _, row := range body {
		if err := writePlainRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = padCell(cells[i], width)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

// cellWidths returns the display width of each column.
func cellWidths(header []string, body [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range body {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	return widths
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		if i > 0 {
			sb.WriteString(mid)
		}
		sb.WriteString(strings.Repeat(fill, width+2))
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(padCell(cells[i], width))
		sb.WriteString(" ")
		sb.WriteString(vert)
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// padCell left-aligns s within width display columns.
func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

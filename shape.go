package shape

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrDecode           = errors.New("invalid JSON input")
	ErrUnknownPreset    = errors.New("unknown preset")
	ErrInvalidFormat    = errors.New("invalid output_format")
	ErrInvalidAggregate = errors.New("invalid aggregate")
)

// Format represents an output format.
type Format string

const (
	CSV      Format = "csv"
	JSON     Format = "json"
	Compact  Format = "compact"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	TSV      Format = "tsv"
	Table    Format = "table"
	Markdown Format = "markdown"
)

var formats = []Format{CSV, JSON, Compact, JSONL, YAML, TSV, Table, Markdown}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name. The empty string means [CSV].
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return CSV, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidFormat, s, strings.Join(names, ", "))
}

// Options configures a single shaping call. The zero value renders every
// flattened field as CSV.
type Options struct {
	// Fields lists the fields to keep. Entries may reference a preset with
	// "preset:<name>".
	Fields []string
	// Exclude lists flattened keys to drop. Only consulted when Fields is empty.
	Exclude []string
	// Format selects the output format. Empty means CSV.
	Format Format
	// Aggregate keeps only the first or last record.
	Aggregate Aggregate
	// Match selects how Fields are matched against flattened keys.
	Match Match
	// Border sets the border style of the Table format.
	Border BorderStyle
}

// Requested reports whether any filtering, formatting, or aggregation was
// asked for.
func (o Options) Requested() bool {
	return len(o.Fields) > 0 || len(o.Exclude) > 0 || o.Aggregate != AggregateNone ||
		(o.Format != "" && o.Format != CSV)
}

// resolve validates the options and expands presets.
func (o Options) resolve() (Options, error) {
	f, err := ParseFormat(string(o.Format))
	if err != nil {
		return o, err
	}
	a, err := ParseAggregate(string(o.Aggregate))
	if err != nil {
		return o, err
	}
	o.Format, o.Aggregate = f, a
	if len(o.Fields) > 0 {
		if o.Fields, err = ExpandFields(o.Fields); err != nil {
			return o, err
		}
	}
	return o, nil
}

// Write shapes input and writes the result to w. Input is JSON text ([]byte,
// string, or json.RawMessage) or an already decoded value.
func Write(w io.Writer, input any, opts Options) error {
	opts, err := opts.resolve()
	if err != nil {
		return err
	}
	records, err := shape(input, opts)
	if err != nil {
		return err
	}
	return Render(w, records, opts.Format, opts.Border)
}

// Marshal shapes input and returns the bytes.
func Marshal(input any, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, input, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Apply shapes input and returns the result as a string.
func Apply(input any, opts Options) (string, error) {
	data, err := Marshal(input, opts)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// shape runs the record pipeline on resolved options.
func shape(input any, opts Options) ([]*Record, error) {
	v, err := load(input)
	if err != nil {
		return nil, err
	}
	if !opts.Requested() {
		return flattenAll(Extract(v)), nil
	}
	records := flattenAll(Extract(Reduce(v, opts.Aggregate)))
	records = Select(records, opts.Fields, opts.Exclude, opts.Match)
	if len(opts.Fields) == 1 && opts.Match == MatchSuffix {
		records = Dedupe(records, opts.Fields[0])
	}
	return records, nil
}

func flattenAll(records []*Record) []*Record {
	out := make([]*Record, len(records))
	for i, r := range records {
		out[i] = Flatten(r)
	}
	return out
}

// Render writes records in format f. The border applies to [Table] only.
func Render(w io.Writer, records []*Record, f Format, border BorderStyle) error {
	switch f {
	case CSV, "":
		return writeCSV(w, records)
	case JSON:
		return writeJSON(w, records)
	case Compact:
		return writeCompact(w, records)
	case JSONL:
		return writeJSONL(w, records)
	case YAML:
		return writeYAML(w, records)
	case TSV:
		return writeTSV(w, records)
	case Table:
		return writeTable(w, records, border)
	case Markdown:
		return writeMarkdown(w, records)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, f)
	}
}

// columns returns the union of record keys in first-seen order.
func columns(records []*Record) []string {
	var cols []string
	seen := make(map[string]bool)
	for _, r := range records {
		for k := range r.All() {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	return cols
}

// rows renders each record as cells aligned to cols.
func rows(records []*Record, cols []string) [][]string {
	out := make([][]string, len(records))
	for i, r := range records {
		row := make([]string, len(cols))
		for j, c := range cols {
			if v, ok := r.Get(c); ok {
				row[j] = cellText(v)
			}
		}
		out[i] = row
	}
	return out
}

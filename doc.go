// Package shape reduces market-data API responses to the fields a caller
// actually needs and renders them as CSV, JSON, or compact JSON.
//
// The central entry points are [Apply], [Write], and [Marshal]. They accept a
// raw response (JSON text or an already decoded value) and [Options]:
//
//	out, err := shape.Apply(body, shape.Options{
//		Fields:    []string{"close"},
//		Format:    shape.Compact,
//		Aggregate: shape.AggregateLast,
//	})
//	// out == `{"close":185.92}`
//
// # Pipeline
//
// Every call runs the same stages in order:
//
//   - [Decode] parses JSON into ordered values ([Record], []any, json.Number).
//   - [Reduce] keeps the first or last record when [Options.Aggregate] is set.
//   - [Extract] finds the records: the "results" array of an envelope, a bare
//     array, or a single object.
//   - [Flatten] joins nested keys with "_" (day.close becomes day_close).
//   - [Select] keeps [Options.Fields] or drops [Options.Exclude].
//   - [Dedupe] collapses single-field results to distinct values.
//   - [Render] writes the records in [Options.Format].
//
// With zero Options the output is the plain flattened CSV of every record.
//
// # Field Selection
//
// A requested field matches a flattened key exactly, or else the first key
// ending in "_<name>" or ".<name>", so "close" finds "day_close". The value is
// stored under the requested name. Records without any requested field are
// dropped. Set [Options.Match] to [MatchExact] for literal matching only.
//
// Presets stand in for common field lists:
//
//	shape.Options{Fields: []string{"preset:ohlc"}}
//
// See [Presets] for the names and [Preset] for their fields.
//
// # Formats
//
// [CSV], [JSON], and [Compact] are the primary formats. [JSONL], [YAML], [TSV],
// [Table], and [Markdown] render the same records and columns. Use
// [ParseFormat] to convert a parameter string into a [Format].
//
// # Parameters
//
// [ParseParams] turns string parameters, such as those of a tool call, into
// Options. It splits comma-separated field lists, expands presets, and
// validates the format and aggregate before any data is read.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrDecode]: input is not valid JSON
//   - [ErrUnknownPreset]: a "preset:<name>" reference has no preset
//   - [ErrInvalidFormat]: unknown output format
//   - [ErrInvalidAggregate]: aggregate other than "first" or "last"
//
// Missing fields and empty results are not errors; they produce partial or
// empty output.
package shape

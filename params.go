package shape

import "strings"

// Params is the caller-facing filter configuration as plain strings, e.g.
// request parameters of a tool call.
type Params struct {
	// Fields entries may hold comma-separated names and preset references.
	Fields []string
	// Exclude entries may hold comma-separated names.
	Exclude []string
	// Format is "csv" (default), "json", "compact", or another [Format].
	Format string
	// Aggregate is "first", "last", or empty.
	Aggregate string
	// Exact disables suffix matching and deduplication.
	Exact bool
}

// ParseParams validates p and returns the equivalent [Options] with presets
// expanded. It fails before any data is touched.
func ParseParams(p Params) (Options, error) {
	opts := Options{
		Fields:    SplitFields(p.Fields...),
		Exclude:   SplitFields(p.Exclude...),
		Format:    Format(p.Format),
		Aggregate: Aggregate(p.Aggregate),
	}
	if p.Exact {
		opts.Match = MatchExact
	}
	return opts.resolve()
}

// SplitFields splits comma-separated entries and trims spaces. Empty names
// are dropped. It returns nil when no name remains.
func SplitFields(entries ...string) []string {
	var out []string
	for _, e := range entries {
		for name := range strings.SplitSeq(e, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

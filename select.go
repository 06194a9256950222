package shape

import "strings"

// Match controls how requested field names are matched against flattened keys.
type Match int

const (
	// MatchSuffix tries the exact key first, then the first key ending in
	// "_<name>" or ".<name>". Values are stored under the requested name and
	// records without any match are dropped.
	MatchSuffix Match = iota
	// MatchExact keeps the keys that equal a requested name, in record order.
	// Records are never dropped and single-field results are not deduplicated.
	MatchExact
)

// Select keeps the requested fields of each record. When fields is empty,
// keys equal to an entry of exclude are removed instead. With neither, the
// records are returned as is.
func Select(records []*Record, fields, exclude []string, m Match) []*Record {
	switch {
	case len(fields) > 0 && m == MatchExact:
		return selectExact(records, fields)
	case len(fields) > 0:
		return selectSuffix(records, fields)
	case len(exclude) > 0:
		return selectExclude(records, exclude)
	default:
		return records
	}
}

func selectSuffix(records []*Record, fields []string) []*Record {
	out := make([]*Record, 0, len(records))
	for _, r := range records {
		picked := NewRecord()
		for _, f := range fields {
			if v, ok := lookup(r, f); ok {
				picked.Set(f, v)
			}
		}
		if picked.Len() > 0 {
			out = append(out, picked)
		}
	}
	return out
}

// lookup finds field in r by exact key, then by suffix in key order.
func lookup(r *Record, field string) (any, bool) {
	if v, ok := r.Get(field); ok {
		return v, true
	}
	underscore, dot := Separator+field, "."+field
	for k, v := range r.All() {
		if strings.HasSuffix(k, underscore) || strings.HasSuffix(k, dot) {
			return v, true
		}
	}
	return nil, false
}

func selectExact(records []*Record, fields []string) []*Record {
	want := toSet(fields)
	out := make([]*Record, 0, len(records))
	for _, r := range records {
		picked := NewRecord()
		for k, v := range r.All() {
			if want[k] {
				picked.Set(k, v)
			}
		}
		out = append(out, picked)
	}
	return out
}

func selectExclude(records []*Record, exclude []string) []*Record {
	drop := toSet(exclude)
	out := make([]*Record, 0, len(records))
	for _, r := range records {
		kept := NewRecord()
		for k, v := range r.All() {
			if !drop[k] {
				kept.Set(k, v)
			}
		}
		out = append(out, kept)
	}
	return out
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

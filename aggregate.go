package shape

import "fmt"

// Aggregate reduces a multi-record response to a single record.
type Aggregate string

const (
	AggregateNone  Aggregate = ""
	AggregateFirst Aggregate = "first"
	AggregateLast  Aggregate = "last"
)

// String returns the aggregate name.
func (a Aggregate) String() string { return string(a) }

// ParseAggregate parses an aggregate name. The empty string means no
// aggregation.
func ParseAggregate(s string) (Aggregate, error) {
	switch a := Aggregate(s); a {
	case AggregateNone, AggregateFirst, AggregateLast:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidAggregate, s, AggregateFirst, AggregateLast)
	}
}

// Reduce keeps the first or last record of a decoded response, preserving its
// shape: an envelope keeps its other keys with a one-element results array,
// and a bare array becomes a one-element array. Empty sequences and single
// records are returned unchanged. v is not modified.
func Reduce(v any, a Aggregate) any {
	if a == AggregateNone {
		return v
	}
	switch t := v.(type) {
	case *Record:
		results, ok := t.Get(ResultsKey)
		if !ok {
			return v
		}
		list, ok := results.([]any)
		if !ok || len(list) == 0 {
			return v
		}
		out := t.Clone()
		out.Set(ResultsKey, []any{pick(list, a)})
		return out
	case []any:
		if len(t) == 0 {
			return v
		}
		return []any{pick(t, a)}
	default:
		return v
	}
}

func pick(list []any, a Aggregate) any {
	if a == AggregateLast {
		return list[len(list)-1]
	}
	return list[0]
}

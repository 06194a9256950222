package shape

// ResultsKey is the envelope key that holds the record sequence.
const ResultsKey = "results"

// valueKey names the single field of a record wrapped around a non-object element.
const valueKey = "value"

// Extract returns the records of a decoded response. An envelope yields its
// results, a bare array yields its elements, and any other value is a single
// record. Elements that are not objects are wrapped as {"value": element}.
func Extract(v any) []*Record {
	var elems []any
	switch t := v.(type) {
	case *Record:
		if results, ok := t.Get(ResultsKey); ok {
			elems = resultElems(results)
		} else {
			elems = []any{t}
		}
	case []any:
		elems = t
	default:
		elems = []any{t}
	}

	records := make([]*Record, 0, len(elems))
	for _, e := range elems {
		records = append(records, asRecord(e))
	}
	return records
}

func resultElems(results any) []any {
	switch t := results.(type) {
	case []any:
		return t
	case nil:
		return nil
	default:
		return []any{t}
	}
}

func asRecord(v any) *Record {
	if r, ok := v.(*Record); ok && r != nil {
		return r
	}
	return NewRecord(Field{Key: valueKey, Value: v})
}

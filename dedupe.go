package shape

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
)

// Dedupe collapses records to the distinct values of field, in first-seen
// order. Numbers compare by value, so 1, 1.0 and 1e0 are one value. The
// records are returned unchanged when there are fewer than two or when no
// value repeats.
func Dedupe(records []*Record, field string) []*Record {
	if len(records) < 2 {
		return records
	}
	seen := make(map[string]bool, len(records))
	var values []any
	for _, r := range records {
		v, ok := r.Get(field)
		if !ok {
			continue
		}
		key := dedupeKey(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		values = append(values, v)
	}
	if len(values) >= len(records) {
		return records
	}
	out := make([]*Record, len(values))
	for i, v := range values {
		out[i] = NewRecord(Field{Key: field, Value: v})
	}
	return out
}

func dedupeKey(v any) string {
	if f, ok := numberValue(v); ok {
		return "number:" + f.Text('g', -1)
	}
	return fmt.Sprintf("%T:%v", v, v)
}

// numberValue returns v as a big.Float when it is a finite number. Decimal
// text is rounded to float64 precision, as a JSON decoder would.
func numberValue(v any) (*big.Float, bool) {
	switch t := v.(type) {
	case json.Number:
		return new(big.Float).SetPrec(53).SetString(t.String())
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, false
		}
		return big.NewFloat(t), true
	case float32:
		return numberValue(float64(t))
	case int:
		return new(big.Float).SetInt64(int64(t)), true
	case int64:
		return new(big.Float).SetInt64(t), true
	default:
		return nil, false
	}
}

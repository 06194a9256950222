package shape

import (
	"fmt"
	"slices"
	"strings"
)

// PresetPrefix marks a field entry that names a preset, e.g. "preset:ohlc".
const PresetPrefix = "preset:"

var presets = map[string][]string{
	"price":            {"ticker", "close", "timestamp"},
	"ohlc":             {"ticker", "open", "high", "low", "close", "timestamp"},
	"ohlcv":            {"ticker", "open", "high", "low", "close", "volume", "timestamp"},
	"summary":          {"ticker", "close", "volume", "change_percent"},
	"minimal":          {"ticker", "close"},
	"news_headlines":   {"title", "published_utc", "author"},
	"news_summary":     {"title", "published_utc", "author", "description", "article_url"},
	"trade":            {"ticker", "price", "size", "exchange", "timestamp"},
	"quote":            {"ticker", "bid_price", "bid_size", "ask_price", "ask_size", "timestamp"},
	"greeks":           {"ticker", "delta", "gamma", "theta", "vega", "implied_volatility"},
	"options_contract": {"ticker", "contract_type", "strike_price", "expiration_date"},
	"details":          {"ticker", "name", "market", "primary_exchange", "type", "currency_name"},
	"dividends":        {"ticker", "ex_dividend_date", "pay_date", "cash_amount", "frequency"},
}

// Preset returns a copy of the fields of the named preset.
func Preset(name string) ([]string, bool) {
	fields, ok := presets[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(fields), true
}

// Presets returns the preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ExpandFields resolves preset references. Fields of presets come first, in
// the order the presets appear, followed by the literal names. Repeated names
// keep their first position.
func ExpandFields(fields []string) ([]string, error) {
	var fromPresets, literals []string
	for _, f := range fields {
		name, ok := strings.CutPrefix(f, PresetPrefix)
		if !ok {
			literals = append(literals, f)
			continue
		}
		pf, ok := presets[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, name, strings.Join(Presets(), ", "))
		}
		fromPresets = append(fromPresets, pf...)
	}

	out := make([]string, 0, len(fromPresets)+len(literals))
	seen := make(map[string]bool, cap(out))
	for _, f := range slices.Concat(fromPresets, literals) {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out, nil
}

package shape

import (
	"bytes"
	"context"
)

// Fetcher returns a raw response holding at most limit records.
type Fetcher func(ctx context.Context, limit int) ([]byte, error)

// widenLimits are the page sizes tried after the caller's initial limit.
var widenLimits = []int{50, 100, 250}

const (
	// widenTarget caps the number of rows Widen waits for.
	widenTarget = 10
	// defaultLimit replaces a non-positive initial limit.
	defaultLimit = 10
)

// Widen fetches with growing limits until the shaped result has enough rows.
// Single-field queries collapse to distinct values, so a small page can shrink
// to one or two rows; Widen retries with limits of 50, 100, and 250, skipping
// any not above the previous one. It stops at the first result with at least
// min(10, initial) rows, or as soon as a result is empty, and returns the last
// rendering.
func Widen(ctx context.Context, fetch Fetcher, initial int, opts Options) (string, error) {
	opts, err := opts.resolve()
	if err != nil {
		return "", err
	}
	if initial <= 0 {
		initial = defaultLimit
	}
	want := min(widenTarget, initial)

	var out string
	prev := 0
	for _, limit := range append([]int{initial}, widenLimits...) {
		if limit <= prev {
			continue
		}
		prev = limit
		if err := ctx.Err(); err != nil {
			return "", err
		}

		data, err := fetch(ctx, limit)
		if err != nil {
			return "", err
		}
		records, err := shape(data, opts)
		if err != nil {
			return "", err
		}
		var buf bytes.Buffer
		if err := Render(&buf, records, opts.Format, opts.Border); err != nil {
			return "", err
		}
		out = buf.String()
		if len(records) == 0 || len(records) >= want {
			break
		}
	}
	return out, nil
}

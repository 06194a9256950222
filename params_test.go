package shape_test

import (
	"testing"

	"github.com/bjaus/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFields(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		entries []string
		want    []string
	}{
		"none":          {entries: nil, want: nil},
		"empty":         {entries: []string{""}, want: nil},
		"single":        {entries: []string{"close"}, want: []string{"close"}},
		"comma list":    {entries: []string{"ticker, close ,volume"}, want: []string{"ticker", "close", "volume"}},
		"repeated flag": {entries: []string{"ticker", "close,vwap"}, want: []string{"ticker", "close", "vwap"}},
		"blank names":   {entries: []string{",ticker,, ,"}, want: []string{"ticker"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, shape.SplitFields(tt.entries...))
		})
	}
}

func TestParseParams(t *testing.T) {
	t.Parallel()
	opts, err := shape.ParseParams(shape.Params{
		Fields:    []string{"preset:price, vwap"},
		Format:    "compact",
		Aggregate: "last",
	})
	require.NoError(t, err)
	assert.Equal(t, shape.Options{
		Fields:    []string{"ticker", "close", "timestamp", "vwap"},
		Format:    shape.Compact,
		Aggregate: shape.AggregateLast,
	}, opts)
}

func TestParseParamsDefaults(t *testing.T) {
	t.Parallel()
	opts, err := shape.ParseParams(shape.Params{Exclude: []string{"vwap,otc"}, Exact: true})
	require.NoError(t, err)
	assert.Equal(t, shape.Options{
		Exclude: []string{"vwap", "otc"},
		Format:  shape.CSV,
		Match:   shape.MatchExact,
	}, opts)
}

func TestParseParamsErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		params shape.Params
		target error
		msg    string
	}{
		"format":    {params: shape.Params{Format: "xml"}, target: shape.ErrInvalidFormat, msg: "xml"},
		"aggregate": {params: shape.Params{Aggregate: "mean"}, target: shape.ErrInvalidAggregate, msg: "mean"},
		"preset":    {params: shape.Params{Fields: []string{"close,preset:bogus"}}, target: shape.ErrUnknownPreset, msg: "bogus"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := shape.ParseParams(tt.params)
			require.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseBorder(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    shape.BorderStyle
		wantErr require.ErrorAssertionFunc
	}{
		"default": {input: "", want: shape.BorderRounded, wantErr: require.NoError},
		"rounded": {input: "rounded", want: shape.BorderRounded, wantErr: require.NoError},
		"ascii":   {input: "ascii", want: shape.BorderASCII, wantErr: require.NoError},
		"none":    {input: "none", want: shape.BorderNone, wantErr: require.NoError},
		"double":  {input: "double", want: shape.BorderRounded, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := shape.ParseBorder(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

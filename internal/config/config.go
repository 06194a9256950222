package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/bjaus/shape"
)

// Config holds the CLI defaults loaded from environment variables or a .env
// file. Command-line flags override these values.
//
// Example ENV:
//
//	SHAPE_FIELDS=preset:ohlc
//	SHAPE_FORMAT=json
//	SHAPE_AGGREGATE=last
//	SHAPE_CONCURRENCY=4
//	LOG_LEVEL=debug
type Config struct {
	Fields      string // comma-separated field names or preset references
	Exclude     string // comma-separated flattened keys to drop
	Format      string // output format name
	Aggregate   string // "first", "last", or empty
	Exact       bool   // literal field matching only
	Border      string // table border: rounded, ascii, none
	Concurrency int    // inputs shaped at once
	Log         LogConfig
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads the configuration.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from envFile (if present; empty means ".env").
//  3. Environment variables.
func Load(envFile string) Config {
	v := viper.New()
	v.SetDefault("SHAPE_FIELDS", "")
	v.SetDefault("SHAPE_EXCLUDE", "")
	v.SetDefault("SHAPE_FORMAT", string(shape.CSV))
	v.SetDefault("SHAPE_AGGREGATE", "")
	v.SetDefault("SHAPE_EXACT", false)
	v.SetDefault("SHAPE_BORDER", "rounded")
	v.SetDefault("SHAPE_CONCURRENCY", 4)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	if envFile == "" {
		envFile = ".env"
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	_ = v.ReadInConfig() // a missing .env is fine

	v.AutomaticEnv()

	return Config{
		Fields:      v.GetString("SHAPE_FIELDS"),
		Exclude:     v.GetString("SHAPE_EXCLUDE"),
		Format:      v.GetString("SHAPE_FORMAT"),
		Aggregate:   v.GetString("SHAPE_AGGREGATE"),
		Exact:       v.GetBool("SHAPE_EXACT"),
		Border:      v.GetString("SHAPE_BORDER"),
		Concurrency: v.GetInt("SHAPE_CONCURRENCY"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
	}
}

// Params returns the filter parameters of c.
func (c Config) Params() shape.Params {
	return shape.Params{
		Fields:    []string{c.Fields},
		Exclude:   []string{c.Exclude},
		Format:    c.Format,
		Aggregate: c.Aggregate,
		Exact:     c.Exact,
	}
}

// Validate checks every value and reports all invalid ones at once.
func (c Config) Validate() error {
	var problems []string
	if _, err := shape.ParseParams(c.Params()); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := shape.ParseBorder(c.Border); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Concurrency < 1 {
		problems = append(problems, fmt.Sprintf("SHAPE_CONCURRENCY must be >= 1, got %d", c.Concurrency))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Command shape reduces JSON API responses to selected fields.
//
// Usage:
//
//	shape [flags] [file ...]
//
// With no files, the response is read from standard input. Defaults come from
// SHAPE_* environment variables (or a .env file); flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bjaus/shape"
	"github.com/bjaus/shape/internal/config"
	"github.com/bjaus/shape/internal/logger"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "shape:", err)
		os.Exit(1)
	}
}

// input is one response to shape.
type input struct {
	name string
	read func() ([]byte, error)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := config.Load("")

	fs := flag.NewFlagSet("shape", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Fields, "fields", cfg.Fields, "comma-separated fields or preset:<name>")
	fs.StringVar(&cfg.Exclude, "exclude", cfg.Exclude, "comma-separated flattened keys to drop")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: "+formatNames())
	fs.StringVar(&cfg.Aggregate, "aggregate", cfg.Aggregate, "keep only the first or last record")
	fs.BoolVar(&cfg.Exact, "exact", cfg.Exact, "match field names literally")
	fs.StringVar(&cfg.Border, "border", cfg.Border, "table border: rounded, ascii, none")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "inputs shaped at once")
	listPresets := fs.Bool("presets", false, "list the field presets and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := logger.New(stderr, cfg.Log.Level, cfg.Log.Pretty)
	if err := cfg.Validate(); err != nil {
		return err
	}
	border, _ := shape.ParseBorder(cfg.Border)

	if *listPresets {
		return writePresets(stdout, border)
	}

	opts, err := shape.ParseParams(cfg.Params())
	if err != nil {
		return err
	}
	opts.Border = border
	log.Debug().
		Strs("fields", opts.Fields).
		Strs("exclude", opts.Exclude).
		Str("format", opts.Format.String()).
		Str("aggregate", opts.Aggregate.String()).
		Msg("options resolved")

	inputs := collectInputs(fs.Args(), stdin)
	outputs := make([][]byte, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := shapeInput(log, in, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range outputs {
		if len(out) == 0 {
			continue
		}
		if !strings.HasSuffix(string(out), "\n") {
			out = append(out, '\n')
		}
		if _, err := stdout.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func collectInputs(paths []string, stdin io.Reader) []input {
	if len(paths) == 0 {
		return []input{{name: "stdin", read: func() ([]byte, error) { return io.ReadAll(stdin) }}}
	}
	inputs := make([]input, len(paths))
	for i, p := range paths {
		inputs[i] = input{name: p, read: func() ([]byte, error) { return os.ReadFile(p) }}
	}
	return inputs
}

func shapeInput(log zerolog.Logger, in input, opts shape.Options) ([]byte, error) {
	start := time.Now()
	data, err := in.read()
	if err != nil {
		return nil, err
	}
	out, err := shape.Marshal(data, opts)
	if err != nil {
		if errors.Is(err, shape.ErrDecode) {
			log.Warn().Str("source", in.name).Int("bytes_in", len(data)).Msg("input is not JSON")
		}
		return nil, err
	}
	log.Info().
		Str("source", in.name).
		Int("bytes_in", len(data)).
		Int("bytes_out", len(out)).
		Dur("elapsed", time.Since(start)).
		Msg("shaped response")
	return out, nil
}

// writePresets renders the preset table with the package's own table format.
func writePresets(w io.Writer, border shape.BorderStyle) error {
	records := make([]*shape.Record, 0, len(shape.Presets()))
	for _, name := range shape.Presets() {
		fields, _ := shape.Preset(name)
		records = append(records, shape.NewRecord(
			shape.Field{Key: "preset", Value: shape.PresetPrefix + name},
			shape.Field{Key: "fields", Value: strings.Join(fields, ", ")},
		))
	}
	return shape.Render(w, records, shape.Table, border)
}

func formatNames() string {
	names := make([]string, 0, len(shape.Formats()))
	for _, f := range shape.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

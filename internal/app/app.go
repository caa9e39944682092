package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/five82/lcat/internal/filter"
	"github.com/five82/lcat/internal/logcat"
	"github.com/five82/lcat/internal/render"
	"github.com/five82/lcat/internal/source"
)

// DefaultCommand is the producer spawned when no input file is given.
var DefaultCommand = []string{"adb", "logcat", "-v", "brief"}

// Options configure one streaming run.
type Options struct {
	Command        []string // producer argv; DefaultCommand when empty
	Input          string   // log file path, or "-" for stdin; empty spawns Command
	Tail           int      // with Input: serve only the last N lines
	Output         string   // tee formatted output to this file (append)
	Wrap           bool     // wrap messages to the terminal width
	KeepUnparsable bool     // echo lines that do not match the grammar
	MinLevel       string   // severity threshold name; empty keeps the default
	TagInclude     []string
	TagExclude     []string
	MsgInclude     []string
	MsgExclude     []string
	Out            io.Writer // defaults to os.Stdout
}

// Run streams lines from the configured source through decode, filter, and
// render until the stream ends or ctx is cancelled. All configuration
// errors surface before the first line is read.
func Run(ctx context.Context, opts Options) error {
	flt, err := buildFilter(opts)
	if err != nil {
		return err
	}

	renderer := render.New()
	renderer.SetWrap(opts.Wrap)

	src, err := openSource(ctx, opts)
	if err != nil {
		return err
	}
	defer src.Close()

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	var tee *os.File
	if opts.Output != "" {
		tee, err = os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer tee.Close()
	}

	emit := func(line string) error {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if tee != nil {
			if _, err := fmt.Fprintln(tee, line); err != nil {
				return fmt.Errorf("write tee: %w", err)
			}
		}
		return nil
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		rec, ok := logcat.TryParse(line)
		if !ok {
			if opts.KeepUnparsable {
				if err := emit(line); err != nil {
					return err
				}
			}
			continue
		}
		if !flt.Accept(rec) {
			continue
		}
		if err := emit(renderer.Format(rec)); err != nil {
			return err
		}
	}
}

func buildFilter(opts Options) (*filter.Filter, error) {
	flt := filter.New()
	if opts.MinLevel != "" {
		level, err := logcat.ParseLevel(opts.MinLevel)
		if err != nil {
			return nil, err
		}
		flt.SetMinLevel(level)
	}
	for _, p := range opts.TagInclude {
		if err := flt.AddTagInclude(p); err != nil {
			return nil, err
		}
	}
	for _, p := range opts.TagExclude {
		if err := flt.AddTagExclude(p); err != nil {
			return nil, err
		}
	}
	for _, p := range opts.MsgInclude {
		if err := flt.AddMessageInclude(p); err != nil {
			return nil, err
		}
	}
	for _, p := range opts.MsgExclude {
		if err := flt.AddMessageExclude(p); err != nil {
			return nil, err
		}
	}
	return flt, nil
}

func openSource(ctx context.Context, opts Options) (source.Source, error) {
	switch {
	case opts.Input == "-":
		return source.OpenStdin(), nil
	case opts.Input != "":
		return source.OpenFile(opts.Input, opts.Tail)
	default:
		argv := opts.Command
		if len(argv) == 0 {
			argv = DefaultCommand
		}
		return source.StartProcess(ctx, argv)
	}
}

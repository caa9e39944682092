// Package source supplies raw log lines to the pipeline. The pipeline
// never knows whether lines come from a spawned producer, a file, or
// standard input.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Source is an ordered sequence of raw text lines. Next returns io.EOF
// when the stream ends.
type Source interface {
	Next() (string, error)
	Close() error
}

// scanSource reads lines from any stream with a bufio.Scanner.
type scanSource struct {
	scanner *bufio.Scanner
	cleanup func() error
}

func newScanSource(r io.Reader, cleanup func() error) *scanSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &scanSource{scanner: scanner, cleanup: cleanup}
}

func (s *scanSource) Next() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("read line: %w", err)
	}
	return "", io.EOF
}

func (s *scanSource) Close() error {
	if s.cleanup == nil {
		return nil
	}
	return s.cleanup()
}

// OpenFile streams lines from the file at path. With tail > 0 only the
// last tail lines are served.
func OpenFile(path string, tail int) (Source, error) {
	if tail > 0 {
		lines, err := tailLines(path, tail)
		if err != nil {
			return nil, err
		}
		return &sliceSource{lines: lines}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return newScanSource(file, file.Close), nil
}

// OpenStdin streams lines from standard input. This variant has no
// cancellation point of its own: a Next blocked on a quiet stdin (for
// example an interactive TTY) returns only when a line or EOF arrives,
// and the driver's context check runs between lines. Cancelling the
// producer or closing the upstream pipe is what ends the stream.
func OpenStdin() Source {
	return newScanSource(os.Stdin, nil)
}

// StartProcess spawns the producer command and streams its stdout. The
// producer's stderr passes through to ours. Cancelling ctx kills the
// producer, which ends the stream.
func StartProcess(ctx context.Context, argv []string) (Source, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty producer command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stderr = os.Stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipe producer stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}
	wait := func() error {
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("producer exit: %w", err)
		}
		return nil
	}
	return newScanSource(stdout, wait), nil
}

// sliceSource serves an already-collected batch of lines.
type sliceSource struct {
	lines []string
	next  int
}

func (s *sliceSource) Next() (string, error) {
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

func (s *sliceSource) Close() error { return nil }

// Package app is the composition root for lcat: it builds the filter and
// renderer from run options, opens the line source, and drives the
// single-pass stream.
//
// # Pipeline
//
// One raw line in, at most one formatted line out, strictly in order:
//
//	source.Next → logcat.TryParse → filter.Accept → render.Format → sink(s)
//
// Lines that do not match the logcat grammar are not errors; they are
// echoed verbatim when KeepUnparsable is set and dropped otherwise.
// Records rejected by the filter produce no output at all.
//
// # Configuration errors
//
// Everything fallible about configuration (unknown severity names,
// invalid regex patterns, unopenable sources or tee files) fails before
// the first line is read. Once streaming starts, the only errors are I/O.
//
// # Concurrency
//
// The pass is single-threaded. The tag color cache and filter criteria
// are the only state shared across calls, and both are read-only or
// append-only during the stream, so the core needs no locking.
// Cancellation is external: the signal context kills a spawned producer,
// which ends the stream.
package app

// Package logcat decodes Android logcat brief-format lines into typed
// records.
//
// The wire format is:
//
//	<LEVEL>/<TAG>(<PID>): <MESSAGE>
//
// where LEVEL is one of V, D, I, W, E, the tag may be padded with spaces
// before the paren, the pid may be padded inside it, and exactly one
// space follows the colon. A line that does not match produces no record;
// the caller decides whether to echo or drop it.
//
// Records are immutable once constructed and carry the original line in
// Raw for pass-through use.
package logcat

// Package filter decides which parsed records reach the renderer.
package filter

import (
	"fmt"
	"regexp"

	"github.com/five82/lcat/internal/logcat"
)

// Filter holds the accept criteria for one run. Configure it fully before
// streaming begins; Accept performs no writes and is safe to call
// concurrently once configuration is done.
type Filter struct {
	minRank    int
	tagInclude []*regexp.Regexp
	tagExclude []*regexp.Regexp
	msgInclude []*regexp.Regexp
	msgExclude []*regexp.Regexp
}

// New returns a Filter that accepts DEBUG and above with no pattern
// restrictions.
func New() *Filter {
	return &Filter{minRank: logcat.Debug.Rank()}
}

// SetMinLevel sets the severity threshold; records ranked below it are
// rejected.
func (f *Filter) SetMinLevel(l logcat.Level) {
	f.minRank = l.Rank()
}

// AddTagInclude admits records whose tag matches any include pattern.
func (f *Filter) AddTagInclude(pattern string) error {
	return appendPattern(&f.tagInclude, "tag include", pattern)
}

// AddTagExclude rejects records whose tag matches the pattern.
func (f *Filter) AddTagExclude(pattern string) error {
	return appendPattern(&f.tagExclude, "tag exclude", pattern)
}

// AddMessageInclude admits records whose message matches any include pattern.
func (f *Filter) AddMessageInclude(pattern string) error {
	return appendPattern(&f.msgInclude, "message include", pattern)
}

// AddMessageExclude rejects records whose message matches the pattern.
func (f *Filter) AddMessageExclude(pattern string) error {
	return appendPattern(&f.msgExclude, "message exclude", pattern)
}

func appendPattern(dst *[]*regexp.Regexp, dimension, pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%s pattern %q: %w", dimension, pattern, err)
	}
	*dst = append(*dst, re)
	return nil
}

// Accept reports whether rec passes the severity threshold and the four
// pattern dimensions. Includes are OR-combined and an empty include list
// imposes no restriction; any exclude match rejects. Patterns search
// anywhere in the target text, they are never anchored.
func (f *Filter) Accept(rec logcat.Record) bool {
	if rec.Level.Rank() < f.minRank {
		return false
	}
	if !matchesAny(f.tagInclude, rec.Tag, true) {
		return false
	}
	if matchesAny(f.tagExclude, rec.Tag, false) {
		return false
	}
	if !matchesAny(f.msgInclude, rec.Message, true) {
		return false
	}
	if matchesAny(f.msgExclude, rec.Message, false) {
		return false
	}
	return true
}

// matchesAny reports whether any pattern matches somewhere in s. An empty
// pattern list yields ifEmpty, so include dimensions pass and exclude
// dimensions stay inert when unconfigured.
func matchesAny(patterns []*regexp.Regexp, s string, ifEmpty bool) bool {
	if len(patterns) == 0 {
		return ifEmpty
	}
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

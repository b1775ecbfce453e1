// Package filter evaluates function and file names against sets of
// regular-expression patterns. Sets are immutable once constructed;
// configuration changes replace whole sets rather than editing them in
// place, so a set handed to a running goroutine never shifts under it.
package filter

import (
	"fmt"
	"regexp"
	"sync"
)

// compiled caches pattern compilation across all sets. Patterns are not
// pre-validated: a malformed pattern surfaces an error from Matches at the
// point of use.
var compiled sync.Map // pattern string -> *regexp.Regexp

func compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := compiled.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("malformed filter pattern %q: %w", pattern, err)
	}
	actual, _ := compiled.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

// Set is an immutable collection of regular-expression patterns. Patterns
// match as substring searches unless they anchor themselves with ^ or $.
type Set struct {
	patterns []string
}

// NewSet builds a set from the given patterns. Duplicates are kept; they
// cost nothing beyond a cached lookup.
func NewSet(patterns ...string) *Set {
	out := make([]string, len(patterns))
	copy(out, patterns)
	return &Set{patterns: out}
}

// Empty reports whether the set has no patterns. Callers using a set in
// "only" mode must treat an empty set as "no restriction".
func (s *Set) Empty() bool {
	return s == nil || len(s.patterns) == 0
}

// Len returns the number of patterns.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// Patterns returns a copy of the pattern strings.
func (s *Set) Patterns() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Matches reports whether candidate matches at least one pattern in the
// set. The first matching pattern short-circuits. A malformed pattern is a
// configuration error and is returned rather than skipped.
func (s *Set) Matches(candidate string) (bool, error) {
	if s == nil {
		return false, nil
	}
	for _, p := range s.patterns {
		re, err := compile(p)
		if err != nil {
			return false, err
		}
		if re.MatchString(candidate) {
			return true, nil
		}
	}
	return false, nil
}

// DefaultSkipFunctions returns the stock function exclusions: interpreter
// bookkeeping helpers and anonymous code objects that only add noise.
func DefaultSkipFunctions() *Set {
	return NewSet(
		"^(FILE|FUNC|LINE)$",
		"^get_fcode$",
		"^_(_exit__|handle_fromlist|shutdown|get_sep)$",
		"^is(function|class)$",
		"^basename$",
		"^<.*>$",
	)
}

// DefaultSkipFilenames returns the stock filename exclusions: standard
// library modules that fire on nearly every import or lock operation.
func DefaultSkipFilenames() *Set {
	return NewSet(
		"(__init__|__main__|functools|encoder|decoder|_pylab_helpers|threading).py$",
		"^<.*>$",
	)
}

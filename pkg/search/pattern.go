package search

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	// ErrBadPattern wraps a regexp compile failure. Recoverable: the
	// controller surfaces it and keeps accepting letter edits.
	ErrBadPattern = errors.New("invalid pattern")

	// ErrBudgetExceeded means one word's pattern evaluation ran past its
	// execution cap. Policy: that word is a non-match, nothing more.
	ErrBudgetExceeded = errors.New("pattern budget exceeded")
)

// Pattern is an optional, compiled regular expression plus its source
// text. A nil *Pattern matches everything. A Pattern either compiled
// successfully or was rejected by Compile; there is no half-applied state.
//
// Matching is unanchored substring matching: `art` matches "cart" and
// "dart", users anchor explicitly with ^ and $ when they want full-word
// matches.
type Pattern struct {
	Source string

	re     *regexp.Regexp
	budget time.Duration
}

// Compile builds a Pattern from user-typed source text. It is called once
// per pattern edit, never once per word: the compiled form is cached in
// the query state and reused across the whole dictionary pass.
//
// budget caps one word's evaluation time; zero or negative disables the
// cap. Go's regexp engine runs in time linear in the input, so the cap is
// a backstop against very long pattern/word combinations, not a watchdog
// for catastrophic backtracking.
func Compile(source string, budget time.Duration) (*Pattern, error) {
	if source == "" {
		return nil, nil
	}
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
	}
	return &Pattern{Source: source, re: re, budget: budget}, nil
}

// Matches reports whether the word satisfies the pattern. A nil Pattern
// matches every word. When the per-word budget is exhausted the word is
// reported as a non-match together with ErrBudgetExceeded so callers can
// count overruns; the error is never user-visible.
func (p *Pattern) Matches(word string) (bool, error) {
	if p == nil || p.re == nil {
		return true, nil
	}
	if p.budget <= 0 {
		return p.re.MatchString(word), nil
	}
	start := time.Now()
	ok := p.re.MatchString(word)
	if time.Since(start) > p.budget {
		return false, ErrBudgetExceeded
	}
	return ok, nil
}

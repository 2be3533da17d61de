package search

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCompile(t *testing.T) {
	p, err := Compile("car.*", 0)
	if err != nil {
		t.Fatalf("valid pattern rejected: %v", err)
	}
	if p == nil || p.Source != "car.*" {
		t.Fatalf("compiled pattern lost its source: %+v", p)
	}

	// empty source means "no pattern at all"
	p, err = Compile("", 0)
	if err != nil || p != nil {
		t.Fatalf("empty source should compile to nil, got %v, %v", p, err)
	}

	_, err = Compile("(unclosed", 0)
	if err == nil {
		t.Fatal("malformed regex must not compile")
	}
	if !errors.Is(err, ErrBadPattern) {
		t.Errorf("compile failure should wrap ErrBadPattern, got %v", err)
	}
	if err.Error() == "" {
		t.Error("compile error needs a human-readable message")
	}
}

// Matching is unanchored substring matching; users anchor themselves.
func TestMatchesSubstringSemantics(t *testing.T) {
	testCases := []struct {
		pattern string
		word    string
		want    bool
		desc    string
	}{
		{"art", "cart", true, "bare pattern matches inside the word"},
		{"art", "dart", true, "bare pattern matches suffix"},
		{"art", "atr", false, "no substring"},
		{"^c", "cat", true, "caret anchors the start"},
		{"^c", "act", false, "caret rejects mid-word"},
		{"^s.*e$", "spare", true, "fully anchored"},
		{"^s.*e$", "spared", false, "anchors reject the longer word"},
		{"s.*e", "spared", true, "same pattern unanchored accepts it"},
		{"c.{1}m", "cam", true, "counted wildcard"},
		{"c.{1}m", "crime", false, "counted wildcard too short"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			p, err := Compile(tc.pattern, 0)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tc.pattern, err)
			}
			got, err := p.Matches(tc.word)
			if err != nil {
				t.Fatalf("Matches(%q): %v", tc.word, err)
			}
			if got != tc.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tc.pattern, tc.word, got, tc.want)
			}
		})
	}
}

func TestNilPatternMatchesEverything(t *testing.T) {
	var p *Pattern
	for _, w := range []string{"", "cat", "zzz"} {
		ok, err := p.Matches(w)
		if !ok || err != nil {
			t.Errorf("nil pattern should match %q, got %v, %v", w, ok, err)
		}
	}
}

// A word that blows its execution budget is a non-match, not a hang and
// not a crash.
func TestMatchesBudgetExceeded(t *testing.T) {
	p, err := Compile("(a.*)+b$", time.Nanosecond)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	word := strings.Repeat("a", 4096)
	done := make(chan struct{})
	var ok bool
	var mErr error
	go func() {
		ok, mErr = p.Matches(word)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pattern evaluation hung")
	}

	if ok {
		t.Error("budget-exceeded word must report non-match")
	}
	if !errors.Is(mErr, ErrBudgetExceeded) {
		t.Errorf("expected ErrBudgetExceeded, got %v", mErr)
	}
}

package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadWords(t *testing.T) {
	// unsorted, mixed case, duplicate and a blank line
	path := writeFile(t, "words.txt", "Radar\nrad\n\ndart\nRADAR\nradical\n")

	dict, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords: %v", err)
	}

	want := []string{"dart", "rad", "radar", "radical"}
	if got := dict.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
	if dict.Len() != 4 {
		t.Errorf("Len() = %d, want 4", dict.Len())
	}
	if !dict.Contains("radar") || dict.Contains("RADAR") || dict.Contains("sonar") {
		t.Error("Contains should see normalized entries only")
	}
	if got := dict.WithPrefix("rad"); !reflect.DeepEqual(got, []string{"rad", "radar", "radical"}) {
		t.Errorf("WithPrefix(rad) = %v", got)
	}
}

func TestLoadWordsRejectsNonAlphabetic(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"digits", "rad\nr2d2\n"},
		{"hyphen", "well-known\n"},
		{"space inside", "two words\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "words.txt", tc.content)
			_, err := LoadWords(path)
			if !errors.Is(err, ErrInvalidWord) {
				t.Errorf("expected ErrInvalidWord, got %v", err)
			}
		})
	}
}

func TestLoadWordsMissingFile(t *testing.T) {
	if _, err := LoadWords(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("missing word file must fail loudly")
	}
}

func TestLoadScores(t *testing.T) {
	path := writeFile(t, "scores.txt", "a=1\nB=3\nq=10\n\n*=2\n")

	table, err := LoadScores(path)
	if err != nil {
		t.Fatalf("LoadScores: %v", err)
	}

	if got := table.Value('a'); got != 1 {
		t.Errorf("Value(a) = %d, want 1", got)
	}
	// uppercase keys fold to lowercase
	if got := table.Value('b'); got != 3 {
		t.Errorf("Value(b) = %d, want 3", got)
	}
	// unlisted letters use the fallback from the * line
	if got := table.Value('z'); got != 2 {
		t.Errorf("Value(z) = %d, want fallback 2", got)
	}

	if got := table.Score("qab"); got != 14 {
		t.Errorf("Score(qab) = %d, want 14", got)
	}
}

func TestLoadScoresDefaultFallback(t *testing.T) {
	path := writeFile(t, "scores.txt", "a=1\n")
	table, err := LoadScores(path)
	if err != nil {
		t.Fatalf("LoadScores: %v", err)
	}
	if got := table.Value('z'); got != 0 {
		t.Errorf("fallback without a '*' line = %d, want 0", got)
	}
}

func TestLoadScoresRejectsMalformedLines(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"missing equals", "a1\n"},
		{"multi char left", "ab=1\n"},
		{"non letter", "3=1\n"},
		{"bad score", "a=x\n"},
		{"negative score", "a=-2\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "scores.txt", tc.content)
			_, err := LoadScores(path)
			if !errors.Is(err, ErrBadScoreLine) {
				t.Errorf("expected ErrBadScoreLine, got %v", err)
			}
		})
	}
}

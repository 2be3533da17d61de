package search

import "testing"

func TestScoreCountsRepeats(t *testing.T) {
	table := NewScoreTable(map[rune]int{'r': 1, 'a': 2, 'd': 3}, 0)

	testCases := []struct {
		word string
		want int
	}{
		{"rad", 6},
		{"radar", 9}, // each occurrence counts
		{"", 0},
		{"zzz", 0}, // unlisted letters use the fallback
	}
	for _, tc := range testCases {
		if got := table.Score(tc.word); got != tc.want {
			t.Errorf("Score(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestScoreFallback(t *testing.T) {
	table := NewScoreTable(map[rune]int{'a': 5}, 2)

	if got := table.Score("abc"); got != 9 {
		t.Errorf("Score(abc) = %d, want 5+2+2=9", got)
	}
	// a listed letter with value 0 is not the same as an unlisted one
	zero := NewScoreTable(map[rune]int{'a': 0}, 7)
	if got := zero.Value('a'); got != 0 {
		t.Errorf("Value(a) = %d, want explicit 0", got)
	}
	if got := zero.Value('b'); got != 7 {
		t.Errorf("Value(b) = %d, want fallback 7", got)
	}
}

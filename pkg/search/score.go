package search

// ScoreTable maps each letter to a non-negative score. Letters without an
// entry score Fallback. Loaded once at startup and never mutated.
type ScoreTable struct {
	values   [alphabetSize]int
	assigned [alphabetSize]bool

	// Fallback is the score for letters not present in the table.
	Fallback int
}

// NewScoreTable builds a table from a letter->score map plus the fallback
// for unlisted letters. Non a-z keys are ignored; the loader has already
// rejected them by the time the core sees a table.
func NewScoreTable(values map[rune]int, fallback int) *ScoreTable {
	t := &ScoreTable{Fallback: fallback}
	for r, v := range values {
		if r >= 'a' && r <= 'z' {
			t.values[r-'a'] = v
			t.assigned[r-'a'] = true
		}
	}
	return t
}

// Value returns the score of a single letter.
func (t *ScoreTable) Value(b byte) int {
	if b < 'a' || b > 'z' || !t.assigned[b-'a'] {
		return t.Fallback
	}
	return t.values[b-'a']
}

// Score sums the table value of every character occurrence in the word,
// counting repeats. Pure function of (word, table); query state never
// enters into it.
func (t *ScoreTable) Score(word string) int {
	total := 0
	for i := 0; i < len(word); i++ {
		total += t.Value(word[i])
	}
	return total
}

// Package search implements the match-and-rank engine: deciding which
// dictionary words can be spelled from a pool of letters, filtering them
// through an optional regular expression, scoring them from a per-letter
// table and keeping the whole thing responsive on every input event.
package search

// Wildcard is the blank-tile rune. One wildcard in the pool can stand in
// for any single missing letter.
const Wildcard = '*'

// alphabetSize covers a-z. Anything outside is not part of a word.
const alphabetSize = 26

// LetterSet is the pool of available letters as a count per letter, plus
// a count of blank-tile wildcards. Counts are never negative; a missing
// letter simply has count zero.
type LetterSet struct {
	counts    [alphabetSize]uint8
	wildcards uint8
}

// NewLetterSet builds a LetterSet from raw input text. Letters a-z and the
// wildcard rune are counted, uppercase folds to lowercase, everything else
// is dropped. This mirrors how the loaders normalize dictionary words, so
// spellability checks stay case-insensitive by construction.
func NewLetterSet(letters string) LetterSet {
	var ls LetterSet
	for _, r := range letters {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		switch {
		case r >= 'a' && r <= 'z':
			if ls.counts[r-'a'] < 255 {
				ls.counts[r-'a']++
			}
		case r == Wildcard:
			if ls.wildcards < 255 {
				ls.wildcards++
			}
		}
	}
	return ls
}

// Add puts one more of the given letter (or wildcard) into the pool and
// reports whether the rune was accepted.
func (ls *LetterSet) Add(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	switch {
	case r >= 'a' && r <= 'z':
		if ls.counts[r-'a'] < 255 {
			ls.counts[r-'a']++
		}
		return true
	case r == Wildcard:
		if ls.wildcards < 255 {
			ls.wildcards++
		}
		return true
	}
	return false
}

// Remove takes one of the given letter out of the pool, if present.
// Removing a letter that isn't there is a no-op.
func (ls *LetterSet) Remove(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	switch {
	case r >= 'a' && r <= 'z':
		if ls.counts[r-'a'] > 0 {
			ls.counts[r-'a']--
			return true
		}
	case r == Wildcard:
		if ls.wildcards > 0 {
			ls.wildcards--
			return true
		}
	}
	return false
}

// Count returns how many of the given letter are in the pool.
func (ls LetterSet) Count(r rune) int {
	if r == Wildcard {
		return int(ls.wildcards)
	}
	if r < 'a' || r > 'z' {
		return 0
	}
	return int(ls.counts[r-'a'])
}

// Empty reports whether the pool holds no letters and no wildcards.
func (ls LetterSet) Empty() bool {
	if ls.wildcards > 0 {
		return false
	}
	for _, c := range ls.counts {
		if c > 0 {
			return false
		}
	}
	return true
}

// CanSpell is the multiset-subset test: the word is spellable iff every
// letter occurs in the word no more often than it occurs in the pool, with
// any total deficit covered by wildcards. A word requiring two e's is
// rejected when only one is available. Runs in one pass over the word:
// tally the word's own counts once, never rescan.
//
// Words must already be normalized to lowercase a-z; any other byte
// rejects the word outright.
func (ls LetterSet) CanSpell(word string) bool {
	var need [alphabetSize]uint8
	for i := 0; i < len(word); i++ {
		b := word[i]
		if b < 'a' || b > 'z' {
			return false
		}
		need[b-'a']++
	}

	deficit := 0
	for i := 0; i < alphabetSize; i++ {
		if need[i] > ls.counts[i] {
			deficit += int(need[i] - ls.counts[i])
			if deficit > int(ls.wildcards) {
				return false
			}
		}
	}
	return true
}

// String renders the pool back as input text, letters in alphabetical
// order with wildcards at the end. Useful for logs and the renderer.
func (ls LetterSet) String() string {
	buf := make([]byte, 0, 16)
	for i := 0; i < alphabetSize; i++ {
		for n := uint8(0); n < ls.counts[i]; n++ {
			buf = append(buf, byte('a'+i))
		}
	}
	for n := uint8(0); n < ls.wildcards; n++ {
		buf = append(buf, Wildcard)
	}
	return string(buf)
}

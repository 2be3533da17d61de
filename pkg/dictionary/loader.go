package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/lexiterm/pkg/search"
	"github.com/charmbracelet/log"
)

var (
	// ErrInvalidWord marks a word-file line with characters outside a-z
	// (after lowercasing).
	ErrInvalidWord = errors.New("invalid word")

	// ErrBadScoreLine marks a malformed score-file line.
	ErrBadScoreLine = errors.New("bad score line")
)

// LoadWords reads one word per line from path, lowercases each, rejects
// anything that isn't purely alphabetic and returns the deduplicated,
// ordered Dictionary. Blank lines are skipped.
//
// Example file:
//
//	aardvark
//	aardwolf
//	abacus
func LoadWords(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file %s: %w", path, err)
	}
	defer file.Close()

	dict := newDictionary()
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		word = strings.ToLower(word)
		if !isAlphabetic(word) {
			return nil, fmt.Errorf("%w: %q at %s:%d (words may only contain a-z or A-Z)", ErrInvalidWord, word, path, lineNo)
		}
		dict.add(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word file %s: %w", path, err)
	}

	dict.freeze()
	log.Debugf("loaded %d words from %s", dict.Len(), path)
	return dict, nil
}

// LoadScores reads `letter=score` lines from path and returns the score
// table. Scores must be non-negative integers. The special line `*=N`
// sets the fallback score used for letters the table doesn't list;
// without it the fallback is 0.
//
// Example file:
//
//	a=1
//	b=3
//	q=10
//	*=1
func LoadScores(path string) (*search.ScoreTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open score file %s: %w", path, err)
	}
	defer file.Close()

	values := make(map[rune]int)
	fallback := 0

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		left, right, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%w: missing '=' at %s:%d: %q", ErrBadScoreLine, path, lineNo, line)
		}
		if len(left) != 1 {
			return nil, fmt.Errorf("%w: left of '=' must be a single letter at %s:%d, got %q", ErrBadScoreLine, path, lineNo, left)
		}
		score, err := strconv.Atoi(right)
		if err != nil || score < 0 {
			return nil, fmt.Errorf("%w: score must be a non-negative integer at %s:%d, got %q", ErrBadScoreLine, path, lineNo, right)
		}

		ch := rune(left[0])
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		switch {
		case ch == search.Wildcard:
			fallback = score
		case ch >= 'a' && ch <= 'z':
			values[ch] = score
		default:
			return nil, fmt.Errorf("%w: %q is not a letter at %s:%d", ErrBadScoreLine, left, path, lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read score file %s: %w", path, err)
	}

	log.Debugf("loaded %d letter scores from %s (fallback %d)", len(values), path, fallback)
	return search.NewScoreTable(values, fallback), nil
}

func isAlphabetic(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return len(word) > 0
}

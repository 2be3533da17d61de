package search

import (
	"context"
	"errors"
	"sort"
	"time"
)

// Match is one ranked result: a word plus its computed score.
type Match struct {
	Word  string
	Score int
}

// MatchResult is the ordered result of one query pass: descending score,
// ties broken by ascending word text. The ordering is total, so identical
// inputs always produce byte-identical output.
type MatchResult []Match

// RunStats carries diagnostics from one engine pass.
type RunStats struct {
	Scanned        int
	BudgetOverruns int
	Elapsed        time.Duration
}

// ctxCheckInterval is how many words are scanned between context checks.
const ctxCheckInterval = 512

// Run executes one query: a single pass over the words in dictionary
// order, rejecting first on spellability, then on the pattern, scoring
// whatever survives. No result from a previous pass is reused; every
// keystroke pays for a full recompute, which keeps the ordering properties
// trivial to reason about.
//
// The context is checked periodically so a host that supersedes stale
// queries can abandon a pass; an abandoned pass returns ctx.Err() and its
// partial result must be discarded, never shown.
func Run(ctx context.Context, words []string, letters LetterSet, pattern *Pattern, table *ScoreTable) (MatchResult, RunStats, error) {
	start := time.Now()
	var stats RunStats
	var result MatchResult

	for i, word := range words {
		if i%ctxCheckInterval == 0 && ctx.Err() != nil {
			stats.Elapsed = time.Since(start)
			return nil, stats, ctx.Err()
		}
		stats.Scanned++

		if !letters.CanSpell(word) {
			continue
		}
		ok, err := pattern.Matches(word)
		if err != nil {
			if errors.Is(err, ErrBudgetExceeded) {
				stats.BudgetOverruns++
				continue
			}
			stats.Elapsed = time.Since(start)
			return nil, stats, err
		}
		if !ok {
			continue
		}
		result = append(result, Match{Word: word, Score: table.Score(word)})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].Word < result[j].Word
	})

	stats.Elapsed = time.Since(start)
	return result, stats, nil
}

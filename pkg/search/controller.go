package search

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// State is the controller's externally visible mode.
type State int

const (
	// StateIdle means the query is empty: no letters, no pattern.
	StateIdle State = iota
	// StateEditing means a usable query is in place and the current
	// MatchResult reflects it.
	StateEditing
	// StateError means the pattern text failed to compile. Letter edits
	// are still accepted and remembered, but the result set is forced
	// empty until the pattern is fixed or cleared.
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateError:
		return "error"
	}
	return "unknown"
}

// EventKind discriminates input events.
type EventKind int

const (
	evAddLetter EventKind = iota
	evRemoveLetter
	evSetPattern
	evClearPattern
)

// Event is one discrete input event. The controller never polls; it only
// reacts to these.
type Event struct {
	Kind EventKind
	Ch   rune
	Text string
}

// AddLetter adds one letter (or wildcard) to the pool.
func AddLetter(ch rune) Event { return Event{Kind: evAddLetter, Ch: ch} }

// RemoveLetter removes one letter (or wildcard) from the pool.
func RemoveLetter(ch rune) Event { return Event{Kind: evRemoveLetter, Ch: ch} }

// SetPattern replaces the pattern text.
func SetPattern(text string) Event { return Event{Kind: evSetPattern, Text: text} }

// ClearPattern drops the pattern entirely.
func ClearPattern() Event { return Event{Kind: evClearPattern} }

// Options tune a Controller.
type Options struct {
	// Budget caps one word's pattern evaluation; zero disables the cap.
	Budget time.Duration
	// IdleShowsAll makes the idle state expose the whole scored
	// dictionary (in dictionary order) instead of an empty result.
	IdleShowsAll bool
}

// Controller owns the current query state and decides when to re-run the
// engine. It is the only component that mutates query state, and it does
// so strictly in response to one event at a time, so a host driving it
// from a single goroutine needs no locking. There are no globals: hosts
// construct one Controller with an explicit lifetime.
type Controller struct {
	words []string
	table *ScoreTable
	opts  Options

	state      State
	letters    LetterSet
	pattern    *Pattern
	patternSrc string
	compileErr string
	result     MatchResult
	overruns   int
}

// NewController builds a controller over an immutable dictionary and score
// table. The initial state is Idle with an empty query.
func NewController(words []string, table *ScoreTable, opts Options) *Controller {
	c := &Controller{words: words, table: table, opts: opts, state: StateIdle}
	c.result = c.idleResult()
	return c
}

// Apply feeds one input event through the state machine and synchronously
// recomputes the MatchResult. The only error it returns is a context
// error from an abandoned engine pass; pattern compile failures are state,
// not errors, and never crash the controller.
func (c *Controller) Apply(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case evAddLetter:
		if !c.letters.Add(ev.Ch) {
			log.Debugf("ignoring non-letter input %q", ev.Ch)
			return nil
		}
	case evRemoveLetter:
		if !c.letters.Remove(ev.Ch) {
			return nil
		}
	case evSetPattern:
		if ev.Text == c.patternSrc {
			break
		}
		c.patternSrc = ev.Text
		p, err := Compile(ev.Text, c.opts.Budget)
		if err != nil {
			// Keep the old compiled form out of play entirely: a
			// rejected pattern is never half-applied.
			c.pattern = nil
			c.compileErr = err.Error()
			c.state = StateError
			c.result = nil
			log.Debugf("pattern rejected: %v", err)
			return nil
		}
		c.pattern = p
		c.compileErr = ""
	case evClearPattern:
		c.pattern = nil
		c.patternSrc = ""
		c.compileErr = ""
	}

	if c.state == StateError && c.compileErr != "" {
		// Letters stay editable while the pattern is broken, but no
		// results are shown until it compiles again.
		c.result = nil
		return nil
	}

	return c.recompute(ctx)
}

func (c *Controller) recompute(ctx context.Context) error {
	if c.letters.Empty() && c.patternSrc == "" {
		c.state = StateIdle
		c.result = c.idleResult()
		return nil
	}

	result, stats, err := Run(ctx, c.words, c.letters, c.pattern, c.table)
	if err != nil {
		return err
	}
	if stats.BudgetOverruns > 0 {
		c.overruns += stats.BudgetOverruns
		log.Debugf("pattern budget exceeded for %d words", stats.BudgetOverruns)
	}
	c.state = StateEditing
	c.result = result
	return nil
}

func (c *Controller) idleResult() MatchResult {
	if !c.opts.IdleShowsAll {
		return nil
	}
	result := make(MatchResult, 0, len(c.words))
	for _, w := range c.words {
		result = append(result, Match{Word: w, Score: c.table.Score(w)})
	}
	return result
}

// State returns the current controller state.
func (c *Controller) State() State { return c.state }

// Result returns the current MatchResult. The slice is owned by the
// controller; hosts render it and move on.
func (c *Controller) Result() MatchResult { return c.result }

// Letters returns a copy of the current letter pool.
func (c *Controller) Letters() LetterSet { return c.letters }

// PatternSource returns the pattern text as typed, compiled or not.
func (c *Controller) PatternSource() string { return c.patternSrc }

// CompileError returns the human-readable compile failure for the
// renderer, or "" outside the Error state.
func (c *Controller) CompileError() string { return c.compileErr }

// BudgetOverruns reports how many per-word pattern evaluations have been
// cut off since the controller was created. Diagnostics only.
func (c *Controller) BudgetOverruns() int { return c.overruns }

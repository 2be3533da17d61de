// Package cli is the interactive stdin surface: it turns typed lines into
// controller input events and renders the ranked matches. Useful for
// testing and for driving the engine without a full terminal UI.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/lexiterm/internal/logger"
	"github.com/bastiangx/lexiterm/internal/utils"
	"github.com/bastiangx/lexiterm/pkg/search"
	"github.com/charmbracelet/log"
)

// InputHandler reads queries from stdin, one per line, in the form
//
//	LETTERS [PATTERN]
//
// e.g. `carbont car.*`. Each line is translated into discrete input
// events (letters removed/added one by one, pattern set or cleared) and
// fed through the search controller.
type InputHandler struct {
	ctrl  *search.Controller
	out   *log.Logger
	limit int
	shows bool
}

// NewInputHandler wires a handler around an existing controller.
func NewInputHandler(ctrl *search.Controller, limit int, showScores bool) *InputHandler {
	return &InputHandler{
		ctrl:  ctrl,
		out:   logger.New("cli"),
		limit: limit,
		shows: showScores,
	}
}

// Start begins the interface loop. It continuously prompts for input,
// reads a line from stdin and hands it to handleLine. The loop terminates
// on stdin EOF or a read error.
func (h *InputHandler) Start() error {
	h.out.Print("lexiterm CLI")
	h.out.Print("type LETTERS [PATTERN] and press Enter ('*' is a blank tile, Ctrl+C to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleLine(line)
	}
}

// handleLine applies one typed query and renders the outcome.
func (h *InputHandler) handleLine(line string) {
	fields := strings.Fields(line)
	letters := fields[0]
	pattern := ""
	if len(fields) > 1 {
		pattern = strings.Join(fields[1:], " ")
	}

	if !utils.IsValidLetters(letters) {
		log.Errorf("letters may only contain a-z, A-Z or '*': %q", letters)
		return
	}

	ctx := context.Background()
	start := time.Now()

	// Replace the pool one event at a time: the controller reacts to
	// discrete edits, it never ingests whole strings.
	for _, r := range h.ctrl.Letters().String() {
		if err := h.ctrl.Apply(ctx, search.RemoveLetter(r)); err != nil {
			log.Errorf("remove letter: %v", err)
			return
		}
	}
	for _, r := range letters {
		if err := h.ctrl.Apply(ctx, search.AddLetter(r)); err != nil {
			log.Errorf("add letter: %v", err)
			return
		}
	}
	ev := search.ClearPattern()
	if pattern != "" {
		ev = search.SetPattern(pattern)
	}
	if err := h.ctrl.Apply(ctx, ev); err != nil {
		log.Errorf("set pattern: %v", err)
		return
	}

	elapsed := time.Since(start)

	if h.ctrl.State() == search.StateError {
		log.Errorf("pattern error: %s", h.ctrl.CompileError())
		return
	}

	result := h.ctrl.Result()
	if len(result) == 0 {
		log.Warnf("No words found for letters '%s'", letters)
		return
	}

	shown := result
	if h.limit > 0 && len(shown) > h.limit {
		shown = shown[:h.limit]
	}

	h.out.Printf("Found %d words for '%s' (showing %d, took %v):", len(result), letters, len(shown), elapsed)
	for i, m := range shown {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", m.Word)
		if h.shows {
			h.out.Printf("%3d. %-32s (score: %3d)", i+1, clWord, m.Score)
		} else {
			h.out.Printf("%3d. %s", i+1, clWord)
		}
	}
}

/*
Package main implements the lexiterm word finder.

lexiterm answers one question, live: given the letters you have and an
optional regular expression, which dictionary words can you spell, ranked
by letter scores? It runs either as an interactive CLI reading queries
from stdin, or as a msgpack IPC server for integration with terminal UIs
and editors.

# Usage

Interactive mode with the default files:

	lexiterm

Custom word list and score table, debug logging on:

	lexiterm -words /usr/share/dict/words -scores char_scores.txt -d

Run as a msgpack IPC server over stdin/stdout:

	lexiterm -serve

# Input files

The word file holds one word per line, letters only; it is lowercased and
deduplicated at load. The score file holds `letter=score` lines, e.g.

	a=1
	b=3
	q=10
	*=1

where `*=N` sets the fallback score for unlisted letters. Both files are
loaded once at startup; a malformed file is fatal before any interactive
surface starts.

# Queries

In CLI mode each line is `LETTERS [PATTERN]`. Letters are a pool, not a
sequence: a word is shown only if every one of its letters is available
often enough, with '*' usable as a blank tile. The pattern is an
unanchored regular expression; anchor with ^ and $ for full-word matches.

# Configuration

Runtime configuration lives in a TOML file (engine limits, per-word regex
budget, worker debounce window):

	[engine]
	result_limit = 0
	regex_budget_ms = 50
	idle_shows_all = false
	debounce_ms = 100

	[cli]
	default_limit = 24
	show_scores = true

The config file is created with defaults if it doesn't exist.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/lexiterm/internal/cli"
	"github.com/bastiangx/lexiterm/internal/logger"
	"github.com/bastiangx/lexiterm/pkg/config"
	"github.com/bastiangx/lexiterm/pkg/dictionary"
	"github.com/bastiangx/lexiterm/pkg/search"
	"github.com/bastiangx/lexiterm/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "lexiterm"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main loads the input files and hands off to the CLI or server loop.
// All engine logic lives in the packages; main only manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	wordsPath := flag.String("words", "words.txt", "Word list file, one word per line")
	scoresPath := flag.String("scores", "char_scores.txt", "Letter score file, letter=score per line")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server instead of the interactive CLI")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of results to show in CLI mode (0 for all)")

	flag.Parse()

	if *showVersion {
		vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		vlog.SetStyles(styles)

		vlog.Print("")
		vlog.Print("[ lexiterm ] Finds the words your letters can spell.")
		vlog.Print("", "version", Version)
		vlog.Print("use -h or --help to see available options")
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: %s", activePath)

	// Loader errors are fatal: the process never reaches an interactive
	// surface with half-loaded data.
	dict, err := dictionary.LoadWords(*wordsPath)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}
	table, err := dictionary.LoadScores(*scoresPath)
	if err != nil {
		log.Fatalf("Failed to load score table: %v", err)
	}
	log.Debugf("Dictionary ready: %d words", dict.Len())

	if *serveMode {
		showStartupInfo(dict.Len())
		srv := server.NewServer(dict, table, cfg)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	log.SetReportTimestamp(false)
	ctrl := search.NewController(dict.Words(), table, search.Options{
		Budget:       time.Duration(cfg.Engine.RegexBudgetMs) * time.Millisecond,
		IdleShowsAll: cfg.Engine.IdleShowsAll,
	})
	handler := cli.NewInputHandler(ctrl, *limit, cfg.CLI.ShowScores)
	if err := handler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(wordCount int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println(" lexiterm ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("words loaded: %d", wordCount)
	log.Info("status: ready")
	println("==========")

	log.SetLevel(currentLevel)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Engine.RegexBudgetMs <= 0 {
		t.Error("default regex budget should be enabled")
	}
	if cfg.Engine.DebounceMs <= 0 {
		t.Error("default debounce window should be positive")
	}
	if cfg.CLI.DefaultLimit <= 0 {
		t.Error("default CLI limit should be positive")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[engine]
result_limit = 10
regex_budget_ms = 5
idle_shows_all = true

[cli]
default_limit = 8
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Engine.ResultLimit != 10 || cfg.Engine.RegexBudgetMs != 5 || !cfg.Engine.IdleShowsAll {
		t.Errorf("engine section not applied: %+v", cfg.Engine)
	}
	if cfg.CLI.DefaultLimit != 8 {
		t.Errorf("cli section not applied: %+v", cfg.CLI)
	}
	// unspecified keys keep their defaults
	if cfg.Engine.DebounceMs != DefaultConfig().Engine.DebounceMs {
		t.Errorf("missing key lost its default: %+v", cfg.Engine)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// engine section is fine, cli holds a value of the wrong type
	content := `
[engine]
result_limit = 7

[cli]
default_limit = "lots"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should recover, got %v", err)
	}
	if cfg.Engine.ResultLimit != 7 {
		t.Errorf("valid section was lost in recovery: %+v", cfg.Engine)
	}
	if cfg.CLI.DefaultLimit != DefaultConfig().CLI.DefaultLimit {
		t.Errorf("broken value should fall back to its default: %+v", cfg.CLI)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Engine.DebounceMs != DefaultConfig().Engine.DebounceMs {
		t.Errorf("created config should carry defaults: %+v", cfg.Engine)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

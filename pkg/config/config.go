/*
Package config manages TOML config for lexiterm.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/lexiterm/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Engine EngineConfig `toml:"engine"`
	CLI    CliConfig    `toml:"cli"`
}

// EngineConfig tunes the query engine and controller.
type EngineConfig struct {
	// ResultLimit caps how many matches the interactive surfaces show.
	// 0 shows everything.
	ResultLimit int `toml:"result_limit"`
	// RegexBudgetMs caps one word's pattern evaluation, in milliseconds.
	// 0 disables the cap.
	RegexBudgetMs int `toml:"regex_budget_ms"`
	// IdleShowsAll exposes the whole scored dictionary when the query is
	// empty instead of an empty result.
	IdleShowsAll bool `toml:"idle_shows_all"`
	// DebounceMs is the async worker's event-collapse window.
	DebounceMs int `toml:"debounce_ms"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	ShowScores   bool `toml:"show_scores"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/lexiterm
// 2. Current executable dir
// 3. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	return filepath.Join(homeDir, ".config", "lexiterm"), nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/lexiterm/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			ResultLimit:   0,
			RegexBudgetMs: 50,
			IdleShowsAll:  false,
			DebounceMs:    100,
		},
		CLI: CliConfig{
			DefaultLimit: 24,
			ShowScores:   true,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever valid sections a broken TOML file has.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if engineSection, ok := utils.ExtractSection(tempConfig, "engine"); ok {
		extractEngineConfig(engineSection, &config.Engine)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractEngineConfig extracts engine configuration from a map
func extractEngineConfig(data map[string]any, engine *EngineConfig) {
	if val, ok := utils.ExtractInt64(data, "result_limit"); ok {
		engine.ResultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "regex_budget_ms"); ok {
		engine.RegexBudgetMs = val
	}
	if val, ok := utils.ExtractBool(data, "idle_shows_all"); ok {
		engine.IdleShowsAll = val
	}
	if val, ok := utils.ExtractInt64(data, "debounce_ms"); ok {
		engine.DebounceMs = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "show_scores"); ok {
		cli.ShowScores = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

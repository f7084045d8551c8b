package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"clawcost/claw"
)

// Default configuration values.
const (
	defaultConfigPath = "config.json"
	defaultInput      = "-"
	defaultBaseURL    = "https://adventofcode.com"
	defaultInputPath  = "/2024/day/13/input"
	defaultUA         = "clawcost/1.0"
)

// envConfigPath names the config file when --config is not given.
const envConfigPath = "CLAWCOST_CONFIG"

// fetchConfig describes where puzzle input is downloaded from.
type fetchConfig struct {
	BaseURL   string `json:"base_url,omitempty"`
	Path      string `json:"path,omitempty"`
	Session   string `json:"session,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// appConfig holds the application configuration.
type appConfig struct {
	Input           string      `json:"input"`
	PrizeAdjustment int64       `json:"prize_adjustment"`
	Strict          bool        `json:"strict"`
	Fetch           fetchConfig `json:"fetch,omitempty"`
}

func defaultConfig() appConfig {
	return appConfig{
		Input:           defaultInput,
		PrizeAdjustment: claw.LargeTargetAdjustment,
		Fetch: fetchConfig{
			BaseURL:   defaultBaseURL,
			Path:      defaultInputPath,
			UserAgent: defaultUA,
		},
	}
}

// resolveConfigPath picks the flag value, then $CLAWCOST_CONFIG, then config.json.
func resolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv(envConfigPath)); p != "" {
		return p
	}
	return defaultConfigPath
}

// loadConfig loads configuration from path. A missing file yields defaults.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return appConfig{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Input = strings.TrimSpace(cfg.Input)
	if cfg.Input == "" {
		cfg.Input = defaultInput
	}
	if cfg.PrizeAdjustment < 0 {
		return appConfig{}, fmt.Errorf("prize_adjustment must be >= 0, got %d", cfg.PrizeAdjustment)
	}
	cfg.Fetch.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Fetch.BaseURL), "/")
	if cfg.Fetch.BaseURL == "" {
		cfg.Fetch.BaseURL = defaultBaseURL
	}
	if strings.TrimSpace(cfg.Fetch.Path) == "" {
		cfg.Fetch.Path = defaultInputPath
	}
	cfg.Fetch.Session = strings.TrimSpace(cfg.Fetch.Session)
	if cfg.Fetch.Session == "" {
		cfg.Fetch.Session = strings.TrimSpace(os.Getenv("AOC_SESSION"))
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = defaultUA
	}
	return cfg, nil
}

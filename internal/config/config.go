package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Universe struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"universe"`
	NAV struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Retries        int    `yaml:"retries"`
	} `yaml:"nav"`
	Cache struct {
		TTLHours  int    `yaml:"ttl_hours"`
		SweepCron string `yaml:"sweep_cron"`
	} `yaml:"cache"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	// Policy carries the keyword lists the selection filters match fund names
	// against. Empty lists fall back to the package defaults, so the selection
	// policy can change without touching the engine.
	Policy struct {
		RiskySectors           []string `yaml:"risky_sectors"`
		DefunctSchemes         []string `yaml:"defunct_schemes"`
		RiskyAllCategories     bool     `yaml:"risky_all_categories"`
		BalancedNames          []string `yaml:"balanced_names"`
		AggressiveExclusions   []string `yaml:"aggressive_exclusions"`
		ConservativeExclusions []string `yaml:"conservative_exclusions"`
	} `yaml:"policy"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("UNIVERSE_CSV"); v != "" {
		cfg.Universe.CSVPath = v
	}
	if v := os.Getenv("NAV_BASE_URL"); v != "" {
		cfg.NAV.BaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.NAV.BaseURL == "" {
		cfg.NAV.BaseURL = "https://api.mfapi.in"
	}
	if cfg.NAV.TimeoutSeconds == 0 {
		cfg.NAV.TimeoutSeconds = 30
	}
	if cfg.NAV.Retries == 0 {
		cfg.NAV.Retries = 3
	}
	if cfg.Cache.TTLHours == 0 {
		cfg.Cache.TTLHours = 6
	}
	if cfg.Cache.SweepCron == "" {
		cfg.Cache.SweepCron = "0 0 6 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/planner.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Universe.CSVPath == "" {
		return fmt.Errorf("universe.csv_path is required")
	}
	if c.NAV.BaseURL == "" {
		return fmt.Errorf("nav.base_url is required")
	}
	return nil
}

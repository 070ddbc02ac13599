package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"HurstLab/internal/hurst"
)

// WatchItem is one symbol/timeframe pair analyzed on schedule.
type WatchItem struct {
	Symbol    string `yaml:"symbol"`
	Timeframe string `yaml:"timeframe"`
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL         string  `yaml:"base_url"`
		APIKey          string  `yaml:"api_key"`
		RatePerSecond   float64 `yaml:"rate_per_second"`
		BreakerFailures uint32  `yaml:"breaker_failures"`
	} `yaml:"data_source"`
	Analysis  hurst.Config `yaml:"analysis"`
	Watchlist []WatchItem  `yaml:"watchlist"`
	Schedule  struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	State struct {
		File string `yaml:"file"`
	} `yaml:"state"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{Analysis: hurst.DefaultConfig()}

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
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("IEX_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("IEX_TOKEN"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HURST_SECTIONS"); v != "" {
		sections, err := hurst.ParseSections(v)
		if err != nil {
			return nil, fmt.Errorf("HURST_SECTIONS: %w", err)
		}
		cfg.Analysis.Sections = sections
	}

	// Defaults
	if cfg.DataSource.RatePerSecond == 0 {
		cfg.DataSource.RatePerSecond = 2
	}
	if cfg.DataSource.BreakerFailures == 0 {
		cfg.DataSource.BreakerFailures = 3
	}
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = []WatchItem{{Symbol: "SPY", Timeframe: "5y"}}
	}
	for i := range cfg.Watchlist {
		cfg.Watchlist[i].Symbol = strings.ToUpper(cfg.Watchlist[i].Symbol)
		if cfg.Watchlist[i].Timeframe == "" {
			cfg.Watchlist[i].Timeframe = "5y"
		}
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 30 22 * * 1-5"
	}
	if cfg.State.File == "" {
		cfg.State.File = "data/hurst_state.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/hurstlab.db"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "exports"
	}

	return cfg, nil
}

// Validate checks the analysis settings and watchlist.
func (c *Config) Validate() error {
	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	if c.DataSource.RatePerSecond < 0 {
		return fmt.Errorf("data_source.rate_per_second must not be negative")
	}
	for _, w := range c.Watchlist {
		if w.Symbol == "" {
			return fmt.Errorf("watchlist entry without symbol")
		}
	}
	return nil
}

// ValidateNotifier checks the fields needed to post to Telegram.
func (c *Config) ValidateNotifier() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	return nil
}

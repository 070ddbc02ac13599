package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"HurstLab/internal/collector"
	"HurstLab/internal/config"
	"HurstLab/internal/recorder"
)

type rootOptions struct {
	configPath string
	source     string
}

func newRootCmd(ctx context.Context) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "hurstlab",
		Short:         "Hurst exponent analysis of market price series",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultConfig := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultConfig = v
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfig, "path to the YAML config file")
	root.PersistentFlags().StringVar(&opts.source, "source", "auto", "data source: auto, iex, yahoo, mock")

	root.AddCommand(analyzeCmd(ctx, opts))
	root.AddCommand(serveCmd(ctx, opts))
	return root
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// newFetcher picks the data source and wraps it with the rate limiter and circuit breaker.
func (o *rootOptions) newFetcher(cfg *config.Config) (collector.Fetcher, error) {
	var inner collector.Fetcher
	switch o.source {
	case "auto":
		if cfg.DataSource.BaseURL != "" {
			inner = collector.NewIEXFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
		} else {
			inner = collector.NewYahooFetcher(cfg.Proxy)
		}
	case "iex":
		if cfg.DataSource.BaseURL == "" {
			return nil, fmt.Errorf("source iex needs data_source.base_url or IEX_BASE_URL")
		}
		inner = collector.NewIEXFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "yahoo":
		inner = collector.NewYahooFetcher(cfg.Proxy)
	case "mock":
		return &collector.MockFetcher{Price: 100}, nil
	default:
		return nil, fmt.Errorf("unknown source %q", o.source)
	}
	log.Printf("[INFO] data source: %s", inner.Name())
	return collector.NewGuardedFetcher(inner, cfg.DataSource.RatePerSecond, cfg.DataSource.BreakerFailures), nil
}

func openRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Database.SQLitePath), 0755); err != nil {
		log.Printf("[WARN] create database dir failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}

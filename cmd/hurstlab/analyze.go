package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"HurstLab/internal/collector"
	"HurstLab/internal/hurst"
	"HurstLab/internal/notifier"
	"HurstLab/internal/report"
	"HurstLab/internal/scheduler"
	"HurstLab/internal/state"
)

func analyzeCmd(ctx context.Context, root *rootOptions) *cobra.Command {
	var (
		ticker    string
		timeframe string
		output    string
		sections  string
		notify    bool
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run one R/S analysis and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "table" && output != "csv" {
				return fmt.Errorf("unknown output %q (table, csv)", output)
			}
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if sections != "" {
				sc, err := hurst.ParseSections(sections)
				if err != nil {
					return fmt.Errorf("--sections: %w", err)
				}
				cfg.Analysis.Sections = sc
			}
			if notify {
				if err := cfg.ValidateNotifier(); err != nil {
					return fmt.Errorf("--notify: %w", err)
				}
			}

			fetcher, err := root.newFetcher(cfg)
			if err != nil {
				return err
			}
			an, err := hurst.NewAnalyzer(cfg.Analysis)
			if err != nil {
				return err
			}
			sm, err := state.NewManager(cfg.State.File)
			if err != nil {
				return fmt.Errorf("init state: %w", err)
			}
			rec := openRecorder(cfg)
			defer rec.Close()

			var sender scheduler.Sender
			if notify {
				sender = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
			}
			s := scheduler.NewScheduler(ctx, collector.NewCollector(fetcher), an, sm, nil, rec, nil)
			if output == "csv" {
				s.ExportDir = cfg.Export.Dir
			}

			a, shift, err := s.Run(ctx, strings.ToUpper(ticker), timeframe)
			if err != nil {
				return err
			}
			if err := report.WriteTable(cmd.OutOrStdout(), a); err != nil {
				return err
			}
			if output == "csv" {
				fmt.Fprintf(cmd.OutOrStdout(), "\nCSV written to %s\n", filepath.Join(cfg.Export.Dir, report.FileName(a)))
			}
			if shift != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\nRegime shift: %s -> %s\n", shift.Previous.Regime, shift.Current.Regime)
			}
			if sender != nil {
				if err := sender.SendWithRetry(ctx, notifier.FormatSummary(a), 3); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "notify: %v\n", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&ticker, "ticker", "t", "SPY", "symbol to analyze")
	cmd.Flags().StringVar(&timeframe, "timeframe", "5y", "history to fetch (1y, 2y, 5y, max)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output mode: table or csv")
	cmd.Flags().StringVar(&sections, "sections", "", "sections: full, halves, thirds, periods:N, scales:N")
	cmd.Flags().BoolVar(&notify, "notify", false, "post the summary to Telegram")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"HurstLab/internal/collector"
	"HurstLab/internal/hurst"
	"HurstLab/internal/notifier"
	"HurstLab/internal/scheduler"
	"HurstLab/internal/state"
)

func serveCmd(ctx context.Context, root *rootOptions) *cobra.Command {
	var runOnStart bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the watchlist on a cron schedule and answer Telegram commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Println("[INFO] HurstLab starting...")
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.ValidateNotifier(); err != nil {
				return err
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

			tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

			sched := scheduler.NewScheduler(ctx, collector.NewCollector(fetcher), an, sm, tn, rec, cfg.Watchlist)
			if err := sched.RegisterAll(cfg.Schedule.DailyCron); err != nil {
				return fmt.Errorf("register cron tasks: %w", err)
			}
			sched.Start()
			defer sched.Stop()

			go tn.StartPolling(ctx, sched.HandleCommand)
			log.Println("[INFO] Telegram polling started")

			if runOnStart || os.Getenv("RUN_ON_START") == "true" {
				log.Println("[INFO] run on start enabled, executing watchlist now")
				go sched.RunWatchlistNow()
			}

			log.Println("[INFO] HurstLab is running. Press Ctrl+C to stop.")
			<-ctx.Done()
			log.Println("[INFO] shutdown signal received, stopping...")
			return nil
		},
	}
	cmd.Flags().BoolVar(&runOnStart, "run-on-start", false, "run the watchlist immediately")
	return cmd
}

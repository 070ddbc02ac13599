package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"HurstLab/internal/collector"
	"HurstLab/internal/config"
	"HurstLab/internal/hurst"
	"HurstLab/internal/model"
	"HurstLab/internal/notifier"
	"HurstLab/internal/recorder"
	"HurstLab/internal/report"
	"HurstLab/internal/state"

	"github.com/robfig/cron/v3"
)

// Sender delivers a text message, retrying on failure.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler runs Hurst analyses for the watchlist on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Analyzer  *hurst.Analyzer
	State     *state.Manager
	Notifier  Sender
	Recorder  recorder.Recorder
	Watchlist []config.WatchItem
	ExportDir string
	Ctx       context.Context

	// running serializes watchlist runs triggered by cron and by commands.
	running sync.Mutex
}

// NewScheduler creates a new Scheduler. Notifier may be nil.
func NewScheduler(ctx context.Context, col *collector.Collector, an *hurst.Analyzer, sm *state.Manager,
	tn Sender, rec recorder.Recorder, watchlist []config.WatchItem) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Analyzer:  an,
		State:     sm,
		Notifier:  tn,
		Recorder:  rec,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// RegisterAll registers the daily watchlist task.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunWatchlistNow executes the daily task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunWatchlistNow() {
	s.dailyTask()
}

// Run collects, analyzes, records and tracks one symbol. A non-nil shift means the
// full-series regime changed since the previous run.
func (s *Scheduler) Run(ctx context.Context, symbol, timeframe string) (*model.HurstAnalysis, *state.Shift, error) {
	series, err := s.Collector.Collect(ctx, symbol, timeframe)
	if err != nil {
		return nil, nil, err
	}
	a, err := s.Analyzer.Analyze(series)
	if err != nil {
		return nil, nil, fmt.Errorf("analyze %s %s: %w", symbol, timeframe, err)
	}

	if s.Recorder != nil {
		if err := s.Recorder.RecordAnalysis(a); err != nil {
			log.Printf("[ERROR] record analysis: %v", err)
		}
	}
	if s.ExportDir != "" {
		if path, err := report.ExportCSV(s.ExportDir, a); err != nil {
			log.Printf("[ERROR] export csv: %v", err)
		} else {
			log.Printf("[INFO] exported %s", path)
		}
	}

	for _, sr := range a.Sections {
		if sr.Err != nil {
			log.Printf("[WARN] %s %s section %s skipped: %v", symbol, timeframe, sr.Section.Name, sr.Err)
		}
	}

	var shift *state.Shift
	if s.State != nil {
		shift = s.State.Update(a)
	}
	log.Printf("[INFO] %s %s: H=%.2f (%s)", symbol, timeframe, a.FullSeries.HurstExponent, a.FullSeries.Regime)
	return a, shift, nil
}

func (s *Scheduler) dailyTask() {
	s.running.Lock()
	defer s.running.Unlock()

	log.Printf("[INFO] running watchlist (%d items)", len(s.Watchlist))
	for _, w := range s.Watchlist {
		if s.Ctx.Err() != nil {
			return
		}
		a, shift, err := s.Run(s.Ctx, w.Symbol, w.Timeframe)
		if err != nil {
			log.Printf("[ERROR] watchlist %s %s: %v", w.Symbol, w.Timeframe, err)
			s.trySend(notifier.FormatError(w.Symbol+" "+w.Timeframe, err))
			continue
		}
		s.trySend(notifier.FormatSummary(a))
		if shift != nil {
			s.trySend(notifier.FormatShift(shift))
		}
	}
}

const helpText = "Available commands:\n" +
	"• /hurst SYMBOL [timeframe]\n" +
	"• /history SYMBOL\n" +
	"• /watchlist"

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}

	switch fields[0] {
	case "/hurst":
		if len(fields) < 2 {
			return "Usage: /hurst SYMBOL [timeframe]"
		}
		symbol := strings.ToUpper(fields[1])
		timeframe := "5y"
		if len(fields) > 2 {
			timeframe = fields[2]
		}
		a, shift, err := s.Run(ctx, symbol, timeframe)
		if err != nil {
			return notifier.FormatError(symbol+" "+timeframe, err)
		}
		reply := notifier.FormatDetail(a)
		if shift != nil {
			reply += "\n" + notifier.FormatShift(shift)
		}
		return reply
	case "/history":
		if len(fields) < 2 {
			return "Usage: /history SYMBOL"
		}
		symbol := strings.ToUpper(fields[1])
		if s.Recorder == nil {
			return notifier.FormatHistory(symbol, nil)
		}
		rows, err := s.Recorder.RecentAnalyses(symbol, 5)
		if err != nil {
			return notifier.FormatError("history "+symbol, err)
		}
		return notifier.FormatHistory(symbol, rows)
	case "/watchlist":
		go s.dailyTask()
		return fmt.Sprintf("Running %d watchlist analyses...", len(s.Watchlist))
	default:
		return helpText
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	DefaultWeeklyReset     = "0 0 * * 1"
	DefaultMonthlyReset    = "0 0 1 * *"
	DefaultStreakReconcile = "30 0 * * *"

	jobTimeout = 5 * time.Minute
)

type Resetter interface {
	ResetWeekly(ctx context.Context) (int64, error)
	ResetMonthly(ctx context.Context) (int64, error)
}

type Reconciler interface {
	ReconcileStreaks(ctx context.Context) (int, error)
}

// RunRecorder receives the outcome of every job run.
type RunRecorder func(job string, err error)

type Specs struct {
	WeeklyReset     string
	MonthlyReset    string
	StreakReconcile string
}

type Scheduler struct {
	cron       *cron.Cron
	stats      Resetter
	habits     Reconciler
	onRun      RunRecorder
	jobTimeout time.Duration
}

func New(loc *time.Location, stats Resetter, habits Reconciler, onRun RunRecorder) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	if onRun == nil {
		onRun = func(string, error) {}
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		stats:      stats,
		habits:     habits,
		onRun:      onRun,
		jobTimeout: jobTimeout,
	}
}

// Register adds the maintenance jobs. Empty specs fall back to defaults.
func (s *Scheduler) Register(specs Specs) error {
	jobs := []struct {
		name string
		spec string
		def  string
		run  func(ctx context.Context) error
	}{
		{"weekly_reset", specs.WeeklyReset, DefaultWeeklyReset, s.ResetWeekly},
		{"monthly_reset", specs.MonthlyReset, DefaultMonthlyReset, s.ResetMonthly},
		{"streak_reconcile", specs.StreakReconcile, DefaultStreakReconcile, s.ReconcileStreaks},
	}
	for _, j := range jobs {
		spec := j.spec
		if spec == "" {
			spec = j.def
		}
		if _, err := s.cron.AddFunc(spec, s.wrap(j.name, j.run)); err != nil {
			return errors.New("registering job " + j.name + " error: " + err.Error())
		}
	}
	return nil
}

func (s *Scheduler) wrap(name string, run func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
		defer cancel()
		start := time.Now()
		err := run(ctx)
		s.onRun(name, err)
		if err != nil {
			slog.Error("scheduled job failed", slog.String("job", name), slog.String("error", err.Error()))
			return
		}
		slog.Info("scheduled job finished", slog.String("job", name), slog.Duration("took", time.Since(start)))
	}
}

func (s *Scheduler) ResetWeekly(ctx context.Context) error {
	n, err := s.stats.ResetWeekly(ctx)
	if err != nil {
		return err
	}
	slog.Info("weekly completions reset", slog.Int64("users", n))
	return nil
}

func (s *Scheduler) ResetMonthly(ctx context.Context) error {
	n, err := s.stats.ResetMonthly(ctx)
	if err != nil {
		return err
	}
	slog.Info("monthly completions reset", slog.Int64("users", n))
	return nil
}

func (s *Scheduler) ReconcileStreaks(ctx context.Context) error {
	fixed, err := s.habits.ReconcileStreaks(ctx)
	if fixed > 0 {
		slog.Warn("cached streaks diverged from ledger", slog.Int("fixed", fixed))
	}
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

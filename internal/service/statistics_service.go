package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/progress"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/pkg/entity"
)

// StatisticsService keeps per-user counters and daily snapshots in step with completions.
// Every step of an update is attempted independently: a failed step is reported
// in the joined error while the other steps still apply.
type StatisticsService struct {
	statsRepo  repository.StatisticsRepositoryI
	habitsRepo repository.HabitsRepositoryI
	clock      *Clock
}

func NewStatisticsService(statsRepo repository.StatisticsRepositoryI, habitsRepo repository.HabitsRepositoryI, clock *Clock) *StatisticsService {
	if statsRepo == nil || habitsRepo == nil {
		log.Fatal("on statistics service provided nil repos")
	}
	return &StatisticsService{
		statsRepo:  statsRepo,
		habitsRepo: habitsRepo,
		clock:      clock,
	}
}

func (ss *StatisticsService) Initialize(ctx context.Context, uid uuid.UUID, createdAt time.Time) error {
	if err := ss.statsRepo.Init(ctx, uid, createdAt); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (ss *StatisticsService) OnHabitCreated(ctx context.Context, uid uuid.UUID) error {
	if err := ss.statsRepo.IncrementCreated(ctx, uid); err != nil {
		return errors.New("incrementing created habits: " + err.Error())
	}
	return nil
}

func (ss *StatisticsService) OnHabitCompleted(ctx context.Context, uid uuid.UUID, day time.Time, xp int) error {
	var errs []error
	snapshot, created, err := ss.upsertDay(ctx, uid, day, 1, xp)
	errs = append(errs, err)
	if err = ss.statsRepo.ApplyCompletion(ctx, uid, 1, xp, day, created); err != nil {
		errs = append(errs, errors.New("applying completion: "+err.Error()))
	}
	errs = append(errs, ss.RecomputeStreaks(ctx, uid))
	if snapshot != nil && isPerfect(snapshot) {
		errs = append(errs, ss.markPerfect(ctx, uid, day))
	}
	return errors.Join(errs...)
}

func (ss *StatisticsService) OnHabitUncompleted(ctx context.Context, uid uuid.UUID, day time.Time, xp int) error {
	var errs []error
	snapshot, _, err := ss.upsertDay(ctx, uid, day, -1, -xp)
	errs = append(errs, err)
	if err = ss.statsRepo.ApplyCompletion(ctx, uid, -1, -xp, day, false); err != nil {
		errs = append(errs, errors.New("applying uncompletion: "+err.Error()))
	}
	errs = append(errs, ss.RecomputeStreaks(ctx, uid))
	// Undoing any completion breaks the day even if the counts still add up,
	// since total_habits follows the current habit count.
	if snapshot != nil {
		errs = append(errs, ss.breakPerfect(ctx, uid, day))
	}
	return errors.Join(errs...)
}

func isPerfect(d *entity.DailyStat) bool {
	return d.TotalHabits > 0 && d.HabitsCompleted >= d.TotalHabits
}

func (ss *StatisticsService) upsertDay(ctx context.Context, uid uuid.UUID, day time.Time, delta, xp int) (*entity.DailyStat, bool, error) {
	total, err := ss.habitsRepo.CountByUserID(ctx, uid)
	if err != nil {
		return nil, false, errors.New("counting habits: " + err.Error())
	}
	snapshot, created, err := ss.statsRepo.UpsertDay(ctx, uid, day, delta, total, xp)
	if err != nil {
		return nil, false, errors.New("upserting day snapshot: " + err.Error())
	}
	return snapshot, created, nil
}

// markPerfect counts the day once. A day broken earlier stays unmarked.
func (ss *StatisticsService) markPerfect(ctx context.Context, uid uuid.UUID, day time.Time) error {
	marked, err := ss.statsRepo.MarkPerfect(ctx, uid, day)
	if err != nil {
		return errors.New("marking perfect day: " + err.Error())
	}
	if !marked {
		return nil
	}
	var errs []error
	if err = ss.statsRepo.AdjustPerfectDays(ctx, uid, 1); err != nil {
		errs = append(errs, errors.New("counting perfect day: "+err.Error()))
	}
	errs = append(errs, ss.refreshPerfectRun(ctx, uid))
	return errors.Join(errs...)
}

func (ss *StatisticsService) breakPerfect(ctx context.Context, uid uuid.UUID, day time.Time) error {
	broken, err := ss.statsRepo.BreakPerfect(ctx, uid, day)
	if err != nil {
		return errors.New("breaking perfect day: " + err.Error())
	}
	if !broken {
		return nil
	}
	var errs []error
	if err = ss.statsRepo.AdjustPerfectDays(ctx, uid, -1); err != nil {
		errs = append(errs, errors.New("uncounting perfect day: "+err.Error()))
	}
	errs = append(errs, ss.refreshPerfectRun(ctx, uid))
	return errors.Join(errs...)
}

func (ss *StatisticsService) refreshPerfectRun(ctx context.Context, uid uuid.UUID) error {
	days, err := ss.statsRepo.RecentDays(ctx, uid, progress.PerfectRunWindow)
	if err != nil {
		return errors.New("getting recent days: " + err.Error())
	}
	if err = ss.statsRepo.SetPerfectRun(ctx, uid, progress.ConsecutivePerfectDays(days)); err != nil {
		return errors.New("setting perfect run: " + err.Error())
	}
	return nil
}

func (ss *StatisticsService) RecomputeStreaks(ctx context.Context, uid uuid.UUID) error {
	habits, err := ss.habitsRepo.GetByUserID(ctx, uid)
	if err != nil {
		return errors.New("getting habits: " + err.Error())
	}
	dates := make([][]time.Time, 0, len(habits))
	best := 0
	for _, h := range habits {
		dates = append(dates, h.CompletedDates)
		best = max(best, h.Streak)
	}
	current := progress.UserStreak(dates, ss.clock.Now())
	if err = ss.statsRepo.SetStreaks(ctx, uid, current, best); err != nil {
		return errors.New("setting streaks: " + err.Error())
	}
	return nil
}

func (ss *StatisticsService) Get(ctx context.Context, uid uuid.UUID) (*entity.UserStatistics, error) {
	stats, err := ss.statsRepo.Get(ctx, uid)
	if errors.Is(err, errorvalues.ErrStatsNotFound) {
		if err = ss.Initialize(ctx, uid, ss.clock.Now()); err != nil {
			return nil, err
		}
		stats, err = ss.statsRepo.Get(ctx, uid)
	}
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return stats, nil
}

func (ss *StatisticsService) DailyRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyStat, error) {
	days, err := ss.statsRepo.DailyRange(ctx, uid, ss.clock.Day(from), ss.clock.Day(to))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return days, nil
}

func (ss *StatisticsService) ResetWeekly(ctx context.Context) (int64, error) {
	n, err := ss.statsRepo.ResetWeekly(ctx)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	return n, nil
}

func (ss *StatisticsService) ResetMonthly(ctx context.Context) (int64, error) {
	n, err := ss.statsRepo.ResetMonthly(ctx)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	return n, nil
}

package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/progress"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/pkg/entity"
)

type HabitChecksService struct {
	habitsRepo  repository.HabitsRepositoryI
	checksRepo  repository.HabitChecksRepositoryI
	usersRepo   repository.UsersRepositoryI
	stats       StatisticsServiceI
	challenges  ChallengeServiceI
	leaderboard LeaderboardServiceI
	clock       *Clock
}

func NewHabitChecksService(
	habitsRepo repository.HabitsRepositoryI,
	checksRepo repository.HabitChecksRepositoryI,
	usersRepo repository.UsersRepositoryI,
	stats StatisticsServiceI,
	challenges ChallengeServiceI,
	leaderboard LeaderboardServiceI,
	clock *Clock,
) *HabitChecksService {
	if habitsRepo == nil || checksRepo == nil || usersRepo == nil {
		log.Fatal("on habit checks service provided nil repos")
	}
	return &HabitChecksService{
		habitsRepo:  habitsRepo,
		checksRepo:  checksRepo,
		usersRepo:   usersRepo,
		stats:       stats,
		challenges:  challenges,
		leaderboard: leaderboard,
		clock:       clock,
	}
}

func (serv *HabitChecksService) ownedHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (serv *HabitChecksService) ToggleHabit(ctx context.Context, habitID, userID uuid.UUID, date time.Time) (*entity.ToggleResult, error) {
	if _, err := serv.ownedHabit(ctx, habitID, userID); err != nil {
		return nil, err
	}
	now := serv.clock.Now()
	if date.IsZero() {
		date = now
	}
	day := serv.clock.Day(date)
	if day.After(progress.DayKey(now)) {
		return nil, errorvalues.ErrCheckDateNotAllowed
	}
	habit, completed, err := serv.checksRepo.Toggle(ctx, habitID, day, func(dates []time.Time) int {
		return progress.Streak(dates, now)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	delta := progress.CompletionXP
	if !completed {
		delta = -progress.CompletionXP
	}
	change, err := serv.usersRepo.AddXP(ctx, userID, delta)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}

	uidAttr := slog.String("uid", userID.String())
	if completed {
		logFailure("updating statistics on completion", serv.stats.OnHabitCompleted(ctx, userID, day, progress.CompletionXP), uidAttr)
	} else {
		logFailure("updating statistics on uncompletion", serv.stats.OnHabitUncompleted(ctx, userID, day, progress.CompletionXP), uidAttr)
	}
	logFailure("invalidating leaderboard", serv.leaderboard.Invalidate(ctx), uidAttr)
	result := &entity.ToggleResult{
		Habit:     habit,
		Completed: completed,
		Day:       day,
		XP:        change,
	}
	evaluation, err := serv.challenges.Evaluate(ctx, userID)
	if err != nil {
		logFailure("evaluating challenges", err, uidAttr)
	} else if len(evaluation.Completed) > 0 {
		result.Challenges = evaluation
	}
	return result, nil
}

func (serv *HabitChecksService) GetHabitChecks(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.HabitCheck, error) {
	if _, err := serv.ownedHabit(ctx, habitID, userID); err != nil {
		return nil, err
	}
	if to.IsZero() {
		to = serv.clock.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	checks, err := serv.checksRepo.GetByHabitAndDateRange(ctx, habitID, serv.clock.Day(from), serv.clock.Day(to))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return checks, nil
}

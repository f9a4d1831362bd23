package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/progress"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/pkg/entity"
)

type HabitsService struct {
	repo       repository.HabitsRepositoryI
	stats      StatisticsServiceI
	challenges ChallengeServiceI
	clock      *Clock
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, stats StatisticsServiceI, challenges ChallengeServiceI, clock *Clock) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo:       habitsRepo,
		stats:      stats,
		challenges: challenges,
		clock:      clock,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	h := entity.Habit{
		UserID:      uid,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	logFailure("updating statistics on habit creation", hs.stats.OnHabitCreated(ctx, uid), slog.String("uid", uid.String()))
	hs.evaluateChallenges(ctx, uid)
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) evaluateChallenges(ctx context.Context, uid uuid.UUID) {
	_, err := hs.challenges.Evaluate(ctx, uid)
	logFailure("evaluating challenges", err, slog.String("uid", uid.String()))
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	if _, err := hs.GetHabit(ctx, habitID, userID); err != nil {
		return err
	}
	err := hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	logFailure("recomputing streaks on habit deletion", hs.stats.RecomputeStreaks(ctx, userID), slog.String("uid", userID.String()))
	hs.evaluateChallenges(ctx, userID)
	return nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) ReconcileStreaks(ctx context.Context) (int, error) {
	habits, err := hs.repo.ListAll(ctx)
	if err != nil {
		return 0, errors.New("habits repository error: " + err.Error())
	}
	now := hs.clock.Now()
	fixed := 0
	var errs []error
	for _, h := range habits {
		streak := progress.Streak(h.CompletedDates, now)
		if streak == h.Streak {
			continue
		}
		if err = hs.repo.SetStreak(ctx, h.ID, streak); err != nil {
			errs = append(errs, errors.New("habit "+h.ID.String()+": "+err.Error()))
			continue
		}
		fixed++
	}
	return fixed, errors.Join(errs...)
}

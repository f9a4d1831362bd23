package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/limbo/rehabit/internal/challenge"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/progress"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/pkg/entity"
)

type ChallengeService struct {
	store       repository.ChallengeStoreI
	catalog     *challenge.Catalog
	usersRepo   repository.UsersRepositoryI
	habitsRepo  repository.HabitsRepositoryI
	leaderboard LeaderboardServiceI
	rnd         challenge.Rand
	clock       *Clock
}

func NewChallengeService(
	store repository.ChallengeStoreI,
	catalog *challenge.Catalog,
	usersRepo repository.UsersRepositoryI,
	habitsRepo repository.HabitsRepositoryI,
	leaderboard LeaderboardServiceI,
	rnd challenge.Rand,
	clock *Clock,
) *ChallengeService {
	if store == nil || catalog == nil || usersRepo == nil || habitsRepo == nil {
		log.Fatal("on challenge service provided nil dependencies")
	}
	if rnd == nil {
		rnd = challenge.DefaultRand
	}
	return &ChallengeService{
		store:       store,
		catalog:     catalog,
		usersRepo:   usersRepo,
		habitsRepo:  habitsRepo,
		leaderboard: leaderboard,
		rnd:         rnd,
		clock:       clock,
	}
}

func (cs *ChallengeService) snapshot(ctx context.Context, uid uuid.UUID) (challenge.Snapshot, error) {
	user, err := cs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return challenge.Snapshot{}, err
		}
		return challenge.Snapshot{}, errors.New("repository error: " + err.Error())
	}
	habits, err := cs.habitsRepo.GetByUserID(ctx, uid)
	if err != nil {
		return challenge.Snapshot{}, errors.New("repository error: " + err.Error())
	}
	return challenge.Snapshot{
		User:   user,
		Habits: habits,
		Now:    cs.clock.Now(),
	}, nil
}

// state loads the pool, drawing a fresh one on first access.
func (cs *ChallengeService) state(ctx context.Context, uid uuid.UUID) (*entity.ChallengeState, error) {
	state, err := cs.store.Load(ctx, uid)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, errorvalues.ErrCacheMiss) {
		return nil, errors.New("challenge store error: " + err.Error())
	}
	state, err = cs.store.Update(ctx, uid, func(current *entity.ChallengeState) (*entity.ChallengeState, error) {
		if current != nil {
			return nil, nil
		}
		fresh := cs.catalog.NewState(cs.rnd)
		return &fresh, nil
	})
	if err != nil {
		return nil, errors.New("challenge store error: " + err.Error())
	}
	return state, nil
}

func (cs *ChallengeService) Board(ctx context.Context, uid uuid.UUID) (*entity.ChallengeBoard, error) {
	state, err := cs.state(ctx, uid)
	if err != nil {
		return nil, err
	}
	return cs.board(ctx, uid, state)
}

func (cs *ChallengeService) board(ctx context.Context, uid uuid.UUID, state *entity.ChallengeState) (*entity.ChallengeBoard, error) {
	snap, err := cs.snapshot(ctx, uid)
	if err != nil {
		return nil, err
	}
	pulse, err := cs.store.Pulse(ctx, uid)
	if err != nil {
		logFailure("reading challenge pulse", err, slog.String("uid", uid.String()))
		pulse = []int{}
	}
	board := cs.catalog.Board(*state, snap, pulse)
	return &board, nil
}

func (cs *ChallengeService) Evaluate(ctx context.Context, uid uuid.UUID) (*entity.ChallengeEvaluation, error) {
	snap, err := cs.snapshot(ctx, uid)
	if err != nil {
		return nil, err
	}
	var (
		completed    []int
		oldXP, newXP int
	)
	_, err = cs.store.Update(ctx, uid, func(current *entity.ChallengeState) (*entity.ChallengeState, error) {
		completed = nil
		var state entity.ChallengeState
		if current == nil {
			state = cs.catalog.NewState(cs.rnd)
		} else {
			state = *current
		}
		oldXP = state.ChallengeXP
		for _, id := range cs.catalog.Evaluate(state, snap) {
			next, done, err := cs.catalog.Complete(state, id)
			if err != nil {
				return nil, err
			}
			state = next
			if done {
				completed = append(completed, id)
			}
		}
		newXP = state.ChallengeXP
		if len(completed) == 0 && current != nil {
			return nil, nil
		}
		return &state, nil
	})
	if err != nil {
		return nil, errors.New("challenge store error: " + err.Error())
	}
	result := &entity.ChallengeEvaluation{
		Completed: []int{},
	}
	if len(completed) == 0 {
		return result, nil
	}
	result.Completed = completed
	result.XPAwarded = newXP - oldXP
	result.LeveledUp = progress.LevelUp(oldXP, newXP)

	change, err := cs.usersRepo.AddXP(ctx, uid, result.XPAwarded)
	if err != nil {
		return nil, errors.New("crediting challenge xp error: " + err.Error())
	}
	result.User = &change
	uidAttr := slog.String("uid", uid.String())
	logFailure("invalidating leaderboard", cs.leaderboard.Invalidate(ctx), uidAttr)
	logFailure("setting challenge pulse", cs.store.SetPulse(ctx, uid, completed), uidAttr)
	return result, nil
}

func (cs *ChallengeService) Replace(ctx context.Context, uid uuid.UUID) (*entity.ChallengeBoard, error) {
	state, err := cs.store.Update(ctx, uid, func(current *entity.ChallengeState) (*entity.ChallengeState, error) {
		var state entity.ChallengeState
		if current == nil {
			state = cs.catalog.NewState(cs.rnd)
		} else {
			state = *current
		}
		next, _, err := cs.catalog.Replace(state, cs.rnd)
		if err != nil {
			return nil, err
		}
		return &next, nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoChallengesAvailable) {
			return nil, err
		}
		return nil, errors.New("challenge store error: " + err.Error())
	}
	return cs.board(ctx, uid, state)
}

package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/pkg/entity"
)

const (
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 100
)

type LeaderboardService struct {
	usersRepo repository.UsersRepositoryI
	cache     repository.LeaderboardCacheI
}

func NewLeaderboardService(usersRepo repository.UsersRepositoryI, cache repository.LeaderboardCacheI) *LeaderboardService {
	if usersRepo == nil || cache == nil {
		log.Fatal("on leaderboard service provided nil dependencies")
	}
	return &LeaderboardService{
		usersRepo: usersRepo,
		cache:     cache,
	}
}

func (ls *LeaderboardService) Top(ctx context.Context, uid uuid.UUID, limit int) (*entity.Leaderboard, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	limit = min(limit, MaxLeaderboardLimit)
	entries, err := ls.cache.Get(ctx, limit)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrCacheMiss) {
			logFailure("reading cached leaderboard", err)
		}
		entries, err = ls.usersRepo.TopByXP(ctx, limit)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		logFailure("caching leaderboard", ls.cache.Set(ctx, limit, entries), slog.Int("limit", limit))
	}
	board := &entity.Leaderboard{
		Entries: entries,
	}
	for _, e := range entries {
		if e.UserID == uid {
			rank := e.Rank
			board.UserRank = &rank
			return board, nil
		}
	}
	rank, err := ls.usersRepo.RankOf(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return board, nil
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	board.UserRank = &rank
	return board, nil
}

func (ls *LeaderboardService) Invalidate(ctx context.Context) error {
	if err := ls.cache.Invalidate(ctx); err != nil {
		return errors.New("leaderboard cache error: " + err.Error())
	}
	return nil
}

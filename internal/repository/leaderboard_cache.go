package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/pkg/entity"
	"github.com/redis/go-redis/v9"
)

type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		client: client,
		ttl:    ttl,
	}
}

func leaderboardKey(limit int) string {
	return "leaderboard:top:" + strconv.Itoa(limit)
}

func (lc *LeaderboardCache) Get(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	data, err := lc.client.Get(ctx, leaderboardKey(limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorvalues.ErrCacheMiss
		}
		return nil, errors.New("getting cached leaderboard error: " + err.Error())
	}
	var entries []entity.LeaderboardEntry
	if err = sonic.Unmarshal(data, &entries); err != nil {
		return nil, errors.New("cached leaderboard unmarshal error: " + err.Error())
	}
	return entries, nil
}

func (lc *LeaderboardCache) Set(ctx context.Context, limit int, entries []entity.LeaderboardEntry) error {
	data, err := sonic.Marshal(entries)
	if err != nil {
		return errors.New("leaderboard marshal error: " + err.Error())
	}
	if err = lc.client.Set(ctx, leaderboardKey(limit), data, lc.ttl).Err(); err != nil {
		return errors.New("caching leaderboard error: " + err.Error())
	}
	return nil
}

// Invalidate drops every cached page size.
func (lc *LeaderboardCache) Invalidate(ctx context.Context) error {
	iter := lc.client.Scan(ctx, 0, "leaderboard:top:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.New("scanning leaderboard keys error: " + err.Error())
	}
	if len(keys) == 0 {
		return nil
	}
	if err := lc.client.Del(ctx, keys...).Err(); err != nil {
		return errors.New("invalidating leaderboard error: " + err.Error())
	}
	return nil
}

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/pkg/entity"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setUpRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	addr, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestChallengeStore(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	client := setUpRedis(t)
	store := repository.NewChallengeStore(client)
	ctx := context.Background()
	uid := uuid.New()

	t.Run("missing state", func(t *testing.T) {
		_, err := store.Load(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrCacheMiss)
	})
	t.Run("initialize on first update", func(t *testing.T) {
		state, err := store.Update(ctx, uid, func(current *entity.ChallengeState) (*entity.ChallengeState, error) {
			assert.Nil(t, current)
			return &entity.ChallengeState{ActiveChallenges: []int{1, 2, 3}, CompletedChallenges: []int{}, ChallengeLevel: 1}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, state.ActiveChallenges)

		loaded, err := store.Load(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, state, loaded)
	})
	t.Run("nil mutation keeps state", func(t *testing.T) {
		state, err := store.Update(ctx, uid, func(current *entity.ChallengeState) (*entity.ChallengeState, error) {
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, state.ActiveChallenges)
	})
	t.Run("concurrent updates aren't lost", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Update(ctx, uid, func(current *entity.ChallengeState) (*entity.ChallengeState, error) {
					next := *current
					next.ChallengeXP += 10
					return &next, nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		state, err := store.Load(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 40, state.ChallengeXP)
	})
	t.Run("pulse expires", func(t *testing.T) {
		ids, err := store.Pulse(ctx, uid)
		require.NoError(t, err)
		assert.Empty(t, ids)

		require.NoError(t, store.SetPulse(ctx, uid, []int{4}))
		ids, err = store.Pulse(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, []int{4}, ids)

		ttl, err := client.TTL(ctx, "challenges_"+uid.String()+":pulse").Result()
		require.NoError(t, err)
		assert.LessOrEqual(t, ttl, repository.PulseTTL)
	})
}

func TestLeaderboardCache(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	client := setUpRedis(t)
	cache := repository.NewLeaderboardCache(client, time.Minute)
	ctx := context.Background()
	entries := []entity.LeaderboardEntry{
		{Rank: 1, UserID: uuid.New(), DisplayName: "first", XP: 300, Level: 4},
		{Rank: 2, UserID: uuid.New(), DisplayName: "second", XP: 120, Level: 2},
	}

	_, err := cache.Get(ctx, 50)
	assert.ErrorIs(t, err, errorvalues.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, 50, entries))
	require.NoError(t, cache.Set(ctx, 10, entries[:1]))
	got, err := cache.Get(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	require.NoError(t, cache.Invalidate(ctx))
	_, err = cache.Get(ctx, 50)
	assert.ErrorIs(t, err, errorvalues.ErrCacheMiss)
	_, err = cache.Get(ctx, 10)
	assert.ErrorIs(t, err, errorvalues.ErrCacheMiss)
}

func TestMessageBus(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	client := setUpRedis(t)
	bus := repository.NewMessageBus(client)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	groupID := uuid.New()

	feed, err := bus.Subscribe(ctx, groupID)
	require.NoError(t, err)
	other, err := bus.Subscribe(ctx, uuid.New())
	require.NoError(t, err)

	msg := entity.GroupMessage{
		ID:       uuid.New(),
		GroupID:  groupID,
		UserID:   uuid.New(),
		UserName: "Reader",
		Body:     "hello",
		Kind:     entity.MessageKindUser,
	}
	require.NoError(t, bus.Publish(ctx, &msg))

	select {
	case got := <-feed:
		assert.Equal(t, msg.ID, got.ID)
		assert.Equal(t, "hello", got.Body)
	case <-time.After(5 * time.Second):
		t.Fatal("message wasn't delivered")
	}
	select {
	case got := <-other:
		t.Fatalf("message leaked to another group: %v", got)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case _, ok := <-feed:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("feed wasn't closed")
	}
}

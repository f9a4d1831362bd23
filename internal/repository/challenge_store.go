package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/pkg/entity"
	"github.com/redis/go-redis/v9"
)

const (
	// PulseTTL is how long freshly completed challenges stay highlighted.
	PulseTTL = 3 * time.Second

	updateRetries = 5
)

type ChallengeStore struct {
	client *redis.Client
}

func NewChallengeStore(client *redis.Client) *ChallengeStore {
	return &ChallengeStore{
		client: client,
	}
}

func challengeKey(uid uuid.UUID) string {
	return "challenges_" + uid.String()
}

func pulseKey(uid uuid.UUID) string {
	return challengeKey(uid) + ":pulse"
}

func (cs *ChallengeStore) Load(ctx context.Context, uid uuid.UUID) (*entity.ChallengeState, error) {
	state, err := loadState(ctx, cs.client, challengeKey(uid))
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errorvalues.ErrCacheMiss
	}
	return state, nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// loadState returns nil state when key is absent.
func loadState(ctx context.Context, g getter, key string) (*entity.ChallengeState, error) {
	data, err := g.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.New("getting challenge state error: " + err.Error())
	}
	var state entity.ChallengeState
	if err = sonic.Unmarshal(data, &state); err != nil {
		return nil, errors.New("challenge state unmarshal error: " + err.Error())
	}
	return &state, nil
}

func (cs *ChallengeStore) Update(ctx context.Context, uid uuid.UUID, fn ChallengeMutation) (*entity.ChallengeState, error) {
	key := challengeKey(uid)
	for i := 0; i < updateRetries; i++ {
		var result *entity.ChallengeState
		err := cs.client.Watch(ctx, func(tx *redis.Tx) error {
			current, err := loadState(ctx, tx, key)
			if err != nil {
				return err
			}
			next, err := fn(current)
			if err != nil {
				return err
			}
			if next == nil {
				result = current
				return nil
			}
			data, err := sonic.Marshal(next)
			if err != nil {
				return errors.New("challenge state marshal error: " + err.Error())
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, data, 0)
				return nil
			})
			result = next
			return err
		}, key)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}
	}
	return nil, errors.New("challenge state update error: too many concurrent writers")
}

func (cs *ChallengeStore) SetPulse(ctx context.Context, uid uuid.UUID, ids []int) error {
	data, err := sonic.Marshal(ids)
	if err != nil {
		return errors.New("pulse marshal error: " + err.Error())
	}
	if err = cs.client.Set(ctx, pulseKey(uid), data, PulseTTL).Err(); err != nil {
		return errors.New("setting pulse error: " + err.Error())
	}
	return nil
}

func (cs *ChallengeStore) Pulse(ctx context.Context, uid uuid.UUID) ([]int, error) {
	data, err := cs.client.Get(ctx, pulseKey(uid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []int{}, nil
		}
		return nil, errors.New("getting pulse error: " + err.Error())
	}
	var ids []int
	if err = sonic.Unmarshal(data, &ids); err != nil {
		return nil, errors.New("pulse unmarshal error: " + err.Error())
	}
	return ids, nil
}

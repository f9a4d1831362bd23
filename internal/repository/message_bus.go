package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/rehabit/pkg/entity"
	"github.com/redis/go-redis/v9"
)

// MessageBus fans group messages out to every API instance through Redis pub/sub.
type MessageBus struct {
	client *redis.Client
}

func NewMessageBus(client *redis.Client) *MessageBus {
	return &MessageBus{
		client: client,
	}
}

func groupChannel(groupID uuid.UUID) string {
	return "group:" + groupID.String() + ":messages"
}

func (mb *MessageBus) Publish(ctx context.Context, msg *entity.GroupMessage) error {
	data, err := sonic.Marshal(msg)
	if err != nil {
		return errors.New("message marshal error: " + err.Error())
	}
	if err = mb.client.Publish(ctx, groupChannel(msg.GroupID), data).Err(); err != nil {
		return errors.New("publishing message error: " + err.Error())
	}
	return nil
}

func (mb *MessageBus) Subscribe(ctx context.Context, groupID uuid.UUID) (<-chan entity.GroupMessage, error) {
	pubsub := mb.client.Subscribe(ctx, groupChannel(groupID))
	// Wait for confirmation so no message published after return is lost
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, errors.New("subscribing to group error: " + err.Error())
	}
	out := make(chan entity.GroupMessage, 16)
	go func() {
		defer close(out)
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case raw, ok := <-ch:
				if !ok {
					return
				}
				var msg entity.GroupMessage
				if err := sonic.UnmarshalString(raw.Payload, &msg); err != nil {
					slog.Warn("dropping malformed group message", slog.String("error", err.Error()))
					continue
				}
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

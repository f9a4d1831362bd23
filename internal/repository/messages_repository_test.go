package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendMessage(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMessagesRepoWithConn(conn)
	msg := entity.GroupMessage{
		GroupID:  uuid.New(),
		UserID:   uuid.New(),
		UserName: "Reader",
		Body:     "hi all",
		Kind:     entity.MessageKindUser,
	}
	query := regexp.QuoteMeta(`INSERT INTO group_messages (group_id, user_id, user_name, user_photo, body, kind) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`)
	args := []any{msg.GroupID, msg.UserID, msg.UserName, msg.UserPhoto, msg.Body, msg.Kind}
	id := uuid.New()
	now := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

	t.Run("stored", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, now))
		m := msg
		require.NoError(t, repo.Append(context.Background(), &m))
		assert.Equal(t, id, m.ID)
		assert.Equal(t, now, m.CreatedAt)
	})
	t.Run("group is gone", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
		m := msg
		assert.ErrorIs(t, repo.Append(context.Background(), &m), errorvalues.ErrGroupNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		m := msg
		assert.Error(t, repo.Append(context.Background(), &m))
	})
}

func TestListMessages(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMessagesRepoWithConn(conn)
	groupID, uid := uuid.New(), uuid.New()
	now := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)
	conn.ExpectQuery(regexp.QuoteMeta(`(SELECT * FROM group_messages WHERE group_id = $1 ORDER BY created_at DESC LIMIT $2) latest`)).
		WithArgs(groupID, 50).
		WillReturnRows(pgxmock.NewRows([]string{"id", "group_id", "user_id", "user_name", "user_photo", "body", "kind", "created_at"}).
			AddRow(uuid.New(), groupID, uid, "Reader", "", "Reader created the group", entity.MessageKindSystem, now).
			AddRow(uuid.New(), groupID, uid, "Reader", "", "hi", entity.MessageKindUser, now.Add(time.Minute)))
	msgs, err := repo.ListByGroup(context.Background(), groupID, 50)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, entity.MessageKindSystem, msgs[0].Kind)
	assert.True(t, msgs[0].CreatedAt.Before(msgs[1].CreatedAt))
}

package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/pkg/entity"
)

type MessagesRepository struct {
	conn PgConnection
}

func NewMessagesRepoWithConn(conn PgConnection) *MessagesRepository {
	mustPing(conn, "messagesRepo")
	return &MessagesRepository{
		conn: conn,
	}
}

func (mr *MessagesRepository) Append(ctx context.Context, msg *entity.GroupMessage) error {
	err := mr.conn.QueryRow(ctx,
		`INSERT INTO group_messages (group_id, user_id, user_name, user_photo, body, kind) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
		msg.GroupID,
		msg.UserID,
		msg.UserName,
		msg.UserPhoto,
		msg.Body,
		msg.Kind,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrGroupNotFound
			}
		}
		return errors.New("appending message error: " + err.Error())
	}
	return nil
}

func (mr *MessagesRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, limit int) ([]entity.GroupMessage, error) {
	rows, err := mr.conn.Query(ctx,
		`SELECT id, group_id, user_id, user_name, user_photo, body, kind, created_at FROM
(SELECT * FROM group_messages WHERE group_id = $1 ORDER BY created_at DESC LIMIT $2) latest
ORDER BY created_at;`,
		groupID,
		limit,
	)
	if err != nil {
		return nil, errors.New("listing messages error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.GroupMessage, 0)
	for rows.Next() {
		var m entity.GroupMessage
		err = rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.UserName, &m.UserPhoto, &m.Body, &m.Kind, &m.CreatedAt)
		if err != nil {
			return nil, errors.New("message row parsing error: " + err.Error())
		}
		result = append(result, m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected message rows error: " + err.Error())
	}
	return result, nil
}

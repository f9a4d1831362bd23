package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/pkg/entity"
)

const selectCommunity = `SELECT c.id, c.title, c.description, c.goal, c.current_progress, c.xp_reward, c.deadline, c.icon, c.difficulty, c.kind, c.created_at,
COALESCE(array_agg(p.user_id ORDER BY p.user_id) FILTER (WHERE p.user_id IS NOT NULL), '{}'),
COALESCE(array_agg(p.display_name ORDER BY p.user_id) FILTER (WHERE p.user_id IS NOT NULL), '{}')
FROM community_challenges c LEFT JOIN community_participants p ON p.challenge_id = c.id`

type CommunityRepository struct {
	conn PgConnection
}

func NewCommunityRepoWithConn(conn PgConnection) *CommunityRepository {
	mustPing(conn, "communityRepo")
	return &CommunityRepository{
		conn: conn,
	}
}

func (cr *CommunityRepository) List(ctx context.Context) ([]*entity.CommunityChallenge, error) {
	rows, err := cr.conn.Query(ctx, selectCommunity+` GROUP BY c.id ORDER BY c.created_at DESC;`)
	if err != nil {
		return nil, errors.New("listing community challenges error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.CommunityChallenge, 0)
	for rows.Next() {
		c, err := scanCommunity(rows)
		if err != nil {
			return nil, errors.New("community challenge row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected community challenge rows error: " + err.Error())
	}
	return result, nil
}

func (cr *CommunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CommunityChallenge, error) {
	row := cr.conn.QueryRow(ctx, selectCommunity+` WHERE c.id = $1 GROUP BY c.id;`, id)
	c, err := scanCommunity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCommunityChallengeNotFound
		}
		return nil, errors.New("getting community challenge error: " + err.Error())
	}
	return c, nil
}

func scanCommunity(row pgx.Row) (*entity.CommunityChallenge, error) {
	var c entity.CommunityChallenge
	var ids []uuid.UUID
	var names []string
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Goal,
		&c.CurrentProgress,
		&c.XPReward,
		&c.Deadline,
		&c.Icon,
		&c.Difficulty,
		&c.Kind,
		&c.CreatedAt,
		&ids,
		&names,
	)
	if err != nil {
		return nil, err
	}
	c.Participants = make(map[string]string, len(ids))
	for i, id := range ids {
		if i < len(names) {
			c.Participants[id.String()] = names[i]
		}
	}
	return &c, nil
}

func (cr *CommunityRepository) Join(ctx context.Context, id, uid uuid.UUID, displayName string) error {
	_, err := cr.conn.Exec(ctx,
		`INSERT INTO community_participants (challenge_id, user_id, display_name) VALUES ($1, $2, $3)
ON CONFLICT (challenge_id, user_id) DO UPDATE SET display_name = EXCLUDED.display_name;`,
		id,
		uid,
		displayName,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrCommunityChallengeNotFound
			}
		}
		return errors.New("joining community challenge error: " + err.Error())
	}
	return nil
}

func (cr *CommunityRepository) Leave(ctx context.Context, id, uid uuid.UUID) error {
	_, err := cr.conn.Exec(ctx,
		`DELETE FROM community_participants WHERE challenge_id = $1 AND user_id = $2;`,
		id,
		uid,
	)
	if err != nil {
		return errors.New("leaving community challenge error: " + err.Error())
	}
	return nil
}

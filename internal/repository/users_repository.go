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

const selectUser = `SELECT u.id, u.email, u.display_name, u.photo_url, u.password_hash, u.xp, u.level, u.badges, u.joined_at,
COALESCE(array_agg(h.group_id) FILTER (WHERE h.group_id IS NOT NULL), '{}')
FROM users u LEFT JOIN hidden_groups h ON h.user_id = u.id`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx,
		`INSERT INTO users (id, email, display_name, photo_url, password_hash, badges) VALUES ($1, $2, $3, $4, $5, $6);`,
		user.ID,
		user.Email,
		user.DisplayName,
		user.PhotoURL,
		user.PasswordHash,
		user.Badges,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, selectUser+` WHERE u.email = $1 GROUP BY u.id;`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by email error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, selectUser+` WHERE u.id = $1 GROUP BY u.id;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.PhotoURL,
		&user.PasswordHash,
		&user.XP,
		&user.Level,
		&user.Badges,
		&user.JoinedAt,
		&user.HiddenGroups,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *UsersRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET display_name = $1, photo_url = $2 WHERE id = $3;`,
		user.DisplayName,
		user.PhotoURL,
		user.ID,
	)
	if err != nil {
		return errors.New("updating user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) SetLevel(ctx context.Context, uid uuid.UUID, level int) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET level = $1 WHERE id = $2;`, level, uid)
	if err != nil {
		return errors.New("updating user level error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) AddXP(ctx context.Context, uid uuid.UUID, delta int) (entity.XPChange, error) {
	var change entity.XPChange
	row := ur.conn.QueryRow(ctx,
		`UPDATE users u SET xp = GREATEST(u.xp + $2, 0), level = GREATEST(u.xp + $2, 0) / 100 + 1
FROM (SELECT id, xp, level FROM users WHERE id = $1 FOR UPDATE) old
WHERE u.id = old.id
RETURNING old.xp, u.xp, old.level, u.level;`,
		uid,
		delta,
	)
	err := row.Scan(&change.OldXP, &change.NewXP, &change.OldLevel, &change.NewLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return change, errorvalues.ErrUserNotFound
		}
		return change, errors.New("adding xp error: " + err.Error())
	}
	change.LeveledUp = change.NewLevel > change.OldLevel
	return change, nil
}

func (ur *UsersRepository) HideGroup(ctx context.Context, uid, groupID uuid.UUID) error {
	_, err := ur.conn.Exec(ctx,
		`INSERT INTO hidden_groups (user_id, group_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
		uid,
		groupID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrGroupNotFound
			}
		}
		return errors.New("hiding group error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) UnhideGroup(ctx context.Context, uid, groupID uuid.UUID) error {
	_, err := ur.conn.Exec(ctx, `DELETE FROM hidden_groups WHERE user_id = $1 AND group_id = $2;`, uid, groupID)
	if err != nil {
		return errors.New("unhiding group error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) TopByXP(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	rows, err := ur.conn.Query(ctx,
		`SELECT id, display_name, photo_url, xp, level FROM users ORDER BY xp DESC, joined_at ASC LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.LeaderboardEntry, 0, limit)
	for rows.Next() {
		entry := entity.LeaderboardEntry{Rank: len(result) + 1}
		err = rows.Scan(&entry.UserID, &entry.DisplayName, &entry.PhotoURL, &entry.XP, &entry.Level)
		if err != nil {
			return nil, errors.New("leaderboard row parsing error: " + err.Error())
		}
		result = append(result, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected leaderboard rows error: " + err.Error())
	}
	return result, nil
}

func (ur *UsersRepository) RankOf(ctx context.Context, uid uuid.UUID) (int, error) {
	var rank int
	row := ur.conn.QueryRow(ctx,
		`SELECT r.rank FROM (SELECT id, ROW_NUMBER() OVER (ORDER BY xp DESC, joined_at ASC) AS rank FROM users) r WHERE r.id = $1;`,
		uid,
	)
	if err := row.Scan(&rank); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("getting user rank error: " + err.Error())
	}
	return rank, nil
}

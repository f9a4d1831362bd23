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

const selectHabit = `SELECT h.id, h.user_id, h.name, h.description, h.icon, h.color, h.streak, h.last_completed, h.created_at, h.updated_at,
COALESCE(array_agg(c.check_date ORDER BY c.check_date) FILTER (WHERE c.check_date IS NOT NULL), '{}')
FROM habits h LEFT JOIN habit_checks c ON c.habit_id = h.id`

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	mustPing(conn, "habitsRepo")
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx,
		`INSERT INTO habits (user_id, name, description, icon, color) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		habit.UserID,
		habit.Name,
		habit.Description,
		habit.Icon,
		habit.Color,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, selectHabit+` WHERE h.id = $1 GROUP BY h.id;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, selectHabit+` WHERE h.user_id = $1 GROUP BY h.id ORDER BY h.created_at;`, uid)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	return collectHabits(rows)
}

func (hr *HabitsRepository) ListAll(ctx context.Context) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, selectHabit+` GROUP BY h.id;`)
	if err != nil {
		return nil, errors.New("listing habits error: " + err.Error())
	}
	return collectHabits(rows)
}

func collectHabits(rows pgx.Rows) ([]*entity.Habit, error) {
	defer rows.Close()
	habits := make([]*entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return habits, nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	var h entity.Habit
	err := row.Scan(
		&h.ID,
		&h.UserID,
		&h.Name,
		&h.Description,
		&h.Icon,
		&h.Color,
		&h.Streak,
		&h.LastCompleted,
		&h.CreatedAt,
		&h.UpdatedAt,
		&h.CompletedDates,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (hr *HabitsRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := hr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM habits WHERE user_id = $1;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting habits: " + err.Error())
	}
	return count, nil
}

func (hr *HabitsRepository) SetStreak(ctx context.Context, id uuid.UUID, streak int) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET streak = $1, updated_at = NOW() WHERE id = $2;`, streak, id)
	if err != nil {
		return errors.New("error updating habit streak: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

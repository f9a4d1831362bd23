package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/pkg/entity"
)

type HabitChecksRepository struct {
	conn PgConnection
}

func NewHabitChecksRepoWithConn(conn PgConnection) *HabitChecksRepository {
	mustPing(conn, "habitChecksRepo")
	return &HabitChecksRepository{
		conn: conn,
	}
}

func (checksRepo *HabitChecksRepository) Toggle(ctx context.Context, habitID uuid.UUID, day time.Time, streak StreakFunc) (*entity.Habit, bool, error) {
	tx, err := checksRepo.conn.Begin(ctx)
	if err != nil {
		return nil, false, errors.New("beginning toggle transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	// Serializes concurrent toggles of the same habit
	var locked uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM habits WHERE id = $1 FOR UPDATE;`, habitID).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, errorvalues.ErrHabitNotFound
		}
		return nil, false, errors.New("locking habit error: " + err.Error())
	}

	completed := false
	ct, err := tx.Exec(ctx, `DELETE FROM habit_checks WHERE habit_id = $1 AND check_date = $2;`, habitID, day)
	if err != nil {
		return nil, false, errors.New("deleting check error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		_, err = tx.Exec(ctx, `INSERT INTO habit_checks (habit_id, check_date) VALUES ($1, $2);`, habitID, day)
		if err != nil {
			return nil, false, errors.New("creating check error: " + err.Error())
		}
		completed = true
	}

	rows, err := tx.Query(ctx, `SELECT check_date FROM habit_checks WHERE habit_id = $1 ORDER BY check_date;`, habitID)
	if err != nil {
		return nil, false, errors.New("getting habit checks error: " + err.Error())
	}
	dates, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, false, errors.New("check row parsing error: " + err.Error())
	}
	var last *time.Time
	if len(dates) > 0 {
		last = &dates[len(dates)-1]
	}

	var h entity.Habit
	err = tx.QueryRow(ctx,
		`UPDATE habits SET streak = $1, last_completed = $2, updated_at = NOW() WHERE id = $3
RETURNING id, user_id, name, description, icon, color, streak, last_completed, created_at, updated_at;`,
		streak(dates),
		last,
		habitID,
	).Scan(&h.ID, &h.UserID, &h.Name, &h.Description, &h.Icon, &h.Color, &h.Streak, &h.LastCompleted, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, false, errors.New("updating habit streak error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, false, errors.New("committing toggle error: " + err.Error())
	}
	h.CompletedDates = dates
	return &h, completed, nil
}

func (checksRepo *HabitChecksRepository) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitCheck, error) {
	rows, err := checksRepo.conn.Query(
		ctx,
		`SELECT id, habit_id, check_date, created_at FROM habit_checks WHERE habit_id = $1 AND check_date >= $2 AND check_date <= $3 ORDER BY check_date;`,
		habitID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting checks for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.HabitCheck, 0, 2)
	for rows.Next() {
		check := entity.HabitCheck{}
		err = rows.Scan(&check.ID, &check.HabitID, &check.CheckDate, &check.CreatedAt)
		if err != nil {
			return nil, errors.New("check row parsing error: " + err.Error())
		}
		result = append(result, check)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected check rows error: " + err.Error())
	}
	return result, nil
}

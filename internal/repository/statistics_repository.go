package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/pkg/entity"
)

const dailyColumns = `user_id, stat_date, habits_completed, total_habits, is_perfect_day, perfect_broken, xp_earned, updated_at`

type StatisticsRepository struct {
	conn PgConnection
}

func NewStatisticsRepoWithConn(conn PgConnection) *StatisticsRepository {
	mustPing(conn, "statisticsRepo")
	return &StatisticsRepository{
		conn: conn,
	}
}

func (sr *StatisticsRepository) Init(ctx context.Context, uid uuid.UUID, createdAt time.Time) error {
	_, err := sr.conn.Exec(ctx,
		`INSERT INTO user_statistics (user_id, account_created_at) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING;`,
		uid,
		createdAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("initializing statistics error: " + err.Error())
	}
	return nil
}

func (sr *StatisticsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.UserStatistics, error) {
	var s entity.UserStatistics
	row := sr.conn.QueryRow(ctx,
		`SELECT user_id, total_habits_completed, total_habits_created, best_streak, current_streak, perfect_days_count,
total_xp_earned, weekly_completions, monthly_completions, days_active, longest_perfect_run, consecutive_perfect_days,
last_active_date, account_created_at, updated_at FROM user_statistics WHERE user_id = $1;`,
		uid,
	)
	err := row.Scan(
		&s.UserID,
		&s.TotalHabitsCompleted,
		&s.TotalHabitsCreated,
		&s.BestStreak,
		&s.CurrentStreak,
		&s.PerfectDaysCount,
		&s.TotalXPEarned,
		&s.WeeklyCompletions,
		&s.MonthlyCompletions,
		&s.DaysActive,
		&s.LongestPerfectRun,
		&s.ConsecutivePerfectDays,
		&s.LastActiveDate,
		&s.AccountCreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStatsNotFound
		}
		return nil, errors.New("getting statistics error: " + err.Error())
	}
	return &s, nil
}

func (sr *StatisticsRepository) exec(ctx context.Context, op, sql string, args ...any) error {
	ct, err := sr.conn.Exec(ctx, sql, args...)
	if err != nil {
		return errors.New(op + " error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStatsNotFound
	}
	return nil
}

func (sr *StatisticsRepository) IncrementCreated(ctx context.Context, uid uuid.UUID) error {
	return sr.exec(ctx, "incrementing created habits",
		`UPDATE user_statistics SET total_habits_created = total_habits_created + 1, updated_at = NOW() WHERE user_id = $1;`,
		uid,
	)
}

func (sr *StatisticsRepository) ApplyCompletion(ctx context.Context, uid uuid.UUID, delta, xp int, day time.Time, newDay bool) error {
	return sr.exec(ctx, "applying completion",
		`UPDATE user_statistics SET
total_habits_completed = GREATEST(total_habits_completed + $2, 0),
weekly_completions = GREATEST(weekly_completions + $2, 0),
monthly_completions = GREATEST(monthly_completions + $2, 0),
total_xp_earned = GREATEST(total_xp_earned + $3, 0),
days_active = days_active + CASE WHEN $5 THEN 1 ELSE 0 END,
last_active_date = CASE WHEN $2 > 0 THEN GREATEST(last_active_date, $4) ELSE last_active_date END,
updated_at = NOW()
WHERE user_id = $1;`,
		uid,
		delta,
		xp,
		day,
		newDay,
	)
}

func (sr *StatisticsRepository) UpsertDay(ctx context.Context, uid uuid.UUID, day time.Time, delta, totalHabits, xp int) (*entity.DailyStat, bool, error) {
	var d entity.DailyStat
	var created bool
	row := sr.conn.QueryRow(ctx,
		`INSERT INTO daily_stats (user_id, stat_date, habits_completed, total_habits, xp_earned)
VALUES ($1, $2, GREATEST($3, 0), $4, GREATEST($5, 0))
ON CONFLICT (user_id, stat_date) DO UPDATE SET
habits_completed = GREATEST(daily_stats.habits_completed + $3, 0),
total_habits = EXCLUDED.total_habits,
xp_earned = GREATEST(daily_stats.xp_earned + $5, 0),
updated_at = NOW()
RETURNING `+dailyColumns+`, (xmax = 0);`,
		uid,
		day,
		delta,
		totalHabits,
		xp,
	)
	err := row.Scan(&d.UserID, &d.Date, &d.HabitsCompleted, &d.TotalHabits, &d.IsPerfectDay, &d.PerfectBroken, &d.XPEarned, &d.UpdatedAt, &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, false, errorvalues.ErrUserNotFound
			}
		}
		return nil, false, errors.New("upserting daily stats error: " + err.Error())
	}
	return &d, created, nil
}

func (sr *StatisticsRepository) MarkPerfect(ctx context.Context, uid uuid.UUID, day time.Time) (bool, error) {
	ct, err := sr.conn.Exec(ctx,
		`UPDATE daily_stats SET is_perfect_day = TRUE, updated_at = NOW()
WHERE user_id = $1 AND stat_date = $2 AND NOT is_perfect_day AND NOT perfect_broken;`,
		uid,
		day,
	)
	if err != nil {
		return false, errors.New("marking perfect day error: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}

func (sr *StatisticsRepository) BreakPerfect(ctx context.Context, uid uuid.UUID, day time.Time) (bool, error) {
	ct, err := sr.conn.Exec(ctx,
		`UPDATE daily_stats SET is_perfect_day = FALSE, perfect_broken = TRUE, updated_at = NOW()
WHERE user_id = $1 AND stat_date = $2 AND is_perfect_day;`,
		uid,
		day,
	)
	if err != nil {
		return false, errors.New("breaking perfect day error: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}

func (sr *StatisticsRepository) AdjustPerfectDays(ctx context.Context, uid uuid.UUID, delta int) error {
	return sr.exec(ctx, "adjusting perfect days",
		`UPDATE user_statistics SET perfect_days_count = GREATEST(perfect_days_count + $2, 0), updated_at = NOW() WHERE user_id = $1;`,
		uid,
		delta,
	)
}

func (sr *StatisticsRepository) RecentDays(ctx context.Context, uid uuid.UUID, limit int) ([]entity.DailyStat, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT `+dailyColumns+` FROM daily_stats WHERE user_id = $1 ORDER BY stat_date DESC LIMIT $2;`,
		uid,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting recent daily stats error: " + err.Error())
	}
	return collectDays(rows)
}

func (sr *StatisticsRepository) DailyRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyStat, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT `+dailyColumns+` FROM daily_stats WHERE user_id = $1 AND stat_date >= $2 AND stat_date <= $3 ORDER BY stat_date;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting daily stats for period error: " + err.Error())
	}
	return collectDays(rows)
}

func collectDays(rows pgx.Rows) ([]entity.DailyStat, error) {
	defer rows.Close()
	result := make([]entity.DailyStat, 0)
	for rows.Next() {
		var d entity.DailyStat
		err := rows.Scan(&d.UserID, &d.Date, &d.HabitsCompleted, &d.TotalHabits, &d.IsPerfectDay, &d.PerfectBroken, &d.XPEarned, &d.UpdatedAt)
		if err != nil {
			return nil, errors.New("daily stat row parsing error: " + err.Error())
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected daily stat rows error: " + err.Error())
	}
	return result, nil
}

func (sr *StatisticsRepository) SetStreaks(ctx context.Context, uid uuid.UUID, current, best int) error {
	return sr.exec(ctx, "setting streaks",
		`UPDATE user_statistics SET current_streak = $2, best_streak = GREATEST(best_streak, $3, $2), updated_at = NOW() WHERE user_id = $1;`,
		uid,
		current,
		best,
	)
}

func (sr *StatisticsRepository) SetPerfectRun(ctx context.Context, uid uuid.UUID, run int) error {
	return sr.exec(ctx, "setting perfect run",
		`UPDATE user_statistics SET consecutive_perfect_days = $2, longest_perfect_run = GREATEST(longest_perfect_run, $2), updated_at = NOW() WHERE user_id = $1;`,
		uid,
		run,
	)
}

func (sr *StatisticsRepository) ResetWeekly(ctx context.Context) (int64, error) {
	ct, err := sr.conn.Exec(ctx, `UPDATE user_statistics SET weekly_completions = 0, updated_at = NOW();`)
	if err != nil {
		return 0, errors.New("resetting weekly completions error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}

func (sr *StatisticsRepository) ResetMonthly(ctx context.Context) (int64, error) {
	ct, err := sr.conn.Exec(ctx, `UPDATE user_statistics SET monthly_completions = 0, updated_at = NOW();`)
	if err != nil {
		return 0, errors.New("resetting monthly completions error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}

package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dailyStatColumns = []string{"user_id", "stat_date", "habits_completed", "total_habits", "is_perfect_day", "perfect_broken", "xp_earned", "updated_at", "created"}

func TestUpsertDay(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStatisticsRepoWithConn(conn)
	uid := uuid.New()
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO daily_stats (user_id, stat_date, habits_completed, total_habits, xp_earned)`)
	testCases := []struct {
		Desc         string
		Delta        int
		XP           int
		Created      bool
		Completed    int
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:      "first completion of the day",
			Delta:     1,
			XP:        10,
			Created:   true,
			Completed: 1,
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(uid, day, 1, 3, 10).
					WillReturnRows(pgxmock.NewRows(dailyStatColumns).AddRow(uid, day, 1, 3, false, false, 10, day, true))
			},
		},
		{
			Desc:      "uncompletion clamps at zero",
			Delta:     -1,
			XP:        -10,
			Completed: 0,
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(uid, day, -1, 3, -10).
					WillReturnRows(pgxmock.NewRows(dailyStatColumns).AddRow(uid, day, 0, 3, false, false, 0, day, false))
			},
		},
		{
			Desc:  "db error",
			Delta: 1,
			XP:    10,
			Error: errors.New("db error"),
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(uid, day, 1, 3, 10).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			stat, created, err := repo.UpsertDay(context.Background(), uid, day, tc.Delta, 3, tc.XP)
			if tc.Error != nil {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Created, created)
			assert.Equal(t, tc.Completed, stat.HabitsCompleted)
			assert.Equal(t, 3, stat.TotalHabits)
		})
	}
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestPerfectDayLatch(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStatisticsRepoWithConn(conn)
	uid := uuid.New()
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	mark := regexp.QuoteMeta(`AND NOT is_perfect_day AND NOT perfect_broken;`)
	brk := regexp.QuoteMeta(`UPDATE daily_stats SET is_perfect_day = FALSE, perfect_broken = TRUE`)
	ctx := context.Background()

	conn.ExpectExec(mark).WithArgs(uid, day).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	marked, err := repo.MarkPerfect(ctx, uid, day)
	require.NoError(t, err)
	assert.True(t, marked)

	conn.ExpectExec(brk).WithArgs(uid, day).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	broken, err := repo.BreakPerfect(ctx, uid, day)
	require.NoError(t, err)
	assert.True(t, broken)

	// a broken day can't become perfect again
	conn.ExpectExec(mark).WithArgs(uid, day).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	marked, err = repo.MarkPerfect(ctx, uid, day)
	require.NoError(t, err)
	assert.False(t, marked)

	conn.ExpectExec(brk).WithArgs(uid, day).WillReturnError(errors.New("db error"))
	_, err = repo.BreakPerfect(ctx, uid, day)
	assert.Error(t, err)
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestStatisticsCounters(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStatisticsRepoWithConn(conn)
	uid := uuid.New()
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("apply completion", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`days_active = days_active + CASE WHEN $5 THEN 1 ELSE 0 END`)).
			WithArgs(uid, 1, 10, day, true).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.ApplyCompletion(ctx, uid, 1, 10, day, true))
	})
	t.Run("apply completion without statistics row", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`total_habits_completed = GREATEST(total_habits_completed + $2, 0)`)).
			WithArgs(uid, -1, -10, day, false).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.ApplyCompletion(ctx, uid, -1, -10, day, false), errorvalues.ErrStatsNotFound)
	})
	t.Run("increment created", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`SET total_habits_created = total_habits_created + 1`)).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.IncrementCreated(ctx, uid))
	})
	t.Run("set streaks", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`best_streak = GREATEST(best_streak, $3, $2)`)).
			WithArgs(uid, 3, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetStreaks(ctx, uid, 3, 5))
	})
	t.Run("set perfect run", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`longest_perfect_run = GREATEST(longest_perfect_run, $2)`)).
			WithArgs(uid, 2).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetPerfectRun(ctx, uid, 2))
	})
	t.Run("reset weekly", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`UPDATE user_statistics SET weekly_completions = 0`)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 7))
		n, err := repo.ResetWeekly(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})
	t.Run("reset monthly fails", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`UPDATE user_statistics SET monthly_completions = 0`)).
			WillReturnError(errors.New("db error"))
		_, err := repo.ResetMonthly(ctx)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestGetStatistics(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStatisticsRepoWithConn(conn)
	uid := uuid.New()
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`FROM user_statistics WHERE user_id = $1;`)
	columns := []string{
		"user_id", "total_habits_completed", "total_habits_created", "best_streak", "current_streak", "perfect_days_count",
		"total_xp_earned", "weekly_completions", "monthly_completions", "days_active", "longest_perfect_run",
		"consecutive_perfect_days", "last_active_date", "account_created_at", "updated_at",
	}
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(uid, 12, 3, 5, 2, 1, 120, 4, 9, 6, 1, 1, day, day, day))
		stats, err := repo.Get(context.Background(), uid)
		require.NoError(t, err)
		assert.Equal(t, 12, stats.TotalHabitsCompleted)
		assert.Equal(t, 5, stats.BestStreak)
		assert.Equal(t, 120, stats.TotalXPEarned)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Get(context.Background(), uid)
		assert.ErrorIs(t, err, errorvalues.ErrStatsNotFound)
	})
	t.Run("recent days", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM daily_stats WHERE user_id = $1 ORDER BY stat_date DESC LIMIT $2;`)).
			WithArgs(uid, 30).
			WillReturnRows(pgxmock.NewRows(dailyStatColumns[:8]).
				AddRow(uid, day, 2, 2, true, false, 20, day).
				AddRow(uid, day.AddDate(0, 0, -1), 1, 2, false, false, 10, day))
		days, err := repo.RecentDays(context.Background(), uid, 30)
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.True(t, days[0].IsPerfectDay)
	})
}

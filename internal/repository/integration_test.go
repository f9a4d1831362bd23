package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("rehabit"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	if err = repository.Migrate(connStr, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func TestRepositoriesIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	cfg := setupTestDB(t)
	pool := repository.Connect(cfg)
	users := repository.NewUsersRepoWithConn(pool)
	habits := repository.NewHabitsRepoWithConn(pool)
	checks := repository.NewHabitChecksRepoWithConn(pool)
	stats := repository.NewStatisticsRepoWithConn(pool)
	groups := repository.NewGroupsRepoWithConn(pool)
	messages := repository.NewMessagesRepoWithConn(pool)
	community := repository.NewCommunityRepoWithConn(pool)
	ctx := context.Background()

	user := &entity.User{
		ID:          uuid.New(),
		Email:       "reader@example.com",
		DisplayName: "Reader",
		Badges:      []string{"newcomer"},
	}
	today := dayOf(time.Now())

	t.Run("users", func(t *testing.T) {
		require.NoError(t, users.Create(ctx, user))
		assert.ErrorIs(t, users.Create(ctx, user), errorvalues.ErrUserExists)
		require.NoError(t, stats.Init(ctx, user.ID, time.Now()))
		require.NoError(t, stats.Init(ctx, user.ID, time.Now()))

		found, err := users.FindByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, 1, found.Level)
		assert.Empty(t, found.HiddenGroups)

		change, err := users.AddXP(ctx, user.ID, 105)
		require.NoError(t, err)
		assert.True(t, change.LeveledUp)
		assert.Equal(t, 2, change.NewLevel)
		change, err = users.AddXP(ctx, user.ID, -500)
		require.NoError(t, err)
		assert.Zero(t, change.NewXP)
		assert.Equal(t, 1, change.NewLevel)
	})

	var habitID uuid.UUID
	t.Run("toggle", func(t *testing.T) {
		var err error
		habitID, err = habits.Create(ctx, &entity.Habit{UserID: user.ID, Name: "Read"})
		require.NoError(t, err)
		count := func(dates []time.Time) int { return len(dates) }

		h, completed, err := checks.Toggle(ctx, habitID, today.AddDate(0, 0, -1), count)
		require.NoError(t, err)
		assert.True(t, completed)
		h, completed, err = checks.Toggle(ctx, habitID, today, count)
		require.NoError(t, err)
		assert.True(t, completed)
		assert.Equal(t, 2, h.Streak)
		require.NotNil(t, h.LastCompleted)

		h, completed, err = checks.Toggle(ctx, habitID, today, count)
		require.NoError(t, err)
		assert.False(t, completed)
		assert.Equal(t, 1, h.Streak)

		stored, err := habits.GetByID(ctx, habitID)
		require.NoError(t, err)
		require.Len(t, stored.CompletedDates, 1)
		assert.True(t, stored.CompletedDates[0].Equal(today.AddDate(0, 0, -1)))

		_, _, err = checks.Toggle(ctx, uuid.New(), today, count)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})

	t.Run("daily statistics", func(t *testing.T) {
		day, created, err := stats.UpsertDay(ctx, user.ID, today, 1, 1, 10)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 1, day.HabitsCompleted)

		marked, err := stats.MarkPerfect(ctx, user.ID, today)
		require.NoError(t, err)
		assert.True(t, marked)
		broken, err := stats.BreakPerfect(ctx, user.ID, today)
		require.NoError(t, err)
		assert.True(t, broken)
		marked, err = stats.MarkPerfect(ctx, user.ID, today)
		require.NoError(t, err)
		assert.False(t, marked)

		day, created, err = stats.UpsertDay(ctx, user.ID, today, -5, 1, -50)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Zero(t, day.HabitsCompleted)
		assert.Zero(t, day.XPEarned)

		require.NoError(t, stats.ApplyCompletion(ctx, user.ID, 1, 10, today, true))
		require.NoError(t, stats.ApplyCompletion(ctx, user.ID, -3, -30, today, false))
		require.NoError(t, stats.SetStreaks(ctx, user.ID, 2, 1))
		require.NoError(t, stats.SetStreaks(ctx, user.ID, 1, 1))
		s, err := stats.Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Zero(t, s.TotalHabitsCompleted)
		assert.Equal(t, 1, s.DaysActive)
		assert.Equal(t, 1, s.CurrentStreak)
		assert.Equal(t, 2, s.BestStreak)

		n, err := stats.ResetWeekly(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("groups", func(t *testing.T) {
		other := &entity.User{ID: uuid.New(), Email: "other@example.com", DisplayName: "Other", Badges: []string{}}
		require.NoError(t, users.Create(ctx, other))
		id, err := groups.Create(ctx, &entity.Group{
			Name:          "Readers",
			Category:      "learning",
			CreatedBy:     user.ID,
			CreatedByName: user.DisplayName,
		})
		require.NoError(t, err)
		require.NoError(t, groups.AddMember(ctx, id, other.ID))
		assert.ErrorIs(t, groups.AddMember(ctx, id, other.ID), errorvalues.ErrAlreadyMember)

		g, err := groups.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{user.ID, other.ID}, g.Members)

		require.NoError(t, messages.Append(ctx, &entity.GroupMessage{GroupID: id, UserID: other.ID, UserName: "Other", Body: "hi", Kind: entity.MessageKindUser}))
		msgs, err := messages.ListByGroup(ctx, id, 50)
		require.NoError(t, err)
		assert.Len(t, msgs, 1)

		require.NoError(t, users.HideGroup(ctx, other.ID, id))
		listed, err := groups.List(ctx, other.ID, "", "")
		require.NoError(t, err)
		assert.Empty(t, listed)
		listed, err = groups.List(ctx, user.ID, "learning", "READ")
		require.NoError(t, err)
		assert.Len(t, listed, 1)

		require.NoError(t, groups.Delete(ctx, id))
		_, err = groups.GetByID(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrGroupNotFound)
		assert.ErrorIs(t, groups.Delete(ctx, id), errorvalues.ErrGroupNotFound)
	})

	t.Run("community", func(t *testing.T) {
		list, err := community.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, list)
		id := list[0].ID
		require.NoError(t, community.Join(ctx, id, user.ID, user.DisplayName))
		require.NoError(t, community.Join(ctx, id, user.ID, user.DisplayName))
		c, err := community.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{user.ID.String(): "Reader"}, c.Participants)
		require.NoError(t, community.Leave(ctx, id, user.ID))
	})

	t.Run("leaderboard", func(t *testing.T) {
		_, err := users.AddXP(ctx, user.ID, 40)
		require.NoError(t, err)
		top, err := users.TopByXP(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, user.ID, top[0].UserID)
		rank, err := users.RankOf(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, rank)
	})
}

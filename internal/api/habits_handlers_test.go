package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/rehabit/internal/api"
	errorvalues "github.com/limbo/rehabit/internal/error_values"
	"github.com/limbo/rehabit/internal/service"
	"github.com/limbo/rehabit/pkg/entity"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHabit(t *testing.T) {
	env := newTestEnv(t)
	habit := &entity.Habit{ID: uuid.New(), UserID: testUser.ID, Name: "Read"}
	testCases := []struct {
		Desc         string
		Body         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "created",
			Body:         `{"name":"Read","desc":"20 pages","icon":"📚","color":"#4caf50"}`,
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				env.habits.EXPECT().CreateHabit(gomock.Any(), testUser.ID, &service.CreateHabitRequest{
					Name:        "Read",
					Description: "20 pages",
					Icon:        "📚",
					Color:       "#4caf50",
				}).Return(habit, nil)
			},
		},
		{
			Desc:         "invalid data",
			Body:         `{"name":""}`,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				env.habits.EXPECT().CreateHabit(gomock.Any(), testUser.ID, gomock.Any()).Return(nil, service.NewValidationError("name is required"))
			},
		},
		{
			Desc:         "invalid body",
			Body:         `name=Read`,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := env.do(env.authRequest(t, http.MethodPost, "/api/habits", strings.NewReader(tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestGetHabits(t *testing.T) {
	env := newTestEnv(t)
	habits := []*entity.Habit{
		{ID: uuid.New(), UserID: testUser.ID, Name: "Read"},
		{ID: uuid.New(), UserID: testUser.ID, Name: "Run"},
	}
	env.habits.EXPECT().GetUserHabits(gomock.Any(), testUser.ID).Return(habits, nil)
	rr := env.do(env.authRequest(t, http.MethodGet, "/api/habits", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var resp api.GetHabitsResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, testUser.ID.String(), resp.UserID)
	assert.Len(t, resp.Habits, 2)
}

func TestDeleteHabit(t *testing.T) {
	env := newTestEnv(t)
	habitID := uuid.New()
	testCases := []struct {
		Desc         string
		Path         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "deleted",
			Path:         habitID.String(),
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				env.habits.EXPECT().DeleteHabit(gomock.Any(), habitID, testUser.ID).Return(nil)
			},
		},
		{
			Desc:         "not found",
			Path:         habitID.String(),
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				env.habits.EXPECT().DeleteHabit(gomock.Any(), habitID, testUser.ID).Return(errorvalues.ErrHabitNotFound)
			},
		},
		{
			Desc:         "foreign habit looks missing",
			Path:         habitID.String(),
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				env.habits.EXPECT().DeleteHabit(gomock.Any(), habitID, testUser.ID).Return(errorvalues.ErrWrongOwner)
			},
		},
		{
			Desc:         "service error",
			Path:         habitID.String(),
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				env.habits.EXPECT().DeleteHabit(gomock.Any(), habitID, testUser.ID).Return(errors.New("service error"))
			},
		},
		{
			Desc:         "invalid id",
			Path:         "not-a-uuid",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := env.do(env.authRequest(t, http.MethodDelete, "/api/habits/"+tc.Path, nil))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestToggleHabit(t *testing.T) {
	env := newTestEnv(t)
	habitID := uuid.New()
	path := "/api/habits/" + habitID.String() + "/toggle"
	expectDay := func(want time.Time, result *entity.ToggleResult, err error) {
		env.checks.EXPECT().ToggleHabit(gomock.Any(), habitID, testUser.ID, gomock.Any()).DoAndReturn(
			func(ctx context.Context, _, _ uuid.UUID, day time.Time) (*entity.ToggleResult, error) {
				assert.True(t, want.Equal(day), "got day %s, want %s", day, want)
				return result, err
			})
	}
	completed := &entity.ToggleResult{
		Habit:     &entity.Habit{ID: habitID, Streak: 3},
		Completed: true,
		XP:        entity.XPChange{OldXP: 120, NewXP: 130, OldLevel: 2, NewLevel: 2},
		Challenges: &entity.ChallengeEvaluation{
			Completed: []int{3},
			XPAwarded: 30,
		},
	}
	testCases := []struct {
		Desc         string
		Body         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "today without body",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() { expectDay(time.Time{}, completed, nil) },
		},
		{
			Desc:         "past day",
			Body:         `{"date":"2025-03-08"}`,
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				expectDay(time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC),
					&entity.ToggleResult{Habit: &entity.Habit{ID: habitID}}, nil)
			},
		},
		{
			Desc:         "future day",
			Body:         `{"date":"2025-03-11"}`,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				expectDay(time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC), nil, errorvalues.ErrCheckDateNotAllowed)
			},
		},
		{
			Desc:         "malformed date",
			Body:         `{"date":"08.03.2025"}`,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "foreign habit",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() { expectDay(time.Time{}, nil, errorvalues.ErrWrongOwner) },
		},
		{
			Desc:         "xp update failed",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() { expectDay(time.Time{}, nil, errors.New("repository error: timeout")) },
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := env.do(env.authRequest(t, http.MethodPost, path, strings.NewReader(tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}

	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.HabitToggles.WithLabelValues("completed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.HabitToggles.WithLabelValues("uncompleted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.ChallengesCompleted))
}

func TestGetHabitChecks(t *testing.T) {
	env := newTestEnv(t)
	habitID := uuid.New()
	path := "/api/habits/" + habitID.String() + "/checks"
	t.Run("range", func(t *testing.T) {
		from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		env.checks.EXPECT().GetHabitChecks(gomock.Any(), habitID, testUser.ID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _, _ uuid.UUID, gotFrom, gotTo time.Time) ([]entity.HabitCheck, error) {
				assert.True(t, from.Equal(gotFrom))
				assert.True(t, to.Equal(gotTo))
				return []entity.HabitCheck{{HabitID: habitID, CheckDate: from}}, nil
			})
		rr := env.do(env.authRequest(t, http.MethodGet, path+"?from=2025-03-01&to=2025-03-10", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.GetChecksResponse
		decodeBody(t, rr, &resp)
		assert.Len(t, resp.Checks, 1)
	})
	t.Run("reversed range", func(t *testing.T) {
		rr := env.do(env.authRequest(t, http.MethodGet, path+"?from=2025-03-10&to=2025-03-01", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	rr := env.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `rehabit_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/rehabit/internal/scheduler"
	"github.com/limbo/rehabit/internal/service/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := scheduler.New(time.UTC, mocks.NewMockStatisticsServiceI(ctrl), mocks.NewMockHabitsServiceI(ctrl), nil)

	assert.NoError(t, s.Register(scheduler.Specs{WeeklyReset: "@weekly"}))
	assert.Equal(t, 3, s.Entries())

	broken := scheduler.New(time.UTC, mocks.NewMockStatisticsServiceI(ctrl), mocks.NewMockHabitsServiceI(ctrl), nil)
	assert.Error(t, broken.Register(scheduler.Specs{MonthlyReset: "every full moon"}))
}

func TestJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	stats := mocks.NewMockStatisticsServiceI(ctrl)
	habits := mocks.NewMockHabitsServiceI(ctrl)
	s := scheduler.New(time.UTC, stats, habits, nil)
	ctx := context.Background()

	stats.EXPECT().ResetWeekly(gomock.Any()).Return(int64(12), nil)
	assert.NoError(t, s.ResetWeekly(ctx))

	stats.EXPECT().ResetMonthly(gomock.Any()).Return(int64(0), errors.New("db error"))
	assert.Error(t, s.ResetMonthly(ctx))

	habits.EXPECT().ReconcileStreaks(gomock.Any()).Return(2, nil)
	assert.NoError(t, s.ReconcileStreaks(ctx))
}

func TestStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := scheduler.New(nil, mocks.NewMockStatisticsServiceI(ctrl), mocks.NewMockHabitsServiceI(ctrl), nil)
	assert.NoError(t, s.Register(scheduler.Specs{}))
	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

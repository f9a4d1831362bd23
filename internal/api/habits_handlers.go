package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/rehabit/internal/service"
	"github.com/limbo/rehabit/pkg/entity"
	"github.com/limbo/rehabit/pkg/httputil"
)

type CreateHabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

type ToggleHabitRequest struct {
	// YYYY-MM-DD, empty means today
	Date string `json:"date"`
}

type GetHabitsResponse struct {
	UserID string          `json:"uid"`
	Habits []*entity.Habit `json:"habits"`
}

type GetChecksResponse struct {
	HabitID string              `json:"habit_id"`
	Checks  []entity.HabitCheck `json:"checks"`
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateHabitRequest
	err = httputil.DecodeJSON(r, &req)
	if err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.CreateHabit(ctx, uid, &service.CreateHabitRequest{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		writeServiceError(w, logger, "create habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created")
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	habits, err := s.habitsService.GetUserHabits(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Habits: habits,
	})
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("get habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("habit deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("habit deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.habitsService.DeleteHabit(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "delete habit", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("habit deleted")
}

func (s *Server) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("toggle habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("toggle habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req ToggleHabitRequest
	// Body is optional
	if err = httputil.DecodeOptionalJSON(r, &req); err != nil {
		logger.Error("toggle habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	day, err := s.parseDay(req.Date)
	if err != nil {
		logger.Error("toggle habit error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.checksService.ToggleHabit(ctx, id, uid, day)
	if err != nil {
		writeServiceError(w, logger, "toggle habit", err)
		return
	}
	outcome := "uncompleted"
	if result.Completed {
		outcome = "completed"
	}
	s.metrics.HabitToggles.WithLabelValues(outcome).Inc()
	if result.Challenges != nil {
		s.metrics.ChallengesCompleted.Add(float64(len(result.Challenges.Completed)))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("habit toggled", "outcome", outcome)
}

func (s *Server) GetHabitChecks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get checks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("get checks error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	from, to, err := s.dayRange(r)
	if err != nil {
		logger.Error("get checks error: invalid range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	checks, err := s.checksService.GetHabitChecks(ctx, id, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "get habit checks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetChecksResponse{
		HabitID: id.String(),
		Checks:  checks,
	})
}

package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/limbo/rehabit/pkg/entity"
	"github.com/limbo/rehabit/pkg/httputil"
)

type DailyStatsResponse struct {
	Days []entity.DailyStat `json:"days"`
}

type CommunityChallengesResponse struct {
	Challenges []*entity.CommunityChallenge `json:"challenges"`
}

func (s *Server) GetStatistics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get statistics error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.statsService.Get(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get statistics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetDailyStatistics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get daily statistics error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, to, err := s.dayRange(r)
	if err != nil {
		logger.Error("get daily statistics error: invalid range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range", err)
		return
	}
	// Last week by default
	if to.IsZero() {
		to = s.clock.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -6)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	days, err := s.statsService.DailyRange(ctx, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "get daily statistics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DailyStatsResponse{Days: days})
}

func (s *Server) GetChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	board, err := s.challengeService.Board(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get challenges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, board)
}

func (s *Server) EvaluateChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("evaluate challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	evaluation, err := s.challengeService.Evaluate(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "evaluate challenges", err)
		return
	}
	if n := len(evaluation.Completed); n > 0 {
		s.metrics.ChallengesCompleted.Add(float64(n))
		logger.Info("challenges completed", "count", n, "xp", evaluation.XPAwarded)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, evaluation)
}

func (s *Server) ReplaceChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("replace challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	board, err := s.challengeService.Replace(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "replace challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, board)
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get leaderboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	// Malformed limit falls back to the default
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	board, err := s.leaderboardService.Top(ctx, uid, limit)
	if err != nil {
		writeServiceError(w, logger, "get leaderboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, board)
}

func (s *Server) ListCommunityChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	list, err := s.communityService.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "list community challenges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CommunityChallengesResponse{Challenges: list})
}

func (s *Server) JoinCommunityChallenge(w http.ResponseWriter, r *http.Request) {
	s.communityParticipation(w, r, true)
}

func (s *Server) LeaveCommunityChallenge(w http.ResponseWriter, r *http.Request) {
	s.communityParticipation(w, r, false)
}

func (s *Server) communityParticipation(w http.ResponseWriter, r *http.Request, join bool) {
	op := "leave community challenge"
	if join {
		op = "join community challenge"
	}
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	var c *entity.CommunityChallenge
	if join {
		c, err = s.communityService.Join(ctx, id, uid)
	} else {
		c, err = s.communityService.Leave(ctx, id, uid)
	}
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, c)
}

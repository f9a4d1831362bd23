package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"github.com/limbo/rehabit/internal/metrics"
	"github.com/limbo/rehabit/internal/service"
	"github.com/limbo/rehabit/pkg/httputil"
)

type Server struct {
	mx  *chi.Mux
	srv *http.Server

	userService        service.UserServiceI
	habitsService      service.HabitsServiceI
	checksService      service.HabitChecksServiceI
	statsService       service.StatisticsServiceI
	challengeService   service.ChallengeServiceI
	leaderboardService service.LeaderboardServiceI
	groupsService      service.GroupsServiceI
	communityService   service.CommunityServiceI

	jwtService  JWTServiceI
	oauth       OAuthProviderI
	metrics     *metrics.Metrics
	clock       *service.Clock
	healthCheck func(ctx context.Context) error
	// Empty means any origin
	allowedOrigins []string
	upgrader       websocket.Upgrader
	// Hijacked websocket connections outlive http.Server.Shutdown, feeds watch this instead
	feedsCtx  context.Context
	stopFeeds context.CancelFunc
}

type ServicesList struct {
	UserService        service.UserServiceI
	HabitsService      service.HabitsServiceI
	ChecksService      service.HabitChecksServiceI
	StatsService       service.StatisticsServiceI
	ChallengeService   service.ChallengeServiceI
	LeaderboardService service.LeaderboardServiceI
	GroupsService      service.GroupsServiceI
	CommunityService   service.CommunityServiceI
	JwtService         JWTServiceI
	// Optional
	OAuth       OAuthProviderI
	Metrics     *metrics.Metrics
	Clock       *service.Clock
	HealthCheck func(ctx context.Context) error
	// Origins allowed to open websocket feeds. Empty means any
	AllowedOrigins []string
}

func New(opts *ServicesList) *Server {
	if opts.UserService == nil || opts.HabitsService == nil || opts.ChecksService == nil || opts.StatsService == nil ||
		opts.ChallengeService == nil || opts.LeaderboardService == nil || opts.GroupsService == nil ||
		opts.CommunityService == nil || opts.JwtService == nil {
		log.Fatal("on api server provided nil services")
	}
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        opts.UserService,
		habitsService:      opts.HabitsService,
		checksService:      opts.ChecksService,
		statsService:       opts.StatsService,
		challengeService:   opts.ChallengeService,
		leaderboardService: opts.LeaderboardService,
		groupsService:      opts.GroupsService,
		communityService:   opts.CommunityService,
		jwtService:         opts.JwtService,
		oauth:              opts.OAuth,
		metrics:            opts.Metrics,
		clock:              opts.Clock,
		healthCheck:        opts.HealthCheck,
	}
	if s.metrics == nil {
		s.metrics = metrics.New(nil)
	}
	if s.clock == nil {
		s.clock = service.NewClock(time.Local)
	}
	origins := opts.AllowedOrigins
	s.allowedOrigins = origins
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return len(origins) == 0 || origin == "" || slices.Contains(origins, origin)
		},
	}
	s.feedsCtx, s.stopFeeds = context.WithCancel(context.Background())
	s.MountRoutes()
	return s
}

func (s *Server) MountRoutes() {
	s.mx.Use(
		middleware.RealIP,
		s.RequestIDMiddleware,
		s.SettingUpLoggerMiddleware,
		middleware.Recoverer,
		s.metrics.Middleware,
		cors.Handler(cors.Options{
			AllowedOrigins:   s.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", requestIDHeader},
			ExposedHeaders:   []string{requestIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	s.mx.Get("/health", s.Health)
	s.mx.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	s.mx.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Get("/google/login", s.GoogleLogin)
		r.Get("/google/callback", s.GoogleCallback)
	})

	s.mx.Route("/api", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Get("/me", s.Me)
		r.Patch("/me", s.UpdateProfile)

		r.Route("/habits", func(r chi.Router) {
			r.Post("/", s.CreateHabit)
			r.Get("/", s.GetHabits)
			r.Get("/{id}", s.GetHabit)
			r.Delete("/{id}", s.DeleteHabit)
			r.Post("/{id}/toggle", s.ToggleHabit)
			r.Get("/{id}/checks", s.GetHabitChecks)
		})

		r.Get("/stats", s.GetStatistics)
		r.Get("/stats/daily", s.GetDailyStatistics)

		r.Get("/challenges", s.GetChallenges)
		r.Post("/challenges/evaluate", s.EvaluateChallenges)
		r.Post("/challenges/replace", s.ReplaceChallenge)

		r.Get("/leaderboard", s.GetLeaderboard)

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", s.ListGroups)
			r.Post("/", s.CreateGroup)
			r.Get("/{id}", s.GetGroup)
			r.Delete("/{id}", s.DeleteGroup)
			r.Post("/{id}/join", s.JoinGroup)
			r.Post("/{id}/leave", s.LeaveGroup)
			r.Post("/{id}/hide", s.HideGroup)
			r.Get("/{id}/messages", s.GetMessages)
			r.Post("/{id}/messages", s.SendMessage)
			r.Get("/{id}/feed", s.GroupFeed)
		})

		r.Get("/community-challenges", s.ListCommunityChallenges)
		r.Post("/community-challenges/{id}/join", s.JoinCommunityChallenge)
		r.Post("/community-challenges/{id}/leave", s.LeaveCommunityChallenge)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) Run(address string) error {
	s.srv = &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.srv.RegisterOnShutdown(s.stopFeeds)
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		s.stopFeeds()
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.healthCheck != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()
		if err := s.healthCheck(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Error("health check failed", "error", err.Error())
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "unhealthy", err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

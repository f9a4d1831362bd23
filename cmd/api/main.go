package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/rehabit/internal/api"
	"github.com/limbo/rehabit/internal/challenge"
	"github.com/limbo/rehabit/internal/metrics"
	"github.com/limbo/rehabit/internal/repository"
	"github.com/limbo/rehabit/internal/scheduler"
	"github.com/limbo/rehabit/internal/service"
	"github.com/limbo/rehabit/pkg/cleanup"
	"github.com/limbo/rehabit/pkg/config"
	jwtservice "github.com/limbo/rehabit/pkg/jwt_service"
	"github.com/limbo/rehabit/pkg/logger"
	oauthprovider "github.com/limbo/rehabit/pkg/oauth_provider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	lg, logCloser := logger.New(logger.Options{
		Level:      cfg.GetString("LOG_LEVEL"),
		File:       cfg.GetString("LOG_FILE"),
		MaxSizeMB:  cfg.GetInt("LOG_MAX_SIZE_MB", 100),
		MaxBackups: cfg.GetInt("LOG_MAX_BACKUPS", 5),
		MaxAgeDays: cfg.GetInt("LOG_MAX_AGE_DAYS", 28),
	})
	slog.SetDefault(lg)
	cleanup.Register(&cleanup.Job{Name: "closing log file", F: logCloser.Close})
	defer cleanup.CleanUp()

	loc, err := time.LoadLocation(cfg.GetStringOr("TIMEZONE", "UTC"))
	if err != nil {
		log.Fatal("loading timezone error: " + err.Error())
	}
	clock := service.NewClock(loc)

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	err = repository.Migrate(dbCfg.ConnString()+"?sslmode=disable", cfg.GetStringOr("MIGRATIONS_DIR", "./migrations"))
	if err != nil {
		log.Fatal(err)
	}
	pool := repository.Connect(&dbCfg)
	rdb := repository.ConnectRedis(repository.RedisCfg{
		Address:  cfg.GetStringOr("REDIS_ADDRESS", "localhost:6379"),
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	})

	usersRepo := repository.NewUsersRepoWithConn(pool)
	habitsRepo := repository.NewHabitsRepoWithConn(pool)
	checksRepo := repository.NewHabitChecksRepoWithConn(pool)
	statsRepo := repository.NewStatisticsRepoWithConn(pool)
	groupsRepo := repository.NewGroupsRepoWithConn(pool)
	messagesRepo := repository.NewMessagesRepoWithConn(pool)
	communityRepo := repository.NewCommunityRepoWithConn(pool)

	statsService := service.NewStatisticsService(statsRepo, habitsRepo, clock)
	leaderboardService := service.NewLeaderboardService(usersRepo,
		repository.NewLeaderboardCache(rdb, cfg.GetDuration("LEADERBOARD_CACHE_TTL", time.Minute)))
	challengeService := service.NewChallengeService(repository.NewChallengeStore(rdb), challenge.Default(),
		usersRepo, habitsRepo, leaderboardService, challenge.DefaultRand, clock)
	habitsService := service.NewHabitsService(habitsRepo, statsService, challengeService, clock)
	checksService := service.NewHabitChecksService(habitsRepo, checksRepo, usersRepo,
		statsService, challengeService, leaderboardService, clock)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	sched := scheduler.New(loc, statsService, habitsService, func(job string, err error) {
		status := "ok"
		if err != nil {
			status = "error"
		}
		m.JobRuns.WithLabelValues(job, status).Inc()
	})
	err = sched.Register(scheduler.Specs{
		WeeklyReset:     cfg.GetString("CRON_WEEKLY_RESET"),
		MonthlyReset:    cfg.GetString("CRON_MONTHLY_RESET"),
		StreakReconcile: cfg.GetString("CRON_STREAK_RECONCILE"),
	})
	if err != nil {
		log.Fatal(err)
	}
	sched.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping scheduler",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			return sched.Stop(ctx)
		},
	})

	var origins []string
	if v := cfg.GetString("ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo, statsService, clock),
		HabitsService:      habitsService,
		ChecksService:      checksService,
		StatsService:       statsService,
		ChallengeService:   challengeService,
		LeaderboardService: leaderboardService,
		GroupsService:      service.NewGroupsService(groupsRepo, messagesRepo, usersRepo, repository.NewMessageBus(rdb)),
		CommunityService:   service.NewCommunityService(communityRepo, usersRepo),
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
		OAuth: oauthprovider.NewGoogle(oauthprovider.Options{
			ClientID:     cfg.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: cfg.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  cfg.GetString("GOOGLE_REDIRECT_URL"),
		}),
		Metrics: m,
		Clock:   clock,
		HealthCheck: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return err
			}
			return rdb.Ping(ctx).Err()
		},
		AllowedOrigins: origins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := serv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", slog.String("error", err.Error()))
		}
	}()

	address := cfg.GetStringOr("API_ADDRESS", ":8080")
	slog.Info("starting api server", slog.String("address", address), slog.String("timezone", loc.String()))
	if err = serv.Run(address); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"

	leaderboardservice "clubtrack/contexts/analytics-core/leaderboard-service"
	leaderboardpostgres "clubtrack/contexts/analytics-core/leaderboard-service/adapters/postgres"
	topicanalyticsservice "clubtrack/contexts/analytics-core/topic-analytics-service"
	membershipservice "clubtrack/contexts/identity-access/membership-service"
	membershippostgres "clubtrack/contexts/identity-access/membership-service/adapters/postgres"
	connectorservice "clubtrack/contexts/platform-integration/connector-service"
	connectorpostgres "clubtrack/contexts/platform-integration/connector-service/adapters/postgres"
	"clubtrack/contexts/platform-integration/connector-service/adapters/upstream"
	connectorapplication "clubtrack/contexts/platform-integration/connector-service/application"
	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
	connectorports "clubtrack/contexts/platform-integration/connector-service/ports"
	"clubtrack/internal/platform/config"
	"clubtrack/internal/platform/db"
	"clubtrack/internal/platform/httpserver"
	"clubtrack/internal/platform/snapshotbus"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres  *db.Postgres
	connector connectorapplication.Service
	roster    connectorports.Repository
	interval  time.Duration
	logger    *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus := snapshotbus.New(logger)

	membershipModule := membershipservice.NewModule(membershipservice.Dependencies{
		Repository:       membershippostgres.NewRepository(pg.DB, logger),
		Clock:            membershippostgres.SystemClock{},
		Notifier:         bus,
		MentorAccessCode: cfg.MentorAccessCode,
		Logger:           logger,
	})

	codeforces := &upstream.Codeforces{BaseURL: cfg.CodeforcesBaseURL, Logger: logger}
	connectorModule := connectorservice.NewModule(connectorservice.Dependencies{
		Repository: connectorpostgres.NewRepository(pg.DB, logger),
		Fetchers:   buildFetchers(cfg, codeforces, logger),
		Clock:      connectorpostgres.SystemClock{},
		Notifier:   bus,
		Logger:     logger,
	})

	leaderboardModule := leaderboardservice.NewModule(leaderboardservice.Dependencies{
		Repository: leaderboardpostgres.NewRepository(pg.DB, logger),
		Snapshots:  bus,
		Logger:     logger,
	})

	topicModule := topicanalyticsservice.NewModule(topicanalyticsservice.Dependencies{
		Source: codeforces,
		Logger: logger,
	})

	server := httpserver.New(
		membershipModule,
		connectorModule,
		leaderboardModule,
		topicModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := connectorpostgres.NewRepository(pg.DB, logger)
	codeforces := &upstream.Codeforces{BaseURL: cfg.CodeforcesBaseURL, Logger: logger}
	connectorModule := connectorservice.NewModule(connectorservice.Dependencies{
		Repository: repo,
		Fetchers:   buildFetchers(cfg, codeforces, logger),
		Clock:      connectorpostgres.SystemClock{},
		Logger:     logger,
	})

	return &WorkerApp{
		postgres:  pg,
		connector: connectorModule.Service,
		roster:    repo,
		interval:  cfg.SyncInterval,
		logger:    logger,
	}, nil
}

func buildFetchers(cfg config.Config, codeforces *upstream.Codeforces, logger *slog.Logger) map[profile.Platform]connectorports.Fetcher {
	return map[profile.Platform]connectorports.Fetcher{
		profile.PlatformLeetCode:   &upstream.LeetCode{BaseURL: cfg.LeetCodeBaseURL, Logger: logger},
		profile.PlatformCodeforces: codeforces,
		profile.PlatformCodeChef:   &upstream.CodeChef{BaseURL: cfg.CodeChefBaseURL, Logger: logger},
	}
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

// Run schedules the periodic roster-wide refresh and blocks until the context
// ends.
func (w *WorkerApp) Run(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() { w.refreshRoster(ctx) }),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}
	scheduler.Start()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"sync_interval", w.interval.String(),
	)

	<-ctx.Done()
	return scheduler.Shutdown()
}

// refreshRoster re-syncs every member with at least one connected platform.
// One member's failure never stops the sweep.
func (w *WorkerApp) refreshRoster(ctx context.Context) {
	members, err := w.roster.ListConnectedMembers(ctx)
	if err != nil {
		w.logger.Error("roster listing failed",
			"event", "worker_roster_list_failed",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"error", err.Error(),
		)
		return
	}

	refreshed := 0
	for _, member := range members {
		if ctx.Err() != nil {
			return
		}
		result, err := w.connector.Refresh(ctx, member.UserID)
		if err != nil {
			w.logger.Warn("member refresh failed",
				"event", "worker_member_refresh_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"user_id", member.UserID,
				"error", err.Error(),
			)
			continue
		}
		refreshed++
		if len(result.Failed) > 0 {
			w.logger.Warn("member refresh partially failed",
				"event", "worker_member_refresh_partial",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"user_id", member.UserID,
				"failed_platforms", len(result.Failed),
			)
		}
	}

	w.logger.Info("roster refresh sweep finished",
		"event", "worker_roster_refreshed",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"members", len(members),
		"refreshed", refreshed,
	)
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}

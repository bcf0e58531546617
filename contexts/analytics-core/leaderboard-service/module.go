package leaderboardservice

import (
	"log/slog"

	httpadapter "clubtrack/contexts/analytics-core/leaderboard-service/adapters/http"
	"clubtrack/contexts/analytics-core/leaderboard-service/adapters/memory"
	"clubtrack/contexts/analytics-core/leaderboard-service/application"
	"clubtrack/contexts/analytics-core/leaderboard-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Snapshots  ports.SnapshotSubscriber
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:      deps.Repository,
		Snapshots: deps.Snapshots,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(seed []ports.UserSnapshot, snapshots ports.SnapshotSubscriber, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository: store,
		Snapshots:  snapshots,
		Logger:     logger,
	})
	module.Store = store
	return module
}

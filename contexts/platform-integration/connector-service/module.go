package connectorservice

import (
	"log/slog"

	httpadapter "clubtrack/contexts/platform-integration/connector-service/adapters/http"
	"clubtrack/contexts/platform-integration/connector-service/adapters/memory"
	"clubtrack/contexts/platform-integration/connector-service/application"
	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
	"clubtrack/contexts/platform-integration/connector-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Fetchers   map[profile.Platform]ports.Fetcher
	Clock      ports.Clock
	Notifier   ports.ChangeNotifier
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:     deps.Repository,
		Fetchers: deps.Fetchers,
		Clock:    deps.Clock,
		Notifier: deps.Notifier,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule wires the service onto the memory store; tests supply
// fetchers backed by httptest servers or hand-rolled fakes.
func NewInMemoryModule(
	seed []ports.MemberRecord,
	fetchers map[profile.Platform]ports.Fetcher,
	clock ports.Clock,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(seed)
	if clock == nil {
		clock = store
	}
	module := NewModule(Dependencies{
		Repository: store,
		Fetchers:   fetchers,
		Clock:      clock,
		Logger:     logger,
	})
	module.Store = store
	return module
}

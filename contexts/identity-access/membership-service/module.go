package membershipservice

import (
	"log/slog"

	httpadapter "clubtrack/contexts/identity-access/membership-service/adapters/http"
	"clubtrack/contexts/identity-access/membership-service/adapters/identifier"
	"clubtrack/contexts/identity-access/membership-service/adapters/memory"
	"clubtrack/contexts/identity-access/membership-service/application"
	"clubtrack/contexts/identity-access/membership-service/domain/member"
	"clubtrack/contexts/identity-access/membership-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository       ports.Repository
	IDs              ports.IDGenerator
	Clock            ports.Clock
	Notifier         ports.ChangeNotifier
	MentorAccessCode string
	Logger           *slog.Logger
}

func NewModule(deps Dependencies) Module {
	ids := deps.IDs
	if ids == nil {
		ids = identifier.Generator{}
	}
	service := application.Service{
		Repo:             deps.Repository,
		IDs:              ids,
		MentorAccessCode: deps.MentorAccessCode,
		Clock:            deps.Clock,
		Notifier:         deps.Notifier,
		Logger:           deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(seed []member.Member, accessCode string, clock ports.Clock, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	if clock == nil {
		clock = store
	}
	module := NewModule(Dependencies{
		Repository:       store,
		Clock:            clock,
		MentorAccessCode: accessCode,
		Logger:           logger,
	})
	module.Store = store
	return module
}

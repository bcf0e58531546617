package topicanalyticsservice

import (
	"log/slog"

	httpadapter "clubtrack/contexts/analytics-core/topic-analytics-service/adapters/http"
	"clubtrack/contexts/analytics-core/topic-analytics-service/adapters/memory"
	"clubtrack/contexts/analytics-core/topic-analytics-service/application"
	"clubtrack/contexts/analytics-core/topic-analytics-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Source  *memory.Source
}

type Dependencies struct {
	Source ports.SubmissionSource
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Source: deps.Source,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	source := memory.NewSource()
	module := NewModule(Dependencies{Source: source, Logger: logger})
	module.Source = source
	return module
}

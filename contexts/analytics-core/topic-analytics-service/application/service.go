package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "clubtrack/contexts/analytics-core/topic-analytics-service/domain/errors"
	"clubtrack/contexts/analytics-core/topic-analytics-service/domain/topics"
	"clubtrack/contexts/analytics-core/topic-analytics-service/ports"
)

// defaultTopicLimit matches the compact profile widget; the detail view asks
// for more explicitly.
const defaultTopicLimit = 6

type Service struct {
	Source ports.SubmissionSource
	Logger *slog.Logger
}

// TopicStrength computes the per-tag breakdown for one handle. Every call
// re-pulls the submission history; nothing is cached between requests.
func (s Service) TopicStrength(ctx context.Context, handle string, limit int) ([]topics.Strength, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	if limit == 0 {
		limit = defaultTopicLimit
	}

	history, err := s.Source.RecentSubmissions(ctx, handle)
	if err != nil {
		return nil, err
	}
	strengths := topics.Compute(history, limit)

	resolveLogger(s.Logger).Info("topic strength computed",
		"event", "topic_strength_computed",
		"module", "analytics-core/topic-analytics-service",
		"layer", "application",
		"handle", handle,
		"submissions", len(history),
		"topics", len(strengths),
	)
	return strengths, nil
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubtrack/contexts/analytics-core/statskit"
	"clubtrack/contexts/analytics-core/topic-analytics-service/adapters/memory"
	domainerrors "clubtrack/contexts/analytics-core/topic-analytics-service/domain/errors"
)

func TestTopicStrengthRejectsBlankHandle(t *testing.T) {
	service := Service{Source: memory.NewSource()}
	if _, err := service.TopicStrength(context.Background(), "   ", 0); !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("got %v", err)
	}
}

func TestTopicStrengthAppliesDefaultLimit(t *testing.T) {
	source := memory.NewSource()
	history := make([]statskit.Submission, 0, 9)
	for i, tag := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		history = append(history, statskit.Submission{
			ID:        int64(i + 1),
			Key:       statskit.ProblemKey{ContestID: i + 1, Index: "A"},
			Tags:      []string{tag},
			Verdict:   statskit.VerdictAccepted,
			CreatedAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	source.SeedHistory("asha_cf", history)

	service := Service{Source: source}
	strengths, err := service.TopicStrength(context.Background(), "asha_cf", 0)
	if err != nil {
		t.Fatalf("TopicStrength: %v", err)
	}
	if len(strengths) != 6 {
		t.Fatalf("default limit should cap at 6, got %d", len(strengths))
	}
}

type failingSource struct{ err error }

func (f failingSource) RecentSubmissions(context.Context, string) ([]statskit.Submission, error) {
	return nil, f.err
}

func TestTopicStrengthPropagatesSourceErrors(t *testing.T) {
	upstreamErr := errors.New("codeforces is down")
	service := Service{Source: failingSource{err: upstreamErr}}
	if _, err := service.TopicStrength(context.Background(), "asha_cf", 0); !errors.Is(err, upstreamErr) {
		t.Fatalf("got %v", err)
	}
}

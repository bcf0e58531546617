package ports

import (
	"context"

	"clubtrack/contexts/analytics-core/statskit"
)

// SubmissionSource supplies the raw attempt history for one handle. The
// Codeforces upstream adapter satisfies it; tests use canned fakes.
type SubmissionSource interface {
	RecentSubmissions(ctx context.Context, handle string) ([]statskit.Submission, error)
}

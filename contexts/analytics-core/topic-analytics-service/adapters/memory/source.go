package memory

import (
	"context"
	"sync"

	"clubtrack/contexts/analytics-core/statskit"
)

// Source serves canned submission histories keyed by handle. Unknown handles
// get an empty history, mirroring an account with no attempts.
type Source struct {
	mu        sync.RWMutex
	histories map[string][]statskit.Submission
}

func NewSource() *Source {
	return &Source{histories: make(map[string][]statskit.Submission)}
}

func (s *Source) SeedHistory(handle string, history []statskit.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.histories[handle] = append([]statskit.Submission(nil), history...)
}

func (s *Source) RecentSubmissions(_ context.Context, handle string) ([]statskit.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]statskit.Submission(nil), s.histories[handle]...), nil
}

package ports

import (
	"context"
	"strings"
)

// Timeframe selects the leaderboard scoring window.
type Timeframe string

const (
	TimeframeAll     Timeframe = "all"
	TimeframeMonthly Timeframe = "monthly"
	TimeframeWeekly  Timeframe = "weekly"
)

// ParseTimeframe maps a query value onto a timeframe; empty means all-time.
func ParseTimeframe(raw string) (Timeframe, bool) {
	switch Timeframe(strings.ToLower(strings.TrimSpace(raw))) {
	case "", TimeframeAll:
		return TimeframeAll, true
	case TimeframeMonthly:
		return TimeframeMonthly, true
	case TimeframeWeekly:
		return TimeframeWeekly, true
	default:
		return "", false
	}
}

// PlatformSnapshot is the per-platform slice the ranking engine scores on.
type PlatformSnapshot struct {
	Connected      bool
	ProblemsSolved int
	Rating         int
}

// UserSnapshot is one stored user as seen at ranking time. The engine treats
// the whole snapshot as immutable input.
type UserSnapshot struct {
	UserID          string
	Name            string
	Batch           string
	RollNumber      string
	Role            string
	Approved        bool
	Platforms       map[string]PlatformSnapshot
	WeeklyProblems  int
	MonthlyProblems int
	CurrentStreak   int
}

// Entry is one ranked leaderboard row. Rank is assigned after sorting and is
// never read back as an input.
type Entry struct {
	UserID          string
	Name            string
	Batch           string
	RollNumber      string
	Rank            int
	TotalProblems   int
	WeeklyProblems  int
	MonthlyProblems int
	CurrentStreak   int
	AverageRating   int
	Platforms       map[string]int
}

// BatchPerformance is the per-batch rollup for the analytics view.
type BatchPerformance struct {
	Batch       string
	AvgSolved   int
	TotalSolved int
	Members     int
}

// Repository supplies the point-in-time roster snapshot.
type Repository interface {
	SnapshotUsers(ctx context.Context) ([]UserSnapshot, error)
}

// SnapshotSubscriber is the optional change feed. Each delivery means "the
// roster changed, recompute from a fresh snapshot"; no delta state crosses
// invocations.
type SnapshotSubscriber interface {
	Subscribe() (<-chan struct{}, func())
}

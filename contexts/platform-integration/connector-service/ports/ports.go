package ports

import (
	"context"
	"time"

	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
)

// StatsSnapshot is the cached display rollup stored on the member record.
// Ranking and analytics reads recompute totals live from the platform
// profiles; this block exists so profile pages render without a recompute and
// carries the streak figures only submission history can produce.
type StatsSnapshot struct {
	TotalProblems   int
	EasyProblems    int
	MediumProblems  int
	HardProblems    int
	WeeklyProblems  int
	MonthlyProblems int
	CurrentStreak   int
	MaxStreak       int
}

// MemberRecord is the connector's projection of one stored club member.
type MemberRecord struct {
	UserID    string
	Name      string
	Batch     string
	Role      string
	Approved  bool
	JoinedAt  time.Time
	Platforms map[profile.Platform]profile.Profile
	Stats     StatsSnapshot
}

// Fetcher is one platform adapter: a single-attempt request/parse function.
// Retries and caching are the caller's concern.
type Fetcher interface {
	Platform() profile.Platform
	Fetch(ctx context.Context, username string) (profile.Fetched, error)
}

// Repository is the document-store slice the connector needs. Writes use
// merge semantics: only the named platform key and the stats block change.
type Repository interface {
	GetMember(ctx context.Context, userID string) (MemberRecord, error)
	PutPlatformProfile(ctx context.Context, userID string, platform profile.Platform, prof profile.Profile, stats StatsSnapshot) error
	RemovePlatformProfile(ctx context.Context, userID string, platform profile.Platform, stats StatsSnapshot) error
	ListConnectedMembers(ctx context.Context) ([]MemberRecord, error)
}

// ChangeNotifier signals roster consumers that profiles changed. Optional;
// the in-process snapshot bus implements it.
type ChangeNotifier interface {
	Notify()
}

type Clock interface {
	Now() time.Time
}

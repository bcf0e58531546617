package ports

import (
	"context"
	"time"

	"clubtrack/contexts/identity-access/membership-service/domain/member"
)

// RosterSummary is the administrative headcount view.
type RosterSummary struct {
	Total    int
	Mentors  int
	Approved int
	Pending  int
}

type Repository interface {
	CreateMember(ctx context.Context, m member.Member) error
	GetMember(ctx context.Context, userID string) (member.Member, error)
	SetApproved(ctx context.Context, userID string, approved bool) error
	ListMembers(ctx context.Context) ([]member.Member, error)
}

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// ChangeNotifier signals roster consumers after approval flips; optional.
type ChangeNotifier interface {
	Notify()
}

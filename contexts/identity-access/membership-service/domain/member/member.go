package member

import (
	"strings"
	"time"
)

type Role string

const (
	RoleMember Role = "member"
	RoleMentor Role = "mentor"
)

// ParseRole maps a request value onto a role; empty defaults to member.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case "", RoleMember:
		return RoleMember, true
	case RoleMentor:
		return RoleMentor, true
	default:
		return "", false
	}
}

// Member is one registered club account. Approved gates leaderboard
// eligibility; mentors are approved at registration, members wait for a
// mentor to approve them.
type Member struct {
	UserID     string
	Name       string
	Email      string
	Batch      string
	RollNumber string
	Role       Role
	Approved   bool
	JoinedAt   time.Time
}

func (m Member) IsMentor() bool {
	return m.Role == RoleMentor
}

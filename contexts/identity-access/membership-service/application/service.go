package application

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	domainerrors "clubtrack/contexts/identity-access/membership-service/domain/errors"
	"clubtrack/contexts/identity-access/membership-service/domain/member"
	"clubtrack/contexts/identity-access/membership-service/ports"
)

type Service struct {
	Repo ports.Repository
	IDs  ports.IDGenerator
	// MentorAccessCode comes from configuration so it rotates without a
	// rebuild. An empty code disables mentor self-registration entirely.
	MentorAccessCode string
	Clock            ports.Clock
	Notifier         ports.ChangeNotifier
	Logger           *slog.Logger
}

type RegisterInput struct {
	Name       string
	Email      string
	Batch      string
	RollNumber string
	Role       string
	AccessCode string
}

// Register creates an account. Members start unapproved; a mentor presenting
// the configured access code is approved immediately.
func (s Service) Register(ctx context.Context, input RegisterInput) (member.Member, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" {
		return member.Member{}, domainerrors.ErrInvalidInput
	}
	role, ok := member.ParseRole(input.Role)
	if !ok {
		return member.Member{}, domainerrors.ErrInvalidRole
	}
	if role == member.RoleMentor && !s.accessCodeMatches(input.AccessCode) {
		return member.Member{}, domainerrors.ErrAccessCodeInvalid
	}

	account := member.Member{
		UserID:     s.IDs.NewID(),
		Name:       name,
		Email:      email,
		Batch:      strings.TrimSpace(input.Batch),
		RollNumber: strings.TrimSpace(input.RollNumber),
		Role:       role,
		Approved:   role == member.RoleMentor,
		JoinedAt:   s.Clock.Now().UTC(),
	}
	if err := s.Repo.CreateMember(ctx, account); err != nil {
		return member.Member{}, err
	}

	resolveLogger(s.Logger).Info("member registered",
		"event", "membership_registered",
		"module", "identity-access/membership-service",
		"layer", "application",
		"user_id", account.UserID,
		"role", string(account.Role),
		"approved", account.Approved,
	)
	return account, nil
}

// Approve flips a pending account to approved. Only approved mentors may
// approve; approving twice is a no-op.
func (s Service) Approve(ctx context.Context, approverID string, userID string) (member.Member, error) {
	approverID = strings.TrimSpace(approverID)
	userID = strings.TrimSpace(userID)
	if approverID == "" || userID == "" {
		return member.Member{}, domainerrors.ErrInvalidInput
	}

	approver, err := s.Repo.GetMember(ctx, approverID)
	if err != nil {
		return member.Member{}, err
	}
	if !approver.IsMentor() || !approver.Approved {
		return member.Member{}, domainerrors.ErrNotAuthorized
	}

	account, err := s.Repo.GetMember(ctx, userID)
	if err != nil {
		return member.Member{}, err
	}
	if account.Approved {
		return account, nil
	}
	if err := s.Repo.SetApproved(ctx, userID, true); err != nil {
		return member.Member{}, err
	}
	account.Approved = true
	s.notify()

	resolveLogger(s.Logger).Info("member approved",
		"event", "membership_approved",
		"module", "identity-access/membership-service",
		"layer", "application",
		"user_id", userID,
		"approved_by", approverID,
	)
	return account, nil
}

func (s Service) GetMember(ctx context.Context, userID string) (member.Member, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return member.Member{}, domainerrors.ErrInvalidInput
	}
	return s.Repo.GetMember(ctx, userID)
}

func (s Service) ListMembers(ctx context.Context) ([]member.Member, error) {
	return s.Repo.ListMembers(ctx)
}

// RosterSummary counts the roster for the admin dashboard.
func (s Service) RosterSummary(ctx context.Context) (ports.RosterSummary, error) {
	members, err := s.Repo.ListMembers(ctx)
	if err != nil {
		return ports.RosterSummary{}, err
	}
	summary := ports.RosterSummary{Total: len(members)}
	for _, account := range members {
		if account.IsMentor() {
			summary.Mentors++
		}
		if account.Approved {
			summary.Approved++
		} else {
			summary.Pending++
		}
	}
	return summary, nil
}

func (s Service) accessCodeMatches(code string) bool {
	if s.MentorAccessCode == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(s.MentorAccessCode)) == 1
}

func (s Service) notify() {
	if s.Notifier != nil {
		s.Notifier.Notify()
	}
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "clubtrack/contexts/identity-access/membership-service/domain/errors"
	"clubtrack/contexts/identity-access/membership-service/domain/member"
)

type Store struct {
	mu      sync.RWMutex
	members map[string]member.Member
}

func NewStore(seed []member.Member) *Store {
	store := &Store{members: make(map[string]member.Member, len(seed))}
	for _, account := range seed {
		store.members[account.UserID] = account
	}
	return store
}

func (s *Store) CreateMember(_ context.Context, account member.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.members {
		if strings.EqualFold(existing.Email, account.Email) {
			return domainerrors.ErrAlreadyRegistered
		}
	}
	s.members[account.UserID] = account
	return nil
}

func (s *Store) GetMember(_ context.Context, userID string) (member.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.members[userID]
	if !ok {
		return member.Member{}, domainerrors.ErrMemberNotFound
	}
	return account, nil
}

func (s *Store) SetApproved(_ context.Context, userID string, approved bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.members[userID]
	if !ok {
		return domainerrors.ErrMemberNotFound
	}
	account.Approved = approved
	s.members[userID] = account
	return nil
}

func (s *Store) ListMembers(_ context.Context) ([]member.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]member.Member, 0, len(s.members))
	for _, account := range s.members {
		members = append(members, account)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].JoinedAt.Before(members[j].JoinedAt)
	})
	return members, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

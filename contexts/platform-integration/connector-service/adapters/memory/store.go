package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	domainerrors "clubtrack/contexts/platform-integration/connector-service/domain/errors"
	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
	"clubtrack/contexts/platform-integration/connector-service/ports"
)

type Store struct {
	mu      sync.RWMutex
	members map[string]ports.MemberRecord
}

func NewStore(seed []ports.MemberRecord) *Store {
	members := make(map[string]ports.MemberRecord, len(seed))
	for _, item := range seed {
		members[strings.TrimSpace(item.UserID)] = cloneMember(item)
	}
	return &Store{members: members}
}

func (s *Store) SeedMember(item ports.MemberRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[strings.TrimSpace(item.UserID)] = cloneMember(item)
}

func (s *Store) GetMember(_ context.Context, userID string) (ports.MemberRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.members[strings.TrimSpace(userID)]
	if !ok {
		return ports.MemberRecord{}, domainerrors.ErrMemberNotFound
	}
	return cloneMember(member), nil
}

func (s *Store) PutPlatformProfile(
	_ context.Context,
	userID string,
	platform profile.Platform,
	prof profile.Profile,
	stats ports.StatsSnapshot,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(userID)
	member, ok := s.members[key]
	if !ok {
		return domainerrors.ErrMemberNotFound
	}
	if member.Platforms == nil {
		member.Platforms = make(map[profile.Platform]profile.Profile)
	}
	member.Platforms[platform] = prof
	member.Stats = stats
	s.members[key] = member
	return nil
}

func (s *Store) RemovePlatformProfile(
	_ context.Context,
	userID string,
	platform profile.Platform,
	stats ports.StatsSnapshot,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(userID)
	member, ok := s.members[key]
	if !ok {
		return domainerrors.ErrMemberNotFound
	}
	delete(member.Platforms, platform)
	member.Stats = stats
	s.members[key] = member
	return nil
}

func (s *Store) ListConnectedMembers(_ context.Context) ([]ports.MemberRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.MemberRecord, 0, len(s.members))
	for _, member := range s.members {
		connected := false
		for _, prof := range member.Platforms {
			if prof.Connected {
				connected = true
				break
			}
		}
		if connected {
			items = append(items, cloneMember(member))
		}
	}
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func cloneMember(member ports.MemberRecord) ports.MemberRecord {
	platforms := make(map[profile.Platform]profile.Profile, len(member.Platforms))
	for platform, prof := range member.Platforms {
		platforms[platform] = prof
	}
	member.Platforms = platforms
	return member
}

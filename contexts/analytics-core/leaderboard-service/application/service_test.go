package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubtrack/contexts/analytics-core/leaderboard-service/adapters/memory"
	domainerrors "clubtrack/contexts/analytics-core/leaderboard-service/domain/errors"
	"clubtrack/contexts/analytics-core/leaderboard-service/ports"
)

type fakeSubscriber struct {
	signals chan struct{}
}

func (f *fakeSubscriber) Subscribe() (<-chan struct{}, func()) {
	return f.signals, func() {}
}

func seedStore() *memory.Store {
	return memory.NewStore([]ports.UserSnapshot{
		{
			UserID:   "u1",
			Name:     "Asha",
			Role:     "member",
			Approved: true,
			Platforms: map[string]ports.PlatformSnapshot{
				"codeforces": {Connected: true, ProblemsSolved: 80, Rating: 1600},
			},
		},
		{
			UserID:   "u2",
			Name:     "Ravi",
			Role:     "member",
			Approved: true,
			Platforms: map[string]ports.PlatformSnapshot{
				"leetcode": {Connected: true, ProblemsSolved: 120},
			},
		},
	})
}

func TestLeaderboardRejectsUnknownTimeframe(t *testing.T) {
	service := Service{Repo: seedStore()}
	if _, err := service.Leaderboard(context.Background(), "yearly"); !errors.Is(err, domainerrors.ErrInvalidTimeframe) {
		t.Fatalf("got %v", err)
	}
}

func TestLeaderboardDefaultsToAllTime(t *testing.T) {
	service := Service{Repo: seedStore()}
	entries, err := service.Leaderboard(context.Background(), "")
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(entries) != 2 || entries[0].UserID != "u2" {
		t.Fatalf("unexpected standing %+v", entries)
	}
}

func TestWatchRequiresSnapshotFeed(t *testing.T) {
	service := Service{Repo: seedStore()}
	if _, err := service.Watch(context.Background(), "all"); !errors.Is(err, domainerrors.ErrWatchUnavailable) {
		t.Fatalf("got %v", err)
	}
}

func TestWatchRecomputesOnSignal(t *testing.T) {
	store := seedStore()
	subscriber := &fakeSubscriber{signals: make(chan struct{}, 1)}
	service := Service{Repo: store, Snapshots: subscriber}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := service.Watch(ctx, "all")
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	subscriber.signals <- struct{}{}
	select {
	case entries := <-updates:
		if len(entries) != 2 || entries[0].UserID != "u2" {
			t.Fatalf("unexpected standing %+v", entries)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no recomputed standing arrived")
	}

	store.SeedUser(ports.UserSnapshot{
		UserID:   "u3",
		Name:     "Mira",
		Role:     "member",
		Approved: true,
		Platforms: map[string]ports.PlatformSnapshot{
			"codeforces": {Connected: true, ProblemsSolved: 300, Rating: 2100},
		},
	})
	subscriber.signals <- struct{}{}
	select {
	case entries := <-updates:
		if len(entries) != 3 || entries[0].UserID != "u3" {
			t.Fatalf("new member should lead, got %+v", entries)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no second standing arrived")
	}
}

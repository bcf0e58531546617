package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubtrack/contexts/analytics-core/statskit"
	"clubtrack/contexts/platform-integration/connector-service/adapters/memory"
	domainerrors "clubtrack/contexts/platform-integration/connector-service/domain/errors"
	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
	"clubtrack/contexts/platform-integration/connector-service/ports"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type stubFetcher struct {
	platform profile.Platform
	fetched  profile.Fetched
	err      error
	calls    int
}

func (f *stubFetcher) Platform() profile.Platform { return f.platform }

func (f *stubFetcher) Fetch(_ context.Context, _ string) (profile.Fetched, error) {
	f.calls++
	if f.err != nil {
		return profile.Fetched{}, f.err
	}
	return f.fetched, nil
}

type countingNotifier struct{ count int }

func (n *countingNotifier) Notify() { n.count++ }

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func memberSeed() []ports.MemberRecord {
	return []ports.MemberRecord{{
		UserID:   "u1",
		Name:     "Asha",
		Batch:    "2026",
		Role:     "member",
		Approved: true,
		JoinedAt: testNow.AddDate(-1, 0, 0),
	}}
}

func newService(store *memory.Store, fetchers map[profile.Platform]ports.Fetcher, notifier ports.ChangeNotifier) Service {
	return Service{
		Repo:     store,
		Fetchers: fetchers,
		Clock:    fixedClock{now: testNow},
		Notifier: notifier,
	}
}

func TestConnectStoresProfileAndStats(t *testing.T) {
	store := memory.NewStore(memberSeed())
	notifier := &countingNotifier{}
	fetcher := &stubFetcher{
		platform: profile.PlatformLeetCode,
		fetched: profile.Fetched{Profile: profile.Profile{
			Username:       "asha_lc",
			Connected:      true,
			ProblemsSolved: 120,
			EasySolved:     60,
			MediumSolved:   40,
			HardSolved:     20,
			Rating:         50000,
		}},
	}
	service := newService(store, map[profile.Platform]ports.Fetcher{profile.PlatformLeetCode: fetcher}, notifier)

	result, err := service.Connect(context.Background(), "u1", "leetcode", "asha_lc")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if result.Profile.LastSynced != testNow {
		t.Fatalf("last synced = %v, want clock time", result.Profile.LastSynced)
	}
	if result.Stats.TotalProblems != 120 || result.Stats.EasyProblems != 60 {
		t.Fatalf("unexpected stats %+v", result.Stats)
	}
	if notifier.count != 1 {
		t.Fatalf("notifier fired %d times, want 1", notifier.count)
	}

	member, err := store.GetMember(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetMember: %v", err)
	}
	if member.Platforms[profile.PlatformLeetCode].Username != "asha_lc" {
		t.Fatalf("profile not stored: %+v", member.Platforms)
	}
}

func TestConnectValidation(t *testing.T) {
	store := memory.NewStore(memberSeed())
	service := newService(store, nil, nil)

	if _, err := service.Connect(context.Background(), "u1", "leetcode", "  "); !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("blank handle: got %v", err)
	}
	if _, err := service.Connect(context.Background(), "u1", "topcoder", "x"); !errors.Is(err, domainerrors.ErrUnknownPlatform) {
		t.Fatalf("unknown platform: got %v", err)
	}
	if _, err := service.Connect(context.Background(), "missing", "leetcode", "x"); !errors.Is(err, domainerrors.ErrMemberNotFound) {
		t.Fatalf("missing member: got %v", err)
	}
}

func TestConnectHandleNotFoundLeavesStoreUntouched(t *testing.T) {
	store := memory.NewStore(memberSeed())
	fetcher := &stubFetcher{platform: profile.PlatformCodeforces, err: domainerrors.ErrHandleNotFound}
	service := newService(store, map[profile.Platform]ports.Fetcher{profile.PlatformCodeforces: fetcher}, nil)

	if _, err := service.Connect(context.Background(), "u1", "codeforces", "ghost"); !errors.Is(err, domainerrors.ErrHandleNotFound) {
		t.Fatalf("got %v", err)
	}
	member, _ := store.GetMember(context.Background(), "u1")
	if len(member.Platforms) != 0 {
		t.Fatalf("failed connect must not persist: %+v", member.Platforms)
	}
}

func TestRefreshIsolatesPlatformFailures(t *testing.T) {
	store := memory.NewStore(memberSeed())
	seedProfile := func(platform profile.Platform, username string, solved int) {
		if err := store.PutPlatformProfile(context.Background(), "u1", platform, profile.Profile{
			Username:       username,
			Connected:      true,
			ProblemsSolved: solved,
			LastSynced:     testNow.AddDate(0, 0, -1),
		}, ports.StatsSnapshot{}); err != nil {
			t.Fatalf("seed %s: %v", platform, err)
		}
	}
	seedProfile(profile.PlatformLeetCode, "asha_lc", 100)
	seedProfile(profile.PlatformCodeforces, "asha_cf", 40)

	leetcode := &stubFetcher{
		platform: profile.PlatformLeetCode,
		fetched: profile.Fetched{Profile: profile.Profile{
			Username:       "asha_lc",
			Connected:      true,
			ProblemsSolved: 110,
		}},
	}
	codeforces := &stubFetcher{platform: profile.PlatformCodeforces, err: domainerrors.ErrUpstream}
	service := newService(store, map[profile.Platform]ports.Fetcher{
		profile.PlatformLeetCode:   leetcode,
		profile.PlatformCodeforces: codeforces,
	}, nil)

	result, err := service.Refresh(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(result.Synced) != 1 || result.Synced[0] != profile.PlatformLeetCode {
		t.Fatalf("synced = %v", result.Synced)
	}
	if _, failed := result.Failed[profile.PlatformCodeforces]; !failed {
		t.Fatalf("codeforces failure not reported: %v", result.Failed)
	}

	member, _ := store.GetMember(context.Background(), "u1")
	if got := member.Platforms[profile.PlatformLeetCode].ProblemsSolved; got != 110 {
		t.Fatalf("leetcode not refreshed, solved = %d", got)
	}
	if got := member.Platforms[profile.PlatformCodeforces].ProblemsSolved; got != 40 {
		t.Fatalf("failed platform must keep previous profile, solved = %d", got)
	}
	if member.Stats.TotalProblems != 150 {
		t.Fatalf("total = %d, want 110+40", member.Stats.TotalProblems)
	}
}

func TestRefreshRecomputesStreaksFromHistory(t *testing.T) {
	store := memory.NewStore(memberSeed())
	if err := store.PutPlatformProfile(context.Background(), "u1", profile.PlatformCodeforces, profile.Profile{
		Username:  "asha_cf",
		Connected: true,
	}, ports.StatsSnapshot{}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	history := []statskit.Submission{
		{ID: 1, Key: statskit.ProblemKey{ContestID: 1, Index: "A"}, Verdict: statskit.VerdictAccepted, CreatedAt: testNow},
		{ID: 2, Key: statskit.ProblemKey{ContestID: 1, Index: "B"}, Verdict: statskit.VerdictAccepted, CreatedAt: testNow.AddDate(0, 0, -1)},
		{ID: 3, Key: statskit.ProblemKey{ContestID: 2, Index: "A"}, Verdict: statskit.VerdictAccepted, CreatedAt: testNow.AddDate(0, 0, -20)},
	}
	codeforces := &stubFetcher{
		platform: profile.PlatformCodeforces,
		fetched: profile.Fetched{
			Profile: profile.Profile{Username: "asha_cf", Connected: true, ProblemsSolved: 3},
			History: history,
		},
	}
	service := newService(store, map[profile.Platform]ports.Fetcher{profile.PlatformCodeforces: codeforces}, nil)

	result, err := service.Refresh(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if result.Stats.CurrentStreak != 2 || result.Stats.MaxStreak != 2 {
		t.Fatalf("streaks = %d/%d, want 2/2", result.Stats.CurrentStreak, result.Stats.MaxStreak)
	}
	if result.Stats.WeeklyProblems != 2 {
		t.Fatalf("weekly = %d, want 2", result.Stats.WeeklyProblems)
	}
	if result.Stats.MonthlyProblems != 3 {
		t.Fatalf("monthly = %d, want 3", result.Stats.MonthlyProblems)
	}
}

func TestDisconnectCodeforcesResetsHistoryStats(t *testing.T) {
	store := memory.NewStore(memberSeed())
	for platform, solved := range map[profile.Platform]int{
		profile.PlatformLeetCode:   100,
		profile.PlatformCodeforces: 40,
	} {
		if err := store.PutPlatformProfile(context.Background(), "u1", platform, profile.Profile{
			Username:       "asha",
			Connected:      true,
			ProblemsSolved: solved,
		}, ports.StatsSnapshot{
			TotalProblems: 140,
			CurrentStreak: 5,
			MaxStreak:     9,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	service := newService(store, nil, nil)

	stats, err := service.Disconnect(context.Background(), "u1", "codeforces")
	if err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if stats.TotalProblems != 100 {
		t.Fatalf("total = %d, want 100", stats.TotalProblems)
	}
	if stats.CurrentStreak != 0 || stats.MaxStreak != 0 || stats.WeeklyProblems != 0 || stats.MonthlyProblems != 0 {
		t.Fatalf("history stats must reset: %+v", stats)
	}

	if _, err := service.Disconnect(context.Background(), "u1", "codeforces"); !errors.Is(err, domainerrors.ErrNotConnected) {
		t.Fatalf("second disconnect: got %v", err)
	}
}

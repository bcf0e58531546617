package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"clubtrack/contexts/analytics-core/statskit"
	domainerrors "clubtrack/contexts/platform-integration/connector-service/domain/errors"
	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
	"clubtrack/contexts/platform-integration/connector-service/ports"
)

// maxConcurrentFetches bounds the refresh fan-out to one in-flight request
// per platform.
const maxConcurrentFetches = 3

type Service struct {
	Repo     ports.Repository
	Fetchers map[profile.Platform]ports.Fetcher
	Clock    ports.Clock
	Notifier ports.ChangeNotifier
	Logger   *slog.Logger
}

type ConnectResult struct {
	Platform profile.Platform
	Profile  profile.Profile
	Stats    ports.StatsSnapshot
}

type RefreshResult struct {
	Synced []profile.Platform
	Failed map[profile.Platform]string
	Stats  ports.StatsSnapshot
}

// Connect fetches a handle from one platform, validates it, and stores the
// normalized profile wholesale under the member's platform key. Reconnecting
// overwrites the previous profile; nothing is field-patched.
func (s Service) Connect(ctx context.Context, userID string, platformRaw string, handle string) (ConnectResult, error) {
	userID = strings.TrimSpace(userID)
	handle = strings.TrimSpace(handle)
	if userID == "" || handle == "" {
		return ConnectResult{}, domainerrors.ErrInvalidInput
	}
	platform, ok := profile.Parse(platformRaw)
	if !ok {
		return ConnectResult{}, domainerrors.ErrUnknownPlatform
	}
	fetcher, ok := s.Fetchers[platform]
	if !ok {
		return ConnectResult{}, domainerrors.ErrUnknownPlatform
	}

	member, err := s.Repo.GetMember(ctx, userID)
	if err != nil {
		return ConnectResult{}, err
	}

	fetched, err := fetcher.Fetch(ctx, handle)
	if err != nil {
		return ConnectResult{}, err
	}

	now := s.now()
	fetched.Profile.LastSynced = now
	stats := recomputeStats(member, now, map[profile.Platform]profile.Fetched{platform: fetched})
	if err := s.Repo.PutPlatformProfile(ctx, userID, platform, fetched.Profile, stats); err != nil {
		return ConnectResult{}, err
	}
	s.notify()

	resolveLogger(s.Logger).Info("platform connected",
		"event", "connector_platform_connected",
		"module", "platform-integration/connector-service",
		"layer", "application",
		"user_id", userID,
		"platform", string(platform),
		"handle", fetched.Profile.Username,
		"problems_solved", fetched.Profile.ProblemsSolved,
	)
	return ConnectResult{Platform: platform, Profile: fetched.Profile, Stats: stats}, nil
}

// Refresh re-fetches every connected platform for one member concurrently.
// Platform failures are independent: a dead upstream keeps its previous
// profile while the others still sync.
func (s Service) Refresh(ctx context.Context, userID string) (RefreshResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return RefreshResult{}, domainerrors.ErrInvalidInput
	}
	member, err := s.Repo.GetMember(ctx, userID)
	if err != nil {
		return RefreshResult{}, err
	}

	now := s.now()
	var mu sync.Mutex
	fetched := make(map[profile.Platform]profile.Fetched)
	failed := make(map[profile.Platform]string)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentFetches)
	for platform, prof := range member.Platforms {
		if !prof.Connected {
			continue
		}
		fetcher, ok := s.Fetchers[platform]
		if !ok {
			continue
		}
		platform, handle := platform, prof.Username
		group.Go(func() error {
			result, fetchErr := fetcher.Fetch(groupCtx, handle)
			mu.Lock()
			defer mu.Unlock()
			if fetchErr != nil {
				failed[platform] = fetchErr.Error()
				resolveLogger(s.Logger).Warn("platform refresh failed",
					"event", "connector_refresh_platform_failed",
					"module", "platform-integration/connector-service",
					"layer", "application",
					"user_id", userID,
					"platform", string(platform),
					"error", fetchErr.Error(),
				)
				return nil
			}
			result.Profile.LastSynced = now
			fetched[platform] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return RefreshResult{}, err
	}

	stats := recomputeStats(member, now, fetched)
	result := RefreshResult{Failed: failed, Stats: stats}
	for platform, item := range fetched {
		if err := s.Repo.PutPlatformProfile(ctx, userID, platform, item.Profile, stats); err != nil {
			return RefreshResult{}, err
		}
		result.Synced = append(result.Synced, platform)
	}
	if len(fetched) > 0 {
		s.notify()
	}
	return result, nil
}

// Disconnect drops the member's platform key and rolls the cached stats back
// to the remaining platforms.
func (s Service) Disconnect(ctx context.Context, userID string, platformRaw string) (ports.StatsSnapshot, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ports.StatsSnapshot{}, domainerrors.ErrInvalidInput
	}
	platform, ok := profile.Parse(platformRaw)
	if !ok {
		return ports.StatsSnapshot{}, domainerrors.ErrUnknownPlatform
	}
	member, err := s.Repo.GetMember(ctx, userID)
	if err != nil {
		return ports.StatsSnapshot{}, err
	}
	if _, connected := member.Platforms[platform]; !connected {
		return ports.StatsSnapshot{}, domainerrors.ErrNotConnected
	}

	delete(member.Platforms, platform)
	stats := recomputeStats(member, s.now(), nil)
	if platform == profile.PlatformCodeforces {
		// Streaks and rolling counts come from Codeforces history; without it
		// they are unknowable rather than zero-by-activity, so reset them.
		stats.CurrentStreak = 0
		stats.MaxStreak = 0
		stats.WeeklyProblems = 0
		stats.MonthlyProblems = 0
	}
	if err := s.Repo.RemovePlatformProfile(ctx, userID, platform, stats); err != nil {
		return ports.StatsSnapshot{}, err
	}
	s.notify()
	return stats, nil
}

// GetMember exposes the stored record for profile views.
func (s Service) GetMember(ctx context.Context, userID string) (ports.MemberRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ports.MemberRecord{}, domainerrors.ErrInvalidInput
	}
	return s.Repo.GetMember(ctx, userID)
}

// recomputeStats rebuilds the cached stats snapshot from the member's
// platforms overlaid with freshly fetched results. Totals are a display
// cache; ranking always rederives them live. Streak and rolling figures are
// recomputed only when a fetch carried submission history, otherwise the
// previous values survive.
func recomputeStats(member ports.MemberRecord, now time.Time, updates map[profile.Platform]profile.Fetched) ports.StatsSnapshot {
	merged := make(map[profile.Platform]profile.Profile, len(member.Platforms)+len(updates))
	for platform, prof := range member.Platforms {
		merged[platform] = prof
	}
	for platform, item := range updates {
		merged[platform] = item.Profile
	}

	facts := make([]statskit.PlatformFacts, 0, len(merged))
	for _, prof := range merged {
		facts = append(facts, statskit.PlatformFacts{
			Connected:      prof.Connected,
			ProblemsSolved: prof.ProblemsSolved,
			Rating:         prof.Rating,
		})
	}
	combined := statskit.Combine(facts)

	stats := member.Stats
	stats.TotalProblems = combined.TotalProblems
	if leetcode, ok := merged[profile.PlatformLeetCode]; ok {
		stats.EasyProblems = leetcode.EasySolved
		stats.MediumProblems = leetcode.MediumSolved
		stats.HardProblems = leetcode.HardSolved
	}

	for _, item := range updates {
		if !item.HasHistory() {
			continue
		}
		streaks := statskit.ComputeStreaks(statskit.ActiveDays(item.History), now)
		stats.CurrentStreak = streaks.Current
		stats.MaxStreak = streaks.Max
		stats.WeeklyProblems = statskit.SolvedSince(item.History, now.AddDate(0, 0, -7))
		stats.MonthlyProblems = statskit.SolvedSince(item.History, now.AddDate(0, 0, -30))
	}
	return stats
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
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

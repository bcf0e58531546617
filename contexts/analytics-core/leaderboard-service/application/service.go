package application

import (
	"context"
	"log/slog"

	domainerrors "clubtrack/contexts/analytics-core/leaderboard-service/domain/errors"
	"clubtrack/contexts/analytics-core/leaderboard-service/domain/ranking"
	"clubtrack/contexts/analytics-core/leaderboard-service/ports"
)

type Service struct {
	Repo      ports.Repository
	Snapshots ports.SnapshotSubscriber
	Logger    *slog.Logger
}

// Leaderboard ranks a fresh roster snapshot for the requested timeframe.
func (s Service) Leaderboard(ctx context.Context, timeframeRaw string) ([]ports.Entry, error) {
	timeframe, ok := ports.ParseTimeframe(timeframeRaw)
	if !ok {
		return nil, domainerrors.ErrInvalidTimeframe
	}
	users, err := s.Repo.SnapshotUsers(ctx)
	if err != nil {
		return nil, err
	}
	entries := ranking.Rank(users, timeframe)

	resolveLogger(s.Logger).Info("leaderboard computed",
		"event", "leaderboard_computed",
		"module", "analytics-core/leaderboard-service",
		"layer", "application",
		"timeframe", string(timeframe),
		"candidates", len(users),
		"entries", len(entries),
	)
	return entries, nil
}

// TopPerformers returns the all-time podium for dashboards.
func (s Service) TopPerformers(ctx context.Context) ([]ports.Entry, error) {
	users, err := s.Repo.SnapshotUsers(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.TopPerformers(users), nil
}

// BatchPerformance returns the per-batch averages, strongest batch first.
func (s Service) BatchPerformance(ctx context.Context) ([]ports.BatchPerformance, error) {
	users, err := s.Repo.SnapshotUsers(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.BatchPerformance(users), nil
}

// Watch streams a recomputed leaderboard on every roster change signal until
// the context ends. Each delivery is a full standing rebuilt from a fresh
// snapshot; slow consumers see the latest state, not a backlog.
func (s Service) Watch(ctx context.Context, timeframeRaw string) (<-chan []ports.Entry, error) {
	timeframe, ok := ports.ParseTimeframe(timeframeRaw)
	if !ok {
		return nil, domainerrors.ErrInvalidTimeframe
	}
	if s.Snapshots == nil {
		return nil, domainerrors.ErrWatchUnavailable
	}

	signals, cancel := s.Snapshots.Subscribe()
	out := make(chan []ports.Entry, 1)
	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case _, open := <-signals:
				if !open {
					return
				}
			}
			users, err := s.Repo.SnapshotUsers(ctx)
			if err != nil {
				resolveLogger(s.Logger).Warn("leaderboard watch snapshot failed",
					"event", "leaderboard_watch_snapshot_failed",
					"module", "analytics-core/leaderboard-service",
					"layer", "application",
					"error", err.Error(),
				)
				continue
			}
			entries := ranking.Rank(users, timeframe)
			select {
			case out <- entries:
			default:
				// Drop the stale standing; the next signal recomputes anyway.
				select {
				case <-out:
				default:
				}
				out <- entries
			}
		}
	}()
	return out, nil
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

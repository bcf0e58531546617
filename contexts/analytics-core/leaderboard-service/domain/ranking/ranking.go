// Package ranking is the pure scoring core of the leaderboard. It takes a
// roster snapshot and produces ordered entries; it never reads stored totals
// and never mutates its input.
package ranking

import (
	"math"
	"sort"

	"clubtrack/contexts/analytics-core/leaderboard-service/ports"
	"clubtrack/contexts/analytics-core/statskit"
)

const roleMember = "member"

// topPerformerCount is the size of the dashboard highlight list.
const topPerformerCount = 5

// Eligible reports whether a snapshot competes: approved regular members
// only, mentors and pending registrations stay off the board.
func Eligible(user ports.UserSnapshot) bool {
	return user.Role == roleMember && user.Approved && user.UserID != ""
}

// Rank filters, scores, and orders the snapshot for one timeframe. Ranks are
// 1-based positions: every entry gets a distinct successive integer, ties
// included, with the stable sort preserving input order among exact ties.
func Rank(users []ports.UserSnapshot, timeframe ports.Timeframe) []ports.Entry {
	entries := make([]ports.Entry, 0, len(users))
	for _, user := range users {
		if !Eligible(user) {
			continue
		}
		entries = append(entries, score(user))
	}

	less := lessFunc(timeframe)
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// TopPerformers is the all-time head of the board.
func TopPerformers(users []ports.UserSnapshot) []ports.Entry {
	entries := Rank(users, ports.TimeframeAll)
	if len(entries) > topPerformerCount {
		entries = entries[:topPerformerCount]
	}
	return entries
}

// BatchPerformance averages all-time totals per batch over approved members.
// Members without a batch label are left out of every group.
func BatchPerformance(users []ports.UserSnapshot) []ports.BatchPerformance {
	type accumulator struct {
		total   int
		members int
	}
	groups := make(map[string]*accumulator)
	for _, user := range users {
		if !Eligible(user) || user.Batch == "" {
			continue
		}
		entry := score(user)
		group, ok := groups[user.Batch]
		if !ok {
			group = &accumulator{}
			groups[user.Batch] = group
		}
		group.total += entry.TotalProblems
		group.members++
	}

	result := make([]ports.BatchPerformance, 0, len(groups))
	for batch, group := range groups {
		result = append(result, ports.BatchPerformance{
			Batch:       batch,
			AvgSolved:   int(math.Round(float64(group.total) / float64(group.members))),
			TotalSolved: group.total,
			Members:     group.members,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].AvgSolved != result[j].AvgSolved {
			return result[i].AvgSolved > result[j].AvgSolved
		}
		return result[i].Batch < result[j].Batch
	})
	return result
}

// score derives the live figures for one user. Totals always come from the
// platform profiles at ranking time, never from the cached stats block.
func score(user ports.UserSnapshot) ports.Entry {
	facts := make([]statskit.PlatformFacts, 0, len(user.Platforms))
	platforms := make(map[string]int, len(user.Platforms))
	for name, snapshot := range user.Platforms {
		facts = append(facts, statskit.PlatformFacts{
			Connected:      snapshot.Connected,
			ProblemsSolved: snapshot.ProblemsSolved,
			Rating:         snapshot.Rating,
		})
		if snapshot.Connected {
			platforms[name] = snapshot.ProblemsSolved
		}
	}
	combined := statskit.Combine(facts)

	return ports.Entry{
		UserID:          user.UserID,
		Name:            user.Name,
		Batch:           user.Batch,
		RollNumber:      user.RollNumber,
		TotalProblems:   combined.TotalProblems,
		WeeklyProblems:  user.WeeklyProblems,
		MonthlyProblems: user.MonthlyProblems,
		CurrentStreak:   user.CurrentStreak,
		AverageRating:   combined.AverageRating,
		Platforms:       platforms,
	}
}

func lessFunc(timeframe ports.Timeframe) func(a, b ports.Entry) bool {
	switch timeframe {
	case ports.TimeframeWeekly:
		return func(a, b ports.Entry) bool {
			if a.WeeklyProblems != b.WeeklyProblems {
				return a.WeeklyProblems > b.WeeklyProblems
			}
			return a.TotalProblems > b.TotalProblems
		}
	case ports.TimeframeMonthly:
		return func(a, b ports.Entry) bool {
			if a.MonthlyProblems != b.MonthlyProblems {
				return a.MonthlyProblems > b.MonthlyProblems
			}
			return a.TotalProblems > b.TotalProblems
		}
	default:
		return func(a, b ports.Entry) bool {
			if a.TotalProblems != b.TotalProblems {
				return a.TotalProblems > b.TotalProblems
			}
			return a.AverageRating > b.AverageRating
		}
	}
}

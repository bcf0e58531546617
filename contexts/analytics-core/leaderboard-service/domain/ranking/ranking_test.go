package ranking

import (
	"testing"

	"clubtrack/contexts/analytics-core/leaderboard-service/ports"
)

func member(id string, platforms map[string]ports.PlatformSnapshot) ports.UserSnapshot {
	return ports.UserSnapshot{
		UserID:    id,
		Name:      id,
		Role:      "member",
		Approved:  true,
		Platforms: platforms,
	}
}

func solved(count, rating int) ports.PlatformSnapshot {
	return ports.PlatformSnapshot{Connected: true, ProblemsSolved: count, Rating: rating}
}

func TestRankAllTimeBreaksTotalTiesByRating(t *testing.T) {
	users := []ports.UserSnapshot{
		member("a", map[string]ports.PlatformSnapshot{"codeforces": solved(100, 1500)}),
		member("b", map[string]ports.PlatformSnapshot{"codeforces": solved(100, 1600)}),
		member("c", map[string]ports.PlatformSnapshot{"codeforces": solved(90, 2000)}),
	}

	entries := Rank(users, ports.TimeframeAll)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	order := []string{entries[0].UserID, entries[1].UserID, entries[2].UserID}
	if order[0] != "b" || order[1] != "a" || order[2] != "c" {
		t.Fatalf("order = %v, want [b a c]", order)
	}
	for i, want := range []int{1, 2, 3} {
		if entries[i].Rank != want {
			t.Fatalf("rank[%d] = %d, want %d", i, entries[i].Rank, want)
		}
	}
}

func TestRankAssignsDistinctConsecutiveRanksAcrossTies(t *testing.T) {
	users := []ports.UserSnapshot{
		member("a", map[string]ports.PlatformSnapshot{"codeforces": solved(100, 1500)}),
		member("b", map[string]ports.PlatformSnapshot{"leetcode": solved(100, 1500)}),
		member("c", map[string]ports.PlatformSnapshot{"codeforces": solved(90, 1500)}),
	}

	entries := Rank(users, ports.TimeframeAll)
	for i, want := range []int{1, 2, 3} {
		if entries[i].Rank != want {
			t.Fatalf("rank[%d] = %d, want %d even across ties", i, entries[i].Rank, want)
		}
	}
	// Exact ties keep input order under the stable sort.
	if entries[0].UserID != "a" || entries[1].UserID != "b" {
		t.Fatalf("tied entries reordered: [%s %s]", entries[0].UserID, entries[1].UserID)
	}
}

func TestRankFiltersIneligibleUsers(t *testing.T) {
	mentor := member("mentor", map[string]ports.PlatformSnapshot{"codeforces": solved(500, 2400)})
	mentor.Role = "mentor"
	pending := member("pending", map[string]ports.PlatformSnapshot{"codeforces": solved(400, 2000)})
	pending.Approved = false
	blank := member("", map[string]ports.PlatformSnapshot{"codeforces": solved(300, 1800)})

	entries := Rank([]ports.UserSnapshot{
		mentor,
		pending,
		blank,
		member("regular", map[string]ports.PlatformSnapshot{"codeforces": solved(10, 900)}),
	}, ports.TimeframeAll)

	if len(entries) != 1 || entries[0].UserID != "regular" {
		t.Fatalf("only the approved member competes, got %+v", entries)
	}
}

func TestRankWeeklyOrdersByWeeklyThenTotal(t *testing.T) {
	slowSteady := member("steady", map[string]ports.PlatformSnapshot{"codeforces": solved(400, 1500)})
	slowSteady.WeeklyProblems = 3
	sprinter := member("sprinter", map[string]ports.PlatformSnapshot{"codeforces": solved(50, 1200)})
	sprinter.WeeklyProblems = 12
	tiedLow := member("tied_low", map[string]ports.PlatformSnapshot{"codeforces": solved(100, 1300)})
	tiedLow.WeeklyProblems = 3

	entries := Rank([]ports.UserSnapshot{slowSteady, sprinter, tiedLow}, ports.TimeframeWeekly)
	order := []string{entries[0].UserID, entries[1].UserID, entries[2].UserID}
	if order[0] != "sprinter" || order[1] != "steady" || order[2] != "tied_low" {
		t.Fatalf("order = %v, want [sprinter steady tied_low]", order)
	}
}

func TestRankDerivesTotalsLive(t *testing.T) {
	user := member("a", map[string]ports.PlatformSnapshot{
		"leetcode":   solved(100, 0),
		"codeforces": solved(40, 1400),
		"codechef":   {Connected: false, ProblemsSolved: 999, Rating: 3000},
	})

	entries := Rank([]ports.UserSnapshot{user}, ports.TimeframeAll)
	if entries[0].TotalProblems != 140 {
		t.Fatalf("total = %d, disconnected platforms must not count", entries[0].TotalProblems)
	}
	if entries[0].AverageRating != 1400 {
		t.Fatalf("average = %d, zero-rating platforms must not dilute", entries[0].AverageRating)
	}
	if _, present := entries[0].Platforms["codechef"]; present {
		t.Fatal("disconnected platform leaked into the entry")
	}
}

func TestTopPerformersTruncatesToFive(t *testing.T) {
	users := make([]ports.UserSnapshot, 0, 8)
	for i := 0; i < 8; i++ {
		users = append(users, member(string(rune('a'+i)), map[string]ports.PlatformSnapshot{
			"codeforces": solved(100-i, 1500),
		}))
	}

	entries := TopPerformers(users)
	if len(entries) != 5 {
		t.Fatalf("expected 5 top performers, got %d", len(entries))
	}
	if entries[0].UserID != "a" || entries[4].UserID != "e" {
		t.Fatalf("unexpected podium %v", entries)
	}
}

func TestBatchPerformanceRoundsAverages(t *testing.T) {
	withBatch := func(id, batch string, count int) ports.UserSnapshot {
		user := member(id, map[string]ports.PlatformSnapshot{"codeforces": solved(count, 1500)})
		user.Batch = batch
		return user
	}

	batches := BatchPerformance([]ports.UserSnapshot{
		withBatch("a", "2026", 10),
		withBatch("b", "2026", 15),
		withBatch("c", "2027", 40),
		member("no_batch", map[string]ports.PlatformSnapshot{"codeforces": solved(500, 2400)}),
	})

	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	if batches[0].Batch != "2027" || batches[0].AvgSolved != 40 {
		t.Fatalf("strongest batch first, got %+v", batches[0])
	}
	// (10+15)/2 = 12.5 rounds up.
	if batches[1].AvgSolved != 13 || batches[1].TotalSolved != 25 || batches[1].Members != 2 {
		t.Fatalf("unexpected 2026 rollup %+v", batches[1])
	}
}

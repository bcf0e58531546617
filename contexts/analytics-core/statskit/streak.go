package statskit

import (
	"sort"
	"time"
)

// Streaks holds the two streak figures computed from a user's active days.
type Streaks struct {
	Current int
	Max     int
}

// ComputeStreaks derives the current and longest consecutive-day streaks from
// a set of active days, anchored at the caller's "today" (production passes
// the wall-clock day; tests pass a fixed one).
//
// The current streak walks backward from today one day at a time while each
// visited day is present. A day missing from the set ends the walk, so an
// inactive today means a current streak of zero — there is no yesterday grace
// period.
//
// The max streak scans all distinct days ascending: adjacent days exactly one
// apart extend the run, anything wider resets it to one.
func ComputeStreaks(days map[time.Time]struct{}, today time.Time) Streaks {
	if len(days) == 0 {
		return Streaks{}
	}

	var streaks Streaks
	for check := DayOf(today); ; check = check.AddDate(0, 0, -1) {
		if _, ok := days[check]; !ok {
			break
		}
		streaks.Current++
	}

	sorted := make([]time.Time, 0, len(days))
	for day := range days {
		sorted = append(sorted, day)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	run := 1
	streaks.Max = 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > streaks.Max {
			streaks.Max = run
		}
	}
	return streaks
}

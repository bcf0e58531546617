// Package statskit holds the pure computation core shared by the analytics
// services: submission dedup, streaks over sparse day sets, and cross-platform
// aggregation. Everything here is a pure function over in-memory values so the
// services stay trivially testable with seeded inputs.
package statskit

import (
	"fmt"
	"time"
)

// VerdictAccepted is the verdict string Codeforces uses for an accepted run.
const VerdictAccepted = "OK"

// ProblemKey identifies one problem across submissions. Two submissions with
// the same key target the same problem regardless of when they were made.
type ProblemKey struct {
	ContestID int
	Index     string
}

func (k ProblemKey) String() string {
	return fmt.Sprintf("%d-%s", k.ContestID, k.Index)
}

// Submission is one judged attempt from a platform's history feed.
type Submission struct {
	ID        int64
	Key       ProblemKey
	Tags      []string
	Verdict   string
	CreatedAt time.Time
}

// Accepted reports whether the attempt solved the problem.
func (s Submission) Accepted() bool {
	return s.Verdict == VerdictAccepted
}

// DayOf truncates a timestamp to its UTC calendar day. All streak math works
// on these midnight-anchored values.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ActiveDays collects the distinct UTC days that contain at least one
// accepted submission.
func ActiveDays(subs []Submission) map[time.Time]struct{} {
	days := make(map[time.Time]struct{})
	for _, sub := range subs {
		if sub.Accepted() {
			days[DayOf(sub.CreatedAt)] = struct{}{}
		}
	}
	return days
}

package topics

import (
	"testing"
	"time"

	"clubtrack/contexts/analytics-core/statskit"
)

func submission(id int64, contest int, index, verdict string, tags ...string) statskit.Submission {
	return statskit.Submission{
		ID:        id,
		Key:       statskit.ProblemKey{ContestID: contest, Index: index},
		Tags:      tags,
		Verdict:   verdict,
		CreatedAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeNormalizesAgainstStrongestTag(t *testing.T) {
	history := []statskit.Submission{
		submission(1, 1, "A", statskit.VerdictAccepted, "dp"),
		submission(2, 1, "B", statskit.VerdictAccepted, "dp"),
		submission(3, 2, "A", statskit.VerdictAccepted, "dp", "graphs"),
		submission(4, 2, "B", statskit.VerdictAccepted, "graphs"),
		submission(5, 3, "A", statskit.VerdictAccepted, "math"),
	}

	strengths := Compute(history, 0)
	if len(strengths) != 3 {
		t.Fatalf("expected 3 tags, got %d", len(strengths))
	}
	if strengths[0].Tag != "dp" || strengths[0].Percent != 100 {
		t.Fatalf("leader = %+v, want dp at 100%%", strengths[0])
	}
	if strengths[1].Tag != "graphs" || strengths[1].Percent != 67 {
		t.Fatalf("graphs = %+v, want 2/3 -> 67", strengths[1])
	}
	if strengths[2].Tag != "math" || strengths[2].Percent != 33 {
		t.Fatalf("math = %+v, want 1/3 -> 33", strengths[2])
	}
}

func TestComputeCountsSolvesOncePerProblem(t *testing.T) {
	history := []statskit.Submission{
		submission(1, 1, "A", statskit.VerdictAccepted, "dp"),
		submission(2, 1, "A", statskit.VerdictAccepted, "dp"),
		submission(3, 1, "A", "WRONG_ANSWER", "dp"),
		submission(4, 1, "A", "WRONG_ANSWER", "dp"),
	}

	strengths := Compute(history, 0)
	if len(strengths) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(strengths))
	}
	if strengths[0].Solved != 1 {
		t.Fatalf("solved = %d, repeated accepts must count once", strengths[0].Solved)
	}
	if strengths[0].Wrong != 2 {
		t.Fatalf("wrong = %d, every failed attempt counts", strengths[0].Wrong)
	}
}

func TestComputeBreaksSolveTiesAlphabetically(t *testing.T) {
	history := []statskit.Submission{
		submission(1, 1, "A", statskit.VerdictAccepted, "trees"),
		submission(2, 1, "B", statskit.VerdictAccepted, "greedy"),
	}

	strengths := Compute(history, 0)
	if strengths[0].Tag != "greedy" || strengths[1].Tag != "trees" {
		t.Fatalf("tie order = [%s %s], want alphabetical", strengths[0].Tag, strengths[1].Tag)
	}
}

func TestComputeTruncatesToLimit(t *testing.T) {
	history := make([]statskit.Submission, 0, 10)
	tags := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for i, tag := range tags {
		history = append(history, submission(int64(i+1), i+1, "A", statskit.VerdictAccepted, tag))
	}

	if got := len(Compute(history, 6)); got != 6 {
		t.Fatalf("limit 6 returned %d tags", got)
	}
	if got := len(Compute(history, -1)); got != 10 {
		t.Fatalf("non-positive limit should return all tags, got %d", got)
	}
}

func TestComputeEmptyHistory(t *testing.T) {
	if strengths := Compute(nil, 6); len(strengths) != 0 {
		t.Fatalf("expected empty result, got %+v", strengths)
	}
}

func TestComputeAllFailedAttempts(t *testing.T) {
	history := []statskit.Submission{
		submission(1, 1, "A", "WRONG_ANSWER", "dp"),
		submission(2, 1, "B", "TIME_LIMIT_EXCEEDED", "dp"),
	}

	strengths := Compute(history, 0)
	if len(strengths) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(strengths))
	}
	if strengths[0].Solved != 0 || strengths[0].Wrong != 2 || strengths[0].Percent != 0 {
		t.Fatalf("unexpected %+v, zero solves must not divide", strengths[0])
	}
}

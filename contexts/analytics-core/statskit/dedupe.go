package statskit

import "time"

// TagStat counts outcomes per problem tag.
type TagStat struct {
	Solved int
	Wrong  int
}

// DedupeResult is the summary of one pass over a submission history.
type DedupeResult struct {
	UniqueSolved int
	Tags         map[string]TagStat
}

// Dedupe reduces a raw submission list to the set of unique solved problems
// and per-tag counters. A problem counts as solved once no matter how many
// accepted runs it has; every non-accepted attempt counts against its tags,
// duplicates included. The result does not depend on input order: only
// membership in the solved set matters, never which acceptance came first.
func Dedupe(subs []Submission) DedupeResult {
	solved := make(map[ProblemKey]struct{})
	tags := make(map[string]TagStat)

	for _, sub := range subs {
		if sub.Accepted() {
			if _, seen := solved[sub.Key]; seen {
				continue
			}
			solved[sub.Key] = struct{}{}
			for _, tag := range sub.Tags {
				stat := tags[tag]
				stat.Solved++
				tags[tag] = stat
			}
			continue
		}
		for _, tag := range sub.Tags {
			stat := tags[tag]
			stat.Wrong++
			tags[tag] = stat
		}
	}

	return DedupeResult{
		UniqueSolved: len(solved),
		Tags:         tags,
	}
}

// SolvedSince counts the unique problems whose first counted acceptance in
// the given list falls on or after the cutoff. Used for the rolling weekly
// and monthly figures.
func SolvedSince(subs []Submission, cutoff time.Time) int {
	solved := make(map[ProblemKey]struct{})
	for _, sub := range subs {
		if !sub.Accepted() || sub.CreatedAt.Before(cutoff) {
			continue
		}
		solved[sub.Key] = struct{}{}
	}
	return len(solved)
}

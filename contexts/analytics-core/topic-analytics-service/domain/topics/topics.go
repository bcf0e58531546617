// Package topics turns a submission history into per-tag strength figures.
package topics

import (
	"math"
	"sort"

	"clubtrack/contexts/analytics-core/statskit"
)

// Strength is one tag's standing. Percent is relative to the user's own
// strongest tag, so the top entry always reads 100 regardless of volume.
type Strength struct {
	Tag     string
	Solved  int
	Wrong   int
	Percent int
}

// Compute deduplicates the history, ranks tags by unique solves (ties
// alphabetical), normalizes against the leader, and truncates to limit.
// A non-positive limit returns every tag.
func Compute(history []statskit.Submission, limit int) []Strength {
	deduped := statskit.Dedupe(history)

	strengths := make([]Strength, 0, len(deduped.Tags))
	for tag, stat := range deduped.Tags {
		strengths = append(strengths, Strength{
			Tag:    tag,
			Solved: stat.Solved,
			Wrong:  stat.Wrong,
		})
	}
	sort.Slice(strengths, func(i, j int) bool {
		if strengths[i].Solved != strengths[j].Solved {
			return strengths[i].Solved > strengths[j].Solved
		}
		return strengths[i].Tag < strengths[j].Tag
	})

	if len(strengths) > 0 && strengths[0].Solved > 0 {
		top := float64(strengths[0].Solved)
		for i := range strengths {
			strengths[i].Percent = int(math.Round(float64(strengths[i].Solved) / top * 100))
		}
	}

	if limit > 0 && len(strengths) > limit {
		strengths = strengths[:limit]
	}
	return strengths
}

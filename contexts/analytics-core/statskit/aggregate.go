package statskit

// PlatformFacts is the slice of a platform profile the aggregator needs.
type PlatformFacts struct {
	Connected      bool
	ProblemsSolved int
	Rating         int
}

// Combined is the cross-platform rollup for one user.
type Combined struct {
	TotalProblems  int
	AverageRating  int
	RatedPlatforms int
}

// Combine merges up to three platform profiles into combined totals.
// TotalProblems sums solved counts over connected platforms. AverageRating is
// the floored mean over platforms with a nonzero rating: a disconnected or
// unrated platform is left out of both sum and count rather than dragging the
// mean toward zero. With no rated platform the average is 0 and the caller
// renders a placeholder.
func Combine(profiles []PlatformFacts) Combined {
	var combined Combined
	ratingSum := 0
	for _, p := range profiles {
		if p.Connected {
			combined.TotalProblems += p.ProblemsSolved
		}
		if p.Connected && p.Rating > 0 {
			ratingSum += p.Rating
			combined.RatedPlatforms++
		}
	}
	if combined.RatedPlatforms > 0 {
		combined.AverageRating = ratingSum / combined.RatedPlatforms
	}
	return combined
}

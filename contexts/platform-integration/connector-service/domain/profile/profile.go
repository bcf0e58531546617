// Package profile defines the normalized per-platform profile shape shared by
// the connector's ports and adapters.
package profile

import (
	"strings"
	"time"

	"clubtrack/contexts/analytics-core/statskit"
)

// Platform identifies one of the supported upstream judges.
type Platform string

const (
	PlatformLeetCode   Platform = "leetcode"
	PlatformCodeforces Platform = "codeforces"
	PlatformCodeChef   Platform = "codechef"
)

// UnratedLabel is the neutral placeholder for rank/star fields a platform did
// not report.
const UnratedLabel = "Unrated"

// All lists every supported platform in display order.
func All() []Platform {
	return []Platform{PlatformLeetCode, PlatformCodeforces, PlatformCodeChef}
}

// Parse maps a request string onto a known platform.
func Parse(raw string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(raw))) {
	case PlatformLeetCode:
		return PlatformLeetCode, true
	case PlatformCodeforces:
		return PlatformCodeforces, true
	case PlatformCodeChef:
		return PlatformCodeChef, true
	default:
		return "", false
	}
}

// Profile is the normalized view of one (user, platform) pair. It is written
// wholesale on every connect or refresh, never field-patched.
type Profile struct {
	Username       string
	Connected      bool
	ProblemsSolved int
	Rating         int
	MaxRating      int
	Rank           string
	MaxRank        string
	Stars          string
	EasySolved     int
	MediumSolved   int
	HardSolved     int
	LastSynced     time.Time
}

// Fetched pairs a normalized profile with the platform's optional capability
// extension. Only Codeforces exposes a submission feed, so History is nil for
// the other two platforms rather than forcing empty implementations on them.
type Fetched struct {
	Profile Profile
	History []statskit.Submission
}

// HasHistory reports whether the platform supplied submission-level detail.
func (f Fetched) HasHistory() bool {
	return f.History != nil
}

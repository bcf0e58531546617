package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clubtrack/contexts/analytics-core/statskit"
	domainerrors "clubtrack/contexts/platform-integration/connector-service/domain/errors"
	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
)

const codeforcesDefaultBaseURL = "https://codeforces.com"

// submissionFetchLimit caps the history request. A design ceiling, not an
// error condition: users beyond it simply have their oldest attempts ignored.
const submissionFetchLimit = 10000

type Codeforces struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// apiEnvelope is the wrapper every Codeforces endpoint uses.
type apiEnvelope struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment"`
	Result  json.RawMessage `json:"result"`
}

type cfUser struct {
	Handle    string `json:"handle"`
	Rating    int    `json:"rating"`
	MaxRating int    `json:"maxRating"`
	Rank      string `json:"rank"`
	MaxRank   string `json:"maxRank"`
}

type cfSubmission struct {
	ID                  int64  `json:"id"`
	CreationTimeSeconds int64  `json:"creationTimeSeconds"`
	Verdict             string `json:"verdict"`
	Problem             struct {
		ContestID int      `json:"contestId"`
		Index     string   `json:"index"`
		Tags      []string `json:"tags"`
	} `json:"problem"`
}

func (c *Codeforces) Platform() profile.Platform {
	return profile.PlatformCodeforces
}

// Fetch issues the two-call sequence: user.info for rating/rank, then
// user.status for the submission history that feeds dedup and streaks.
func (c *Codeforces) Fetch(ctx context.Context, username string) (profile.Fetched, error) {
	user, err := c.fetchUser(ctx, username)
	if err != nil {
		return profile.Fetched{}, err
	}
	history, err := c.RecentSubmissions(ctx, username)
	if err != nil {
		return profile.Fetched{}, err
	}

	prof := profile.Profile{
		Username:       user.Handle,
		Connected:      true,
		Rating:         user.Rating,
		MaxRating:      user.MaxRating,
		Rank:           user.Rank,
		MaxRank:        user.MaxRank,
		ProblemsSolved: statskit.Dedupe(history).UniqueSolved,
	}
	if prof.Rank == "" {
		prof.Rank = profile.UnratedLabel
	}
	if prof.MaxRank == "" {
		prof.MaxRank = profile.UnratedLabel
	}

	if c.Logger != nil {
		c.Logger.Info("codeforces profile fetched",
			"event", "upstream_codeforces_fetched",
			"module", "platform-integration/connector-service",
			"layer", "adapter",
			"handle", prof.Username,
			"submissions", len(history),
			"problems_solved", prof.ProblemsSolved,
		)
	}
	return profile.Fetched{Profile: prof, History: history}, nil
}

// RecentSubmissions returns the normalized submission history for a handle.
// Also serves the topic analytics service as its submission source.
func (c *Codeforces) RecentSubmissions(ctx context.Context, handle string) ([]statskit.Submission, error) {
	query := url.Values{}
	query.Set("handle", handle)
	query.Set("from", "1")
	query.Set("count", fmt.Sprintf("%d", submissionFetchLimit))

	result, err := c.call(ctx, "/api/user.status?"+query.Encode())
	if err != nil {
		return nil, err
	}

	var raw []cfSubmission
	if err := json.Unmarshal(result, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode codeforces submissions: %v", domainerrors.ErrUpstream, err)
	}

	subs := make([]statskit.Submission, 0, len(raw))
	for _, item := range raw {
		subs = append(subs, statskit.Submission{
			ID: item.ID,
			Key: statskit.ProblemKey{
				ContestID: item.Problem.ContestID,
				Index:     item.Problem.Index,
			},
			Tags:      item.Problem.Tags,
			Verdict:   item.Verdict,
			CreatedAt: time.Unix(item.CreationTimeSeconds, 0).UTC(),
		})
	}
	return subs, nil
}

func (c *Codeforces) fetchUser(ctx context.Context, handle string) (cfUser, error) {
	query := url.Values{}
	query.Set("handles", handle)

	result, err := c.call(ctx, "/api/user.info?"+query.Encode())
	if err != nil {
		return cfUser{}, err
	}

	var users []cfUser
	if err := json.Unmarshal(result, &users); err != nil {
		return cfUser{}, fmt.Errorf("%w: decode codeforces user: %v", domainerrors.ErrUpstream, err)
	}
	if len(users) == 0 {
		return cfUser{}, domainerrors.ErrHandleNotFound
	}
	return users[0], nil
}

func (c *Codeforces) call(ctx context.Context, path string) (json.RawMessage, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build codeforces request: %v", domainerrors.ErrUpstream, err)
	}

	response, err := resolveHTTPClient(c.HTTPClient).Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: codeforces request: %v", domainerrors.ErrUpstream, err)
	}
	defer response.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decode codeforces envelope: %v", domainerrors.ErrUpstream, err)
	}
	if envelope.Status != "OK" {
		if strings.Contains(strings.ToLower(envelope.Comment), "not found") {
			return nil, fmt.Errorf("%w: %s", domainerrors.ErrHandleNotFound, envelope.Comment)
		}
		return nil, fmt.Errorf("%w: codeforces status %q: %s", domainerrors.ErrUpstream, envelope.Status, envelope.Comment)
	}
	return envelope.Result, nil
}

func (c *Codeforces) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return codeforcesDefaultBaseURL
}

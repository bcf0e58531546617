package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "clubtrack/contexts/platform-integration/connector-service/domain/errors"
	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
)

const leetcodeDefaultBaseURL = "https://leetcode.com"

// One query returns aggregate accepted counts per difficulty plus the
// ranking/reputation figures. LeetCode exposes no raw submission feed, so the
// adapter never fills the history capability.
const leetcodeProfileQuery = `query getUserProfile($username: String!) {
    matchedUser(username: $username) {
        username
        profile { ranking reputation }
        submitStats { acSubmissionNum { difficulty count } }
    }
}`

type LeetCode struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type leetcodeUserPayload struct {
	MatchedUser *struct {
		Username string `json:"username"`
		Profile  struct {
			Ranking    int `json:"ranking"`
			Reputation int `json:"reputation"`
		} `json:"profile"`
		SubmitStats struct {
			AcSubmissionNum []struct {
				Difficulty string `json:"difficulty"`
				Count      int    `json:"count"`
			} `json:"acSubmissionNum"`
		} `json:"submitStats"`
	} `json:"matchedUser"`
}

func (c *LeetCode) Platform() profile.Platform {
	return profile.PlatformLeetCode
}

func (c *LeetCode) Fetch(ctx context.Context, username string) (profile.Fetched, error) {
	body, err := json.Marshal(graphqlRequest{
		Query:     leetcodeProfileQuery,
		Variables: map[string]any{"username": username},
	})
	if err != nil {
		return profile.Fetched{}, fmt.Errorf("%w: marshal leetcode query: %v", domainerrors.ErrUpstream, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/graphql", bytes.NewReader(body))
	if err != nil {
		return profile.Fetched{}, fmt.Errorf("%w: build leetcode request: %v", domainerrors.ErrUpstream, err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Referer", "https://leetcode.com")

	response, err := resolveHTTPClient(c.HTTPClient).Do(request)
	if err != nil {
		return profile.Fetched{}, fmt.Errorf("%w: leetcode request: %v", domainerrors.ErrUpstream, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return profile.Fetched{}, upstreamStatusError("leetcode", response.Status)
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return profile.Fetched{}, fmt.Errorf("%w: decode leetcode response: %v", domainerrors.ErrUpstream, err)
	}
	if len(envelope.Errors) > 0 {
		// The GraphQL layer reports unknown users through errors, not HTTP status.
		return profile.Fetched{}, fmt.Errorf("%w: %s", domainerrors.ErrHandleNotFound, envelope.Errors[0].Message)
	}

	var payload leetcodeUserPayload
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return profile.Fetched{}, fmt.Errorf("%w: decode leetcode payload: %v", domainerrors.ErrUpstream, err)
	}
	if payload.MatchedUser == nil {
		return profile.Fetched{}, domainerrors.ErrHandleNotFound
	}

	prof := profile.Profile{
		Username:  payload.MatchedUser.Username,
		Connected: true,
		Rating:    payload.MatchedUser.Profile.Ranking,
		Rank:      profile.UnratedLabel,
	}
	for _, bucket := range payload.MatchedUser.SubmitStats.AcSubmissionNum {
		switch bucket.Difficulty {
		case "All":
			prof.ProblemsSolved = bucket.Count
		case "Easy":
			prof.EasySolved = bucket.Count
		case "Medium":
			prof.MediumSolved = bucket.Count
		case "Hard":
			prof.HardSolved = bucket.Count
		}
	}

	if c.Logger != nil {
		c.Logger.Info("leetcode profile fetched",
			"event", "upstream_leetcode_fetched",
			"module", "platform-integration/connector-service",
			"layer", "adapter",
			"username", prof.Username,
			"problems_solved", prof.ProblemsSolved,
		)
	}
	return profile.Fetched{Profile: prof}, nil
}

func (c *LeetCode) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return leetcodeDefaultBaseURL
}

package unit

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	leaderboardservice "clubtrack/contexts/analytics-core/leaderboard-service"
	leaderboardports "clubtrack/contexts/analytics-core/leaderboard-service/ports"
	"clubtrack/contexts/analytics-core/statskit"
	topicanalyticsservice "clubtrack/contexts/analytics-core/topic-analytics-service"
	membershipservice "clubtrack/contexts/identity-access/membership-service"
	connectorservice "clubtrack/contexts/platform-integration/connector-service"
	connectorerrors "clubtrack/contexts/platform-integration/connector-service/domain/errors"
	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
	connectorports "clubtrack/contexts/platform-integration/connector-service/ports"
	"clubtrack/internal/platform/httpserver"
)

type fetcherFunc struct {
	platform profile.Platform
	fn       func(ctx context.Context, username string) (profile.Fetched, error)
}

func (f fetcherFunc) Platform() profile.Platform { return f.platform }

func (f fetcherFunc) Fetch(ctx context.Context, username string) (profile.Fetched, error) {
	return f.fn(ctx, username)
}

func buildTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	membership := membershipservice.NewInMemoryModule(nil, "sesame", nil, nil)

	fetchers := map[profile.Platform]connectorports.Fetcher{
		profile.PlatformLeetCode: fetcherFunc{
			platform: profile.PlatformLeetCode,
			fn: func(_ context.Context, username string) (profile.Fetched, error) {
				if username == "ghost" {
					return profile.Fetched{}, connectorerrors.ErrHandleNotFound
				}
				return profile.Fetched{Profile: profile.Profile{
					Username:       username,
					Connected:      true,
					ProblemsSolved: 42,
				}}, nil
			},
		},
	}
	connector := connectorservice.NewInMemoryModule([]connectorports.MemberRecord{{
		UserID:   "u1",
		Name:     "Asha",
		Role:     "member",
		Approved: true,
		JoinedAt: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
	}}, fetchers, nil, nil)

	leaderboard := leaderboardservice.NewInMemoryModule([]leaderboardports.UserSnapshot{
		{
			UserID: "u1", Name: "Asha", Role: "member", Approved: true,
			Platforms: map[string]leaderboardports.PlatformSnapshot{
				"codeforces": {Connected: true, ProblemsSolved: 120, Rating: 1700},
			},
		},
		{
			UserID: "u2", Name: "Ravi", Role: "member", Approved: true,
			Platforms: map[string]leaderboardports.PlatformSnapshot{
				"codeforces": {Connected: true, ProblemsSolved: 80, Rating: 1500},
			},
		},
	}, nil, nil)

	topics := topicanalyticsservice.NewInMemoryModule(nil)
	topics.Source.SeedHistory("asha_cf", []statskit.Submission{
		{ID: 1, Key: statskit.ProblemKey{ContestID: 1, Index: "A"}, Tags: []string{"dp"}, Verdict: statskit.VerdictAccepted, CreatedAt: time.Now().UTC()},
		{ID: 2, Key: statskit.ProblemKey{ContestID: 1, Index: "B"}, Tags: []string{"math"}, Verdict: "WRONG_ANSWER", CreatedAt: time.Now().UTC()},
	})

	server := httpserver.New(membership, connector, leaderboard, topics, nil, ":0")
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestRegisterMemberRoute(t *testing.T) {
	ts := buildTestServer(t)

	resp := postJSON(t, ts.URL+"/api/members", map[string]string{
		"name":  "Mira",
		"email": "mira@example.com",
		"batch": "2027",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var body struct {
		Status string `json:"status"`
		Data   struct {
			Member struct {
				UserID   string `json:"user_id"`
				Role     string `json:"role"`
				Approved bool   `json:"approved"`
			} `json:"member"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	if body.Status != "success" || body.Data.Member.UserID == "" {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.Data.Member.Role != "member" || body.Data.Member.Approved {
		t.Fatalf("new registrations are pending members, got %+v", body.Data.Member)
	}
}

func TestRegisterMentorWrongCodeRoute(t *testing.T) {
	ts := buildTestServer(t)

	resp := postJSON(t, ts.URL+"/api/members", map[string]string{
		"name":        "Ravi",
		"email":       "ravi@example.com",
		"role":        "mentor",
		"access_code": "wrong",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestConnectPlatformRoute(t *testing.T) {
	ts := buildTestServer(t)

	resp := postJSON(t, ts.URL+"/api/members/u1/platforms/leetcode", map[string]string{"handle": "asha_lc"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Data struct {
			Platform string `json:"platform"`
			Stats    struct {
				TotalProblems int `json:"total_problems"`
			} `json:"stats"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	if body.Data.Platform != "leetcode" || body.Data.Stats.TotalProblems != 42 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestConnectPlatformRouteErrors(t *testing.T) {
	ts := buildTestServer(t)

	resp := postJSON(t, ts.URL+"/api/members/u1/platforms/topcoder", map[string]string{"handle": "x"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown platform status = %d, want 400", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/members/u1/platforms/leetcode", map[string]string{"handle": "ghost"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown handle status = %d, want 404", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/members/nobody/platforms/leetcode", map[string]string{"handle": "asha_lc"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown member status = %d, want 404", resp.StatusCode)
	}
}

func TestLeaderboardRoute(t *testing.T) {
	ts := buildTestServer(t)

	resp, err := http.Get(ts.URL + "/api/leaderboard?timeframe=all")
	if err != nil {
		t.Fatalf("GET leaderboard: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Data struct {
			Timeframe string `json:"timeframe"`
			Entries   []struct {
				Rank          int    `json:"rank"`
				UserID        string `json:"user_id"`
				TotalProblems int    `json:"total_problems"`
			} `json:"entries"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	if body.Data.Timeframe != "all" || len(body.Data.Entries) != 2 {
		t.Fatalf("unexpected body %+v", body.Data)
	}
	if body.Data.Entries[0].UserID != "u1" || body.Data.Entries[0].Rank != 1 {
		t.Fatalf("unexpected leader %+v", body.Data.Entries[0])
	}

	bad, err := http.Get(ts.URL + "/api/leaderboard?timeframe=yearly")
	if err != nil {
		t.Fatalf("GET leaderboard: %v", err)
	}
	bad.Body.Close()
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid timeframe status = %d, want 400", bad.StatusCode)
	}
}

func TestTopicStrengthRoute(t *testing.T) {
	ts := buildTestServer(t)

	resp, err := http.Get(ts.URL + "/api/topics/asha_cf")
	if err != nil {
		t.Fatalf("GET topics: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Data struct {
			Handle string `json:"handle"`
			Topics []struct {
				Tag     string `json:"tag"`
				Solved  int    `json:"solved"`
				Wrong   int    `json:"wrong"`
				Percent int    `json:"percent"`
			} `json:"topics"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	if body.Data.Handle != "asha_cf" || len(body.Data.Topics) != 2 {
		t.Fatalf("unexpected body %+v", body.Data)
	}
	if body.Data.Topics[0].Tag != "dp" || body.Data.Topics[0].Percent != 100 {
		t.Fatalf("unexpected leader tag %+v", body.Data.Topics[0])
	}
}

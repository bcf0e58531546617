package upstream

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	domainerrors "clubtrack/contexts/platform-integration/connector-service/domain/errors"
	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
)

const codechefDefaultBaseURL = "https://www.codechef.com"

var problemsSolvedPattern = regexp.MustCompile(`(?i)Total Problems Solved:\s*(\d+)`)

// CodeChef has no public API; the adapter scrapes the profile page. A field
// the page does not carry degrades to its neutral placeholder (0, "Unrated")
// instead of failing the call — absence of a field is not an error.
type CodeChef struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func (c *CodeChef) Platform() profile.Platform {
	return profile.PlatformCodeChef
}

func (c *CodeChef) Fetch(ctx context.Context, username string) (profile.Fetched, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/users/"+strings.TrimSpace(username), nil)
	if err != nil {
		return profile.Fetched{}, fmt.Errorf("%w: build codechef request: %v", domainerrors.ErrUpstream, err)
	}
	request.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	response, err := resolveHTTPClient(c.HTTPClient).Do(request)
	if err != nil {
		return profile.Fetched{}, fmt.Errorf("%w: codechef request: %v", domainerrors.ErrUpstream, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return profile.Fetched{}, domainerrors.ErrHandleNotFound
	}
	if response.StatusCode != http.StatusOK {
		return profile.Fetched{}, upstreamStatusError("codechef", response.Status)
	}

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return profile.Fetched{}, fmt.Errorf("%w: parse codechef page: %v", domainerrors.ErrUpstream, err)
	}

	prof := profile.Profile{
		Username:  strings.TrimSpace(username),
		Connected: true,
		Stars:     profile.UnratedLabel,
		Rank:      profile.UnratedLabel,
	}

	if text := strings.TrimSpace(document.Find(".rating-number").First().Text()); text != "" {
		if rating, err := strconv.Atoi(text); err == nil {
			prof.Rating = rating
		}
	}
	if text := strings.TrimSpace(document.Find(".rating-star span").First().Text()); text != "" {
		prof.Stars = text
	}
	if text := strings.TrimSpace(document.Find(".rating-title").First().Text()); text != "" {
		prof.Rank = text
	}

	document.Find(".problems-solved h3").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		match := problemsSolvedPattern.FindStringSubmatch(heading.Text())
		if match == nil {
			return true
		}
		if count, err := strconv.Atoi(match[1]); err == nil {
			prof.ProblemsSolved = count
		}
		return false
	})

	if c.Logger != nil {
		c.Logger.Info("codechef profile scraped",
			"event", "upstream_codechef_fetched",
			"module", "platform-integration/connector-service",
			"layer", "adapter",
			"username", prof.Username,
			"rating", prof.Rating,
			"problems_solved", prof.ProblemsSolved,
		)
	}
	return profile.Fetched{Profile: prof}, nil
}

func (c *CodeChef) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return codechefDefaultBaseURL
}

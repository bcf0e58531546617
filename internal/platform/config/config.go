package config

import (
	"os"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	// MentorAccessCode gates mentor self-registration; rotate via env.
	MentorAccessCode string

	// SyncInterval drives the worker's periodic profile refresh.
	SyncInterval time.Duration

	// Base URL overrides point adapters at mirrors or test doubles.
	LeetCodeBaseURL   string
	CodeforcesBaseURL string
	CodeChefBaseURL   string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "clubtrack"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		ServiceName:       service,
		HTTPPort:          port,
		PostgresDSN:       os.Getenv("POSTGRES_DSN"),
		MentorAccessCode:  os.Getenv("MENTOR_ACCESS_CODE"),
		SyncInterval:      envDuration("SYNC_INTERVAL", 6*time.Hour),
		LeetCodeBaseURL:   os.Getenv("LEETCODE_BASE_URL"),
		CodeforcesBaseURL: os.Getenv("CODEFORCES_BASE_URL"),
		CodeChefBaseURL:   os.Getenv("CODECHEF_BASE_URL"),
	}, nil
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

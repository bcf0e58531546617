package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	leaderboardservice "clubtrack/contexts/analytics-core/leaderboard-service"
	topicanalyticsservice "clubtrack/contexts/analytics-core/topic-analytics-service"
	membershipservice "clubtrack/contexts/identity-access/membership-service"
	connectorservice "clubtrack/contexts/platform-integration/connector-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "clubtrack/internal/platform/httpserver/docs"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	membership  membershipservice.Module
	connector   connectorservice.Module
	leaderboard leaderboardservice.Module
	topics      topicanalyticsservice.Module
}

func New(
	membership membershipservice.Module,
	connector connectorservice.Module,
	leaderboard leaderboardservice.Module,
	topics topicanalyticsservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		membership:  membership,
		connector:   connector,
		leaderboard: leaderboard,
		topics:      topics,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for httptest-driven suites.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/members", s.handleRegisterMember)
	s.mux.HandleFunc("GET /api/members", s.handleListMembers)
	s.mux.HandleFunc("GET /api/members/summary", s.handleRosterSummary)
	s.mux.HandleFunc("POST /api/members/{user_id}/approve", s.handleApproveMember)

	s.mux.HandleFunc("GET /api/members/{user_id}", s.handleGetMemberProfile)
	s.mux.HandleFunc("POST /api/members/{user_id}/platforms/{platform}", s.handleConnectPlatform)
	s.mux.HandleFunc("DELETE /api/members/{user_id}/platforms/{platform}", s.handleDisconnectPlatform)
	s.mux.HandleFunc("POST /api/members/{user_id}/refresh", s.handleRefreshMember)

	s.mux.HandleFunc("GET /api/leaderboard", s.handleLeaderboard)
	s.mux.HandleFunc("GET /api/leaderboard/top", s.handleTopPerformers)
	s.mux.HandleFunc("GET /api/leaderboard/batches", s.handleBatchPerformance)

	s.mux.HandleFunc("GET /api/topics/{handle}", s.handleTopicStrength)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

package httpserver

import (
	"errors"
	"net/http"

	leaderboarderrors "clubtrack/contexts/analytics-core/leaderboard-service/domain/errors"
	leaderboardhttp "clubtrack/contexts/analytics-core/leaderboard-service/transport/http"
)

func writeLeaderboardError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, leaderboardhttp.ErrorResponse{Code: code, Message: message})
}

func writeLeaderboardDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, leaderboarderrors.ErrInvalidTimeframe):
		writeLeaderboardError(w, http.StatusBadRequest, "invalid_timeframe", err.Error())
	default:
		writeLeaderboardError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	resp, err := s.leaderboard.Handler.LeaderboardHandler(r.Context(), r.URL.Query().Get("timeframe"))
	if err != nil {
		writeLeaderboardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTopPerformers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.leaderboard.Handler.TopPerformersHandler(r.Context())
	if err != nil {
		writeLeaderboardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBatchPerformance(w http.ResponseWriter, r *http.Request) {
	resp, err := s.leaderboard.Handler.BatchPerformanceHandler(r.Context())
	if err != nil {
		writeLeaderboardDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	topicerrors "clubtrack/contexts/analytics-core/topic-analytics-service/domain/errors"
	topichttp "clubtrack/contexts/analytics-core/topic-analytics-service/transport/http"
	connectorerrors "clubtrack/contexts/platform-integration/connector-service/domain/errors"
)

func writeTopicError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, topichttp.ErrorResponse{Code: code, Message: message})
}

// Topic strength pulls its history through the Codeforces adapter, so its
// upstream sentinels surface here alongside the service's own.
func writeTopicDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, topicerrors.ErrInvalidInput):
		writeTopicError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, connectorerrors.ErrHandleNotFound):
		writeTopicError(w, http.StatusNotFound, "handle_not_found", err.Error())
	case errors.Is(err, connectorerrors.ErrUpstream):
		writeTopicError(w, http.StatusBadGateway, "upstream_unavailable", err.Error())
	default:
		writeTopicError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleTopicStrength(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeTopicError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp, err := s.topics.Handler.TopicStrengthHandler(r.Context(), r.PathValue("handle"), limit)
	if err != nil {
		writeTopicDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

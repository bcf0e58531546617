package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	connectorerrors "clubtrack/contexts/platform-integration/connector-service/domain/errors"
	connectorhttp "clubtrack/contexts/platform-integration/connector-service/transport/http"
)

func writeConnectorError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, connectorhttp.ErrorResponse{Code: code, Message: message})
}

func writeConnectorDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, connectorerrors.ErrInvalidInput),
		errors.Is(err, connectorerrors.ErrUnknownPlatform):
		writeConnectorError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, connectorerrors.ErrHandleNotFound):
		writeConnectorError(w, http.StatusNotFound, "handle_not_found", err.Error())
	case errors.Is(err, connectorerrors.ErrMemberNotFound):
		writeConnectorError(w, http.StatusNotFound, "member_not_found", err.Error())
	case errors.Is(err, connectorerrors.ErrNotConnected):
		writeConnectorError(w, http.StatusConflict, "not_connected", err.Error())
	case errors.Is(err, connectorerrors.ErrUpstream):
		writeConnectorError(w, http.StatusBadGateway, "upstream_unavailable", err.Error())
	default:
		writeConnectorError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleConnectPlatform(w http.ResponseWriter, r *http.Request) {
	var req connectorhttp.ConnectPlatformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeConnectorError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.connector.Handler.ConnectPlatformHandler(
		r.Context(),
		r.PathValue("user_id"),
		r.PathValue("platform"),
		req,
	)
	if err != nil {
		writeConnectorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDisconnectPlatform(w http.ResponseWriter, r *http.Request) {
	resp, err := s.connector.Handler.DisconnectHandler(
		r.Context(),
		r.PathValue("user_id"),
		r.PathValue("platform"),
	)
	if err != nil {
		writeConnectorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRefreshMember(w http.ResponseWriter, r *http.Request) {
	resp, err := s.connector.Handler.RefreshHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeConnectorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetMemberProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := s.connector.Handler.GetMemberHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeConnectorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

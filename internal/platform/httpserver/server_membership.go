package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	membershiperrors "clubtrack/contexts/identity-access/membership-service/domain/errors"
	membershiphttp "clubtrack/contexts/identity-access/membership-service/transport/http"
)

func writeMembershipError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, membershiphttp.ErrorResponse{Code: code, Message: message})
}

func writeMembershipDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, membershiperrors.ErrInvalidInput),
		errors.Is(err, membershiperrors.ErrInvalidRole):
		writeMembershipError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, membershiperrors.ErrAccessCodeInvalid):
		writeMembershipError(w, http.StatusForbidden, "invalid_access_code", err.Error())
	case errors.Is(err, membershiperrors.ErrNotAuthorized):
		writeMembershipError(w, http.StatusForbidden, "not_authorized", err.Error())
	case errors.Is(err, membershiperrors.ErrAlreadyRegistered):
		writeMembershipError(w, http.StatusConflict, "already_registered", err.Error())
	case errors.Is(err, membershiperrors.ErrMemberNotFound):
		writeMembershipError(w, http.StatusNotFound, "member_not_found", err.Error())
	default:
		writeMembershipError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleRegisterMember(w http.ResponseWriter, r *http.Request) {
	var req membershiphttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMembershipError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.membership.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeMembershipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleApproveMember(w http.ResponseWriter, r *http.Request) {
	req := membershiphttp.ApproveRequest{
		ApproverID: strings.TrimSpace(r.Header.Get("X-User-Id")),
	}
	if req.ApproverID == "" {
		// Fall back to the body for clients that cannot set headers.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	resp, err := s.membership.Handler.ApproveHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeMembershipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.membership.Handler.ListMembersHandler(r.Context())
	if err != nil {
		writeMembershipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRosterSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := s.membership.Handler.RosterSummaryHandler(r.Context())
	if err != nil {
		writeMembershipDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

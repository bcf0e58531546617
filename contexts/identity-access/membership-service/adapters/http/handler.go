package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"clubtrack/contexts/identity-access/membership-service/application"
	"clubtrack/contexts/identity-access/membership-service/domain/member"
	httptransport "clubtrack/contexts/identity-access/membership-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.RegisterResponse, error) {
	account, err := h.Service.Register(ctx, application.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Batch:      req.Batch,
		RollNumber: req.RollNumber,
		Role:       req.Role,
		AccessCode: req.AccessCode,
	})
	if err != nil {
		return httptransport.RegisterResponse{}, err
	}
	resp := httptransport.RegisterResponse{Status: "success"}
	resp.Data.Member = memberDTO(account)
	return resp, nil
}

func (h Handler) ApproveHandler(ctx context.Context, userID string, req httptransport.ApproveRequest) (httptransport.ApproveResponse, error) {
	account, err := h.Service.Approve(ctx, req.ApproverID, userID)
	if err != nil {
		return httptransport.ApproveResponse{}, err
	}
	resp := httptransport.ApproveResponse{Status: "success"}
	resp.Data.Member = memberDTO(account)
	return resp, nil
}

func (h Handler) ListMembersHandler(ctx context.Context) (httptransport.MembersResponse, error) {
	members, err := h.Service.ListMembers(ctx)
	if err != nil {
		return httptransport.MembersResponse{}, err
	}
	resp := httptransport.MembersResponse{Status: "success"}
	resp.Data.Members = make([]httptransport.MemberDTO, 0, len(members))
	for _, account := range members {
		resp.Data.Members = append(resp.Data.Members, memberDTO(account))
	}
	return resp, nil
}

func (h Handler) RosterSummaryHandler(ctx context.Context) (httptransport.RosterSummaryResponse, error) {
	summary, err := h.Service.RosterSummary(ctx)
	if err != nil {
		return httptransport.RosterSummaryResponse{}, err
	}
	resp := httptransport.RosterSummaryResponse{Status: "success"}
	resp.Data.Total = summary.Total
	resp.Data.Mentors = summary.Mentors
	resp.Data.Approved = summary.Approved
	resp.Data.Pending = summary.Pending
	return resp, nil
}

func memberDTO(account member.Member) httptransport.MemberDTO {
	return httptransport.MemberDTO{
		UserID:     account.UserID,
		Name:       account.Name,
		Email:      account.Email,
		Batch:      account.Batch,
		RollNumber: account.RollNumber,
		Role:       string(account.Role),
		Approved:   account.Approved,
		JoinedAt:   account.JoinedAt.UTC().Format(time.RFC3339),
	}
}

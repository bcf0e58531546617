package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"clubtrack/contexts/platform-integration/connector-service/application"
	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
	"clubtrack/contexts/platform-integration/connector-service/ports"
	httptransport "clubtrack/contexts/platform-integration/connector-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ConnectPlatformHandler(
	ctx context.Context,
	userID string,
	platform string,
	req httptransport.ConnectPlatformRequest,
) (httptransport.ConnectPlatformResponse, error) {
	result, err := h.Service.Connect(ctx, userID, platform, req.Handle)
	if err != nil {
		return httptransport.ConnectPlatformResponse{}, err
	}
	resp := httptransport.ConnectPlatformResponse{Status: "success"}
	resp.Data.Platform = string(result.Platform)
	resp.Data.Profile = profileDTO(result.Profile)
	resp.Data.Stats = statsDTO(result.Stats)
	return resp, nil
}

func (h Handler) RefreshHandler(ctx context.Context, userID string) (httptransport.RefreshResponse, error) {
	result, err := h.Service.Refresh(ctx, userID)
	if err != nil {
		return httptransport.RefreshResponse{}, err
	}
	resp := httptransport.RefreshResponse{Status: "success"}
	resp.Data.Synced = make([]string, 0, len(result.Synced))
	for _, platform := range result.Synced {
		resp.Data.Synced = append(resp.Data.Synced, string(platform))
	}
	if len(result.Failed) > 0 {
		resp.Data.Failed = make(map[string]string, len(result.Failed))
		for platform, message := range result.Failed {
			resp.Data.Failed[string(platform)] = message
		}
	}
	resp.Data.Stats = statsDTO(result.Stats)
	return resp, nil
}

func (h Handler) DisconnectHandler(ctx context.Context, userID string, platform string) (httptransport.DisconnectResponse, error) {
	stats, err := h.Service.Disconnect(ctx, userID, platform)
	if err != nil {
		return httptransport.DisconnectResponse{}, err
	}
	resp := httptransport.DisconnectResponse{Status: "success"}
	resp.Data.Stats = statsDTO(stats)
	return resp, nil
}

func (h Handler) GetMemberHandler(ctx context.Context, userID string) (httptransport.MemberProfileResponse, error) {
	member, err := h.Service.GetMember(ctx, userID)
	if err != nil {
		return httptransport.MemberProfileResponse{}, err
	}
	resp := httptransport.MemberProfileResponse{Status: "success"}
	resp.Data.UserID = member.UserID
	resp.Data.Name = member.Name
	resp.Data.Batch = member.Batch
	resp.Data.Role = member.Role
	resp.Data.Approved = member.Approved
	resp.Data.JoinedAt = member.JoinedAt.UTC().Format(time.RFC3339)
	resp.Data.Platforms = make(map[string]httptransport.PlatformProfileDTO, len(member.Platforms))
	for platform, prof := range member.Platforms {
		resp.Data.Platforms[string(platform)] = profileDTO(prof)
	}
	resp.Data.Stats = statsDTO(member.Stats)
	return resp, nil
}

func profileDTO(prof profile.Profile) httptransport.PlatformProfileDTO {
	return httptransport.PlatformProfileDTO{
		Username:       prof.Username,
		Connected:      prof.Connected,
		ProblemsSolved: prof.ProblemsSolved,
		Rating:         prof.Rating,
		MaxRating:      prof.MaxRating,
		Rank:           prof.Rank,
		MaxRank:        prof.MaxRank,
		Stars:          prof.Stars,
		EasySolved:     prof.EasySolved,
		MediumSolved:   prof.MediumSolved,
		HardSolved:     prof.HardSolved,
		LastSynced:     prof.LastSynced.UTC().Format(time.RFC3339),
	}
}

func statsDTO(stats ports.StatsSnapshot) httptransport.StatsDTO {
	return httptransport.StatsDTO{
		TotalProblems:   stats.TotalProblems,
		EasyProblems:    stats.EasyProblems,
		MediumProblems:  stats.MediumProblems,
		HardProblems:    stats.HardProblems,
		WeeklyProblems:  stats.WeeklyProblems,
		MonthlyProblems: stats.MonthlyProblems,
		CurrentStreak:   stats.CurrentStreak,
		MaxStreak:       stats.MaxStreak,
	}
}

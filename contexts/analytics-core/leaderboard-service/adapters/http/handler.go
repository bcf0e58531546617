package httpadapter

import (
	"context"
	"log/slog"

	"clubtrack/contexts/analytics-core/leaderboard-service/application"
	"clubtrack/contexts/analytics-core/leaderboard-service/ports"
	httptransport "clubtrack/contexts/analytics-core/leaderboard-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) LeaderboardHandler(ctx context.Context, timeframeRaw string) (httptransport.LeaderboardResponse, error) {
	entries, err := h.Service.Leaderboard(ctx, timeframeRaw)
	if err != nil {
		return httptransport.LeaderboardResponse{}, err
	}
	timeframe, _ := ports.ParseTimeframe(timeframeRaw)
	resp := httptransport.LeaderboardResponse{Status: "success"}
	resp.Data.Timeframe = string(timeframe)
	resp.Data.Entries = entryDTOs(entries)
	return resp, nil
}

func (h Handler) TopPerformersHandler(ctx context.Context) (httptransport.TopPerformersResponse, error) {
	entries, err := h.Service.TopPerformers(ctx)
	if err != nil {
		return httptransport.TopPerformersResponse{}, err
	}
	resp := httptransport.TopPerformersResponse{Status: "success"}
	resp.Data.Entries = entryDTOs(entries)
	return resp, nil
}

func (h Handler) BatchPerformanceHandler(ctx context.Context) (httptransport.BatchPerformanceResponse, error) {
	batches, err := h.Service.BatchPerformance(ctx)
	if err != nil {
		return httptransport.BatchPerformanceResponse{}, err
	}
	resp := httptransport.BatchPerformanceResponse{Status: "success"}
	resp.Data.Batches = make([]httptransport.BatchPerformanceDTO, 0, len(batches))
	for _, batch := range batches {
		resp.Data.Batches = append(resp.Data.Batches, httptransport.BatchPerformanceDTO{
			Batch:       batch.Batch,
			AvgSolved:   batch.AvgSolved,
			TotalSolved: batch.TotalSolved,
			Members:     batch.Members,
		})
	}
	return resp, nil
}

func entryDTOs(entries []ports.Entry) []httptransport.LeaderboardEntryDTO {
	dtos := make([]httptransport.LeaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, httptransport.LeaderboardEntryDTO{
			Rank:            entry.Rank,
			UserID:          entry.UserID,
			Name:            entry.Name,
			Batch:           entry.Batch,
			RollNumber:      entry.RollNumber,
			TotalProblems:   entry.TotalProblems,
			WeeklyProblems:  entry.WeeklyProblems,
			MonthlyProblems: entry.MonthlyProblems,
			CurrentStreak:   entry.CurrentStreak,
			AverageRating:   entry.AverageRating,
			Platforms:       entry.Platforms,
		})
	}
	return dtos
}

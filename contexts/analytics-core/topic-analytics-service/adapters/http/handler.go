package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	"clubtrack/contexts/analytics-core/topic-analytics-service/application"
	httptransport "clubtrack/contexts/analytics-core/topic-analytics-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) TopicStrengthHandler(ctx context.Context, handle string, limit int) (httptransport.TopicStrengthResponse, error) {
	strengths, err := h.Service.TopicStrength(ctx, handle, limit)
	if err != nil {
		return httptransport.TopicStrengthResponse{}, err
	}
	resp := httptransport.TopicStrengthResponse{Status: "success"}
	resp.Data.Handle = strings.TrimSpace(handle)
	resp.Data.Topics = make([]httptransport.TopicStrengthDTO, 0, len(strengths))
	for _, strength := range strengths {
		resp.Data.Topics = append(resp.Data.Topics, httptransport.TopicStrengthDTO{
			Tag:     strength.Tag,
			Solved:  strength.Solved,
			Wrong:   strength.Wrong,
			Percent: strength.Percent,
		})
	}
	return resp, nil
}

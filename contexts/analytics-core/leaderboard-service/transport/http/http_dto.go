package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type LeaderboardEntryDTO struct {
	Rank            int            `json:"rank"`
	UserID          string         `json:"user_id"`
	Name            string         `json:"name"`
	Batch           string         `json:"batch,omitempty"`
	RollNumber      string         `json:"roll_number,omitempty"`
	TotalProblems   int            `json:"total_problems"`
	WeeklyProblems  int            `json:"weekly_problems"`
	MonthlyProblems int            `json:"monthly_problems"`
	CurrentStreak   int            `json:"current_streak"`
	AverageRating   int            `json:"average_rating"`
	Platforms       map[string]int `json:"platforms"`
}

type BatchPerformanceDTO struct {
	Batch       string `json:"batch"`
	AvgSolved   int    `json:"avg_solved"`
	TotalSolved int    `json:"total_solved"`
	Members     int    `json:"members"`
}

type LeaderboardResponse struct {
	Status string `json:"status"`
	Data   struct {
		Timeframe string                `json:"timeframe"`
		Entries   []LeaderboardEntryDTO `json:"entries"`
	} `json:"data"`
}

type TopPerformersResponse struct {
	Status string `json:"status"`
	Data   struct {
		Entries []LeaderboardEntryDTO `json:"entries"`
	} `json:"data"`
}

type BatchPerformanceResponse struct {
	Status string `json:"status"`
	Data   struct {
		Batches []BatchPerformanceDTO `json:"batches"`
	} `json:"data"`
}

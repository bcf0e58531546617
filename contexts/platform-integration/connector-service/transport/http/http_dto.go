package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PlatformProfileDTO struct {
	Username       string `json:"username"`
	Connected      bool   `json:"connected"`
	ProblemsSolved int    `json:"problems_solved"`
	Rating         int    `json:"rating"`
	MaxRating      int    `json:"max_rating,omitempty"`
	Rank           string `json:"rank,omitempty"`
	MaxRank        string `json:"max_rank,omitempty"`
	Stars          string `json:"stars,omitempty"`
	EasySolved     int    `json:"easy_solved,omitempty"`
	MediumSolved   int    `json:"medium_solved,omitempty"`
	HardSolved     int    `json:"hard_solved,omitempty"`
	LastSynced     string `json:"last_synced"`
}

type StatsDTO struct {
	TotalProblems   int `json:"total_problems"`
	EasyProblems    int `json:"easy_problems"`
	MediumProblems  int `json:"medium_problems"`
	HardProblems    int `json:"hard_problems"`
	WeeklyProblems  int `json:"weekly_problems"`
	MonthlyProblems int `json:"monthly_problems"`
	CurrentStreak   int `json:"current_streak"`
	MaxStreak       int `json:"max_streak"`
}

type ConnectPlatformRequest struct {
	Handle string `json:"handle"`
}

type ConnectPlatformResponse struct {
	Status string `json:"status"`
	Data   struct {
		Platform string             `json:"platform"`
		Profile  PlatformProfileDTO `json:"profile"`
		Stats    StatsDTO           `json:"stats"`
	} `json:"data"`
}

type RefreshResponse struct {
	Status string `json:"status"`
	Data   struct {
		Synced []string          `json:"synced"`
		Failed map[string]string `json:"failed,omitempty"`
		Stats  StatsDTO          `json:"stats"`
	} `json:"data"`
}

type DisconnectResponse struct {
	Status string `json:"status"`
	Data   struct {
		Stats StatsDTO `json:"stats"`
	} `json:"data"`
}

type MemberProfileResponse struct {
	Status string `json:"status"`
	Data   struct {
		UserID    string                        `json:"user_id"`
		Name      string                        `json:"name"`
		Batch     string                        `json:"batch,omitempty"`
		Role      string                        `json:"role"`
		Approved  bool                          `json:"approved"`
		JoinedAt  string                        `json:"joined_at"`
		Platforms map[string]PlatformProfileDTO `json:"platforms"`
		Stats     StatsDTO                      `json:"stats"`
	} `json:"data"`
}

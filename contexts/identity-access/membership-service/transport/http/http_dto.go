package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MemberDTO struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Batch      string `json:"batch,omitempty"`
	RollNumber string `json:"roll_number,omitempty"`
	Role       string `json:"role"`
	Approved   bool   `json:"approved"`
	JoinedAt   string `json:"joined_at"`
}

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Batch      string `json:"batch"`
	RollNumber string `json:"roll_number"`
	Role       string `json:"role"`
	AccessCode string `json:"access_code"`
}

type RegisterResponse struct {
	Status string `json:"status"`
	Data   struct {
		Member MemberDTO `json:"member"`
	} `json:"data"`
}

type ApproveRequest struct {
	ApproverID string `json:"approver_id"`
}

type ApproveResponse struct {
	Status string `json:"status"`
	Data   struct {
		Member MemberDTO `json:"member"`
	} `json:"data"`
}

type MembersResponse struct {
	Status string `json:"status"`
	Data   struct {
		Members []MemberDTO `json:"members"`
	} `json:"data"`
}

type RosterSummaryResponse struct {
	Status string `json:"status"`
	Data   struct {
		Total    int `json:"total"`
		Mentors  int `json:"mentors"`
		Approved int `json:"approved"`
		Pending  int `json:"pending"`
	} `json:"data"`
}

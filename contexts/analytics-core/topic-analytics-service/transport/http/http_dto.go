package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TopicStrengthDTO struct {
	Tag     string `json:"tag"`
	Solved  int    `json:"solved"`
	Wrong   int    `json:"wrong"`
	Percent int    `json:"percent"`
}

type TopicStrengthResponse struct {
	Status string `json:"status"`
	Data   struct {
		Handle string             `json:"handle"`
		Topics []TopicStrengthDTO `json:"topics"`
	} `json:"data"`
}

package dto

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatMessageResponse struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type ChatHistoryResponse struct {
	Messages    []ChatMessageResponse `json:"messages"`
	InFlight    bool                  `json:"in_flight"`
	Placeholder string                `json:"placeholder,omitempty"`
}

type ChatReplyResponse struct {
	Reply   ChatMessageResponse `json:"reply"`
	History ChatHistoryResponse `json:"history"`
}

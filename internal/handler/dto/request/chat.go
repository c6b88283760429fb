package request

import "service-desk/internal/usecase"

type ChatRequest struct {
	Message string         `json:"message" binding:"required"`
	Session map[string]any `json:"session"`
}

func (r ChatRequest) SessionState() usecase.Session {
	if r.Session == nil {
		return usecase.Session{}
	}
	return usecase.Session(r.Session)
}

// MessageRequest carries one free-text message for the single-shot assistants.
type MessageRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
}

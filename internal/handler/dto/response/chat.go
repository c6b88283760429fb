package response

import "service-desk/internal/usecase"

type HealthResponse struct {
	Status      string `json:"status"`
	AgentLoaded bool   `json:"agent_loaded"`
	AgentMode   string `json:"agent_mode"`
}

type ChatResponse struct {
	Reply   string         `json:"reply"`
	Tool    *string        `json:"tool"`
	Result  any            `json:"result"`
	Intent  string         `json:"intent"`
	Session map[string]any `json:"session"`
}

func FromChatResult(r usecase.ChatResult) *ChatResponse {
	session := map[string]any(r.Session)
	if session == nil {
		session = map[string]any{}
	}
	return &ChatResponse{
		Reply:   r.Reply,
		Tool:    r.Tool,
		Result:  r.Result,
		Intent:  r.Intent,
		Session: session,
	}
}

type IntakeResponse struct {
	Status  string          `json:"status"`
	Missing []string        `json:"missing,omitempty"`
	Ticket  *TicketResponse `json:"ticket,omitempty"`
	Reply   string          `json:"reply"`
}

func FromIntakeResult(r usecase.IntakeResult) *IntakeResponse {
	res := &IntakeResponse{Status: string(r.Status), Missing: r.Missing, Reply: r.Reply}
	if r.Ticket != nil {
		res.Ticket = FromTicket(*r.Ticket)
	}
	return res
}

type DiagnosisResponse struct {
	Status      string   `json:"status"`
	DeviceType  string   `json:"device_type,omitempty"`
	Symptoms    []string `json:"symptoms"`
	Missing     []string `json:"missing,omitempty"`
	Suggestions []string `json:"suggestions"`
	Reply       string   `json:"reply"`
}

func FromDiagnosis(d usecase.Diagnosis) *DiagnosisResponse {
	symptoms := make([]string, len(d.Symptoms))
	for i, s := range d.Symptoms {
		symptoms[i] = string(s)
	}
	return &DiagnosisResponse{
		Status:      string(d.Status),
		DeviceType:  string(d.DeviceType),
		Symptoms:    symptoms,
		Missing:     d.Missing,
		Suggestions: nonNil(d.Suggestions),
		Reply:       d.Reply,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

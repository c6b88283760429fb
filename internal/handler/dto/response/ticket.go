package response

import (
	"time"

	"service-desk/internal/domain/ticket"
)

type TicketResponse struct {
	TicketID     string    `json:"ticket_id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Device       string    `json:"device"`
	Issue        string    `json:"issue"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Notes        []string  `json:"notes"`
	PartialMatch bool      `json:"partial_match,omitempty"`
}

func FromTicket(t ticket.Ticket) *TicketResponse {
	notes := t.Notes
	if notes == nil {
		notes = []string{}
	}
	return &TicketResponse{
		TicketID:     t.TicketID,
		CustomerName: t.CustomerName,
		Phone:        t.Phone,
		Device:       t.Device,
		Issue:        t.Issue,
		Priority:     t.Priority,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		Notes:        notes,
	}
}

func FromTicketLookup(l ticket.Lookup) *TicketResponse {
	res := FromTicket(l.Ticket)
	res.PartialMatch = l.PartialMatch
	return res
}

func FromTickets(ts []ticket.Ticket) []*TicketResponse {
	res := make([]*TicketResponse, len(ts))
	for i, t := range ts {
		res[i] = FromTicket(t)
	}
	return res
}

package queries

import (
	"strings"

	"service-desk/internal/domain/ticket"
)

type TicketReader interface {
	GetStatus(id string) (ticket.Lookup, error)
	List() []ticket.Ticket
}

type TicketQueries interface {
	GetTicket(id string) (ticket.Lookup, error)
	ListTickets(status string) []ticket.Ticket
}

type ticketQueriesImpl struct {
	store TicketReader
}

func NewTicketQueries(store TicketReader) TicketQueries {
	return &ticketQueriesImpl{store: store}
}

func (q *ticketQueriesImpl) GetTicket(id string) (ticket.Lookup, error) {
	return q.store.GetStatus(id)
}

// ListTickets returns tickets in creation order, optionally only those with
// the given status.
func (q *ticketQueriesImpl) ListTickets(status string) []ticket.Ticket {
	all := q.store.List()
	status = strings.TrimSpace(status)
	if status == "" {
		return all
	}
	out := make([]ticket.Ticket, 0, len(all))
	for _, t := range all {
		if strings.EqualFold(t.Status, status) {
			out = append(out, t)
		}
	}
	return out
}

package store

import (
	"log/slog"
	"strings"
	"sync"

	"service-desk/internal/domain/ticket"
	"service-desk/internal/infra/recordstore"
	"service-desk/internal/pkg/clock"
	"service-desk/internal/pkg/errs"
)

// TicketStore is an append-only ticket log. With a file path every
// operation re-reads the file under the lock, so tickets written by another
// process are picked up before the next append. Without one it keeps the
// tickets in memory.
type TicketStore struct {
	mu      sync.Mutex
	records *recordstore.Store[ticket.Ticket]
	memory  []ticket.Ticket
	clock   clock.Clock
	logger  *slog.Logger
}

func NewTicketStore(path string, clk clock.Clock, logger *slog.Logger) *TicketStore {
	return &TicketStore{
		records: recordstore.New(path, logger, recordstore.WithListKey[ticket.Ticket]("tickets")),
		clock:   clk,
		logger:  logger,
	}
}

func (s *TicketStore) Create(p ticket.NewTicketParams) (ticket.Ticket, error) {
	t, err := ticket.New(p, clock.Stamp(s.clock))
	if err != nil {
		return ticket.Ticket{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := append(s.loadLocked(), *t)
	if s.records.Path() != "" {
		if err := s.records.Write(tickets); err != nil {
			return ticket.Ticket{}, err
		}
	} else {
		s.memory = tickets
	}

	s.logger.Info("ticket created", "ticket_id", t.TicketID, "customer", t.CustomerName)
	return cloneTicket(*t), nil
}

// GetStatus finds a ticket by exact id first, then by the first stored id
// that contains the query.
func (s *TicketStore) GetStatus(id string) (ticket.Lookup, error) {
	q := ticket.NormalizeID(id)
	if q == "" {
		return ticket.Lookup{}, ticket.ErrIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := s.loadLocked()
	for _, t := range tickets {
		if ticket.NormalizeID(t.TicketID) == q {
			return ticket.Lookup{Ticket: cloneTicket(t)}, nil
		}
	}
	for _, t := range tickets {
		if strings.Contains(ticket.NormalizeID(t.TicketID), q) {
			return ticket.Lookup{Ticket: cloneTicket(t), PartialMatch: true}, nil
		}
	}
	return ticket.Lookup{}, errs.Wrapf(errs.ErrNotFound, "ticket %s", q)
}

func (s *TicketStore) List() []ticket.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := s.loadLocked()
	out := make([]ticket.Ticket, len(tickets))
	for i, t := range tickets {
		out[i] = cloneTicket(t)
	}
	return out
}

func (s *TicketStore) loadLocked() []ticket.Ticket {
	if s.records.Path() == "" {
		return append([]ticket.Ticket(nil), s.memory...)
	}
	return s.records.Read()
}

func cloneTicket(t ticket.Ticket) ticket.Ticket {
	out := t
	out.Notes = append([]string{}, t.Notes...)
	return out
}

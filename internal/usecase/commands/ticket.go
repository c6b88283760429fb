package commands

import (
	"service-desk/internal/domain/ticket"
)

type TicketWriter interface {
	Create(p ticket.NewTicketParams) (ticket.Ticket, error)
}

type CreateTicketRequest struct {
	CustomerName string
	Phone        string
	Device       string
	Issue        string
	Priority     string
}

type TicketCommands interface {
	CreateTicket(req CreateTicketRequest) (ticket.Ticket, error)
}

type ticketCommandsImpl struct {
	store TicketWriter
}

func NewTicketCommands(store TicketWriter) TicketCommands {
	return &ticketCommandsImpl{store: store}
}

func (uc *ticketCommandsImpl) CreateTicket(req CreateTicketRequest) (ticket.Ticket, error) {
	return uc.store.Create(ticket.NewTicketParams{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Device:       req.Device,
		Issue:        req.Issue,
		Priority:     req.Priority,
	})
}

//go:build unit || e2e

package builder

import (
	"time"

	"service-desk/internal/domain/ticket"
	reqdto "service-desk/internal/handler/dto/request"
)

type TicketBuilder struct {
	CustomerName string
	Phone        string
	Device       string
	Issue        string
	Priority     string
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		CustomerName: "Sita Sharma",
		Phone:        "+977 1234567",
		Device:       "Dell XPS 13",
		Issue:        "Laptop won't boot after update",
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

func (b *TicketBuilder) BuildParams() ticket.NewTicketParams {
	return ticket.NewTicketParams{
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		Device:       b.Device,
		Issue:        b.Issue,
		Priority:     b.Priority,
	}
}

func (b *TicketBuilder) BuildDomain(now time.Time) (*ticket.Ticket, error) {
	return ticket.New(b.BuildParams(), now)
}

// BuildStored returns a ticket as it would be read back from the store.
func (b *TicketBuilder) BuildStored(id string, now time.Time) ticket.Ticket {
	t, err := b.BuildDomain(now)
	if err != nil {
		panic("BuildStored: " + err.Error())
	}
	t.TicketID = id
	return *t
}

func (b *TicketBuilder) BuildCreateRequestDTO() reqdto.CreateTicketRequest {
	return reqdto.CreateTicketRequest{
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		Device:       b.Device,
		Issue:        b.Issue,
		Priority:     b.Priority,
	}
}

// Fluent builder methods
func (b *TicketBuilder) WithCustomerName(name string) *TicketBuilder {
	b.CustomerName = name
	return b
}

func (b *TicketBuilder) WithPhone(phone string) *TicketBuilder {
	b.Phone = phone
	return b
}

func (b *TicketBuilder) WithDevice(device string) *TicketBuilder {
	b.Device = device
	return b
}

func (b *TicketBuilder) WithIssue(issue string) *TicketBuilder {
	b.Issue = issue
	return b
}

func (b *TicketBuilder) WithPriority(priority string) *TicketBuilder {
	b.Priority = priority
	return b
}

package usecase

import (
	"fmt"
	"log/slog"
	"strings"

	"service-desk/internal/domain/ticket"
	"service-desk/internal/nlu"
)

type IntakeStatus string

const (
	IntakeMissingInfo   IntakeStatus = "missing_info"
	IntakeTicketCreated IntakeStatus = "ticket_created"
	IntakeError         IntakeStatus = "error"
)

var intakeQuestions = map[string]string{
	SessionCustomerName: "Could you please provide the customer's full name?",
	SessionPhone:        "What's the best phone number to reach the customer at?",
	SessionDeviceSKU:    "Can you share the device model or SKU (e.g., Dell XPS 13)?",
}

type IntakeResult struct {
	Status  IntakeStatus   `json:"status"`
	Missing []string       `json:"missing,omitempty"`
	Slots   nlu.Slots      `json:"-"`
	Ticket  *ticket.Ticket `json:"ticket,omitempty"`
	Reply   string         `json:"reply"`
}

type IntakeUseCase interface {
	Process(text string) IntakeResult
}

// intakeUseCaseImpl files repair tickets from a single free-text message,
// pulling the customer fields out of the text itself.
type intakeUseCaseImpl struct {
	tickets TicketRepository
	logger  *slog.Logger
}

func NewIntakeUseCase(tickets TicketRepository, logger *slog.Logger) IntakeUseCase {
	return &intakeUseCaseImpl{tickets: tickets, logger: logger}
}

func (s *intakeUseCaseImpl) Process(text string) IntakeResult {
	slots := nlu.ExtractSlots(text)

	var missing []string
	if slots.CustomerName == "" {
		missing = append(missing, SessionCustomerName)
	}
	if slots.Phone == "" {
		missing = append(missing, SessionPhone)
	}
	if slots.Device == "" {
		missing = append(missing, SessionDeviceSKU)
	}
	if len(missing) > 0 {
		s.logger.Info("intake missing fields", "missing", missing)
		return IntakeResult{
			Status:  IntakeMissingInfo,
			Missing: missing,
			Slots:   slots,
			Reply:   intakeQuestions[missing[0]],
		}
	}

	created, err := s.tickets.Create(ticket.NewTicketParams{
		CustomerName: slots.CustomerName,
		Phone:        slots.Phone,
		Device:       slots.Device,
		Issue:        strings.TrimSpace(text),
	})
	if err != nil {
		s.logger.Error("intake ticket creation failed", "error", err)
		return IntakeResult{
			Status: IntakeError,
			Slots:  slots,
			Reply:  "Sorry, I couldn't create the ticket due to an internal error.",
		}
	}

	return IntakeResult{
		Status: IntakeTicketCreated,
		Slots:  slots,
		Ticket: &created,
		Reply:  fmt.Sprintf("Thanks, I created a repair ticket (ID: %s).", created.TicketID),
	}
}

package ticket

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"service-desk/internal/pkg/clock"
	"service-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	IDPrefix        = "TICKET-"
	DefaultPriority = "normal"
	StatusReceived  = "received"
)

var (
	ErrCustomerNameRequired = errs.Wrap(errs.ErrValidation, "customer_name is required")
	ErrDeviceRequired       = errs.Wrap(errs.ErrValidation, "device is required")
	ErrIssueRequired        = errs.Wrap(errs.ErrValidation, "issue is required")
	ErrIDRequired           = errs.Wrap(errs.ErrValidation, "ticket_id is required")
)

type Ticket struct {
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
}

type NewTicketParams struct {
	CustomerName string
	Phone        string
	Device       string
	Issue        string
	Priority     string
}

// Lookup is the result of a status query. PartialMatch is set when the
// query only matched part of the stored id.
type Lookup struct {
	Ticket       Ticket
	PartialMatch bool
}

func New(p NewTicketParams, now time.Time) (*Ticket, error) {
	name := strings.TrimSpace(p.CustomerName)
	if name == "" {
		return nil, ErrCustomerNameRequired
	}
	device := strings.TrimSpace(p.Device)
	if device == "" {
		return nil, ErrDeviceRequired
	}
	issue := strings.TrimSpace(p.Issue)
	if issue == "" {
		return nil, ErrIssueRequired
	}
	priority := strings.TrimSpace(p.Priority)
	if priority == "" {
		priority = DefaultPriority
	}

	return &Ticket{
		TicketID:     NewID(),
		CustomerName: name,
		Phone:        NormalizePhone(p.Phone),
		Device:       device,
		Issue:        issue,
		Priority:     priority,
		Status:       StatusReceived,
		CreatedAt:    now,
		UpdatedAt:    now,
		Notes:        []string{},
	}, nil
}

// NewID returns TICKET- followed by 8 upper-case hex characters of a random UUID.
func NewID() string {
	u := uuid.New()
	return IDPrefix + strings.ToUpper(hex.EncodeToString(u[:4]))
}

func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func NormalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), " ")
}

// UnmarshalJSON reads zone-less ISO-8601 timestamps as UTC.
func (t *Ticket) UnmarshalJSON(data []byte) error {
	type plain Ticket
	aux := struct {
		*plain
		CreatedAt clock.Timestamp `json:"created_at"`
		UpdatedAt clock.Timestamp `json:"updated_at"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.CreatedAt = aux.CreatedAt.Time
	t.UpdatedAt = aux.UpdatedAt.Time
	return nil
}

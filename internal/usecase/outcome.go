package usecase

import (
	"encoding/json"

	"service-desk/internal/domain/inventory"
	"service-desk/internal/domain/ticket"
	"service-desk/internal/nlu"
	"service-desk/internal/pkg/errs"
)

type Tool string

const (
	ToolInventoryLookup Tool = "inventory_lookup"
	ToolGetTicketStatus Tool = "get_ticket_status"
	ToolCreateTicket    Tool = "create_ticket"
	ToolTroubleshooting Tool = "troubleshooting"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Outcome is what a routed message produced besides its reply text.
// It is one of MissingInfo, ToolResult or Reply.
type Outcome interface {
	outcome()
}

// MissingInfo means the message could not be served until the listed
// fields are supplied. No tool was called.
type MissingInfo struct {
	Fields []string
}

// ToolResult records the tool that handled the message. Payload may be nil
// when the tool only signals the caller (troubleshooting).
type ToolResult struct {
	Tool    Tool
	Payload any
}

// Reply is a plain answer with no tool involved.
type Reply struct{}

func (MissingInfo) outcome() {}
func (ToolResult) outcome()  {}
func (Reply) outcome()       {}

type Response struct {
	Reply   string
	Intent  nlu.Intent
	Outcome Outcome
}

// ToolName is nil unless a tool handled the message.
func (r Response) ToolName() *string {
	if tr, ok := r.Outcome.(ToolResult); ok {
		name := string(tr.Tool)
		return &name
	}
	return nil
}

func (r Response) Result() any {
	if tr, ok := r.Outcome.(ToolResult); ok {
		return tr.Payload
	}
	return nil
}

func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Reply  string  `json:"reply"`
		Tool   *string `json:"tool"`
		Result any     `json:"result"`
		Intent string  `json:"intent"`
	}{
		Reply:  r.Reply,
		Tool:   r.ToolName(),
		Result: r.Result(),
		Intent: string(r.Intent),
	})
}

type LookupPayload struct {
	Status  string           `json:"status"`
	Results []inventory.Item `json:"results"`
	Count   int              `json:"count"`
}

type TicketPayload struct {
	Status       string         `json:"status"`
	Ticket       *ticket.Ticket `json:"ticket"`
	PartialMatch bool           `json:"partial_match,omitempty"`
}

type ErrorPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func errorPayload(err error) ErrorPayload {
	return ErrorPayload{Status: StatusError, Message: ClientMessage(err)}
}

const msgInternalFailure = "an internal error occurred, please try again later"

// ClientMessage is the error text that may reach a customer. Storage
// failures name data files, so they are replaced by a generic message.
func ClientMessage(err error) string {
	if errs.Is(err, errs.ErrStorage) {
		return msgInternalFailure
	}
	return err.Error()
}

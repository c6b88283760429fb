package usecase

import (
	"fmt"
	"log/slog"
	"strings"

	"service-desk/internal/domain/inventory"
	"service-desk/internal/domain/ticket"
	"service-desk/internal/nlu"
	"service-desk/internal/pkg/errs"
)

const (
	replyAskTicketID   = "Please provide your ticket ID (e.g. TICKET-1234)."
	replyTroubleshoot  = "I can help troubleshoot - please describe the exact symptoms, any error messages, and device model."
	replyFallback      = "Sorry, I didn't understand. Do you want to create a repair ticket, check product availability, or check ticket status?"
	replyNoInventory   = "No matching items found."
	fieldDeviceModel   = "device model or SKU"
	defaultLookupLimit = 10
)

// Session keys shared with callers.
const (
	SessionCustomerName = "customer_name"
	SessionPhone        = "phone"
	SessionDeviceSKU    = "device_sku"
	SessionTicketID     = "ticket_id"
)

// Session is caller-owned conversation state. The router only reads it.
type Session map[string]any

// String returns the trimmed value at key, or "" when it is absent or not text.
func (s Session) String(key string) string {
	switch v := s[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	}
	return ""
}

type InventoryLookup interface {
	Lookup(query string, limit int) ([]inventory.Match, error)
}

type TicketRepository interface {
	Create(p ticket.NewTicketParams) (ticket.Ticket, error)
	GetStatus(id string) (ticket.Lookup, error)
}

type RouterDeps struct {
	Inventory   InventoryLookup
	Tickets     TicketRepository
	Classify    nlu.Classifier
	TicketID    nlu.TicketIDExtractor
	LookupLimit int
	Logger      *slog.Logger
}

// Router turns one message plus session state into a reply. It never fails:
// store errors come back as an apologetic reply and an error payload.
type Router struct {
	inventory InventoryLookup
	tickets   TicketRepository
	classify  nlu.Classifier
	ticketID  nlu.TicketIDExtractor
	limit     int
	logger    *slog.Logger
}

func NewRouter(deps RouterDeps) *Router {
	r := &Router{
		inventory: deps.Inventory,
		tickets:   deps.Tickets,
		classify:  deps.Classify,
		ticketID:  deps.TicketID,
		limit:     deps.LookupLimit,
		logger:    deps.Logger,
	}
	if r.classify == nil {
		r.classify = nlu.Classify
	}
	if r.ticketID == nil {
		r.ticketID = nlu.ExtractTicketID
	}
	if r.limit <= 0 {
		r.limit = defaultLookupLimit
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

func (r *Router) Route(text string, session Session) Response {
	intent := r.classify(text)
	r.logger.Info("routing message", "intent", intent, "message", truncate(text, 120))

	switch intent {
	case nlu.IntentInventoryQuery:
		return r.inventoryQuery(text)
	case nlu.IntentStatusQuery:
		return r.statusQuery(text, session)
	case nlu.IntentRepairIntake:
		return r.repairIntake(text, session)
	case nlu.IntentTroubleshoot:
		return Response{Reply: replyTroubleshoot, Intent: intent, Outcome: ToolResult{Tool: ToolTroubleshooting}}
	default:
		return Response{Reply: replyFallback, Intent: nlu.IntentFallback, Outcome: Reply{}}
	}
}

func (r *Router) inventoryQuery(text string) Response {
	resp := Response{Intent: nlu.IntentInventoryQuery}

	matches, err := r.inventory.Lookup(text, r.limit)
	if err != nil {
		r.logger.Warn("inventory lookup failed", "error", err)
		resp.Reply = "Sorry, I couldn't search the inventory: " + ClientMessage(err)
		resp.Outcome = ToolResult{Tool: ToolInventoryLookup, Payload: errorPayload(err)}
		return resp
	}

	items := make([]inventory.Item, len(matches))
	for i, m := range matches {
		items[i] = m.Item
	}
	resp.Reply = replyNoInventory
	if len(items) > 0 {
		resp.Reply = fmt.Sprintf("I found %d matching items.", len(items))
	}
	resp.Outcome = ToolResult{
		Tool:    ToolInventoryLookup,
		Payload: LookupPayload{Status: StatusSuccess, Results: items, Count: len(items)},
	}
	return resp
}

func (r *Router) statusQuery(text string, session Session) Response {
	resp := Response{Intent: nlu.IntentStatusQuery}

	id, ok := r.ticketID(text)
	if !ok {
		id = session.String(SessionTicketID)
	}
	if id == "" {
		resp.Reply = replyAskTicketID
		resp.Outcome = MissingInfo{Fields: []string{SessionTicketID}}
		return resp
	}

	found, err := r.tickets.GetStatus(id)
	if err != nil {
		resp.Reply = statusFailureReply(id, err)
		resp.Outcome = ToolResult{Tool: ToolGetTicketStatus, Payload: errorPayload(err)}
		return resp
	}

	t := found.Ticket
	resp.Reply = fmt.Sprintf("Ticket %s: status = %s.", t.TicketID, t.Status)
	resp.Outcome = ToolResult{
		Tool:    ToolGetTicketStatus,
		Payload: TicketPayload{Status: StatusSuccess, Ticket: &t, PartialMatch: found.PartialMatch},
	}
	return resp
}

func statusFailureReply(id string, err error) string {
	if errs.Is(err, errs.ErrNotFound) {
		return fmt.Sprintf("Ticket %s not found.", ticket.NormalizeID(id))
	}
	return "Sorry, I couldn't look up that ticket: " + ClientMessage(err)
}

// repairIntake takes the customer fields from the session only. Slots in the
// message itself are handled by IntakeUseCase.
func (r *Router) repairIntake(text string, session Session) Response {
	resp := Response{Intent: nlu.IntentRepairIntake}

	name := session.String(SessionCustomerName)
	phone := session.String(SessionPhone)
	device := session.String(SessionDeviceSKU)

	var missing []string
	if name == "" {
		missing = append(missing, SessionCustomerName)
	}
	if phone == "" {
		missing = append(missing, SessionPhone)
	}
	if device == "" {
		missing = append(missing, fieldDeviceModel)
	}
	if len(missing) > 0 {
		resp.Reply = fmt.Sprintf("I need the following to create a ticket: %s.", strings.Join(missing, ", "))
		resp.Outcome = MissingInfo{Fields: missing}
		return resp
	}

	created, err := r.tickets.Create(ticket.NewTicketParams{
		CustomerName: name,
		Phone:        phone,
		Device:       device,
		Issue:        text,
	})
	if err != nil {
		r.logger.Warn("ticket creation failed", "error", err)
		resp.Reply = "Sorry, I couldn't create the ticket: " + ClientMessage(err)
		resp.Outcome = ToolResult{Tool: ToolCreateTicket, Payload: errorPayload(err)}
		return resp
	}

	resp.Reply = fmt.Sprintf("Ticket created (ID: %s). We'll notify you with updates.", created.TicketID)
	resp.Outcome = ToolResult{
		Tool:    ToolCreateTicket,
		Payload: TicketPayload{Status: StatusSuccess, Ticket: &created},
	}
	return resp
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

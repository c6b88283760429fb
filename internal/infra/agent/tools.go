package agent

import (
	"encoding/json"
	"fmt"

	"service-desk/internal/domain/inventory"
	"service-desk/internal/domain/ticket"
	"service-desk/internal/usecase"

	"google.golang.org/genai"
)

var declarations = []*genai.FunctionDeclaration{
	{
		Name:        string(usecase.ToolInventoryLookup),
		Description: "Search the device inventory by free text (serial, model, make, tags, location).",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"query":       {Type: genai.TypeString, Description: "What the customer is looking for."},
				"max_results": {Type: genai.TypeInteger, Description: "Upper bound on returned items."},
			},
			Required: []string{"query"},
		},
	},
	{
		Name:        string(usecase.ToolCreateTicket),
		Description: "Create a repair ticket once every required field is known.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"customer_name": {Type: genai.TypeString},
				"phone":         {Type: genai.TypeString},
				"device_sku":    {Type: genai.TypeString, Description: "Device model or SKU."},
				"issue":         {Type: genai.TypeString, Description: "Problem description in the customer's words."},
				"priority":      {Type: genai.TypeString, Description: "Defaults to normal."},
			},
			Required: []string{"customer_name", "phone", "device_sku", "issue"},
		},
	},
	{
		Name:        string(usecase.ToolGetTicketStatus),
		Description: "Look up a repair ticket by id (TICKET-XXXXXXXX); partial ids are accepted.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"ticket_id": {Type: genai.TypeString},
			},
			Required: []string{"ticket_id"},
		},
	},
}

type toolbox struct {
	inventory usecase.InventoryLookup
	tickets   usecase.TicketRepository
}

type toolCall struct {
	tool    usecase.Tool
	payload any
}

func (c toolCall) status() string {
	if _, failed := c.payload.(usecase.ErrorPayload); failed {
		return usecase.StatusError
	}
	return usecase.StatusSuccess
}

// response converts the payload to the generic map the function response
// part carries.
func (c toolCall) response() map[string]any {
	data, err := json.Marshal(c.payload)
	if err != nil {
		return map[string]any{"status": usecase.StatusError, "message": err.Error()}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{"status": usecase.StatusError, "message": err.Error()}
	}
	return out
}

func (b *toolbox) call(name string, args map[string]any) toolCall {
	tool := usecase.Tool(name)
	switch tool {
	case usecase.ToolInventoryLookup:
		matches, err := b.inventory.Lookup(stringArg(args, "query"), intArg(args, "max_results"))
		if err != nil {
			return failed(tool, err)
		}
		items := make([]inventory.Item, len(matches))
		for i, m := range matches {
			items[i] = m.Item
		}
		return toolCall{tool: tool, payload: usecase.LookupPayload{Status: usecase.StatusSuccess, Results: items, Count: len(items)}}

	case usecase.ToolCreateTicket:
		created, err := b.tickets.Create(ticket.NewTicketParams{
			CustomerName: stringArg(args, "customer_name"),
			Phone:        stringArg(args, "phone"),
			Device:       stringArg(args, "device_sku"),
			Issue:        stringArg(args, "issue"),
			Priority:     stringArg(args, "priority"),
		})
		if err != nil {
			return failed(tool, err)
		}
		return toolCall{tool: tool, payload: usecase.TicketPayload{Status: usecase.StatusSuccess, Ticket: &created}}

	case usecase.ToolGetTicketStatus:
		found, err := b.tickets.GetStatus(stringArg(args, "ticket_id"))
		if err != nil {
			return failed(tool, err)
		}
		return toolCall{tool: tool, payload: usecase.TicketPayload{Status: usecase.StatusSuccess, Ticket: &found.Ticket, PartialMatch: found.PartialMatch}}
	}
	return toolCall{tool: tool, payload: usecase.ErrorPayload{Status: usecase.StatusError, Message: fmt.Sprintf("unknown tool %q", name)}}
}

func failed(tool usecase.Tool, err error) toolCall {
	return toolCall{tool: tool, payload: usecase.ErrorPayload{Status: usecase.StatusError, Message: usecase.ClientMessage(err)}}
}

func stringArg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// JSON numbers arrive as float64.
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

//go:build unit

package usecase_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"service-desk/internal/domain/inventory"
	"service-desk/internal/domain/ticket"
	"service-desk/internal/infra"
	"service-desk/internal/infra/store"
	"service-desk/internal/nlu"
	"service-desk/internal/pkg/clock"
	"service-desk/internal/pkg/errs"
	"service-desk/internal/usecase"
	"service-desk/tests/common/builder"
	usecasemock "service-desk/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type RouterTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockInventory *usecasemock.MockInventoryLookup
	mockTickets   *usecasemock.MockTicketRepository
	router        *usecase.Router
}

func (s *RouterTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockInventory = usecasemock.NewMockInventoryLookup(s.mockCtrl)
	s.mockTickets = usecasemock.NewMockTicketRepository(s.mockCtrl)
	s.router = usecase.NewRouter(usecase.RouterDeps{
		Inventory:   s.mockInventory,
		Tickets:     s.mockTickets,
		LookupLimit: 5,
		Logger:      discardLogger(),
	})
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func toJSON(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func (s *RouterTestSuite) TestInventoryQuery() {
	s.Run("reports the match count", func() {
		item := builder.NewInventoryBuilder().BuildDomain()
		s.mockInventory.EXPECT().Lookup("do you have dell in stock?", 5).
			Return([]inventory.Match{{Item: item, Score: 6}}, nil).Times(1)

		resp := s.router.Route("do you have dell in stock?", usecase.Session{})

		s.Equal(nlu.IntentInventoryQuery, resp.Intent)
		s.Equal("I found 1 matching items.", resp.Reply)
		s.Equal(usecase.ToolResult{
			Tool:    usecase.ToolInventoryLookup,
			Payload: usecase.LookupPayload{Status: usecase.StatusSuccess, Results: []inventory.Item{item}, Count: 1},
		}, resp.Outcome)
	})

	s.Run("no matches", func() {
		s.mockInventory.EXPECT().Lookup(gomock.Any(), 5).Return([]inventory.Match{}, nil).Times(1)

		resp := s.router.Route("price of a unicorn", nil)

		s.Equal("No matching items found.", resp.Reply)
		body := toJSON(s.T(), resp)
		s.Equal("inventory_lookup", body["tool"])
		s.Equal(map[string]any{"status": "success", "results": []any{}, "count": float64(0)}, body["result"])
	})

	s.Run("lookup failure becomes an error payload", func() {
		s.mockInventory.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(nil, inventory.ErrQueryRequired).Times(1)

		resp := s.router.Route("stock?", nil)

		s.Contains(resp.Reply, "Sorry, I couldn't search the inventory")
		body := toJSON(s.T(), resp)
		s.Equal("error", body["result"].(map[string]any)["status"])
	})
}

func (s *RouterTestSuite) TestStatusQuery() {
	stored := builder.NewTicketBuilder().BuildStored("TICKET-ABCDEF12", t0)

	s.Run("id from the message wins over the session", func() {
		router := usecase.NewRouter(usecase.RouterDeps{
			Inventory: s.mockInventory,
			Tickets:   s.mockTickets,
			Classify:  func(string) nlu.Intent { return nlu.IntentStatusQuery },
			Logger:    discardLogger(),
		})
		s.mockTickets.EXPECT().GetStatus("TICKET-ABCDEF12").
			Return(ticket.Lookup{Ticket: stored, PartialMatch: true}, nil).Times(1)

		resp := router.Route("where is ticket abcdef12", usecase.Session{usecase.SessionTicketID: "TICKET-OTHER"})

		s.Equal("Ticket TICKET-ABCDEF12: status = received.", resp.Reply)
		s.Equal(true, toJSON(s.T(), resp)["result"].(map[string]any)["partial_match"])
	})

	s.Run("id from the session", func() {
		s.mockTickets.EXPECT().GetStatus("TICKET-ABCDEF12").
			Return(ticket.Lookup{Ticket: stored}, nil).Times(1)

		resp := s.router.Route("any status update?", usecase.Session{usecase.SessionTicketID: "TICKET-ABCDEF12"})

		s.Equal(nlu.IntentStatusQuery, resp.Intent)
		s.Equal("Ticket TICKET-ABCDEF12: status = received.", resp.Reply)
		tr, ok := resp.Outcome.(usecase.ToolResult)
		s.Require().True(ok)
		s.Equal(usecase.ToolGetTicketStatus, tr.Tool)
		payload := tr.Payload.(usecase.TicketPayload)
		s.Equal(stored, *payload.Ticket)
	})

	s.Run("missing id does not touch the store", func() {
		resp := s.router.Route("what's the status?", usecase.Session{})

		s.Equal("Please provide your ticket ID (e.g. TICKET-1234).", resp.Reply)
		s.Equal(usecase.MissingInfo{Fields: []string{"ticket_id"}}, resp.Outcome)
		body := toJSON(s.T(), resp)
		s.Nil(body["tool"])
		s.Nil(body["result"])
		s.Equal("status_query", body["intent"])
	})

	s.Run("unknown id", func() {
		s.mockTickets.EXPECT().GetStatus("ticket-0000").
			Return(ticket.Lookup{}, errs.Wrapf(errs.ErrNotFound, "ticket %s", "TICKET-0000")).Times(1)

		resp := s.router.Route("status", usecase.Session{usecase.SessionTicketID: "ticket-0000"})

		s.Equal("Ticket TICKET-0000 not found.", resp.Reply)
		body := toJSON(s.T(), resp)
		s.Equal("get_ticket_status", body["tool"])
		s.Equal("error", body["result"].(map[string]any)["status"])
	})
}

func (s *RouterTestSuite) TestRepairIntake() {
	s.Run("reports every missing field", func() {
		resp := s.router.Route("I need a repair", usecase.Session{})

		s.Equal(nlu.IntentRepairIntake, resp.Intent)
		s.Equal("I need the following to create a ticket: customer_name, phone, device model or SKU.", resp.Reply)
		s.Equal(usecase.MissingInfo{Fields: []string{"customer_name", "phone", "device model or SKU"}}, resp.Outcome)
		body := toJSON(s.T(), resp)
		s.Nil(body["tool"])
		s.Nil(body["result"])
	})

	s.Run("reports only what is missing", func() {
		resp := s.router.Route("please fix my laptop", usecase.Session{"customer_name": "Sita", "device_sku": "A123"})
		s.Equal("I need the following to create a ticket: phone.", resp.Reply)
	})

	s.Run("slots in the message are not used", func() {
		resp := s.router.Route("repair please, name: Sita Sharma, phone +977 1234567, model XPS 13", nil)
		s.IsType(usecase.MissingInfo{}, resp.Outcome)
	})

	s.Run("creates the ticket from session fields", func() {
		created := builder.NewTicketBuilder().BuildStored("TICKET-00C0FFEE", t0)
		s.mockTickets.EXPECT().Create(ticket.NewTicketParams{
			CustomerName: "Sita",
			Phone:        "+977-1234567",
			Device:       "A123",
			Issue:        "repair my screen",
		}).Return(created, nil).Times(1)

		resp := s.router.Route("repair my screen", usecase.Session{
			"customer_name": "Sita", "phone": "+977-1234567", "device_sku": "A123",
		})

		s.Equal("Ticket created (ID: TICKET-00C0FFEE). We'll notify you with updates.", resp.Reply)
		body := toJSON(s.T(), resp)
		s.Equal("create_ticket", body["tool"])
		result := body["result"].(map[string]any)
		s.Equal("success", result["status"])
		s.Equal("received", result["ticket"].(map[string]any)["status"])
	})

	s.Run("store failure is reported without the file path", func() {
		storageErr := infra.WrapStorageErr(discardLogger(), infra.KindWriteFailure, "/srv/desk/tickets.json", "replacing record file", errs.New("disk full"))
		s.mockTickets.EXPECT().Create(gomock.Any()).Return(ticket.Ticket{}, storageErr).Times(1)

		resp := s.router.Route("repair", usecase.Session{"customer_name": "Sita", "phone": "1", "device_sku": "A"})

		s.Equal("Sorry, I couldn't create the ticket: an internal error occurred, please try again later", resp.Reply)
		result := toJSON(s.T(), resp)["result"].(map[string]any)
		s.Equal("error", result["status"])
		s.Equal("an internal error occurred, please try again later", result["message"])
		s.NotContains(resp.Reply, "tickets.json")
	})
}

func (s *RouterTestSuite) TestTroubleshootAndFallback() {
	resp := s.router.Route("my printer is not printing", nil)
	s.Equal(nlu.IntentTroubleshoot, resp.Intent)
	s.Equal(usecase.ToolResult{Tool: usecase.ToolTroubleshooting}, resp.Outcome)
	body := toJSON(s.T(), resp)
	s.Equal("troubleshooting", body["tool"])
	s.Nil(body["result"])

	resp = s.router.Route("hello there", nil)
	s.Equal(nlu.IntentFallback, resp.Intent)
	s.Equal(usecase.Reply{}, resp.Outcome)
	s.Equal("Sorry, I didn't understand. Do you want to create a repair ticket, check product availability, or check ticket status?", resp.Reply)
}

// "laptop broken" carries no keyword of the built-in classifier, so the
// happy-path scenario plugs in a classifier that already knows the intent.
func TestRoute_RepairHappyPathWithStores(t *testing.T) {
	clk := clock.NewMockClock(t0)
	tickets := store.NewTicketStore("", clk, discardLogger())
	router := usecase.NewRouter(usecase.RouterDeps{
		Inventory: store.NewInventoryStore("", false, clk, discardLogger()),
		Tickets:   tickets,
		Classify:  func(string) nlu.Intent { return nlu.IntentRepairIntake },
		Logger:    discardLogger(),
	})

	resp := router.Route("laptop broken", usecase.Session{"customer_name": "Sita", "phone": "+977-1234567", "device_sku": "A123"})

	assert.Equal(t, nlu.IntentRepairIntake, resp.Intent)
	body := toJSON(t, resp)
	assert.Equal(t, "create_ticket", body["tool"])
	tk := body["result"].(map[string]any)["ticket"].(map[string]any)
	assert.Equal(t, "received", tk["status"])
	assert.Equal(t, "laptop broken", tk["issue"])

	found, err := tickets.GetStatus(tk["ticket_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "Sita", found.Ticket.CustomerName)

	assert.Equal(t, nlu.IntentFallback, nlu.Classify("laptop broken"))
}

func TestRoute_InventoryWithStore(t *testing.T) {
	inv := store.NewInventoryStore("", false, clock.NewMockClock(t0), discardLogger())
	_, err := inv.Add(builder.NewInventoryBuilder().BuildDomain())
	require.NoError(t, err)
	_, err = inv.Add(builder.NewInventoryBuilder().AsPrinter().BuildDomain())
	require.NoError(t, err)

	router := usecase.NewRouter(usecase.RouterDeps{Inventory: inv, Tickets: store.NewTicketStore("", clock.NewMockClock(t0), discardLogger())})
	resp := router.Route("do you have a dell xps in stock", nil)

	// Short words like "a" and "in" also hit the printer, but weaker.
	assert.Equal(t, "I found 2 matching items.", resp.Reply)
	payload := resp.Result().(usecase.LookupPayload)
	require.Len(t, payload.Results, 2)
	assert.Equal(t, "SN-1001", payload.Results[0].Serial)
}

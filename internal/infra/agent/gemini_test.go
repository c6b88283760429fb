//go:build unit

package agent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"service-desk/internal/domain/ticket"
	"service-desk/internal/infra/store"
	"service-desk/internal/pkg/clock"
	"service-desk/internal/usecase"
	"service-desk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type scriptedModels struct {
	replies []*genai.GenerateContentResponse
	seen    [][]*genai.Content
	err     error
}

func (m *scriptedModels) GenerateContent(_ context.Context, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.seen = append(m.seen, append([]*genai.Content(nil), contents...))
	resp := m.replies[0]
	if len(m.replies) > 1 {
		m.replies = m.replies[1:]
	}
	return resp, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: genai.NewContentFromText(text, genai.RoleModel),
	}}}
}

func callResponse(name string, args map[string]any) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Role: string(genai.RoleModel), Parts: []*genai.Part{{FunctionCall: &genai.FunctionCall{Name: name, Args: args}}}},
	}}}
}

func newTestAgent(t *testing.T, models generator) (*GeminiAgent, *store.TicketStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	inv := store.NewInventoryStore("", false, clk, logger)
	_, err := inv.Add(builder.NewInventoryBuilder().BuildDomain())
	require.NoError(t, err)
	tickets := store.NewTicketStore("", clk, logger)
	return newGeminiAgent(models, "test-model", inv, tickets, logger), tickets
}

func TestParseReply(t *testing.T) {
	cases := []struct {
		name string
		text string
		want usecase.AgentReply
	}{
		{
			name: "plain object",
			text: `{"reply":"Hi!","tool":null,"result":null,"intent":"fallback"}`,
			want: usecase.AgentReply{Reply: "Hi!", Intent: "fallback"},
		},
		{
			name: "fenced with session",
			text: "```json\n{\"reply\":\"Noted.\",\"intent\":\"repair_intake\",\"session\":{\"phone\":\"123\"}}\n```",
			want: usecase.AgentReply{Reply: "Noted.", Intent: "repair_intake", Session: usecase.Session{"phone": "123"}},
		},
		{
			name: "not json",
			text: "  Sure, happy to help.  ",
			want: usecase.AgentReply{Reply: "Sure, happy to help.", Intent: "fallback"},
		},
		{
			name: "object without reply",
			text: `{"intent":"status_query"}`,
			want: usecase.AgentReply{Reply: `{"intent":"status_query"}`, Intent: "fallback"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseReply(tc.text))
		})
	}
}

func TestGeminiAgent_Run(t *testing.T) {
	t.Run("text answer", func(t *testing.T) {
		models := &scriptedModels{replies: []*genai.GenerateContentResponse{
			textResponse(`{"reply":"Which device?","intent":"troubleshoot","tool":"troubleshooting"}`),
		}}
		a, _ := newTestAgent(t, models)

		reply, err := a.Run(context.Background(), usecase.AgentRequest{Input: "it broke", Session: usecase.Session{}})
		require.NoError(t, err)
		assert.Equal(t, "Which device?", reply.Reply)
		require.NotNil(t, reply.Tool)
		assert.Equal(t, "troubleshooting", *reply.Tool)
		require.Len(t, models.seen, 1)
		assert.Equal(t, `{"input":"it broke","session":{}}`, models.seen[0][0].Parts[0].Text)
	})

	t.Run("tool call is served locally", func(t *testing.T) {
		models := &scriptedModels{replies: []*genai.GenerateContentResponse{
			callResponse("create_ticket", map[string]any{
				"customer_name": "Sita", "phone": "+977 1", "device_sku": "XPS 13", "issue": "no boot",
			}),
			textResponse(`{"reply":"Ticket created.","intent":"repair_intake"}`),
		}}
		a, tickets := newTestAgent(t, models)

		reply, err := a.Run(context.Background(), usecase.AgentRequest{Input: "create it"})
		require.NoError(t, err)

		assert.Equal(t, "Ticket created.", reply.Reply)
		require.NotNil(t, reply.Tool)
		assert.Equal(t, "create_ticket", *reply.Tool)
		payload, ok := reply.Result.(usecase.TicketPayload)
		require.True(t, ok)
		assert.Equal(t, ticket.StatusReceived, payload.Ticket.Status)
		assert.Len(t, tickets.List(), 1)

		// second request carries the model turn and the function response
		require.Len(t, models.seen, 2)
		second := models.seen[1]
		require.Len(t, second, 3)
		fr := second[2].Parts[0].FunctionResponse
		require.NotNil(t, fr)
		assert.Equal(t, "create_ticket", fr.Name)
		assert.Equal(t, "success", fr.Response["status"])
	})

	t.Run("tool errors go back to the model", func(t *testing.T) {
		models := &scriptedModels{replies: []*genai.GenerateContentResponse{
			callResponse("get_ticket_status", map[string]any{"ticket_id": "TICKET-NOPE"}),
			textResponse(`{"reply":"I could not find that ticket.","intent":"status_query"}`),
		}}
		a, _ := newTestAgent(t, models)

		reply, err := a.Run(context.Background(), usecase.AgentRequest{Input: "status TICKET-NOPE"})
		require.NoError(t, err)
		assert.Equal(t, usecase.ErrorPayload{Status: "error", Message: "ticket TICKET-NOPE: not found"}, reply.Result)
	})

	t.Run("generation failure", func(t *testing.T) {
		a, _ := newTestAgent(t, &scriptedModels{err: errors.New("quota")})
		_, err := a.Run(context.Background(), usecase.AgentRequest{Input: "hi"})
		assert.ErrorContains(t, err, "quota")
	})

	t.Run("empty answer", func(t *testing.T) {
		a, _ := newTestAgent(t, &scriptedModels{replies: []*genai.GenerateContentResponse{textResponse("  ")}})
		_, err := a.Run(context.Background(), usecase.AgentRequest{Input: "hi"})
		assert.ErrorIs(t, err, ErrEmptyReply)
	})
}

func TestToolbox_Lookup(t *testing.T) {
	a, _ := newTestAgent(t, &scriptedModels{})

	call := a.tools.call("inventory_lookup", map[string]any{"query": "dell", "max_results": float64(3)})
	payload, ok := call.payload.(usecase.LookupPayload)
	require.True(t, ok)
	assert.Equal(t, 1, payload.Count)
	assert.Equal(t, "success", call.response()["status"])

	call = a.tools.call("format_disk", nil)
	assert.Equal(t, "error", call.status())
}

// Package agent reaches a hosted Gemini model that answers service desk
// messages, calling the local stores through function declarations.
package agent

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"service-desk/internal/pkg/config"
	"service-desk/internal/pkg/errs"
	"service-desk/internal/usecase"

	"google.golang.org/genai"
)

const maxToolRounds = 4

const routerInstruction = `You are the AI Service Desk router.
Classify each user message into one intent: repair_intake, inventory_query, status_query, troubleshoot, fallback.
Use the tools to look up inventory, create repair tickets and check ticket status. Ask for missing details instead of guessing:
a ticket needs customer_name, phone, device_sku and an issue description.
The user turn is JSON {"input": <message>, "session": <known fields>}.
Answer with a single JSON object and nothing else:
{"reply": <short friendly text>, "tool": <tool name or null>, "result": <tool result or null>, "intent": <intent>, "session": <fields to remember>}`

var ErrEmptyReply = errs.New("agent returned no content")

// generator is the slice of genai.Models the agent needs.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiAgent struct {
	models generator
	model  string
	tools  *toolbox
	logger *slog.Logger
}

func NewGeminiAgent(ctx context.Context, cfg config.AgentConfig, inv usecase.InventoryLookup, tickets usecase.TicketRepository, logger *slog.Logger) (*GeminiAgent, error) {
	if cfg.APIKey == "" {
		return nil, errs.New("GOOGLE_API_KEY is required for the remote agent")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create GenAI client")
	}
	return newGeminiAgent(client.Models, cfg.Model, inv, tickets, logger), nil
}

func newGeminiAgent(models generator, model string, inv usecase.InventoryLookup, tickets usecase.TicketRepository, logger *slog.Logger) *GeminiAgent {
	return &GeminiAgent{
		models: models,
		model:  model,
		tools:  &toolbox{inventory: inv, tickets: tickets},
		logger: logger,
	}
}

// Run sends one message and serves the model's tool calls until it answers
// in text or the round limit is reached.
func (a *GeminiAgent) Run(ctx context.Context, req usecase.AgentRequest) (usecase.AgentReply, error) {
	turn, err := json.Marshal(req)
	if err != nil {
		return usecase.AgentReply{}, errs.Wrap(err, "encoding agent input")
	}
	contents := []*genai.Content{genai.NewContentFromText(string(turn), genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(routerInstruction, genai.RoleUser),
		Tools:             []*genai.Tool{{FunctionDeclarations: declarations}},
	}

	var last *toolCall
	for round := 0; round <= maxToolRounds; round++ {
		resp, err := a.models.GenerateContent(ctx, a.model, contents, cfg)
		if err != nil {
			return usecase.AgentReply{}, errs.Wrap(err, "gemini generate content")
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 || round == maxToolRounds {
			return a.finish(resp.Text(), last)
		}

		if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
			contents = append(contents, resp.Candidates[0].Content)
		}
		for _, fc := range calls {
			call := a.tools.call(fc.Name, fc.Args)
			a.logger.Info("agent tool call", "tool", fc.Name, "status", call.status())
			last = &call
			contents = append(contents, genai.NewContentFromFunctionResponse(fc.Name, call.response(), genai.RoleUser))
		}
	}
	return usecase.AgentReply{}, ErrEmptyReply
}

func (a *GeminiAgent) finish(text string, last *toolCall) (usecase.AgentReply, error) {
	if strings.TrimSpace(text) == "" {
		return usecase.AgentReply{}, ErrEmptyReply
	}
	reply := parseReply(text)
	if last != nil {
		if reply.Tool == nil {
			name := string(last.tool)
			reply.Tool = &name
		}
		if reply.Result == nil {
			reply.Result = last.payload
		}
	}
	return reply, nil
}

// parseReply reads the model's JSON answer. Code fences and chatter around
// the object are tolerated; text that holds no object becomes the reply.
func parseReply(text string) usecase.AgentReply {
	raw := strings.TrimSpace(text)
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		var reply usecase.AgentReply
		if err := json.Unmarshal([]byte(raw[start:end+1]), &reply); err == nil && reply.Reply != "" {
			if reply.Intent == "" {
				reply.Intent = "fallback"
			}
			return reply
		}
	}
	return usecase.AgentReply{Reply: raw, Intent: "fallback"}
}

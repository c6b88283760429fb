package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"
)

const maxChatSuggestions = 5

// AgentRequest is what the remote agent receives: the raw message and the
// caller's session.
type AgentRequest struct {
	Input   string  `json:"input"`
	Session Session `json:"session"`
}

// AgentReply mirrors the router's output contract plus any session updates
// the agent wants to hand back.
type AgentReply struct {
	Reply   string  `json:"reply"`
	Tool    *string `json:"tool"`
	Result  any     `json:"result"`
	Intent  string  `json:"intent"`
	Session Session `json:"session,omitempty"`
}

type Agent interface {
	Run(ctx context.Context, req AgentRequest) (AgentReply, error)
}

type MessageRouter interface {
	Route(text string, session Session) Response
}

// ChatResult is the chat boundary's answer. Session is the caller's session
// with any updates layered on top.
type ChatResult struct {
	Reply   string  `json:"reply"`
	Tool    *string `json:"tool"`
	Result  any     `json:"result"`
	Intent  string  `json:"intent"`
	Session Session `json:"session"`
	Remote  bool    `json:"-"`
}

type ChatUseCase interface {
	Chat(ctx context.Context, message string, session Session) ChatResult
	AgentLoaded() bool
}

type chatUseCaseImpl struct {
	router  MessageRouter
	agent   Agent
	timeout time.Duration
	logger  *slog.Logger
}

// NewChatUseCase wires the chat boundary. A nil agent means local routing only.
func NewChatUseCase(router MessageRouter, agent Agent, timeout time.Duration, logger *slog.Logger) ChatUseCase {
	return &chatUseCaseImpl{router: router, agent: agent, timeout: timeout, logger: logger}
}

func (uc *chatUseCaseImpl) AgentLoaded() bool {
	return uc.agent != nil
}

// Chat answers one message. The remote agent is tried first when configured;
// any failure there falls back to the local router so the conversation
// continues.
func (uc *chatUseCaseImpl) Chat(ctx context.Context, message string, session Session) ChatResult {
	if session == nil {
		session = Session{}
	}

	if uc.agent != nil {
		res, err := uc.runAgent(ctx, message, session)
		if err == nil {
			return res
		}
		uc.logger.Warn("remote agent failed, using local router", "error", err)
	}
	return uc.routeLocal(message, session)
}

func (uc *chatUseCaseImpl) runAgent(ctx context.Context, message string, session Session) (ChatResult, error) {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	reply, err := uc.agent.Run(ctx, AgentRequest{Input: message, Session: maps.Clone(session)})
	if err != nil {
		return ChatResult{}, err
	}

	out := maps.Clone(session)
	maps.Copy(out, reply.Session)
	return ChatResult{
		Reply:   reply.Reply,
		Tool:    reply.Tool,
		Result:  reply.Result,
		Intent:  reply.Intent,
		Session: out,
		Remote:  true,
	}, nil
}

func (uc *chatUseCaseImpl) routeLocal(message string, session Session) ChatResult {
	resp := uc.router.Route(message, session)
	res := ChatResult{
		Reply:   resp.Reply,
		Tool:    resp.ToolName(),
		Result:  resp.Result(),
		Intent:  string(resp.Intent),
		Session: maps.Clone(session),
	}

	tr, ok := resp.Outcome.(ToolResult)
	if !ok {
		return res
	}
	switch payload := tr.Payload.(type) {
	case TicketPayload:
		if payload.Ticket != nil {
			res.Session[SessionTicketID] = payload.Ticket.TicketID
		}
	case LookupPayload:
		if len(payload.Results) > 0 {
			top := payload.Results[0]
			res.Reply += fmt.Sprintf("\n\nTop match: %s %s (serial %s, %s).", top.Make, top.Model, top.Serial, top.Status)
		}
	case nil:
		if tr.Tool == ToolTroubleshooting {
			d := Diagnose(message)
			res.Reply += "\n\n" + d.Reply
			if len(d.Suggestions) > 0 {
				res.Reply += "\n\nSuggestions:\n" + bulletList(d.Suggestions, maxChatSuggestions)
			}
			res.Result = d
		}
	}
	return res
}

func bulletList(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	lines := make([]string, len(items))
	for i, s := range items {
		lines[i] = "- " + s
	}
	return strings.Join(lines, "\n")
}

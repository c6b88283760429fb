package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	reqdto "service-desk/internal/handler/dto/request"
	resdto "service-desk/internal/handler/dto/response"
	"service-desk/internal/pkg/errs"
	"service-desk/internal/usecase"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var chatRemote string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the service desk from the terminal",
	Long: `Starts an interactive session. Messages go to the local router unless
--remote points at a running server.

Commands inside the session:
  /set <field> <value>   remember a field (customer_name, phone, device_sku, ticket_id)
  /session               show the remembered fields
  exit                   leave`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatRemote, "remote", "", "base URL of a running server, e.g. http://localhost:8000")
}

var chatStyle = struct {
	banner lipgloss.Style
	prompt lipgloss.Style
	reply  lipgloss.Style
	meta   lipgloss.Style
	err    lipgloss.Style
}{
	banner: lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 1),
	prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	reply:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	meta:   lipgloss.NewStyle().Faint(true),
	err:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// chatter answers one turn of the conversation.
type chatter func(ctx context.Context, message string, session usecase.Session) (usecase.ChatResult, error)

func runChat(cmd *cobra.Command, _ []string) error {
	var send chatter
	if chatRemote != "" {
		send = newRemoteChat(chatRemote, nil).send
	} else {
		var chat usecase.ChatUseCase
		if err := withCLI(&chat); err != nil {
			return err
		}
		send = func(ctx context.Context, message string, session usecase.Session) (usecase.ChatResult, error) {
			return chat.Chat(ctx, message, session), nil
		}
	}
	return chatLoop(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), send)
}

func chatLoop(ctx context.Context, in io.Reader, out io.Writer, send chatter) error {
	fmt.Fprintln(out, chatStyle.banner.Render("AI Service Desk - type 'exit' to quit"))

	session := usecase.Session{}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, chatStyle.prompt.Render("you> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "exit" || line == "quit":
			return nil
		case line == "/session":
			fmt.Fprintln(out, chatStyle.meta.Render(formatSession(session)))
			continue
		case strings.HasPrefix(line, "/set "):
			key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "/set ")), " ")
			if !ok || strings.TrimSpace(value) == "" {
				fmt.Fprintln(out, chatStyle.err.Render("usage: /set <field> <value>"))
				continue
			}
			session[key] = strings.TrimSpace(value)
			continue
		}

		res, err := send(ctx, line, session)
		if err != nil {
			fmt.Fprintln(out, chatStyle.err.Render("error: "+err.Error()))
			continue
		}
		if res.Session != nil {
			session = res.Session
		}
		fmt.Fprintln(out, chatStyle.reply.Render("desk> "+res.Reply))
		meta := "intent: " + res.Intent
		if res.Tool != nil {
			meta += "  tool: " + *res.Tool
		}
		fmt.Fprintln(out, chatStyle.meta.Render(meta))
	}
	return scanner.Err()
}

func formatSession(s usecase.Session) string {
	if len(s) == 0 {
		return "(empty session)"
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%s = %v", k, s[k])
	}
	return strings.Join(lines, "\n")
}

// remoteChat posts turns to a running server's /chat endpoint.
type remoteChat struct {
	url    string
	client *http.Client
}

func newRemoteChat(base string, client *http.Client) *remoteChat {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &remoteChat{url: strings.TrimRight(base, "/") + "/chat", client: client}
}

func (r *remoteChat) send(ctx context.Context, message string, session usecase.Session) (usecase.ChatResult, error) {
	body, err := json.Marshal(reqdto.ChatRequest{Message: message, Session: session})
	if err != nil {
		return usecase.ChatResult{}, errs.Wrap(err, "encoding chat request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return usecase.ChatResult{}, errs.Wrap(err, "building chat request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return usecase.ChatResult{}, errs.Wrap(err, "calling chat server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return usecase.ChatResult{}, errs.Newf("chat server answered %s", resp.Status)
	}
	var out resdto.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return usecase.ChatResult{}, errs.Wrap(err, "decoding chat response")
	}
	return usecase.ChatResult{
		Reply:   out.Reply,
		Tool:    out.Tool,
		Result:  out.Result,
		Intent:  out.Intent,
		Session: usecase.Session(out.Session),
		Remote:  true,
	}, nil
}

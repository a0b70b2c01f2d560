package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/alexanderramin/dayflow/internal/llm"
)

// Handler runs agent turns against a chat client.
type Handler struct {
	client llm.ChatClient
	now    func() time.Time
	loc    *time.Location
	newID  func() string
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock overrides the time source used for timestamps and the
// system instruction.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// WithLocation sets the zone used to read zoneless timestamps and to
// format times in replies.
func WithLocation(loc *time.Location) Option {
	return func(h *Handler) { h.loc = loc }
}

// WithIDs overrides id generation.
func WithIDs(newID func() string) Option {
	return func(h *Handler) { h.newID = newID }
}

func NewHandler(client llm.ChatClient, opts ...Option) *Handler {
	h := &Handler{
		client: client,
		now:    time.Now,
		loc:    time.Local,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Result is the outcome of a successful turn.
type Result struct {
	State   domain.State
	Reply   string
	Actions []Action

	// FocusMinutes is non-zero when the model asked to start the focus
	// timer. The last request in a turn wins.
	FocusMinutes int
}

// HandleTurn sends input with the session history to the model, applies
// the returned calls in order to a copy of state, and records the user and
// model messages. On endpoint failure it returns ErrAgentUnavailable and
// no new state.
func (h *Handler) HandleTurn(ctx context.Context, state domain.State, input string, mode domain.AgentMode) (Result, error) {
	now := h.now()
	resp, err := h.client.Chat(ctx, llm.ChatRequest{
		SystemInstruction: SystemInstruction(mode, now),
		History:           projectHistory(state.History()),
		Message:           input,
		Tools:             Catalog(),
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrAgentUnavailable, err)
	}
	if resp == nil {
		return Result{}, fmt.Errorf("%w: empty response", ErrAgentUnavailable)
	}

	work := state.Clone()
	res := Result{}
	var fragments []string
	for _, call := range resp.ToolCalls {
		a := Decode(call, h.loc)
		res.Actions = append(res.Actions, a)
		fragments = append(fragments, h.apply(&work, a, &res))
	}

	reply := composeReply(fragments, resp.Text)
	work.Messages = append(work.Messages,
		domain.Message{ID: h.newID(), Role: domain.RoleUser, Content: input, Timestamp: now},
		domain.Message{ID: h.newID(), Role: domain.RoleModel, Content: reply, Timestamp: h.now()},
	)
	res.State = work
	res.Reply = reply
	return res, nil
}

// RecordFailure returns a copy of state with the user's message and the
// connection failure notice appended.
func (h *Handler) RecordFailure(state domain.State, input string) domain.State {
	out := state.Clone()
	now := h.now()
	out.Messages = append(out.Messages,
		domain.Message{ID: h.newID(), Role: domain.RoleUser, Content: input, Timestamp: now},
		domain.Message{ID: h.newID(), Role: domain.RoleSystem, Content: FailureMessage, Timestamp: now},
	)
	return out
}

// projectHistory maps messages to chat roles. Only model stays model.
func projectHistory(msgs []domain.Message) []llm.ChatMessage {
	out := make([]llm.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		role := llm.RoleUser
		if m.Role == domain.RoleModel {
			role = llm.RoleModel
		}
		out = append(out, llm.ChatMessage{Role: role, Text: m.Content})
	}
	return out
}

func composeReply(fragments []string, text string) string {
	parts := make([]string, 0, len(fragments)+1)
	for _, f := range fragments {
		if f != "" {
			parts = append(parts, f)
		}
	}
	if t := strings.TrimSpace(text); t != "" {
		parts = append(parts, t)
	}
	if len(parts) == 0 {
		return "Done."
	}
	return strings.Join(parts, " ")
}

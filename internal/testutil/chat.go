package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/alexanderramin/dayflow/internal/llm"
)

// ErrScriptExhausted is returned once a ScriptedChat has no replies left.
var ErrScriptExhausted = errors.New("scripted chat: no replies left")

// ScriptedChat is a fake llm.ChatClient that replays canned replies in
// order and records every request it receives.
type ScriptedChat struct {
	mu       sync.Mutex
	replies  []scriptedReply
	requests []llm.ChatRequest

	// Gate, when set, makes Chat wait for a value (or ctx) before answering.
	// Entered receives once per call that reached the gate.
	Gate    chan struct{}
	Entered chan struct{}
}

type scriptedReply struct {
	resp *llm.ChatResponse
	err  error
}

// NewScriptedChat returns an empty script. Add replies with Reply, Calls or Fail.
func NewScriptedChat() *ScriptedChat {
	return &ScriptedChat{}
}

// Reply queues a text-only answer.
func (s *ScriptedChat) Reply(text string) *ScriptedChat {
	return s.Respond(&llm.ChatResponse{Text: text})
}

// Calls queues an answer with the given tool calls and optional text.
func (s *ScriptedChat) Calls(text string, calls ...llm.ToolCall) *ScriptedChat {
	return s.Respond(&llm.ChatResponse{Text: text, ToolCalls: calls})
}

// Respond queues a full response.
func (s *ScriptedChat) Respond(resp *llm.ChatResponse) *ScriptedChat {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, scriptedReply{resp: resp})
	return s
}

// Fail queues an error.
func (s *ScriptedChat) Fail(err error) *ScriptedChat {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, scriptedReply{err: err})
	return s
}

func (s *ScriptedChat) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.Gate != nil {
		if s.Entered != nil {
			s.Entered <- struct{}{}
		}
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.replies) == 0 {
		return nil, ErrScriptExhausted
	}
	next := s.replies[0]
	s.replies = s.replies[1:]
	return next.resp, next.err
}

func (s *ScriptedChat) Available(context.Context) bool { return true }

// Requests returns a copy of every request received so far.
func (s *ScriptedChat) Requests() []llm.ChatRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.ChatRequest(nil), s.requests...)
}

// Call builds a tool call from alternating key/value pairs.
func Call(name string, kv ...any) llm.ToolCall {
	args := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		args[kv[i].(string)] = kv[i+1]
	}
	return llm.ToolCall{Name: name, Args: args}
}

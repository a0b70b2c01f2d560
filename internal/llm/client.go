package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ChatClient sends a chat turn with a tool catalog to a language model.
type ChatClient interface {
	// Chat sends one turn and returns the model's text and tool calls.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// Available checks whether the endpoint is reachable.
	Available(ctx context.Context) bool
}

// ollamaClient implements ChatClient using the Ollama chat API.
type ollamaClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates a ChatClient that talks to an Ollama instance.
func NewOllamaClient(cfg Config, observer Observer) ChatClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// ollamaChatRequest is the JSON body sent to POST /api/chat.
type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Tools    []ollamaTool    `json:"tools,omitempty"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
}

type ollamaMessage struct {
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	ToolCalls []ollamaToolCall `json:"tool_calls,omitempty"`
}

type ollamaTool struct {
	Type     string             `json:"type"`
	Function ollamaToolFunction `json:"function"`
}

type ollamaToolFunction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  Schema `json:"parameters"`
}

type ollamaToolCall struct {
	Function struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	} `json:"function"`
}

// ollamaChatResponse is the JSON body returned by POST /api/chat (non-streaming).
type ollamaChatResponse struct {
	Model   string        `json:"model"`
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

func (c *ollamaClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	temp := c.cfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	body := ollamaChatRequest{
		Model:    c.cfg.Model,
		Messages: buildMessages(req),
		Tools:    buildTools(req.Tools),
		Stream:   false,
		Options:  ollamaOptions{Temperature: temp},
	}

	var lastErr error
	attempts := 0
	for i := 0; i < 1+c.cfg.MaxRetries; i++ {
		attempts++
		resp, err := c.doRequest(ctx, body)
		if err == nil {
			out := toChatResponse(resp)
			out.LatencyMs = time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Model:     c.cfg.Model,
				LatencyMs: out.LatencyMs,
				Attempts:  attempts,
				ToolCalls: len(out.ToolCalls),
				Success:   true,
			})
			return out, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout, undecodable bodies or 4xx.
		if ctx.Err() != nil || errors.Is(err, ErrInvalidOutput) || isClientError(err) {
			break
		}
	}

	var result error
	switch {
	case ctx.Err() != nil:
		result = ErrTimeout
	case isConnectionError(lastErr):
		result = ErrUnavailable
	case errors.Is(lastErr, ErrInvalidOutput), isClientError(lastErr):
		result = lastErr
	default:
		result = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}

	c.observer.OnCallComplete(CallEvent{
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  attempts,
		Success:   false,
		ErrorCode: errorCode(result),
	})
	return nil, result
}

// buildMessages lays out system instruction, history and the new message.
// The endpoint calls the model role "assistant".
func buildMessages(req ChatRequest) []ollamaMessage {
	msgs := make([]ollamaMessage, 0, len(req.History)+2)
	if req.SystemInstruction != "" {
		msgs = append(msgs, ollamaMessage{Role: "system", Content: req.SystemInstruction})
	}
	for _, h := range req.History {
		role := "user"
		if h.Role == RoleModel {
			role = "assistant"
		}
		msgs = append(msgs, ollamaMessage{Role: role, Content: h.Text})
	}
	return append(msgs, ollamaMessage{Role: "user", Content: req.Message})
}

func buildTools(tools []Tool) []ollamaTool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]ollamaTool, len(tools))
	for i, t := range tools {
		out[i] = ollamaTool{
			Type: "function",
			Function: ollamaToolFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

func toChatResponse(resp *ollamaChatResponse) *ChatResponse {
	out := &ChatResponse{
		Text:  strings.TrimSpace(resp.Message.Content),
		Model: resp.Model,
	}
	for _, tc := range resp.Message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			Name: tc.Function.Name,
			Args: tc.Function.Arguments,
		})
	}
	// Smaller models sometimes write the calls into the text instead.
	if len(out.ToolCalls) == 0 && out.Text != "" {
		if calls, rest, ok := RecoverToolCalls(out.Text); ok {
			out.ToolCalls = calls
			out.Text = rest
		}
	}
	return out
}

func (c *ollamaClient) doRequest(ctx context.Context, body ollamaChatRequest) (*ollamaChatResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/api/chat"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: httpResp.StatusCode, Body: string(respBody)}
	}

	var resp ollamaChatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	return &resp, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := c.cfg.Endpoint + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

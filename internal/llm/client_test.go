package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) { o.events = append(o.events, e) }

func TestOllamaClient_Chat_ToolCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req ollamaChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		require.Len(t, req.Messages, 4)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "be helpful", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "assistant", req.Messages[2].Role)
		assert.Equal(t, "user", req.Messages[3].Role)
		assert.Equal(t, "add task Buy milk", req.Messages[3].Content)
		require.Len(t, req.Tools, 1)
		assert.Equal(t, "function", req.Tools[0].Type)
		assert.Equal(t, "createTask", req.Tools[0].Function.Name)
		assert.Equal(t, []string{"title"}, req.Tools[0].Function.Parameters.Required)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"llama3.2","done":true,"message":{"role":"assistant","content":"",
			"tool_calls":[{"function":{"name":"createTask","arguments":{"title":"Buy milk","priority":"do"}}}]}}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewOllamaClient(testConfig(srv.URL), obs)
	resp, err := client.Chat(context.Background(), ChatRequest{
		SystemInstruction: "be helpful",
		History: []ChatMessage{
			{Role: RoleUser, Text: "hi"},
			{Role: RoleModel, Text: "hello"},
		},
		Message: "add task Buy milk",
		Tools: []Tool{{
			Name:        "createTask",
			Description: "Create a task",
			Parameters: Schema{
				Type:       "object",
				Properties: map[string]Schema{"title": {Type: "string"}},
				Required:   []string{"title"},
			},
		}},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Text)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "createTask", resp.ToolCalls[0].Name)
	assert.Equal(t, "Buy milk", resp.ToolCalls[0].Args["title"])
	assert.Equal(t, "llama3.2", resp.Model)

	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 1, obs.events[0].ToolCalls)
}

func TestOllamaClient_Chat_TextOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Model:   "llama3.2",
			Message: ollamaMessage{Role: "assistant", Content: "  Take a breath.  "},
			Done:    true,
		})
	}))
	defer srv.Close()

	resp, err := NewOllamaClient(testConfig(srv.URL), nil).Chat(context.Background(), ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Take a breath.", resp.Text)
	assert.Empty(t, resp.ToolCalls)
}

func TestOllamaClient_Chat_RecoversToolCallsFromText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: ollamaMessage{Content: `{"tool_calls":[{"name":"startFocusTimer","arguments":{"minutes":15}}]}`},
		})
	}))
	defer srv.Close()

	resp, err := NewOllamaClient(testConfig(srv.URL), nil).Chat(context.Background(), ChatRequest{Message: "focus"})
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "startFocusTimer", resp.ToolCalls[0].Name)
	assert.Equal(t, float64(15), resp.ToolCalls[0].Args["minutes"])
	assert.Empty(t, resp.Text)
}

func TestOllamaClient_Chat_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	_, err := NewOllamaClient(cfg, nil).Chat(context.Background(), ChatRequest{Message: "test"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestOllamaClient_Chat_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	obs := &recordingObserver{}

	_, err := NewOllamaClient(cfg, obs).Chat(context.Background(), ChatRequest{Message: "test"})
	assert.ErrorIs(t, err, ErrUnavailable)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "UNAVAILABLE", obs.events[0].ErrorCode)
}

func TestOllamaClient_Chat_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2

	_, err := NewOllamaClient(cfg, nil).Chat(context.Background(), ChatRequest{Message: "test"})
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, int32(3), calls.Load())
}

func TestOllamaClient_Chat_ClientErrorsNotRetried(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound} {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "no", code)
		}))

		cfg := testConfig(srv.URL)
		cfg.MaxRetries = 2

		_, err := NewOllamaClient(cfg, nil).Chat(context.Background(), ChatRequest{Message: "test"})
		srv.Close()

		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, code, se.Code)
		assert.Equal(t, int32(1), calls.Load(), "status %d", code)
	}
}

func TestOllamaClient_Chat_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewOllamaClient(testConfig(srv.URL), nil).Chat(context.Background(), ChatRequest{Message: "test"})
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOllamaClient_Chat_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := NewOllamaClient(testConfig(srv.URL), nil).Chat(context.Background(), ChatRequest{Message: "test"})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOllamaClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.True(t, NewOllamaClient(testConfig(srv.URL), nil).Available(context.Background()))
	assert.False(t, NewOllamaClient(testConfig("http://127.0.0.1:1"), nil).Available(context.Background()))
}

func TestLogObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	obs.OnCallComplete(CallEvent{Model: "llama3.2", LatencyMs: 12, Attempts: 1, ToolCalls: 2, Success: true})
	obs.OnCallComplete(CallEvent{Model: "llama3.2", Attempts: 1, ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, "msg=llm_call")
	assert.Contains(t, out, "tool_calls=2")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error_code=TIMEOUT")
}

package llm

// Schema is the JSON-schema subset used to describe tool parameters.
type Schema struct {
	Type        string            `json:"type"`
	Description string            `json:"description,omitempty"`
	Enum        []string          `json:"enum,omitempty"`
	Items       *Schema           `json:"items,omitempty"`
	Properties  map[string]Schema `json:"properties,omitempty"`
	Required    []string          `json:"required,omitempty"`
}

// Tool is a function the model may call.
type Tool struct {
	Name        string
	Description string
	Parameters  Schema
}

// ToolCall is one function invocation returned by the model. Args holds
// decoded JSON values: strings, float64, bool, []any and map[string]any.
type ToolCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"arguments"`
}

// Role values understood by the chat endpoint.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one prior turn replayed to the model.
type ChatMessage struct {
	Role string
	Text string
}

// ChatRequest holds the parameters of one chat turn.
type ChatRequest struct {
	SystemInstruction string
	History           []ChatMessage
	Message           string
	Tools             []Tool
	Temperature       *float64 // nil uses the configured default
}

// ChatResponse is the model's answer: optional text, optional tool calls
// in the order the model produced them.
type ChatResponse struct {
	Text      string
	ToolCalls []ToolCall
	Model     string
	LatencyMs int64
}

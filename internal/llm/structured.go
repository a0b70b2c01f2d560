package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator checks a value after JSON extraction.
type Validator[T any] func(T) error

// ExtractJSON pulls the first JSON object out of free model text and
// decodes it into T. Code fences, comments and leading-dot decimals are
// tolerated.
func ExtractJSON[T any](raw string, validate Validator[T]) (T, error) {
	var zero T

	start, end := findObject(dropFences(raw))
	if start < 0 {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}
	body := fixDecimals(dropComments(dropFences(raw)[start:end]))

	var out T
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if validate != nil {
		if err := validate(out); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

type textToolCalls struct {
	ToolCalls []ToolCall `json:"tool_calls"`
}

// RecoverToolCalls looks for a {"tool_calls":[{"name":...,"arguments":{...}}]}
// object written into the reply text. It returns the calls and the text
// with that object removed.
func RecoverToolCalls(text string) ([]ToolCall, string, bool) {
	cleaned := dropFences(text)
	start, end := findObject(cleaned)
	if start < 0 {
		return nil, text, false
	}
	parsed, err := ExtractJSON(cleaned[start:end], func(v textToolCalls) error {
		if len(v.ToolCalls) == 0 {
			return fmt.Errorf("no tool calls")
		}
		for _, c := range v.ToolCalls {
			if c.Name == "" {
				return fmt.Errorf("tool call without name")
			}
		}
		return nil
	})
	if err != nil {
		return nil, text, false
	}
	for i := range parsed.ToolCalls {
		if parsed.ToolCalls[i].Args == nil {
			parsed.ToolCalls[i].Args = map[string]any{}
		}
	}
	rest := strings.TrimSpace(cleaned[:start] + cleaned[end:])
	return parsed.ToolCalls, rest, true
}

// dropFences removes markdown fence lines, keeping what they enclose.
func dropFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// scanner walks JSON text and reports whether each byte sits inside a
// string literal.
type scanner struct {
	inString bool
	escaped  bool
}

// step consumes c and reports whether it belongs to a string literal
// (quotes included).
func (sc *scanner) step(c byte) bool {
	switch {
	case sc.escaped:
		sc.escaped = false
		return true
	case sc.inString && c == '\\':
		sc.escaped = true
		return true
	case c == '"':
		sc.inString = !sc.inString
		return true
	}
	return sc.inString
}

// findObject returns the bounds of the first balanced {...} in s, or -1.
func findObject(s string) (int, int) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return -1, -1
	}
	var sc scanner
	depth := 0
	for i := start; i < len(s); i++ {
		if sc.step(s[i]) {
			continue
		}
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return start, i + 1
			}
		}
	}
	return -1, -1
}

// dropComments strips // and /* */ comments outside string literals.
func dropComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var sc scanner
	for i := 0; i < len(s); i++ {
		c := s[i]
		if sc.step(c) || c != '/' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
		case '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return b.String()
			}
			i += 2 + end + 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// fixDecimals rewrites ".5" and "-.5" as "0.5" and "-0.5" outside strings.
func fixDecimals(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	var sc scanner
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !sc.step(c) && c == '.' && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
			switch lastNonSpace(s[:i]) {
			case 0, ':', ',', '[', '{', '-':
				b.WriteByte('0')
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func lastNonSpace(s string) byte {
	t := strings.TrimRight(s, " \t\r\n")
	if t == "" {
		return 0
	}
	return t[len(t)-1]
}

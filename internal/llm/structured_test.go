package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func TestExtractJSON_CleanObject(t *testing.T) {
	got, err := ExtractJSON[probe](`{"name":"a","score":1}`, nil)
	require.NoError(t, err)
	assert.Equal(t, probe{Name: "a", Score: 1}, got)
}

func TestExtractJSON_CodeFenceAndSurroundingText(t *testing.T) {
	raw := "Sure! Here you go:\n```json\n{\"name\":\"b\",\"score\":2}\n```\nAnything else?"
	got, err := ExtractJSON[probe](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Name)
}

func TestExtractJSON_CommentsAndLeadingDecimal(t *testing.T) {
	raw := `{
		// the name
		"name": "c // not a comment",
		/* block */ "score": .5
	}`
	got, err := ExtractJSON[probe](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "c // not a comment", got.Name)
	assert.InDelta(t, 0.5, got.Score, 1e-9)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[probe]("no json here", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	_, err := ExtractJSON(`{"name":""}`, func(p probe) error {
		if p.Name == "" {
			return errors.New("name required")
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "name required")
}

func TestRecoverToolCalls_FromText(t *testing.T) {
	text := "On it.\n```json\n{\"tool_calls\":[{\"name\":\"createTask\",\"arguments\":{\"title\":\"Buy milk\"}}]}\n```"
	calls, rest, ok := RecoverToolCalls(text)
	require.True(t, ok)
	require.Len(t, calls, 1)
	assert.Equal(t, "createTask", calls[0].Name)
	assert.Equal(t, "Buy milk", calls[0].Args["title"])
	assert.Equal(t, "On it.", rest)
}

func TestRecoverToolCalls_MissingArgumentsBecomesEmptyMap(t *testing.T) {
	calls, _, ok := RecoverToolCalls(`{"tool_calls":[{"name":"startFocusTimer"}]}`)
	require.True(t, ok)
	assert.NotNil(t, calls[0].Args)
	assert.Empty(t, calls[0].Args)
}

func TestRecoverToolCalls_PlainTextUntouched(t *testing.T) {
	text := `Try {"foo": 1} maybe`
	calls, rest, ok := RecoverToolCalls(text)
	assert.False(t, ok)
	assert.Nil(t, calls)
	assert.Equal(t, text, rest)
}

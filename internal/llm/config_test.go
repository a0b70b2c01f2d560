package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DAYFLOW_LLM_LOG_CALLS", "true")
	t.Setenv("DAYFLOW_LLM_ENDPOINT", "http://gpu-box:11434")
	t.Setenv("DAYFLOW_LLM_MODEL", "qwen2.5")
	t.Setenv("DAYFLOW_LLM_TIMEOUT_MS", "5000")
	t.Setenv("DAYFLOW_LLM_MAX_RETRIES", "2")
	t.Setenv("DAYFLOW_LLM_TEMPERATURE", "0.7")

	cfg := LoadConfig()
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, "http://gpu-box:11434", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9)
}

func TestLoadConfig_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("DAYFLOW_LLM_TIMEOUT_MS", "-1")
	t.Setenv("DAYFLOW_LLM_MAX_RETRIES", "many")
	t.Setenv("DAYFLOW_LLM_TEMPERATURE", "9")

	cfg := LoadConfig()
	def := DefaultConfig()
	assert.Equal(t, def.TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, def.MaxRetries, cfg.MaxRetries)
	assert.Equal(t, def.Temperature, cfg.Temperature)
}

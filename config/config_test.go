package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	cfg, err := Load(writeConfig(t, "environment:\n  name: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment.Name)
	assert.Equal(t, 6, cfg.Assistant.HistoryWindow)
	assert.Equal(t, 4000, cfg.Assistant.MaxMessageLength)
	assert.Equal(t, 0.7, cfg.Assistant.Temperature)
	assert.Equal(t, 1, cfg.LLM.RetryAttempts)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.TTL)
	assert.Empty(t, cfg.LLM.Providers)
	assert.Len(t, cfg.Fallback.GenericReplies, 3)
}

func TestLoad_Providers(t *testing.T) {
	t.Setenv("TEST_GROQ_KEY", "sk-groq")
	cfg, err := Load(writeConfig(t, `
llm:
  retry_attempts: 2
  retry_delay: 250ms
  providers:
    - id: groq
      kind: openai
      enabled: true
      priority: 2
      api_key: ${TEST_GROQ_KEY}
      base_url: https://api.groq.com/openai/v1
      model: llama3-70b-8192
      timeout: 12s
    - id: gemini
      kind: gemini
      enabled: true
      priority: 1
      api_key: ${TEST_UNSET_GEMINI_KEY}
`))
	require.NoError(t, err)
	require.Len(t, cfg.LLM.Providers, 2)

	groq := cfg.LLM.Providers[0]
	assert.Equal(t, "groq", groq.ID)
	assert.Equal(t, "sk-groq", groq.APIKey)
	assert.Equal(t, 12*time.Second, groq.Timeout)
	assert.Equal(t, 2, cfg.LLM.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.LLM.RetryDelay)

	gem := cfg.LLM.Providers[1]
	assert.Equal(t, KindGemini, gem.Kind)
	assert.Empty(t, gem.APIKey)
}

func TestLoad_DefaultOpenRouterChain(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-or")
	cfg, err := Load(writeConfig(t, "assistant:\n  history_window: 4\n"))
	require.NoError(t, err)

	require.Len(t, cfg.LLM.Providers, 4)
	assert.Equal(t, "meta-llama/llama-3-70b-instruct:nitro", cfg.LLM.Providers[0].Model)
	assert.Equal(t, "google/gemini-2.0-flash-exp:free", cfg.LLM.Providers[3].Model)
	assert.Equal(t, 4, cfg.Assistant.HistoryWindow)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad timeout", "llm:\n  providers:\n    - id: a\n      timeout: soon\n"},
		{"duplicate id", "llm:\n  providers:\n    - id: a\n    - id: a\n"},
		{"unknown kind", "llm:\n  providers:\n    - id: a\n      kind: carrier-pigeon\n"},
		{"missing id", "llm:\n  providers:\n    - model: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Telegram(t *testing.T) {
	t.Setenv("TEST_TG_TOKEN", "123:abc")
	cfg, err := Load(writeConfig(t, `
telegram:
  bot_token: ${TEST_TG_TOKEN}
  webhook_secret: s3cret
  ngrok_api_url: http://ngrok:4040
`))
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "s3cret", cfg.Telegram.WebhookSecret)
	assert.Equal(t, "http://ngrok:4040", cfg.Telegram.NgrokAPIURL)
	assert.Empty(t, cfg.Telegram.WebhookURL)
}

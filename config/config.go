package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig
	RateLimit  RateLimitConfig

	// Assistant behaviour
	Assistant AssistantConfig
	Fallback  FallbackConfig

	// LLM Provider Registry
	LLM LLMConfig

	// Side-effect collaborators
	Telegram       TelegramConfig
	PriceFeed      PriceFeedConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
	CacheSize         int
	TTL               time.Duration
}

// AssistantConfig drives the persona and the prompt window.
type AssistantConfig struct {
	Name             string
	DeveloperName    string
	DeveloperContact string
	SiteURL          string
	HistoryWindow    int
	MaxMessageLength int
	MaxTokens        int
	Temperature      float64
	ConversationPage int
}

type FallbackConfig struct {
	GenericReplies []string
}

// LLMConfig holds configuration for the provider registry
type LLMConfig struct {
	Providers     []ProviderConfig
	RetryAttempts int
	RetryDelay    time.Duration
}

// ProviderConfig holds configuration for a single completion provider
type ProviderConfig struct {
	ID          string
	DisplayName string
	Kind        string // "openai" (any OpenAI-compatible endpoint) or "gemini"
	Enabled     bool
	Priority    int
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	// NgrokAPIURL is the local ngrok API queried when WebhookURL is empty.
	NgrokAPIURL string
}

type PriceFeedConfig struct {
	URLTemplate string
	Selector    string
	Timeout     time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
}

// Provider kinds
const (
	KindOpenAI = "openai"
	KindGemini = "gemini"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/clainai/
// unless an explicit path is given.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/clainai/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Database.Path = v.GetString("database.path")

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMinute = v.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.CacheSize = v.GetInt("rate_limit.cache_size")
	cfg.RateLimit.TTL = v.GetDuration("rate_limit.ttl")

	// Assistant
	cfg.Assistant.Name = v.GetString("assistant.name")
	cfg.Assistant.DeveloperName = v.GetString("assistant.developer_name")
	cfg.Assistant.DeveloperContact = v.GetString("assistant.developer_contact")
	cfg.Assistant.SiteURL = v.GetString("assistant.site_url")
	cfg.Assistant.HistoryWindow = v.GetInt("assistant.history_window")
	cfg.Assistant.MaxMessageLength = v.GetInt("assistant.max_message_length")
	cfg.Assistant.MaxTokens = v.GetInt("assistant.max_tokens")
	cfg.Assistant.Temperature = v.GetFloat64("assistant.temperature")
	cfg.Assistant.ConversationPage = v.GetInt("assistant.conversation_page")

	cfg.Fallback.GenericReplies = v.GetStringSlice("fallback.generic_replies")

	// LLM
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")

	if v.IsSet("llm.providers") {
		providersRaw := v.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for i, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				provider, err := parseProvider(v, providerMap)
				if err != nil {
					return nil, fmt.Errorf("llm.providers[%d]: %w", i, err)
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
			}
		}
	}

	if len(cfg.LLM.Providers) == 0 {
		if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
			cfg.LLM.Providers = DefaultOpenRouterProviders(key)
		}
	}

	// Collaborators
	cfg.Telegram.BotToken = expandEnvVar(v, v.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = v.GetString("telegram.webhook_secret")
	cfg.Telegram.NgrokAPIURL = v.GetString("telegram.ngrok_api_url")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.PriceFeed.URLTemplate = v.GetString("pricefeed.url_template")
	cfg.PriceFeed.Selector = v.GetString("pricefeed.selector")
	cfg.PriceFeed.Timeout = v.GetDuration("pricefeed.timeout")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = v.GetString("google_calendar.timezone")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("database.path", "clainai.db")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_minute", 30)
	v.SetDefault("rate_limit.burst", 5)
	v.SetDefault("rate_limit.cache_size", 10000)
	v.SetDefault("rate_limit.ttl", "10m")

	v.SetDefault("assistant.name", "ClainAI")
	v.SetDefault("assistant.developer_name", "محمد عبدو")
	v.SetDefault("assistant.developer_contact", "mohammedu3615@gmail.com")
	v.SetDefault("assistant.site_url", "http://localhost:5000")
	v.SetDefault("assistant.history_window", 6)
	v.SetDefault("assistant.max_message_length", 4000)
	v.SetDefault("assistant.max_tokens", 4000)
	v.SetDefault("assistant.temperature", 0.7)
	v.SetDefault("assistant.conversation_page", 20)

	v.SetDefault("fallback.generic_replies", []string{
		"🔧 جاري معالجة طلبك... يرجى المحاولة مرة أخرى.",
		"⏳ الخدمة مشغولة حالياً، أعد إرسال سؤالك بعد لحظات.",
		"🤔 لم أتمكن من الوصول إلى مصادر الإجابة الآن. جرّب إعادة صياغة سؤالك أو المحاولة لاحقاً.",
	})

	// LLM defaults: one call per provider, the registry order is the retry policy.
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")

	v.SetDefault("pricefeed.timeout", "10s")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.timezone", "UTC")
}

// DefaultOpenRouterProviders returns the OpenRouter model chain, most capable first.
func DefaultOpenRouterProviders(apiKey string) []ProviderConfig {
	models := []struct{ id, model string }{
		{"llama-3-70b", "meta-llama/llama-3-70b-instruct:nitro"},
		{"gpt-3.5-turbo", "openai/gpt-3.5-turbo"},
		{"claude-3-haiku", "anthropic/claude-3-haiku"},
		{"gemini-2.0-flash", "google/gemini-2.0-flash-exp:free"},
	}
	out := make([]ProviderConfig, 0, len(models))
	for i, m := range models {
		out = append(out, ProviderConfig{
			ID:       m.id,
			Kind:     KindOpenAI,
			Enabled:  true,
			Priority: i + 1,
			APIKey:   apiKey,
			Model:    m.model,
			Timeout:  30 * time.Second,
		})
	}
	return out
}

func parseProvider(v *viper.Viper, m map[string]interface{}) (ProviderConfig, error) {
	p := ProviderConfig{
		ID:          getStringFromMap(m, "id"),
		DisplayName: getStringFromMap(m, "display_name"),
		Kind:        strings.ToLower(getStringFromMap(m, "kind")),
		Enabled:     getBoolFromMap(m, "enabled"),
		Priority:    getIntFromMap(m, "priority"),
		APIKey:      expandEnvVar(v, getStringFromMap(m, "api_key")),
		BaseURL:     getStringFromMap(m, "base_url"),
		Model:       getStringFromMap(m, "model"),
	}
	if p.ID == "" {
		p.ID = getStringFromMap(m, "name")
	}
	if p.Kind == "" {
		p.Kind = KindOpenAI
	}
	if raw := getStringFromMap(m, "timeout"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return p, fmt.Errorf("provider %s: invalid timeout %q: %w", p.ID, raw, err)
		}
		p.Timeout = d
	}
	return p, nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Unset variable means no credential; the provider ends up disabled.
		return ""
	}

	return value
}

// validateLLMConfig checks structural problems only. Missing credentials are
// not an error: such providers are registered disabled.
func validateLLMConfig(cfg *LLMConfig) error {
	seen := make(map[string]bool, len(cfg.Providers))
	for i, provider := range cfg.Providers {
		if provider.ID == "" {
			return fmt.Errorf("provider %d: id is required", i)
		}
		if seen[provider.ID] {
			return fmt.Errorf("provider %s: duplicate id", provider.ID)
		}
		seen[provider.ID] = true

		switch provider.Kind {
		case KindOpenAI, KindGemini:
		default:
			return fmt.Errorf("provider %s: unknown kind %q", provider.ID, provider.Kind)
		}
		if provider.Timeout < 0 {
			return fmt.Errorf("provider %s: timeout must not be negative", provider.ID)
		}
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Caretask specifics
	Extraction     ExtractionConfig
	Store          StoreConfig
	GoogleCalendar GoogleCalendarConfig
	Contacts       []ContactConfig
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

type RateLimitConfig struct {
	RequestsPerMin int
}

// ExtractionConfig tunes the extraction engine and its remote collaborator.
type ExtractionConfig struct {
	Remote   RemoteConfig
	MaxTasks int
}

type RemoteConfig struct {
	Provider   string // webhook | gemini | qwen | deepseek | chain | none
	Timeout    time.Duration
	WebhookURL string
	APIKey     string
	Model      string
	BaseURL    string

	// Chain settings
	Providers       []LLMProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
}

// LLMProviderConfig is one entry of the chain provider list.
type LLMProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
}

type StoreConfig struct {
	Driver          string // memory | postgres
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
}

type ContactConfig struct {
	Name   string
	Number string
	Type   string
}

var (
	validProviders = map[string]bool{
		"webhook": true, "gemini": true, "qwen": true, "deepseek": true, "chain": true, "none": true,
	}
	validDrivers   = map[string]bool{"memory": true, "postgres": true}
)

// Load reads an optional .env, then config.yaml from ./config, . or
// /etc/caretask/, with environment variables overriding both.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/caretask/")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return load(v)
}

// LoadFile reads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Extraction
	cfg.Extraction.MaxTasks = v.GetInt("extraction.max_tasks")
	cfg.Extraction.Remote.Provider = strings.ToLower(v.GetString("extraction.remote.provider"))
	cfg.Extraction.Remote.Timeout = v.GetDuration("extraction.remote.timeout")
	cfg.Extraction.Remote.WebhookURL = v.GetString("extraction.remote.webhook_url")
	cfg.Extraction.Remote.APIKey = expandEnvVar(v, v.GetString("extraction.remote.api_key"))
	cfg.Extraction.Remote.Model = v.GetString("extraction.remote.model")
	cfg.Extraction.Remote.BaseURL = v.GetString("extraction.remote.base_url")
	cfg.Extraction.Remote.FallbackEnabled = v.GetBool("extraction.remote.fallback_enabled")
	cfg.Extraction.Remote.RetryAttempts = v.GetInt("extraction.remote.retry_attempts")
	cfg.Extraction.Remote.RetryDelay = v.GetDuration("extraction.remote.retry_delay")
	if list, ok := v.Get("extraction.remote.providers").([]interface{}); ok {
		for _, item := range list {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			p := LLMProviderConfig{
				Name:    strings.ToLower(getStringFromMap(m, "name")),
				APIKey:  expandEnvVar(v, getStringFromMap(m, "api_key")),
				BaseURL: getStringFromMap(m, "base_url"),
				Model:   getStringFromMap(m, "model"),
			}
			if enabled, ok := m["enabled"].(bool); ok {
				p.Enabled = enabled
			}
			if priority, ok := m["priority"].(int); ok {
				p.Priority = priority
			}
			cfg.Extraction.Remote.Providers = append(cfg.Extraction.Remote.Providers, p)
		}
	}

	// Store
	cfg.Store.Driver = strings.ToLower(v.GetString("store.driver"))
	cfg.Store.DSN = expandEnvVar(v, v.GetString("store.dsn"))
	cfg.Store.MaxOpenConns = v.GetInt("store.max_open_conns")
	cfg.Store.MaxIdleConns = v.GetInt("store.max_idle_conns")
	cfg.Store.ConnMaxLifetime = v.GetDuration("store.conn_max_lifetime")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = v.GetString("google_calendar.timezone")

	// Contacts: a list of maps, which env vars cannot express.
	if list, ok := v.Get("contacts").([]interface{}); ok {
		for _, item := range list {
			if m, ok := item.(map[string]interface{}); ok {
				cfg.Contacts = append(cfg.Contacts, ContactConfig{
					Name:   getStringFromMap(m, "name"),
					Number: getStringFromMap(m, "number"),
					Type:   getStringFromMap(m, "type"),
				})
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 30)

	v.SetDefault("extraction.max_tasks", 10)
	v.SetDefault("extraction.remote.provider", "none")
	v.SetDefault("extraction.remote.timeout", "15s")
	v.SetDefault("extraction.remote.fallback_enabled", true)
	v.SetDefault("extraction.remote.retry_attempts", 2)
	v.SetDefault("extraction.remote.retry_delay", "500ms")

	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.max_open_conns", 10)
	v.SetDefault("store.max_idle_conns", 5)
	v.SetDefault("store.conn_max_lifetime", "30m")

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.timezone", "UTC")
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}

	r := c.Extraction.Remote
	if !validProviders[r.Provider] {
		return fmt.Errorf("extraction.remote.provider: unknown provider %q", r.Provider)
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("extraction.remote.timeout must be positive")
	}
	if r.Provider == "webhook" && r.WebhookURL == "" {
		return fmt.Errorf("extraction.remote.webhook_url is required for the webhook provider")
	}
	switch r.Provider {
	case "gemini", "qwen", "deepseek":
		if r.APIKey == "" {
			return fmt.Errorf("extraction.remote.api_key is required for the %s provider", r.Provider)
		}
	case "chain":
		enabled := 0
		for _, p := range r.Providers {
			if p.Enabled {
				enabled++
			}
		}
		if enabled == 0 {
			return fmt.Errorf("extraction.remote.providers needs at least one enabled entry for the chain provider")
		}
		if r.RetryAttempts < 1 {
			return fmt.Errorf("extraction.remote.retry_attempts must be at least 1")
		}
	}
	if c.Extraction.MaxTasks <= 0 {
		return fmt.Errorf("extraction.max_tasks must be positive")
	}

	if !validDrivers[c.Store.Driver] {
		return fmt.Errorf("store.driver: unknown driver %q", c.Store.Driver)
	}
	if c.Store.Driver == "postgres" && c.Store.DSN == "" {
		return fmt.Errorf("store.dsn is required for the postgres driver")
	}

	if c.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	return nil
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Env     string
	Server  ServerConfig
	API     APIConfig
	Redis   RedisConfig
	Session SessionConfig
	UI      UIConfig
	OTEL    OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// APIConfig holds the remote Arovia API configuration
type APIConfig struct {
	// BaseURL includes the /api prefix, e.g. http://localhost:8001/api
	BaseURL string
	// Timeout of zero leaves requests bounded only by the screen activation.
	Timeout      time.Duration
	ReadAttempts int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled   bool
	Host      string
	Port      int
	Password  string
	DB        int
	// KeyPrefix namespaces every key this service writes
	KeyPrefix string
	Timeout   time.Duration
}

// SessionConfig holds browser session configuration
type SessionConfig struct {
	CookieName    string
	SecureCookie  bool
	DefaultUserID string
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// UIConfig holds view-layer timings
type UIConfig struct {
	ToastTTL              time.Duration
	SOSLockout            time.Duration
	LanguageRedirectDelay time.Duration
	StreamHeartbeat       time.Duration
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

var defaults = map[string]interface{}{
	"ENV":                        "development",
	"SERVER_HOST":                "0.0.0.0",
	"SERVER_PORT":                3000,
	"ALLOWED_ORIGINS":            "*",
	"API_BASE_URL":               "http://localhost:8001/api",
	"API_TIMEOUT":                "0s",
	"API_READ_ATTEMPTS":          1,
	"REDIS_ENABLED":              false,
	"REDIS_HOST":                 "localhost",
	"REDIS_PORT":                 6379,
	"REDIS_PASSWORD":             "",
	"REDIS_DB":                   0,
	"REDIS_KEY_PREFIX":           "",
	"REDIS_TIMEOUT":              "2s",
	"SESSION_COOKIE_NAME":        "arovia_session",
	"SESSION_SECURE_COOKIE":      false,
	"SESSION_DEFAULT_USER_ID":    "user_123",
	"SESSION_IDLE_TTL":           "2h",
	"SESSION_SWEEP_INTERVAL":     "1m",
	"UI_TOAST_TTL":               "4s",
	"UI_SOS_LOCKOUT":             "3s",
	"UI_LANGUAGE_REDIRECT_DELAY": "1s",
	"UI_STREAM_HEARTBEAT":        "30s",
	"OTEL_SERVICE_NAME":          "arovia-web",
	"OTEL_SERVICE_VERSION":       "1.0.0",
	"OTEL_ENDPOINT":              "",
	"OTEL_ENABLED":               false,
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Missing .env is fine; the environment and defaults still apply
	_ = v.ReadInConfig()

	cfg := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Host:           v.GetString("SERVER_HOST"),
			Port:           v.GetInt("SERVER_PORT"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		},
		API: APIConfig{
			BaseURL:      strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
			Timeout:      v.GetDuration("API_TIMEOUT"),
			ReadAttempts: v.GetInt("API_READ_ATTEMPTS"),
		},
		Redis: RedisConfig{
			Enabled:   v.GetBool("REDIS_ENABLED"),
			Host:      v.GetString("REDIS_HOST"),
			Port:      v.GetInt("REDIS_PORT"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			KeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
			Timeout:   v.GetDuration("REDIS_TIMEOUT"),
		},
		Session: SessionConfig{
			CookieName:    v.GetString("SESSION_COOKIE_NAME"),
			SecureCookie:  v.GetBool("SESSION_SECURE_COOKIE"),
			DefaultUserID: v.GetString("SESSION_DEFAULT_USER_ID"),
			IdleTTL:       v.GetDuration("SESSION_IDLE_TTL"),
			SweepInterval: v.GetDuration("SESSION_SWEEP_INTERVAL"),
		},
		UI: UIConfig{
			ToastTTL:              v.GetDuration("UI_TOAST_TTL"),
			SOSLockout:            v.GetDuration("UI_SOS_LOCKOUT"),
			LanguageRedirectDelay: v.GetDuration("UI_LANGUAGE_REDIRECT_DELAY"),
			StreamHeartbeat:       v.GetDuration("UI_STREAM_HEARTBEAT"),
		},
		OTEL: OTELConfig{
			ServiceName:    v.GetString("OTEL_SERVICE_NAME"),
			ServiceVersion: v.GetString("OTEL_SERVICE_VERSION"),
			Endpoint:       v.GetString("OTEL_ENDPOINT"),
			Enabled:        v.GetBool("OTEL_ENABLED"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.API.ReadAttempts < 1 {
		return fmt.Errorf("API_READ_ATTEMPTS must be at least 1, got %d", c.API.ReadAttempts)
	}
	if c.UI.SOSLockout <= 0 {
		return fmt.Errorf("UI_SOS_LOCKOUT must be positive")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME is required")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// IsDevelopment reports whether the console log format should be used
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the listen address
func (c *ServerConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

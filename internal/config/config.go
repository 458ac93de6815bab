package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rencanalab/rpm-backend/internal/auth"
)

type ServerConfig struct {
	Port           string
	LogMode        string
	AllowedOrigins []string
}

type GeminiConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Users     []auth.UserAccount
}

type FormConfig struct {
	// MaxSessions caps jumlahPertemuan. The source revisions disagreed on
	// whether a cap exists; it is a single constant here.
	MaxSessions int
}

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Auth   AuthConfig
	Form   FormConfig
}

// Load reads config.yaml (optional) with an RPM_APP_* environment overlay and
// assembles the one Config value threaded through the rest of the service.
// The Gemini API key has no default: startup fails without it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("RPM_APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.log_mode", "development")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	})
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.model", "gemini-3-flash-preview")
	v.SetDefault("gemini.timeout_seconds", 180)
	v.SetDefault("gemini.max_retries", 3)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl_hours", 720)
	v.SetDefault("form.max_sessions", 12)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	apiKey := strings.TrimSpace(v.GetString("gemini.api_key"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing gemini.api_key (RPM_APP_GEMINI_API_KEY)")
	}

	jwtSecret := strings.TrimSpace(v.GetString("auth.jwt_secret"))
	if jwtSecret == "" {
		return nil, fmt.Errorf("missing auth.jwt_secret (RPM_APP_AUTH_JWT_SECRET)")
	}

	users := auth.DefaultAllowlist()
	var configured []auth.UserAccount
	if err := v.UnmarshalKey("auth.users", &configured); err != nil {
		return nil, fmt.Errorf("parse auth.users: %w", err)
	}
	if len(configured) > 0 {
		users = configured
	}

	maxSessions := v.GetInt("form.max_sessions")
	if maxSessions < 1 {
		maxSessions = 1
	}

	port := strings.TrimSpace(v.GetString("server.port"))
	if port != "" && !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &Config{
		Server: ServerConfig{
			Port:           port,
			LogMode:        v.GetString("server.log_mode"),
			AllowedOrigins: v.GetStringSlice("server.allowed_origins"),
		},
		Gemini: GeminiConfig{
			APIKey:     apiKey,
			BaseURL:    strings.TrimRight(strings.TrimSpace(v.GetString("gemini.base_url")), "/"),
			Model:      strings.TrimSpace(v.GetString("gemini.model")),
			Timeout:    time.Duration(v.GetInt("gemini.timeout_seconds")) * time.Second,
			MaxRetries: v.GetInt("gemini.max_retries"),
		},
		Auth: AuthConfig{
			JWTSecret: jwtSecret,
			TokenTTL:  time.Duration(v.GetInt("auth.token_ttl_hours")) * time.Hour,
			Users:     users,
		},
		Form: FormConfig{
			MaxSessions: maxSessions,
		},
	}, nil
}

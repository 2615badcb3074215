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

	// Commute assistant specifics
	Dialogue   DialogueConfig
	Backend    BackendConfig
	Gemini     GeminiConfig
	Classifier ClassifierConfig
	RateLimit  RateLimitConfig
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

// DialogueConfig tunes the turn controller and the session store.
type DialogueConfig struct {
	HistoryLength       int
	ConfidenceThreshold float64
	MinUtteranceWords   int
	MaxSessions         int
	SessionTTL          time.Duration
}

// BackendConfig points at the transit backend that owns geocoding, arrivals,
// routing and user data.
type BackendConfig struct {
	BaseURL        string
	LookupTimeout  time.Duration
	RoutingTimeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ClassifierConfig struct {
	URL     string
	Timeout time.Duration
}

// RateLimitConfig bounds per-user request rates on the chat endpoint.
type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Dialogue
	cfg.Dialogue.HistoryLength = viper.GetInt("dialogue.history_length")
	cfg.Dialogue.ConfidenceThreshold = viper.GetFloat64("dialogue.confidence_threshold")
	cfg.Dialogue.MinUtteranceWords = viper.GetInt("dialogue.min_utterance_words")
	cfg.Dialogue.MaxSessions = viper.GetInt("dialogue.max_sessions")
	cfg.Dialogue.SessionTTL = viper.GetDuration("dialogue.session_ttl")

	// Transit backend
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	cfg.Backend.LookupTimeout = viper.GetDuration("backend.lookup_timeout")
	cfg.Backend.RoutingTimeout = viper.GetDuration("backend.routing_timeout")
	if backendURL := viper.GetString("backend_base_url"); backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Intent classifier
	cfg.Classifier.URL = viper.GetString("classifier.url")
	cfg.Classifier.Timeout = viper.GetDuration("classifier.timeout")
	if classifierURL := viper.GetString("classifier_url"); classifierURL != "" {
		cfg.Classifier.URL = classifierURL
	}

	// Rate limit
	cfg.RateLimit.PerSecond = viper.GetFloat64("rate_limit.per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini.api_key is required - set it in config.yaml or GEMINI_API_KEY")
	}
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required - set it in config.yaml or BACKEND_BASE_URL")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("dialogue.history_length", 7)
	viper.SetDefault("dialogue.confidence_threshold", 0.6)
	viper.SetDefault("dialogue.min_utterance_words", 2)
	viper.SetDefault("dialogue.max_sessions", 4096)
	viper.SetDefault("dialogue.session_ttl", "30m")

	viper.SetDefault("backend.lookup_timeout", "5s")
	viper.SetDefault("backend.routing_timeout", "10s")

	viper.SetDefault("gemini.model", "gemini-2.5-flash")

	viper.SetDefault("classifier.url", "http://localhost:8001")
	viper.SetDefault("classifier.timeout", "5s")

	viper.SetDefault("rate_limit.per_second", 2)
	viper.SetDefault("rate_limit.burst", 5)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrUnknownAIProvider        = errors.New("unknown AI provider")
)

const (
	AIProviderOpenAI = "openai"
	AIProviderGemini = "gemini"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Services  ServicesConfig
	Providers ProvidersConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	AIProvider     string
	OpenAIAPIKey   string
	OpenAIModel    string
	GoogleAIAPIKey string
	GeminiModel    string
	MozAccessID    string
	MozSecretKey   string
	WebAppURI      string
}

// ProvidersConfig holds timeouts and retry settings for third-party calls
type ProvidersConfig struct {
	MozTimeout           time.Duration
	MozMaxAttempts       int
	MozRequestsPerSecond float64
	AITimeout            time.Duration
	PageFetchTimeout     time.Duration
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// RateLimitConfig holds limits for AI generation endpoints
type RateLimitConfig struct {
	GenerationsPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	// MetricsToken guards /metrics; the route is not served when empty
	MetricsToken string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Services configuration
	cfg.Services.AIProvider = getEnvWithDefault("AI_PROVIDER", AIProviderOpenAI)
	switch cfg.Services.AIProvider {
	case AIProviderOpenAI:
		if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
			return nil, err
		}
	case AIProviderGemini:
		if cfg.Services.GoogleAIAPIKey, err = requireEnv("GOOGLE_AI_API_KEY"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("AI_PROVIDER=%q: %w", cfg.Services.AIProvider, ErrUnknownAIProvider)
	}
	cfg.Services.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
	cfg.Services.GeminiModel = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-pro")
	// Moz credentials are optional; without them every metrics lookup degrades
	cfg.Services.MozAccessID = os.Getenv("MOZ_ACCESS_ID")
	cfg.Services.MozSecretKey = os.Getenv("MOZ_SECRET_KEY")
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Provider tuning
	if cfg.Providers.MozTimeout, err = durationEnv("MOZ_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.Providers.MozMaxAttempts, err = intEnv("MOZ_MAX_ATTEMPTS", "3"); err != nil {
		return nil, err
	}
	mozRPS := getEnvWithDefault("MOZ_REQUESTS_PER_SECOND", "1")
	cfg.Providers.MozRequestsPerSecond, err = strconv.ParseFloat(mozRPS, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MOZ_REQUESTS_PER_SECOND: %w", err)
	}
	if cfg.Providers.AITimeout, err = durationEnv("AI_TIMEOUT", "90s"); err != nil {
		return nil, err
	}
	if cfg.Providers.PageFetchTimeout, err = durationEnv("PAGE_FETCH_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = intEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	if cfg.RateLimit.GenerationsPerMinute, err = intEnv("AI_RATE_LIMIT_PER_MINUTE", "10"); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.MetricsToken = os.Getenv("METRICS_TOKEN")

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnv(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func durationEnv(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}

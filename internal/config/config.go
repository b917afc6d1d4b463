package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// Rate limiter backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds all service configuration values.
type Config struct {
	Env      Environment
	Debug    bool
	LogLevel string

	Port          string
	CORSOrigin    string
	TrustXFF      bool
	MetricsListen string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	ModelID            string
	ModelMaxTokens     int
	ModelTimeout       time.Duration
	ModelRPS           float64
	ModelBurst         int

	RateLimit           int
	RateWindow          time.Duration
	RateLimitBackend    string
	RateLimitMaxClients int
	RateLimitSweep      time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	// parse errors are held until Validate so they are reported together
	parseErrs []string
}

// Load reads configuration from the environment with per-environment defaults.
func Load() *Config {
	cfg := &Config{
		Env:      Environment(strings.ToLower(getEnvOrDefault("APP_ENV", "development"))),
		LogLevel: strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
	}
	errs := &cfg.parseErrs

	switch cfg.Env {
	case Production:
		cfg.Debug = getBoolOrDefault("DEBUG", false)
		cfg.TrustXFF = getBoolOrDefault("TRUST_XFF", true)
	default:
		cfg.Env = Development // Normalize unknown envs to development
		cfg.Debug = getBoolOrDefault("DEBUG", true)
		cfg.TrustXFF = getBoolOrDefault("TRUST_XFF", false)
		if cfg.LogLevel == "info" {
			cfg.LogLevel = "debug" // Dev default
		}
	}

	cfg.Port = getEnvOrDefault("PORT", "3001")
	cfg.CORSOrigin = getEnvOrDefault("CORS_ORIGIN", "http://localhost:5173")
	cfg.MetricsListen = getEnvOrDefault("METRICS_LISTEN", ":9090")
	if strings.EqualFold(cfg.MetricsListen, "off") {
		cfg.MetricsListen = ""
	}

	cfg.AWSRegion = getEnvOrDefault("AWS_REGION", "us-east-1")
	cfg.AWSAccessKeyID = getEnvOrDefault("AWS_ACCESS_KEY_ID", "")
	cfg.AWSSecretAccessKey = getEnvOrDefault("AWS_SECRET_ACCESS_KEY", "")
	cfg.ModelID = getEnvOrDefault("BEDROCK_MODEL_ID", "anthropic.claude-3-sonnet-20240229-v1:0")
	cfg.ModelMaxTokens = parseInt("MODEL_MAX_TOKENS", 200, errs)
	cfg.ModelTimeout = parseDuration("MODEL_TIMEOUT", 10*time.Second, errs)
	cfg.ModelRPS = parseFloat("MODEL_RPS", 0, errs)
	cfg.ModelBurst = parseInt("MODEL_BURST", 1, errs)

	cfg.RateLimit = parseInt("RATE_LIMIT", 10, errs)
	cfg.RateWindow = parseDuration("RATE_WINDOW", 60*time.Second, errs)
	cfg.RateLimitBackend = strings.ToLower(getEnvOrDefault("RATE_LIMIT_BACKEND", BackendMemory))
	cfg.RateLimitMaxClients = parseInt("RATE_LIMIT_MAX_CLIENTS", 10000, errs)
	cfg.RateLimitSweep = parseDuration("RATE_LIMIT_SWEEP", time.Minute, errs)

	cfg.RedisAddr = getEnvOrDefault("REDIS_ADDR", "")
	cfg.RedisPassword = getEnvOrDefault("REDIS_PASSWORD", "")
	cfg.RedisDB = parseInt("REDIS_DB", 0, errs)
	cfg.RedisPrefix = getEnvOrDefault("REDIS_PREFIX", "palette:ratelimit")

	return cfg
}

// Addr is the HTTP listen address derived from Port.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return net.JoinHostPort("", c.Port)
}

// HasStaticCredentials reports whether both AWS keys were supplied.
func (c *Config) HasStaticCredentials() bool {
	return c.AWSAccessKeyID != "" && c.AWSSecretAccessKey != ""
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == Development
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == Production
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	errs := append([]string(nil), c.parseErrs...)

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel))
	}
	if c.Port == "" {
		errs = append(errs, "PORT is required")
	}
	if c.ModelID == "" {
		errs = append(errs, "BEDROCK_MODEL_ID is required")
	}
	if c.ModelMaxTokens <= 0 {
		errs = append(errs, "MODEL_MAX_TOKENS must be positive")
	}
	if c.ModelTimeout <= 0 {
		errs = append(errs, "MODEL_TIMEOUT must be positive")
	}
	if c.ModelRPS < 0 {
		errs = append(errs, "MODEL_RPS must not be negative")
	}
	if c.ModelRPS > 0 && c.ModelBurst <= 0 {
		errs = append(errs, "MODEL_BURST must be positive when MODEL_RPS is set")
	}
	if (c.AWSAccessKeyID == "") != (c.AWSSecretAccessKey == "") {
		errs = append(errs, "AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set together")
	}

	if c.RateLimit <= 0 {
		errs = append(errs, "RATE_LIMIT must be positive")
	}
	if c.RateWindow <= 0 {
		errs = append(errs, "RATE_WINDOW must be positive")
	}
	if c.RateLimitMaxClients <= 0 {
		errs = append(errs, "RATE_LIMIT_MAX_CLIENTS must be positive")
	}
	if c.RateLimitSweep <= 0 {
		errs = append(errs, "RATE_LIMIT_SWEEP must be positive")
	}
	switch c.RateLimitBackend {
	case BackendMemory:
	case BackendRedis:
		if c.RedisAddr == "" {
			errs = append(errs, "REDIS_ADDR is required when RATE_LIMIT_BACKEND=redis")
		}
		if c.RedisDB < 0 {
			errs = append(errs, "REDIS_DB must not be negative")
		}
	default:
		errs = append(errs, fmt.Sprintf("RATE_LIMIT_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.RateLimitBackend))
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

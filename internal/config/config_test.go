package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "DEBUG", "LOG_LEVEL", "PORT", "CORS_ORIGIN", "TRUST_XFF", "METRICS_LISTEN",
		"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "BEDROCK_MODEL_ID",
		"MODEL_MAX_TOKENS", "MODEL_TIMEOUT", "MODEL_RPS", "MODEL_BURST",
		"RATE_LIMIT", "RATE_WINDOW", "RATE_LIMIT_BACKEND", "RATE_LIMIT_MAX_CLIENTS", "RATE_LIMIT_SWEEP",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_PREFIX",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	assert.Equal(t, Development, cfg.Env)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.TrustXFF)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, ":3001", cfg.Addr())
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "anthropic.claude-3-sonnet-20240229-v1:0", cfg.ModelID)
	assert.Equal(t, 200, cfg.ModelMaxTokens)
	assert.Equal(t, 10*time.Second, cfg.ModelTimeout)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Equal(t, BackendMemory, cfg.RateLimitBackend)
	assert.Equal(t, 10000, cfg.RateLimitMaxClients)
	assert.Equal(t, "palette:ratelimit", cfg.RedisPrefix)
	assert.Equal(t, ":9090", cfg.MetricsListen)
	assert.False(t, cfg.HasStaticCredentials())
	require.NoError(t, cfg.Validate())
}

func TestLoad_Production(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "PRODUCTION")
	t.Setenv("RATE_WINDOW", "30")
	t.Setenv("MODEL_TIMEOUT", "2500ms")
	t.Setenv("METRICS_LISTEN", "off")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.TrustXFF)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.RateWindow)
	assert.Equal(t, 2500*time.Millisecond, cfg.ModelTimeout)
	assert.Empty(t, cfg.MetricsListen)
}

func TestLoad_UnknownEnvIsDevelopment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "staging")
	assert.True(t, Load().IsDevelopment())
}

func TestValidate_CollectsErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT", "ten")
	t.Setenv("RATE_LIMIT_BACKEND", "redis")
	t.Setenv("MODEL_RPS", "-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")

	err := Load().Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "RATE_LIMIT must be an integer")
	assert.Contains(t, msg, "REDIS_ADDR is required")
	assert.Contains(t, msg, "MODEL_RPS must not be negative")
	assert.Contains(t, msg, "must be set together")
}

func TestValidate_LogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "WARN")
	cfg := Load()
	assert.Equal(t, "warn", cfg.LogLevel)
	require.NoError(t, cfg.Validate())

	t.Setenv("LOG_LEVEL", "verbose")
	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `LOG_LEVEL must be debug, info, warn or error, got "verbose"`)
}

func TestValidate_UnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_BACKEND", "memcached")
	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `got "memcached"`)
}

func TestAddr_AcceptsHostPort(t *testing.T) {
	cfg := &Config{Port: "127.0.0.1:8080"}
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment represents the application environment
type Environment string

const (
	// Development environment - localhost, debug enabled
	Development Environment = "development"
	// Production environment - real domain, production settings
	Production Environment = "production"
)

// String returns the environment name
func (e Environment) String() string {
	return string(e)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getBoolOrDefault accepts the usual strconv spellings (true, 1, FALSE, ...)
func getBoolOrDefault(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(getEnvOrDefault(key, ""))
	if err != nil {
		return defaultValue
	}
	return b
}

// parseInt records a parse failure in errs and returns the default.
func parseInt(key string, defaultValue int, errs *[]string) int {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, key+" must be an integer, got "+strconv.Quote(raw))
		return defaultValue
	}
	return n
}

func parseFloat(key string, defaultValue float64, errs *[]string) float64 {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, key+" must be a number, got "+strconv.Quote(raw))
		return defaultValue
	}
	return f
}

// parseDuration takes Go durations ("10s", "1m"); a bare integer means seconds.
func parseDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, key+" must be a duration like 10s, got "+strconv.Quote(raw))
		return defaultValue
	}
	return d
}

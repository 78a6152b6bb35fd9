package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate budget for one endpoint. Path supports prefix
// matching when it ends with "/".
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint budgets. Generation
// endpoints fan out to the LLM and get the tightest budgets; auth gets a
// moderate one to slow down credential stuffing; reads fall through to the
// default limit.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/api/portfolios/resume", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/api/portfolios/generate", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/api/resumes/optimize", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/api/cover-letters/generate", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/api/career-guides/generate", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/api/interviews/start", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},

		{Path: "/api/interviews/answer", Method: "POST", Limit: 120, Window: time.Hour, Burst: 20},
		{Path: "/api/portfolios/chat/", Method: "POST", Limit: 300, Window: time.Hour, Burst: 30},
		{Path: "/api/resumes/chat", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},
		{Path: "/api/job-descriptions", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		{Path: "/api/auth/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}

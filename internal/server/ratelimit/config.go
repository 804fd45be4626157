package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig limits one method on one path. A Path ending in "/" is a prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per Window; 0 is unlimited
	Window time.Duration
	Burst  int // defaults to Limit when 0
}

// LoadConfig reads RATE_LIMIT_* variables. Malformed values fall back to defaults.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTimeout:     envDuration("RATE_LIMIT_IDLE_TIMEOUT", time.Hour),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits for the portal API.
// Reads use the default limit; /health and /events are unlimited in MatchEndpoint.
func DefaultEndpointConfigs() []EndpointConfig {
	write := func(path, method string) EndpointConfig {
		return EndpointConfig{Path: path, Method: method, Limit: 100, Window: time.Minute, Burst: 10}
	}
	return []EndpointConfig{
		// Credential checks are bcrypt-bound; keep guessing slow.
		{Path: "/login", Method: http.MethodPost, Limit: 10, Window: time.Minute, Burst: 5},

		// simulated AI work
		{Path: "/resume", Method: http.MethodPost, Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/chat", Method: http.MethodPost, Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/skill-gap", Method: http.MethodPost, Limit: 30, Window: time.Minute, Burst: 5},

		write("/profile/", http.MethodPost),
		write("/profile/", http.MethodPut),
		write("/applications", http.MethodPost),
		write("/job-posts", http.MethodPost),
		write("/notifications/", http.MethodPost),
		write("/settings/", http.MethodPost),
	}
}

func envInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}

// parseIPList turns "a, b,,c" into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}

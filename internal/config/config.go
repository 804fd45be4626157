// Package config provides environment-driven configuration for the portal.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Completion modes for the profile completion indicator.
const (
	CompletionSeeded  = "seeded"
	CompletionDerived = "derived"
)

// Defaults for the simulated latencies.
const (
	DefaultLoginDelay  = 1200 * time.Millisecond
	DefaultChatDelay   = 800 * time.Millisecond
	DefaultResumeDelay = 1200 * time.Millisecond
)

// Config holds the portal engine settings.
type Config struct {
	LoginDelay     time.Duration // login confirmation latency
	ChatDelay      time.Duration // chatbot reply latency
	ResumeDelay    time.Duration // resume parse latency
	CompletionMode string        // "seeded" or "derived"
	LogLevel       string        // debug, info, warn, error
}

// Default returns the configuration used when no environment overrides are set.
func Default() *Config {
	return &Config{
		LoginDelay:     DefaultLoginDelay,
		ChatDelay:      DefaultChatDelay,
		ResumeDelay:    DefaultResumeDelay,
		CompletionMode: CompletionSeeded,
		LogLevel:       "info",
	}
}

// LoadConfig reads PORTAL_* environment variables over the defaults.
func LoadConfig() (*Config, error) {
	cfg := Default()

	var err error
	if cfg.LoginDelay, err = envDuration("PORTAL_LOGIN_DELAY", cfg.LoginDelay); err != nil {
		return nil, err
	}
	if cfg.ChatDelay, err = envDuration("PORTAL_CHAT_DELAY", cfg.ChatDelay); err != nil {
		return nil, err
	}
	if cfg.ResumeDelay, err = envDuration("PORTAL_RESUME_DELAY", cfg.ResumeDelay); err != nil {
		return nil, err
	}
	if mode := os.Getenv("PORTAL_COMPLETION_MODE"); mode != "" {
		cfg.CompletionMode = mode
	}
	if level := os.Getenv("PORTAL_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.LoginDelay < 0 || c.ChatDelay < 0 || c.ResumeDelay < 0 {
		return fmt.Errorf("config error: delays must be non-negative")
	}
	switch c.CompletionMode {
	case CompletionSeeded, CompletionDerived:
	default:
		return fmt.Errorf("config error: unknown completion mode %q (want %q or %q)",
			c.CompletionMode, CompletionSeeded, CompletionDerived)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.LogLevel)
	}
	return nil
}

// envDuration accepts Go duration syntax or a bare millisecond count.
func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return d, nil
}

// envInt reads an integer variable, returning fallback when it is unset.
func envInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}

package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

const (
	// DefaultJWTExpirationHours is the session token lifetime when unset.
	DefaultJWTExpirationHours = 8
	minJWTSecretLen           = 16
)

// JWTConfig holds the session token signing settings.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
	Ephemeral       bool // secret was generated for this process only
}

// NewJWTConfig reads JWT_SECRET and JWT_EXPIRATION_HOURS. Without JWT_SECRET a
// random secret is generated, so tokens do not survive a restart.
func NewJWTConfig() (*JWTConfig, error) {
	hours, err := envInt("JWT_EXPIRATION_HOURS", DefaultJWTExpirationHours)
	if err != nil {
		return nil, err
	}
	c := &JWTConfig{Secret: os.Getenv("JWT_SECRET"), ExpirationHours: hours}

	if c.Secret == "" {
		if c.Secret, err = randomSecret(); err != nil {
			return nil, err
		}
		c.Ephemeral = true
	}

	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// TTL is the lifetime of a freshly issued token.
func (c *JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

func (c *JWTConfig) normalize() error {
	if len(c.Secret) < minJWTSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLen)
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// MaxBcryptCost bounds login latency; every login attempt pays one comparison.
const MaxBcryptCost = 14

// PasswordConfig hashes and verifies the demo account secrets.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional, appended to every secret before hashing
}

// NewPasswordConfig reads BCRYPT_COST (default 10) and PASSWORD_PEPPER.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost, err := envInt("BCRYPT_COST", bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	c := &PasswordConfig{BcryptCost: cost, Pepper: os.Getenv("PASSWORD_PEPPER")}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// normalize rejects costs bcrypt would refuse or that make login crawl.
func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > MaxBcryptCost {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", c.BcryptCost, bcrypt.MinCost, MaxBcryptCost)
	}
	return nil
}

// HashPassword returns the bcrypt hash of secret.
func (c *PasswordConfig) HashPassword(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(secret), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether secret matches hash exactly. Comparison is
// case sensitive and never trims.
func (c *PasswordConfig) VerifyPassword(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), c.peppered(secret)) == nil
}

func (c *PasswordConfig) peppered(secret string) []byte {
	return []byte(secret + c.Pepper)
}

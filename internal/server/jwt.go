package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/placement-portal/internal/config"
	"github.com/jonathan/placement-portal/internal/server/middleware"
)

const tokenIssuer = "placement-portal"

// Claims binds a token to one portal session.
type Claims struct {
	SessionID uuid.UUID `json:"session_id"`
	jwt.RegisteredClaims
}

// GetSessionID implements middleware.SessionIDGetter.
func (c *Claims) GetSessionID() uuid.UUID {
	return c.SessionID
}

// JWTService issues and validates session tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{secret: []byte(cfg.Secret), ttl: cfg.TTL(), now: time.Now}
}

// GenerateToken signs a token for sessionID.
func (s *JWTService) GenerateToken(sessionID uuid.UUID) (string, error) {
	issued := s.now()
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks signature, issuer and lifetime, and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token string is empty")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	claims := &Claims{}
	if _, err := parser.ParseWithClaims(tokenString, claims, s.key); err != nil {
		return nil, classifyTokenError(err)
	}
	if claims.SessionID == uuid.Nil {
		return nil, errors.New("token has no session")
	}
	return claims, nil
}

func (s *JWTService) key(*jwt.Token) (any, error) {
	return s.secret, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("invalid token signature: %w", err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("token expired: %w", err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("malformed token: %w", err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return fmt.Errorf("unknown token issuer: %w", err)
	}
	return fmt.Errorf("failed to parse token: %w", err)
}

// AsTokenValidator adapts s to the auth middleware.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return tokenValidator{s}
}

type tokenValidator struct {
	service *JWTService
}

func (v tokenValidator) ValidateToken(tokenString string) (middleware.SessionIDGetter, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

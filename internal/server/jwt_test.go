package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/placement-portal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestJWTService(_ *testing.T, expirationHours int) *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: expirationHours,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := setupTestJWTService(t, 8)
	sessionID := uuid.New()

	token, err := service.GenerateToken(sessionID)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, sessionID, claims.GetSessionID())
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTService_Expired(t *testing.T) {
	service := setupTestJWTService(t, 1)
	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	service.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token expired")
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := setupTestJWTService(t, 8).GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "a-completely-different-secret-value", ExpirationHours: 8})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token signature")
}

func TestJWTService_RejectsMalformedAndEmpty(t *testing.T) {
	service := setupTestJWTService(t, 8)

	_, err := service.ValidateToken("")
	assert.Error(t, err)

	_, err = service.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	service := setupTestJWTService(t, 8)
	claims := &Claims{SessionID: uuid.New(), RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignIssuer(t *testing.T) {
	service := setupTestJWTService(t, 8)
	claims := &Claims{SessionID: uuid.New(), RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secret)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown token issuer")
}

func TestJWTService_RejectsNilSession(t *testing.T) {
	service := setupTestJWTService(t, 8)
	token, err := service.GenerateToken(uuid.Nil)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := setupTestJWTService(t, 8)
	sessionID := uuid.New()
	token, err := service.GenerateToken(sessionID)
	require.NoError(t, err)

	getter, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, getter.GetSessionID())
}

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testTokenValidator struct {
	validTokens map[string]uuid.UUID
}

func newTestTokenValidator() *testTokenValidator {
	return &testTokenValidator{validTokens: make(map[string]uuid.UUID)}
}

func (v *testTokenValidator) ValidateToken(tokenString string) (SessionIDGetter, error) {
	id, ok := v.validTokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return testClaims(id), nil
}

type testClaims uuid.UUID

func (c testClaims) GetSessionID() uuid.UUID {
	return uuid.UUID(c)
}

func serve(t *testing.T, mw func(http.Handler) http.Handler, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()
	var got uuid.UUID
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, err := GetSessionID(r)
		require.NoError(t, err)
		got = id
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	mw(handler).ServeHTTP(w, req)
	return w, got, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := newTestTokenValidator()
	sessionID := uuid.New()
	tokens.validTokens["good"] = sessionID

	live := func(id uuid.UUID) bool { return id == sessionID }
	w, got, called := serve(t, AuthMiddleware(tokens, live), "Bearer good")

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sessionID, got)
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	tokens := newTestTokenValidator()
	tokens.validTokens["good"] = uuid.New()

	w, _, called := serve(t, AuthMiddleware(tokens, nil), "bearer good")
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tokens := newTestTokenValidator()
	stale := uuid.New()
	tokens.validTokens["stale"] = stale
	tokens.validTokens["good"] = uuid.New()
	live := func(id uuid.UUID) bool { return id != stale }

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic good"},
		{name: "no token", header: "Bearer"},
		{name: "extra parts", header: "Bearer good extra"},
		{name: "unknown token", header: "Bearer nope"},
		{name: "ended session", header: "Bearer stale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, called := serve(t, AuthMiddleware(tokens, live), tt.header)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestGetSessionID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetSessionID(req)
	assert.Error(t, err)

	id := uuid.New()
	req = req.WithContext(context.WithValue(req.Context(), SessionIDKey(), id))
	got, err := GetSessionID(req)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

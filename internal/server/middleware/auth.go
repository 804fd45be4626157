// Package middleware provides HTTP middleware for session authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const sessionIDKey ContextKey = "sessionID"

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (SessionIDGetter, error)
}

// SessionIDGetter extracts the session id from token claims.
type SessionIDGetter interface {
	GetSessionID() uuid.UUID
}

// SessionChecker reports whether id names the live session.
type SessionChecker func(id uuid.UUID) bool

// AuthMiddleware rejects requests without a valid bearer token bound to a live
// session and stores the session id in the request context.
func AuthMiddleware(tokens TokenValidator, live SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			sessionID := claims.GetSessionID()
			if live != nil && !live(sessionID) {
				// Valid signature, but the session it names has ended.
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken parses a case-insensitive "Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// GetSessionID extracts the authenticated session id from the request context.
func GetSessionID(r *http.Request) (uuid.UUID, error) {
	id, ok := r.Context().Value(sessionIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("session ID not found in request context")
	}
	return id, nil
}

// SessionIDKey returns the context key for the session id (for testing purposes).
func SessionIDKey() ContextKey {
	return sessionIDKey
}

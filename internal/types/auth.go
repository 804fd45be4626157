package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LoginRequest represents a login attempt for a specific role. Identity and
// Secret are not validated here: a blank one is an invalid credential, decided
// by the session manager like any other.
type LoginRequest struct {
	Role     Role   `json:"role" validate:"required,oneof=student faculty staff admin company"`
	Identity string `json:"identity"`
	Secret   string `json:"secret"`
}

// Session is the single authenticated user, or none.
type Session struct {
	ID        uuid.UUID `json:"id"`
	User      *User     `json:"user"`
	StartedAt time.Time `json:"started_at"`
}

// LoginResponse represents the login response with user data and session token.
type LoginResponse struct {
	User      *User     `json:"user"`
	SessionID uuid.UUID `json:"session_id"`
	Token     string    `json:"token"`
}

// SessionResponse describes the live session and its navigation state.
type SessionResponse struct {
	User       *User           `json:"user"`
	SessionID  uuid.UUID       `json:"session_id"`
	Navigation NavigationState `json:"navigation"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

package session

import (
	"fmt"

	"github.com/jonathan/placement-portal/internal/types"
)

// ErrInvalidCredentials indicates the identity is unknown or the secret does not match.
type ErrInvalidCredentials struct {
	Identity string
}

func (e *ErrInvalidCredentials) Error() string {
	return fmt.Sprintf("invalid credentials for %q", e.Identity)
}

// UserMessage is the notice shown to the user.
func (e *ErrInvalidCredentials) UserMessage() string {
	return "Invalid credentials"
}

// ErrRoleMismatch indicates a valid secret for an account of a different role.
type ErrRoleMismatch struct {
	Requested types.Role
	Actual    types.Role
}

func (e *ErrRoleMismatch) Error() string {
	return fmt.Sprintf("role mismatch: requested %s, account is %s", e.Requested, e.Actual)
}

// UserMessage is the notice shown to the user.
func (e *ErrRoleMismatch) UserMessage() string {
	return "Role mismatch"
}

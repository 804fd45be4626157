// Package session resolves login attempts into the single active session.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/placement-portal/internal/types"
)

// CredentialSource is the read-only account table the manager authenticates against.
type CredentialSource interface {
	Verify(identity, secret string) bool
	Lookup(identity string) (*types.User, bool)
}

// Manager owns creation and destruction of the session. It holds at most one.
// User records live as long as the manager, so edits survive logout and re-login.
// It is not safe for concurrent use; the portal serializes access.
type Manager struct {
	credentials CredentialSource
	records     map[string]*types.User
	current     *types.Session
	now         func() time.Time
}

// NewManager creates a manager with no active session.
func NewManager(credentials CredentialSource) *Manager {
	return &Manager{
		credentials: credentials,
		records:     make(map[string]*types.User),
		now:         time.Now,
	}
}

// Authenticate checks the triple and, on success, replaces the session with the
// matched user. The returned user is the live record, the same pointer on every
// login of that identity; the caller hands it to the profile store. On failure
// the session is left unchanged.
func (m *Manager) Authenticate(role types.Role, identity, secret string) (*types.User, error) {
	if !m.credentials.Verify(identity, secret) {
		return nil, &ErrInvalidCredentials{Identity: identity}
	}
	user, ok := m.credentials.Lookup(identity)
	if !ok {
		return nil, &ErrInvalidCredentials{Identity: identity}
	}
	if user.Role != role {
		return nil, &ErrRoleMismatch{Requested: role, Actual: user.Role}
	}
	user = m.record(identity, user)

	m.current = &types.Session{
		ID:        uuid.New(),
		User:      user,
		StartedAt: m.now(),
	}
	return user, nil
}

// record returns the live record for identity, adopting seed on first login.
func (m *Manager) record(identity string, seed *types.User) *types.User {
	if live, ok := m.records[identity]; ok {
		return live
	}
	m.records[identity] = seed
	return seed
}

// Logout clears the session. Logging out with no session is a no-op.
func (m *Manager) Logout() {
	m.current = nil
}

// Active reports whether a session exists.
func (m *Manager) Active() bool {
	return m.current != nil
}

// ID returns the session id, or uuid.Nil without a session.
func (m *Manager) ID() uuid.UUID {
	if m.current == nil {
		return uuid.Nil
	}
	return m.current.ID
}

// Current returns a snapshot of the session, or nil.
func (m *Manager) Current() *types.Session {
	if m.current == nil {
		return nil
	}
	snapshot := *m.current
	snapshot.User = m.current.User.Clone()
	return &snapshot
}

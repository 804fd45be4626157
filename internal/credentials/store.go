// Package credentials provides the closed, read-only table of demo accounts.
package credentials

import (
	"fmt"

	"github.com/jonathan/placement-portal/internal/catalog"
	"github.com/jonathan/placement-portal/internal/config"
	"github.com/jonathan/placement-portal/internal/types"
)

// Store maps identity to a hashed secret and to the seeded user record.
// It is immutable after construction.
type Store struct {
	hasher  *config.PasswordConfig
	secrets map[string]string
	users   map[string]*types.User
}

// NewStore hashes the demo accounts from the catalog.
func NewStore(hasher *config.PasswordConfig) (*Store, error) {
	accounts := catalog.Accounts()
	s := &Store{
		hasher:  hasher,
		secrets: make(map[string]string, len(accounts)),
		users:   make(map[string]*types.User, len(accounts)),
	}
	for identity, account := range accounts {
		hash, err := hasher.HashPassword(account.Secret)
		if err != nil {
			return nil, fmt.Errorf("failed to hash secret for %s: %w", identity, err)
		}
		s.secrets[identity] = hash
		s.users[identity] = account.User
	}
	return s, nil
}

// Verify reports whether identity exists and secret matches it exactly.
func (s *Store) Verify(identity, secret string) bool {
	hash, ok := s.secrets[identity]
	if !ok {
		return false
	}
	return s.hasher.VerifyPassword(secret, hash)
}

// Lookup returns a fresh copy of the seed record for identity. The session
// manager adopts it as the live record on first login.
func (s *Store) Lookup(identity string) (*types.User, bool) {
	user, ok := s.users[identity]
	if !ok {
		return nil, false
	}
	return user.Clone(), true
}

// Len returns the number of known identities.
func (s *Store) Len() int {
	return len(s.users)
}

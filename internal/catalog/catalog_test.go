package catalog

import (
	"testing"

	"github.com/jonathan/placement-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccounts_OnePerRole(t *testing.T) {
	accounts := Accounts()
	require.Len(t, accounts, len(types.Roles))

	seen := map[types.Role]bool{}
	for identity, account := range accounts {
		require.NotNil(t, account.User)
		assert.Equal(t, identity, account.User.Identity)
		assert.NotEmpty(t, account.Secret)
		seen[account.User.Role] = true
	}
	for _, role := range types.Roles {
		assert.True(t, seen[role], role)
	}
}

func TestAccounts_ReturnsFreshCopies(t *testing.T) {
	first := Accounts()["student@college.edu"].User
	first.Skills = append(first.Skills, "Haskell")
	first.DisplayName = "changed"

	second := Accounts()["student@college.edu"].User
	assert.Equal(t, "Arjun Sharma", second.DisplayName)
	assert.NotContains(t, second.Skills, "Haskell")
}

func TestNotificationStore_MarkRead(t *testing.T) {
	s := NewNotificationStore()
	require.Equal(t, 1, s.Unread())

	require.NoError(t, s.MarkRead(1))
	assert.Equal(t, 0, s.Unread())
	assert.True(t, s.List()[0].Read)

	require.NoError(t, s.MarkRead(1), "marking twice is harmless")

	err := s.MarkRead(99)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationStore_ListIsACopy(t *testing.T) {
	s := NewNotificationStore()
	items := s.List()
	items[0].Read = true

	assert.Equal(t, 1, s.Unread())
}

func TestJobs_StartsEmpty(t *testing.T) {
	assert.Empty(t, Jobs())
}

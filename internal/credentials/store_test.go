package credentials

import (
	"testing"

	"github.com/jonathan/placement-portal/internal/config"
	"github.com/jonathan/placement-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(&config.PasswordConfig{BcryptCost: 4})
	require.NoError(t, err)
	return store
}

func TestStore_Verify(t *testing.T) {
	store := setupTestStore(t)

	tests := []struct {
		name     string
		identity string
		secret   string
		want     bool
	}{
		{name: "student", identity: "student@college.edu", secret: "student123", want: true},
		{name: "company", identity: "company@techcorp.com", secret: "company123", want: true},
		{name: "wrong secret", identity: "staff@college.edu", secret: "wrongpass", want: false},
		{name: "case differs", identity: "admin@college.edu", secret: "ADMIN123", want: false},
		{name: "unknown identity", identity: "nobody@college.edu", secret: "student123", want: false},
		{name: "secret of another user", identity: "faculty@college.edu", secret: "student123", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.Verify(tt.identity, tt.secret))
		})
	}
}

func TestStore_Lookup(t *testing.T) {
	store := setupTestStore(t)
	assert.Equal(t, 5, store.Len())

	user, ok := store.Lookup("student@college.edu")
	require.True(t, ok)
	assert.Equal(t, types.RoleStudent, user.Role)
	assert.Equal(t, "Arjun Sharma", user.DisplayName)

	_, ok = store.Lookup("ghost@college.edu")
	assert.False(t, ok)
}

func TestStore_LookupReturnsIndependentCopies(t *testing.T) {
	store := setupTestStore(t)

	first, _ := store.Lookup("student@college.edu")
	first.Skills = append(first.Skills, "Cobol")
	first.DisplayName = "Changed"

	second, _ := store.Lookup("student@college.edu")
	assert.NotContains(t, second.Skills, "Cobol")
	assert.Equal(t, "Arjun Sharma", second.DisplayName)
}

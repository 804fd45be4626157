package session

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/placement-portal/internal/config"
	"github.com/jonathan/placement-portal/internal/credentials"
	"github.com/jonathan/placement-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestManager(t *testing.T) *Manager {
	t.Helper()
	store, err := credentials.NewStore(&config.PasswordConfig{BcryptCost: 4})
	require.NoError(t, err)
	return NewManager(store)
}

func TestManager_AuthenticateStudent(t *testing.T) {
	m := setupTestManager(t)

	user, err := m.Authenticate(types.RoleStudent, "student@college.edu", "student123")
	require.NoError(t, err)
	assert.Equal(t, "student@college.edu", user.Identity)

	current := m.Current()
	require.NotNil(t, current)
	assert.NotEqual(t, uuid.Nil, current.ID)
	assert.Equal(t, user.Identity, current.User.Identity)
	assert.True(t, m.Active())
}

func TestManager_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		role     types.Role
		identity string
		secret   string
	}{
		{name: "unknown identity", role: types.RoleStudent, identity: "nobody@college.edu", secret: "student123"},
		{name: "wrong secret", role: types.RoleStaff, identity: "staff@college.edu", secret: "wrongpass"},
		{name: "empty secret", role: types.RoleAdmin, identity: "admin@college.edu", secret: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTestManager(t)

			user, err := m.Authenticate(tt.role, tt.identity, tt.secret)
			assert.Nil(t, user)

			var invalid *ErrInvalidCredentials
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, "Invalid credentials", invalid.UserMessage())
			assert.Nil(t, m.Current())
		})
	}
}

func TestManager_RoleMismatch(t *testing.T) {
	m := setupTestManager(t)

	_, err := m.Authenticate(types.RoleAdmin, "student@college.edu", "student123")

	var mismatch *ErrRoleMismatch
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, types.RoleAdmin, mismatch.Requested)
	assert.Equal(t, types.RoleStudent, mismatch.Actual)
	assert.Equal(t, "Role mismatch", mismatch.UserMessage())
	assert.False(t, m.Active())
}

func TestManager_FailureKeepsExistingSession(t *testing.T) {
	m := setupTestManager(t)

	_, err := m.Authenticate(types.RoleFaculty, "faculty@college.edu", "faculty123")
	require.NoError(t, err)
	before := m.ID()

	_, err = m.Authenticate(types.RoleStaff, "staff@college.edu", "nope")
	require.Error(t, err)
	_, err = m.Authenticate(types.RoleStudent, "company@techcorp.com", "company123")
	require.Error(t, err)

	assert.Equal(t, before, m.ID())
	assert.Equal(t, "faculty@college.edu", m.Current().User.Identity)
}

func TestManager_ReloginReplacesSession(t *testing.T) {
	m := setupTestManager(t)

	_, err := m.Authenticate(types.RoleFaculty, "faculty@college.edu", "faculty123")
	require.NoError(t, err)
	first := m.ID()

	_, err = m.Authenticate(types.RoleCompany, "company@techcorp.com", "company123")
	require.NoError(t, err)

	assert.NotEqual(t, first, m.ID())
	assert.Equal(t, types.RoleCompany, m.Current().User.Role)
}

func TestManager_LogoutIdempotent(t *testing.T) {
	m := setupTestManager(t)

	m.Logout()
	assert.False(t, m.Active())

	_, err := m.Authenticate(types.RoleStudent, "student@college.edu", "student123")
	require.NoError(t, err)

	m.Logout()
	m.Logout()
	assert.False(t, m.Active())
	assert.Equal(t, uuid.Nil, m.ID())
	assert.Nil(t, m.Current())
}

func TestManager_CurrentIsSnapshot(t *testing.T) {
	m := setupTestManager(t)
	_, err := m.Authenticate(types.RoleStudent, "student@college.edu", "student123")
	require.NoError(t, err)

	snapshot := m.Current()
	snapshot.User.Skills = nil

	assert.NotEmpty(t, m.Current().User.Skills)
}

func TestManager_ReloginReusesLiveRecord(t *testing.T) {
	m := setupTestManager(t)

	first, err := m.Authenticate(types.RoleStudent, "student@college.edu", "student123")
	require.NoError(t, err)
	first.Skills = append(first.Skills, "Go")
	m.Logout()

	_, err = m.Authenticate(types.RoleFaculty, "faculty@college.edu", "faculty123")
	require.NoError(t, err)
	m.Logout()

	second, err := m.Authenticate(types.RoleStudent, "student@college.edu", "student123")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Contains(t, m.Current().User.Skills, "Go")
}

func TestManager_SeparateManagersStartFromSeed(t *testing.T) {
	edited, err := setupTestManager(t).Authenticate(types.RoleStudent, "student@college.edu", "student123")
	require.NoError(t, err)
	edited.Skills = append(edited.Skills, "Go")

	fresh, err := setupTestManager(t).Authenticate(types.RoleStudent, "student@college.edu", "student123")
	require.NoError(t, err)
	assert.NotContains(t, fresh.Skills, "Go")
}

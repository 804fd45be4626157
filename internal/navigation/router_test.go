package navigation

import (
	"errors"
	"testing"

	"github.com/jonathan/placement-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLoader struct {
	loads []types.Section
}

func (l *recordingLoader) Load(section types.Section) {
	l.loads = append(l.loads, section)
}

func sectionsOf(menu []types.MenuItem) []types.Section {
	out := make([]types.Section, 0, len(menu))
	for _, item := range menu {
		out = append(out, item.Section)
	}
	return out
}

func TestMenuFor_Roles(t *testing.T) {
	tests := []struct {
		role types.Role
		want []types.Section
	}{
		{
			role: types.RoleStudent,
			want: []types.Section{"dashboard", "notifications", "profile", "jobs", "applications", "interviews", "mentorship", "chatbot"},
		},
		{role: types.RoleFaculty, want: []types.Section{"dashboard", "notifications", "analytics", "interviews"}},
		{role: types.RoleStaff, want: []types.Section{"dashboard", "notifications", "jobManagement", "analytics", "interviews"}},
		{role: types.RoleAdmin, want: []types.Section{"dashboard", "notifications", "analytics", "jobManagement", "settings"}},
		{role: types.RoleCompany, want: []types.Section{"dashboard", "notifications", "companyDashboard", "jobManagement", "interviews"}},
		{role: types.Role("guest"), want: []types.Section{"dashboard", "notifications"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, sectionsOf(MenuFor(tt.role)))
		})
	}
}

func TestMenuFor_CompanyLabelsJobPosts(t *testing.T) {
	for _, item := range MenuFor(types.RoleCompany) {
		if item.Section == types.SectionJobManagement {
			assert.Equal(t, "Job Posts", item.Label)
		}
	}
}

func TestRouter_InitializeResetsToDashboard(t *testing.T) {
	loader := &recordingLoader{}
	r := NewRouter(loader)

	r.Initialize(types.RoleStudent)
	require.NoError(t, r.Navigate(types.SectionJobs))
	assert.Equal(t, types.SectionJobs, r.Current())

	menu := r.Initialize(types.RoleFaculty)
	assert.Equal(t, types.SectionDashboard, r.Current())
	assert.Equal(t, "Dashboard", r.State().Breadcrumb)
	assert.True(t, menu[0].Active)
}

func TestRouter_NavigateAllowed(t *testing.T) {
	loader := &recordingLoader{}
	r := NewRouter(loader)
	r.Initialize(types.RoleStudent)

	require.NoError(t, r.Navigate(types.SectionProfile))

	state := r.State()
	assert.Equal(t, types.SectionProfile, state.CurrentSection)
	assert.Equal(t, "My Profile", state.Breadcrumb)
	assert.Equal(t, []types.Section{types.SectionProfile}, loader.loads)

	active := 0
	for _, item := range state.Menu {
		if item.Active {
			active++
			assert.Equal(t, types.SectionProfile, item.Section)
		}
	}
	assert.Equal(t, 1, active)
}

func TestRouter_NavigateDenied(t *testing.T) {
	loader := &recordingLoader{}
	r := NewRouter(loader)
	r.Initialize(types.RoleFaculty)
	require.NoError(t, r.Navigate(types.SectionAnalytics))

	err := r.Navigate(types.SectionProfile)

	var denied *ErrNavigationDenied
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, types.SectionProfile, denied.Section)
	assert.Equal(t, types.RoleFaculty, denied.Role)
	assert.Equal(t, types.SectionAnalytics, r.Current())
	assert.Equal(t, "Analytics", r.State().Breadcrumb)
	assert.Equal(t, []types.Section{types.SectionAnalytics}, loader.loads)
}

func TestRouter_NavigateUnknownSection(t *testing.T) {
	r := NewRouter(nil)
	r.Initialize(types.RoleAdmin)

	assert.Error(t, r.Navigate(types.Section("billing")))
	assert.Equal(t, types.SectionDashboard, r.Current())
}

func TestRouter_NavigateWithoutMenu(t *testing.T) {
	r := NewRouter(nil)
	err := r.Navigate(types.SectionDashboard)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no active menu")
}

func TestRouter_RenavigateReloads(t *testing.T) {
	loader := &recordingLoader{}
	r := NewRouter(loader)
	r.Initialize(types.RoleStudent)

	require.NoError(t, r.Navigate(types.SectionProfile))
	require.NoError(t, r.Navigate(types.SectionProfile))

	assert.Equal(t, []types.Section{types.SectionProfile, types.SectionProfile}, loader.loads)
}

func TestRouter_Reset(t *testing.T) {
	r := NewRouter(LoaderFunc(func(types.Section) {}))
	r.Initialize(types.RoleStaff)
	require.NoError(t, r.Navigate(types.SectionAnalytics))

	r.Reset()

	state := r.State()
	assert.Equal(t, types.SectionDashboard, state.CurrentSection)
	assert.Empty(t, state.Menu)
	assert.Error(t, r.Navigate(types.SectionAnalytics))
}

func TestRouter_StateIsSnapshot(t *testing.T) {
	r := NewRouter(nil)
	r.Initialize(types.RoleStudent)

	state := r.State()
	state.Menu[0].Label = "Hacked"

	assert.Equal(t, "Dashboard", r.State().Menu[0].Label)
}

package profile

import (
	"errors"
	"testing"

	"github.com/jonathan/placement-portal/internal/catalog"
	"github.com/jonathan/placement-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seededStudent() *types.User {
	return catalog.Accounts()["student@college.edu"].User
}

func setupTestStore(t *testing.T, completion Completion) (*Store, *types.User) {
	t.Helper()
	store := NewStore(completion)
	user := seededStudent()
	store.Attach(user)
	return store, user
}

func TestStore_Unavailable(t *testing.T) {
	detached := NewStore(nil)
	_, err := detached.ToggleSkill("Go")
	assert.ErrorIs(t, err, ErrProfileUnavailable)

	faculty := NewStore(nil)
	faculty.Attach(catalog.Accounts()["faculty@college.edu"].User)

	_, err = faculty.AddCertification("AWS")
	assert.ErrorIs(t, err, ErrProfileUnavailable)
	_, err = faculty.UpdatePersonal(types.PersonalFields{FullName: strPtr("X")})
	assert.ErrorIs(t, err, ErrProfileUnavailable)
	_, err = faculty.UpdateAcademic(types.AcademicFields{Year: strPtr("1st Year")})
	assert.ErrorIs(t, err, ErrProfileUnavailable)
	assert.True(t, errors.Is(faculty.SetPreferences(nil, "", ""), ErrProfileUnavailable))
	assert.Equal(t, 0, faculty.RecomputeCompletion())
}

func TestStore_ToggleSkill(t *testing.T) {
	store, user := setupTestStore(t, nil)

	selected, err := store.ToggleSkill("Go")
	require.NoError(t, err)
	assert.True(t, selected)
	assert.Contains(t, user.Skills, "Go")

	selected, err = store.ToggleSkill("Go")
	require.NoError(t, err)
	assert.False(t, selected)
	assert.NotContains(t, user.Skills, "Go")
}

func TestStore_ToggleSkill_NoDuplicates(t *testing.T) {
	store, user := setupTestStore(t, nil)

	for range 5 {
		_, err := store.ToggleSkill("Rust")
		require.NoError(t, err)
	}

	count := 0
	for _, skill := range user.Skills {
		if skill == "Rust" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestStore_ToggleSkill_Blank(t *testing.T) {
	store, user := setupTestStore(t, nil)
	before := append([]string(nil), user.Skills...)

	selected, err := store.ToggleSkill("  ")
	require.NoError(t, err)
	assert.False(t, selected)
	assert.Equal(t, before, user.Skills)
}

func TestStore_AddCertification(t *testing.T) {
	store, user := setupTestStore(t, nil)
	start := len(user.Certifications)

	for _, blank := range []string{"", "   ", "\t\n"} {
		added, err := store.AddCertification(blank)
		require.NoError(t, err)
		assert.False(t, added)
	}
	assert.Len(t, user.Certifications, start)

	for range 2 {
		added, err := store.AddCertification("AWS")
		require.NoError(t, err)
		assert.True(t, added)
	}
	require.Len(t, user.Certifications, start+2)
	assert.Equal(t, []string{"AWS", "AWS"}, user.Certifications[start:])
}

func TestStore_AddCertification_Trims(t *testing.T) {
	store, user := setupTestStore(t, nil)
	_, err := store.AddCertification("  CKA  ")
	require.NoError(t, err)
	assert.Equal(t, "CKA", user.Certifications[len(user.Certifications)-1])
}

func TestStore_UpdatePersonal(t *testing.T) {
	store, user := setupTestStore(t, nil)

	report, err := store.UpdatePersonal(types.PersonalFields{
		FullName: strPtr("  Arjun S.  "),
		Email:    strPtr("not-an-email"),
		Phone:    strPtr("+91-9000000000"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"full_name", "phone"}, report.Applied)
	assert.Equal(t, []string{"email"}, report.Rejected)
	assert.Equal(t, "Arjun S.", user.DisplayName)
	assert.Equal(t, "student@college.edu", user.Email)
	assert.Equal(t, "+91-9000000000", user.Phone)
	assert.Equal(t, "21CS001", user.RollNumber, "omitted fields are untouched")
}

func TestStore_UpdatePersonal_RejectsBlankName(t *testing.T) {
	store, user := setupTestStore(t, nil)

	report, err := store.UpdatePersonal(types.PersonalFields{FullName: strPtr("   ")})
	require.NoError(t, err)
	assert.Equal(t, []string{"full_name"}, report.Rejected)
	assert.Equal(t, "Arjun Sharma", user.DisplayName)
}

func TestStore_UpdateAcademic_CGPA(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     float64
		rejected bool
	}{
		{name: "valid", input: "9.1", want: 9.1},
		{name: "padded", input: " 7.25 ", want: 7.25},
		{name: "non numeric", input: "abc", want: 8.7, rejected: true},
		{name: "empty", input: "", want: 8.7, rejected: true},
		{name: "zero", input: "0", want: 8.7, rejected: true},
		{name: "above scale", input: "11", want: 8.7, rejected: true},
		{name: "negative", input: "-2", want: 8.7, rejected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, user := setupTestStore(t, nil)

			report, err := store.UpdateAcademic(types.AcademicFields{CGPA: strPtr(tt.input)})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, user.CGPA, 1e-9)
			if tt.rejected {
				assert.Equal(t, []string{"cgpa"}, report.Rejected)
			} else {
				assert.Equal(t, []string{"cgpa"}, report.Applied)
			}
		})
	}
}

func TestStore_UpdateAcademic_Fields(t *testing.T) {
	store, user := setupTestStore(t, nil)

	report, err := store.UpdateAcademic(types.AcademicFields{
		Department: strPtr("Electronics"),
		Year:       strPtr("4th Year"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"department", "year"}, report.Applied)
	assert.Equal(t, "Electronics", user.Department)
	assert.Equal(t, "4th Year", user.Year)
}

func TestStore_SetPreferences_ReplacesAtomically(t *testing.T) {
	store, user := setupTestStore(t, nil)

	err := store.SetPreferences([]string{"Internship", "Internship", " ", "Part-time"}, "Pune", "")
	require.NoError(t, err)

	require.NotNil(t, user.Preferences)
	assert.Equal(t, []string{"Internship", "Part-time"}, user.Preferences.JobTypes)
	assert.Equal(t, "Pune", user.Preferences.Locations)
	assert.Equal(t, "", user.Preferences.SalaryRange, "fields are replaced, not merged")
}

func TestStore_UserSnapshot(t *testing.T) {
	store, _ := setupTestStore(t, nil)

	snapshot := store.User()
	snapshot.Skills = append(snapshot.Skills, "Injected")

	assert.NotContains(t, store.User().Skills, "Injected")

	store.Detach()
	assert.Nil(t, store.User())
}

// Package profile owns mutation of the authenticated student's editable fields.
package profile

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/placement-portal/internal/types"
)

// ErrProfileUnavailable is returned when there is no session or the user has no
// editable student profile.
var ErrProfileUnavailable = errors.New("no editable profile for the current session")

// Field rules for personal and academic input. A provided value that fails its
// rule is not applied and the previous value is retained.
const (
	ruleFullName   = "required,max=100"
	ruleEmail      = "required,email"
	rulePhone      = "omitempty,printascii,max=20"
	ruleRollNumber = "omitempty,alphanum,max=20"
	ruleAddress    = "omitempty,max=200"
	ruleDepartment = "required,max=100"
	ruleYear       = "required,max=20"
	ruleCGPA       = "gt=0,lte=10"
)

// FieldReport lists which submitted fields were applied and which were rejected as malformed.
type FieldReport struct {
	Applied  []string `json:"applied"`
	Rejected []string `json:"rejected"`
}

// Store holds the live user record attached by the session.
// It is not safe for concurrent use; the portal serializes access.
type Store struct {
	user       *types.User
	completion Completion
	validate   *validator.Validate
}

// NewStore creates a detached store using the given completion policy.
func NewStore(completion Completion) *Store {
	if completion == nil {
		completion = Seeded{}
	}
	return &Store{completion: completion, validate: validator.New()}
}

// Attach hands the store exclusive ownership of user's mutable fields.
func (s *Store) Attach(user *types.User) {
	s.user = user
	if user.IsStudent() {
		s.RecomputeCompletion()
	}
}

// Detach releases the user, e.g. on logout.
func (s *Store) Detach() {
	s.user = nil
}

// User returns a snapshot of the attached user, or nil.
func (s *Store) User() *types.User {
	return s.user.Clone()
}

func (s *Store) editable() error {
	if !s.user.IsStudent() {
		return ErrProfileUnavailable
	}
	return nil
}

// UpdatePersonal overwrites the provided well-formed personal fields.
func (s *Store) UpdatePersonal(fields types.PersonalFields) (FieldReport, error) {
	if err := s.editable(); err != nil {
		return FieldReport{}, err
	}
	report := newReport()
	s.apply(&report, "full_name", fields.FullName, ruleFullName, &s.user.DisplayName)
	s.apply(&report, "email", fields.Email, ruleEmail, &s.user.Email)
	s.apply(&report, "phone", fields.Phone, rulePhone, &s.user.Phone)
	s.apply(&report, "roll_number", fields.RollNumber, ruleRollNumber, &s.user.RollNumber)
	s.apply(&report, "address", fields.Address, ruleAddress, &s.user.Address)
	s.RecomputeCompletion()
	return report, nil
}

// UpdateAcademic overwrites the provided well-formed academic fields. A CGPA that
// does not parse, or falls outside (0, 10], keeps the previous value.
func (s *Store) UpdateAcademic(fields types.AcademicFields) (FieldReport, error) {
	if err := s.editable(); err != nil {
		return FieldReport{}, err
	}
	report := newReport()
	s.apply(&report, "department", fields.Department, ruleDepartment, &s.user.Department)
	s.apply(&report, "year", fields.Year, ruleYear, &s.user.Year)
	if fields.CGPA != nil {
		cgpa, err := strconv.ParseFloat(strings.TrimSpace(*fields.CGPA), 64)
		if err == nil && s.validate.Var(cgpa, ruleCGPA) == nil {
			s.user.CGPA = cgpa
			report.Applied = append(report.Applied, "cgpa")
		} else {
			report.Rejected = append(report.Rejected, "cgpa")
		}
	}
	s.RecomputeCompletion()
	return report, nil
}

func (s *Store) apply(report *FieldReport, name string, value *string, rule string, dst *string) {
	if value == nil {
		return
	}
	trimmed := strings.TrimSpace(*value)
	if err := s.validate.Var(trimmed, rule); err != nil {
		report.Rejected = append(report.Rejected, name)
		return
	}
	*dst = trimmed
	report.Applied = append(report.Applied, name)
}

// ToggleSkill removes name if present and adds it otherwise. It reports whether
// the skill is selected afterwards. Blank names are ignored.
func (s *Store) ToggleSkill(name string) (bool, error) {
	if err := s.editable(); err != nil {
		return false, err
	}
	if strings.TrimSpace(name) == "" {
		return false, nil
	}
	selected := false
	if i := slices.Index(s.user.Skills, name); i >= 0 {
		s.user.Skills = slices.Delete(s.user.Skills, i, i+1)
	} else {
		s.user.Skills = append(s.user.Skills, name)
		selected = true
	}
	s.RecomputeCompletion()
	return selected, nil
}

// AddCertification appends the trimmed name. Blank input is a no-op; duplicates are kept.
// It reports whether an entry was appended.
func (s *Store) AddCertification(name string) (bool, error) {
	if err := s.editable(); err != nil {
		return false, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	s.user.Certifications = append(s.user.Certifications, name)
	s.RecomputeCompletion()
	return true, nil
}

// SetPreferences replaces the whole preferences record.
func (s *Store) SetPreferences(jobTypes []string, locations, salaryRange string) error {
	if err := s.editable(); err != nil {
		return err
	}
	unique := make([]string, 0, len(jobTypes))
	for _, jobType := range jobTypes {
		jobType = strings.TrimSpace(jobType)
		if jobType != "" && !slices.Contains(unique, jobType) {
			unique = append(unique, jobType)
		}
	}
	s.user.Preferences = &types.Preferences{
		JobTypes:    unique,
		Locations:   strings.TrimSpace(locations),
		SalaryRange: strings.TrimSpace(salaryRange),
	}
	s.RecomputeCompletion()
	return nil
}

// RecomputeCompletion refreshes and returns the completion indicator.
// Without an editable profile it returns 0.
func (s *Store) RecomputeCompletion() int {
	if !s.user.IsStudent() {
		return 0
	}
	s.user.ProfileCompletion = s.completion.Score(s.user)
	return s.user.ProfileCompletion
}

func newReport() FieldReport {
	return FieldReport{Applied: []string{}, Rejected: []string{}}
}

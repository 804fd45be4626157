package types

import "github.com/go-playground/validator/v10"

// PersonalFields carries a personal-info form submission. Nil fields are left untouched.
type PersonalFields struct {
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	RollNumber *string `json:"roll_number,omitempty"`
	Address    *string `json:"address,omitempty"`
}

// AcademicFields carries an academic-info form submission. CGPA is the raw form text.
type AcademicFields struct {
	Department *string `json:"department,omitempty"`
	Year       *string `json:"year,omitempty"`
	CGPA       *string `json:"cgpa,omitempty"`
}

// PreferencesRequest replaces a student's preferences.
type PreferencesRequest struct {
	JobTypes    []string `json:"job_types"`
	Locations   string   `json:"locations"`
	SalaryRange string   `json:"salary_range"`
}

// NavigateRequest asks the router to activate a section.
type NavigateRequest struct {
	Section Section `json:"section" validate:"required"`
}

// SkillRequest toggles a skill.
type SkillRequest struct {
	Skill string `json:"skill" validate:"required"`
}

// CertificationRequest adds a certification. Blank names are accepted and ignored.
type CertificationRequest struct {
	Name string `json:"name"`
}

// ChatRequest sends a message from a chat surface.
type ChatRequest struct {
	Text    string      `json:"text"`
	Surface ChatSurface `json:"surface" validate:"omitempty,oneof=widget modal page"`
}

// ApplicationRequest submits a job application.
type ApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	CoverLetter string `json:"cover_letter,omitempty" validate:"max=5000"`
}

// JobPostRequest publishes or drafts a job post.
type JobPostRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Location string `json:"location,omitempty" validate:"max=200"`
	Salary   string `json:"salary,omitempty" validate:"max=100"`
	Draft    bool   `json:"draft,omitempty"`
}

// Validate validates the NavigateRequest using the validator.
func (r *NavigateRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	return validator.New().Struct(r)
}

package types

import "slices"

// User is a portal account. Student-only fields are zero for other roles.
type User struct {
	Identity    string `json:"identity"`
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Title       string `json:"title,omitempty"`        // staff/admin job title
	CompanyName string `json:"company_name,omitempty"` // company accounts

	RollNumber        string       `json:"roll_number,omitempty"`
	Department        string       `json:"department,omitempty"`
	Year              string       `json:"year,omitempty"`
	CGPA              float64      `json:"cgpa,omitempty"`
	Phone             string       `json:"phone,omitempty"`
	Address           string       `json:"address,omitempty"`
	Skills            []string     `json:"skills,omitempty"`
	Certifications    []string     `json:"certifications,omitempty"`
	ProfileCompletion int          `json:"profile_completion,omitempty"`
	Preferences       *Preferences `json:"preferences,omitempty"`
}

// Preferences holds a student's job search preferences.
type Preferences struct {
	JobTypes    []string `json:"job_types"`
	Locations   string   `json:"locations"`
	SalaryRange string   `json:"salary_range"`
}

// IsStudent reports whether the user carries an editable student profile.
func (u *User) IsStudent() bool {
	return u != nil && u.Role == RoleStudent
}

// HasSkill reports whether the skill set contains name.
func (u *User) HasSkill(name string) bool {
	return slices.Contains(u.Skills, name)
}

// Clone returns a deep copy so callers cannot mutate store-owned slices.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Skills = slices.Clone(u.Skills)
	c.Certifications = slices.Clone(u.Certifications)
	if u.Preferences != nil {
		p := *u.Preferences
		p.JobTypes = slices.Clone(u.Preferences.JobTypes)
		c.Preferences = &p
	}
	return &c
}

// NotificationCategory classifies a notification.
type NotificationCategory string

// Notification categories
const (
	CategoryInfo    NotificationCategory = "info"
	CategorySuccess NotificationCategory = "success"
	CategoryWarning NotificationCategory = "warning"
	CategoryError   NotificationCategory = "error"
)

// Notification is a portal-wide message.
type Notification struct {
	ID          int                  `json:"id"`
	Title       string               `json:"title"`
	Message     string               `json:"message"`
	DisplayTime string               `json:"display_time"`
	Category    NotificationCategory `json:"category"`
	Read        bool                 `json:"read"`
}

// Severity is the level of a transient message.
type Severity string

// Severities
const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ResumeFile describes an uploaded resume. Content is never read.
type ResumeFile struct {
	Name string `json:"name" validate:"required"`
	Size int64  `json:"size" validate:"gte=0"`
}

// ChatSurface identifies which chat widget sent a message.
type ChatSurface string

// Chat surfaces
const (
	SurfaceWidget ChatSurface = "widget"
	SurfaceModal  ChatSurface = "modal"
	SurfacePage   ChatSurface = "page"
)

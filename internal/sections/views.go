package sections

import (
	"github.com/jonathan/placement-portal/internal/catalog"
	"github.com/jonathan/placement-portal/internal/skills"
	"github.com/jonathan/placement-portal/internal/types"
)

// Widget is a dashboard card.
type Widget struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DashboardView is the landing section.
type DashboardView struct {
	Greeting         string   `json:"greeting"`
	Role             string   `json:"role"`
	QuickActionLabel string   `json:"quick_action_label"`
	Widgets          []Widget `json:"widgets"`
}

// PersonalView mirrors the personal-info form.
type PersonalView struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	RollNumber string `json:"roll_number"`
	Address    string `json:"address"`
}

// AcademicView mirrors the academic-info form.
type AcademicView struct {
	Department string  `json:"department"`
	Year       string  `json:"year"`
	CGPA       float64 `json:"cgpa"`
}

// ProfileView is the student profile editor. Editable is false for other roles.
type ProfileView struct {
	Editable       bool                  `json:"editable"`
	Personal       PersonalView          `json:"personal"`
	Academic       AcademicView          `json:"academic"`
	Skills         []string              `json:"skills"`
	Categories     []skills.CategoryView `json:"categories"`
	Certifications []string              `json:"certifications"`
	Preferences    *types.Preferences    `json:"preferences,omitempty"`
	Completion     int                   `json:"completion"`
}

// JobsView lists open jobs.
type JobsView struct {
	Total   int           `json:"total"`
	Jobs    []catalog.Job `json:"jobs"`
	Message string        `json:"message,omitempty"`
}

// Application is a submitted job application.
type Application struct {
	JobID       string `json:"job_id"`
	Applicant   string `json:"applicant"`
	CoverLetter string `json:"cover_letter,omitempty"`
}

// ApplicationsView lists the user's applications.
type ApplicationsView struct {
	Applications []Application `json:"applications"`
	Message      string        `json:"message,omitempty"`
}

// Metric is a single analytics figure.
type Metric struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AnalyticsView summarises placement activity.
type AnalyticsView struct {
	Metrics []Metric `json:"metrics"`
}

// JobManagementView is the jobs table for staff, admins, and companies.
type JobManagementView struct {
	Rows    []catalog.Job `json:"rows"`
	Message string        `json:"message,omitempty"`
}

// CompanyDashboardView is a company's recruitment overview.
type CompanyDashboardView struct {
	CompanyName string `json:"company_name"`
	OpenPosts   int    `json:"open_posts"`
	Pipeline    string `json:"pipeline"`
}

// NotificationsView lists notifications with the unread badge count.
type NotificationsView struct {
	Items  []types.Notification `json:"items"`
	Unread int                  `json:"unread"`
}

// StaticView is a placeholder section with fixed content.
type StaticView struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Items []string `json:"items,omitempty"`
}

// Package types provides type definitions for structured data used throughout the placement portal.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Role identifies the kind of portal user and determines the visible sections.
type Role string

// Supported roles
const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
)

// Roles lists every supported role in declaration order.
var Roles = []Role{RoleStudent, RoleFaculty, RoleStaff, RoleAdmin, RoleCompany}

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	for _, candidate := range Roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// Section is a named content view the navigation router can make active.
type Section string

// Section identifiers
const (
	SectionDashboard        Section = "dashboard"
	SectionProfile          Section = "profile"
	SectionJobs             Section = "jobs"
	SectionApplications     Section = "applications"
	SectionInterviews       Section = "interviews"
	SectionMentorship       Section = "mentorship"
	SectionChatbot          Section = "chatbot"
	SectionAnalytics        Section = "analytics"
	SectionJobManagement    Section = "jobManagement"
	SectionCompanyDashboard Section = "companyDashboard"
	SectionNotifications    Section = "notifications"
	SectionSettings         Section = "settings"
)

// Sections is the closed set of sections.
var Sections = []Section{
	SectionDashboard,
	SectionProfile,
	SectionJobs,
	SectionApplications,
	SectionInterviews,
	SectionMentorship,
	SectionChatbot,
	SectionAnalytics,
	SectionJobManagement,
	SectionCompanyDashboard,
	SectionNotifications,
	SectionSettings,
}

// Valid reports whether s belongs to the closed section set.
func (s Section) Valid() bool {
	for _, candidate := range Sections {
		if s == candidate {
			return true
		}
	}
	return false
}

// MenuItem is a single navigation entry.
type MenuItem struct {
	Section Section `json:"section"`
	Label   string  `json:"label"`
	Icon    string  `json:"icon"`
	Active  bool    `json:"active"`
}

// NavigationState is a snapshot of the router state.
type NavigationState struct {
	CurrentSection Section    `json:"current_section"`
	Breadcrumb     string     `json:"breadcrumb"`
	Menu           []MenuItem `json:"menu"`
}

// Package navigation holds the role capability table and the section router.
package navigation

import "github.com/jonathan/placement-portal/internal/types"

// Capability declares one reachable section and how its menu entry looks.
type Capability struct {
	Section types.Section
	Label   string
	Icon    string
}

// DefaultBreadcrumb is shown when the active section has no menu label.
const DefaultBreadcrumb = "Dashboard"

// common entries are visible to every role, ahead of the role's own set.
var common = []Capability{
	{Section: types.SectionDashboard, Label: "Dashboard", Icon: "📊"},
	{Section: types.SectionNotifications, Label: "Notifications", Icon: "🔔"},
}

var (
	interviews    = Capability{Section: types.SectionInterviews, Label: "Interviews", Icon: "🎯"}
	analytics     = Capability{Section: types.SectionAnalytics, Label: "Analytics", Icon: "📈"}
	jobManagement = Capability{Section: types.SectionJobManagement, Label: "Job Management", Icon: "📝"}
)

// capabilities is the declared capability set per role. Adding a role is one entry here.
var capabilities = map[types.Role][]Capability{
	types.RoleStudent: {
		{Section: types.SectionProfile, Label: "My Profile", Icon: "👤"},
		{Section: types.SectionJobs, Label: "Job Opportunities", Icon: "💼"},
		{Section: types.SectionApplications, Label: "My Applications", Icon: "📋"},
		interviews,
		{Section: types.SectionMentorship, Label: "Mentorship", Icon: "🤝"},
		{Section: types.SectionChatbot, Label: "AI Assistant", Icon: "🤖"},
	},
	types.RoleFaculty: {analytics, interviews},
	types.RoleStaff:   {jobManagement, analytics, interviews},
	types.RoleAdmin: {
		analytics,
		jobManagement,
		{Section: types.SectionSettings, Label: "Settings", Icon: "⚙️"},
	},
	types.RoleCompany: {
		{Section: types.SectionCompanyDashboard, Label: "Company Dashboard", Icon: "🏢"},
		{Section: types.SectionJobManagement, Label: "Job Posts", Icon: "📝"},
		interviews,
	},
}

// MenuFor returns the role's menu: common entries followed by the role's capabilities.
// Unknown roles get only the common entries.
func MenuFor(role types.Role) []types.MenuItem {
	declared := capabilities[role]
	menu := make([]types.MenuItem, 0, len(common)+len(declared))
	for _, c := range common {
		menu = append(menu, types.MenuItem{Section: c.Section, Label: c.Label, Icon: c.Icon})
	}
	for _, c := range declared {
		menu = append(menu, types.MenuItem{Section: c.Section, Label: c.Label, Icon: c.Icon})
	}
	return menu
}

// Allows reports whether role may reach section.
func Allows(role types.Role, section types.Section) bool {
	for _, item := range MenuFor(role) {
		if item.Section == section {
			return true
		}
	}
	return false
}

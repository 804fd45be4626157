// Package sections maps every section to the loader that builds its view-model.
package sections

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/placement-portal/internal/catalog"
	"github.com/jonathan/placement-portal/internal/skills"
	"github.com/jonathan/placement-portal/internal/types"
)

// Input is the read-only state a loader may consult.
type Input struct {
	User          *types.User
	Notifications []types.Notification
	Unread        int
	Jobs          []catalog.Job
	Applications  []Application
}

// Loader builds the view-model for one section.
type Loader func(in Input) any

// Registry is a validated Section → Loader table.
type Registry struct {
	loaders map[types.Section]Loader
}

// NewRegistry checks that loaders covers every declared section.
func NewRegistry(loaders map[types.Section]Loader) (*Registry, error) {
	var missing []string
	for _, section := range types.Sections {
		if loaders[section] == nil {
			missing = append(missing, string(section))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("no loader registered for sections: %s", strings.Join(missing, ", "))
	}
	for section := range loaders {
		if !section.Valid() {
			return nil, fmt.Errorf("loader registered for unknown section %q", section)
		}
	}
	return &Registry{loaders: loaders}, nil
}

// DefaultRegistry returns the portal's loader table.
func DefaultRegistry() *Registry {
	registry, err := NewRegistry(DefaultLoaders())
	if err != nil {
		panic(err)
	}
	return registry
}

// Load runs the loader for section.
func (r *Registry) Load(section types.Section, in Input) (any, error) {
	loader, ok := r.loaders[section]
	if !ok {
		return nil, fmt.Errorf("unknown section %q", section)
	}
	return loader(in), nil
}

// DefaultLoaders returns one loader per section.
func DefaultLoaders() map[types.Section]Loader {
	return map[types.Section]Loader{
		types.SectionDashboard:        loadDashboard,
		types.SectionProfile:          loadProfile,
		types.SectionJobs:             loadJobs,
		types.SectionApplications:     loadApplications,
		types.SectionAnalytics:        loadAnalytics,
		types.SectionJobManagement:    loadJobManagement,
		types.SectionCompanyDashboard: loadCompanyDashboard,
		types.SectionNotifications:    loadNotifications,
		types.SectionInterviews: static(StaticView{
			Title: "Interviews",
			Body:  "No interviews scheduled yet.",
		}),
		types.SectionMentorship: static(StaticView{
			Title: "Mentorship",
			Body:  "Connect with alumni and faculty mentors.",
		}),
		types.SectionChatbot: static(StaticView{
			Title: "AI Assistant",
			Body:  "Ask about skills, interviews, or placements.",
			Items: []string{"What skills should I learn?", "How do I prepare for interviews?"},
		}),
		types.SectionSettings: static(StaticView{
			Title: "Settings",
			Body:  "Portal-wide settings and privacy controls.",
		}),
	}
}

// QuickActionLabel is the dashboard call-to-action text for role.
func QuickActionLabel(role types.Role) string {
	switch role {
	case types.RoleStudent:
		return "Apply Now"
	case types.RoleCompany:
		return "Post Job"
	default:
		return "Quick Action"
	}
}

func static(view StaticView) Loader {
	return func(Input) any {
		v := view
		v.Items = slices.Clone(view.Items)
		return v
	}
}

func loadDashboard(in Input) any {
	view := DashboardView{
		Widgets: []Widget{{Title: "Coming Soon", Body: "Role specific widgets will be displayed here."}},
	}
	if in.User != nil {
		view.Greeting = fmt.Sprintf("Hello %s!", in.User.DisplayName)
		view.Role = strings.ToUpper(string(in.User.Role))
		view.QuickActionLabel = QuickActionLabel(in.User.Role)
	}
	return view
}

func loadProfile(in Input) any {
	if !in.User.IsStudent() {
		return ProfileView{Editable: false}
	}
	u := in.User
	return ProfileView{
		Editable: true,
		Personal: PersonalView{
			FullName:   u.DisplayName,
			Email:      u.Email,
			Phone:      u.Phone,
			RollNumber: u.RollNumber,
			Address:    u.Address,
		},
		Academic:       AcademicView{Department: u.Department, Year: u.Year, CGPA: u.CGPA},
		Skills:         nonNil(u.Skills),
		Categories:     skills.Annotate(u.Skills),
		Certifications: nonNil(u.Certifications),
		Preferences:    u.Preferences,
		Completion:     u.ProfileCompletion,
	}
}

func loadJobs(in Input) any {
	view := JobsView{Total: len(in.Jobs), Jobs: nonNilJobs(in.Jobs)}
	if len(in.Jobs) == 0 {
		view.Message = "Job listing feature to be enhanced."
	}
	return view
}

func loadApplications(in Input) any {
	view := ApplicationsView{Applications: []Application{}}
	for _, app := range in.Applications {
		if in.User != nil && app.Applicant == in.User.Identity {
			view.Applications = append(view.Applications, app)
		}
	}
	if len(view.Applications) == 0 {
		view.Message = "No applications yet."
	}
	return view
}

func loadAnalytics(in Input) any {
	return AnalyticsView{Metrics: []Metric{
		{Name: "Open Jobs", Value: len(in.Jobs)},
		{Name: "Applications", Value: len(in.Applications)},
		{Name: "Unread Notifications", Value: in.Unread},
	}}
}

func loadJobManagement(in Input) any {
	view := JobManagementView{Rows: nonNilJobs(in.Jobs)}
	if len(in.Jobs) == 0 {
		view.Message = "No data yet"
	}
	return view
}

func loadCompanyDashboard(in Input) any {
	view := CompanyDashboardView{Pipeline: "Recruitment pipeline coming soon."}
	if in.User != nil {
		view.CompanyName = in.User.CompanyName
		for _, job := range in.Jobs {
			if job.Company == in.User.CompanyName {
				view.OpenPosts++
			}
		}
	}
	return view
}

func loadNotifications(in Input) any {
	items := slices.Clone(in.Notifications)
	if items == nil {
		items = []types.Notification{}
	}
	return NotificationsView{Items: items, Unread: in.Unread}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}

func nonNilJobs(jobs []catalog.Job) []catalog.Job {
	if jobs == nil {
		return []catalog.Job{}
	}
	return slices.Clone(jobs)
}

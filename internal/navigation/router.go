package navigation

import (
	"fmt"
	"slices"

	"github.com/jonathan/placement-portal/internal/types"
)

// ErrNavigationDenied indicates the section is not in the current role's menu.
type ErrNavigationDenied struct {
	Section types.Section
	Role    types.Role
}

func (e *ErrNavigationDenied) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("navigation to %q denied: no active menu", e.Section)
	}
	return fmt.Sprintf("navigation to %q denied for role %s", e.Section, e.Role)
}

// Loader runs the view loader for a section after the router commits a transition.
type Loader interface {
	Load(section types.Section)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(section types.Section)

// Load calls f(section).
func (f LoaderFunc) Load(section types.Section) {
	f(section)
}

// Router is the finite-state section dispatcher for one session.
// It is not safe for concurrent use; the portal serializes access.
type Router struct {
	loader     Loader
	role       types.Role
	menu       []types.MenuItem
	current    types.Section
	breadcrumb string
}

// NewRouter creates a router with an empty menu.
func NewRouter(loader Loader) *Router {
	return &Router{
		loader:     loader,
		current:    types.SectionDashboard,
		breadcrumb: DefaultBreadcrumb,
	}
}

// Initialize installs the role's menu and resets the state to the dashboard.
func (r *Router) Initialize(role types.Role) []types.MenuItem {
	r.role = role
	r.menu = MenuFor(role)
	r.current = types.SectionDashboard
	r.breadcrumb = r.labelFor(types.SectionDashboard)
	r.markActive()
	return slices.Clone(r.menu)
}

// Reset drops the menu, e.g. on logout.
func (r *Router) Reset() {
	r.role = ""
	r.menu = nil
	r.current = types.SectionDashboard
	r.breadcrumb = DefaultBreadcrumb
}

// Navigate activates section and invokes its loader. Navigating to the active
// section reloads it. A section outside the menu leaves the state unchanged.
func (r *Router) Navigate(section types.Section) error {
	if !r.inMenu(section) {
		return &ErrNavigationDenied{Section: section, Role: r.role}
	}
	r.current = section
	r.breadcrumb = r.labelFor(section)
	r.markActive()
	if r.loader != nil {
		r.loader.Load(section)
	}
	return nil
}

// Current returns the active section.
func (r *Router) Current() types.Section {
	return r.current
}

// State returns a snapshot of the navigation state.
func (r *Router) State() types.NavigationState {
	menu := slices.Clone(r.menu)
	if menu == nil {
		menu = []types.MenuItem{}
	}
	return types.NavigationState{
		CurrentSection: r.current,
		Breadcrumb:     r.breadcrumb,
		Menu:           menu,
	}
}

func (r *Router) inMenu(section types.Section) bool {
	return slices.ContainsFunc(r.menu, func(item types.MenuItem) bool {
		return item.Section == section
	})
}

func (r *Router) labelFor(section types.Section) string {
	for _, item := range r.menu {
		if item.Section == section {
			return item.Label
		}
	}
	return DefaultBreadcrumb
}

func (r *Router) markActive() {
	for i := range r.menu {
		r.menu[i].Active = r.menu[i].Section == r.current
	}
}

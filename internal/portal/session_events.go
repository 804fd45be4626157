package portal

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonathan/placement-portal/internal/navigation"
	"github.com/jonathan/placement-portal/internal/session"
	"github.com/jonathan/placement-portal/internal/tasks"
	"github.com/jonathan/placement-portal/internal/types"
)

const loginTaskKey = "login"

// userMessenger is implemented by errors that carry a user-facing notice.
type userMessenger interface {
	UserMessage() string
}

// Login authenticates req. On success the session, profile, and dashboard
// navigation state are established immediately; the main app is shown after
// the configured confirmation delay. A newer login cancels a pending confirmation.
func (a *App) Login(req types.LoginRequest) (*types.Session, *tasks.Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	user, err := a.sessions.Authenticate(req.Role, req.Identity, req.Secret)
	if err != nil {
		a.logger.Info("login rejected",
			slog.String("role", string(req.Role)),
			slog.String("identity", req.Identity),
			slog.String("reason", err.Error()))
		message := "Login failed"
		var um userMessenger
		if errors.As(err, &um) {
			message = um.UserMessage()
		}
		a.notice("login_failed", types.SeverityError, map[string]string{"Reason": message})
		return nil, nil, err
	}

	// The previous session's deferred work must not touch the new one.
	a.scheduler.CancelAll()
	a.profile.Attach(user)
	a.router.Initialize(user.Role)

	sid := a.sessions.ID()
	a.logger.Info("login accepted",
		slog.String("role", string(user.Role)),
		slog.String("identity", user.Identity),
		slog.String("session_id", sid.String()))

	handle := a.scheduler.Schedule(loginTaskKey, a.cfg.LoginDelay, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if !a.stillCurrent(sid) {
			return
		}
		snapshot := a.profile.User()
		a.renderer.ShowMainApp(snapshot, a.router.State().Menu)
		if err := a.router.Navigate(types.SectionDashboard); err != nil {
			a.logger.Error("dashboard unavailable after login", slog.String("error", err.Error()))
		}
		a.notice("welcome", types.SeveritySuccess, map[string]string{"Name": snapshot.DisplayName})
	})

	current := a.sessions.Current()
	current.User = a.profile.User()
	return current, handle, nil
}

// Logout ends the session. Without a session it does nothing.
func (a *App) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sessions.Active() {
		a.logout()
	}
}

// LogoutSession ends the session only if id still names it, and reports
// whether it did.
func (a *App) LogoutSession(id uuid.UUID) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.stillCurrent(id) {
		return false
	}
	a.logout()
	return true
}

func (a *App) logout() {
	sid := a.sessions.ID()
	cancelled := a.scheduler.CancelAll()
	a.sessions.Logout()
	a.profile.Detach()
	a.router.Reset()

	a.logger.Info("logout", slog.String("session_id", sid.String()), slog.Int("cancelled_tasks", cancelled))
	a.renderer.ShowLoginScreen()
	a.notice("logged_out", types.SeverityInfo, nil)
}

// Navigate activates section. Sections outside the role's menu are ignored
// silently; the error is returned for callers that want to report it.
func (a *App) Navigate(section types.Section) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.router.Navigate(section); err != nil {
		var denied *navigation.ErrNavigationDenied
		if errors.As(err, &denied) {
			a.logger.Debug("navigation ignored", slog.String("section", string(section)), slog.String("role", string(denied.Role)))
		}
		return err
	}
	return nil
}

// QuickAction runs the dashboard call-to-action for the current role.
func (a *App) QuickAction() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.requireSession(); err != nil {
		return a.unavailable(err)
	}
	switch a.sessions.Current().User.Role {
	case types.RoleStudent:
		return a.router.Navigate(types.SectionJobs)
	case types.RoleCompany:
		a.renderer.OpenDialog(DialogJobPost)
		return nil
	default:
		return a.router.Navigate(types.SectionAnalytics)
	}
}

// DialogJobPost is the job-post form dialog id.
const DialogJobPost = "jobPost"

// IsAuthError reports whether err is a rejected login.
func IsAuthError(err error) bool {
	var invalid *session.ErrInvalidCredentials
	var mismatch *session.ErrRoleMismatch
	return errors.As(err, &invalid) || errors.As(err, &mismatch)
}

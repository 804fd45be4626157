// Package portal is the application state object: it owns the session, profile,
// and navigation state and handles every inbound UI event.
package portal

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/placement-portal/internal/catalog"
	"github.com/jonathan/placement-portal/internal/chatbot"
	"github.com/jonathan/placement-portal/internal/config"
	"github.com/jonathan/placement-portal/internal/navigation"
	"github.com/jonathan/placement-portal/internal/profile"
	"github.com/jonathan/placement-portal/internal/prompts"
	"github.com/jonathan/placement-portal/internal/sections"
	"github.com/jonathan/placement-portal/internal/session"
	"github.com/jonathan/placement-portal/internal/tasks"
	"github.com/jonathan/placement-portal/internal/types"
)

// ErrNoSession is returned by handlers that need an authenticated user.
var ErrNoSession = errors.New("no active session")

// Options configures an App.
type Options struct {
	Config      *config.Config
	Credentials session.CredentialSource
	Renderer    Renderer
	Logger      *slog.Logger
	Chatbot     *chatbot.Engine
	Registry    *sections.Registry
}

// App serializes every event on one mutex, so handlers and timer callbacks
// never interleave and each leaves state consistent before returning.
type App struct {
	mu sync.Mutex

	cfg       *config.Config
	logger    *slog.Logger
	renderer  Renderer
	validate  *validator.Validate
	chatbot   *chatbot.Engine
	registry  *sections.Registry
	scheduler *tasks.Scheduler

	sessions      *session.Manager
	profile       *profile.Store
	router        *navigation.Router
	notifications *catalog.NotificationStore
	jobs          []catalog.Job
	applications  []sections.Application
}

// New wires an App from opts.
func New(opts Options) (*App, error) {
	if opts.Credentials == nil {
		return nil, fmt.Errorf("credentials are required")
	}
	if opts.Renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if err := prompts.ValidateNotices(); err != nil {
		return nil, fmt.Errorf("invalid notice text: %w", err)
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	completion, err := profile.CompletionFor(cfg.CompletionMode)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bot := opts.Chatbot
	if bot == nil {
		bot = chatbot.NewDefault()
	}
	registry := opts.Registry
	if registry == nil {
		registry = sections.DefaultRegistry()
	}

	a := &App{
		cfg:           cfg,
		logger:        logger,
		renderer:      opts.Renderer,
		validate:      validator.New(),
		chatbot:       bot,
		registry:      registry,
		scheduler:     tasks.NewScheduler(logger),
		sessions:      session.NewManager(opts.Credentials),
		profile:       profile.NewStore(completion),
		notifications: catalog.NewNotificationStore(),
		jobs:          catalog.Jobs(),
	}
	a.router = navigation.NewRouter(navigation.LoaderFunc(a.loadSection))
	return a, nil
}

// loadSection runs with a.mu held, from router.Navigate.
func (a *App) loadSection(section types.Section) {
	view, err := a.registry.Load(section, a.sectionInput())
	if err != nil {
		a.logger.Error("section loader failed", slog.String("section", string(section)), slog.String("error", err.Error()))
		return
	}
	a.renderer.SetActiveMenuItem(section)
	a.renderer.Render(section, view)
}

func (a *App) sectionInput() sections.Input {
	return sections.Input{
		User:          a.profile.User(),
		Notifications: a.notifications.List(),
		Unread:        a.notifications.Unread(),
		Jobs:          append([]catalog.Job(nil), a.jobs...),
		Applications:  append([]sections.Application(nil), a.applications...),
	}
}

// refresh reloads the active section when it is one of affected.
func (a *App) refresh(affected ...types.Section) {
	current := a.router.Current()
	for _, section := range affected {
		if section == current {
			if err := a.router.Navigate(current); err != nil {
				a.logger.Debug("refresh skipped", slog.String("error", err.Error()))
			}
			return
		}
	}
}

// notice shows the named notice from the prompts catalog.
func (a *App) notice(key string, severity types.Severity, data map[string]string) {
	title, body, err := prompts.Notice(key, data)
	if err != nil {
		a.logger.Error("notice text missing", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	a.renderer.ShowTransientMessage(title, body, severity)
}

// requireSession returns the live session id.
func (a *App) requireSession() (uuid.UUID, error) {
	if !a.sessions.Active() {
		return uuid.Nil, ErrNoSession
	}
	return a.sessions.ID(), nil
}

// stillCurrent reports whether a deferred task belongs to the live session.
func (a *App) stillCurrent(sid uuid.UUID) bool {
	return a.sessions.Active() && a.sessions.ID() == sid
}

// unavailable turns profile errors into a user notice.
func (a *App) unavailable(err error) error {
	switch {
	case errors.Is(err, ErrNoSession):
		a.notice("not_signed_in", types.SeverityWarning, nil)
	case errors.Is(err, profile.ErrProfileUnavailable):
		a.notice("student_only", types.SeverityWarning, nil)
	}
	return err
}

// SessionID returns the live session id, or uuid.Nil.
func (a *App) SessionID() uuid.UUID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessions.ID()
}

// Session returns a snapshot of the live session, or nil.
func (a *App) Session() *types.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	current := a.sessions.Current()
	if current != nil {
		// The profile store owns the live fields.
		current.User = a.profile.User()
	}
	return current
}

// SessionFor returns a snapshot of the live session if id names it, or nil.
func (a *App) SessionFor(id uuid.UUID) *types.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.stillCurrent(id) {
		return nil
	}
	current := a.sessions.Current()
	current.User = a.profile.User()
	return current
}

// Navigation returns a snapshot of the navigation state.
func (a *App) Navigation() types.NavigationState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.router.State()
}

// Profile returns a snapshot of the authenticated user, or nil.
func (a *App) Profile() *types.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profile.User()
}

// PendingTasks returns the number of deferred tasks still waiting to run.
func (a *App) PendingTasks() int {
	return a.scheduler.Pending()
}

// Close cancels all deferred work.
func (a *App) Close() {
	a.scheduler.CancelAll()
}

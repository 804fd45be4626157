package portal

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/placement-portal/internal/catalog"
	"github.com/jonathan/placement-portal/internal/navigation"
	"github.com/jonathan/placement-portal/internal/profile"
	"github.com/jonathan/placement-portal/internal/sections"
	"github.com/jonathan/placement-portal/internal/tasks"
	"github.com/jonathan/placement-portal/internal/types"
)

// defaultPoster names jobs posted by campus staff.
const defaultPoster = "Campus Placement Cell"

// SendChat echoes text on surface and appends the bot reply after the chat
// delay. Blank text is ignored and returns a nil handle.
func (a *App) SendChat(req types.ChatRequest) (*tasks.Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid chat request: %w", err)
	}
	if _, err := a.requireSession(); err != nil {
		return nil, a.unavailable(err)
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, nil
	}
	surface := req.Surface
	if surface == "" {
		surface = types.SurfaceWidget
	}

	a.renderer.AppendChatMessage(surface, SenderUser, text)
	sid := a.sessions.ID()
	return a.scheduler.Schedule("", a.cfg.ChatDelay, func() {
		reply := a.chatbot.Respond(text)
		a.mu.Lock()
		defer a.mu.Unlock()
		if !a.stillCurrent(sid) {
			return
		}
		a.renderer.AppendChatMessage(surface, SenderBot, reply)
	}), nil
}

// SubmitApplication records an application for the signed-in student.
func (a *App) SubmitApplication(req types.ApplicationRequest) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid application: %w", err)
	}
	if err := a.editableProfile(); err != nil {
		return a.unavailable(err)
	}
	a.applications = append(a.applications, sections.Application{
		JobID:       req.JobID,
		Applicant:   a.profile.User().Identity,
		CoverLetter: req.CoverLetter,
	})
	a.notice("applied", types.SeveritySuccess, nil)
	a.refresh(types.SectionApplications, types.SectionAnalytics)
	return nil
}

// SubmitJobPost publishes a job, or saves a draft when req.Draft is set.
// Only roles that can reach job management may post.
func (a *App) SubmitJobPost(req types.JobPostRequest) (*catalog.Job, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid job post: %w", err)
	}
	if _, err := a.requireSession(); err != nil {
		return nil, a.unavailable(err)
	}
	user := a.profile.User()
	if !navigation.Allows(user.Role, types.SectionJobManagement) {
		a.notice("cannot_post", types.SeverityWarning, nil)
		return nil, fmt.Errorf("%w: role %s cannot post jobs", profile.ErrProfileUnavailable, user.Role)
	}
	if req.Draft {
		a.notice("job_draft_saved", types.SeveritySuccess, nil)
		return nil, nil
	}

	company := user.CompanyName
	if company == "" {
		company = defaultPoster
	}
	job := catalog.Job{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(req.Title),
		Company:  company,
		Location: strings.TrimSpace(req.Location),
		Salary:   strings.TrimSpace(req.Salary),
	}
	a.jobs = append(a.jobs, job)
	a.logger.Info("job posted", slog.String("job_id", job.ID), slog.String("company", company))
	a.notice("job_posted", types.SeveritySuccess, nil)
	a.refresh(types.SectionJobManagement, types.SectionCompanyDashboard, types.SectionAnalytics)
	return &job, nil
}

// SavePrivacy acknowledges the privacy settings form.
func (a *App) SavePrivacy() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.requireSession(); err != nil {
		return a.unavailable(err)
	}
	a.notice("privacy_saved", types.SeveritySuccess, nil)
	return nil
}

// MarkNotificationRead marks one notification read and refreshes views that show the count.
func (a *App) MarkNotificationRead(id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.requireSession(); err != nil {
		return a.unavailable(err)
	}
	if err := a.notifications.MarkRead(id); err != nil {
		return err
	}
	a.refresh(types.SectionNotifications, types.SectionAnalytics)
	return nil
}

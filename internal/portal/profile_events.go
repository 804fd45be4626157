package portal

import (
	"fmt"
	"log/slog"

	"github.com/jonathan/placement-portal/internal/profile"
	"github.com/jonathan/placement-portal/internal/skills"
	"github.com/jonathan/placement-portal/internal/tasks"
	"github.com/jonathan/placement-portal/internal/types"
)

// profileSections show data derived from the profile store.
var profileSections = []types.Section{types.SectionProfile, types.SectionDashboard}

func (a *App) editableProfile() error {
	if _, err := a.requireSession(); err != nil {
		return err
	}
	if !a.profile.User().IsStudent() {
		return profile.ErrProfileUnavailable
	}
	return nil
}

// ToggleSkill flips membership of name in the skill set and reports whether it is now selected.
func (a *App) ToggleSkill(name string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editableProfile(); err != nil {
		return false, a.unavailable(err)
	}
	selected, err := a.profile.ToggleSkill(name)
	if err != nil {
		return false, a.unavailable(err)
	}
	a.refresh(profileSections...)
	return selected, nil
}

// AddCertification appends name; blank input is ignored.
func (a *App) AddCertification(name string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editableProfile(); err != nil {
		return false, a.unavailable(err)
	}
	added, err := a.profile.AddCertification(name)
	if err != nil {
		return false, a.unavailable(err)
	}
	if added {
		a.refresh(profileSections...)
	}
	return added, nil
}

// UpdatePersonal applies the well-formed personal fields.
func (a *App) UpdatePersonal(fields types.PersonalFields) (profile.FieldReport, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editableProfile(); err != nil {
		return profile.FieldReport{}, a.unavailable(err)
	}
	report, err := a.profile.UpdatePersonal(fields)
	if err != nil {
		return report, a.unavailable(err)
	}
	a.logFieldReport("personal", report)
	a.notice("personal_saved", types.SeveritySuccess, nil)
	a.refresh(profileSections...)
	return report, nil
}

// UpdateAcademic applies the well-formed academic fields.
func (a *App) UpdateAcademic(fields types.AcademicFields) (profile.FieldReport, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editableProfile(); err != nil {
		return profile.FieldReport{}, a.unavailable(err)
	}
	report, err := a.profile.UpdateAcademic(fields)
	if err != nil {
		return report, a.unavailable(err)
	}
	a.logFieldReport("academic", report)
	a.notice("academic_saved", types.SeveritySuccess, nil)
	a.refresh(profileSections...)
	return report, nil
}

// UpdatePreferences replaces the preferences record.
func (a *App) UpdatePreferences(req types.PreferencesRequest) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editableProfile(); err != nil {
		return a.unavailable(err)
	}
	if err := a.profile.SetPreferences(req.JobTypes, req.Locations, req.SalaryRange); err != nil {
		return a.unavailable(err)
	}
	a.notice("preferences_saved", types.SeveritySuccess, nil)
	a.refresh(profileSections...)
	return nil
}

// Completion returns the current completion indicator.
func (a *App) Completion() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profile.RecomputeCompletion()
}

func (a *App) logFieldReport(form string, report profile.FieldReport) {
	if len(report.Rejected) == 0 {
		return
	}
	a.logger.Debug("malformed fields retained previous values",
		slog.String("form", form),
		slog.Any("fields", report.Rejected))
}

// UploadResume shows the file details immediately and the simulated parse
// result after the configured delay. Uploads are never coalesced.
func (a *App) UploadResume(file types.ResumeFile) (*tasks.Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.validate.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid resume file: %w", err)
	}
	if err := a.editableProfile(); err != nil {
		return nil, a.unavailable(err)
	}
	a.renderer.Render(types.SectionProfile, skills.DescribeUpload(file))

	sid := a.sessions.ID()
	return a.scheduler.Schedule("", a.cfg.ResumeDelay, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if !a.stillCurrent(sid) {
			return
		}
		summary := skills.ParseResume(file, a.profile.User())
		a.renderer.Render(types.SectionProfile, summary)
		a.notice("resume_parsed", types.SeveritySuccess, nil)
	}), nil
}

// RunSkillGap compares the skill set with the target list and renders a roadmap.
func (a *App) RunSkillGap() (skills.Roadmap, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editableProfile(); err != nil {
		return skills.Roadmap{}, a.unavailable(err)
	}
	roadmap := skills.BuildRoadmap(skills.AnalyzeSkillGap(a.profile.User().Skills))
	a.renderer.Render(types.SectionProfile, roadmap)
	a.notice("skill_gap_ready", types.SeveritySuccess, nil)
	return roadmap, nil
}

package server

import (
	"net/http"

	"github.com/jonathan/placement-portal/internal/types"
)

func (s *Server) handleToggleSkill(w http.ResponseWriter, r *http.Request) {
	var req types.SkillRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	selected, err := s.app.ToggleSkill(req.Skill)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skill": req.Skill, "selected": selected})
}

func (s *Server) handleAddCertification(w http.ResponseWriter, r *http.Request) {
	var req types.CertificationRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	added, err := s.app.AddCertification(req.Name)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"added": added})
}

func (s *Server) handleUpdatePersonal(w http.ResponseWriter, r *http.Request) {
	var req types.PersonalFields
	if err := s.decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	report, err := s.app.UpdatePersonal(req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleUpdateAcademic(w http.ResponseWriter, r *http.Request) {
	var req types.AcademicFields
	if err := s.decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	report, err := s.app.UpdateAcademic(req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req types.PreferencesRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.app.UpdatePreferences(req); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.app.Profile().Preferences)
}

// handleUploadResume accepts file metadata; the parse result arrives on the event stream.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	var req types.ResumeFile
	if err := s.decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	task, err := s.app.UploadResume(req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusAccepted, map[string]string{"task_id": task.ID.String()})
}

func (s *Server) handleSkillGap(w http.ResponseWriter, _ *http.Request) {
	roadmap, err := s.app.RunSkillGap()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, roadmap)
}

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/placement-portal/internal/types"
)

// handleChat echoes the message now; the bot reply arrives on the event stream.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	task, err := s.app.SendChat(req)
	if err != nil {
		s.fail(w, err)
		return
	}
	if task == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.jsonResponse(w, http.StatusAccepted, map[string]string{"task_id": task.ID.String()})
}

func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req types.ApplicationRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.app.SubmitApplication(req); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"job_id": req.JobID})
}

func (s *Server) handleSubmitJobPost(w http.ResponseWriter, r *http.Request) {
	var req types.JobPostRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	job, err := s.app.SubmitJobPost(req)
	if err != nil {
		s.fail(w, err)
		return
	}
	if job == nil {
		s.jsonResponse(w, http.StatusOK, map[string]bool{"draft": true})
		return
	}
	s.jsonResponse(w, http.StatusCreated, job)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.fail(w, &ErrValidation{Field: "id", Message: "must be an integer"})
		return
	}
	if err := s.app.MarkNotificationRead(id); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSavePrivacy(w http.ResponseWriter, _ *http.Request) {
	if err := s.app.SavePrivacy(); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

const heartbeatInterval = 15 * time.Second

// handleEvents streams renderer output as Server-Sent Events until the client leaves.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	outputs, unsubscribe := s.events.Subscribe()
	defer unsubscribe()

	if err := sse.WriteEvent("ready", map[string]int{"subscribers": s.events.Subscribers()}); err != nil {
		return
	}
	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			if err := sse.WriteHeartbeat(); err != nil {
				return
			}
		case o, ok := <-outputs:
			if !ok {
				return
			}
			if err := sse.WriteEvent(o.Kind, o); err != nil {
				return
			}
		}
	}
}

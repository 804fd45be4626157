package server

import (
	"net/http"

	"github.com/jonathan/placement-portal/internal/server/middleware"
	"github.com/jonathan/placement-portal/internal/types"
)

// handleLogin authenticates and returns a token bound to the new session.
// The main app appears on the event stream after the confirmation delay.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}

	sess, _, err := s.app.Login(req)
	if err != nil {
		s.fail(w, err)
		return
	}

	token, err := s.jwtService.GenerateToken(sess.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.LoginResponse{
		User:      sess.User,
		SessionID: sess.ID,
		Token:     token,
	})
}

// handleLogout ends the session named by the token. A session that ended
// between authentication and this call is reported as unauthorized.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID, err := middleware.GetSessionID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "no active session")
		return
	}
	if !s.app.LogoutSession(sessionID) {
		s.errorResponse(w, http.StatusUnauthorized, "session has ended")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := middleware.GetSessionID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "no active session")
		return
	}
	sess := s.app.SessionFor(sessionID)
	if sess == nil {
		s.errorResponse(w, http.StatusUnauthorized, "session has ended")
		return
	}
	s.jsonResponse(w, http.StatusOK, types.SessionResponse{
		User:       sess.User,
		SessionID:  sess.ID,
		Navigation: s.app.Navigation(),
	})
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req types.NavigateRequest
	if err := s.decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.app.Navigate(req.Section); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.app.Navigation())
}

func (s *Server) handleQuickAction(w http.ResponseWriter, _ *http.Request) {
	if err := s.app.QuickAction(); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.app.Navigation())
}

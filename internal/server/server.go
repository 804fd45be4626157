package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/placement-portal/internal/config"
	"github.com/jonathan/placement-portal/internal/credentials"
	"github.com/jonathan/placement-portal/internal/portal"
	"github.com/jonathan/placement-portal/internal/server/middleware"
	"github.com/jonathan/placement-portal/internal/server/ratelimit"
	"golang.org/x/sync/errgroup"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	app         *portal.App
	events      *Broadcaster
	jwtService  *JWTService
	rateLimiter *ratelimit.Limiter
	validator   *validator.Validate
	logger      *slog.Logger
}

// Config holds server configuration
type Config struct {
	Port      int
	Portal    *config.Config
	JWT       *config.JWTConfig
	Password  *config.PasswordConfig
	RateLimit *ratelimit.Config
	Logger    *slog.Logger
}

// New creates a new server instance with its own portal engine.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Password == nil {
		passwordConfig, err := config.NewPasswordConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create password config: %w", err)
		}
		cfg.Password = passwordConfig
	}
	if cfg.JWT == nil {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		cfg.JWT = jwtConfig
	}
	if cfg.JWT.Ephemeral {
		logger.Warn("JWT_SECRET not set, tokens will not survive a restart")
	}
	if cfg.RateLimit == nil {
		cfg.RateLimit = ratelimit.LoadConfig()
	}

	store, err := credentials.NewStore(cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	events := NewBroadcaster(logger)
	app, err := portal.New(portal.Options{
		Config:      cfg.Portal,
		Credentials: store,
		Renderer:    events.Renderer(),
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create portal: %w", err)
	}

	s := &Server{
		app:         app,
		events:      events,
		jwtService:  NewJWTService(cfg.JWT),
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		validator:   validator.New(),
		logger:      logger,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // event streams stay open
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// Handler builds the routed handler with the middleware chain.
func (s *Server) Handler() http.Handler {
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator(), s.isLiveSession)
	protected := func(h http.HandlerFunc) http.Handler { return auth(h) }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /events", s.handleEvents)

	mux.Handle("POST /logout", protected(s.handleLogout))
	mux.Handle("GET /session", protected(s.handleSession))
	mux.Handle("POST /navigate", protected(s.handleNavigate))
	mux.Handle("POST /quick-action", protected(s.handleQuickAction))

	mux.Handle("POST /profile/skills/toggle", protected(s.handleToggleSkill))
	mux.Handle("POST /profile/certifications", protected(s.handleAddCertification))
	mux.Handle("PUT /profile/personal", protected(s.handleUpdatePersonal))
	mux.Handle("PUT /profile/academic", protected(s.handleUpdateAcademic))
	mux.Handle("PUT /profile/preferences", protected(s.handleUpdatePreferences))
	mux.Handle("POST /resume", protected(s.handleUploadResume))
	mux.Handle("POST /skill-gap", protected(s.handleSkillGap))

	mux.Handle("POST /chat", protected(s.handleChat))
	mux.Handle("POST /applications", protected(s.handleSubmitApplication))
	mux.Handle("POST /job-posts", protected(s.handleSubmitJobPost))
	mux.Handle("POST /notifications/{id}/read", protected(s.handleMarkNotificationRead))
	mux.Handle("POST /settings/privacy", protected(s.handleSavePrivacy))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// App returns the portal engine behind the server.
func (s *Server) App() *portal.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled or the listener fails.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", slog.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.close()
	if err == nil {
		s.logger.Info("server stopped")
	}
	return err
}

func (s *Server) close() {
	s.rateLimiter.Stop()
	s.app.Close()
}

func (s *Server) isLiveSession(id uuid.UUID) bool {
	return id != uuid.Nil && s.app.SessionID() == id
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Flush keeps event streams working through the logging wrapper.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a JSON body into dst and runs struct validation.
func (s *Server) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	if err := s.validator.Struct(dst); err != nil {
		return err
	}
	return nil
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", slog.String("error", err.Error()))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// fail maps err to its status and writes it.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	message := validationMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", slog.String("error", err.Error()))
		message = "internal error"
	}
	s.errorResponse(w, status, message)
}

// extractClientID extracts the client identifier from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds())
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded",
		slog.Int("limit", info.Limit),
		slog.Time("reset_at", info.ResetTime))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

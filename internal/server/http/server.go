// Package httpserver exposes the auth, notes and todos services over HTTP/JSON.
package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/and161185/notes-api/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/uuid/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// DefaultCORSOrigin is the browser origin allowed when none is configured.
const DefaultCORSOrigin = "http://localhost:3000"

const healthPingTimeout = 2 * time.Second

// TokenVerifier validates a bearer token and returns the user it was issued to.
type TokenVerifier interface {
	Verify(raw string) (uuid.UUID, error)
}

// Pinger checks reachability of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options carries optional server settings.
type Options struct {
	CORSOrigin string
	// Registry receives the HTTP metrics and backs /metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
	// Pinger backs /health. Without it /health always reports ok.
	Pinger Pinger
}

// Server routes HTTP requests to the services.
type Server struct {
	auth    service.AuthService
	notes   service.NoteService
	todos   service.TodoService
	tokens  TokenVerifier
	log     *zap.Logger
	opts    Options
	reg     *prometheus.Registry
	metrics *metrics
}

// New constructs a Server.
func New(auth service.AuthService, notes service.NoteService, todos service.TodoService, tokens TokenVerifier, log *zap.Logger, opts Options) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = DefaultCORSOrigin
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &Server{
		auth:    auth,
		notes:   notes,
		todos:   todos,
		tokens:  tokens,
		log:     log,
		opts:    opts,
		reg:     reg,
		metrics: newMetrics(reg),
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, s.requestLogger, s.metrics.middleware, s.recoverer, cors(s.opts.CORSOrigin))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", s.handleRegister)
		api.Post("/auth/login", s.handleLogin)

		api.Route("/notes", func(nr chi.Router) {
			nr.Use(s.authGate)
			nr.Get("/", s.handleListNotes)
			nr.Post("/", s.handleCreateNote)
			nr.Put("/{id}", s.handleUpdateNote)
			nr.Patch("/{id}", s.handleUpdateNote)
			nr.Delete("/{id}", s.handleDeleteNote)
		})

		api.Route("/todos", func(tr chi.Router) {
			tr.Get("/", s.handleListTodos)
			tr.Post("/", s.handleCreateTodo)
			tr.Get("/{id}", s.handleGetTodo)
			tr.Put("/{id}", s.handleReplaceTodo)
			tr.Patch("/{id}", s.handlePatchTodo)
			tr.Delete("/{id}", s.handleDeleteTodo)
		})
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.opts.Pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := s.opts.Pinger.Ping(ctx); err != nil {
			s.log.Warn("health: db ping failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]bool{"ok": false})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// serverFault logs an unexpected error; the client only sees the route's fixed message.
func (s *Server) serverFault(r *http.Request, op string, err error) {
	s.log.Error(op,
		zap.Error(err),
		zap.String("request_id", chimw.GetReqID(r.Context())),
	)
}

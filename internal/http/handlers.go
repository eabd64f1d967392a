package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"farma-vida/pkg"
)

// AssistantService answers one operator query end to end.
type AssistantService interface {
	Answer(ctx context.Context, query string) pkg.AssistantResult
}

// StatsProvider serves the pharmacist dashboard counters.
type StatsProvider interface {
	DashboardStats(ctx context.Context) (*pkg.DashboardStats, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server bundles together the dependencies required by HTTP handlers.  It
// implements http.Handler so it can be passed to http.ListenAndServe.
type Server struct {
	Assistant AssistantService
	Stats     StatsProvider
	DB        Pinger
	Log       *zap.Logger
}

// NewServer constructs a Server.
func NewServer(assistant AssistantService, stats StatsProvider, db Pinger, log *zap.Logger) *Server {
	return &Server{Assistant: assistant, Stats: stats, DB: db, Log: log}
}

// ServeHTTP dispatches incoming requests based on the URL path.  Minimal
// routing logic is implemented here to keep dependencies light.  A recover
// guard ensures the worst case is a generic JSON error, never a stack trace.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			s.Log.Error("panic in handler", zap.Any("panic", rec), zap.String("path", r.URL.Path))
			writeJSON(w, http.StatusInternalServerError, pkg.AssistantResult{
				OK:       false,
				Response: "Error interno. Inténtalo de nuevo más tarde.",
			})
		}
	}()

	switch {
	// Assistant query: POST only, since it triggers a paid external call.
	case r.URL.Path == "/admin/assistant/api":
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.handleAssistant(w, r)
	case r.URL.Path == "/api/stats/dashboard" && r.Method == http.MethodGet:
		s.handleDashboardStats(w, r)
	case r.URL.Path == "/healthz" && r.Method == http.MethodGet:
		s.handleHealth(w, r)
	case r.URL.Path == "/metrics" && r.Method == http.MethodGet:
		promhttp.Handler().ServeHTTP(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleAssistant accepts {"message": "<text>"} and replies with
// {"ok": bool, "response": string}.  An empty message is rejected before any
// downstream work; a failed query maps to 503 while a provider safety
// decline stays a 200 with an apologetic response.
func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	var req pkg.AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, pkg.AssistantResult{OK: false, Response: "No message provided."})
		return
	}

	result := s.Assistant.Answer(r.Context(), req.Message)
	status := http.StatusOK
	if !result.OK {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, result)
}

// handleDashboardStats returns the pharmacist dashboard counters as JSON.
func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Stats.DashboardStats(r.Context())
	if err != nil {
		s.Log.Error("dashboard stats query failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "no se pudieron cargar las estadísticas"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleHealth reports liveness, including database reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.DB.PingContext(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RunFunc executes one complete validation run.
type RunFunc func(ctx context.Context) (*domain.Report, error)

// Server exposes validation runs over HTTP. Runs are serialised: a request that
// arrives while a run is in progress waits for it to finish.
type Server struct {
	Run     RunFunc
	Metrics http.Handler
	Logger  *slog.Logger

	mu sync.Mutex
}

// NewHandler creates the HTTP handler. metrics may be nil.
func NewHandler(run RunFunc, metrics http.Handler, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	server := &Server{Run: run, Metrics: metrics, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", server.Health)
	r.Get("/report", server.Report)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// Report handles GET /report: it runs the batch and returns the JSON report.
func (s *Server) Report(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	report, err := s.Run(r.Context())
	s.mu.Unlock()

	if err != nil {
		s.Logger.Error("Report: run aborted", "error", err)
	}
	if report == nil {
		http.Error(w, "run produced no report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusCode(report.Status))
	if err := json.NewEncoder(w).Encode(report); err != nil {
		s.Logger.Error("Report response encode failed", "error", err)
	}
}

// StatusCode maps a run status to an HTTP status.
func StatusCode(status domain.Status) int {
	switch status {
	case domain.StatusPassed, domain.StatusEmpty:
		return http.StatusOK
	case domain.StatusFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

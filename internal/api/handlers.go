// v2
// internal/api/handlers.go

// Package api exposes the running simulation over HTTP: current state,
// the diagnostic views and the Prometheus scrape endpoint.
package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/hyve-systems-inc/simulations-sub001/internal/diag"
	"github.com/hyve-systems-inc/simulations-sub001/internal/observability"
)

// Server serves read-only views over a diagnostics monitor. The monitor is
// the single source of truth; handlers never mutate the run.
type Server struct {
	mon     *diag.Monitor
	log     *slog.Logger
	metrics *observability.Metrics
}

func NewServer(mon *diag.Monitor, log *slog.Logger, metrics *observability.Metrics) *Server {
	return &Server{mon: mon, log: log, metrics: metrics}
}

// Router builds the route table. accessLog receives combined-format access
// lines; pass io.Discard to silence them.
func (s *Server) Router(accessLog io.Writer) http.Handler {
	r := mux.NewRouter()

	route := func(path string, h http.HandlerFunc) {
		r.Handle(path, s.metrics.WrapHandler(path, h)).Methods(http.MethodGet)
	}

	route("/health", s.handleHealth)
	route("/state", s.handleState)
	route("/diagnostics/energy", s.handleEnergy)
	route("/diagnostics/moisture", s.handleMoisture)
	route("/diagnostics/performance", s.handlePerformance)
	route("/diagnostics/stability", s.handleStability)
	route("/diagnostics/validation", s.handleValidation)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	s.log.Info("http routes registered")
	return handlers.CombinedLoggingHandler(accessLog, handlers.RecoveryHandler()(r))
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.mon.State())
}

func (s *Server) handleEnergy(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.mon.EnergyBalance())
}

func (s *Server) handleMoisture(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.mon.MoistureBalance())
}

func (s *Server) handlePerformance(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.mon.Performance())
}

func (s *Server) handleStability(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.mon.Stability())
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.mon.Validate())
}

// Package health provides a lightweight HTTP server for health checks, metrics
// and the latest analysis result.
package health

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/edge-analysis/internal/report"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp,omitempty"`
	Version   string `json:"version,omitempty"`
}

// ReadyResponse represents the JSON response for readiness check endpoints.
type ReadyResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks,omitempty"`
	LastRun string            `json:"last_run,omitempty"`
}

// ScenarioResponse pairs a scenario with its staking recommendation.
type ScenarioResponse struct {
	RunID          string      `json:"run_id"`
	Scenario       interface{} `json:"scenario"`
	Recommendation interface{} `json:"recommendation,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server serves health probes, Prometheus metrics and the latest result.
type Server struct {
	serviceName    string
	version        string
	port           string
	metricsPath    string
	metricsHandler http.Handler
	router         *mux.Router
	server         *http.Server
	logger         *logrus.Logger
	mu             sync.RWMutex
	latest         *report.Result
}

// Config holds the configuration for the health server.
type Config struct {
	ServiceName    string
	Version        string
	Port           string
	MetricsPath    string
	MetricsHandler http.Handler
	Logger         *logrus.Logger
}

// NewServer creates a new health check server.
func NewServer(cfg Config) *Server {
	port := cfg.Port
	if port == "" {
		port = os.Getenv("HEALTH_PORT")
	}
	if port == "" {
		port = "8080"
	}
	metricsPath := cfg.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	s := &Server{
		serviceName:    cfg.ServiceName,
		version:        cfg.Version,
		port:           port,
		metricsPath:    metricsPath,
		metricsHandler: cfg.MetricsHandler,
		logger:         cfg.Logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/live", s.handleLive).Methods(http.MethodGet)
	r.HandleFunc("/ready", s.handleReady).Methods(http.MethodGet)
	r.HandleFunc("/report", s.handleReport).Methods(http.MethodGet)
	r.HandleFunc("/scenarios/{name}", s.handleScenario).Methods(http.MethodGet)
	if s.metricsHandler != nil {
		r.Handle(s.metricsPath, s.metricsHandler).Methods(http.MethodGet)
	}
	return r
}

// Handler returns the server's router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// SetResult publishes the latest analysis result and marks the server ready.
func (s *Server) SetResult(result *report.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = result
}

// Result returns the latest analysis result, if any.
func (s *Server) Result() *report.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// IsReady returns whether an analysis has completed.
func (s *Server) IsReady() bool {
	return s.Result() != nil
}

// Start starts the server in the background. It shuts down when ctx is done.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", ":"+s.port)
	if err != nil {
		return err
	}

	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{
				"port":    s.port,
				"service": s.serviceName,
			}).Info("Health server starting")
		}

		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.WithError(err).Error("Health server error")
			}
		}
	}()

	go func() {
		<-ctx.Done()
		s.Shutdown()
	}()

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	if s.logger != nil {
		s.logger.Info("Health server shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// handleHealth handles the /health endpoint - basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   s.serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   s.version,
	})
}

// handleLive handles the /live endpoint - kubernetes liveness probe.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: s.serviceName,
	})
}

// handleReady handles the /ready endpoint - ready once an analysis has completed.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	response := ReadyResponse{
		Service: s.serviceName,
		Checks:  map[string]string{},
	}

	result := s.Result()
	if result == nil {
		response.Status = "not_ready"
		response.Checks["analysis"] = "pending"
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	response.Status = "ok"
	response.Checks["analysis"] = "ok"
	response.LastRun = result.GeneratedAt.Format(time.RFC3339)
	writeJSON(w, http.StatusOK, response)
}

// handleReport serves the latest full result.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	result := s.Result()
	if result == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "no analysis has completed"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleScenario serves one scenario and its Kelly recommendation.
func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	result := s.Result()
	if result == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "no analysis has completed"})
		return
	}

	name := mux.Vars(r)["name"]
	sc, ok := result.Scenario(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown scenario " + name})
		return
	}

	response := ScenarioResponse{RunID: result.RunID.String(), Scenario: sc}
	if rec, ok := result.Recommendation(name); ok {
		response.Recommendation = rec
	}
	writeJSON(w, http.StatusOK, response)
}

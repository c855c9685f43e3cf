// Package server exposes the multiplication engine over HTTP: a JSON
// multiply endpoint, a health endpoint backed by system sampling, and
// Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/agbru/karatcalc/internal/digit"
	"github.com/agbru/karatcalc/internal/logging"
	"github.com/agbru/karatcalc/internal/sysmon"
)

const (
	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout = 5 * time.Second
	// ShutdownTimeout bounds the graceful shutdown on context cancellation.
	ShutdownTimeout = 10 * time.Second
	// HealthSampleInterval is the background system sampling period.
	HealthSampleInterval = 2 * time.Second
)

// MultiplyRequest is the JSON body of a multiply call. Operands are digit
// vectors, most significant digit first.
type MultiplyRequest struct {
	Lhs  []uint64 `json:"lhs"`
	Rhs  []uint64 `json:"rhs"`
	Base uint64   `json:"base"`
	// Algo selects the strategy; empty means "karatsuba".
	Algo string `json:"algo,omitempty"`
}

// MultiplyResponse is the JSON body of a successful multiply call.
type MultiplyResponse struct {
	Algorithm  string   `json:"algorithm"`
	Base       uint64   `json:"base"`
	Digits     int      `json:"digits"`
	Product    []uint64 `json:"product"`
	DurationMs float64  `json:"duration_ms"`
}

// HealthResponse is the JSON body of the health endpoint.
type HealthResponse struct {
	Status     string  `json:"status"`
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float64 `json:"mem_percent"`
}

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves the multiplication HTTP API.
type Server struct {
	addr     string
	security SecurityConfig
	factory  digit.MultiplierFactory
	opts     digit.Options
	metrics  *Metrics
	logger   logging.Logger
	monitor  *sysmon.Monitor
	http     *http.Server
}

// NewServer creates a server listening on addr with the default security
// configuration.
func NewServer(addr string, factory digit.MultiplierFactory, opts digit.Options, logger logging.Logger) *Server {
	s := &Server{
		addr:     addr,
		security: DefaultSecurityConfig(),
		factory:  factory,
		opts:     opts,
		metrics:  NewMetrics(),
		logger:   logger,
		monitor:  sysmon.NewMonitor(HealthSampleInterval),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/multiply", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleMultiply)))
	mux.HandleFunc("/healthz", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleHealth)))
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleMetrics)))

	s.http = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	return s
}

// Run starts the server and blocks until the context is canceled or the
// listener fails. Shutdown is graceful with a bounded timeout.
func (s *Server) Run(ctx context.Context) error {
	s.monitor.Start()
	defer s.monitor.Stop()

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("addr", s.addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.logger.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// metricsMiddleware tracks active and total requests around a handler.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.CountRequest(r.URL.Path)
		next(w, r)
	}
}

// handleMultiply serves POST /multiply.
func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed, use POST")
		return
	}

	var req MultiplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return
	}
	if max := s.security.MaxOperandDigits; len(req.Lhs) > max || len(req.Rhs) > max {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("operand exceeds %d digits", max))
		return
	}

	algo := req.Algo
	if algo == "" {
		algo = "karatsuba"
	}
	multiplier, err := s.factory.Get(algo)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	product, err := multiplier.Product(r.Context(), nil, req.Lhs, req.Rhs, req.Base, s.opts)
	elapsed := time.Since(start)
	s.metrics.ObserveMultiplyDuration(elapsed.Seconds())

	if err != nil {
		var argErr *digit.InvalidArgumentError
		var opErr *digit.InvalidOperandError
		if errors.As(err, &argErr) || errors.As(err, &opErr) {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("multiplication failed", err,
			logging.String("algo", algo),
			logging.Int("lhs_digits", len(req.Lhs)),
			logging.Int("rhs_digits", len(req.Rhs)))
		s.respondError(w, http.StatusInternalServerError, "multiplication failed")
		return
	}

	s.logger.Info("multiplication served",
		logging.String("algo", algo),
		logging.Int("digits", len(product)),
		logging.String("duration", elapsed.String()))

	s.respondJSON(w, http.StatusOK, MultiplyResponse{
		Algorithm:  multiplier.Name(),
		Base:       req.Base,
		Digits:     len(product),
		Product:    product,
		DurationMs: float64(elapsed.Microseconds()) / 1000.0,
	})
}

// handleHealth serves GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed, use GET")
		return
	}
	stats := s.monitor.Latest()
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		CPUPercent: stats.CPUPercent,
		MemPercent: stats.MemPercent,
	})
}

// handleMetrics serves GET /metrics in Prometheus exposition format.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		if s.logger != nil {
			s.logger.Debug("metrics request rejected", logging.String("method", r.Method))
		}
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed, use GET")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && s.logger != nil {
		s.logger.Error("failed to encode response", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, ErrorResponse{Error: msg})
}

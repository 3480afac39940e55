package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/vectorops/qdrant-admin/config"
	"github.com/vectorops/qdrant-admin/logger"
	"github.com/vectorops/qdrant-admin/qdrant"
	"github.com/vectorops/qdrant-admin/tools"
)

// Server is the HTTP invocation boundary. It exposes the operation
// dispatcher on a small fixed surface:
//
//	POST /tools/invoke  {"tool": "...", "arguments": {...}}
//	GET  /tools         registered operation names
//	GET  /health        backend health, 503 unless healthy
type Server struct {
	http       *http.Server
	dispatcher *Dispatcher
	log        *logger.Logger
}

// invokeRequest is the wire shape of one invocation.
type invokeRequest struct {
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// NewServer builds the boundary around a dispatcher.
func NewServer(cfg config.Server, d *Dispatcher, log *logger.Logger) *Server {
	s := &Server{dispatcher: d, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /tools/invoke", s.handleInvoke)
	mux.HandleFunc("GET /tools", s.handleList)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	var req invokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, tools.Failure(
			qdrant.Validationf("invalid request body: %s", err.Error())))
		return
	}
	if req.Tool == "" {
		writeJSON(w, http.StatusBadRequest, tools.Failure(
			qdrant.Validationf("tool is required")))
		return
	}

	result := s.dispatcher.Invoke(r.Context(), req.Tool, req.Arguments)
	// errors travel in the envelope; the transport stays 200
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"tools": s.dispatcher.Tools(),
	})
}

// handleHealth is the probe endpoint for container orchestration. It
// reuses the health operation and collapses its report onto the status
// code: 200 only when the backend is healthy.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	result := s.dispatcher.Invoke(r.Context(), "qdrant_health_check", nil)
	report, ok := result.Data.(*qdrant.HealthReport)
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, result)
		return
	}

	code := http.StatusOK
	if report.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, report)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Start begins serving in the background.
func (s *Server) Start() error {
	s.log.Info("invocation server listening", nil, map[string]interface{}{
		"address": s.http.Addr,
	})
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("invocation server stopped", err, nil)
		}
	}()
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

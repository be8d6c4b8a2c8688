package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/logos"
	"github.com/aretw0/logos/internal/guard"
	"github.com/aretw0/logos/pkg/domain"
	"github.com/aretw0/logos/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

// ProcessRequest is the body of POST /process and POST /trace.
type ProcessRequest struct {
	Workflow string `json:"workflow"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server exposes a ports.Processor over HTTP.
type Server struct {
	Engine       ports.Processor
	MaxInputSize int
	Logger       *slog.Logger

	metrics http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithMaxInputSize bounds the workflow size in bytes. Zero uses guard.MaxInputSize.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		s.MaxInputSize = n
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetricsHandler mounts h (typically promhttp.Handler) at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Processor, opts ...Option) http.Handler {
	server := &Server{Engine: engine}
	for _, opt := range opts {
		opt(server)
	}
	if server.Logger == nil {
		server.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/constants", server.GetConstants)
	r.Get("/process", server.GetProcess)
	r.Post("/process", server.PostProcess)
	r.Post("/trace", server.PostTrace)
	if server.metrics != nil {
		r.Handle("/metrics", server.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetProcess handles the GET /process?workflow=... request.
func (s *Server) GetProcess(w http.ResponseWriter, r *http.Request) {
	var workflow string
	if err := runtime.BindQueryParameter("form", true, true, "workflow", r.URL.Query(), &workflow); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter workflow: %v", err))
		return
	}
	if !s.checkSize(w, workflow) {
		return
	}

	s.writeJSON(w, s.Engine.Process(r.Context(), workflow))
}

// PostProcess handles the POST /process request.
func (s *Server) PostProcess(w http.ResponseWriter, r *http.Request) {
	workflow, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, s.Engine.Process(r.Context(), workflow))
}

// PostTrace handles the POST /trace request.
func (s *Server) PostTrace(w http.ResponseWriter, r *http.Request) {
	workflow, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, s.Engine.Trace(r.Context(), workflow))
}

// GetConstants handles the GET /constants request.
func (s *Server) GetConstants(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, domain.Constants())
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if doc, err := GetSpec(); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	}

	s.writeJSON(w, map[string]string{
		"app":         "logos-http",
		"version":     strings.TrimSpace(logos.Version),
		"api_version": apiVersion,
	})
}

// decodeRequest reads a ProcessRequest, validates it against the OpenAPI
// schema and enforces the size limit. It writes the error response itself.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	limit := s.limit()
	// JSON escaping can expand the payload up to six bytes per input byte.
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, int64(limit)*6+1024))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge, guard.ErrInputTooLarge.Error())
			return "", false
		}
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return "", false
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return "", false
	}

	schema, err := requestSchema("ProcessRequest")
	if err != nil {
		s.Logger.Error("openapi spec unavailable", "error", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to load spec")
		return "", false
	}
	if err := schema.VisitJSON(raw); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Request does not match schema: %v", err))
		return "", false
	}

	var req ProcessRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return "", false
	}

	if !s.checkSize(w, req.Workflow) {
		return "", false
	}
	return req.Workflow, true
}

func (s *Server) limit() int {
	if s.MaxInputSize > 0 {
		return s.MaxInputSize
	}
	return guard.MaxInputSize()
}

func (s *Server) checkSize(w http.ResponseWriter, workflow string) bool {
	if err := guard.CheckSize(workflow, s.limit()); err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		s.Logger.Error("error response encode failed", "error", err)
	}
}

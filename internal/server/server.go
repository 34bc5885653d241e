// Package server provides the HTTP REST API around the resume parse and
// render pipelines.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/curriculo-builder/internal/config"
	"github.com/jonathan/curriculo-builder/internal/ingestion"
	"github.com/jonathan/curriculo-builder/internal/layouts"
	"github.com/jonathan/curriculo-builder/internal/parsing"
	"github.com/jonathan/curriculo-builder/internal/render"
	"github.com/jonathan/curriculo-builder/internal/schemas"
	"github.com/jonathan/curriculo-builder/internal/server/ratelimit"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	validate    *validator.Validate
	rateLimiter *ratelimit.Limiter
	schemaPath  string
	maxUpload   int64
	verbose     bool
}

// New creates a new server instance from the given configuration.
func New(cfg config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	schemaPath := schemas.ResolveSchemaPath(cfg.SchemaPath)
	if schemaPath == "" {
		return nil, fmt.Errorf("resume schema not found at %s", cfg.SchemaPath)
	}

	s := &Server{
		validate:    validator.New(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		schemaPath:  schemaPath,
		maxUpload:   cfg.MaxUploadBytes,
		verbose:     cfg.Verbose,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("POST /resume/parse", s.handleParseResume)
	mux.HandleFunc("POST /resume/render", s.handleRenderResume)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.withCORS(s.withRequestID(s.withRateLimit(mux))),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Start runs the server until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRequestID tags every request with an id for log correlation.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		if s.verbose {
			log.Printf("[%s] %s %s", requestID, r.Method, r.URL.Path)
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces the per-endpoint token bucket limits.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientIP(r), r.URL.Path, r.Method)
		if !allowed {
			w.Header().Set("Retry-After", "60")
			s.errorResponse(w, http.StatusTooManyRequests,
				fmt.Sprintf("Rate limit exceeded: %d requests per window", info.Limit))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the caller address, honoring the usual proxy header.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// pipelineError maps a core pipeline error to an HTTP status. Degraded but
// successful extractions never reach here; only the error taxonomy does.
func (s *Server) pipelineError(w http.ResponseWriter, err error) {
	var (
		unsupportedIn  *ingestion.UnsupportedFormatError
		corrupt        *ingestion.CorruptDocumentError
		empty          *parsing.EmptyDocumentError
		unknownLayout  *layouts.UnknownLayoutError
		unsupportedOut *render.UnsupportedFormatError
		renderErr      *render.RenderError
		schemaInvalid  *schemas.ValidationError
	)

	switch {
	case errors.As(err, &unsupportedIn), errors.As(err, &unsupportedOut):
		s.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &schemaInvalid):
		s.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &unknownLayout):
		s.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.As(err, &corrupt), errors.As(err, &empty):
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &renderErr):
		log.Printf("Render failure: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("Unexpected pipeline error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Erro ao processar a solicitação")
	}
}

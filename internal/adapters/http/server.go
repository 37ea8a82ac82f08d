package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/logging"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/ports"
)

// Resolver defines the interface for the navigation resolver core.
type Resolver interface {
	Resolve(ctx context.Context, req domain.ResolutionRequest) (domain.Resolution, error)
}

// Options configures the HTTP handler.
type Options struct {
	Resolver Resolver
	Sources  []ports.RuleSource
	Writer   ports.RuleWriter
	Logger   *slog.Logger

	// Metrics is mounted at /metrics when set (typically promhttp.Handler()).
	Metrics http.Handler
}

// Server exposes the resolver and rule administration over HTTP.
type Server struct {
	resolver Resolver
	sources  []ports.RuleSource
	writer   ports.RuleWriter
	logger   *slog.Logger
}

// NewHandler creates a new HTTP handler for the resolver.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	server := &Server{
		resolver: opts.Resolver,
		sources:  opts.Sources,
		writer:   opts.Writer,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Post("/resolve", server.handleResolve)
	r.Get("/rules/{from}", server.handleListRules)
	r.Post("/rules", server.handlePutRule)
	r.Delete("/rules/{from}", server.handleRemoveRules)
	r.Get("/health", server.handleHealth)
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics)
	}

	return r
}

// handleResolve handles the POST /resolve request.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req domain.ResolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("resolve: invalid request body", "error", err)
		return
	}

	resolution, err := s.resolver.Resolve(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case domain.IsSourceUnavailable(err):
			// Distinct from unresolved: the caller must not treat this as
			// "apply your default".
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			s.logger.Error("resolve: source unavailable", "error", err)
		default:
			http.Error(w, fmt.Sprintf("Resolve error: %v", err), http.StatusInternalServerError)
			s.logger.Error("resolve failed", "error", err)
		}
		return
	}

	writeJSON(w, s.logger, resolution)
}

// sourceRules is one source's slice of the merged rule listing.
type sourceRules struct {
	Source string                  `json:"source"`
	Rules  []domain.NavigationRule `json:"rules"`
}

// handleListRules handles the GET /rules/{from} request. It reports each
// source's rules separately, in priority order.
func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	from := chi.URLParam(r, "from")

	listing := make([]sourceRules, 0, len(s.sources))
	for _, src := range s.sources {
		rules, err := src.RulesFor(r.Context(), from)
		if err != nil {
			http.Error(w, fmt.Sprintf("Source %q unavailable: %v", src.Name(), err), http.StatusServiceUnavailable)
			s.logger.Error("list rules: source unavailable", "source", src.Name(), "error", err)
			return
		}
		listing = append(listing, sourceRules{Source: src.Name(), Rules: rules})
	}

	writeJSON(w, s.logger, listing)
}

// handlePutRule handles the POST /rules request.
func (s *Server) handlePutRule(w http.ResponseWriter, r *http.Request) {
	if s.writer == nil {
		http.Error(w, domain.ErrNoPersistedSource.Error(), http.StatusNotImplemented)
		return
	}

	var rule domain.NavigationRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("put rule: invalid request body", "error", err)
		return
	}

	if err := s.writer.Put(r.Context(), rule); err != nil {
		if errors.Is(err, domain.ErrInvalidRule) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Put error: %v", err), http.StatusInternalServerError)
		s.logger.Error("put rule failed", "error", err)
		return
	}

	s.logger.Info("rule created", "from", rule.FromLocation, "to", rule.ToLocation, "condition", rule.Condition)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(rule); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// handleRemoveRules handles the DELETE /rules/{from} request.
func (s *Server) handleRemoveRules(w http.ResponseWriter, r *http.Request) {
	if s.writer == nil {
		http.Error(w, domain.ErrNoPersistedSource.Error(), http.StatusNotImplemented)
		return
	}

	from := chi.URLParam(r, "from")
	if err := s.writer.Remove(r.Context(), from); err != nil {
		http.Error(w, fmt.Sprintf("Remove error: %v", err), http.StatusInternalServerError)
		s.logger.Error("remove rules failed", "from", from, "error", err)
		return
	}

	s.logger.Info("rules removed", "from", from)
	w.WriteHeader(http.StatusNoContent)
}

// handleHealth handles the GET /health request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}

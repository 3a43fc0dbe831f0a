package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
	"github.com/secmon-lab/muster/pkg/usecase"
)

// maxRequestBody bounds request bodies of the pipeline endpoints
const maxRequestBody = 1 << 20

// Server represents the HTTP server
type Server struct {
	*http.Server
	router      chi.Router
	provisionUC usecase.ProvisionUseCase
	reconcileUC usecase.ReconcileUseCase
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	provisionUC usecase.ProvisionUseCase,
	reconcileUC usecase.ReconcileUseCase,
) (*Server, error) {
	if provisionUC == nil || reconcileUC == nil {
		return nil, goerr.New("provision and reconcile use cases are required")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:      router,
		provisionUC: provisionUC,
		reconcileUC: reconcileUC,
	}

	router.Get("/health", handleHealth)

	router.Route("/api/incidents", func(r chi.Router) {
		r.Use(RequireJSON)
		r.Post("/", server.handleProvision)
		r.Put("/{id}/workspace", server.handleReconcile)
	})

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "muster",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

func (s *Server) handleProvision(w http.ResponseWriter, r *http.Request) {
	var in model.ProvisionInput
	if err := decodeBody(r, &in); err != nil {
		writeError(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	// The pipeline owns compensation, so a client disconnect must not cut it short.
	outcome, err := s.provisionUC.Provision(context.WithoutCancel(r.Context()), &in)
	if err != nil {
		writeError(r.Context(), w, err, statusOf(err))
		return
	}

	writeOutcome(r.Context(), w, outcome)
}

func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseIncidentID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	var in model.ReconcileInput
	if err := decodeBody(r, &in); err != nil {
		writeError(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	outcome, err := s.reconcileUC.Reconcile(context.WithoutCancel(r.Context()), id, &in)
	if err != nil {
		writeError(r.Context(), w, err, statusOf(err))
		return
	}

	writeOutcome(r.Context(), w, outcome)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return goerr.Wrap(err, "invalid request body", goerr.T(model.ErrTagInvalidInput))
	}
	return nil
}

// statusOf maps a use case error to an HTTP status
func statusOf(err error) int {
	switch {
	case model.IsInvalidInput(err):
		return http.StatusBadRequest
	case model.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeOutcome(ctx context.Context, w http.ResponseWriter, outcome *model.RunOutcome) {
	status := http.StatusOK
	if !outcome.Success {
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(outcome); err != nil {
		ctxlog.From(ctx).Error("Failed to encode outcome", "error", err)
	}
}

// writeError writes an error response
func writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		ctxlog.From(ctx).Error("Request failed", "error", err)
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		ctxlog.From(ctx).Error("Failed to encode error response", "error", err)
	}
}

// internal/api/handler.go
package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"portfolio-projects/internal/model"
	"portfolio-projects/internal/page"
)

// Projects is the load cycle the API exposes.
type Projects interface {
	State() model.LoadState
	Retry() error
}

// Page is the enhanced document served at the root.
type Page interface {
	Render(w io.Writer) error
}

// Handler is the container for API dependencies.
type Handler struct {
	projects Projects
	page     Page
	logger   *slog.Logger
}

// projectsResponse is the JSON view of the project region.
type projectsResponse struct {
	State   string              `json:"state"`
	Message string              `json:"message,omitempty"`
	Cards   []model.DisplayCard `json:"cards"`
}

// NewRouter creates and configures a new chi router with all API routes.
func NewRouter(projects Projects, doc Page, logger *slog.Logger) http.Handler {
	h := &Handler{
		projects: projects,
		page:     doc,
		logger:   logger,
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", h.healthCheck)
	r.Get("/", h.getPage)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/projects", h.getProjects)
		r.Post("/projects/retry", h.retryProjects)
	})

	return r
}

// healthCheck is a simple health endpoint.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getPage writes the current enhanced document.
// GET /
func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := h.page.Render(w); err != nil {
		h.logger.Error("Failed to render page", "error", err, "request_id", middleware.GetReqID(r.Context()))
	}
}

// getProjects reports the current load state.
// GET /v1/projects
func (h *Handler) getProjects(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, toResponse(h.projects.State()))
}

// retryProjects starts a new load after a finished one.
// POST /v1/projects/retry
func (h *Handler) retryProjects(w http.ResponseWriter, r *http.Request) {
	err := h.projects.Retry()
	switch {
	case errors.Is(err, page.ErrRetryNotAllowed):
		respondWithError(w, http.StatusConflict, "A project load is already in progress")
		return
	case errors.Is(err, page.ErrRetryThrottled):
		respondWithError(w, http.StatusTooManyRequests, "Retry requested too soon, try again shortly")
		return
	case err != nil:
		h.logger.Error("Failed to retry project load", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if wantsJSON(r) {
		respondWithJSON(w, http.StatusAccepted, toResponse(h.projects.State()))
		return
	}
	http.Redirect(w, r, "/#projects", http.StatusSeeOther)
}

func toResponse(s model.LoadState) projectsResponse {
	cards := s.Cards
	if cards == nil {
		cards = []model.DisplayCard{}
	}
	return projectsResponse{
		State:   s.Phase.String(),
		Message: s.Message,
		Cards:   cards,
	}
}

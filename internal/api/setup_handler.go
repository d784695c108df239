package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// SetupHandler serves one-time setup operations.
type SetupHandler struct {
	service churchcontent.Service
}

// NewSetupHandler creates a new setup handler
func NewSetupHandler(service churchcontent.Service) *SetupHandler {
	return &SetupHandler{service: service}
}

// Routes returns the routes for setup operations
func (h *SetupHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/seed", h.Seed)

	return r
}

// Seed purges the content collections and refills them with the starter
// fixture set. The response carries the per-step log even on failure, so the
// caller can see how far the run got.
func (h *SetupHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Seed(r.Context())

	logs := []string{}
	if result != nil {
		logs = result.Logs
	}

	if err != nil {
		status, message := classifyError(err, "Database seeding failed.")
		render.Status(r, status)
		render.JSON(w, r, SeedResponse{Success: false, Message: message, Logs: logs})
		return
	}

	render.JSON(w, r, SeedResponse{
		Success: true,
		Message: "Database seeded successfully!",
		Logs:    logs,
	})
}

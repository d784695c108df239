package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// RequestsHandler serves prayer and contact requests.
type RequestsHandler struct {
	service churchcontent.Service
}

// NewRequestsHandler creates a new requests handler
func NewRequestsHandler(service churchcontent.Service) *RequestsHandler {
	return &RequestsHandler{service: service}
}

// Routes returns the routes for requests
func (h *RequestsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Delete("/{id}", h.Delete)

	return r
}

// List returns all requests, newest first
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListRequests(r.Context())
	if err != nil {
		slog.Warn("serving empty request list", "error", err)
	}
	render.JSON(w, r, requests)
}

// AddRequestBody is the request body for submitting a request
type AddRequestBody struct {
	Note  string `json:"note"`
	Phone string `json:"phone"`
}

// Add records a new request. The submission timestamp is assigned server
// side.
func (h *RequestsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var body AddRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.AddRequest(r.Context(), body.Note, body.Phone)
	renderResult(w, r, err, "Request saved successfully!", "Failed to save request.")
}

// Delete removes a request
func (h *RequestsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteRequest(r.Context(), chi.URLParam(r, "id"))
	renderResult(w, r, err, "Request deleted successfully!", "Failed to delete request.")
}

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// SermonsHandler serves the sermon archive.
type SermonsHandler struct {
	service churchcontent.Service
}

// NewSermonsHandler creates a new sermons handler
func NewSermonsHandler(service churchcontent.Service) *SermonsHandler {
	return &SermonsHandler{service: service}
}

// Routes returns the routes for sermons
func (h *SermonsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// List returns all sermons, newest first. An unavailable store yields an
// empty list so the page still renders.
func (h *SermonsHandler) List(w http.ResponseWriter, r *http.Request) {
	sermons, err := h.service.ListSermons(r.Context())
	if err != nil {
		slog.Warn("serving empty sermon list", "error", err)
	}
	render.JSON(w, r, sermons)
}

// Add creates a new sermon
func (h *SermonsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input churchcontent.SermonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.AddSermon(r.Context(), input)
	renderResult(w, r, err, "Sermon added successfully!", "Failed to add sermon.")
}

// Update replaces an existing sermon
func (h *SermonsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input churchcontent.SermonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.UpdateSermon(r.Context(), chi.URLParam(r, "id"), input)
	renderResult(w, r, err, "Sermon updated successfully!", "Failed to update sermon.")
}

// Delete removes a sermon
func (h *SermonsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteSermon(r.Context(), chi.URLParam(r, "id"))
	renderResult(w, r, err, "Sermon deleted successfully!", "Failed to delete sermon.")
}

// EventsHandler serves upcoming events.
type EventsHandler struct {
	service churchcontent.Service
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(service churchcontent.Service) *EventsHandler {
	return &EventsHandler{service: service}
}

// Routes returns the routes for events
func (h *EventsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// List returns all events, soonest first
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		slog.Warn("serving empty event list", "error", err)
	}
	render.JSON(w, r, events)
}

// Add creates a new event
func (h *EventsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input churchcontent.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.AddEvent(r.Context(), input)
	renderResult(w, r, err, "Event added successfully!", "Failed to add event.")
}

// Update replaces an existing event
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input churchcontent.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.UpdateEvent(r.Context(), chi.URLParam(r, "id"), input)
	renderResult(w, r, err, "Event updated successfully!", "Failed to update event.")
}

// Delete removes an event
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteEvent(r.Context(), chi.URLParam(r, "id"))
	renderResult(w, r, err, "Event deleted successfully!", "Failed to delete event.")
}

// MinistriesHandler serves the ministry directory, including ministry image
// uploads.
type MinistriesHandler struct {
	service churchcontent.Service
}

// NewMinistriesHandler creates a new ministries handler
func NewMinistriesHandler(service churchcontent.Service) *MinistriesHandler {
	return &MinistriesHandler{service: service}
}

// Routes returns the routes for ministries
func (h *MinistriesHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/image", h.UploadImage)

	return r
}

// List returns all ministries, sorted by name
func (h *MinistriesHandler) List(w http.ResponseWriter, r *http.Request) {
	ministries, err := h.service.ListMinistries(r.Context())
	if err != nil {
		slog.Warn("serving empty ministry list", "error", err)
	}
	render.JSON(w, r, ministries)
}

// Add creates a new ministry
func (h *MinistriesHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input churchcontent.MinistryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.AddMinistry(r.Context(), input)
	renderResult(w, r, err, "Ministry added successfully!", "Failed to add ministry.")
}

// Update replaces an existing ministry, cleaning up its replaced image
func (h *MinistriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input churchcontent.MinistryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.UpdateMinistry(r.Context(), chi.URLParam(r, "id"), input)
	renderResult(w, r, err, "Ministry updated successfully!", "Failed to update ministry.")
}

// Delete removes a ministry and its stored image
func (h *MinistriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteMinistry(r.Context(), chi.URLParam(r, "id"))
	renderResult(w, r, err, "Ministry deleted successfully!", "Failed to delete ministry.")
}

// UploadImage uploads a ministry image
func (h *MinistriesHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	handleImageUpload(w, r, h.service.UploadMinistryImage)
}

// LeadershipHandler serves the leadership roster, including portrait uploads.
type LeadershipHandler struct {
	service churchcontent.Service
}

// NewLeadershipHandler creates a new leadership handler
func NewLeadershipHandler(service churchcontent.Service) *LeadershipHandler {
	return &LeadershipHandler{service: service}
}

// Routes returns the routes for leadership members
func (h *LeadershipHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/image", h.UploadImage)

	return r
}

// List returns all leadership members, sorted by name
func (h *LeadershipHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ListLeadership(r.Context())
	if err != nil {
		slog.Warn("serving empty leadership list", "error", err)
	}
	render.JSON(w, r, members)
}

// Add creates a new leadership member
func (h *LeadershipHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input churchcontent.LeadershipMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.AddLeadershipMember(r.Context(), input)
	renderResult(w, r, err, "Leadership member added successfully!", "Failed to add leadership member.")
}

// Update replaces an existing leadership member, cleaning up a replaced
// portrait
func (h *LeadershipHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input churchcontent.LeadershipMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.UpdateLeadershipMember(r.Context(), chi.URLParam(r, "id"), input)
	renderResult(w, r, err, "Leadership member updated successfully!", "Failed to update leadership member.")
}

// Delete removes a leadership member and their stored portrait
func (h *LeadershipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteLeadershipMember(r.Context(), chi.URLParam(r, "id"))
	renderResult(w, r, err, "Leadership member deleted successfully!", "Failed to delete leadership member.")
}

// UploadImage uploads a leadership portrait
func (h *LeadershipHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	handleImageUpload(w, r, h.service.UploadLeadershipImage)
}

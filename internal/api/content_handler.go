package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// ContentHandler serves the singleton page content: hero section, about page,
// contact details, and the ministries page header, plus their image uploads.
type ContentHandler struct {
	service churchcontent.Service
}

// NewContentHandler creates a new content handler
func NewContentHandler(service churchcontent.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// Routes returns the routes for singleton page content
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/hero", h.GetHero)
	r.Put("/hero", h.SaveHero)
	r.Post("/hero/image", h.UploadHeroImage)

	r.Get("/about", h.GetAbout)
	r.Put("/about", h.SaveAbout)

	r.Get("/contact", h.GetContact)
	r.Put("/contact", h.SaveContact)

	r.Get("/ministries-page", h.GetMinistriesPage)
	r.Put("/ministries-page", h.SaveMinistriesPage)
	r.Post("/ministries-page/image", h.UploadMinistriesPageImage)

	return r
}

// GetHero returns the hero section content, or its defaults when the store is
// unavailable.
func (h *ContentHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	content, err := h.service.GetHeroContent(r.Context())
	if err != nil {
		slog.Warn("serving default hero content", "error", err)
	}
	render.JSON(w, r, content)
}

// SaveHero saves the hero section content
func (h *ContentHandler) SaveHero(w http.ResponseWriter, r *http.Request) {
	var content churchcontent.HeroContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.SaveHeroContent(r.Context(), content)
	renderResult(w, r, err, "Hero content updated successfully!", "Failed to update hero content.")
}

// UploadHeroImage uploads a replacement hero image
func (h *ContentHandler) UploadHeroImage(w http.ResponseWriter, r *http.Request) {
	handleImageUpload(w, r, h.service.UploadHeroImage)
}

// GetAbout returns the about page content
func (h *ContentHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	content, err := h.service.GetAboutContent(r.Context())
	if err != nil {
		slog.Warn("serving default about content", "error", err)
	}
	render.JSON(w, r, content)
}

// SaveAbout saves the about page content
func (h *ContentHandler) SaveAbout(w http.ResponseWriter, r *http.Request) {
	var content churchcontent.AboutContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.SaveAboutContent(r.Context(), content)
	renderResult(w, r, err, "Content updated successfully!", "Failed to update content.")
}

// GetContact returns the contact details
func (h *ContentHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.GetContactInfo(r.Context())
	if err != nil {
		slog.Warn("serving default contact info", "error", err)
	}
	render.JSON(w, r, info)
}

// SaveContact saves the contact details
func (h *ContentHandler) SaveContact(w http.ResponseWriter, r *http.Request) {
	var info churchcontent.ContactInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.SaveContactInfo(r.Context(), info)
	renderResult(w, r, err, "Contact info updated successfully!", "Failed to update contact info.")
}

// GetMinistriesPage returns the ministries page header content
func (h *ContentHandler) GetMinistriesPage(w http.ResponseWriter, r *http.Request) {
	content, err := h.service.GetMinistriesPageContent(r.Context())
	if err != nil {
		slog.Warn("serving default ministries page content", "error", err)
	}
	render.JSON(w, r, content)
}

// SaveMinistriesPage saves the ministries page header content
func (h *ContentHandler) SaveMinistriesPage(w http.ResponseWriter, r *http.Request) {
	var content churchcontent.MinistriesPageContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.SaveMinistriesPageContent(r.Context(), content)
	renderResult(w, r, err, "Ministries page updated successfully!", "Failed to update ministries page.")
}

// UploadMinistriesPageImage uploads a replacement ministries page image
func (h *ContentHandler) UploadMinistriesPageImage(w http.ResponseWriter, r *http.Request) {
	handleImageUpload(w, r, h.service.UploadMinistriesPageImage)
}

// Package api exposes the church content services over HTTP.
//
// Write endpoints answer with a {success, message} envelope and map service
// errors to statuses; read endpoints degrade gracefully, serving defaults or
// empty lists when the backing store is unavailable so pages always render.
package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// Result is the envelope for mutation responses.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ImageResult is the envelope for image upload responses.
type ImageResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	FileID  string `json:"fileId,omitempty"`
	Message string `json:"message,omitempty"`
}

// SeedResponse reports a seeding run, including the per-step log lines.
type SeedResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Logs    []string `json:"logs,omitempty"`
}

// renderResult writes the mutation envelope for err, using okMessage on
// success and failMessage for unclassified failures.
func renderResult(w http.ResponseWriter, r *http.Request, err error, okMessage, failMessage string) {
	if err == nil {
		render.JSON(w, r, Result{Success: true, Message: okMessage})
		return
	}

	status, message := classifyError(err, failMessage)
	render.Status(r, status)
	render.JSON(w, r, Result{Success: false, Message: message})
}

// classifyError maps a service error to an HTTP status and a user-facing
// message. failMessage covers errors with no more specific rendering.
func classifyError(err error, failMessage string) (int, string) {
	switch {
	case errors.Is(err, churchcontent.ErrNotConfigured):
		return http.StatusServiceUnavailable, "Database not configured."
	case errors.Is(err, churchcontent.ErrUploadsDisabled):
		return http.StatusServiceUnavailable, "Image uploads are not configured."
	case errors.Is(err, churchcontent.ErrDocumentNotFound):
		return http.StatusNotFound, notFoundMessage(err)
	case errors.Is(err, churchcontent.ErrEmptyNote):
		return http.StatusBadRequest, "Cannot save an empty note."
	case errors.Is(err, churchcontent.ErrNoFile):
		return http.StatusBadRequest, "No image file provided."
	default:
		return http.StatusInternalServerError, failMessage
	}
}

// notFoundMessage names the missing entity when the error identifies its
// collection.
func notFoundMessage(err error) string {
	var docErr *churchcontent.DocumentError
	if errors.As(err, &docErr) {
		switch docErr.Collection {
		case churchcontent.SermonsCollection:
			return "Sermon not found."
		case churchcontent.EventsCollection:
			return "Event not found."
		case churchcontent.MinistriesCollection:
			return "Ministry not found."
		case churchcontent.LeadershipCollection:
			return "Leadership member not found."
		case churchcontent.RequestsCollection:
			return "Request not found."
		}
	}
	return "Document not found."
}

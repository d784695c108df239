package api

import (
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// ImagesHandler streams stored images. It backs the URLs handed out by the
// filesystem blob store; S3-backed deployments serve images straight from the
// bucket and never hit this handler.
type ImagesHandler struct {
	blobs churchcontent.BlobStore
}

// NewImagesHandler creates a new image serving handler
func NewImagesHandler(blobs churchcontent.BlobStore) *ImagesHandler {
	return &ImagesHandler{blobs: blobs}
}

// Routes returns the routes for serving images
func (h *ImagesHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/*", h.Serve)

	return r
}

// Serve streams the image named by the wildcard path segment.
func (h *ImagesHandler) Serve(w http.ResponseWriter, r *http.Request) {
	if h.blobs == nil {
		http.Error(w, "image storage not configured", http.StatusNotFound)
		return
	}

	key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if key == "" || strings.Contains(key, "..") {
		http.Error(w, "invalid image path", http.StatusBadRequest)
		return
	}

	body, err := h.blobs.Download(r.Context(), key)
	if err != nil {
		http.Error(w, "image not found", http.StatusNotFound)
		return
	}
	defer body.Close()

	if contentType := mime.TypeByExtension(path.Ext(key)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(w, body); err != nil {
		// Headers are gone; nothing to do but drop the connection.
		return
	}
}

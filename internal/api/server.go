package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// NewRouter assembles the full HTTP surface: content APIs under /api, image
// serving under /images, and a health check. blobs may be nil when image
// storage is not configured.
func NewRouter(service churchcontent.Service, blobs churchcontent.BlobStore) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Mount("/content", NewContentHandler(service).Routes())
		r.Mount("/sermons", NewSermonsHandler(service).Routes())
		r.Mount("/events", NewEventsHandler(service).Routes())
		r.Mount("/ministries", NewMinistriesHandler(service).Routes())
		r.Mount("/leadership", NewLeadershipHandler(service).Routes())
		r.Mount("/requests", NewRequestsHandler(service).Routes())
		r.Mount("/setup", NewSetupHandler(service).Routes())
	})

	r.Mount("/images", NewImagesHandler(blobs).Routes())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

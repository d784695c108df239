package api

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// Uploads larger than this are rejected while parsing the multipart form.
const maxUploadBytes = 32 << 20

type imageUploadFunc func(ctx context.Context, req churchcontent.UploadImageRequest) (*churchcontent.ImageUpload, error)

// handleImageUpload reads the "image" part of a multipart form and hands it
// to the given upload operation. The response carries the new blob's URL and
// file ID; the caller is expected to save them onto the owning record.
func handleImageUpload(w http.ResponseWriter, r *http.Request, upload imageUploadFunc) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ImageResult{Success: false, Message: "No image file provided."})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ImageResult{Success: false, Message: "No image file provided."})
		return
	}
	defer file.Close()

	result, err := upload(r.Context(), churchcontent.UploadImageRequest{
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		File:     file,
	})
	if err != nil {
		status, message := classifyError(err, "Failed to upload image.")
		render.Status(r, status)
		render.JSON(w, r, ImageResult{Success: false, Message: message})
		return
	}

	render.JSON(w, r, ImageResult{Success: true, URL: result.URL, FileID: result.FileID})
}

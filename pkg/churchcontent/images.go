package churchcontent

import (
	"context"
	"errors"
	"log/slog"
	"path"

	"github.com/google/uuid"
)

// Blob store folders, one per image-bearing content kind.
const (
	HeroImageFolder           = "church-hero"
	MinistriesPageImageFolder = "church-ministries-page"
	MinistryImageFolder       = "church-ministries"
	LeadershipImageFolder     = "church-leadership"
)

// uploadImage stores the file under a fresh key inside folder and returns
// the blob's URL and file ID. The file ID doubles as the object key, which
// is all a later delete needs.
func (s *service) uploadImage(ctx context.Context, folder string, req UploadImageRequest) (*ImageUpload, error) {
	if s.blobs == nil {
		return nil, ErrUploadsDisabled
	}
	if req.File == nil || req.FileName == "" {
		return nil, ErrNoFile
	}

	key := folder + "/" + uuid.NewString() + path.Ext(req.FileName)
	url, err := s.blobs.Upload(ctx, key, req.File, req.MimeType)
	if err != nil {
		return nil, &StorageError{Key: key, Op: "upload", Err: err}
	}

	return &ImageUpload{URL: url, FileID: key}, nil
}

// reapImage best-effort deletes a superseded or orphaned blob. Failure is
// logged and never surfaced: the document write it accompanies must not be
// blocked by blob cleanup.
func (s *service) reapImage(ctx context.Context, fileID string) {
	if fileID == "" || s.blobs == nil {
		return
	}
	if err := s.blobs.Delete(ctx, fileID); err != nil {
		slog.Warn("could not delete old image", "file_id", fileID, "error", err)
	}
}

// reapReplacedImage reads the existing document and, when an incoming image
// reference supersedes a different stored one, reaps the old blob. Read
// failures are ignored; the subsequent update reports them.
func (s *service) reapReplacedImage(ctx context.Context, collection, id, newFileID string) {
	if newFileID == "" {
		return
	}
	doc, err := s.store.Get(ctx, collection, id)
	if err != nil {
		return
	}
	old, _ := doc.Data["imageFileId"].(string)
	if old != "" && old != newFileID {
		s.reapImage(ctx, old)
	}
}

// deleteWithImage removes a document after checking it exists, then reaps
// any blob it referenced. Used by the kinds whose delete must distinguish
// "not found" (ministries, leadership).
func (s *service) deleteWithImage(ctx context.Context, collection, id string) error {
	doc, err := s.store.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return &DocumentError{Collection: collection, DocID: id, Op: "delete", Err: ErrDocumentNotFound}
		}
		return &DocumentError{Collection: collection, DocID: id, Op: "delete", Err: err}
	}

	if err := s.store.Delete(ctx, collection, id); err != nil {
		return &DocumentError{Collection: collection, DocID: id, Op: "delete", Err: err}
	}

	if fileID, _ := doc.Data["imageFileId"].(string); fileID != "" {
		s.reapImage(ctx, fileID)
	}
	return nil
}

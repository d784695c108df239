package churchcontent

import "io"

// Input DTOs. Field shapes mirror the stored entities minus the identifier;
// validation beyond the blank-note guard is the form layer's job.

// SermonInput contains the fields for adding or updating a sermon
type SermonInput struct {
	Title    string `json:"title"`
	Speaker  string `json:"speaker"`
	Date     string `json:"date"`
	AudioURL string `json:"audioUrl,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// EventInput contains the fields for adding or updating an event
type EventInput struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// MinistryInput contains the fields for adding or updating a ministry
type MinistryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ImageFileID string `json:"imageFileId,omitempty"`
}

// LeadershipMemberInput contains the fields for adding or updating a
// leadership member
type LeadershipMemberInput struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	ImageFileID string `json:"imageFileId,omitempty"`
}

// UploadImageRequest carries one image file to be stored.
type UploadImageRequest struct {
	FileName string
	MimeType string
	File     io.Reader
}

// ImageUpload is the result of a successful image upload. The caller is
// responsible for saving URL and FileID onto the owning document; uploading
// alone does not touch the document store.
type ImageUpload struct {
	URL    string `json:"url"`
	FileID string `json:"fileId"`
}

// SeedResult accumulates one human-readable line per seeding step.
type SeedResult struct {
	Logs []string `json:"logs"`
}

package churchcontent

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrNotConfigured indicates the document store is not configured; the
	// deployment is running without database credentials.
	ErrNotConfigured = errors.New("database not configured")

	// ErrDocumentNotFound indicates a document was not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrUploadsDisabled indicates no blob store is configured, so image
	// uploads are unavailable.
	ErrUploadsDisabled = errors.New("image uploads are not configured")

	// ErrNoFile indicates an upload was attempted without a file
	ErrNoFile = errors.New("no image file provided")

	// ErrEmptyNote indicates a request was submitted with a blank note
	ErrEmptyNote = errors.New("note cannot be empty")
)

// DocumentError represents an error from a document store operation
type DocumentError struct {
	Collection string
	DocID      string
	Op         string
	Err        error
}

func (e *DocumentError) Error() string {
	if e.DocID == "" {
		return fmt.Sprintf("document operation %s failed for collection %s: %v", e.Op, e.Collection, e.Err)
	}
	return fmt.Sprintf("document operation %s failed for %s/%s: %v", e.Op, e.Collection, e.DocID, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// StorageError represents an error from a blob store operation
type StorageError struct {
	Key string
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

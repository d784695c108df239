package churchcontent

import (
	"context"
	"io"
)

// Document is a stored document together with its identifier. Data never
// contains the identifier; stores keep the two separate the way Firestore
// does.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Order specifies the sort applied by DocumentStore.List.
type Order struct {
	Field string
	Desc  bool
}

// DocumentStore defines the interface for document persistence.
//
// Implementations must return ErrDocumentNotFound (possibly wrapped) from Get
// and Update when the document does not exist. Delete is idempotent: deleting
// a missing document is not an error.
type DocumentStore interface {
	// Get fetches one document by collection and ID.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Set writes a document at a fixed ID, creating it if needed. With merge
	// set, existing fields not present in data are preserved.
	Set(ctx context.Context, collection, id string, data map[string]interface{}, merge bool) error

	// Add inserts a new document with a store-generated ID and returns the ID.
	Add(ctx context.Context, collection string, data map[string]interface{}) (string, error)

	// Update overwrites the fields of an existing document.
	Update(ctx context.Context, collection, id string, data map[string]interface{}) error

	// Delete removes a document. Missing documents are a no-op.
	Delete(ctx context.Context, collection, id string) error

	// DeleteAll removes every document in a collection and reports how many
	// were removed.
	DeleteAll(ctx context.Context, collection string) (int, error)

	// List returns all documents in a collection in the given order.
	List(ctx context.Context, collection string, order Order) ([]Document, error)
}

// BlobStore defines the interface for image storage backends.
type BlobStore interface {
	// Upload stores the blob under key and returns its public URL.
	Upload(ctx context.Context, key string, reader io.Reader, mimeType string) (string, error)

	// Download streams a stored blob.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored blob.
	Delete(ctx context.Context, key string) error
}

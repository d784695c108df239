// Package disabled provides the document store injected when database
// credentials are absent. Every operation fails with
// churchcontent.ErrNotConfigured, which the service and HTTP layers turn
// into defaults for reads and a "Database not configured." result for
// writes. The decision is made once, at construction time; there is no
// retry.
package disabled

import (
	"context"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// Store implements churchcontent.DocumentStore for unconfigured deployments.
type Store struct{}

// New creates a disabled document store
func New() *Store {
	return &Store{}
}

func (*Store) Get(ctx context.Context, collection, id string) (*churchcontent.Document, error) {
	return nil, churchcontent.ErrNotConfigured
}

func (*Store) Set(ctx context.Context, collection, id string, data map[string]interface{}, merge bool) error {
	return churchcontent.ErrNotConfigured
}

func (*Store) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	return "", churchcontent.ErrNotConfigured
}

func (*Store) Update(ctx context.Context, collection, id string, data map[string]interface{}) error {
	return churchcontent.ErrNotConfigured
}

func (*Store) Delete(ctx context.Context, collection, id string) error {
	return churchcontent.ErrNotConfigured
}

func (*Store) DeleteAll(ctx context.Context, collection string) (int, error) {
	return 0, churchcontent.ErrNotConfigured
}

func (*Store) List(ctx context.Context, collection string, order churchcontent.Order) ([]churchcontent.Document, error) {
	return nil, churchcontent.ErrNotConfigured
}

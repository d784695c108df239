// Package firestore implements churchcontent.DocumentStore on Google Cloud
// Firestore, the hosted document database behind production deployments.
package firestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// Config carries the service-account credential trio. All three values are
// required; the config layer falls back to the disabled store when any is
// missing.
type Config struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string
}

// Store implements churchcontent.DocumentStore using a Firestore client.
type Store struct {
	client *firestore.Client
}

// New creates a Firestore-backed document store. PrivateKey may carry
// literal "\n" sequences, as env files typically store it; they are
// unescaped here.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.ProjectID == "" || cfg.ClientEmail == "" || cfg.PrivateKey == "" {
		return nil, errors.New("project id, client email and private key are all required")
	}

	creds, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   cfg.ProjectID,
		"client_email": cfg.ClientEmail,
		"private_key":  strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n"),
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assemble credentials: %w", err)
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// NewWithClient wraps an existing Firestore client.
func NewWithClient(client *firestore.Client) *Store {
	return &Store{client: client}
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Get(ctx context.Context, collection, id string) (*churchcontent.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, churchcontent.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("while fetching %s/%s: %w", collection, id, err)
	}
	return &churchcontent.Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *Store) Set(ctx context.Context, collection, id string, data map[string]interface{}, merge bool) error {
	ref := s.client.Collection(collection).Doc(id)

	var err error
	if merge {
		_, err = ref.Set(ctx, data, firestore.MergeAll)
	} else {
		_, err = ref.Set(ctx, data)
	}
	if err != nil {
		return fmt.Errorf("while writing %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("while adding to %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, data map[string]interface{}) error {
	ref := s.client.Collection(collection).Doc(id)

	// Firestore's field-path update API wants typed updates; an existence
	// check followed by a replacing set keeps the wire shape uniform across
	// stores. Concurrent writers are last-write-wins by design.
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return churchcontent.ErrDocumentNotFound
		}
		return fmt.Errorf("while checking %s/%s: %w", collection, id, err)
	}

	if _, err := ref.Set(ctx, data); err != nil {
		return fmt.Errorf("while updating %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("while deleting %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context, collection string) (int, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	n := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return n, fmt.Errorf("while listing %s for purge: %w", collection, err)
		}
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return n, fmt.Errorf("while purging %s/%s: %w", collection, snap.Ref.ID, err)
		}
		n++
	}
	return n, nil
}

func (s *Store) List(ctx context.Context, collection string, order churchcontent.Order) ([]churchcontent.Document, error) {
	dir := firestore.Asc
	if order.Desc {
		dir = firestore.Desc
	}

	iter := s.client.Collection(collection).OrderBy(order.Field, dir).Documents(ctx)
	defer iter.Stop()

	var docs []churchcontent.Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("while listing %s: %w", collection, err)
		}
		docs = append(docs, churchcontent.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

// Package postgres implements churchcontent.DocumentStore on PostgreSQL,
// storing each document as a jsonb row keyed by (collection, id).
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// DBTX is an interface that allows us to use either a database connection or
// a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Store implements churchcontent.DocumentStore using PostgreSQL
type Store struct {
	db DBTX
}

// New creates a new PostgreSQL document store
func New(db DBTX) *Store {
	return &Store{db: db}
}

// NewWithPool creates a new PostgreSQL document store with a connection pool
func NewWithPool(pool *pgxpool.Pool) *Store {
	return &Store{db: pool}
}

// EnsureSchema creates the documents table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection text NOT NULL,
			id         text NOT NULL,
			data       jsonb NOT NULL DEFAULT '{}'::jsonb,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

// Only plain field names may be interpolated into ORDER BY expressions.
var orderFieldPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

func encodeJSON(data map[string]interface{}) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode document data: %w", err)
	}
	return string(b), nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (*churchcontent.Document, error) {
	var raw []byte
	err := s.db.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, churchcontent.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s/%s: %w", collection, id, err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s: %w", collection, id, err)
	}
	return &churchcontent.Document{ID: id, Data: data}, nil
}

func (s *Store) Set(ctx context.Context, collection, id string, data map[string]interface{}, merge bool) error {
	encoded, err := encodeJSON(data)
	if err != nil {
		return err
	}

	update := `data = EXCLUDED.data`
	if merge {
		update = `data = documents.data || EXCLUDED.data`
	}

	query := fmt.Sprintf(`
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id)
		DO UPDATE SET %s, updated_at = now()`, update)

	if _, err := s.db.Exec(ctx, query, collection, id, encoded); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	encoded, err := encodeJSON(data)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = s.db.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3::jsonb)`,
		collection, id, encoded)
	if err != nil {
		return "", fmt.Errorf("failed to add to %s: %w", collection, err)
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, data map[string]interface{}) error {
	encoded, err := encodeJSON(data)
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE documents SET data = $3::jsonb, updated_at = now()
		 WHERE collection = $1 AND id = $2`,
		collection, id, encoded)
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return churchcontent.ErrDocumentNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context, collection string) (int, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1`, collection)
	if err != nil {
		return 0, fmt.Errorf("failed to purge %s: %w", collection, err)
	}
	return int(tag.RowsAffected()), nil
}

func (s *Store) List(ctx context.Context, collection string, order churchcontent.Order) ([]churchcontent.Document, error) {
	if !orderFieldPattern.MatchString(order.Field) {
		return nil, fmt.Errorf("invalid order field %q", order.Field)
	}
	dir := "ASC"
	if order.Desc {
		dir = "DESC"
	}

	query := fmt.Sprintf(
		`SELECT id, data FROM documents WHERE collection = $1 ORDER BY data->>'%s' %s`,
		order.Field, dir)

	rows, err := s.db.Query(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []churchcontent.Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", collection, err)
		}
		var data map[string]interface{}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", collection, id, err)
		}
		docs = append(docs, churchcontent.Document{ID: id, Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	return docs, nil
}

// Package config assembles churchcontent services from configuration.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docceastland/church-content/pkg/churchcontent"
	"github.com/docceastland/church-content/pkg/churchcontent/docstore/disabled"
	firestoredoc "github.com/docceastland/church-content/pkg/churchcontent/docstore/firestore"
	memorydoc "github.com/docceastland/church-content/pkg/churchcontent/docstore/memory"
	postgresdoc "github.com/docceastland/church-content/pkg/churchcontent/docstore/postgres"
	fsstorage "github.com/docceastland/church-content/pkg/churchcontent/storage/fs"
	memorystorage "github.com/docceastland/church-content/pkg/churchcontent/storage/memory"
	s3storage "github.com/docceastland/church-content/pkg/churchcontent/storage/s3"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of
// library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:        "8080",
		Environment: "development",
		Database:    DatabaseConfig{Type: "disabled"},
		Storage:     StorageConfig{Type: ""},
	}
}

// ServerConfig represents server configuration for the church-content service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	Database DatabaseConfig
	Storage  StorageConfig
}

// DatabaseConfig selects and configures the document store. An absent or
// incomplete configuration degrades to the disabled store: reads serve
// defaults, writes report "database not configured".
type DatabaseConfig struct {
	Type string // "disabled", "memory", "firestore", "postgres"

	// Postgres
	URL string

	// Firestore service-account trio
	FirestoreProjectID   string
	FirestoreClientEmail string
	FirestorePrivateKey  string
}

// StorageConfig selects and configures the image blob store. An empty Type
// leaves the service without a blob store; uploads are rejected.
type StorageConfig struct {
	Type string // "", "memory", "fs", "s3"

	// Filesystem
	BaseDir   string
	URLPrefix string

	// S3
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	PublicURLBase   string
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	switch c.Database.Type {
	case "disabled", "memory":
	case "firestore":
		if c.Database.FirestoreProjectID == "" || c.Database.FirestoreClientEmail == "" || c.Database.FirestorePrivateKey == "" {
			return errors.New("firestore requires project id, client email and private key")
		}
	case "postgres":
		if c.Database.URL == "" {
			return errors.New("database url is required when using postgres")
		}
	default:
		return fmt.Errorf("unsupported database type: %s", c.Database.Type)
	}

	switch c.Storage.Type {
	case "", "memory":
	case "fs":
		if c.Storage.BaseDir == "" {
			return errors.New("base directory is required for filesystem storage")
		}
	case "s3":
		if c.Storage.Bucket == "" {
			return errors.New("bucket is required for s3 storage")
		}
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}

	return nil
}

// BuildService creates a Service instance from the server configuration
func (c *ServerConfig) BuildService(ctx context.Context) (churchcontent.Service, error) {
	store, blobs, err := c.BuildStores(ctx)
	if err != nil {
		return nil, err
	}

	options := []churchcontent.Option{churchcontent.WithDocumentStore(store)}
	if blobs != nil {
		options = append(options, churchcontent.WithBlobStore(blobs))
	}
	return churchcontent.New(options...)
}

// BuildStores creates the document store and the (possibly nil) blob store.
func (c *ServerConfig) BuildStores(ctx context.Context) (churchcontent.DocumentStore, churchcontent.BlobStore, error) {
	store, err := c.buildDocumentStore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build document store: %w", err)
	}

	blobs, err := c.buildBlobStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build blob store: %w", err)
	}

	return store, blobs, nil
}

func (c *ServerConfig) buildDocumentStore(ctx context.Context) (churchcontent.DocumentStore, error) {
	switch c.Database.Type {
	case "disabled":
		return disabled.New(), nil

	case "memory":
		return memorydoc.New(), nil

	case "firestore":
		return firestoredoc.New(ctx, firestoredoc.Config{
			ProjectID:   c.Database.FirestoreProjectID,
			ClientEmail: c.Database.FirestoreClientEmail,
			PrivateKey:  c.Database.FirestorePrivateKey,
		})

	case "postgres":
		pool, err := pgxpool.New(ctx, c.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to create pgx pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("database ping failed: %w", err)
		}
		store := postgresdoc.NewWithPool(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported database type: %s", c.Database.Type)
	}
}

func (c *ServerConfig) buildBlobStore() (churchcontent.BlobStore, error) {
	switch c.Storage.Type {
	case "":
		return nil, nil

	case "memory":
		return memorystorage.New(), nil

	case "fs":
		return fsstorage.New(fsstorage.Config{
			BaseDir:   c.Storage.BaseDir,
			URLPrefix: c.Storage.URLPrefix,
		})

	case "s3":
		return s3storage.New(s3storage.Config{
			Region:          c.Storage.Region,
			Bucket:          c.Storage.Bucket,
			AccessKeyID:     c.Storage.AccessKeyID,
			SecretAccessKey: c.Storage.SecretAccessKey,
			Endpoint:        c.Storage.Endpoint,
			UsePathStyle:    c.Storage.UsePathStyle,
			PublicURLBase:   c.Storage.PublicURLBase,
		})

	default:
		return nil, fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}
}

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig is the flat environment surface read by WithEnv.
type envConfig struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// Document store. Empty means disabled: reads serve defaults, writes
	// report "database not configured". Supported schemes: memory://,
	// firestore://<project-id>, postgres://...
	DatabaseURL string `env:"DATABASE_URL"`

	// Firestore service-account credentials, used with firestore:// URLs.
	FirestoreClientEmail string `env:"FIRESTORE_CLIENT_EMAIL"`
	FirestorePrivateKey  string `env:"FIRESTORE_PRIVATE_KEY"`

	// Blob store. Empty disables image uploads. Supported schemes:
	// memory://, file://<dir>, s3://<bucket>?region=...
	StorageURL       string `env:"STORAGE_URL"`
	StorageURLPrefix string `env:"STORAGE_URL_PREFIX"`

	// S3 credentials and addressing, used with s3:// URLs.
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	S3PublicURLBase    string `env:"S3_PUBLIC_URL_BASE"`
}

// WithEnv populates the configuration from environment variables. Missing or
// incomplete database credentials are not an error: the service degrades to
// defaults-only mode, matching how the site behaves on an unconfigured
// deployment.
func WithEnv() Option {
	return func(cfg *ServerConfig) error {
		var env envConfig
		if err := cleanenv.ReadEnv(&env); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}

		cfg.Port = env.Port
		cfg.Environment = env.Environment

		if err := applyDatabaseEnv(cfg, env); err != nil {
			return err
		}
		return applyStorageEnv(cfg, env)
	}
}

func applyDatabaseEnv(cfg *ServerConfig, env envConfig) error {
	raw := strings.TrimSpace(env.DatabaseURL)
	if raw == "" {
		slog.Warn("DATABASE_URL is not set, content services will serve defaults only")
		cfg.Database = DatabaseConfig{Type: "disabled"}
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	switch u.Scheme {
	case "memory":
		cfg.Database = DatabaseConfig{Type: "memory"}

	case "firestore":
		projectID := u.Host
		if projectID == "" {
			return fmt.Errorf("firestore DATABASE_URL must carry a project id, e.g. firestore://my-project")
		}
		if env.FirestoreClientEmail == "" || env.FirestorePrivateKey == "" {
			slog.Warn("Firestore credentials are incomplete, content services will serve defaults only",
				"have_client_email", env.FirestoreClientEmail != "",
				"have_private_key", env.FirestorePrivateKey != "")
			cfg.Database = DatabaseConfig{Type: "disabled"}
			return nil
		}
		cfg.Database = DatabaseConfig{
			Type:                 "firestore",
			FirestoreProjectID:   projectID,
			FirestoreClientEmail: env.FirestoreClientEmail,
			FirestorePrivateKey:  env.FirestorePrivateKey,
		}

	case "postgres", "postgresql":
		cfg.Database = DatabaseConfig{Type: "postgres", URL: raw}

	default:
		return fmt.Errorf("unsupported DATABASE_URL scheme: %s", u.Scheme)
	}
	return nil
}

func applyStorageEnv(cfg *ServerConfig, env envConfig) error {
	raw := strings.TrimSpace(env.StorageURL)
	if raw == "" {
		slog.Warn("STORAGE_URL is not set, image uploads are disabled")
		cfg.Storage = StorageConfig{Type: ""}
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid STORAGE_URL: %w", err)
	}

	switch u.Scheme {
	case "memory":
		cfg.Storage = StorageConfig{Type: "memory"}

	case "file":
		dir := u.Host + u.Path
		if dir == "" {
			return fmt.Errorf("file STORAGE_URL must carry a directory, e.g. file://./data/images")
		}
		cfg.Storage = StorageConfig{
			Type:      "fs",
			BaseDir:   dir,
			URLPrefix: env.StorageURLPrefix,
		}

	case "s3":
		if u.Host == "" {
			return fmt.Errorf("s3 STORAGE_URL must carry a bucket, e.g. s3://my-bucket?region=us-east-1")
		}
		q := u.Query()
		cfg.Storage = StorageConfig{
			Type:            "s3",
			Bucket:          u.Host,
			Region:          q.Get("region"),
			Endpoint:        q.Get("endpoint"),
			UsePathStyle:    q.Get("path_style") == "true",
			AccessKeyID:     env.AWSAccessKeyID,
			SecretAccessKey: env.AWSSecretAccessKey,
			PublicURLBase:   env.S3PublicURLBase,
		}

	default:
		return fmt.Errorf("unsupported STORAGE_URL scheme: %s", u.Scheme)
	}
	return nil
}

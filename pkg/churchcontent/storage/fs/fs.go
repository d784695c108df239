package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Config options for the filesystem backend
type Config struct {
	BaseDir   string // Base directory for storing images
	URLPrefix string // URL prefix under which stored images are served
}

// Store is a filesystem image store. Image URLs point at the server's own
// image-serving route.
type Store struct {
	baseDir   string
	urlPrefix string
}

// New creates a new filesystem blob store
func New(config Config) (*Store, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}
	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	prefix := strings.TrimSuffix(config.URLPrefix, "/")
	if prefix == "" {
		prefix = "/images"
	}

	return &Store{
		baseDir:   config.BaseDir,
		urlPrefix: prefix,
	}, nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(key)), nil
}

// Upload writes the blob under baseDir and returns its serving URL.
func (s *Store) Upload(ctx context.Context, key string, reader io.Reader, mimeType string) (string, error) {
	filePath, err := s.path(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.urlPrefix + "/" + key, nil
}

// Download streams a stored blob.
func (s *Store) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	filePath, err := s.path(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return nil, errors.New("object not found")
	} else if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// Delete removes a stored blob and prunes directories it leaves empty.
func (s *Store) Delete(ctx context.Context, key string) error {
	filePath, err := s.path(key)
	if err != nil {
		return err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return errors.New("object not found")
	}
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.cleanupEmptyDirectories(filepath.Dir(filePath))
	return nil
}

// cleanupEmptyDirectories recursively removes empty directories up to baseDir
func (s *Store) cleanupEmptyDirectories(dir string) {
	if dir == s.baseDir {
		return
	}
	if entries, err := os.ReadDir(dir); err == nil && len(entries) == 0 {
		if os.Remove(dir) == nil {
			s.cleanupEmptyDirectories(filepath.Dir(dir))
		}
	}
}

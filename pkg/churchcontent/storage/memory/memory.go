package memory

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
)

// Store is an in-memory image store used in tests and local development.
type Store struct {
	mu       sync.RWMutex
	blobs    map[string][]byte
	mimeType map[string]string
}

// New creates a new in-memory blob store
func New() *Store {
	return &Store{
		blobs:    make(map[string][]byte),
		mimeType: make(map[string]string),
	}
}

// Upload stores the blob and returns a memory:// URL for it.
func (s *Store) Upload(ctx context.Context, key string, reader io.Reader, mimeType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = data
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	s.mimeType[key] = mimeType
	return "memory://" + key, nil
}

// Download streams a stored blob.
func (s *Store) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, exists := s.blobs[key]
	if !exists {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete removes a stored blob.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.blobs[key]; !exists {
		return errors.New("object not found")
	}
	delete(s.blobs, key)
	delete(s.mimeType, key)
	return nil
}

// Len reports how many blobs are stored. Test helper.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}

// Has reports whether a blob exists under key. Test helper.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blobs[key]
	return ok
}

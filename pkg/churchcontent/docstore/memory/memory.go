package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

// Store is an in-memory implementation of churchcontent.DocumentStore,
// used in tests and credential-less development.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
}

// New creates a new in-memory document store
func New() *Store {
	return &Store{
		collections: make(map[string]map[string]map[string]interface{}),
	}
}

func (s *Store) collection(name string) map[string]map[string]interface{} {
	col, ok := s.collections[name]
	if !ok {
		col = make(map[string]map[string]interface{})
		s.collections[name] = col
	}
	return col
}

func cloneData(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

func (s *Store) Get(ctx context.Context, collection, id string) (*churchcontent.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return nil, churchcontent.ErrDocumentNotFound
	}
	return &churchcontent.Document{ID: id, Data: cloneData(data)}, nil
}

func (s *Store) Set(ctx context.Context, collection, id string, data map[string]interface{}, merge bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collection(collection)
	if merge {
		if existing, ok := col[id]; ok {
			merged := cloneData(existing)
			for k, v := range data {
				merged[k] = v
			}
			col[id] = merged
			return nil
		}
	}
	col[id] = cloneData(data)
	return nil
}

func (s *Store) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.collection(collection)[id] = cloneData(data)
	return id, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, data map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[collection]
	if !ok {
		return churchcontent.ErrDocumentNotFound
	}
	if _, ok := col[id]; !ok {
		return churchcontent.ErrDocumentNotFound
	}
	col[id] = cloneData(data)
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func (s *Store) DeleteAll(ctx context.Context, collection string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.collections[collection])
	delete(s.collections, collection)
	return n, nil
}

func (s *Store) List(ctx context.Context, collection string, order churchcontent.Order) ([]churchcontent.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col := s.collections[collection]
	docs := make([]churchcontent.Document, 0, len(col))
	for id, data := range col {
		docs = append(docs, churchcontent.Document{ID: id, Data: cloneData(data)})
	}

	sort.SliceStable(docs, func(i, j int) bool {
		less := compareValues(docs[i].Data[order.Field], docs[j].Data[order.Field]) < 0
		if order.Desc {
			return !less && compareValues(docs[i].Data[order.Field], docs[j].Data[order.Field]) != 0
		}
		return less
	})

	return docs, nil
}

// compareValues orders field values the way the hosted stores do: strings
// lexicographically (ISO 8601 dates sort correctly this way), numbers
// numerically, everything else by its printed form.
func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	}

	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

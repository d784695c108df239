package churchcontent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sort orders fixed per collection.
var (
	sermonOrder     = Order{Field: "date", Desc: true}
	eventOrder      = Order{Field: "date"}
	ministryOrder   = Order{Field: "name"}
	leadershipOrder = Order{Field: "name"}
	requestOrder    = Order{Field: "date", Desc: true}
)

// service implements the Service interface
type service struct {
	store DocumentStore
	blobs BlobStore
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithDocumentStore sets the document store for the service
func WithDocumentStore(store DocumentStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithBlobStore sets the blob store used for image uploads. Without one, the
// service rejects uploads and skips orphaned-blob cleanup.
func WithBlobStore(store BlobStore) Option {
	return func(s *service) {
		s.blobs = store
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{}

	for _, option := range options {
		option(s)
	}

	if s.store == nil {
		return nil, fmt.Errorf("document store is required")
	}

	return s, nil
}

// Singleton content helpers. Reads always produce a renderable value: the
// default when the document is missing, the default plus the error when the
// store fails.

func getSingleton[T any](ctx context.Context, s *service, docID string, def T) (T, error) {
	doc, err := s.store.Get(ctx, ContentCollection, docID)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return def, nil
		}
		return def, &DocumentError{Collection: ContentCollection, DocID: docID, Op: "get", Err: err}
	}

	out := def
	if err := decodeDocument(*doc, &out); err != nil {
		return def, &DocumentError{Collection: ContentCollection, DocID: docID, Op: "decode", Err: err}
	}
	return out, nil
}

func saveSingleton[T any](ctx context.Context, s *service, docID string, content T, merge bool) error {
	data, err := encodeFields(content)
	if err != nil {
		return &DocumentError{Collection: ContentCollection, DocID: docID, Op: "encode", Err: err}
	}
	if err := s.store.Set(ctx, ContentCollection, docID, data, merge); err != nil {
		return &DocumentError{Collection: ContentCollection, DocID: docID, Op: "save", Err: err}
	}
	return nil
}

// Collection helpers.

func listCollection[T any](ctx context.Context, s *service, collection string, order Order) ([]T, error) {
	docs, err := s.store.List(ctx, collection, order)
	if err != nil {
		return []T{}, &DocumentError{Collection: collection, Op: "list", Err: err}
	}

	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var entity T
		if err := decodeDocument(doc, &entity); err != nil {
			return []T{}, &DocumentError{Collection: collection, DocID: doc.ID, Op: "decode", Err: err}
		}
		out = append(out, entity)
	}
	return out, nil
}

func (s *service) addToCollection(ctx context.Context, collection string, input interface{}) error {
	data, err := encodeFields(input)
	if err != nil {
		return &DocumentError{Collection: collection, Op: "encode", Err: err}
	}
	if _, err := s.store.Add(ctx, collection, data); err != nil {
		return &DocumentError{Collection: collection, Op: "add", Err: err}
	}
	return nil
}

func (s *service) updateInCollection(ctx context.Context, collection, id string, input interface{}) error {
	data, err := encodeFields(input)
	if err != nil {
		return &DocumentError{Collection: collection, DocID: id, Op: "encode", Err: err}
	}
	if err := s.store.Update(ctx, collection, id, data); err != nil {
		return &DocumentError{Collection: collection, DocID: id, Op: "update", Err: err}
	}
	return nil
}

// Hero section

func (s *service) GetHeroContent(ctx context.Context) (HeroContent, error) {
	return getSingleton(ctx, s, HeroDocID, DefaultHeroContent())
}

func (s *service) SaveHeroContent(ctx context.Context, content HeroContent) error {
	return saveSingleton(ctx, s, HeroDocID, content, true)
}

func (s *service) UploadHeroImage(ctx context.Context, req UploadImageRequest) (*ImageUpload, error) {
	// Read the current content first to learn which blob is being replaced.
	// A read failure just means there is nothing to clean up.
	current, _ := s.GetHeroContent(ctx)

	upload, err := s.uploadImage(ctx, HeroImageFolder, req)
	if err != nil {
		return nil, err
	}

	s.reapImage(ctx, current.ImageFileID)
	return upload, nil
}

// About page

func (s *service) GetAboutContent(ctx context.Context) (AboutContent, error) {
	return getSingleton(ctx, s, AboutDocID, DefaultAboutContent())
}

func (s *service) SaveAboutContent(ctx context.Context, content AboutContent) error {
	return saveSingleton(ctx, s, AboutDocID, content, false)
}

// Contact details

func (s *service) GetContactInfo(ctx context.Context) (ContactInfo, error) {
	return getSingleton(ctx, s, ContactDocID, DefaultContactInfo())
}

func (s *service) SaveContactInfo(ctx context.Context, info ContactInfo) error {
	return saveSingleton(ctx, s, ContactDocID, info, false)
}

// Ministries page header

func (s *service) GetMinistriesPageContent(ctx context.Context) (MinistriesPageContent, error) {
	return getSingleton(ctx, s, MinistriesPageDocID, DefaultMinistriesPageContent())
}

func (s *service) SaveMinistriesPageContent(ctx context.Context, content MinistriesPageContent) error {
	return saveSingleton(ctx, s, MinistriesPageDocID, content, true)
}

func (s *service) UploadMinistriesPageImage(ctx context.Context, req UploadImageRequest) (*ImageUpload, error) {
	current, _ := s.GetMinistriesPageContent(ctx)

	upload, err := s.uploadImage(ctx, MinistriesPageImageFolder, req)
	if err != nil {
		return nil, err
	}

	s.reapImage(ctx, current.ImageFileID)
	return upload, nil
}

// Sermons

func (s *service) ListSermons(ctx context.Context) ([]Sermon, error) {
	return listCollection[Sermon](ctx, s, SermonsCollection, sermonOrder)
}

func (s *service) AddSermon(ctx context.Context, input SermonInput) error {
	return s.addToCollection(ctx, SermonsCollection, input)
}

func (s *service) UpdateSermon(ctx context.Context, id string, input SermonInput) error {
	return s.updateInCollection(ctx, SermonsCollection, id, input)
}

func (s *service) DeleteSermon(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, SermonsCollection, id); err != nil {
		return &DocumentError{Collection: SermonsCollection, DocID: id, Op: "delete", Err: err}
	}
	return nil
}

// Events

func (s *service) ListEvents(ctx context.Context) ([]Event, error) {
	return listCollection[Event](ctx, s, EventsCollection, eventOrder)
}

func (s *service) AddEvent(ctx context.Context, input EventInput) error {
	return s.addToCollection(ctx, EventsCollection, input)
}

func (s *service) UpdateEvent(ctx context.Context, id string, input EventInput) error {
	return s.updateInCollection(ctx, EventsCollection, id, input)
}

func (s *service) DeleteEvent(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, EventsCollection, id); err != nil {
		return &DocumentError{Collection: EventsCollection, DocID: id, Op: "delete", Err: err}
	}
	return nil
}

// Ministries

func (s *service) ListMinistries(ctx context.Context) ([]Ministry, error) {
	return listCollection[Ministry](ctx, s, MinistriesCollection, ministryOrder)
}

func (s *service) AddMinistry(ctx context.Context, input MinistryInput) error {
	return s.addToCollection(ctx, MinistriesCollection, input)
}

func (s *service) UpdateMinistry(ctx context.Context, id string, input MinistryInput) error {
	s.reapReplacedImage(ctx, MinistriesCollection, id, input.ImageFileID)
	return s.updateInCollection(ctx, MinistriesCollection, id, input)
}

func (s *service) DeleteMinistry(ctx context.Context, id string) error {
	return s.deleteWithImage(ctx, MinistriesCollection, id)
}

func (s *service) UploadMinistryImage(ctx context.Context, req UploadImageRequest) (*ImageUpload, error) {
	// The superseded blob, if any, is cleaned up when the ministry record is
	// updated or deleted.
	return s.uploadImage(ctx, MinistryImageFolder, req)
}

// Leadership

func (s *service) ListLeadership(ctx context.Context) ([]LeadershipMember, error) {
	return listCollection[LeadershipMember](ctx, s, LeadershipCollection, leadershipOrder)
}

func (s *service) AddLeadershipMember(ctx context.Context, input LeadershipMemberInput) error {
	return s.addToCollection(ctx, LeadershipCollection, input)
}

func (s *service) UpdateLeadershipMember(ctx context.Context, id string, input LeadershipMemberInput) error {
	s.reapReplacedImage(ctx, LeadershipCollection, id, input.ImageFileID)
	return s.updateInCollection(ctx, LeadershipCollection, id, input)
}

func (s *service) DeleteLeadershipMember(ctx context.Context, id string) error {
	return s.deleteWithImage(ctx, LeadershipCollection, id)
}

func (s *service) UploadLeadershipImage(ctx context.Context, req UploadImageRequest) (*ImageUpload, error) {
	return s.uploadImage(ctx, LeadershipImageFolder, req)
}

// Requests

func (s *service) ListRequests(ctx context.Context) ([]Request, error) {
	return listCollection[Request](ctx, s, RequestsCollection, requestOrder)
}

func (s *service) AddRequest(ctx context.Context, note, phone string) error {
	if strings.TrimSpace(note) == "" {
		return ErrEmptyNote
	}

	data := map[string]interface{}{
		"note":  note,
		"phone": phone,
		"date":  time.Now().UTC().Format(time.RFC3339Nano),
	}
	if _, err := s.store.Add(ctx, RequestsCollection, data); err != nil {
		return &DocumentError{Collection: RequestsCollection, Op: "add", Err: err}
	}
	return nil
}

func (s *service) DeleteRequest(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, RequestsCollection, id); err != nil {
		return &DocumentError{Collection: RequestsCollection, DocID: id, Op: "delete", Err: err}
	}
	return nil
}

package churchcontent

import "context"

// Service defines the main interface for the church-content library.
//
// Singleton reads (GetHeroContent and friends) always return a renderable
// value: the stored document, or the kind's default when the document is
// missing or the store fails. The returned error reports the store failure,
// if any; callers rendering a page may ignore it.
//
// Image uploads return the new blob's URL and file ID but do not write them
// to the owning document. A follow-up save must carry them; an upload whose
// save never happens leaves an orphaned blob until the next replacement.
type Service interface {
	// Hero section
	GetHeroContent(ctx context.Context) (HeroContent, error)
	SaveHeroContent(ctx context.Context, content HeroContent) error
	UploadHeroImage(ctx context.Context, req UploadImageRequest) (*ImageUpload, error)

	// About page
	GetAboutContent(ctx context.Context) (AboutContent, error)
	SaveAboutContent(ctx context.Context, content AboutContent) error

	// Contact details
	GetContactInfo(ctx context.Context) (ContactInfo, error)
	SaveContactInfo(ctx context.Context, info ContactInfo) error

	// Ministries page header
	GetMinistriesPageContent(ctx context.Context) (MinistriesPageContent, error)
	SaveMinistriesPageContent(ctx context.Context, content MinistriesPageContent) error
	UploadMinistriesPageImage(ctx context.Context, req UploadImageRequest) (*ImageUpload, error)

	// Sermons, ordered by date descending
	ListSermons(ctx context.Context) ([]Sermon, error)
	AddSermon(ctx context.Context, input SermonInput) error
	UpdateSermon(ctx context.Context, id string, input SermonInput) error
	DeleteSermon(ctx context.Context, id string) error

	// Events, ordered by date ascending
	ListEvents(ctx context.Context) ([]Event, error)
	AddEvent(ctx context.Context, input EventInput) error
	UpdateEvent(ctx context.Context, id string, input EventInput) error
	DeleteEvent(ctx context.Context, id string) error

	// Ministries, ordered by name ascending
	ListMinistries(ctx context.Context) ([]Ministry, error)
	AddMinistry(ctx context.Context, input MinistryInput) error
	UpdateMinistry(ctx context.Context, id string, input MinistryInput) error
	DeleteMinistry(ctx context.Context, id string) error
	UploadMinistryImage(ctx context.Context, req UploadImageRequest) (*ImageUpload, error)

	// Leadership, ordered by name ascending
	ListLeadership(ctx context.Context) ([]LeadershipMember, error)
	AddLeadershipMember(ctx context.Context, input LeadershipMemberInput) error
	UpdateLeadershipMember(ctx context.Context, id string, input LeadershipMemberInput) error
	DeleteLeadershipMember(ctx context.Context, id string) error
	UploadLeadershipImage(ctx context.Context, req UploadImageRequest) (*ImageUpload, error)

	// Requests, ordered by date descending
	ListRequests(ctx context.Context) ([]Request, error)
	AddRequest(ctx context.Context, note, phone string) error
	DeleteRequest(ctx context.Context, id string) error

	// Seed purges and refills the fixture collections and overwrites the
	// singleton fixture documents. Partial progress before a failure is not
	// rolled back; the returned logs record how far it got.
	Seed(ctx context.Context) (*SeedResult, error)
}

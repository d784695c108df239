package churchcontent

// Collection names. Singleton content documents share one collection and are
// addressed by fixed document IDs; every other collection holds zero or more
// documents with store-generated IDs.
const (
	ContentCollection    = "content"
	SermonsCollection    = "sermons"
	EventsCollection     = "events"
	MinistriesCollection = "ministries"
	LeadershipCollection = "leadership"
	RequestsCollection   = "requests"
)

// Well-known document IDs for singleton content.
const (
	HeroDocID           = "hero-content"
	AboutDocID          = "about-content"
	ContactDocID        = "contact-info"
	MinistriesPageDocID = "ministries-page-content"
)

// HeroContent is the home page hero section.
type HeroContent struct {
	Headline     string `json:"headline"`
	Subheadline  string `json:"subheadline"`
	ServiceTimes string `json:"serviceTimes"`
	Address      string `json:"address"`
	ButtonText   string `json:"buttonText"`
	ImageURL     string `json:"imageUrl"`
	ImageFileID  string `json:"imageFileId,omitempty"`
}

// AboutContent holds the five free-text statements on the about page.
type AboutContent struct {
	Identity string `json:"identity"`
	Mission  string `json:"mission"`
	Beliefs  string `json:"beliefs"`
	History  string `json:"history"`
	Vision   string `json:"vision"`
}

// ContactInfo is the church's published contact details.
type ContactInfo struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// MinistriesPageContent is the header section of the ministries page.
type MinistriesPageContent struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	ImageURL    string `json:"imageUrl"`
	ImageFileID string `json:"imageFileId,omitempty"`
}

// Sermon is a recorded sermon. Date is an ISO 8601 string. At least one of
// AudioURL/VideoURL is expected, but that is enforced by the admin form, not
// here.
type Sermon struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Speaker  string `json:"speaker"`
	Date     string `json:"date"`
	AudioURL string `json:"audioUrl,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// Event is a calendar entry. Time is free text ("7:00 PM", "All Day").
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// Ministry is a ministry listing, optionally with a photo. ImageFileID is a
// weak reference into the blob store, used only to delete the blob when the
// photo is replaced or the ministry removed.
type Ministry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ImageFileID string `json:"imageFileId,omitempty"`
}

// LeadershipMember is a staff or leadership listing. The photo is required.
type LeadershipMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	ImageFileID string `json:"imageFileId,omitempty"`
}

// Request is a free-form note submitted from the public site. Date is
// server-assigned at creation. Requests are only ever viewed and deleted from
// the admin side.
type Request struct {
	ID    string `json:"id"`
	Note  string `json:"note"`
	Phone string `json:"phone,omitempty"`
	Date  string `json:"date"`
}

// DefaultHeroContent returns the hero section rendered when no document has
// been saved yet (or the store is unreachable).
func DefaultHeroContent() HeroContent {
	return HeroContent{
		Headline:     "Welcome to the Disciple of Christ Church",
		Subheadline:  "Eastland Parish — A place to believe, belong, and become.",
		ServiceTimes: "Service Times: Sundays at 9:00 AM & 11:00 AM",
		Address:      "123 Church Street, Eastland",
		ButtonText:   "Plan Your Visit",
		ImageURL:     "https://placehold.co/1600x900.png",
	}
}

// DefaultAboutContent returns the default about page statements.
func DefaultAboutContent() AboutContent {
	return AboutContent{
		Identity: "We are a Christ-centered, Bible-based community, committed to loving God and loving others.",
		Mission:  "To know Christ and to make Him known, fostering a community of believers dedicated to worship, fellowship, and service.",
		Beliefs:  "We hold to the historic tenets of the Christian faith, affirming the Bible as the inspired Word of God and Jesus Christ as our Lord and Savior.",
		History:  "Founded in 1924, our church has been a spiritual home in Eastland for a century, growing in faith and community through generations.",
		Vision:   "To be a beacon of hope and a center for spiritual growth, reaching our community and the world with the transformative message of the Gospel.",
	}
}

// DefaultContactInfo returns the default contact details.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		Address: "123 Church Street, Eastland, 12345",
		Phone:   "(123) 456-7890",
		Email:   "contact@docceastland.org",
	}
}

// DefaultMinistriesPageContent returns the default ministries page header.
func DefaultMinistriesPageContent() MinistriesPageContent {
	return MinistriesPageContent{
		Title:    "Our Ministries",
		Subtitle: "Find your place to serve and grow within our church family.",
		ImageURL: "https://placehold.co/1600x400.png",
	}
}

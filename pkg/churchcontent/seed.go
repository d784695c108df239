package churchcontent

import (
	"context"
	"fmt"
)

// Seed fixtures. Identifiers are fixture-supplied, not store-generated, so
// repeated seeding is stable.
var (
	seedSermons = []Sermon{
		{ID: "1", Title: "The Parable of the Sower: A Deeper Look", Speaker: "Pastor Evelyn Reed", Date: "2024-07-28T00:00:00Z", AudioURL: "#"},
		{ID: "2", Title: "Foundations of Faith: The Rock on Which We Stand", Speaker: "Rev. Dr. Samuel Parris", Date: "2024-07-21T00:00:00Z", AudioURL: "#"},
		{ID: "3", Title: "Love in Action: Serving the Community", Speaker: "Guest Speaker, Dr. Anita Jones", Date: "2024-07-14T00:00:00Z", AudioURL: "#"},
		{ID: "4", Title: "Navigating Life's Storms with Hope", Speaker: "John Hawthorne", Date: "2024-07-07T00:00:00Z", AudioURL: "#"},
	}

	seedEvents = []Event{
		{ID: "1", Title: "Men's Breakfast Fellowship", Date: "2024-08-03T00:00:00Z", Time: "8:00 AM",
			Description: "Join the men of the church for a time of food, fellowship, and a brief devotional."},
		{ID: "2", Title: "Vacation Bible School Sign-ups", Date: "2024-08-04T00:00:00Z", Time: "After Both Services",
			Description: "Sign up your children for our upcoming VBS week, 'Jungle Journey'!"},
		{ID: "3", Title: "Senior's Potluck Luncheon", Date: "2024-08-08T00:00:00Z", Time: "12:30 PM",
			Description: "A wonderful time for our seniors to connect over a shared meal. Please bring a dish to pass."},
	}

	seedMinistries = []Ministry{
		{ID: "1", Name: "Children's Ministry", Description: "Nurturing faith in our youngest members through fun and foundational teaching."},
		{ID: "2", Name: "Missions Committee", Description: "Supporting missionaries and outreach efforts both locally and globally."},
		{ID: "3", Name: "Hospitality Team", Description: "Creating a welcoming environment for guests and members alike."},
		{ID: "4", Name: "Young Adults Group", Description: "Connecting those in their 20s and 30s through study and social events."},
	}

	seedLeadership = []LeadershipMember{
		{ID: "1", Name: "Rev. Dr. Samuel Parris", Title: "Senior Pastor", ImageURL: "https://placehold.co/200x200.png"},
		{ID: "2", Name: "Pastor Evelyn Reed", Title: "Associate Pastor", ImageURL: "https://placehold.co/200x200.png"},
		{ID: "3", Name: "John Hawthorne", Title: "Youth Pastor", ImageURL: "https://placehold.co/200x200.png"},
		{ID: "4", Name: "Abigail Williams", Title: "Worship Leader", ImageURL: "https://placehold.co/200x200.png"},
	}

	// Singleton fixture documents, written as-is (no merge). The about
	// fixture deliberately carries only three of the five statements; reads
	// back-fill the rest from defaults.
	seedContent = []struct {
		DocID string
		Data  map[string]interface{}
	}{
		{AboutDocID, map[string]interface{}{
			"mission": "To know Christ and to make Him known, fostering a community of believers dedicated to worship, fellowship, and service.",
			"beliefs": "We hold to the historic tenets of the Christian faith, affirming the Bible as the inspired Word of God and Jesus Christ as our Lord and Savior.",
			"history": "Founded in 1924, our church has been a spiritual home in Eastland for a century, growing in faith and community through generations.",
		}},
		{ContactDocID, map[string]interface{}{
			"address": "123 Church Street, Eastland, 12345",
			"phone":   "(123) 456-7890",
			"email":   "contact@docceastland.org",
		}},
		{HeroDocID, map[string]interface{}{
			"headline":     "Welcome to the Disciple of Christ Church",
			"subheadline":  "Eastland Parish — A place to believe, belong, and become.",
			"serviceTimes": "Service Times: Sundays at 9:00 AM & 11:00 AM",
			"address":      "123 Church Street, Eastland",
			"buttonText":   "Plan Your Visit",
			"imageUrl":     "https://placehold.co/1600x900.png",
		}},
	}
)

// seedDocuments converts fixture entities into (id, data) pairs.
func seedDocuments[T any](entities []T, id func(T) string) ([]Document, error) {
	docs := make([]Document, 0, len(entities))
	for _, e := range entities {
		data, err := encodeFields(e)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: id(e), Data: data})
	}
	return docs, nil
}

func (s *service) Seed(ctx context.Context) (*SeedResult, error) {
	res := &SeedResult{}
	logf := func(format string, args ...interface{}) {
		res.Logs = append(res.Logs, fmt.Sprintf(format, args...))
	}

	fail := func(collection, op string, err error) (*SeedResult, error) {
		logf("Error seeding %s: %v", collection, err)
		return res, &DocumentError{Collection: collection, Op: op, Err: err}
	}

	sermonDocs, _ := seedDocuments(seedSermons, func(v Sermon) string { return v.ID })
	eventDocs, _ := seedDocuments(seedEvents, func(v Event) string { return v.ID })
	ministryDocs, _ := seedDocuments(seedMinistries, func(v Ministry) string { return v.ID })
	leadershipDocs, _ := seedDocuments(seedLeadership, func(v LeadershipMember) string { return v.ID })

	collections := []struct {
		name string
		docs []Document
	}{
		{SermonsCollection, sermonDocs},
		{EventsCollection, eventDocs},
		{MinistriesCollection, ministryDocs},
		{LeadershipCollection, leadershipDocs},
	}

	for _, c := range collections {
		logf("--- Seeding %s ---", c.name)

		purged, err := s.store.DeleteAll(ctx, c.name)
		if err != nil {
			return fail(c.name, "purge", err)
		}
		if purged > 0 {
			logf("Collection '%s' already had data. Deleted %d existing documents.", c.name, purged)
		}

		for _, doc := range c.docs {
			if err := s.store.Set(ctx, c.name, doc.ID, doc.Data, false); err != nil {
				return fail(c.name, "seed", err)
			}
			logf("Added document %s to %s.", doc.ID, c.name)
		}
		logf("Successfully seeded %d documents into %s.", len(c.docs), c.name)
	}

	logf("--- Seeding content ---")
	for _, c := range seedContent {
		if err := s.store.Set(ctx, ContentCollection, c.DocID, c.Data, false); err != nil {
			return fail(ContentCollection, "seed", err)
		}
		logf("Set document '%s' in content collection.", c.DocID)
	}
	logf("Successfully seeded content.")

	logf("Database seeding completed successfully.")
	return res, nil
}

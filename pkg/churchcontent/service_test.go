package churchcontent_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docceastland/church-content/pkg/churchcontent"
	"github.com/docceastland/church-content/pkg/churchcontent/docstore/disabled"
	docmemory "github.com/docceastland/church-content/pkg/churchcontent/docstore/memory"
	blobmemory "github.com/docceastland/church-content/pkg/churchcontent/storage/memory"
)

func newTestService(t *testing.T) (churchcontent.Service, *docmemory.Store, *blobmemory.Store) {
	t.Helper()

	store := docmemory.New()
	blobs := blobmemory.New()
	svc, err := churchcontent.New(
		churchcontent.WithDocumentStore(store),
		churchcontent.WithBlobStore(blobs),
	)
	require.NoError(t, err)
	return svc, store, blobs
}

func newDisabledService(t *testing.T) churchcontent.Service {
	t.Helper()

	svc, err := churchcontent.New(churchcontent.WithDocumentStore(disabled.New()))
	require.NoError(t, err)
	return svc
}

func TestServiceCreation(t *testing.T) {
	t.Run("no document store should fail", func(t *testing.T) {
		svc, err := churchcontent.New()
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("with document store should succeed", func(t *testing.T) {
		svc, err := churchcontent.New(churchcontent.WithDocumentStore(docmemory.New()))
		assert.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestSingletonDefaults(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	t.Run("hero defaults when never saved", func(t *testing.T) {
		content, err := svc.GetHeroContent(ctx)
		require.NoError(t, err)
		assert.Equal(t, churchcontent.DefaultHeroContent(), content)
	})

	t.Run("about defaults when never saved", func(t *testing.T) {
		content, err := svc.GetAboutContent(ctx)
		require.NoError(t, err)
		assert.Equal(t, churchcontent.DefaultAboutContent(), content)
	})

	t.Run("contact defaults when never saved", func(t *testing.T) {
		info, err := svc.GetContactInfo(ctx)
		require.NoError(t, err)
		assert.Equal(t, churchcontent.DefaultContactInfo(), info)
	})

	t.Run("ministries page defaults when never saved", func(t *testing.T) {
		content, err := svc.GetMinistriesPageContent(ctx)
		require.NoError(t, err)
		assert.Equal(t, churchcontent.DefaultMinistriesPageContent(), content)
	})
}

func TestSingletonDefaultsWithoutDatabase(t *testing.T) {
	svc := newDisabledService(t)
	ctx := context.Background()

	// Reads still produce renderable content; the error reports why.
	content, err := svc.GetHeroContent(ctx)
	assert.ErrorIs(t, err, churchcontent.ErrNotConfigured)
	assert.Equal(t, churchcontent.DefaultHeroContent(), content)

	// Writes fail outright.
	err = svc.SaveHeroContent(ctx, content)
	assert.ErrorIs(t, err, churchcontent.ErrNotConfigured)

	// Collection reads degrade to empty lists.
	sermons, err := svc.ListSermons(ctx)
	assert.ErrorIs(t, err, churchcontent.ErrNotConfigured)
	assert.Empty(t, sermons)
}

func TestSingletonRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	hero := churchcontent.HeroContent{
		Headline:     "Revival Week",
		Subheadline:  "All are welcome",
		ServiceTimes: "Sundays at 10:00 AM",
		Address:      "1 Main Street",
		ButtonText:   "Join Us",
		ImageURL:     "https://example.com/hero.png",
	}
	require.NoError(t, svc.SaveHeroContent(ctx, hero))

	got, err := svc.GetHeroContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, hero, got)

	contact := churchcontent.ContactInfo{
		Address: "1 Main Street",
		Phone:   "(555) 000-1111",
		Email:   "hello@example.org",
	}
	require.NoError(t, svc.SaveContactInfo(ctx, contact))

	gotContact, err := svc.GetContactInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, contact, gotContact)
}

func TestPartialDocumentBackfillsDefaults(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	// A document carrying only some fields reads back with the missing ones
	// taken from the defaults.
	err := store.Set(ctx, churchcontent.ContentCollection, churchcontent.AboutDocID,
		map[string]interface{}{"mission": "Custom mission"}, false)
	require.NoError(t, err)

	about, err := svc.GetAboutContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Custom mission", about.Mission)
	assert.Equal(t, churchcontent.DefaultAboutContent().Identity, about.Identity)
	assert.Equal(t, churchcontent.DefaultAboutContent().Vision, about.Vision)
}

func TestSermons(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	t.Run("empty list", func(t *testing.T) {
		sermons, err := svc.ListSermons(ctx)
		require.NoError(t, err)
		assert.NotNil(t, sermons)
		assert.Empty(t, sermons)
	})

	t.Run("add and list newest first", func(t *testing.T) {
		older := churchcontent.SermonInput{Title: "Older", Speaker: "A", Date: "2024-01-07T00:00:00Z", AudioURL: "#"}
		newer := churchcontent.SermonInput{Title: "Newer", Speaker: "B", Date: "2024-02-04T00:00:00Z", VideoURL: "#"}
		require.NoError(t, svc.AddSermon(ctx, older))
		require.NoError(t, svc.AddSermon(ctx, newer))

		sermons, err := svc.ListSermons(ctx)
		require.NoError(t, err)
		require.Len(t, sermons, 2)
		assert.Equal(t, "Newer", sermons[0].Title)
		assert.Equal(t, "Older", sermons[1].Title)
		assert.NotEmpty(t, sermons[0].ID)
	})

	t.Run("update", func(t *testing.T) {
		sermons, err := svc.ListSermons(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, sermons)

		id := sermons[0].ID
		err = svc.UpdateSermon(ctx, id, churchcontent.SermonInput{
			Title: "Retitled", Speaker: sermons[0].Speaker, Date: sermons[0].Date,
		})
		require.NoError(t, err)

		sermons, err = svc.ListSermons(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Retitled", sermons[0].Title)
	})

	t.Run("update missing sermon fails", func(t *testing.T) {
		err := svc.UpdateSermon(ctx, "no-such-id", churchcontent.SermonInput{Title: "X"})
		assert.ErrorIs(t, err, churchcontent.ErrDocumentNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		sermons, err := svc.ListSermons(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, sermons)

		require.NoError(t, svc.DeleteSermon(ctx, sermons[0].ID))
		assert.NoError(t, svc.DeleteSermon(ctx, sermons[0].ID))
		assert.NoError(t, svc.DeleteSermon(ctx, "never-existed"))
	})
}

func TestEventsOrderedSoonestFirst(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddEvent(ctx, churchcontent.EventInput{
		Title: "Later", Date: "2024-09-01T00:00:00Z", Time: "7:00 PM", Description: "d",
	}))
	require.NoError(t, svc.AddEvent(ctx, churchcontent.EventInput{
		Title: "Sooner", Date: "2024-08-01T00:00:00Z", Time: "All Day", Description: "d",
	}))

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Sooner", events[0].Title)
	assert.Equal(t, "Later", events[1].Title)
}

func TestMinistries(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddMinistry(ctx, churchcontent.MinistryInput{Name: "Choir", Description: "Singing"}))
	require.NoError(t, svc.AddMinistry(ctx, churchcontent.MinistryInput{Name: "Audio Team", Description: "Sound"}))

	t.Run("sorted by name", func(t *testing.T) {
		ministries, err := svc.ListMinistries(ctx)
		require.NoError(t, err)
		require.Len(t, ministries, 2)
		assert.Equal(t, "Audio Team", ministries[0].Name)
		assert.Equal(t, "Choir", ministries[1].Name)
	})

	t.Run("delete missing ministry reports not found", func(t *testing.T) {
		err := svc.DeleteMinistry(ctx, "no-such-id")
		assert.ErrorIs(t, err, churchcontent.ErrDocumentNotFound)
	})

	t.Run("delete existing ministry", func(t *testing.T) {
		ministries, err := svc.ListMinistries(ctx)
		require.NoError(t, err)
		require.Len(t, ministries, 2)

		require.NoError(t, svc.DeleteMinistry(ctx, ministries[0].ID))

		ministries, err = svc.ListMinistries(ctx)
		require.NoError(t, err)
		assert.Len(t, ministries, 1)
	})
}

func TestLeadership(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddLeadershipMember(ctx, churchcontent.LeadershipMemberInput{
		Name: "Zed", Title: "Elder", ImageURL: "https://example.com/zed.png",
	}))
	require.NoError(t, svc.AddLeadershipMember(ctx, churchcontent.LeadershipMemberInput{
		Name: "Amy", Title: "Deacon", ImageURL: "https://example.com/amy.png",
	}))

	members, err := svc.ListLeadership(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Amy", members[0].Name)
	assert.Equal(t, "Zed", members[1].Name)

	err = svc.DeleteLeadershipMember(ctx, "no-such-id")
	assert.ErrorIs(t, err, churchcontent.ErrDocumentNotFound)
}

func TestRequests(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	t.Run("blank note rejected", func(t *testing.T) {
		assert.ErrorIs(t, svc.AddRequest(ctx, "", ""), churchcontent.ErrEmptyNote)
		assert.ErrorIs(t, svc.AddRequest(ctx, "   \t", "555"), churchcontent.ErrEmptyNote)
	})

	t.Run("date assigned server side", func(t *testing.T) {
		before := time.Now().UTC().Add(-time.Second)
		require.NoError(t, svc.AddRequest(ctx, "Please pray for us", "(555) 123-4567"))

		requests, err := svc.ListRequests(ctx)
		require.NoError(t, err)
		require.Len(t, requests, 1)

		assert.Equal(t, "Please pray for us", requests[0].Note)
		assert.Equal(t, "(555) 123-4567", requests[0].Phone)

		stamp, err := time.Parse(time.RFC3339Nano, requests[0].Date)
		require.NoError(t, err)
		assert.True(t, stamp.After(before))
	})

	t.Run("newest first", func(t *testing.T) {
		require.NoError(t, svc.AddRequest(ctx, "Second note", ""))

		requests, err := svc.ListRequests(ctx)
		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, "Second note", requests[0].Note)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		requests, err := svc.ListRequests(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, requests)

		require.NoError(t, svc.DeleteRequest(ctx, requests[0].ID))
		assert.NoError(t, svc.DeleteRequest(ctx, requests[0].ID))
	})
}

func TestImageUploads(t *testing.T) {
	ctx := context.Background()

	t.Run("no blob store rejects uploads", func(t *testing.T) {
		svc, err := churchcontent.New(churchcontent.WithDocumentStore(docmemory.New()))
		require.NoError(t, err)

		_, err = svc.UploadHeroImage(ctx, churchcontent.UploadImageRequest{
			FileName: "a.png", MimeType: "image/png", File: strings.NewReader("data"),
		})
		assert.ErrorIs(t, err, churchcontent.ErrUploadsDisabled)
	})

	t.Run("missing file rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.UploadMinistryImage(ctx, churchcontent.UploadImageRequest{})
		assert.ErrorIs(t, err, churchcontent.ErrNoFile)
	})

	t.Run("upload returns url and key-shaped file id", func(t *testing.T) {
		svc, _, blobs := newTestService(t)

		upload, err := svc.UploadMinistryImage(ctx, churchcontent.UploadImageRequest{
			FileName: "team.jpg", MimeType: "image/jpeg", File: strings.NewReader("jpegdata"),
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(upload.FileID, churchcontent.MinistryImageFolder+"/"))
		assert.True(t, strings.HasSuffix(upload.FileID, ".jpg"))
		assert.Equal(t, "memory://"+upload.FileID, upload.URL)
		assert.True(t, blobs.Has(upload.FileID))
	})
}

func TestHeroImageReplacementReapsOldBlob(t *testing.T) {
	svc, _, blobs := newTestService(t)
	ctx := context.Background()

	first, err := svc.UploadHeroImage(ctx, churchcontent.UploadImageRequest{
		FileName: "one.png", MimeType: "image/png", File: strings.NewReader("one"),
	})
	require.NoError(t, err)

	hero, err := svc.GetHeroContent(ctx)
	require.NoError(t, err)
	hero.ImageURL = first.URL
	hero.ImageFileID = first.FileID
	require.NoError(t, svc.SaveHeroContent(ctx, hero))
	require.Equal(t, 1, blobs.Len())

	second, err := svc.UploadHeroImage(ctx, churchcontent.UploadImageRequest{
		FileName: "two.png", MimeType: "image/png", File: strings.NewReader("two"),
	})
	require.NoError(t, err)

	assert.False(t, blobs.Has(first.FileID), "replaced blob should be deleted")
	assert.True(t, blobs.Has(second.FileID))
	assert.Equal(t, 1, blobs.Len())
}

func TestMinistryUpdateReapsReplacedImage(t *testing.T) {
	svc, _, blobs := newTestService(t)
	ctx := context.Background()

	first, err := svc.UploadMinistryImage(ctx, churchcontent.UploadImageRequest{
		FileName: "old.png", MimeType: "image/png", File: strings.NewReader("old"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddMinistry(ctx, churchcontent.MinistryInput{
		Name: "Outreach", Description: "d", ImageURL: first.URL, ImageFileID: first.FileID,
	}))
	ministries, err := svc.ListMinistries(ctx)
	require.NoError(t, err)
	require.Len(t, ministries, 1)
	id := ministries[0].ID

	t.Run("update keeping the same image reaps nothing", func(t *testing.T) {
		require.NoError(t, svc.UpdateMinistry(ctx, id, churchcontent.MinistryInput{
			Name: "Outreach", Description: "renamed", ImageURL: first.URL, ImageFileID: first.FileID,
		}))
		assert.True(t, blobs.Has(first.FileID))
	})

	t.Run("update with a new image reaps the old blob", func(t *testing.T) {
		second, err := svc.UploadMinistryImage(ctx, churchcontent.UploadImageRequest{
			FileName: "new.png", MimeType: "image/png", File: strings.NewReader("new"),
		})
		require.NoError(t, err)

		require.NoError(t, svc.UpdateMinistry(ctx, id, churchcontent.MinistryInput{
			Name: "Outreach", Description: "d", ImageURL: second.URL, ImageFileID: second.FileID,
		}))
		assert.False(t, blobs.Has(first.FileID))
		assert.True(t, blobs.Has(second.FileID))
	})

	t.Run("delete reaps the remaining blob", func(t *testing.T) {
		require.NoError(t, svc.DeleteMinistry(ctx, id))
		assert.Equal(t, 0, blobs.Len())
	})
}

func TestDocumentErrorCarriesCollection(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	err := svc.DeleteMinistry(ctx, "missing")
	require.Error(t, err)

	var docErr *churchcontent.DocumentError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, churchcontent.MinistriesCollection, docErr.Collection)
	assert.Equal(t, "missing", docErr.DocID)
}

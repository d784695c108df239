package churchcontent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docceastland/church-content/pkg/churchcontent"
)

func TestSeed(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.Seed(ctx)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Logs)
	assert.Contains(t, result.Logs, "Database seeding completed successfully.")

	sermons, err := svc.ListSermons(ctx)
	require.NoError(t, err)
	assert.Len(t, sermons, 4)
	assert.Equal(t, "The Parable of the Sower: A Deeper Look", sermons[0].Title)

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 3)
	assert.Equal(t, "Men's Breakfast Fellowship", events[0].Title)

	ministries, err := svc.ListMinistries(ctx)
	require.NoError(t, err)
	assert.Len(t, ministries, 4)
	assert.Equal(t, "Children's Ministry", ministries[0].Name)

	leadership, err := svc.ListLeadership(ctx)
	require.NoError(t, err)
	assert.Len(t, leadership, 4)

	// Singleton fixtures land too; the about fixture only carries three of
	// the five statements, so the rest read back as defaults.
	about, err := svc.GetAboutContent(ctx)
	require.NoError(t, err)
	assert.Contains(t, about.History, "Founded in 1924")
	assert.Equal(t, churchcontent.DefaultAboutContent().Identity, about.Identity)
	assert.Equal(t, churchcontent.DefaultAboutContent().Vision, about.Vision)

	hero, err := svc.GetHeroContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the Disciple of Christ Church", hero.Headline)
}

func TestSeedPurgesExistingData(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddSermon(ctx, churchcontent.SermonInput{
		Title: "Pre-existing", Speaker: "S", Date: "2030-01-01T00:00:00Z",
	}))

	result, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Contains(t, result.Logs, "Collection 'sermons' already had data. Deleted 1 existing documents.")

	sermons, err := svc.ListSermons(ctx)
	require.NoError(t, err)
	require.Len(t, sermons, 4)
	for _, sermon := range sermons {
		assert.NotEqual(t, "Pre-existing", sermon.Title)
	}
}

func TestSeedWithoutDatabase(t *testing.T) {
	svc := newDisabledService(t)

	result, err := svc.Seed(context.Background())
	assert.ErrorIs(t, err, churchcontent.ErrNotConfigured)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Logs, "partial progress log is still returned")
}

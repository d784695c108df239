package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docceastland/church-content/pkg/churchcontent"
	"github.com/docceastland/church-content/pkg/churchcontent/docstore/memory"
)

func TestGetSet(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	_, err := store.Get(ctx, "content", "hero-content")
	assert.ErrorIs(t, err, churchcontent.ErrDocumentNotFound)

	require.NoError(t, store.Set(ctx, "content", "hero-content",
		map[string]interface{}{"headline": "Hello"}, false))

	doc, err := store.Get(ctx, "content", "hero-content")
	require.NoError(t, err)
	assert.Equal(t, "hero-content", doc.ID)
	assert.Equal(t, "Hello", doc.Data["headline"])
}

func TestSetMerge(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "content", "doc",
		map[string]interface{}{"a": "1", "b": "2"}, false))

	t.Run("merge keeps untouched fields", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "content", "doc",
			map[string]interface{}{"b": "3"}, true))

		doc, err := store.Get(ctx, "content", "doc")
		require.NoError(t, err)
		assert.Equal(t, "1", doc.Data["a"])
		assert.Equal(t, "3", doc.Data["b"])
	})

	t.Run("replace drops untouched fields", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "content", "doc",
			map[string]interface{}{"b": "4"}, false))

		doc, err := store.Get(ctx, "content", "doc")
		require.NoError(t, err)
		assert.NotContains(t, doc.Data, "a")
		assert.Equal(t, "4", doc.Data["b"])
	})
}

func TestAddGeneratesDistinctIDs(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	id1, err := store.Add(ctx, "sermons", map[string]interface{}{"title": "A"})
	require.NoError(t, err)
	id2, err := store.Add(ctx, "sermons", map[string]interface{}{"title": "B"})
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)
}

func TestUpdateRequiresExistingDocument(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	err := store.Update(ctx, "sermons", "missing", map[string]interface{}{"title": "X"})
	assert.ErrorIs(t, err, churchcontent.ErrDocumentNotFound)

	id, err := store.Add(ctx, "sermons", map[string]interface{}{"title": "A"})
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, "sermons", id, map[string]interface{}{"title": "B"}))

	doc, err := store.Get(ctx, "sermons", id)
	require.NoError(t, err)
	assert.Equal(t, "B", doc.Data["title"])
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	assert.NoError(t, store.Delete(ctx, "sermons", "missing"))

	id, err := store.Add(ctx, "sermons", map[string]interface{}{"title": "A"})
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "sermons", id))
	assert.NoError(t, store.Delete(ctx, "sermons", id))
}

func TestDeleteAll(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	n, err := store.DeleteAll(ctx, "sermons")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for i := 0; i < 3; i++ {
		_, err := store.Add(ctx, "sermons", map[string]interface{}{"title": "A"})
		require.NoError(t, err)
	}

	n, err = store.DeleteAll(ctx, "sermons")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	docs, err := store.List(ctx, "sermons", churchcontent.Order{Field: "title"})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestListOrdering(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	dates := []string{"2024-03-01T00:00:00Z", "2024-01-01T00:00:00Z", "2024-02-01T00:00:00Z"}
	for _, d := range dates {
		_, err := store.Add(ctx, "sermons", map[string]interface{}{"date": d})
		require.NoError(t, err)
	}

	asc, err := store.List(ctx, "sermons", churchcontent.Order{Field: "date"})
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, "2024-01-01T00:00:00Z", asc[0].Data["date"])
	assert.Equal(t, "2024-03-01T00:00:00Z", asc[2].Data["date"])

	desc, err := store.List(ctx, "sermons", churchcontent.Order{Field: "date", Desc: true})
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.Equal(t, "2024-03-01T00:00:00Z", desc[0].Data["date"])
	assert.Equal(t, "2024-01-01T00:00:00Z", desc[2].Data["date"])
}

func TestDocumentsAreIsolated(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	data := map[string]interface{}{"title": "original"}
	require.NoError(t, store.Set(ctx, "sermons", "1", data, false))

	// Mutating the caller's map must not leak into the store.
	data["title"] = "mutated"

	doc, err := store.Get(ctx, "sermons", "1")
	require.NoError(t, err)
	assert.Equal(t, "original", doc.Data["title"])

	// Nor should mutating a returned document.
	doc.Data["title"] = "mutated again"
	doc2, err := store.Get(ctx, "sermons", "1")
	require.NoError(t, err)
	assert.Equal(t, "original", doc2.Data["title"])
}

package memory_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docceastland/church-content/pkg/churchcontent/storage/memory"
)

func TestUploadDownloadDelete(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	url, err := store.Upload(ctx, "church-hero/abc.png", strings.NewReader("pngdata"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "memory://church-hero/abc.png", url)
	assert.Equal(t, 1, store.Len())

	body, err := store.Download(ctx, "church-hero/abc.png")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "pngdata", string(data))

	require.NoError(t, store.Delete(ctx, "church-hero/abc.png"))
	assert.Equal(t, 0, store.Len())
}

func TestMissingObjects(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	_, err := store.Download(ctx, "nope")
	assert.Error(t, err)

	assert.Error(t, store.Delete(ctx, "nope"))
}

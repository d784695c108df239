package churchcontent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFieldsStripsID(t *testing.T) {
	data, err := encodeFields(Sermon{
		ID: "abc", Title: "T", Speaker: "S", Date: "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	assert.NotContains(t, data, "id")
	assert.Equal(t, "T", data["title"])
	assert.Equal(t, "S", data["speaker"])
}

func TestEncodeFieldsOmitsEmptyOptionals(t *testing.T) {
	data, err := encodeFields(Sermon{Title: "T"})
	require.NoError(t, err)

	assert.NotContains(t, data, "audioUrl")
	assert.NotContains(t, data, "videoUrl")
}

func TestDecodeDocumentMergesID(t *testing.T) {
	var sermon Sermon
	err := decodeDocument(Document{
		ID:   "abc",
		Data: map[string]interface{}{"title": "T"},
	}, &sermon)
	require.NoError(t, err)

	assert.Equal(t, "abc", sermon.ID)
	assert.Equal(t, "T", sermon.Title)
}

func TestDecodeDocumentKeepsExistingFields(t *testing.T) {
	about := DefaultAboutContent()
	err := decodeDocument(Document{
		ID:   AboutDocID,
		Data: map[string]interface{}{"mission": "Custom"},
	}, &about)
	require.NoError(t, err)

	assert.Equal(t, "Custom", about.Mission)
	assert.Equal(t, DefaultAboutContent().Beliefs, about.Beliefs)
}

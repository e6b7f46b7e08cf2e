package imagestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			"cloudinary-shaped url",
			"https://res.cloudinary.com/demo/image/upload/v1712345/ai_images/abc123.png",
			"ai_images/abc123",
		},
		{
			"no extension",
			"https://images.example.com/ai_images/abc123",
			"ai_images/abc123",
		},
		{
			"multiple dots keep everything before the last",
			"https://images.example.com/ai_images/a.b.c.webp",
			"ai_images/a.b.c",
		},
		{
			"bare segment",
			"abc123.jpg",
			"ai_images/abc123",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AssetIDFromURL(tc.url, "ai_images"))
		})
	}
}

func TestDecodeImage(t *testing.T) {
	t.Run("bare base64", func(t *testing.T) {
		data, contentType, err := decodeImage("aGVsbG8=")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)
		assert.Equal(t, defaultContentType, contentType)
	})

	t.Run("data uri", func(t *testing.T) {
		data, contentType, err := decodeImage("data:image/jpeg;base64,aGVsbG8=")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)
		assert.Equal(t, "image/jpeg", contentType)
	})

	t.Run("malformed data uri", func(t *testing.T) {
		_, _, err := decodeImage("data:image/png;base64")
		assert.Error(t, err)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, _, err := decodeImage("not!!base64")
		assert.Error(t, err)
	})
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".png", extensionFor("application/octet-stream"))
}

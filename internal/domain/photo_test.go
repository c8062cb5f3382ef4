package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoKeepsUnknownFields(t *testing.T) {
	in := `{"id":"53","owner":"12@N01","secret":"abc","server":"65535","farm":66,"title":"Harbor","ispublic":1,"url_s":"https://x/53.jpg","height_s":180}`

	var p Photo
	require.NoError(t, json.Unmarshal([]byte(in), &p))
	assert.Equal(t, "53", p.ID)
	assert.Equal(t, "https://x/53.jpg", p.ImageURL)
	assert.Equal(t, "Harbor", p.Title)
	assert.Equal(t, "12@N01", p.Owner)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestPhotoImageURLFallback(t *testing.T) {
	var p Photo
	require.NoError(t, json.Unmarshal([]byte(`{"id":"7","server":"123","secret":"s3"}`), &p))
	assert.Equal(t, "https://live.staticflickr.com/123/7_s3_m.jpg", p.ImageURL)
}

func TestPhotoNumericID(t *testing.T) {
	var p Photo
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"url_s":"https://x/42.jpg"}`), &p))
	assert.Equal(t, "42", p.ID)
}

func TestPhotoMissingID(t *testing.T) {
	var p Photo
	require.NoError(t, json.Unmarshal([]byte(`{"url_s":"https://x/1.jpg"}`), &p))
	assert.Empty(t, p.ID)
}

func TestPhotoWithoutRawMarshalsWireNames(t *testing.T) {
	p := Photo{ID: "1", ImageURL: "https://x/1.jpg", Title: "One"}
	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","url_s":"https://x/1.jpg","title":"One"}`, string(out))

	var back Photo
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, p.ID, back.ID)
	assert.Equal(t, p.ImageURL, back.ImageURL)
	assert.Equal(t, p.Title, back.Title)
}

func TestEncodeDecodePhotosRoundTrip(t *testing.T) {
	in := []byte(`[{"id":"1","url_s":"https://x/1.jpg","extra":{"a":[1,2]}},{"id":"2","url_s":"https://x/2.jpg"}]`)

	photos, err := DecodePhotos(in)
	require.NoError(t, err)
	require.Len(t, photos, 2)

	out, err := EncodePhotos(photos)
	require.NoError(t, err)
	assert.Equal(t, string(in), string(out))
}

func TestEncodePhotosNil(t *testing.T) {
	out, err := EncodePhotos(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "Harbor", Photo{ID: "1", Title: " Harbor "}.DisplayTitle())
	assert.Equal(t, "#9", Photo{ID: "9"}.DisplayTitle())
}

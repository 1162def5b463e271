package gallery

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadRequest builds a multipart upload. An empty contentType omits the file.
func uploadRequest(t *testing.T, contentType string, content []byte, tags string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if contentType != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="photo"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("tags", tags))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestIsImageType(t *testing.T) {
	for _, tt := range []struct {
		contentType string
		want        bool
	}{
		{"image/png", true},
		{"image/svg+xml", true},
		{"IMAGE/JPEG", true},
		{"text/plain", false},
		{"application/octet-stream", false},
		{"", false},
		{"images/png", false},
	} {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImageType(tt.contentType))
		})
	}
}

func TestEncodeDataURI(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AQID", EncodeDataURI("image/png", []byte{1, 2, 3}))
	assert.Equal(t, "data:image/jpeg;base64,", EncodeDataURI("image/jpeg; charset=binary", nil))
}

func TestReadUpload(t *testing.T) {
	t.Run("encodes images", func(t *testing.T) {
		data, err := ReadUpload(uploadRequest(t, "image/png", []byte{1, 2, 3}, "a"), 1<<20)
		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,AQID", data)
	})

	t.Run("rejects other types", func(t *testing.T) {
		_, err := ReadUpload(uploadRequest(t, "text/plain", []byte("hi"), "a"), 1<<20)
		assert.True(t, errors.Is(err, ErrNotImage), "got %v", err)
	})

	t.Run("reports a missing file", func(t *testing.T) {
		_, err := ReadUpload(uploadRequest(t, "", nil, "a"), 1<<20)
		assert.True(t, errors.Is(err, ErrNoFile), "got %v", err)
	})

	t.Run("reports a non multipart request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(url.Values{"tags": {"a"}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		_, err := ReadUpload(req, 1<<20)
		assert.True(t, errors.Is(err, ErrNoFile), "got %v", err)
	})

	t.Run("maps errors to notices", func(t *testing.T) {
		assert.Equal(t, "notice.no_file", uploadNotice(ErrNoFile))
		assert.Equal(t, "notice.not_image", uploadNotice(fmt.Errorf("%w: x", ErrNotImage)))
		assert.Equal(t, "notice.read_failed", uploadNotice(ErrReadFailed))
	})
}

package gallery

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/lewtec/galeria/internal/domain"
)

var (
	ErrNoFile     = errors.New("no image file selected")
	ErrNotImage   = errors.New("file is not an image")
	ErrReadFailed = errors.New("error reading file")
)

// IsImageType reports whether a declared content type is an image type.
// Only the type prefix is checked; the content itself is never inspected.
func IsImageType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

// EncodeDataURI embeds content in a base64 data URI
func EncodeDataURI(contentType string, content []byte) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(contentType)
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(content)
}

// ReadUpload extracts the uploaded image of a multipart request and returns
// it as a data URI. The returned errors wrap ErrNoFile, ErrNotImage or
// ErrReadFailed.
func ReadUpload(r *http.Request, maxBytes int64) (string, error) {
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return "", ErrNoFile
		}
		return "", fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return "", ErrNoFile
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !IsImageType(contentType) {
		return "", fmt.Errorf("%w: %q has type %q", ErrNotImage, header.Filename, contentType)
	}
	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return EncodeDataURI(contentType, content), nil
}

// uploadNotice maps an upload error to the message shown to the user
func uploadNotice(err error) string {
	switch {
	case errors.Is(err, ErrNoFile):
		return domain.NoticeNoFile
	case errors.Is(err, ErrNotImage):
		return domain.NoticeNotImage
	default:
		return domain.NoticeReadFailed
	}
}

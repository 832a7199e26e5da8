package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes caps a single decoded image
const MaxImageBytes = 10 << 20

// ErrInvalidImage is returned for payloads that are neither an image data URI nor an http(s) URL
var ErrInvalidImage = errors.New("invalid image")

// allowedImageTypes are the detected types accepted for avatars, covers and post images
var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// DataURI is a decoded "data:<type>;base64,<payload>" image
type DataURI struct {
	// MediaType is the detected type, not the declared one
	MediaType string
	Extension string
	Data      []byte
}

// IsRemoteURL reports whether s is an http(s) URL
func IsRemoteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsDataURI reports whether s looks like a data URI
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// ParseDataURI decodes a base64 image data URI and checks its content type
func ParseDataURI(s string) (*DataURI, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !IsDataURI(s) || !ok {
		return nil, fmt.Errorf("%w: not a data URI", ErrInvalidImage)
	}
	if !strings.HasSuffix(header, ";base64") {
		return nil, fmt.Errorf("%w: data URI must be base64 encoded", ErrInvalidImage)
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrInvalidImage, MaxImageBytes)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	detected := mimetype.Detect(data)
	if !mimetype.EqualsAny(detected.String(), allowedImageTypes...) {
		return nil, fmt.Errorf("%w: unsupported type %s", ErrInvalidImage, detected.String())
	}

	return &DataURI{
		MediaType: detected.String(),
		Extension: detected.Extension(),
		Data:      data,
	}, nil
}

// ValidateImageRef accepts an image data URI or an http(s) URL
func ValidateImageRef(s string) error {
	if IsRemoteURL(s) {
		return nil
	}
	_, err := ParseDataURI(s)
	return err
}

// EncodeDataURI wraps raw image bytes as a base64 data URI using the detected type
func EncodeDataURI(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}
	if len(data) > MaxImageBytes {
		return "", fmt.Errorf("%w: larger than %d bytes", ErrInvalidImage, MaxImageBytes)
	}

	detected := mimetype.Detect(data)
	if !mimetype.EqualsAny(detected.String(), allowedImageTypes...) {
		return "", fmt.Errorf("%w: unsupported type %s", ErrInvalidImage, detected.String())
	}
	return "data:" + detected.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

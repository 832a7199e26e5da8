package storage

import (
	"context"
)

// Image kinds, used as key prefixes
const (
	KindAvatar     = "avatars"
	KindCoverPhoto = "covers"
	KindPostImage  = "posts"
)

// ImageStore turns a client-supplied image (data URI or URL) into the reference that gets persisted.
// This interface allows for easy mocking in tests
type ImageStore interface {
	Store(ctx context.Context, userID, kind, image string) (string, error)
}

// InlineImageStore keeps validated data URIs in the document itself
type InlineImageStore struct{}

// Store validates image and returns it unchanged
func (InlineImageStore) Store(ctx context.Context, userID, kind, image string) (string, error) {
	if err := ValidateImageRef(image); err != nil {
		return "", err
	}
	return image, nil
}

// Ensure implementations satisfy ImageStore
var (
	_ ImageStore = InlineImageStore{}
	_ ImageStore = (*S3ImageStore)(nil)
)

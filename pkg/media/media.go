// Package media turns command-line image arguments into values the API accepts.
package media

import (
	"fmt"
	"os"

	"github.com/KlienGumapac/freedomewall/internal/storage"
)

// Resolve returns ref unchanged when it is already an http(s) URL or a data URI.
// Anything else is read as a local file and encoded as a data URI.
func Resolve(ref string) (string, error) {
	if storage.IsRemoteURL(ref) || storage.IsDataURI(ref) {
		return ref, nil
	}

	info, err := os.Stat(ref)
	if err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", ref, err)
	}
	if info.Size() > storage.MaxImageBytes {
		return "", fmt.Errorf("%w: %s is larger than %d bytes", storage.ErrInvalidImage, ref, storage.MaxImageBytes)
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", ref, err)
	}

	uri, err := storage.EncodeDataURI(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ref, err)
	}
	return uri, nil
}

// ResolveAll resolves every ref, stopping at the first failure
func ResolveAll(refs []string) ([]string, error) {
	images := make([]string, 0, len(refs))
	for _, ref := range refs {
		image, err := Resolve(ref)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, nil
}

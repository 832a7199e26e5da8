package service

import (
	"github.com/KlienGumapac/freedomewall/pkg/api"
	"github.com/KlienGumapac/freedomewall/pkg/media"
	"github.com/KlienGumapac/freedomewall/pkg/output"
)

// ProfileService views and edits profiles
type ProfileService struct{}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// ViewProfile prints a public profile. An empty id means the logged-in user.
func (s *ProfileService) ViewProfile(userID string) error {
	if userID == "" {
		creds, err := requireLogin()
		if err != nil {
			return err
		}
		userID = creds.UserID
	}

	user, err := api.GetUser(userID)
	if err != nil {
		return explain(err)
	}
	return output.RenderProfile(*user)
}

// UpdateDetails writes the non-nil profile fields
func (s *ProfileService) UpdateDetails(req api.ProfileRequest) error {
	if _, err := requireLogin(); err != nil {
		return err
	}

	resp, err := api.UpdateProfile(req)
	if err != nil {
		return explain(err)
	}
	return s.printUpdated(resp)
}

// UpdateAvatar replaces the avatar with a file, URL or data URI
func (s *ProfileService) UpdateAvatar(ref string) error {
	return s.updateImage(ref, api.UpdateAvatar)
}

// UpdateCoverPhoto replaces the cover photo with a file, URL or data URI
func (s *ProfileService) UpdateCoverPhoto(ref string) error {
	return s.updateImage(ref, api.UpdateCoverPhoto)
}

func (s *ProfileService) updateImage(ref string, update func(string) (*api.UserResponse, error)) error {
	if _, err := requireLogin(); err != nil {
		return err
	}

	image, err := media.Resolve(ref)
	if err != nil {
		return err
	}

	resp, err := update(image)
	if err != nil {
		return explain(err)
	}
	return s.printUpdated(resp)
}

func (s *ProfileService) printUpdated(resp *api.UserResponse) error {
	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(resp.User)
	}
	output.PrintSuccess("%s", resp.Message)
	return nil
}

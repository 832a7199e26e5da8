package api

import (
	"fmt"
	"net/url"

	"github.com/KlienGumapac/freedomewall/pkg/client"
	"github.com/KlienGumapac/freedomewall/pkg/logger"
)

// ProfileRequest is the body of PUT /api/user/profile. Nil fields are left unchanged.
type ProfileRequest struct {
	Bio          *string `json:"bio,omitempty"`
	Education    *string `json:"education,omitempty"`
	Location     *string `json:"location,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
}

// GetUser fetches a public profile
func GetUser(userID string) (*PublicUser, error) {
	logger.Debug("Fetching user", "user_id", userID)

	var resp PublicUserResponse
	httpResp, err := client.GetClient().
		R().
		SetResult(&resp).
		Get("/api/users/" + url.PathEscape(userID))
	if err := CheckResponse(httpResp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &resp.User, nil
}

// UpdateAvatar replaces the logged-in user's avatar with a data URI or URL
func UpdateAvatar(image string) (*UserResponse, error) {
	return putUser("/api/user/avatar", map[string]string{"avatar": image}, "avatar")
}

// UpdateCoverPhoto replaces the logged-in user's cover photo with a data URI or URL
func UpdateCoverPhoto(image string) (*UserResponse, error) {
	return putUser("/api/user/cover-photo", map[string]string{"coverPhoto": image}, "cover photo")
}

// UpdateProfile writes the provided profile details
func UpdateProfile(req ProfileRequest) (*UserResponse, error) {
	return putUser("/api/user/profile", req, "profile")
}

func putUser(path string, body interface{}, what string) (*UserResponse, error) {
	logger.Debug("Updating user", "field", what)

	var resp UserResponse
	httpResp, err := client.GetClient().
		R().
		SetBody(body).
		SetResult(&resp).
		Put(path)
	if err := CheckResponse(httpResp, err); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", what, err)
	}
	return &resp, nil
}

// Health reports the server's dependency status. A degraded server
// answers 503 with a body, which is returned alongside the error.
func Health() (*HealthResponse, error) {
	var resp HealthResponse
	httpResp, err := client.GetClient().
		R().
		SetResult(&resp).
		SetError(&resp).
		Get("/health")
	if err := CheckResponse(httpResp, err); err != nil {
		return &resp, fmt.Errorf("health check failed: %w", err)
	}
	return &resp, nil
}

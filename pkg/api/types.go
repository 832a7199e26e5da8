package api

import (
	"time"

	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/internal/wall"
)

// Response payloads share their shapes with the server
type (
	Post           = models.PostView
	Comment        = models.CommentView
	Reaction       = models.Reaction
	User           = models.User
	PublicUser     = models.PublicUser
	ReactionResult = wall.ReactionResult
	CommentsResult = wall.CommentsResult
)

// PostListResponse wraps GET /api/posts
type PostListResponse struct {
	Posts []Post `json:"posts"`
}

// PostResponse wraps a single post
type PostResponse struct {
	Post Post `json:"post"`
}

// UserResponse wraps a profile, with a message on updates
type UserResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// PublicUserResponse wraps GET /api/users/:id
type PublicUserResponse struct {
	User PublicUser `json:"user"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Service   string            `json:"service"`
	Services  map[string]string `json:"services"`
}

package repository

import (
	"context"
	"errors"

	"github.com/KlienGumapac/freedomewall/internal/models"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username or email already taken")
	ErrInvalidInput  = errors.New("invalid input")
	// ErrConflict means a compare-and-swap write kept losing to concurrent writers
	ErrConflict = errors.New("concurrent update conflict")
)

// MaxMutateAttempts bounds the compare-and-swap retry loop in Mutate
const MaxMutateAttempts = 5

// MutateFunc changes a freshly loaded post in memory. Returning an error aborts the write.
// It may run more than once when a concurrent writer wins the race.
type MutateFunc func(post *models.Post) error

// PostFilter narrows List. Zero values mean no filtering.
type PostFilter struct {
	UserID string
	Limit  int
}

// PostRepository handles all storage operations for posts
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, postID string) (*models.Post, error)
	// List returns posts newest first
	List(ctx context.Context, filter PostFilter) ([]*models.Post, error)
	// Mutate loads the post, applies fn and writes it back only if no one else wrote in between
	Mutate(ctx context.Context, postID string, fn MutateFunc) (*models.Post, error)
	Count(ctx context.Context) (int64, error)
}

// UserRepository handles all storage operations for users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// FindSummaries returns display fields keyed by user id; unknown ids are absent
	FindSummaries(ctx context.Context, userIDs []string) (map[string]models.UserSummary, error)
	// UpdateFields writes only the non-nil fields and returns the updated user
	UpdateFields(ctx context.Context, userID string, update models.UserUpdate) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

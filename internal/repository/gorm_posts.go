package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/models"
	"gorm.io/gorm"
)

// gormPostRepository implements PostRepository on a relational database
type gormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a post repository backed by GORM
func NewGormPostRepository(db *gorm.DB) PostRepository {
	return &gormPostRepository{db: db}
}

// Create inserts a new post
func (r *gormPostRepository) Create(ctx context.Context, post *models.Post) error {
	if post == nil {
		return ErrInvalidInput
	}
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID gets a post by ID
func (r *gormPostRepository) FindByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Where("id = ?", postID).First(&post).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List gets posts newest first, optionally for a single user
func (r *gormPostRepository) List(ctx context.Context, filter PostFilter) ([]*models.Post, error) {
	var posts []*models.Post

	query := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Mutate applies fn with a compare-and-swap on the revision column
func (r *gormPostRepository) Mutate(ctx context.Context, postID string, fn MutateFunc) (*models.Post, error) {
	for attempt := 1; attempt <= MaxMutateAttempts; attempt++ {
		post, err := r.FindByID(ctx, postID)
		if err != nil {
			return nil, err
		}

		expected := post.Revision
		if err := fn(post); err != nil {
			return nil, err
		}
		post.Normalize()
		post.Revision = expected + 1
		post.UpdatedAt = time.Now().UTC()

		result := r.db.WithContext(ctx).
			Model(&models.Post{}).
			Where("id = ? AND revision = ?", postID, expected).
			Updates(map[string]interface{}{
				"content":    post.Content,
				"images":     post.Images,
				"reactions":  post.Reactions,
				"comments":   post.Comments,
				"revision":   post.Revision,
				"updated_at": post.UpdatedAt,
			})
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update post: %w", result.Error)
		}
		if result.RowsAffected == 1 {
			return post, nil
		}
	}
	return nil, ErrConflict
}

// Count returns the number of posts
func (r *gormPostRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error
	return count, err
}

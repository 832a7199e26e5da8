package repository

import (
	"context"
	"errors"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/models"
	"gorm.io/gorm"
)

// userColumns maps UserUpdate document keys to column names
var userColumns = map[string]string{
	"avatar":       "avatar",
	"coverPhoto":   "cover_photo",
	"bio":          "bio",
	"education":    "education",
	"location":     "location",
	"relationship": "relationship",
}

// gormUserRepository implements UserRepository on a relational database
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a user repository backed by GORM
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

// Create creates a new user
func (r *gormUserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil {
		return ErrInvalidInput
	}

	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUser
	}
	return err
}

// FindByID gets a user by ID
func (r *gormUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername gets a user by username (case-insensitive)
func (r *gormUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindSummaries gets display fields for multiple users
func (r *gormUserRepository) FindSummaries(ctx context.Context, userIDs []string) (map[string]models.UserSummary, error) {
	summaries := make(map[string]models.UserSummary, len(userIDs))
	if len(userIDs) == 0 {
		return summaries, nil
	}

	var users []models.User
	err := r.db.WithContext(ctx).
		Select("id", "first_name", "last_name", "username", "avatar").
		Where("id IN ?", userIDs).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	for i := range users {
		summaries[users[i].ID] = users[i].Summary()
	}
	return summaries, nil
}

// UpdateFields sets the provided profile fields
func (r *gormUserRepository) UpdateFields(ctx context.Context, userID string, update models.UserUpdate) (*models.User, error) {
	if update.IsEmpty() {
		return r.FindByID(ctx, userID)
	}

	values := map[string]interface{}{"updated_at": time.Now().UTC()}
	for key, value := range update.Fields() {
		values[userColumns[key]] = value
	}

	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(values)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return r.FindByID(ctx, userID)
}

// Count returns the number of users
func (r *gormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

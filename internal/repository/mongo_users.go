package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoUserRepository implements UserRepository on MongoDB
type mongoUserRepository struct {
	users *mongo.Collection
}

// NewMongoUserRepository creates a user repository backed by MongoDB
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{users: db.Collection(UsersCollection)}
}

// Create creates a new user
func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil {
		return ErrInvalidInput
	}
	user.PrepareForCreate(time.Now().UTC())

	_, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUser
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindByID gets a user by ID
func (r *mongoUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID})
}

// FindByUsername gets a user by username (case-insensitive)
func (r *mongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	pattern := "^" + regexp.QuoteMeta(username) + "$"
	return r.findOne(ctx, bson.M{"username": bson.M{"$regex": pattern, "$options": "i"}})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, filter).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindSummaries gets display fields for multiple users
func (r *mongoUserRepository) FindSummaries(ctx context.Context, userIDs []string) (map[string]models.UserSummary, error) {
	summaries := make(map[string]models.UserSummary, len(userIDs))
	if len(userIDs) == 0 {
		return summaries, nil
	}

	opts := options.Find().SetProjection(bson.M{
		"firstName": 1,
		"lastName":  1,
		"username":  1,
		"avatar":    1,
	})
	cursor, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": userIDs}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var summary models.UserSummary
		if err := cursor.Decode(&summary); err != nil {
			return nil, err
		}
		summaries[summary.ID] = summary
	}
	return summaries, cursor.Err()
}

// UpdateFields sets the provided profile fields and returns the updated document
func (r *mongoUserRepository) UpdateFields(ctx context.Context, userID string, update models.UserUpdate) (*models.User, error) {
	if update.IsEmpty() {
		return r.FindByID(ctx, userID)
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range update.Fields() {
		set[key] = value
	}

	var user models.User
	err := r.users.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Count returns the number of users
func (r *mongoUserRepository) Count(ctx context.Context) (int64, error) {
	return r.users.CountDocuments(ctx, bson.M{})
}

// EnsureUserIndexes creates the unique username and email indexes
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

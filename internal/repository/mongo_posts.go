package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	PostsCollection = "posts"
	UsersCollection = "users"
)

// mongoPostRepository implements PostRepository on MongoDB, one document per post
type mongoPostRepository struct {
	posts *mongo.Collection
}

// NewMongoPostRepository creates a post repository backed by MongoDB
func NewMongoPostRepository(db *mongo.Database) PostRepository {
	return &mongoPostRepository{posts: db.Collection(PostsCollection)}
}

// Create inserts a new post
func (r *mongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	if post == nil {
		return ErrInvalidInput
	}
	post.PrepareForCreate(time.Now().UTC())

	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

// FindByID gets a post by ID
func (r *mongoPostRepository) FindByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	err := r.posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	post.Normalize()
	return &post, nil
}

// List gets posts newest first, optionally for a single user
func (r *mongoPostRepository) List(ctx context.Context, filter PostFilter) ([]*models.Post, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["user"] = filter.UserID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.posts.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := make([]*models.Post, 0)
	for cursor.Next(ctx) {
		var post models.Post
		if err := cursor.Decode(&post); err != nil {
			return nil, err
		}
		post.Normalize()
		posts = append(posts, &post)
	}
	return posts, cursor.Err()
}

// Mutate applies fn and replaces the document only if its revision is unchanged
func (r *mongoPostRepository) Mutate(ctx context.Context, postID string, fn MutateFunc) (*models.Post, error) {
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

		result, err := r.posts.ReplaceOne(ctx, bson.M{"_id": postID, "revision": expected}, post)
		if err != nil {
			return nil, fmt.Errorf("failed to replace post: %w", err)
		}
		if result.MatchedCount == 1 {
			return post, nil
		}
	}
	return nil, ErrConflict
}

// Count returns the number of posts
func (r *mongoPostRepository) Count(ctx context.Context) (int64, error) {
	return r.posts.CountDocuments(ctx, bson.M{})
}

// EnsurePostIndexes creates the indexes List relies on
func EnsurePostIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(PostsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	return err
}

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/logger"
	"github.com/KlienGumapac/freedomewall/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectMongo connects to MongoDB, pings it and ensures the collection indexes
func ConnectMongo(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(dbName)
	if err := repository.EnsurePostIndexes(connectCtx, db); err != nil {
		return nil, nil, fmt.Errorf("failed to create post indexes: %w", err)
	}
	if err := repository.EnsureUserIndexes(connectCtx, db); err != nil {
		return nil, nil, fmt.Errorf("failed to create user indexes: %w", err)
	}

	logger.Log.Info("MongoDB connected", zap.String("database", dbName))
	return client, db, nil
}

// MongoHealth pings the primary
func MongoHealth(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return fmt.Errorf("mongodb not initialized")
	}
	return client.Ping(ctx, readpref.Primary())
}

// DropMongo removes every post and user document
func DropMongo(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{repository.PostsCollection, repository.UsersCollection} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to clean %s: %w", name, err)
		}
	}
	return nil
}

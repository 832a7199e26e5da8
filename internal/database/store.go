package database

import (
	"context"
	"fmt"

	"github.com/KlienGumapac/freedomewall/internal/config"
	"github.com/KlienGumapac/freedomewall/internal/repository"
	"gorm.io/gorm"
)

// Store bundles the repositories of the configured driver with its lifecycle hooks
type Store struct {
	Driver string
	Posts  repository.PostRepository
	Users  repository.UserRepository

	health func(ctx context.Context) error
	clean  func(ctx context.Context) error
	close  func(ctx context.Context) error
}

// Health checks the underlying connection
func (s *Store) Health(ctx context.Context) error {
	return s.health(ctx)
}

// Clean deletes every post and user
func (s *Store) Clean(ctx context.Context) error {
	return s.clean(ctx)
}

// Close releases the connection
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}

// OpenStore connects to the store selected by cfg.StoreDriver and migrates or indexes it
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver: cfg.StoreDriver,
			Posts:  repository.NewMongoPostRepository(db),
			Users:  repository.NewMongoUserRepository(db),
			health: func(ctx context.Context) error { return MongoHealth(ctx, client) },
			clean:  func(ctx context.Context) error { return DropMongo(ctx, db) },
			close:  client.Disconnect,
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		db, err := Open(cfg)
		if err != nil {
			return nil, err
		}
		if err := Migrate(db); err != nil {
			_ = Close(db)
			return nil, err
		}
		return NewGormStore(cfg.StoreDriver, db), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// NewGormStore wraps an open, migrated GORM connection
func NewGormStore(driver string, db *gorm.DB) *Store {
	return &Store{
		Driver: driver,
		Posts:  repository.NewGormPostRepository(db),
		Users:  repository.NewGormUserRepository(db),
		health: func(ctx context.Context) error { return Health(ctx, db) },
		clean:  func(ctx context.Context) error { return Truncate(ctx, db) },
		close:  func(context.Context) error { return Close(db) },
	}
}

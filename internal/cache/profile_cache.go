package cache

import (
	"context"
	"errors"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/models"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultProfileTTL is how long a public profile stays cached
const DefaultProfileTTL = 5 * time.Minute

// ProfileCache caches public profiles served by GET /users/:id
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*models.PublicUser, error)
	Set(ctx context.Context, user models.PublicUser) error
	Invalidate(ctx context.Context, userID string) error
}

// RedisProfileCache stores profiles as JSON strings under "profile:<id>"
type RedisProfileCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewRedisProfileCache creates a profile cache on client
func NewRedisProfileCache(client *RedisClient, ttl time.Duration) *RedisProfileCache {
	if ttl <= 0 {
		ttl = DefaultProfileTTL
	}
	return &RedisProfileCache{client: client, ttl: ttl}
}

func profileKey(userID string) string {
	return "profile:" + userID
}

// Get returns the cached profile or ErrCacheMiss
func (c *RedisProfileCache) Get(ctx context.Context, userID string) (*models.PublicUser, error) {
	raw, err := c.client.Get(ctx, profileKey(userID))
	if err != nil {
		return nil, err
	}

	var user models.PublicUser
	if err := json.UnmarshalFromString(raw, &user); err != nil {
		// treat a corrupt entry as a miss
		_ = c.client.Del(ctx, profileKey(userID))
		return nil, ErrCacheMiss
	}
	return &user, nil
}

// Set caches the profile
func (c *RedisProfileCache) Set(ctx context.Context, user models.PublicUser) error {
	raw, err := json.MarshalToString(user)
	if err != nil {
		return err
	}
	return c.client.SetEx(ctx, profileKey(user.ID), raw, c.ttl)
}

// Invalidate drops the cached profile
func (c *RedisProfileCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, profileKey(userID))
}

// NoopProfileCache never caches anything
type NoopProfileCache struct{}

func (NoopProfileCache) Get(ctx context.Context, userID string) (*models.PublicUser, error) {
	return nil, ErrCacheMiss
}

func (NoopProfileCache) Set(ctx context.Context, user models.PublicUser) error { return nil }

func (NoopProfileCache) Invalidate(ctx context.Context, userID string) error { return nil }

// IsMiss reports whether err means the key was not cached
func IsMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}

var (
	_ ProfileCache = (*RedisProfileCache)(nil)
	_ ProfileCache = NoopProfileCache{}
)

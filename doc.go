// Package freedomwall is the Freedom Wall API server and its terminal client.
//
// Binaries live under cmd/:
//
// - cmd/server: HTTP API (posts, reactions, comments, profiles)
// - cmd/seed: development data, integrity checks and dev tokens
// - cmd/wallctl: terminal client for the same API
//
// Server packages are organized under internal/:
//
// - internal/handlers: HTTP request handlers for all API endpoints
// - internal/wall: post, reaction, comment and profile operations
// - internal/models: posts, users and the reaction/comment rules
// - internal/repository: GORM (postgres, sqlite) and MongoDB storage
// - internal/auth: bearer token issuing and verification
// - internal/storage: image data URIs and S3 uploads
// - internal/cache: Redis profile cache
// - internal/middleware: auth, rate limiting, logging, metrics, tracing
// - internal/database: connections, migrations and the store bundle
//
// Client packages live under pkg/ (config, client, api, service, output).
package freedomwall

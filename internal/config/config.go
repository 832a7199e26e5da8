package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/util"
	"github.com/joho/godotenv"
)

// Store drivers accepted by STORE_DRIVER
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the server configuration read from the environment
type Config struct {
	Port        string
	Environment string
	JWTSecret   []byte
	TokenTTL    time.Duration

	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	DatabaseURL   string
	SQLitePath    string

	RedisHost          string
	RedisPort          string
	RedisPassword      string
	RateLimitPerMinute int

	AWSRegion  string
	AWSBucket  string
	CDNBaseURL string

	CORSOrigins []string

	OTelEnabled      bool
	OTelEndpoint     string
	OTelSamplingRate float64

	LogLevel string
	LogFile  string

	RequiredServices []string
}

// Load reads .env (if present) and the process environment.
// JWT_SECRET is required; every other variable has a default.
func Load() (*Config, error) {
	// .env is optional; the process environment wins over it
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	secret := getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		Port:        get("PORT", "8787"),
		Environment: get("ENVIRONMENT", "development"),
		JWTSecret:   []byte(secret),
		TokenTTL:    ttl,

		StoreDriver:   strings.ToLower(get("STORE_DRIVER", DriverMongo)),
		MongoURI:      get("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: get("MONGODB_DATABASE", "freedomwall"),
		DatabaseURL:   get("DATABASE_URL", ""),
		SQLitePath:    get("SQLITE_PATH", "freedomwall.db"),

		RedisHost:          get("REDIS_HOST", ""),
		RedisPort:          get("REDIS_PORT", "6379"),
		RedisPassword:      getenv("REDIS_PASSWORD"),
		RateLimitPerMinute: util.ParseInt(get("RATE_LIMIT_PER_MINUTE", ""), 120),

		AWSRegion:  get("AWS_REGION", "us-east-1"),
		AWSBucket:  get("AWS_BUCKET", ""),
		CDNBaseURL: get("CDN_BASE_URL", ""),

		CORSOrigins: util.SplitList(get("CORS_ORIGINS", "*")),

		OTelEnabled:      util.ParseBool(get("OTEL_ENABLED", ""), false),
		OTelEndpoint:     get("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		OTelSamplingRate: util.ParseFloat(get("OTEL_SAMPLING_RATE", ""), 1.0),

		LogLevel: get("LOG_LEVEL", "info"),
		LogFile:  get("LOG_FILE", "freedomwall.log"),

		RequiredServices: util.SplitList(strings.ToLower(get("REQUIRED_SERVICES", ""))),
	}

	if cfg.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", cfg.RateLimitPerMinute)
	}

	switch cfg.StoreDriver {
	case DriverMongo, DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want mongo, postgres or sqlite)", cfg.StoreDriver)
	}

	return cfg, nil
}

// IsProduction reports whether ENVIRONMENT is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RedisEnabled reports whether a Redis host was configured
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// S3Enabled reports whether uploaded images should be offloaded to S3
func (c *Config) S3Enabled() bool {
	return c.AWSBucket != ""
}

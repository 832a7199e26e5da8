package credentials

import (
	"errors"
	"os"
	"time"

	"github.com/KlienGumapac/freedomewall/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	json "github.com/json-iterator/go"
)

// ErrMalformedToken is returned when a token cannot be decoded or has no userId claim
var ErrMalformedToken = errors.New("malformed token")

// Credentials is the bearer token saved by "wallctl login"
type Credentials struct {
	AccessToken string    `json:"access_token"`
	UserID      string    `json:"user_id"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}

// FromToken decodes the token claims without verifying the signature.
// The server is the only party holding the secret.
func FromToken(token string) (*Credentials, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrMalformedToken
	}

	userID, _ := claims["userId"].(string)
	if userID == "" {
		return nil, ErrMalformedToken
	}

	creds := &Credentials{AccessToken: token, UserID: userID}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		creds.ExpiresAt = exp.Time
	}
	return creds, nil
}

// Load loads credentials from disk. Missing credentials return nil, nil.
func Load() (*Credentials, error) {
	data, err := os.ReadFile(config.GetCredentialsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Save saves credentials to disk
func Save(creds *Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(config.GetCredentialsPath(), data, 0600)
}

// Delete deletes credentials from disk. Deleting absent credentials is not an error.
func Delete() error {
	err := os.Remove(config.GetCredentialsPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// IsExpired checks if the access token is expired. Tokens without exp never expire.
func (c *Credentials) IsExpired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// IsValid checks if credentials are usable
func (c *Credentials) IsValid() bool {
	return c.AccessToken != "" && !c.IsExpired()
}

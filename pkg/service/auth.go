package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KlienGumapac/freedomewall/pkg/api"
	"github.com/KlienGumapac/freedomewall/pkg/client"
	"github.com/KlienGumapac/freedomewall/pkg/credentials"
	"github.com/KlienGumapac/freedomewall/pkg/logger"
	"github.com/KlienGumapac/freedomewall/pkg/output"
	"github.com/KlienGumapac/freedomewall/pkg/prompter"
)

// ErrNotLoggedIn is returned by commands that need a saved token
var ErrNotLoggedIn = errors.New("not logged in; run \"wallctl login\" first")

// AuthService manages the saved bearer token
type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login saves token, prompting for it when empty, and confirms it against the server
func (s *AuthService) Login(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		var err error
		token, err = prompter.PromptSecret("Token: ")
		if err != nil {
			return err
		}
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	creds, err := credentials.FromToken(token)
	if err != nil {
		return err
	}
	if creds.IsExpired() {
		return fmt.Errorf("token expired at %s", creds.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}

	user, err := api.GetUser(creds.UserID)
	if err != nil {
		return fmt.Errorf("token does not belong to a known user: %w", err)
	}

	if err := credentials.Save(creds); err != nil {
		logger.Error("Failed to save credentials", "error", err)
		return err
	}
	client.SetAuthToken(creds.AccessToken)

	logger.Info("Logged in", "user_id", creds.UserID)
	output.PrintSuccess("Logged in as @%s", user.Username)
	return nil
}

// Logout forgets the saved token
func (s *AuthService) Logout() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Warn("Failed to load credentials", "error", err)
	}
	if err == nil && creds == nil {
		output.PrintWarning("Not logged in")
		return nil
	}

	if err := credentials.Delete(); err != nil {
		return err
	}
	client.ClearAuthToken()
	output.PrintSuccess("Logged out")
	return nil
}

// WhoAmI prints the profile behind the saved token
func (s *AuthService) WhoAmI() error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}

	user, err := api.GetUser(creds.UserID)
	if err != nil {
		return err
	}
	return output.RenderProfile(*user)
}

// ApplySavedToken attaches stored, unexpired credentials to the HTTP client
func ApplySavedToken() {
	creds, err := credentials.Load()
	if err != nil {
		logger.Warn("Failed to load credentials", "error", err)
		return
	}
	if creds == nil {
		return
	}
	if !creds.IsValid() {
		logger.Warn("Saved token expired", "expires_at", creds.ExpiresAt)
		return
	}
	client.SetAuthToken(creds.AccessToken)
}

func requireLogin() (*credentials.Credentials, error) {
	creds, err := credentials.Load()
	if err != nil {
		return nil, err
	}
	if creds == nil || !creds.IsValid() {
		return nil, ErrNotLoggedIn
	}
	return creds, nil
}

package service

import (
	"github.com/KlienGumapac/freedomewall/pkg/api"
	"github.com/KlienGumapac/freedomewall/pkg/output"
)

// FeedService renders the wall
type FeedService struct{}

// NewFeedService creates a new feed service
func NewFeedService() *FeedService {
	return &FeedService{}
}

// ViewFeed prints the newest posts, optionally only those of one user
func (s *FeedService) ViewFeed(userID string, limit int) error {
	posts, err := api.ListPosts(api.ListPostsOptions{UserID: userID, Limit: limit})
	if err != nil {
		return explain(err)
	}
	return output.RenderFeed(posts)
}

// ViewMine prints the logged-in user's own posts
func (s *FeedService) ViewMine(limit int) error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}
	return s.ViewFeed(creds.UserID, limit)
}

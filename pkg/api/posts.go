package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/KlienGumapac/freedomewall/pkg/client"
	"github.com/KlienGumapac/freedomewall/pkg/logger"
)

// ListPostsOptions narrows the feed. Zero values mean no filter.
type ListPostsOptions struct {
	UserID string
	Limit  int
}

// CreatePostRequest is the body of POST /api/posts
type CreatePostRequest struct {
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// ListPosts fetches the wall, newest first
func ListPosts(opts ListPostsOptions) ([]Post, error) {
	logger.Debug("Fetching posts", "user_id", opts.UserID, "limit", opts.Limit)

	req := client.GetClient().R()
	if opts.UserID != "" {
		req.SetQueryParam("userId", opts.UserID)
	}
	if opts.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(opts.Limit))
	}

	var resp PostListResponse
	httpResp, err := req.SetResult(&resp).Get("/api/posts")
	if err := CheckResponse(httpResp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	return resp.Posts, nil
}

// GetPost fetches one post with authors expanded
func GetPost(postID string) (*Post, error) {
	logger.Debug("Fetching post", "post_id", postID)

	var resp PostResponse
	httpResp, err := client.GetClient().
		R().
		SetResult(&resp).
		Get("/api/posts/" + url.PathEscape(postID))
	if err := CheckResponse(httpResp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return &resp.Post, nil
}

// CreatePost publishes a post as the logged-in user
func CreatePost(req CreatePostRequest) (*Post, error) {
	logger.Debug("Creating post", "images", len(req.Images))

	if req.Images == nil {
		req.Images = []string{}
	}

	var resp PostResponse
	httpResp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&resp).
		Post("/api/posts")
	if err := CheckResponse(httpResp, err); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &resp.Post, nil
}

package api

import (
	"fmt"
	"net/url"

	"github.com/KlienGumapac/freedomewall/pkg/client"
	"github.com/KlienGumapac/freedomewall/pkg/logger"
)

// CreateCommentRequest is the body of POST /api/posts/:id/comments
type CreateCommentRequest struct {
	Content string  `json:"content"`
	Parent  *string `json:"parent,omitempty"`
}

// AddComment appends a comment and returns the post's full comment list
func AddComment(postID string, req CreateCommentRequest) (*CommentsResult, error) {
	logger.Debug("Adding comment", "post_id", postID)

	var resp CommentsResult
	httpResp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&resp).
		Post(fmt.Sprintf("/api/posts/%s/comments", url.PathEscape(postID)))
	if err := CheckResponse(httpResp, err); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &resp, nil
}

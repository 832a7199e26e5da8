package api

import (
	"fmt"
	"net/url"

	"github.com/KlienGumapac/freedomewall/pkg/client"
	"github.com/KlienGumapac/freedomewall/pkg/logger"
)

// ReactionRequest is the body of POST /api/posts/:id/reactions.
// An empty Type means like.
type ReactionRequest struct {
	Type string `json:"type,omitempty"`
}

// React sets the logged-in user's reaction on a post, replacing any previous one
func React(postID, reactionType string) (*ReactionResult, error) {
	logger.Debug("Reacting to post", "post_id", postID, "type", reactionType)

	var resp ReactionResult
	httpResp, err := client.GetClient().
		R().
		SetBody(ReactionRequest{Type: reactionType}).
		SetResult(&resp).
		Post(fmt.Sprintf("/api/posts/%s/reactions", url.PathEscape(postID)))
	if err := CheckResponse(httpResp, err); err != nil {
		return nil, fmt.Errorf("failed to add reaction: %w", err)
	}
	return &resp, nil
}

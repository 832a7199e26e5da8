package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/KlienGumapac/freedomewall/internal/repository"
	"github.com/KlienGumapac/freedomewall/internal/util"
	"github.com/KlienGumapac/freedomewall/internal/wall"
	"github.com/gin-gonic/gin"
)

const maxListLimit = 100

// ListPosts returns the feed, newest first
// GET /api/posts?userId=&limit=
func (h *Handlers) ListPosts(c *gin.Context) {
	viewerID, _ := util.ViewerID(c)

	limit := util.ParseInt(c.Query("limit"), 0)
	if limit < 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	filter := repository.PostFilter{
		UserID: c.Query("userId"),
		Limit:  limit,
	}

	posts, err := h.wall.ListPosts(c.Request.Context(), filter, viewerID)
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost creates a post owned by the caller
// POST /api/posts
func (h *Handlers) CreatePost(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Content string          `json:"content"`
		Images  json.RawMessage `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondBadRequest(c, msgInvalidBody)
		return
	}

	post, err := h.wall.CreatePost(c.Request.Context(), userID, wall.CreatePostInput{
		Content: req.Content,
		Images:  parseImages(req.Images),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// GetPost returns one post with its authors expanded
// GET /api/posts/:id
func (h *Handlers) GetPost(c *gin.Context) {
	viewerID, _ := util.ViewerID(c)

	post, err := h.wall.GetPost(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// parseImages accepts a JSON array of strings; anything else counts as no images.
// Non-string and empty entries are dropped.
func parseImages(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var items []interface{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}

	images := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			images = append(images, s)
		}
	}
	return images
}

package handlers

import (
	"net/http"

	"github.com/KlienGumapac/freedomewall/internal/util"
	"github.com/gin-gonic/gin"
)

// AddComment appends a comment by the caller
// POST /api/posts/:id/comments
func (h *Handlers) AddComment(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Content string  `json:"content"`
		Parent  *string `json:"parent,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondBadRequest(c, msgInvalidBody)
		return
	}

	result, err := h.wall.AddComment(c.Request.Context(), c.Param("id"), userID, req.Content, req.Parent)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/KlienGumapac/freedomewall/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ReactToPost toggles or switches the caller's reaction
// POST /api/posts/:id/reactions
func (h *Handlers) ReactToPost(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Type string `json:"type" binding:"omitempty,reaction"`
	}
	// An empty body means a plain like
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			util.RespondBadRequest(c, msgInvalidReaction)
			return
		}
		util.RespondBadRequest(c, msgInvalidBody)
		return
	}

	result, err := h.wall.React(c.Request.Context(), c.Param("id"), userID, req.Type)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

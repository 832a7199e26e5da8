package handlers

import (
	"net/http"
	"strings"

	"github.com/KlienGumapac/freedomewall/internal/util"
	"github.com/KlienGumapac/freedomewall/internal/wall"
	"github.com/gin-gonic/gin"
)

// UpdateAvatar replaces the caller's avatar
// PUT /api/user/avatar
func (h *Handlers) UpdateAvatar(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Avatar string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Avatar) == "" {
		util.RespondBadRequest(c, msgAvatarRequired)
		return
	}

	user, err := h.wall.UpdateAvatar(c.Request.Context(), userID, req.Avatar)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgAvatarUpdated,
		"user":    user,
	})
}

// UpdateCoverPhoto replaces the caller's cover photo
// PUT /api/user/cover-photo
func (h *Handlers) UpdateCoverPhoto(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		CoverPhoto string `json:"coverPhoto"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.CoverPhoto) == "" {
		util.RespondBadRequest(c, msgCoverPhotoRequired)
		return
	}

	user, err := h.wall.UpdateCoverPhoto(c.Request.Context(), userID, req.CoverPhoto)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgCoverPhotoUpdated,
		"user":    user,
	})
}

// UpdateProfile writes the provided profile details; omitted fields are kept
// PUT /api/user/profile
func (h *Handlers) UpdateProfile(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Bio          *string `json:"bio"`
		Education    *string `json:"education"`
		Location     *string `json:"location"`
		Relationship *string `json:"relationship"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondBadRequest(c, msgInvalidBody)
		return
	}

	user, err := h.wall.UpdateProfile(c.Request.Context(), userID, wall.ProfileUpdate{
		Bio:          req.Bio,
		Education:    req.Education,
		Location:     req.Location,
		Relationship: req.Relationship,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgProfileUpdated,
		"user":    user,
	})
}

// GetUser returns a public profile
// GET /api/users/:id
func (h *Handlers) GetUser(c *gin.Context) {
	user, err := h.wall.GetPublicUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

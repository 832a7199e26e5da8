package handlers

import (
	"context"
	"errors"

	apierrors "github.com/KlienGumapac/freedomewall/internal/errors"
	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/internal/repository"
	"github.com/KlienGumapac/freedomewall/internal/storage"
	"github.com/KlienGumapac/freedomewall/internal/util"
	"github.com/KlienGumapac/freedomewall/internal/wall"
	"github.com/gin-gonic/gin"
)

// Client-facing messages
const (
	msgEmptyPost          = "Content or images required"
	msgContentRequired    = "Content is required"
	msgInvalidReaction    = "Invalid reaction type"
	msgInvalidImage       = "Invalid image"
	msgImageRequired      = "Image data is required"
	msgAvatarRequired     = "Avatar data is required"
	msgCoverPhotoRequired = "Cover photo data is required"
	msgInvalidBody        = "Invalid request body"
	msgConflict           = "Post was modified concurrently, please retry"
	msgStore              = "Storage"

	msgAvatarUpdated     = "Avatar updated successfully"
	msgCoverPhotoUpdated = "Cover photo updated successfully"
	msgProfileUpdated    = "Profile updated successfully"
)

// respondServiceError maps wall and repository errors onto API errors.
// Anything unrecognized is logged and answered with a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrPostNotFound):
		util.RespondNotFound(c, "Post")
	case errors.Is(err, repository.ErrUserNotFound):
		util.RespondNotFound(c, "User")
	case errors.Is(err, wall.ErrEmptyPost):
		util.RespondBadRequest(c, msgEmptyPost)
	case errors.Is(err, models.ErrEmptyComment):
		util.RespondBadRequest(c, msgContentRequired)
	case errors.Is(err, models.ErrInvalidReaction):
		util.RespondBadRequest(c, msgInvalidReaction)
	case errors.Is(err, wall.ErrImageRequired):
		util.RespondBadRequest(c, msgImageRequired)
	case errors.Is(err, storage.ErrInvalidImage):
		util.RespondWithAPIError(c, apierrors.BadRequest(msgInvalidImage).WithDetails(err.Error()))
	case errors.Is(err, repository.ErrConflict):
		util.RespondConflict(c, msgConflict)
	case errors.Is(err, context.DeadlineExceeded):
		util.RespondWithAPIError(c, apierrors.ServiceUnavailable(msgStore).WithDetails(err.Error()))
	default:
		util.RespondInternalError(c, err)
	}
}

package middleware

import (
	"errors"

	"github.com/KlienGumapac/freedomewall/internal/auth"
	apierrors "github.com/KlienGumapac/freedomewall/internal/errors"
	"github.com/KlienGumapac/freedomewall/internal/util"
	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests without a valid bearer token and stores the user id in the context
func RequireAuth(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := verifier.VerifyHeader(c.GetHeader("Authorization"))
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				util.RespondUnauthorized(c, apierrors.MsgNoToken)
			} else {
				util.RespondUnauthorized(c, apierrors.MsgInvalidToken)
			}
			return
		}

		c.Set(util.UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth stores the viewer's user id when a valid token is present and never rejects
func OptionalAuth(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			if userID, err := verifier.VerifyHeader(header); err == nil {
				c.Set(util.UserIDKey, userID)
			}
		}
		c.Next()
	}
}

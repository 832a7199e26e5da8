package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	apierrors "github.com/KlienGumapac/freedomewall/internal/errors"
	"github.com/KlienGumapac/freedomewall/internal/logger"
	"github.com/KlienGumapac/freedomewall/internal/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware turns panics into a generic 500 and logs the stack
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Error("Panic recovered",
					zap.String("panic", fmt.Sprint(r)),
					zap.String("path", c.Request.URL.Path),
					logger.WithRequestID(c.GetString(RequestIDKey)),
					zap.ByteString("stack", debug.Stack()),
				)
				metrics.RecordError("panic", c.FullPath())

				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": apierrors.MsgInternalError})
					return
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}

package handlers

import (
	"github.com/KlienGumapac/freedomewall/internal/auth"
	"github.com/KlienGumapac/freedomewall/internal/middleware"
	"github.com/KlienGumapac/freedomewall/internal/wall"
	"github.com/gin-gonic/gin"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	wall   *wall.Service
	checks []HealthCheck
}

// NewHandlers creates a new handlers instance
func NewHandlers(service *wall.Service, checks ...HealthCheck) *Handlers {
	return &Handlers{
		wall:   service,
		checks: checks,
	}
}

// RegisterRoutes mounts the wall endpoints on api (normally the /api group).
// writeLimit, when non-nil, runs in front of every mutating route.
func (h *Handlers) RegisterRoutes(api *gin.RouterGroup, verifier auth.TokenVerifier, writeLimit gin.HandlerFunc) {
	requireAuth := middleware.RequireAuth(verifier)
	optionalAuth := middleware.OptionalAuth(verifier)

	writes := []gin.HandlerFunc{requireAuth}
	if writeLimit != nil {
		writes = append(writes, writeLimit)
	}
	write := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writes...), handler)
	}

	posts := api.Group("/posts")
	{
		posts.GET("", optionalAuth, h.ListPosts)
		posts.POST("", write(h.CreatePost)...)
		posts.GET("/:id", optionalAuth, h.GetPost)
		posts.POST("/:id/reactions", write(h.ReactToPost)...)
		posts.POST("/:id/comments", write(h.AddComment)...)
	}

	user := api.Group("/user")
	{
		user.PUT("/avatar", write(h.UpdateAvatar)...)
		user.PUT("/cover-photo", write(h.UpdateCoverPhoto)...)
		user.PUT("/profile", write(h.UpdateProfile)...)
	}

	api.GET("/users/:id", h.GetUser)
}

package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsMapToStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *APIError
		status int
		msg    string
	}{
		{"not found", NotFound("Post"), http.StatusNotFound, "Post not found"},
		{"unauthorized", Unauthorized(MsgNoToken), http.StatusUnauthorized, "No token provided"},
		{"bad request", BadRequest("Content is required"), http.StatusBadRequest, "Content is required"},
		{"conflict", Conflict("busy"), http.StatusConflict, "busy"},
		{"rate limited", RateLimited(""), http.StatusTooManyRequests, "rate limit exceeded"},
		{"unavailable", ServiceUnavailable("redis"), http.StatusServiceUnavailable, "redis is temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, map[string]string{"error": tt.msg}, tt.err.Body())
		})
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	err := InternalError("dial tcp 10.0.0.1:27017: connection refused")

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, map[string]string{"error": "Internal server error"}, err.Body())
	assert.Contains(t, err.Error(), "connection refused")
}

func TestUnknownCodeDefaultsTo500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, ErrorCode("NOPE").StatusCode())
}

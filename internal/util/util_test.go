package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 42, ParseInt(" 42 ", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 0.5, ParseFloat("0.5", 1))
	assert.Equal(t, 1.0, ParseFloat("", 1))
	assert.True(t, ParseBool("true", false))
	assert.False(t, ParseBool("nope", false))
	assert.Equal(t, []string{"mongo", "redis"}, SplitList("mongo, ,redis"))
	assert.Empty(t, SplitList(""))
}

func TestGetUserIDFromContextMissing(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id, ok := GetUserIDFromContext(c)

	assert.False(t, ok)
	assert.Empty(t, id)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"No token provided"}`, w.Body.String())
}

func TestViewerID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := ViewerID(c)
	assert.False(t, ok)

	c.Set(UserIDKey, "u1")
	id, ok := ViewerID(c)
	assert.True(t, ok)
	assert.Equal(t, "u1", id)
}

func TestRespondInternalErrorHidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondInternalError(c, errors.New("mongo: no reachable servers"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

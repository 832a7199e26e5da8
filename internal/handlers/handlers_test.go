package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/auth"
	"github.com/KlienGumapac/freedomewall/internal/database"
	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/internal/repository"
	"github.com/KlienGumapac/freedomewall/internal/wall"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	testSecret = "test-secret"
	pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}

// HandlersTestSuite drives the full /api router against in-memory sqlite
type HandlersTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	issuer *auth.Issuer
	posts  repository.PostRepository
	users  repository.UserRepository
	alice  *models.User
	bob    *models.User
}

func (suite *HandlersTestSuite) SetupTest() {
	db, err := database.OpenInMemory()
	require.NoError(suite.T(), err)
	suite.db = db

	suite.posts = repository.NewGormPostRepository(db)
	suite.users = repository.NewGormUserRepository(db)
	suite.issuer = auth.NewIssuer([]byte(testSecret))

	h := NewHandlers(wall.NewService(suite.posts, suite.users),
		HealthCheck{Name: "database", Check: func(ctx context.Context) error { return database.Health(ctx, db) }},
	)

	suite.router = gin.New()
	suite.router.GET("/health", h.Health)
	h.RegisterRoutes(suite.router.Group("/api"), auth.NewVerifier([]byte(testSecret)), nil)

	suite.alice = suite.createUser("alice")
	suite.bob = suite.createUser("bob")
}

func (suite *HandlersTestSuite) TearDownTest() {
	_ = database.Close(suite.db)
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) createUser(username string) *models.User {
	user := &models.User{
		FirstName:    strings.ToUpper(username[:1]) + username[1:],
		LastName:     "Tester",
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$secret",
	}
	require.NoError(suite.T(), suite.users.Create(context.Background(), user))
	return user
}

func (suite *HandlersTestSuite) token(userID string) string {
	token, _, err := suite.issuer.Issue(userID, time.Hour)
	require.NoError(suite.T(), err)
	return token
}

func (suite *HandlersTestSuite) request(method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.token(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (suite *HandlersTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body struct {
		Error string `json:"error"`
	}
	suite.decode(w, &body)
	return body.Error
}

func (suite *HandlersTestSuite) createPost(userID, content string) models.PostView {
	w := suite.request(http.MethodPost, "/api/posts", userID, gin.H{"content": content})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Post models.PostView `json:"post"`
	}
	suite.decode(w, &resp)
	return resp.Post
}

type reactionResponse struct {
	PostID      string                      `json:"postId"`
	Reactions   []models.Reaction           `json:"reactions"`
	Likes       int                         `json:"likes"`
	UserReacted bool                        `json:"userReacted"`
	Counts      map[models.ReactionType]int `json:"counts"`
}

// ============================================================================
// Auth
// ============================================================================

func (suite *HandlersTestSuite) TestCommentWithoutToken() {
	post := suite.createPost(suite.alice.ID, "hi")

	w := suite.request(http.MethodPost, "/api/posts/"+post.ID+"/comments", "", gin.H{"content": "yo"})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(suite.T(), "No token provided", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestInvalidAndExpiredTokens() {
	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"content":"x"}`))
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(suite.T(), "Invalid token", suite.errorMessage(w))

	expired, _, err := suite.issuer.Issue(suite.alice.ID, -time.Minute)
	require.NoError(suite.T(), err)
	req = httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"content":"x"}`))
	req.Header.Set("Authorization", "Bearer "+expired)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(suite.T(), "Invalid token", suite.errorMessage(w))

	forged, _, err := auth.NewIssuer([]byte("other-secret")).Issue(suite.alice.ID, time.Hour)
	require.NoError(suite.T(), err)
	req = httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"content":"x"}`))
	req.Header.Set("Authorization", "Bearer "+forged)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	assert.Equal(suite.T(), "Invalid token", suite.errorMessage(w))
}

// ============================================================================
// Posts
// ============================================================================

func (suite *HandlersTestSuite) TestCreatePost() {
	post := suite.createPost(suite.alice.ID, "hello wall")
	assert.NotEmpty(suite.T(), post.ID)
	assert.Equal(suite.T(), suite.alice.ID, post.User)
	assert.Equal(suite.T(), "hello wall", post.Content)
	assert.Empty(suite.T(), post.Images)
	require.NotNil(suite.T(), post.Author)
	assert.Equal(suite.T(), "alice", post.Author.Username)
}

func (suite *HandlersTestSuite) TestCreatePostEmpty() {
	w := suite.request(http.MethodPost, "/api/posts", suite.alice.ID, gin.H{"content": "   ", "images": []string{}})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Content or images required", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestCreatePostImagesOnly() {
	w := suite.request(http.MethodPost, "/api/posts", suite.alice.ID, gin.H{"images": []string{pngDataURI}})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Post models.PostView `json:"post"`
	}
	suite.decode(w, &resp)
	assert.Equal(suite.T(), "", resp.Post.Content)
	assert.Equal(suite.T(), []string{pngDataURI}, resp.Post.Images)
}

func (suite *HandlersTestSuite) TestCreatePostNonArrayImages() {
	w := suite.request(http.MethodPost, "/api/posts", suite.alice.ID, `{"content":"text","images":"oops"}`)
	require.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request(http.MethodPost, "/api/posts", suite.alice.ID, `{"images":"oops"}`)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Content or images required", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestCreatePostInvalidImage() {
	w := suite.request(http.MethodPost, "/api/posts", suite.alice.ID, gin.H{"images": []string{"data:text/plain;base64,aGVsbG8="}})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Invalid image", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestListPosts() {
	first := suite.createPost(suite.alice.ID, "first")
	second := suite.createPost(suite.bob.ID, "second")

	w := suite.request(http.MethodGet, "/api/posts", "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	var resp struct {
		Posts []models.PostView `json:"posts"`
	}
	suite.decode(w, &resp)
	require.Len(suite.T(), resp.Posts, 2)
	assert.Equal(suite.T(), second.ID, resp.Posts[0].ID)
	assert.Equal(suite.T(), first.ID, resp.Posts[1].ID)
	require.NotNil(suite.T(), resp.Posts[0].Author)
	assert.Equal(suite.T(), "bob", resp.Posts[0].Author.Username)

	w = suite.request(http.MethodGet, "/api/posts?userId="+suite.alice.ID, "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	suite.decode(w, &resp)
	require.Len(suite.T(), resp.Posts, 1)
	assert.Equal(suite.T(), first.ID, resp.Posts[0].ID)
}

func (suite *HandlersTestSuite) TestListPostsEmpty() {
	w := suite.request(http.MethodGet, "/api/posts", "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"posts":[]}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestGetPostNotFound() {
	w := suite.request(http.MethodGet, "/api/posts/nonexistent-id", "", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Post not found", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestGetPostViewerSummary() {
	post := suite.createPost(suite.alice.ID, "react to me")
	w := suite.request(http.MethodPost, "/api/posts/"+post.ID+"/reactions", suite.bob.ID, gin.H{"type": "haha"})
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var resp struct {
		Post models.PostView `json:"post"`
	}
	w = suite.request(http.MethodGet, "/api/posts/"+post.ID, suite.bob.ID, nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	suite.decode(w, &resp)
	assert.True(suite.T(), resp.Post.Summary.UserReacted)
	assert.Equal(suite.T(), models.ReactionHaha, resp.Post.Summary.UserReaction)

	w = suite.request(http.MethodGet, "/api/posts/"+post.ID, "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	suite.decode(w, &resp)
	assert.False(suite.T(), resp.Post.Summary.UserReacted)
	assert.Equal(suite.T(), 1, resp.Post.Summary.Likes)
}

// ============================================================================
// Reactions
// ============================================================================

func (suite *HandlersTestSuite) TestReactionScenario() {
	post := suite.createPost(suite.bob.ID, "p1")
	path := "/api/posts/" + post.ID + "/reactions"

	var resp reactionResponse
	w := suite.request(http.MethodPost, path, suite.alice.ID, gin.H{"type": "like"})
	require.Equal(suite.T(), http.StatusOK, w.Code)
	suite.decode(w, &resp)
	assert.Equal(suite.T(), post.ID, resp.PostID)
	assert.Equal(suite.T(), 1, resp.Likes)
	assert.True(suite.T(), resp.UserReacted)

	w = suite.request(http.MethodPost, path, suite.alice.ID, gin.H{"type": "like"})
	require.Equal(suite.T(), http.StatusOK, w.Code)
	resp = reactionResponse{}
	suite.decode(w, &resp)
	assert.Equal(suite.T(), 0, resp.Likes)
	assert.False(suite.T(), resp.UserReacted)
	assert.Empty(suite.T(), resp.Reactions)

	w = suite.request(http.MethodPost, path, suite.alice.ID, gin.H{"type": "love"})
	require.Equal(suite.T(), http.StatusOK, w.Code)
	resp = reactionResponse{}
	suite.decode(w, &resp)
	assert.Equal(suite.T(), 1, resp.Likes)
	assert.True(suite.T(), resp.UserReacted)
	assert.Equal(suite.T(), []models.Reaction{{User: suite.alice.ID, Type: models.ReactionLove}}, resp.Reactions)
	assert.Equal(suite.T(), 1, resp.Counts[models.ReactionLove])
}

func (suite *HandlersTestSuite) TestReactionEmptyBodyDefaultsToLike() {
	post := suite.createPost(suite.bob.ID, "p1")

	w := suite.request(http.MethodPost, "/api/posts/"+post.ID+"/reactions", suite.alice.ID, nil)
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	var resp reactionResponse
	suite.decode(w, &resp)
	require.Len(suite.T(), resp.Reactions, 1)
	assert.Equal(suite.T(), models.ReactionLike, resp.Reactions[0].Type)
}

func (suite *HandlersTestSuite) TestReactionTypeIsCaseInsensitive() {
	post := suite.createPost(suite.bob.ID, "p1")

	w := suite.request(http.MethodPost, "/api/posts/"+post.ID+"/reactions", suite.alice.ID, gin.H{"type": " LOVE "})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	var resp reactionResponse
	suite.decode(w, &resp)
	assert.Equal(suite.T(), []models.Reaction{{User: suite.alice.ID, Type: models.ReactionLove}}, resp.Reactions)
}

func (suite *HandlersTestSuite) TestReactionInvalidType() {
	post := suite.createPost(suite.bob.ID, "p1")

	w := suite.request(http.MethodPost, "/api/posts/"+post.ID+"/reactions", suite.alice.ID, gin.H{"type": "fire"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Invalid reaction type", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestReactionPostNotFound() {
	w := suite.request(http.MethodPost, "/api/posts/missing/reactions", suite.alice.ID, gin.H{"type": "wow"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Post not found", suite.errorMessage(w))
}

// ============================================================================
// Comments
// ============================================================================

func (suite *HandlersTestSuite) TestAddComments() {
	post := suite.createPost(suite.alice.ID, "talk to me")
	path := "/api/posts/" + post.ID + "/comments"

	var resp struct {
		PostID   string               `json:"postId"`
		Comments []models.CommentView `json:"comments"`
	}

	w := suite.request(http.MethodPost, path, suite.bob.ID, gin.H{"content": "  first  "})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())
	suite.decode(w, &resp)
	assert.Equal(suite.T(), post.ID, resp.PostID)
	require.Len(suite.T(), resp.Comments, 1)
	assert.Equal(suite.T(), "first", resp.Comments[0].Content)
	assert.Nil(suite.T(), resp.Comments[0].Parent)
	require.NotNil(suite.T(), resp.Comments[0].Author)
	assert.Equal(suite.T(), "bob", resp.Comments[0].Author.Username)

	w = suite.request(http.MethodPost, path, suite.alice.ID, gin.H{"content": "second", "parent": resp.Comments[0].ID})
	require.Equal(suite.T(), http.StatusOK, w.Code)
	suite.decode(w, &resp)
	require.Len(suite.T(), resp.Comments, 2)
	assert.Equal(suite.T(), "second", resp.Comments[1].Content)
	require.NotNil(suite.T(), resp.Comments[1].Parent)
	assert.Equal(suite.T(), resp.Comments[0].ID, *resp.Comments[1].Parent)

	var full struct {
		Post models.PostView `json:"post"`
	}
	w = suite.request(http.MethodGet, "/api/posts/"+post.ID, "", nil)
	suite.decode(w, &full)
	require.Len(suite.T(), full.Post.Comments, 2)
	assert.Equal(suite.T(), "alice", full.Post.Comments[1].Author.Username)
}

func (suite *HandlersTestSuite) TestAddCommentEmpty() {
	post := suite.createPost(suite.alice.ID, "x")

	w := suite.request(http.MethodPost, "/api/posts/"+post.ID+"/comments", suite.bob.ID, gin.H{"content": "   "})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Content is required", suite.errorMessage(w))

	w = suite.request(http.MethodPost, "/api/posts/"+post.ID+"/comments", suite.bob.ID, gin.H{})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Content is required", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestAddCommentPostNotFound() {
	w := suite.request(http.MethodPost, "/api/posts/missing/comments", suite.bob.ID, gin.H{"content": "hi"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Post not found", suite.errorMessage(w))
}

// ============================================================================
// Users
// ============================================================================

func (suite *HandlersTestSuite) TestUpdateAvatar() {
	w := suite.request(http.MethodPut, "/api/user/avatar", suite.alice.ID, gin.H{"avatar": pngDataURI})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	suite.decode(w, &resp)
	assert.Equal(suite.T(), "Avatar updated successfully", resp["message"])
	user := resp["user"].(map[string]interface{})
	assert.Equal(suite.T(), pngDataURI, user["avatar"])
	assert.NotContains(suite.T(), user, "password")
	assert.NotContains(suite.T(), user, "passwordHash")
	assert.NotContains(suite.T(), w.Body.String(), "$2a$10$secret")
}

func (suite *HandlersTestSuite) TestUpdateAvatarRequired() {
	w := suite.request(http.MethodPut, "/api/user/avatar", suite.alice.ID, gin.H{})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Avatar data is required", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestUpdateAvatarUnknownUser() {
	w := suite.request(http.MethodPut, "/api/user/avatar", "ghost", gin.H{"avatar": pngDataURI})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "User not found", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestUpdateCoverPhoto() {
	w := suite.request(http.MethodPut, "/api/user/cover-photo", suite.alice.ID, gin.H{"coverPhoto": "https://cdn.example.com/c.jpg"})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	suite.decode(w, &resp)
	assert.Equal(suite.T(), "Cover photo updated successfully", resp["message"])

	w = suite.request(http.MethodPut, "/api/user/cover-photo", suite.alice.ID, gin.H{"coverPhoto": ""})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "Cover photo data is required", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestUpdateProfilePartial() {
	w := suite.request(http.MethodPut, "/api/user/profile", suite.alice.ID, gin.H{"bio": "hi", "location": "Manila"})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	w = suite.request(http.MethodPut, "/api/user/profile", suite.alice.ID, gin.H{"education": "UP"})
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	suite.decode(w, &resp)
	assert.Equal(suite.T(), "Profile updated successfully", resp.Message)

	stored, err := suite.users.FindByID(context.Background(), suite.alice.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "hi", stored.Bio)
	assert.Equal(suite.T(), "Manila", stored.Location)
	assert.Equal(suite.T(), "UP", stored.Education)
}

func (suite *HandlersTestSuite) TestGetUser() {
	w := suite.request(http.MethodGet, "/api/users/"+suite.bob.ID, "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var resp map[string]map[string]interface{}
	suite.decode(w, &resp)
	assert.Equal(suite.T(), "bob", resp["user"]["username"])
	assert.NotContains(suite.T(), resp["user"], "email")
	assert.NotContains(suite.T(), resp["user"], "password")

	w = suite.request(http.MethodGet, "/api/users/ghost", "", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "User not found", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"database":"healthy"`)
}

// ============================================================================
// Standalone
// ============================================================================

func TestHealthDegraded(t *testing.T) {
	h := NewHandlers(nil, HealthCheck{Name: "redis", Check: func(ctx context.Context) error {
		return errors.New("connection refused")
	}})
	router := gin.New()
	router.GET("/health", h.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"unhealthy"`)
}

func TestServiceErrorsUseGenericInternalMessage(t *testing.T) {
	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		respondServiceError(c, errors.New("pq: connection reset by peer"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestServiceErrorConflict(t *testing.T) {
	router := gin.New()
	router.GET("/conflict", func(c *gin.Context) {
		respondServiceError(c, repository.ErrConflict)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/conflict", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestServiceErrorStoreTimeout(t *testing.T) {
	posts := repository.NewMockPostRepository()
	posts.DefaultError = fmt.Errorf("find post: %w", context.DeadlineExceeded)
	h := NewHandlers(wall.NewService(posts, repository.NewMockUserRepository()))
	router := gin.New()
	h.RegisterRoutes(router.Group("/api"), auth.NewVerifier([]byte(testSecret)), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts/p1", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"Storage is temporarily unavailable"}`, w.Body.String())
}

func TestParseImages(t *testing.T) {
	assert.Equal(t, []string{}, parseImages(nil))
	assert.Equal(t, []string{}, parseImages(json.RawMessage(`"x"`)))
	assert.Equal(t, []string{}, parseImages(json.RawMessage(`null`)))
	assert.Equal(t, []string{"a", "b"}, parseImages(json.RawMessage(`["a", 3, "", "b"]`)))
}

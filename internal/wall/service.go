// Package wall implements the Freedom Wall operations on top of the post and user repositories.
package wall

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/cache"
	"github.com/KlienGumapac/freedomewall/internal/logger"
	"github.com/KlienGumapac/freedomewall/internal/metrics"
	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/internal/repository"
	"github.com/KlienGumapac/freedomewall/internal/storage"
	"github.com/KlienGumapac/freedomewall/internal/telemetry"
	"go.uber.org/zap"
)

var (
	// ErrEmptyPost is returned when a post has neither content nor images
	ErrEmptyPost = errors.New("content or images required")
	// ErrImageRequired is returned when an avatar or cover photo update carries no image
	ErrImageRequired = errors.New("image data is required")
)

// Profile update kinds, used in metrics and spans
const (
	ProfileKindAvatar     = "avatar"
	ProfileKindCoverPhoto = "cover_photo"
	ProfileKindDetails    = "profile"
)

// Service handles posts, reactions, comments and profile edits
type Service struct {
	posts  repository.PostRepository
	users  repository.UserRepository
	images storage.ImageStore
	cache  cache.ProfileCache
	events *telemetry.WallEvents
	now    func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithImageStore sets where image payloads are kept (default: inline in the document)
func WithImageStore(store storage.ImageStore) Option {
	return func(s *Service) {
		if store != nil {
			s.images = store
		}
	}
}

// WithProfileCache sets the public profile cache (default: no caching)
func WithProfileCache(c cache.ProfileCache) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithClock overrides time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a wall service
func NewService(posts repository.PostRepository, users repository.UserRepository, opts ...Option) *Service {
	s := &Service{
		posts:  posts,
		users:  users,
		images: storage.InlineImageStore{},
		cache:  cache.NoopProfileCache{},
		events: telemetry.NewWallEvents(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePostInput is the body of POST /posts
type CreatePostInput struct {
	Content string
	Images  []string
}

// ReactionResult is returned after a reaction toggle
type ReactionResult struct {
	PostID      string                      `json:"postId"`
	Reactions   []models.Reaction           `json:"reactions"`
	Likes       int                         `json:"likes"`
	UserReacted bool                        `json:"userReacted"`
	Counts      map[models.ReactionType]int `json:"counts"`
}

// CommentsResult is returned after a comment append
type CommentsResult struct {
	PostID   string               `json:"postId"`
	Comments []models.CommentView `json:"comments"`
}

// ProfileUpdate holds the editable profile details; nil fields are left untouched
type ProfileUpdate struct {
	Bio          *string
	Education    *string
	Location     *string
	Relationship *string
}

// CreatePost stores a new post owned by userID
func (s *Service) CreatePost(ctx context.Context, userID string, input CreatePostInput) (models.PostView, error) {
	ctx, span := s.events.TraceCreatePost(ctx, userID, len(input.Images))
	view, err := s.createPost(ctx, userID, input)
	telemetry.End(span, err)
	return view, err
}

func (s *Service) createPost(ctx context.Context, userID string, input CreatePostInput) (models.PostView, error) {
	// Content is stored as sent; only the emptiness check ignores whitespace
	if strings.TrimSpace(input.Content) == "" && len(input.Images) == 0 {
		return models.PostView{}, ErrEmptyPost
	}

	images := make([]string, 0, len(input.Images))
	for i, image := range input.Images {
		ref, err := s.images.Store(ctx, userID, storage.KindPostImage, image)
		if err != nil {
			return models.PostView{}, fmt.Errorf("image %d: %w", i, err)
		}
		images = append(images, ref)
	}

	post := &models.Post{
		UserID:  userID,
		Content: input.Content,
		Images:  images,
	}
	post.PrepareForCreate(s.now())

	start := time.Now()
	err := s.posts.Create(ctx, post)
	metrics.ObserveStoreOperation("post_create", start, err)
	if err != nil {
		return models.PostView{}, fmt.Errorf("failed to create post: %w", err)
	}
	metrics.Get().PostsCreatedTotal.Inc()

	logger.Log.Info("Post created",
		logger.WithPostID(post.ID),
		logger.WithUserID(userID),
		zap.Int("images", len(images)),
	)

	return models.NewPostView(post, s.authors(ctx, post), userID), nil
}

// GetPost returns a post with its author and comment authors expanded
func (s *Service) GetPost(ctx context.Context, postID, viewerID string) (models.PostView, error) {
	start := time.Now()
	post, err := s.posts.FindByID(ctx, postID)
	metrics.ObserveStoreOperation("post_find", start, err)
	if err != nil {
		return models.PostView{}, err
	}
	return models.NewPostView(post, s.authors(ctx, post), viewerID), nil
}

// ListPosts returns posts newest first, optionally only those owned by filter.UserID
func (s *Service) ListPosts(ctx context.Context, filter repository.PostFilter, viewerID string) ([]models.PostView, error) {
	ctx, span := s.events.TraceListPosts(ctx, filter.UserID)

	start := time.Now()
	posts, err := s.posts.List(ctx, filter)
	metrics.ObserveStoreOperation("post_list", start, err)
	if err != nil {
		telemetry.End(span, err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	authors := s.authors(ctx, posts...)
	views := make([]models.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, models.NewPostView(p, authors, viewerID))
	}
	telemetry.End(span, nil)
	return views, nil
}

// React applies the toggle/replace rule for userID on the post.
// An empty reactionType means like.
func (s *Service) React(ctx context.Context, postID, userID, reactionType string) (*ReactionResult, error) {
	ctx, span := s.events.TraceReact(ctx, postID, userID, reactionType)
	result, err := s.react(ctx, postID, userID, reactionType)
	telemetry.End(span, err)
	return result, err
}

func (s *Service) react(ctx context.Context, postID, userID, reactionType string) (*ReactionResult, error) {
	t, err := models.ParseReactionType(reactionType)
	if err != nil {
		return nil, err
	}

	var outcome models.ReactionOutcome
	start := time.Now()
	post, err := s.posts.Mutate(ctx, postID, func(p *models.Post) error {
		p.Reactions, outcome = models.ApplyReaction(p.Reactions, userID, t)
		p.UpdatedAt = s.now()
		return nil
	})
	metrics.ObserveStoreOperation("post_react", start, err)
	if err != nil {
		s.recordConflict("react", err)
		return nil, err
	}

	metrics.Get().ReactionsTotal.WithLabelValues(string(t), string(outcome)).Inc()
	logger.Log.Debug("Reaction applied",
		logger.WithPostID(postID),
		logger.WithUserID(userID),
		zap.String("type", string(t)),
		zap.String("outcome", string(outcome)),
	)

	summary := models.Summarize(post.Reactions, userID)
	return &ReactionResult{
		PostID:      post.ID,
		Reactions:   post.Reactions,
		Likes:       summary.Likes,
		UserReacted: summary.UserReacted,
		Counts:      summary.Counts,
	}, nil
}

// AddComment appends a comment by userID and returns the full comment list
func (s *Service) AddComment(ctx context.Context, postID, userID, content string, parent *string) (*CommentsResult, error) {
	ctx, span := s.events.TraceComment(ctx, postID, userID)
	result, err := s.addComment(ctx, postID, userID, content, parent)
	telemetry.End(span, err)
	return result, err
}

func (s *Service) addComment(ctx context.Context, postID, userID, content string, parent *string) (*CommentsResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.ErrEmptyComment
	}

	start := time.Now()
	post, err := s.posts.Mutate(ctx, postID, func(p *models.Post) error {
		comments, _, err := models.AppendComment(p.Comments, userID, content, parent, s.now())
		if err != nil {
			return err
		}
		p.Comments = comments
		p.UpdatedAt = s.now()
		return nil
	})
	metrics.ObserveStoreOperation("post_comment", start, err)
	if err != nil {
		s.recordConflict("comment", err)
		return nil, err
	}
	metrics.Get().CommentsTotal.Inc()

	return &CommentsResult{
		PostID:   post.ID,
		Comments: models.NewCommentViews(post.Comments, s.authors(ctx, post)),
	}, nil
}

// UpdateAvatar replaces the user's avatar
func (s *Service) UpdateAvatar(ctx context.Context, userID, avatar string) (*models.User, error) {
	return s.updateImage(ctx, userID, ProfileKindAvatar, storage.KindAvatar, avatar)
}

// UpdateCoverPhoto replaces the user's cover photo
func (s *Service) UpdateCoverPhoto(ctx context.Context, userID, coverPhoto string) (*models.User, error) {
	return s.updateImage(ctx, userID, ProfileKindCoverPhoto, storage.KindCoverPhoto, coverPhoto)
}

func (s *Service) updateImage(ctx context.Context, userID, kind, storageKind, image string) (*models.User, error) {
	ctx, span := s.events.TraceProfileUpdate(ctx, userID, kind)

	user, err := func() (*models.User, error) {
		if strings.TrimSpace(image) == "" {
			return nil, ErrImageRequired
		}
		ref, err := s.images.Store(ctx, userID, storageKind, image)
		if err != nil {
			return nil, err
		}

		var update models.UserUpdate
		if kind == ProfileKindAvatar {
			update.Avatar = &ref
		} else {
			update.CoverPhoto = &ref
		}
		return s.updateUser(ctx, userID, kind, update)
	}()

	telemetry.End(span, err)
	return user, err
}

// UpdateProfile writes the provided profile details. An empty update returns the user unchanged.
func (s *Service) UpdateProfile(ctx context.Context, userID string, input ProfileUpdate) (*models.User, error) {
	ctx, span := s.events.TraceProfileUpdate(ctx, userID, ProfileKindDetails)

	update := models.UserUpdate{
		Bio:          input.Bio,
		Education:    input.Education,
		Location:     input.Location,
		Relationship: input.Relationship,
	}

	var (
		user *models.User
		err  error
	)
	if update.IsEmpty() {
		user, err = s.users.FindByID(ctx, userID)
	} else {
		user, err = s.updateUser(ctx, userID, ProfileKindDetails, update)
	}

	telemetry.End(span, err)
	return user, err
}

func (s *Service) updateUser(ctx context.Context, userID, kind string, update models.UserUpdate) (*models.User, error) {
	start := time.Now()
	user, err := s.users.UpdateFields(ctx, userID, update)
	metrics.ObserveStoreOperation("user_update", start, err)
	if err != nil {
		return nil, err
	}
	metrics.Get().ProfileUpdatesTotal.WithLabelValues(kind).Inc()

	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.WarnWithFields("Failed to invalidate profile cache", err)
	}

	logger.Log.Info("Profile updated", logger.WithUserID(userID), zap.String("kind", kind))
	return user, nil
}

// GetPublicUser returns the public profile of userID
func (s *Service) GetPublicUser(ctx context.Context, userID string) (*models.PublicUser, error) {
	cached, err := s.cache.Get(ctx, userID)
	if err == nil {
		metrics.RecordCacheHit("profile")
		return cached, nil
	}
	if !cache.IsMiss(err) {
		logger.WarnWithFields("Profile cache read failed", err)
	}
	metrics.RecordCacheMiss("profile")

	start := time.Now()
	user, err := s.users.FindByID(ctx, userID)
	metrics.ObserveStoreOperation("user_find", start, err)
	if err != nil {
		return nil, err
	}

	public := user.Public()
	if err := s.cache.Set(ctx, public); err != nil {
		logger.WarnWithFields("Failed to cache profile", err)
	}
	return &public, nil
}

// authors loads display fields for everyone referenced by posts.
// A failed lookup degrades to posts without authors.
func (s *Service) authors(ctx context.Context, posts ...*models.Post) map[string]models.UserSummary {
	ids := models.ReferencedUserIDs(posts...)
	if len(ids) == 0 {
		return nil
	}

	start := time.Now()
	authors, err := s.users.FindSummaries(ctx, ids)
	metrics.ObserveStoreOperation("user_summaries", start, err)
	if err != nil {
		logger.Log.Warn("Failed to load post authors", zap.Error(err), zap.Int("users", len(ids)))
		return nil
	}
	return authors
}

func (s *Service) recordConflict(operation string, err error) {
	if errors.Is(err, repository.ErrConflict) {
		metrics.Get().MutationConflictsTotal.WithLabelValues(operation).Inc()
		logger.Log.Warn("Mutation kept conflicting", zap.String("operation", operation))
	}
}

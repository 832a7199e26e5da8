package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/database"
	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GormRepositoryTestSuite runs the GORM repositories against in-memory sqlite
type GormRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	posts repository.PostRepository
	users repository.UserRepository
	ctx   context.Context
}

func (s *GormRepositoryTestSuite) SetupTest() {
	db, err := database.OpenInMemory()
	require.NoError(s.T(), err)

	s.db = db
	s.posts = repository.NewGormPostRepository(db)
	s.users = repository.NewGormUserRepository(db)
	s.ctx = context.Background()
}

func (s *GormRepositoryTestSuite) TearDownTest() {
	_ = database.Close(s.db)
}

func (s *GormRepositoryTestSuite) createUser(username string) *models.User {
	user := &models.User{
		FirstName: "Test",
		LastName:  username,
		Username:  username,
		Email:     username + "@example.com",
		Avatar:    "https://cdn.example.com/" + username + ".png",
	}
	require.NoError(s.T(), s.users.Create(s.ctx, user))
	return user
}

func (s *GormRepositoryTestSuite) createPost(userID, content string, createdAt time.Time) *models.Post {
	post := &models.Post{UserID: userID, Content: content, CreatedAt: createdAt}
	require.NoError(s.T(), s.posts.Create(s.ctx, post))
	return post
}

func (s *GormRepositoryTestSuite) TestCreateAndFindPost() {
	post := &models.Post{UserID: "u1", Content: "hello", Images: []string{"data:image/png;base64,AAAA"}}
	require.NoError(s.T(), s.posts.Create(s.ctx, post))
	assert.NotEmpty(s.T(), post.ID)

	found, err := s.posts.FindByID(s.ctx, post.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "hello", found.Content)
	assert.Equal(s.T(), []string{"data:image/png;base64,AAAA"}, []string(found.Images))
	assert.NotNil(s.T(), found.Reactions)
	assert.NotNil(s.T(), found.Comments)
	assert.Equal(s.T(), int64(0), found.Revision)
}

func (s *GormRepositoryTestSuite) TestFindMissingPost() {
	_, err := s.posts.FindByID(s.ctx, "nonexistent-id")
	assert.ErrorIs(s.T(), err, repository.ErrPostNotFound)
}

func (s *GormRepositoryTestSuite) TestListNewestFirstAndFiltered() {
	base := time.Now().UTC().Add(-time.Hour)
	s.createPost("u1", "oldest", base)
	s.createPost("u2", "middle", base.Add(10*time.Minute))
	s.createPost("u1", "newest", base.Add(20*time.Minute))

	all, err := s.posts.List(s.ctx, repository.PostFilter{})
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 3)
	assert.Equal(s.T(), "newest", all[0].Content)
	assert.Equal(s.T(), "oldest", all[2].Content)

	mine, err := s.posts.List(s.ctx, repository.PostFilter{UserID: "u1"})
	require.NoError(s.T(), err)
	require.Len(s.T(), mine, 2)
	assert.Equal(s.T(), "newest", mine[0].Content)

	limited, err := s.posts.List(s.ctx, repository.PostFilter{Limit: 1})
	require.NoError(s.T(), err)
	assert.Len(s.T(), limited, 1)
}

func (s *GormRepositoryTestSuite) TestMutateBumpsRevision() {
	post := s.createPost("u1", "hello", time.Time{})

	updated, err := s.posts.Mutate(s.ctx, post.ID, func(p *models.Post) error {
		p.Reactions, _ = models.ApplyReaction(p.Reactions, "u2", models.ReactionLove)
		return nil
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), updated.Revision)

	found, err := s.posts.FindByID(s.ctx, post.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), found.Revision)
	assert.Equal(s.T(), []models.Reaction{{User: "u2", Type: models.ReactionLove}}, []models.Reaction(found.Reactions))
}

func (s *GormRepositoryTestSuite) TestMutateAbortsOnCallbackError() {
	post := s.createPost("u1", "hello", time.Time{})
	boom := errors.New("boom")

	_, err := s.posts.Mutate(s.ctx, post.ID, func(p *models.Post) error { return boom })
	assert.ErrorIs(s.T(), err, boom)

	found, err := s.posts.FindByID(s.ctx, post.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), found.Revision)
}

func (s *GormRepositoryTestSuite) TestMutateMissingPost() {
	_, err := s.posts.Mutate(s.ctx, "nonexistent-id", func(p *models.Post) error { return nil })
	assert.ErrorIs(s.T(), err, repository.ErrPostNotFound)
}

func (s *GormRepositoryTestSuite) TestMutateRetriesAfterLostRace() {
	post := s.createPost("u1", "hello", time.Time{})
	calls := 0

	_, err := s.posts.Mutate(s.ctx, post.ID, func(p *models.Post) error {
		calls++
		if calls == 1 {
			// a concurrent writer lands between our read and our write
			require.NoError(s.T(), s.db.Model(&models.Post{}).Where("id = ?", post.ID).
				Update("revision", gorm.Expr("revision + 1")).Error)
		}
		p.Comments, _, _ = models.AppendComment(p.Comments, "u2", "hi", nil, time.Now())
		return nil
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 2, calls)

	found, err := s.posts.FindByID(s.ctx, post.ID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), found.Comments, 1)
	assert.Equal(s.T(), int64(2), found.Revision)
}

func (s *GormRepositoryTestSuite) TestMutateGivesUpWithConflict() {
	post := s.createPost("u1", "hello", time.Time{})
	calls := 0

	_, err := s.posts.Mutate(s.ctx, post.ID, func(p *models.Post) error {
		calls++
		return s.db.Model(&models.Post{}).Where("id = ?", post.ID).
			Update("revision", gorm.Expr("revision + 1")).Error
	})
	assert.ErrorIs(s.T(), err, repository.ErrConflict)
	assert.Equal(s.T(), repository.MaxMutateAttempts, calls)
}

func (s *GormRepositoryTestSuite) TestConcurrentCommentsAreNotLost() {
	post := s.createPost("u1", "hello", time.Time{})

	const writers = 4
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.posts.Mutate(s.ctx, post.ID, func(p *models.Post) error {
				var err error
				p.Comments, _, err = models.AppendComment(p.Comments, "u2", "hi", nil, time.Now())
				return err
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(s.T(), err, repository.ErrConflict)
		}
	}

	found, err := s.posts.FindByID(s.ctx, post.ID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), found.Comments, succeeded)
	assert.Equal(s.T(), int64(succeeded), found.Revision)
}

func (s *GormRepositoryTestSuite) TestUserLookups() {
	alice := s.createUser("alice")
	bob := s.createUser("bob")

	found, err := s.users.FindByID(s.ctx, alice.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "alice", found.Username)
	assert.False(s.T(), found.JoinDate.IsZero())

	byName, err := s.users.FindByUsername(s.ctx, "BOB")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), bob.ID, byName.ID)

	_, err = s.users.FindByID(s.ctx, "missing")
	assert.ErrorIs(s.T(), err, repository.ErrUserNotFound)

	count, err := s.users.Count(s.ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), count)
}

func (s *GormRepositoryTestSuite) TestDuplicateUsername() {
	s.createUser("alice")
	err := s.users.Create(s.ctx, &models.User{Username: "alice", Email: "other@example.com"})
	assert.ErrorIs(s.T(), err, repository.ErrDuplicateUser)
}

func (s *GormRepositoryTestSuite) TestFindSummaries() {
	alice := s.createUser("alice")
	bob := s.createUser("bob")

	summaries, err := s.users.FindSummaries(s.ctx, []string{alice.ID, bob.ID, "ghost"})
	require.NoError(s.T(), err)
	assert.Len(s.T(), summaries, 2)
	assert.Equal(s.T(), "alice", summaries[alice.ID].Username)
	assert.Equal(s.T(), bob.Avatar, summaries[bob.ID].Avatar)

	empty, err := s.users.FindSummaries(s.ctx, nil)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), empty)
}

func (s *GormRepositoryTestSuite) TestUpdateFieldsIsPartial() {
	alice := s.createUser("alice")
	_, err := s.users.UpdateFields(s.ctx, alice.ID, models.UserUpdate{
		Bio:      strPtr("hello"),
		Location: strPtr("Cebu"),
	})
	require.NoError(s.T(), err)

	cover := "data:image/jpeg;base64,/9j/"
	updated, err := s.users.UpdateFields(s.ctx, alice.ID, models.UserUpdate{CoverPhoto: &cover})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), cover, updated.CoverPhoto)
	assert.Equal(s.T(), "hello", updated.Bio)
	assert.Equal(s.T(), "Cebu", updated.Location)
	assert.Equal(s.T(), alice.Avatar, updated.Avatar)
}

func (s *GormRepositoryTestSuite) TestUpdateFieldsMissingUser() {
	_, err := s.users.UpdateFields(s.ctx, "missing", models.UserUpdate{Bio: strPtr("x")})
	assert.ErrorIs(s.T(), err, repository.ErrUserNotFound)

	_, err = s.users.UpdateFields(s.ctx, "missing", models.UserUpdate{})
	assert.ErrorIs(s.T(), err, repository.ErrUserNotFound)
}

func strPtr(s string) *string { return &s }

func TestGormRepositorySuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}

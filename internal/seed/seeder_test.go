package seed

import (
	"context"
	"testing"

	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/internal/repository"
	"github.com/KlienGumapac/freedomewall/internal/wall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestSeeder() (*Seeder, *repository.MockPostRepository, *repository.MockUserRepository) {
	posts := repository.NewMockPostRepository()
	users := repository.NewMockUserRepository()
	s := NewSeeder(users, wall.NewService(posts, users), 42)
	// bcrypt at default cost is too slow for unit tests
	s.hashFn = func(password string) (string, error) { return "hashed:" + password, nil }
	return s, posts, users
}

func TestSeedDev(t *testing.T) {
	s, posts, users := newTestSeeder()
	ctx := context.Background()

	require.NoError(t, s.SeedDev(ctx, Counts{Users: 5, Posts: 10, Reactions: 40, Comments: 15}))

	userCount, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, userCount)

	postCount, err := posts.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 10, postCount)

	all, err := posts.List(ctx, repository.PostFilter{})
	require.NoError(t, err)

	comments := 0
	for _, p := range all {
		comments += len(p.Comments)
		seen := map[string]bool{}
		for _, r := range p.Reactions {
			assert.False(t, seen[r.User], "duplicate reaction on %s", p.ID)
			seen[r.User] = true
			assert.True(t, r.Type.IsValid())
		}
	}
	assert.Equal(t, 15, comments)
}

func TestSeedTestIsRepeatable(t *testing.T) {
	s, _, users := newTestSeeder()
	ctx := context.Background()

	first, err := s.SeedTest(ctx)
	require.NoError(t, err)
	require.Len(t, first, 5)
	assert.Equal(t, "alice", first[0].Username)
	assert.Equal(t, "hashed:"+DefaultPassword, first[0].PasswordHash)

	second, err := s.SeedTest(ctx)
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
}

func TestSeedDevNoUsers(t *testing.T) {
	s, posts, _ := newTestSeeder()
	require.NoError(t, s.SeedDev(context.Background(), Counts{Posts: 3}))
	count, err := posts.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHashPassword(t *testing.T) {
	hashed, err := hashPassword("secret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret")))
}

func TestAvatarURL(t *testing.T) {
	assert.Contains(t, avatarURL("ana"), "seed=ana")
}

func TestVerifySeededData(t *testing.T) {
	s, _, _ := newTestSeeder()
	ctx := context.Background()
	require.NoError(t, s.SeedDev(ctx, Counts{Users: 4, Posts: 6, Reactions: 12, Comments: 5}))

	report, err := s.Verify(ctx, 2)
	require.NoError(t, err)
	assert.True(t, report.OK(), report.Problems)
	assert.EqualValues(t, 4, report.Users)
	assert.Equal(t, 6, report.Posts)
	assert.Equal(t, 5, report.Comments)
	assert.Len(t, report.Samples, 2)

	byType := 0
	for _, n := range report.ReactionsByType {
		byType += n
	}
	assert.Equal(t, report.Reactions, byType)
}

func TestVerifyFindsProblems(t *testing.T) {
	s, posts, _ := newTestSeeder()
	ctx := context.Background()

	bad := &models.Post{
		UserID:  "u1",
		Content: "",
		Reactions: []models.Reaction{
			{User: "u2", Type: models.ReactionLike},
			{User: "u2", Type: models.ReactionLove},
			{User: "u3", Type: "meh"},
		},
		Comments: []models.Comment{{ID: "c1", User: "u2", Content: "  "}},
	}
	require.NoError(t, posts.Create(ctx, bad))

	report, err := s.Verify(ctx, 5)
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Len(t, report.Problems, 4)
	assert.Len(t, report.Samples, 1)
}

package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/logger"
	"github.com/KlienGumapac/freedomewall/internal/models"
	"github.com/KlienGumapac/freedomewall/internal/repository"
	"github.com/KlienGumapac/freedomewall/internal/wall"
	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the password of every seeded account
const DefaultPassword = "password123"

// Counts controls how much data SeedDev creates
type Counts struct {
	Users     int
	Posts     int
	Reactions int
	Comments  int
}

// DevCounts is the default size of a development dataset
var DevCounts = Counts{Users: 30, Posts: 120, Reactions: 600, Comments: 300}

var (
	educations    = []string{"University of the Philippines", "Ateneo de Manila", "De La Salle University", "University of Santo Tomas", "Mapua University"}
	relationships = []string{"Single", "In a relationship", "Married", "It's complicated"}
	postTemplates = []string{
		"Freedom wall is open, say what you want!",
		"Good morning everyone",
		"Anyone up for coffee later?",
		"Finally done with finals",
		"Throwback to last summer",
	}
	commentTemplates = []string{
		"Love this!",
		"Haha same",
		"Congrats!",
		"Where is this?",
		"Miss you guys",
	}
)

// Seeder handles database seeding operations.
// Posts, reactions and comments go through the wall service so seeded data obeys the same rules as API writes.
type Seeder struct {
	users  repository.UserRepository
	wall   *wall.Service
	faker  *gofakeit.Faker
	hashFn func(password string) (string, error)
}

// NewSeeder creates a new seeder instance. seed 0 picks a random seed.
func NewSeeder(users repository.UserRepository, service *wall.Service, seed uint64) *Seeder {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Seeder{
		users:  users,
		wall:   service,
		faker:  gofakeit.New(seed),
		hashFn: hashPassword,
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// SeedDev seeds the store with realistic random data
func (s *Seeder) SeedDev(ctx context.Context, counts Counts) error {
	logger.Log.Info("Creating users...")
	users, err := s.seedUsers(ctx, counts.Users)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	logger.Log.Info("Creating posts...")
	posts, err := s.seedPosts(ctx, users, counts.Posts)
	if err != nil {
		return fmt.Errorf("failed to seed posts: %w", err)
	}

	logger.Log.Info("Creating reactions...")
	if err := s.seedReactions(ctx, users, posts, counts.Reactions); err != nil {
		return fmt.Errorf("failed to seed reactions: %w", err)
	}

	logger.Log.Info("Creating comments...")
	if err := s.seedComments(ctx, users, posts, counts.Comments); err != nil {
		return fmt.Errorf("failed to seed comments: %w", err)
	}

	return nil
}

// SeedTest creates the fixed test accounts (alice, bob, charlie, diana, eve) and a few posts.
// Existing accounts are reused, so it can run repeatedly.
func (s *Seeder) SeedTest(ctx context.Context) ([]*models.User, error) {
	testUsers := []struct {
		username  string
		firstName string
		lastName  string
	}{
		{"alice", "Alice", "Smith"},
		{"bob", "Bob", "Johnson"},
		{"charlie", "Charlie", "Brown"},
		{"diana", "Diana", "Prince"},
		{"eve", "Eve", "Wilson"},
	}

	hashed, err := s.hashFn(DefaultPassword)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, len(testUsers))
	for _, tu := range testUsers {
		existing, err := s.users.FindByUsername(ctx, tu.username)
		if err == nil {
			users = append(users, existing)
			continue
		}

		user := &models.User{
			FirstName:    tu.firstName,
			LastName:     tu.lastName,
			Username:     tu.username,
			Email:        tu.username + "@example.com",
			PasswordHash: hashed,
			Avatar:       avatarURL(tu.username),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create test user %s: %w", tu.username, err)
		}
		users = append(users, user)
	}

	posts, err := s.seedPosts(ctx, users, len(users))
	if err != nil {
		return nil, fmt.Errorf("failed to seed posts: %w", err)
	}
	if err := s.seedComments(ctx, users, posts, 2*len(posts)); err != nil {
		return nil, fmt.Errorf("failed to seed comments: %w", err)
	}

	return users, nil
}

func (s *Seeder) seedUsers(ctx context.Context, count int) ([]*models.User, error) {
	// One hash for everyone; bcrypt is slow by design
	hashed, err := s.hashFn(DefaultPassword)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, count)
	for len(users) < count {
		username := s.faker.Username()
		user := &models.User{
			FirstName:    s.faker.FirstName(),
			LastName:     s.faker.LastName(),
			Username:     username,
			Email:        s.faker.Email(),
			PasswordHash: hashed,
			Avatar:       avatarURL(username),
			CoverPhoto:   fmt.Sprintf("https://picsum.photos/seed/%s/1200/400", username),
			Bio:          s.faker.HipsterSentence(),
			Education:    educations[s.faker.Number(0, len(educations)-1)],
			Location:     fmt.Sprintf("%s, %s", s.faker.City(), s.faker.Country()),
			Relationship: relationships[s.faker.Number(0, len(relationships)-1)],
			JoinDate:     s.faker.DateRange(time.Now().AddDate(-2, 0, 0), time.Now()),
			Followers:    s.faker.Number(0, 1000),
			Following:    s.faker.Number(0, 500),
		}

		err := s.users.Create(ctx, user)
		if errors.Is(err, repository.ErrDuplicateUser) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}

	logger.Log.Info("Created seed users", zap.Int("count", len(users)))
	return users, nil
}

func (s *Seeder) seedPosts(ctx context.Context, users []*models.User, count int) ([]models.PostView, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]models.PostView, 0, count)
	for i := 0; i < count; i++ {
		author := users[s.faker.Number(0, len(users)-1)]

		input := wall.CreatePostInput{Content: s.pickPostContent()}
		// About a third of posts carry a photo
		if s.faker.Number(0, 2) == 0 {
			input.Images = []string{fmt.Sprintf("https://picsum.photos/seed/%s/800/600", s.faker.UUID())}
		}

		post, err := s.wall.CreatePost(ctx, author.ID, input)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	logger.Log.Info("Created seed posts", zap.Int("count", len(posts)))
	return posts, nil
}

func (s *Seeder) seedReactions(ctx context.Context, users []*models.User, posts []models.PostView, count int) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	for i := 0; i < count; i++ {
		user := users[s.faker.Number(0, len(users)-1)]
		post := posts[s.faker.Number(0, len(posts)-1)]
		reaction := models.ReactionTypes[s.faker.Number(0, len(models.ReactionTypes)-1)]

		if _, err := s.wall.React(ctx, post.ID, user.ID, string(reaction)); err != nil {
			return err
		}
	}

	logger.Log.Info("Applied seed reactions", zap.Int("count", count))
	return nil
}

func (s *Seeder) seedComments(ctx context.Context, users []*models.User, posts []models.PostView, count int) error {
	if len(users) == 0 || len(posts) == 0 {
		return nil
	}

	for i := 0; i < count; i++ {
		user := users[s.faker.Number(0, len(users)-1)]
		post := posts[s.faker.Number(0, len(posts)-1)]

		content := commentTemplates[s.faker.Number(0, len(commentTemplates)-1)]
		if s.faker.Number(0, 1) == 0 {
			content = s.faker.HipsterSentence()
		}

		if _, err := s.wall.AddComment(ctx, post.ID, user.ID, content, nil); err != nil {
			return err
		}
	}

	logger.Log.Info("Created seed comments", zap.Int("count", count))
	return nil
}

func (s *Seeder) pickPostContent() string {
	if s.faker.Number(0, 1) == 0 {
		return postTemplates[s.faker.Number(0, len(postTemplates)-1)]
	}
	return s.faker.HipsterSentence()
}

func avatarURL(username string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/png?seed=%s", username)
}

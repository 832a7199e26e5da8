package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/models"
)

// MockCall records a method call for assertion
type MockCall struct {
	Method string
	Args   []interface{}
}

type callRecorder struct {
	mu    sync.Mutex
	Calls []MockCall
}

func (r *callRecorder) recordCall(method string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, MockCall{Method: method, Args: args})
}

// GetCallsForMethod returns calls for a specific method
func (r *callRecorder) GetCallsForMethod(method string) []MockCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []MockCall
	for _, call := range r.Calls {
		if call.Method == method {
			result = append(result, call)
		}
	}
	return result
}

// MockPostRepository is an in-memory PostRepository for tests.
// Mutate follows the same compare-and-swap contract as the real implementations.
type MockPostRepository struct {
	callRecorder

	storeMu sync.Mutex
	posts   map[string]*models.Post

	// ConflictsBeforeSuccess makes the next N Mutate writes lose the race
	ConflictsBeforeSuccess int

	// DefaultError, when set, is returned by every method
	DefaultError error
}

// NewMockPostRepository creates an empty mock post repository
func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{posts: make(map[string]*models.Post)}
}

func clonePost(p *models.Post) *models.Post {
	c := *p
	c.Images = append(c.Images[:0:0], p.Images...)
	c.Reactions = append(c.Reactions[:0:0], p.Reactions...)
	c.Comments = append(c.Comments[:0:0], p.Comments...)
	c.Normalize()
	return &c
}

// Create stores a copy of post
func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	m.recordCall("Create", post)
	if m.DefaultError != nil {
		return m.DefaultError
	}
	if post == nil {
		return ErrInvalidInput
	}
	post.PrepareForCreate(time.Now().UTC())

	m.storeMu.Lock()
	defer m.storeMu.Unlock()
	m.posts[post.ID] = clonePost(post)
	return nil
}

// FindByID returns a copy of the stored post
func (m *MockPostRepository) FindByID(ctx context.Context, postID string) (*models.Post, error) {
	m.recordCall("FindByID", postID)
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	m.storeMu.Lock()
	defer m.storeMu.Unlock()
	post, ok := m.posts[postID]
	if !ok {
		return nil, ErrPostNotFound
	}
	return clonePost(post), nil
}

// List returns copies of stored posts newest first
func (m *MockPostRepository) List(ctx context.Context, filter PostFilter) ([]*models.Post, error) {
	m.recordCall("List", filter)
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	m.storeMu.Lock()
	defer m.storeMu.Unlock()
	posts := make([]*models.Post, 0, len(m.posts))
	for _, p := range m.posts {
		if filter.UserID != "" && p.UserID != filter.UserID {
			continue
		}
		posts = append(posts, clonePost(p))
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if filter.Limit > 0 && len(posts) > filter.Limit {
		posts = posts[:filter.Limit]
	}
	return posts, nil
}

// Mutate applies fn to a copy and stores it when the revision still matches
func (m *MockPostRepository) Mutate(ctx context.Context, postID string, fn MutateFunc) (*models.Post, error) {
	m.recordCall("Mutate", postID)
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	for attempt := 1; attempt <= MaxMutateAttempts; attempt++ {
		m.storeMu.Lock()
		stored, ok := m.posts[postID]
		if !ok {
			m.storeMu.Unlock()
			return nil, ErrPostNotFound
		}
		post := clonePost(stored)
		m.storeMu.Unlock()

		expected := post.Revision
		if err := fn(post); err != nil {
			return nil, err
		}
		post.Normalize()
		post.Revision = expected + 1
		post.UpdatedAt = time.Now().UTC()

		m.storeMu.Lock()
		if m.ConflictsBeforeSuccess > 0 {
			m.ConflictsBeforeSuccess--
			m.posts[postID].Revision++
			m.storeMu.Unlock()
			continue
		}
		if m.posts[postID].Revision != expected {
			m.storeMu.Unlock()
			continue
		}
		m.posts[postID] = clonePost(post)
		m.storeMu.Unlock()
		return post, nil
	}
	return nil, ErrConflict
}

// Count returns the number of stored posts
func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	m.recordCall("Count")
	m.storeMu.Lock()
	defer m.storeMu.Unlock()
	return int64(len(m.posts)), m.DefaultError
}

// MockUserRepository is an in-memory UserRepository for tests
type MockUserRepository struct {
	callRecorder

	storeMu sync.Mutex
	users   map[string]*models.User

	// FindSummariesFunc overrides FindSummaries when set
	FindSummariesFunc func(ctx context.Context, userIDs []string) (map[string]models.UserSummary, error)

	// DefaultError, when set, is returned by every method
	DefaultError error
}

// NewMockUserRepository creates a mock user repository seeded with users
func NewMockUserRepository(users ...*models.User) *MockUserRepository {
	m := &MockUserRepository{users: make(map[string]*models.User)}
	for _, u := range users {
		u.PrepareForCreate(time.Now().UTC())
		c := *u
		m.users[u.ID] = &c
	}
	return m
}

// Create stores a copy of user
func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.recordCall("Create", user)
	if m.DefaultError != nil {
		return m.DefaultError
	}
	if user == nil {
		return ErrInvalidInput
	}

	m.storeMu.Lock()
	defer m.storeMu.Unlock()
	for _, existing := range m.users {
		if strings.EqualFold(existing.Username, user.Username) || strings.EqualFold(existing.Email, user.Email) {
			return ErrDuplicateUser
		}
	}
	user.PrepareForCreate(time.Now().UTC())
	c := *user
	m.users[user.ID] = &c
	return nil
}

// FindByID returns a copy of the stored user
func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	m.recordCall("FindByID", userID)
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	m.storeMu.Lock()
	defer m.storeMu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	c := *user
	return &c, nil
}

// FindByUsername returns a copy of the user with that username
func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	m.recordCall("FindByUsername", username)
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	m.storeMu.Lock()
	defer m.storeMu.Unlock()
	for _, user := range m.users {
		if strings.EqualFold(user.Username, username) {
			c := *user
			return &c, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindSummaries returns display fields of known users
func (m *MockUserRepository) FindSummaries(ctx context.Context, userIDs []string) (map[string]models.UserSummary, error) {
	m.recordCall("FindSummaries", userIDs)
	if m.FindSummariesFunc != nil {
		return m.FindSummariesFunc(ctx, userIDs)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	m.storeMu.Lock()
	defer m.storeMu.Unlock()
	summaries := make(map[string]models.UserSummary, len(userIDs))
	for _, id := range userIDs {
		if user, ok := m.users[id]; ok {
			summaries[id] = user.Summary()
		}
	}
	return summaries, nil
}

// UpdateFields applies the partial update to the stored user
func (m *MockUserRepository) UpdateFields(ctx context.Context, userID string, update models.UserUpdate) (*models.User, error) {
	m.recordCall("UpdateFields", userID, update)
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}

	m.storeMu.Lock()
	defer m.storeMu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	update.Apply(user)
	user.UpdatedAt = time.Now().UTC()
	c := *user
	return &c, nil
}

// Count returns the number of stored users
func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	m.recordCall("Count")
	m.storeMu.Lock()
	defer m.storeMu.Unlock()
	return int64(len(m.users)), m.DefaultError
}

// Ensure mocks implement the interfaces
var (
	_ PostRepository = (*MockPostRepository)(nil)
	_ UserRepository = (*MockUserRepository)(nil)
)

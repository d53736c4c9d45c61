package api

import (
	"context"
	"sort"
	"strings"

	"github.com/yundol-dev/board-api/internal/domain"
	"github.com/yundol-dev/board-api/internal/store"
)

// splitLines splits a rendered multi-line message for line-level assertions.
func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// mockMemberStore is an in-memory implementation of store.MemberStore for tests.
type mockMemberStore struct {
	members   map[int64]*domain.Member
	nextID    int64
	createErr error
}

func newMockMemberStore() *mockMemberStore {
	return &mockMemberStore{
		members: make(map[int64]*domain.Member),
		nextID:  1,
	}
}

func (m *mockMemberStore) Create(ctx context.Context, member *domain.Member) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.members {
		if existing.Username == member.Username {
			return store.ErrUsernameExists
		}
	}
	member.ID = m.nextID
	m.nextID++
	m.members[member.ID] = member
	return nil
}

func (m *mockMemberStore) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	member, ok := m.members[id]
	if !ok {
		return nil, store.ErrMemberNotFound
	}
	return member, nil
}

func (m *mockMemberStore) GetByUsername(ctx context.Context, username string) (*domain.Member, error) {
	for _, member := range m.members {
		if member.Username == username {
			return member, nil
		}
	}
	return nil, store.ErrMemberNotFound
}

func (m *mockMemberStore) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Member, error) {
	for _, member := range m.members {
		if member.APIKey == apiKey {
			return member, nil
		}
	}
	return nil, store.ErrMemberNotFound
}

func (m *mockMemberStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.members)), nil
}

// mockPostStore is an in-memory implementation of store.PostStore for tests.
type mockPostStore struct {
	posts     map[int64]*domain.Post
	nextID    int64
	createErr error
}

func newMockPostStore() *mockPostStore {
	return &mockPostStore{
		posts:  make(map[int64]*domain.Post),
		nextID: 1,
	}
}

func (m *mockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.createErr != nil {
		return m.createErr
	}
	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return post, nil
}

func (m *mockPostStore) GetLatest(ctx context.Context) (*domain.Post, error) {
	var latest *domain.Post
	for _, post := range m.posts {
		if latest == nil || post.ID > latest.ID {
			latest = post
		}
	}
	if latest == nil {
		return nil, store.ErrPostNotFound
	}
	return latest, nil
}

func (m *mockPostStore) ListAllDesc(ctx context.Context) ([]*domain.Post, error) {
	posts := make([]*domain.Post, 0, len(m.posts))
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (m *mockPostStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.posts)), nil
}

// Interface conformance for the mocks.
var (
	_ store.MemberStore = (*mockMemberStore)(nil)
	_ store.PostStore   = (*mockPostStore)(nil)
)

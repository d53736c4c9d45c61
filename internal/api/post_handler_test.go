package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yundol-dev/board-api/internal/api/middleware"
	"github.com/yundol-dev/board-api/internal/domain"
	"github.com/yundol-dev/board-api/internal/service/auth"
)

// newPostRouter mounts the post routes the way the server does, including
// the auth middleware on the write route.
func newPostRouter(members *mockMemberStore, posts *mockPostStore) http.Handler {
	h := NewPostHandler(posts, nil)
	authMw := middleware.NewAuthMiddleware(members)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/posts", h.Items)
		r.Get("/posts/{id}", h.Item)
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireActor)
			r.Post("/posts", h.Write)
		})
	})
	return r
}

// seedMember creates a member directly in the mock store and returns it.
func seedMember(t *testing.T, members *mockMemberStore, username, nickname string) *domain.Member {
	t.Helper()
	hasher := auth.NewBcryptHasher()
	hashed, err := hasher.Hash("1234")
	require.NoError(t, err)
	member, err := domain.NewMember(username, hashed, nickname)
	require.NoError(t, err)
	require.NoError(t, members.Create(context.Background(), member))
	return member
}

// seedPost creates a post directly in the mock store and returns it.
func seedPost(t *testing.T, posts *mockPostStore, author *domain.Member, title, content string) *domain.Post {
	t.Helper()
	post, err := domain.NewPost(author, title, content)
	require.NoError(t, err)
	require.NoError(t, posts.Create(context.Background(), post))
	return post
}

func TestPostHandler_Item(t *testing.T) {
	members := newMockMemberStore()
	posts := newMockPostStore()
	author := seedMember(t, members, "user1", "유저1")
	post := seedPost(t, posts, author, "제목 1", "내용 1")
	router := newPostRouter(members, posts)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	// Success returns the raw post view, NOT the envelope.
	_, hasResultCode := body["resultCode"]
	assert.False(t, hasResultCode, "item success must not be enveloped")

	assert.Equal(t, float64(post.ID), body["id"])
	assert.Equal(t, float64(author.ID), body["authorId"])
	assert.Equal(t, "유저1", body["authorName"])
	assert.Equal(t, "제목 1", body["title"])
	assert.Equal(t, "내용 1", body["content"])

	// Fixed-width 26-character timestamps.
	createDate, _ := body["createDate"].(string)
	assert.Len(t, createDate, 26)
	assert.True(t, strings.HasPrefix(createDate, formatDate(post.CreateDate)[:25]))
}

func TestPostHandler_Item_NotFound(t *testing.T) {
	members := newMockMemberStore()
	posts := newMockPostStore()
	router := newPostRouter(members, posts)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/1000000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "404-1", body["resultCode"])
	assert.Equal(t, "해당 데이터가 존재하지 않습니다.", body["msg"])
}

func TestPostHandler_Item_Idempotent(t *testing.T) {
	members := newMockMemberStore()
	posts := newMockPostStore()
	author := seedMember(t, members, "user1", "유저1")
	seedPost(t, posts, author, "제목 1", "내용 1")
	router := newPostRouter(members, posts)

	get := func() []byte {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.Bytes()
	}

	// Two reads without intervening writes are byte-identical.
	assert.Equal(t, get(), get())
}

func TestPostHandler_Items_DescendingOrder(t *testing.T) {
	members := newMockMemberStore()
	posts := newMockPostStore()
	author := seedMember(t, members, "user1", "유저1")
	seedPost(t, posts, author, "제목 1", "내용 1")
	seedPost(t, posts, author, "제목 2", "내용 2")
	seedPost(t, posts, author, "제목 3", "내용 3")
	router := newPostRouter(members, posts)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var views []PostView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 3)
	assert.Equal(t, int64(3), views[0].ID)
	assert.Equal(t, int64(2), views[1].ID)
	assert.Equal(t, int64(1), views[2].ID)
}

func TestPostHandler_Write(t *testing.T) {
	members := newMockMemberStore()
	posts := newMockPostStore()
	actor := seedMember(t, members, "user1", "유저1")
	router := newPostRouter(members, posts)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts",
		bytes.NewBufferString(`{"title": "제목 new", "content": "내용 new"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+actor.APIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "201-1", body["resultCode"])

	// The created post is the latest and owned by the actor.
	latest, err := posts.GetLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, actor.ID, latest.AuthorID)
	assert.Equal(t, "1번 글이 작성되었습니다.", body["msg"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(latest.ID), data["id"])
	assert.Equal(t, float64(actor.ID), data["authorId"])
	assert.Equal(t, "유저1", data["authorName"])
	assert.Equal(t, "제목 new", data["title"])
	assert.Equal(t, "내용 new", data["content"])
}

func TestPostHandler_Write_EmptyInput(t *testing.T) {
	members := newMockMemberStore()
	posts := newMockPostStore()
	actor := seedMember(t, members, "user1", "유저1")
	router := newPostRouter(members, posts)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts",
		bytes.NewBufferString(`{"title": "", "content": ""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+actor.APIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "400-1", body["resultCode"])
	assert.Equal(t, strings.Join([]string{
		"content-Length-length must be between 2 and 10000000",
		"content-NotBlank-may not be empty",
		"title-Length-length must be between 2 and 100",
		"title-NotBlank-may not be empty",
	}, "\n"), body["msg"])

	count, _ := posts.Count(context.Background())
	assert.Zero(t, count, "no post may be created on validation failure")
}

func TestPostHandler_Write_NoActor(t *testing.T) {
	members := newMockMemberStore()
	posts := newMockPostStore()
	router := newPostRouter(members, posts)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts",
		bytes.NewBufferString(`{"title": "제목 new", "content": "내용 new"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "401-1", body["resultCode"])
	assert.Equal(t, "apiKey를 입력해주세요.", body["msg"])

	// The store is untouched.
	count, _ := posts.Count(context.Background())
	assert.Zero(t, count)
}

func TestPostHandler_Write_UnwiredRoute(t *testing.T) {
	posts := newMockPostStore()
	h := NewPostHandler(posts, nil)

	// Calling the handler without the auth middleware leaves no actor in the
	// context; the client still gets the uniform 401.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts",
		bytes.NewBufferString(`{"title": "제목 new", "content": "내용 new"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Write(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "401-1", body["resultCode"])
	assert.Equal(t, middleware.MsgAPIKeyRequired, body["msg"])

	count, _ := posts.Count(context.Background())
	assert.Zero(t, count)
}

func TestPostHandler_Write_InvalidAPIKey(t *testing.T) {
	members := newMockMemberStore()
	posts := newMockPostStore()
	seedMember(t, members, "user1", "유저1")
	router := newPostRouter(members, posts)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts",
		bytes.NewBufferString(`{"title": "제목 new", "content": "내용 new"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer no-such-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Unknown keys share the missing-key response.
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "401-1", body["resultCode"])
	assert.Equal(t, "apiKey를 입력해주세요.", body["msg"])

	count, _ := posts.Count(context.Background())
	assert.Zero(t, count)
}

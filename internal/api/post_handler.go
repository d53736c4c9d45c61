package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yundol-dev/board-api/internal/api/middleware"
	"github.com/yundol-dev/board-api/internal/api/shared"
	"github.com/yundol-dev/board-api/internal/domain"
	"github.com/yundol-dev/board-api/internal/store"
)

// PostHandler handles post-related API requests: single item lookup, the
// descending list, and authenticated creation.
type PostHandler struct {
	posts  store.PostStore
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(posts store.PostStore, log *slog.Logger) *PostHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PostHandler{
		posts:  posts,
		logger: log.With(slog.String("component", "post_handler")),
	}
}

// Item handles GET /api/v1/posts/{id}.
//
// On success the post view is returned directly, NOT wrapped in the
// resultCode/msg/data envelope; only the error path uses the envelope. This
// asymmetry is part of the published API surface and must not be "fixed".
func (h *PostHandler) Item(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// A non-numeric ID can never name an existing post.
		shared.RespondWithRsData(w, r, shared.NewRsData("404-1", MsgNotFound, nil))
		return
	}

	post, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPostView(post))
}

// Items handles GET /api/v1/posts.
// Returns every post ordered by ID descending as a raw JSON array, matching
// the raw-on-success shape of the single item endpoint.
func (h *PostHandler) Items(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListAllDesc(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	views := make([]PostView, len(posts))
	for i, post := range posts {
		views[i] = NewPostView(post)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, views)
}

// Write handles POST /api/v1/posts.
// Requires an actor resolved by the auth middleware; the created post is
// owned by that actor.
func (h *PostHandler) Write(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		// The route is always mounted behind the auth middleware; reaching
		// this branch means a wiring mistake, but the client still gets the
		// uniform 401.
		h.logger.Warn("write reached without an actor in context")
		shared.RespondWithRsData(w, r, shared.NewRsData("401-1", middleware.MsgAPIKeyRequired, nil))
		return
	}

	var req WritePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithRsData(w, r, shared.NewRsData("400-1", MsgBadRequest, nil))
		return
	}

	if err := Validate(req.constraints()...); err != nil {
		HandleError(w, r, err)
		return
	}

	post, err := domain.NewPost(actor, req.Title, req.Content)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if err := h.posts.Create(r.Context(), post); err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithRsData(w, r, shared.NewRsData(
		"201-1",
		fmt.Sprintf("%d번 글이 작성되었습니다.", post.ID),
		NewPostView(post),
	))
}

package store

import (
	"context"

	"github.com/yundol-dev/board-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
// Posts carry their author's nickname (AuthorName) when read back, so
// implementations are expected to resolve the author on every lookup.
type PostStore interface {
	// Create saves a new post to the store and assigns its ID.
	// Returns ErrInvalidEntity if the author does not exist.
	// Returns validation errors from the domain Post if data is invalid.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// GetLatest retrieves the most recently created post, i.e. the one with
	// the highest ID. Returns ErrPostNotFound if the store is empty.
	GetLatest(ctx context.Context) (*domain.Post, error)

	// ListAllDesc retrieves every post ordered by ID descending
	// (newest first). Returns an empty slice if the store is empty.
	ListAllDesc(ctx context.Context) ([]*domain.Post, error)

	// Count returns the total number of posts in the store.
	Count(ctx context.Context) (int64, error)
}

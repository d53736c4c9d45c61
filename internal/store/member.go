package store

import (
	"context"

	"github.com/yundol-dev/board-api/internal/domain"
)

// MemberStore defines the interface for member data persistence.
type MemberStore interface {
	// Create saves a new member to the store and assigns its ID.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain Member if data is invalid.
	Create(ctx context.Context, member *domain.Member) error

	// GetByID retrieves a member by their unique ID.
	// Returns ErrMemberNotFound if the member does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Member, error)

	// GetByUsername retrieves a member by their unique username.
	// Returns ErrMemberNotFound if the member does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.Member, error)

	// GetByAPIKey retrieves the member that owns the given API key.
	// Returns ErrMemberNotFound if no member holds the key.
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Member, error)

	// Count returns the total number of members in the store.
	Count(ctx context.Context) (int64, error)
}

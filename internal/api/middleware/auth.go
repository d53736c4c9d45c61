// Package middleware provides HTTP middleware for the API: request-scoped
// trace IDs and API-key authentication.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/yundol-dev/board-api/internal/api/shared"
	"github.com/yundol-dev/board-api/internal/domain"
	"github.com/yundol-dev/board-api/internal/store"
)

// MsgAPIKeyRequired is the fixed 401 message for requests that need an actor.
// Missing and unknown API keys deliberately share it; the two cases branch
// separately below but are indistinguishable to the client.
const MsgAPIKeyRequired = "apiKey를 입력해주세요."

// bearerPrefix is the required, case-sensitive authorization scheme prefix.
const bearerPrefix = "Bearer "

// AuthMiddleware resolves the Authorization header's API key to a member
// through the member store.
type AuthMiddleware struct {
	members store.MemberStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(members store.MemberStore) *AuthMiddleware {
	return &AuthMiddleware{
		members: members,
	}
}

// BearerToken extracts the API key token from a raw Authorization header
// value. A header that is absent or does not carry the case-sensitive
// "Bearer " scheme is treated as no token rather than an error.
func BearerToken(header string) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return header[len(bearerPrefix):]
}

// RequireActor validates the API key from the Authorization header and adds
// the resolved member to the request context for authorized requests.
// Requests without a resolvable actor are rejected with 401 "401-1".
func (m *AuthMiddleware) RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r.Header.Get("Authorization"))
		if token == "" {
			// No token present: the "no actor" state.
			shared.RespondWithRsData(w, r, shared.NewRsData("401-1", MsgAPIKeyRequired, nil))
			return
		}

		actor, err := m.members.GetByAPIKey(r.Context(), token)
		if err != nil {
			if errors.Is(err, store.ErrMemberNotFound) {
				// Token present but matches no member. Distinct from the
				// missing-token branch, same client-facing message.
				shared.RespondWithRsData(w, r, shared.NewRsData("401-1", MsgAPIKeyRequired, nil))
				return
			}

			slog.Error("failed to resolve API key", "error", err,
				"trace_id", shared.GetTraceID(r.Context()))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), shared.ActorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActor extracts the resolved member from the request context.
// Returns the member and a boolean indicating if it was found.
func GetActor(r *http.Request) (*domain.Member, bool) {
	actor, ok := r.Context().Value(shared.ActorContextKey).(*domain.Member)
	return actor, ok
}

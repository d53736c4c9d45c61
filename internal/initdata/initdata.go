// Package initdata seeds the store with baseline members and posts so a
// fresh database is immediately usable. Seeding is idempotent: it runs only
// when the member table is empty.
package initdata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yundol-dev/board-api/internal/domain"
	"github.com/yundol-dev/board-api/internal/service/auth"
	"github.com/yundol-dev/board-api/internal/store"
)

// seedPassword is the credential shared by all seeded members.
const seedPassword = "1234"

// Seeder creates the baseline data set.
type Seeder struct {
	members store.MemberStore
	posts   store.PostStore
	hasher  auth.PasswordHasher
	logger  *slog.Logger
}

// NewSeeder creates a new Seeder with the given dependencies.
func NewSeeder(
	members store.MemberStore,
	posts store.PostStore,
	hasher auth.PasswordHasher,
	log *slog.Logger,
) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{
		members: members,
		posts:   posts,
		hasher:  hasher,
		logger:  log.With(slog.String("component", "initdata")),
	}
}

// Run seeds members user1..user3 and three posts by user1 when the member
// table is empty. Returns nil without touching the store otherwise.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.members.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count members: %w", err)
	}
	if count > 0 {
		s.logger.Debug("init data already present, skipping seed")
		return nil
	}

	hashed, err := s.hasher.Hash(seedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	var user1 *domain.Member
	for i := 1; i <= 3; i++ {
		member, err := domain.NewMember(
			fmt.Sprintf("user%d", i),
			hashed,
			fmt.Sprintf("유저%d", i),
		)
		if err != nil {
			return fmt.Errorf("failed to build seed member: %w", err)
		}
		if err := s.members.Create(ctx, member); err != nil {
			return fmt.Errorf("failed to create seed member: %w", err)
		}
		if i == 1 {
			user1 = member
		}
	}

	for i := 1; i <= 3; i++ {
		post, err := domain.NewPost(user1, fmt.Sprintf("제목 %d", i), fmt.Sprintf("내용 %d", i))
		if err != nil {
			return fmt.Errorf("failed to build seed post: %w", err)
		}
		if err := s.posts.Create(ctx, post); err != nil {
			return fmt.Errorf("failed to create seed post: %w", err)
		}
	}

	s.logger.Info("init data seeded", slog.Int("members", 3), slog.Int("posts", 3))
	return nil
}

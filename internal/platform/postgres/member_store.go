package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yundol-dev/board-api/internal/domain"
	"github.com/yundol-dev/board-api/internal/platform/logger"
	"github.com/yundol-dev/board-api/internal/store"
)

// PostgresMemberStore implements the store.MemberStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMemberStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMemberStore creates a new PostgreSQL implementation of the
// MemberStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, the default logger will be used.
func NewPostgresMemberStore(db store.DBTX, log *slog.Logger) *PostgresMemberStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresMemberStore{
		db:     db,
		logger: log.With(slog.String("component", "member_store")),
	}
}

// Ensure PostgresMemberStore implements store.MemberStore interface
var _ store.MemberStore = (*PostgresMemberStore)(nil)

// Create implements store.MemberStore.Create
// It saves a new member to the database and assigns its ID.
// Returns store.ErrUsernameExists if the username is already taken.
// Returns validation errors from the domain Member if data is invalid.
func (s *PostgresMemberStore) Create(ctx context.Context, member *domain.Member) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := member.Validate(); err != nil {
		log.Warn("member validation failed during create",
			slog.String("error", err.Error()),
			slog.String("username", member.Username))
		return err
	}

	query := `
		INSERT INTO members (username, password, nickname, api_key, create_date, modify_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		member.Username,
		member.Password,
		member.Nickname,
		member.APIKey,
		member.CreateDate,
		member.ModifyDate,
	).Scan(&member.ID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("unique violation during member creation",
				slog.String("username", member.Username))
			return store.ErrUsernameExists
		}

		log.Error("failed to create member",
			slog.String("error", err.Error()),
			slog.String("username", member.Username))
		return err
	}

	log.Info("member created successfully",
		slog.Int64("member_id", member.ID),
		slog.String("username", member.Username))
	return nil
}

// GetByID implements store.MemberStore.GetByID
// Returns store.ErrMemberNotFound if the member does not exist.
func (s *PostgresMemberStore) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	return s.getBy(ctx, "id", id)
}

// GetByUsername implements store.MemberStore.GetByUsername
// Returns store.ErrMemberNotFound if the member does not exist.
func (s *PostgresMemberStore) GetByUsername(ctx context.Context, username string) (*domain.Member, error) {
	return s.getBy(ctx, "username", username)
}

// GetByAPIKey implements store.MemberStore.GetByAPIKey
// Returns store.ErrMemberNotFound if no member holds the key.
func (s *PostgresMemberStore) GetByAPIKey(ctx context.Context, apiKey string) (*domain.Member, error) {
	return s.getBy(ctx, "api_key", apiKey)
}

// getBy retrieves a single member by an exact match on one column.
// The column name is always one of the fixed values above, never user input.
func (s *PostgresMemberStore) getBy(ctx context.Context, column string, value any) (*domain.Member, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		SELECT id, username, password, nickname, api_key, create_date, modify_date
		FROM members
		WHERE %s = $1
	`, column)

	var member domain.Member
	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&member.ID,
		&member.Username,
		&member.Password,
		&member.Nickname,
		&member.APIKey,
		&member.CreateDate,
		&member.ModifyDate,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("member not found", slog.String("lookup", column))
			return nil, store.ErrMemberNotFound
		}
		log.Error("failed to get member",
			slog.String("error", err.Error()),
			slog.String("lookup", column))
		return nil, err
	}

	return &member, nil
}

// Count implements store.MemberStore.Count
func (s *PostgresMemberStore) Count(ctx context.Context) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`).Scan(&count); err != nil {
		log.Error("failed to count members", slog.String("error", err.Error()))
		return 0, err
	}
	return count, nil
}

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

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
// Every read joins the members table so the returned posts carry their
// author's nickname.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, the default logger will be used.
func NewPostgresPostStore(db store.DBTX, log *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: log.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

const postSelectColumns = `
	p.id, p.author_id, m.nickname, p.title, p.content, p.create_date, p.modify_date
`

// Create implements store.PostStore.Create
// It saves a new post to the database and assigns its ID.
// Returns store.ErrInvalidEntity if the author does not exist (foreign key violation).
// Returns validation errors from the domain Post if data is invalid.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("author_id", post.AuthorID))
		return err
	}

	query := `
		INSERT INTO posts (author_id, title, content, create_date, modify_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		post.AuthorID,
		post.Title,
		post.Content,
		post.CreateDate,
		post.ModifyDate,
	).Scan(&post.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.Int64("author_id", post.AuthorID))
			return fmt.Errorf("%w: member with ID %d not found",
				store.ErrInvalidEntity, post.AuthorID)
		}

		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.Int64("author_id", post.AuthorID))
		return err
	}

	log.Info("post created successfully",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", post.AuthorID))
	return nil
}

// GetByID implements store.PostStore.GetByID
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `
		SELECT ` + postSelectColumns + `
		FROM posts p
		JOIN members m ON m.id = p.author_id
		WHERE p.id = $1
	`
	return s.getOne(ctx, query, id)
}

// GetLatest implements store.PostStore.GetLatest
// Returns store.ErrPostNotFound if the store is empty.
func (s *PostgresPostStore) GetLatest(ctx context.Context) (*domain.Post, error) {
	query := `
		SELECT ` + postSelectColumns + `
		FROM posts p
		JOIN members m ON m.id = p.author_id
		ORDER BY p.id DESC
		LIMIT 1
	`
	return s.getOne(ctx, query)
}

func (s *PostgresPostStore) getOne(ctx context.Context, query string, args ...any) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&post.ID,
		&post.AuthorID,
		&post.AuthorName,
		&post.Title,
		&post.Content,
		&post.CreateDate,
		&post.ModifyDate,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found")
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post", slog.String("error", err.Error()))
		return nil, err
	}

	return &post, nil
}

// ListAllDesc implements store.PostStore.ListAllDesc
// It retrieves every post ordered by ID descending (newest first).
func (s *PostgresPostStore) ListAllDesc(ctx context.Context) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + postSelectColumns + `
		FROM posts p
		JOIN members m ON m.id = p.author_id
		ORDER BY p.id DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.AuthorID,
			&post.AuthorName,
			&post.Title,
			&post.Content,
			&post.CreateDate,
			&post.ModifyDate,
		); err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		log.Error("failed while iterating post rows", slog.String("error", err.Error()))
		return nil, err
	}

	return posts, nil
}

// Count implements store.PostStore.Count
func (s *PostgresPostStore) Count(ctx context.Context) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		log.Error("failed to count posts", slog.String("error", err.Error()))
		return 0, err
	}
	return count, nil
}

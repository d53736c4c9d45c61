package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/yundol-dev/board-api/internal/config"
	"github.com/yundol-dev/board-api/internal/initdata"
	"github.com/yundol-dev/board-api/internal/platform/logger"
	"github.com/yundol-dev/board-api/internal/platform/postgres"
	"github.com/yundol-dev/board-api/internal/service/auth"
	"github.com/yundol-dev/board-api/internal/store"
)

// application holds the initialized dependencies of the server process.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	memberStore store.MemberStore
	postStore   store.PostStore
	hasher      *auth.BcryptHasher
}

// newApplication loads configuration and wires up every application
// component: logging, the database (with migrations applied), the stores and
// the seed data.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	memberStore := postgres.NewPostgresMemberStore(db, appLogger)
	postStore := postgres.NewPostgresPostStore(db, appLogger)
	hasher := auth.NewBcryptHasher()

	seeder := initdata.NewSeeder(memberStore, postStore, hasher, appLogger)
	if err := seeder.Run(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed init data: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      appLogger,
		db:          db,
		memberStore: memberStore,
		postStore:   postStore,
		hasher:      hasher,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}

package app

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/thenoetrevino/syllabus/internal/config"
	"github.com/thenoetrevino/syllabus/internal/database"
	"github.com/thenoetrevino/syllabus/internal/events"
	boardservice "github.com/thenoetrevino/syllabus/internal/services/board"
	subjectservice "github.com/thenoetrevino/syllabus/internal/services/subject"
	trackservice "github.com/thenoetrevino/syllabus/internal/services/track"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	repo   *database.Repository
	config *config.Config

	// Event system for live updates
	eventClient events.EventPublisher

	// Service layer (business logic)
	BoardService   boardservice.Service
	SubjectService subjectservice.Service
	TrackService   trackservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
// A nil cfg uses config.Default().
func New(db *sql.DB, cfg *config.Config, opts ...Option) *App {
	options := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	repo := database.NewRepository(db)
	boards := boardservice.NewService(repo.Boards, repo.Subjects, options.eventClient, boardservice.Options{
		MaxNameLength:    cfg.Limits.MaxNameLength,
		DefaultSemesters: cfg.Board.Semesters(),
		MaxSemesters:     cfg.Limits.MaxSemesters,
		BlockOnWarnings:  cfg.Validation.BlockOnWarnings,
	})

	options.logger.Debug("application initialized",
		"block_on_warnings", cfg.Validation.BlockOnWarnings,
		"events", options.eventClient != nil)

	return &App{
		db:             db,
		repo:           repo,
		config:         cfg,
		eventClient:    options.eventClient,
		BoardService:   boards,
		SubjectService: subjectservice.NewService(repo.Subjects, options.eventClient),
		TrackService:   trackservice.NewService(repo.Tracks, boards, options.eventClient, cfg.Limits.MaxNameLength),
	}
}

// Config returns the configuration the services were built with
func (a *App) Config() *config.Config {
	return a.config
}

// Events returns the event publisher, or nil when events are disabled
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close stops the event publisher and closes the database
func (a *App) Close() error {
	var errs []error
	if a.eventClient != nil {
		errs = append(errs, a.eventClient.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}

type contextKey struct{}

// NewContext returns a context carrying a; commands pick it up instead of
// opening the database themselves
func NewContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext returns the App stored by NewContext
func FromContext(ctx context.Context) (*App, bool) {
	if ctx == nil {
		return nil, false
	}
	a, ok := ctx.Value(contextKey{}).(*App)
	return a, ok && a != nil
}

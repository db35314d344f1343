// Package cli holds the plumbing shared by every syllabus command: opening
// the application, output formatting, exit codes and argument helpers.
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/syllabus/internal/app"
	"github.com/thenoetrevino/syllabus/internal/config"
	"github.com/thenoetrevino/syllabus/internal/database"
	"github.com/thenoetrevino/syllabus/internal/events"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the App was injected through the context; the
	// injector closes it then
	owned bool
}

// NewCLI opens the database named by the configuration and wires the
// services to an in-process event bus
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg := ConfigFromContext(ctx)
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, cfg, app.WithEventPublisher(events.NewBus(0)))

	return &CLI{
		App:   application,
		owned: true,
	}, nil
}

// GetCLIFromContext returns a CLI around the App carried by ctx, or opens a
// new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := app.FromContext(ctx); ok {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

type configKey struct{}

// WithConfig stores the loaded configuration for NewCLI
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or nil
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx == nil {
		return nil
	}
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	return cfg
}

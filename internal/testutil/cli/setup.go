package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/syllabus/internal/app"
	"github.com/thenoetrevino/syllabus/internal/config"
	"github.com/thenoetrevino/syllabus/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	return SetupCLITestWithConfig(t, config.Default())
}

// SetupCLITestWithConfig is SetupCLITest with custom business rules
func SetupCLITestWithConfig(t *testing.T, cfg *config.Config) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	// Note: EventPublisher is nil - event publishing is tested elsewhere
	return db, app.New(db, cfg)
}

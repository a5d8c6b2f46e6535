package main

import (
	"database/sql"
	"log/slog"

	"github.com/harwoodm/newsdesk/internal/config"
)

// application holds the process-wide dependencies: configuration, the root
// logger and the database pool. Stores and handlers are built from these
// when the router is assembled, so tests can wire their own.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
}

// cleanup releases resources owned by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// slogGooseLogger adapts goose's logger interface onto slog.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	slog.Error(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Printf(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...))
}

// runMigrations executes the requested goose command against the
// application's database.
func (app *application) runMigrations(command, dir string) error {
	goose.SetLogger(&slogGooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	app.logger.Info("Executing migrations", "command", command, "dir", dir)

	switch command {
	case "up":
		return goose.Up(app.db, dir)
	case "down":
		return goose.Down(app.db, dir)
	case "status":
		return goose.Status(app.db, dir)
	default:
		return fmt.Errorf("unknown migration command: %q", command)
	}
}

package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies or rolls back the embedded schema migrations.
// Supported commands: up, down, status, version, reset.
func Migrate(ctx context.Context, dsn, command string) error {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer conn.Close()

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	switch command {
	case "up":
		err = goose.UpContext(ctx, conn, "migrations")
	case "down":
		err = goose.DownContext(ctx, conn, "migrations")
	case "status":
		err = goose.StatusContext(ctx, conn, "migrations")
	case "version":
		err = goose.VersionContext(ctx, conn, "migrations")
	case "reset":
		err = goose.ResetContext(ctx, conn, "migrations")
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

package repository

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

// Migrate applies every pending goose migration from dir.
func Migrate(cfg DBConfig, dir string) error {
	conn, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err = goose.Up(conn, dir); err != nil {
		return fmt.Errorf("applying migrations from %s: %w", dir, err)
	}
	version, err := goose.GetDBVersion(conn)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	slog.Info("database schema is up to date", slog.Int64("version", version))
	return nil
}

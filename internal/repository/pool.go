package repository

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/gymverse/pkg/cleanup"
)

// connect opens a pool for the named repository and registers its shutdown.
// Startup cannot continue without storage, so failures are fatal.
func connect(cfg DBConfig, name string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for " + name + " error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + name + ": " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool of " + name,
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

func mustPing(conn PgConnection, name string) {
	if err := conn.Ping(context.Background()); err != nil {
		log.Fatal("error while pinging connection for " + name + ": " + err.Error())
	}
}

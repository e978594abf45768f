package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/gymverse/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user. ID and CreatedAt are filled in on success
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type RoutinesRepositoryI interface {
	// Stores generated routine as is, ID included
	Create(ctx context.Context, routine *entity.Routine) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Routine, error)
	// Lists routines owned by user, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Routine, error)
	// Replaces stored routine with the same ID
	Update(ctx context.Context, routine *entity.Routine) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	// Empty means the driver default
	SSLMode string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}

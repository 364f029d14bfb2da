package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"housingready/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB is the process-wide store handle. It is opened once at startup,
// handed to the repositories and closed on shutdown.
type DB struct {
	*sql.DB
	Dialect Dialect

	pool *pgxpool.Pool
}

func Connect(ctx context.Context, config *types.Config) (*DB, error) {
	return Open(ctx, config.DatabaseURL)
}

// Open picks the backend from the URL scheme. postgres:// and
// postgresql:// go through pgx, sqlite:// (or a bare path) opens a sqlite
// file, and sqlite://:memory: an in-memory database.
func Open(ctx context.Context, databaseURL string) (*DB, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return connectPostgres(ctx, databaseURL)
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return connectSQLite(ctx, strings.TrimPrefix(databaseURL, "sqlite://"))
	case strings.Contains(databaseURL, "://"):
		return nil, fmt.Errorf("unsupported database url scheme in %q", databaseURL)
	default:
		return connectSQLite(ctx, databaseURL)
	}
}

// OpenInMemory opens an empty sqlite database with the schema applied.
func OpenInMemory(ctx context.Context) (*DB, error) {
	d, err := connectSQLite(ctx, ":memory:")
	if err != nil {
		return nil, err
	}

	if err := d.EnsureSchema(ctx); err != nil {
		_ = d.Close()
		return nil, err
	}

	return d, nil
}

func (d *DB) Close() error {
	err := d.DB.Close()
	if d.pool != nil {
		d.pool.Close()
	}
	return err
}

// Builder returns a squirrel statement builder using the placeholder
// format of the backend.
func (d *DB) Builder() sq.StatementBuilderType {
	if d.Dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return isSQLiteConstraint(err, sqlite3.SQLITE_CONSTRAINT_UNIQUE, "UNIQUE constraint failed")
}

func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	return isSQLiteConstraint(err, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, "FOREIGN KEY constraint failed")
}

// isSQLiteConstraint matches the extended result code, or the primary
// SQLITE_CONSTRAINT code plus message when extended codes are off.
func isSQLiteConstraint(err error, extended int, message string) bool {
	var liteErr *sqlite.Error
	if !errors.As(err, &liteErr) {
		return false
	}

	code := liteErr.Code()
	if code == extended {
		return true
	}

	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), message)
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Store is the shared connection pool plus the dialect it speaks.
type Store struct {
	DB      *sql.DB
	Dialect Dialect
	logger  *slog.Logger
}

// Open connects to the database named by url. The pool is verified with a
// ping but a failed ping is returned alongside a usable Store so callers can
// keep serving and report connectivity per request.
func Open(ctx context.Context, url string, logger *slog.Logger) (*Store, error) {
	dialect, dsn, err := ParseURL(url)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect.Name, err)
	}
	if dialect.Name == SQLite.Name {
		// A single connection keeps an in-memory database alive and
		// serializes writers the way SQLite wants them.
		conn.SetMaxOpenConns(1)
	}

	store := &Store{DB: conn, Dialect: dialect, logger: logger}
	if err := conn.PingContext(ctx); err != nil {
		return store, fmt.Errorf("failed to ping database: %w", err)
	}
	return store, nil
}

// Close releases the pool.
func (s *Store) Close() error {
	return s.DB.Close()
}

type table struct {
	name string
	ddl  string
}

func (s *Store) tables() []table {
	d := s.Dialect
	return []table{
		{"members", `
	CREATE TABLE IF NOT EXISTS members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT DEFAULT 'Member',
		admin BOOLEAN DEFAULT FALSE,
		added_at ` + d.Timestamp + ` DEFAULT ` + d.Now + `
	)`},
		{"weapons", `
	CREATE TABLE IF NOT EXISTS weapons (
		id ` + d.SerialKey + `,
		name TEXT NOT NULL,
		type TEXT,
		owner TEXT,
		notes TEXT,
		created_at ` + d.Timestamp + ` DEFAULT ` + d.Now + `
	)`},
		{"cars", `
	CREATE TABLE IF NOT EXISTS cars (
		id ` + d.SerialKey + `,
		make TEXT NOT NULL,
		model TEXT,
		plate TEXT,
		owner TEXT,
		notes TEXT,
		img TEXT,
		created_at ` + d.Timestamp + ` DEFAULT ` + d.Now + `
	)`},
		{"finance_transactions", `
	CREATE TABLE IF NOT EXISTS finance_transactions (
		id ` + d.SerialKey + `,
		what TEXT NOT NULL,
		amount NUMERIC(12,2) NOT NULL,
		created_at ` + d.Timestamp + ` DEFAULT ` + d.Now + `
	)`},
	}
}

// InitSchema creates the four resource tables if they are missing. A failing
// statement is logged and the remaining tables are still attempted; the
// combined error is returned so the caller decides whether it is fatal.
func (s *Store) InitSchema(ctx context.Context) error {
	var errs []error
	for _, t := range s.tables() {
		if _, err := s.DB.ExecContext(ctx, t.ddl); err != nil {
			s.logger.Error("error creating table", "table", t.name, "error", err)
			errs = append(errs, &QueryError{Op: "create table", Table: t.name, Err: err})
			continue
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.logger.Info("database tables ready", "tables", "members, weapons, cars, finance_transactions")
	return nil
}

// Now returns the store's notion of the current time, formatted by the
// driver. It doubles as a connectivity probe.
func (s *Store) Now(ctx context.Context) (string, error) {
	var now Timestamp
	if err := s.DB.QueryRowContext(ctx, "SELECT "+s.Dialect.Now).Scan(&now); err != nil {
		return "", &QueryError{Op: "select now", Err: err}
	}
	return now.Time.Format(timeLayout), nil
}

func (s *Store) exec(ctx context.Context, op, table, query string, args ...any) (sql.Result, error) {
	res, err := s.DB.ExecContext(ctx, s.Dialect.Rebind(query), args...)
	if err != nil {
		return nil, &QueryError{Op: op, Table: table, Err: err}
	}
	return res, nil
}

func (s *Store) query(ctx context.Context, op, table, query string, args ...any) (*sql.Rows, error) {
	rows, err := s.DB.QueryContext(ctx, s.Dialect.Rebind(query), args...)
	if err != nil {
		return nil, &QueryError{Op: op, Table: table, Err: err}
	}
	return rows, nil
}

func (s *Store) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.DB.QueryRowContext(ctx, s.Dialect.Rebind(query), args...)
}

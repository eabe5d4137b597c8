package db

import (
	"fmt"
	"regexp"
	"strings"
)

// Dialect captures the few places where PostgreSQL and SQLite disagree.
// Statements are written once with $n placeholders and rebound per dialect.
type Dialect struct {
	Name       string
	DriverName string
	// SerialKey is the column definition for an auto-assigned integer id.
	SerialKey string
	// Now is an expression yielding the store's current time.
	Now string
	// Timestamp is the column type used for server-set timestamps.
	Timestamp string
	// NumberedArgs reports whether the driver understands $n natively.
	NumberedArgs bool
}

var (
	Postgres = Dialect{
		Name:         "postgres",
		DriverName:   "pgx",
		SerialKey:    "SERIAL PRIMARY KEY",
		Now:          "NOW()",
		Timestamp:    "TIMESTAMP",
		NumberedArgs: true,
	}

	SQLite = Dialect{
		Name:       "sqlite",
		DriverName: "sqlite3",
		SerialKey:  "INTEGER PRIMARY KEY AUTOINCREMENT",
		Now:        "CURRENT_TIMESTAMP",
		Timestamp:  "TIMESTAMP",
	}
)

var numberedArg = regexp.MustCompile(`\$(\d+)`)

// Rebind rewrites $n placeholders into the dialect's native form.
func (d Dialect) Rebind(query string) string {
	if d.NumberedArgs {
		return query
	}
	return numberedArg.ReplaceAllString(query, "?$1")
}

// ParseURL picks a dialect from a connection string and returns the data
// source name the driver expects.
func ParseURL(url string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return Postgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		return SQLite, strings.TrimPrefix(url, "sqlite://"), nil
	case strings.HasPrefix(url, "file:"), url == ":memory:":
		return SQLite, url, nil
	case url == "":
		return Dialect{}, "", fmt.Errorf("empty database url")
	}
	return Dialect{}, "", fmt.Errorf("unsupported database url scheme: %q", schemeOf(url))
}

func schemeOf(url string) string {
	if i := strings.Index(url, "://"); i >= 0 {
		return url[:i]
	}
	return url
}

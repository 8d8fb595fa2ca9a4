package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect represents the SQL database backend.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
)

const mysqlScheme = "mysql://"

// DetectDialect returns the dialect based on the DSN string.
// "postgres://" and "postgresql://" select PostgreSQL, "mysql://" selects
// MySQL, and anything else is treated as a SQLite file path.
func DetectDialect(dsn string) Dialect {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres
	case strings.HasPrefix(lower, mysqlScheme):
		return DialectMySQL
	default:
		return DialectSQLite
	}
}

// OpenDB opens a database connection for the given DSN.
// For SQLite, it appends WAL mode and busy timeout pragmas.
// For MySQL, the "mysql://" scheme is stripped and the remainder handed to
// the driver (user:pass@tcp(host:3306)/db).
func OpenDB(dsn string) (*sql.DB, Dialect, error) {
	dialect := DetectDialect(dsn)

	switch dialect {
	case DialectPostgres:
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, dialect, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, dialect, fmt.Errorf("ping postgres: %w", err)
		}
		return db, dialect, nil
	case DialectMySQL:
		db, err := sql.Open("mysql", dsn[len(mysqlScheme):])
		if err != nil {
			return nil, dialect, fmt.Errorf("open mysql: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, dialect, fmt.Errorf("ping mysql: %w", err)
		}
		return db, dialect, nil
	default:
		db, err := sql.Open("sqlite", dsn+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
		if err != nil {
			return nil, dialect, fmt.Errorf("open sqlite: %w", err)
		}
		// A single writer avoids SQLITE_BUSY between concurrent handlers.
		db.SetMaxOpenConns(1)
		return db, dialect, nil
	}
}

// Rebind rewrites a query with `?` placeholders to use `$1, $2, ...` for PostgreSQL.
// SQLite and MySQL queries are returned unchanged.
func Rebind(dialect Dialect, query string) string {
	if dialect != DialectPostgres {
		return query
	}

	var out strings.Builder
	n := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			out.WriteByte('$')
			out.WriteString(strconv.Itoa(n))
			n++
		} else {
			out.WriteByte(query[i])
		}
	}
	return out.String()
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quake-bknd/internal/config"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

// New opens the store named by dsn and returns a Bun DB handle.
// postgres:// and postgresql:// URLs select Postgres; anything else is treated as a
// SQLite file path or file: URI.
func New(dsn string, cfg *config.Config) (*bun.DB, error) {
	var db *bun.DB
	if IsPostgres(dsn) {
		db = openPostgres(dsn)
	} else {
		var err error
		db, err = openSQLite(dsn)
		if err != nil {
			return nil, err
		}
	}

	// Optional query logging
	if cfg != nil && cfg.BunDebug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// IsPostgres reports whether dsn points at a Postgres server.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func openPostgres(dsn string) *bun.DB {
	connector := pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(60*time.Second),
		pgdriver.WithDialTimeout(15*time.Second),
		pgdriver.WithReadTimeout(60*time.Second),
		pgdriver.WithWriteTimeout(30*time.Second),
		pgdriver.WithConnParams(map[string]interface{}{
			"statement_timeout":                   "120s",
			"idle_in_transaction_session_timeout": "180s",
		}),
	)

	sqldb := sql.OpenDB(connector)
	sqldb.SetMaxOpenConns(25)
	sqldb.SetMaxIdleConns(10)
	sqldb.SetConnMaxLifetime(5 * time.Minute)
	sqldb.SetConnMaxIdleTime(10 * time.Minute)

	return bun.NewDB(sqldb, pgdialect.New())
}

func openSQLite(dsn string) (*bun.DB, error) {
	dsn, path := sqliteDSN(dsn)
	if path != "" && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database dir: %w", err)
		}
	}

	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	sqldb.SetMaxOpenConns(8)
	sqldb.SetConnMaxIdleTime(10 * time.Minute)

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// sqliteDSN returns a go-sqlite3 DSN with foreign keys and a busy timeout enabled,
// plus the file path it refers to.
func sqliteDSN(dsn string) (string, string) {
	path := strings.TrimPrefix(dsn, "file:")
	query := ""
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path, query = path[:i], path[i+1:]
	}

	params := []string{}
	if query != "" {
		params = append(params, query)
	}
	if !strings.Contains(query, "_foreign_keys") && !strings.Contains(query, "_fk") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(query, "_busy_timeout") {
		params = append(params, "_busy_timeout=5000")
	}

	return "file:" + path + "?" + strings.Join(params, "&"), path
}

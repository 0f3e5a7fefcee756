// Package testutil provides a migrated PostgreSQL database for integration
// tests. Tests are skipped unless TEST_DATABASE_URL is set.
package testutil

import (
	"context"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/lms/internal/app/migrations"
	"github.com/yigit/lms/internal/db"
	schema "github.com/yigit/lms/migrations"
)

// EnvDatabaseURL names the variable holding the test database connection string.
const EnvDatabaseURL = "TEST_DATABASE_URL"

var validSchema = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Tables lists every application table, parents first.
var Tables = []string{"users", "courses", "modules", "enrollments", "assignments", "submissions"}

// NewDB connects to TEST_DATABASE_URL with search_path set to a dedicated
// schema, migrates it and empties every table. Each test package passes its
// own schema name so packages can run in parallel against one database.
func NewDB(tb testing.TB, schemaName string) *db.PostgresDB {
	tb.Helper()

	url := os.Getenv(EnvDatabaseURL)
	if url == "" {
		tb.Skipf("%s not set; skipping database test", EnvDatabaseURL)
	}
	if !validSchema.MatchString(schemaName) {
		tb.Fatalf("invalid schema name %q", schemaName)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgx.Connect(ctx, url)
	if err != nil {
		tb.Fatalf("connect test database: %v", err)
	}
	_, err = admin.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+schemaName)
	_ = admin.Close(ctx)
	if err != nil {
		tb.Fatalf("create schema %s: %v", schemaName, err)
	}

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		tb.Fatalf("parse %s: %v", EnvDatabaseURL, err)
	}
	poolConfig.ConnConfig.RuntimeParams["search_path"] = schemaName
	poolConfig.MaxConns = 8

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		tb.Fatalf("open pool: %v", err)
	}
	tb.Cleanup(pool.Close)

	if _, err := migrations.NewMigrator(pool, zerolog.Nop()).Apply(ctx, schema.FS); err != nil {
		tb.Fatalf("migrate schema %s: %v", schemaName, err)
	}

	database := &db.PostgresDB{Pool: pool}
	Reset(tb, database)
	return database
}

// Reset truncates every table and restarts the id sequences.
func Reset(tb testing.TB, database *db.PostgresDB) {
	tb.Helper()

	stmt := "TRUNCATE " + strings.Join(Tables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := database.Pool.Exec(context.Background(), stmt); err != nil {
		tb.Fatalf("reset tables: %v", err)
	}
}

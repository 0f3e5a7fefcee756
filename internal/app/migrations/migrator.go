package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/db"
)

// Conn is the subset of a pool or connection the migrator needs.
type Conn interface {
	db.DBTX
	db.TxStarter
}

// Migrator applies ordered .sql files and records each version in schema_migrations.
type Migrator struct {
	conn Conn
	log  zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(conn Conn, log zerolog.Logger) *Migrator {
	return &Migrator{conn: conn, log: log.With().Str("component", "migrator").Logger()}
}

func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	_, err := m.conn.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	err := m.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// versionOf extracts the numeric prefix: "001_init.sql" => "001".
func versionOf(name string) string {
	return strings.SplitN(path.Base(name), "_", 2)[0]
}

// Apply runs every not-yet-applied .sql file found at the root of fsys in
// lexical order. Each file and its schema_migrations row share one transaction.
// It returns the versions applied by this call.
func (m *Migrator) Apply(ctx context.Context, fsys fs.FS) ([]string, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	var applied []string
	for _, name := range files {
		version := versionOf(name)

		done, err := m.isMigrationApplied(ctx, version)
		if err != nil {
			return applied, err
		}
		if done {
			m.log.Debug().Str("file", name).Msg("Migration already applied, skipping")
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return applied, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		err = db.RunInTx(ctx, m.conn, func(ctx context.Context, tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(content)); err != nil {
				return fmt.Errorf("migration %s failed: %w", name, err)
			}
			if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", name, err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}

		m.log.Info().Str("file", name).Msg("Migration applied")
		applied = append(applied, version)
	}

	return applied, nil
}

// ApplyDirectory is Apply over a directory on disk.
func (m *Migrator) ApplyDirectory(ctx context.Context, dir string) ([]string, error) {
	return m.Apply(ctx, os.DirFS(dir))
}

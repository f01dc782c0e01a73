package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the schema version this build reads and writes.
// Opening a database that cannot reach it is fatal.
const ExpectedSchemaVersion = 2

// Migration is one forward-only schema step, recorded in PRAGMA user_version.
type Migration struct {
	Description string
	Statements  []string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial catalog schema",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS listings (
				id TEXT PRIMARY KEY,
				position INTEGER NOT NULL,
				type TEXT NOT NULL CHECK (type IN ('House', 'Flat', 'Bungalow')),
				price REAL NOT NULL CHECK (price >= 0),
				bedrooms INTEGER NOT NULL CHECK (bedrooms >= 0),
				postcode TEXT NOT NULL DEFAULT '',
				date_added TEXT NOT NULL,
				short_description TEXT NOT NULL DEFAULT '',
				long_description TEXT NOT NULL DEFAULT '',
				floor_plan TEXT NOT NULL DEFAULT '',
				location TEXT NOT NULL DEFAULT '',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX idx_listings_position ON listings(position)`,
			`CREATE TABLE IF NOT EXISTS listing_images (
				listing_id TEXT NOT NULL,
				position INTEGER NOT NULL,
				ref TEXT NOT NULL,
				PRIMARY KEY (listing_id, position),
				FOREIGN KEY (listing_id) REFERENCES listings(id) ON DELETE CASCADE
			)`,
		},
	},
	{
		Version:     2,
		Description: "Track catalog imports",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS imports (
				id TEXT PRIMARY KEY,
				source TEXT NOT NULL DEFAULT '',
				inserted INTEGER NOT NULL DEFAULT 0,
				updated INTEGER NOT NULL DEFAULT 0,
				imported_at DATETIME NOT NULL
			)`,
			`ALTER TABLE listings ADD COLUMN import_id TEXT REFERENCES imports(id)`,
			`CREATE INDEX idx_imports_imported_at ON imports(imported_at)`,
		},
	},
}

// Migrate brings the schema up to ExpectedSchemaVersion. Each migration runs
// in its own transaction together with its version bump.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if err := s.apply(ctx, m); err != nil {
			return err
		}
		slog.Debug("Applied migration", "version", m.Version, "description", m.Description)
	}

	final, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}
	if final != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, final)
	}
	return nil
}

func (s *SQLiteStorage) schemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

func (s *SQLiteStorage) apply(ctx context.Context, m Migration) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range m.Statements {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", m.Version, err)
		}
	}
	// PRAGMA does not accept bound parameters.
	if _, err = tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
		return fmt.Errorf("failed to set schema version %d: %w", m.Version, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}

package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dulina20231254-glitch/urbannest/internal/catalog"
	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/service"
	"github.com/dulina20231254-glitch/urbannest/internal/storage"
)

// TestDB represents a migrated test database.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a migrated SQLite database in a temp dir. It is closed
// automatically when the test ends.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	db.Seed(testutil.Listings())
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// Seed saves listings in one import and returns its summary.
func (db *TestDB) Seed(listings []model.Listing) *service.ImportSummary {
	db.t.Helper()

	summary, err := db.Storage.SaveListings(context.Background(), listings, service.SaveOptions{Source: "fixture"})
	if err != nil {
		db.t.Fatalf("failed to seed listings: %v", err)
	}
	return summary
}

// NewStore returns an in-memory catalog over the fixture listings.
func NewStore(t *testing.T) *catalog.Store {
	t.Helper()

	store, err := catalog.NewStore(Listings())
	if err != nil {
		t.Fatalf("failed to build fixture store: %v", err)
	}
	return store
}

package corpus

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// setupTestStore creates a file-backed SQLite database and a Store for testing.
// It uses t.Cleanup to ensure resources are released.
func setupTestStore(t testing.TB) (*sql.DB, *Store) {
	t.Helper()
	dbFile := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", dbFile+"?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=-4000")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := SetupSchema(db); err != nil {
		t.Fatalf("failed to set up schema: %v", err)
	}

	s, err := NewStore(db)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(s.Close)

	return db, s
}

// setupTrainedModel inserts a model and trains it on data.
func setupTrainedModel(t *testing.T, s *Store, name string, order int, data string) ModelInfo {
	t.Helper()
	ctx := context.Background()
	model, err := s.InsertModel(ctx, ModelInfo{Name: name, Order: order})
	if err != nil {
		t.Fatalf("setup: InsertModel() failed: %v", err)
	}
	if err := s.Train(ctx, model, strings.NewReader(data)); err != nil {
		t.Fatalf("setup: Train() failed: %v", err)
	}
	return model
}

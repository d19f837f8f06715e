package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/avatar-tools/logscan/internal/store/migrations"
)

// NewDB opens the DuckDB database at path. ":memory:" opens an in-memory
// database.
func NewDB(path string) (*sql.DB, error) {
	dsn := path
	if path == ":memory:" {
		dsn = ""
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	// DuckDB reports write-write conflicts between connections instead of
	// blocking, so writes go through a single connection.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}
	return db, nil
}

// Store provides access to all storage repositories.
type Store struct {
	db       *sql.DB
	settings *SettingsStore
	notes    *NotesStore
}

func NewStore(db *sql.DB) *Store {
	qi := NewQueryInterceptor(db)
	return &Store{
		db:       db,
		settings: NewSettingsStore(qi),
		notes:    NewNotesStore(qi),
	}
}

func (s *Store) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, s.db)
}

func (s *Store) Settings() *SettingsStore {
	return s.settings
}

func (s *Store) Notes() *NotesStore {
	return s.notes
}

func (s *Store) Close() error {
	return s.db.Close()
}

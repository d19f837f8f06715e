// Package store implements the data access layer for logscan.
//
// Log files are never copied into the database; they are read straight from
// the game's chat log folder by internal/logdata. The store only keeps the
// small amount of state the tool owns: the selected folder and avatar, and
// free-form notes per avatar.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├────────────────────────────────┬────────────────────────────────┤
//	│         SettingsStore          │          NotesStore            │
//	│              ▼                 │             ▼                  │
//	│           settings             │           notes                │
//	│          (one row)             │       (one row / avatar)       │
//	├────────────────────────────────┴────────────────────────────────┤
//	│                      QueryInterceptor                           │
//	│                (debug logging of every statement)               │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Tables
//
// Created by migrations under internal/store/migrations/sql/:
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  settings          │  Selected log folder and avatar (id = 1)    │
//	│  notes             │  Notes text per avatar with timestamps      │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// # Initialization Flow
//
//	db, _ := NewDB(path)      ":memory:" for an in-memory database
//	s := NewStore(db)
//	s.Migrate(ctx)            applies pending migrations in order
//
// # Errors
//
// Missing rows are reported as pkg/errors ResourceNotFoundError so the HTTP
// layer can map them to 404:
//
//	Settings().Get   → NewSettingsNotFoundError()
//	Notes().Get      → NewNotesNotFoundError(avatar)
//	Notes().Delete   → NewNotesNotFoundError(avatar) when no row matched
//
// # Concurrency
//
// DuckDB rejects conflicting concurrent writes rather than waiting, so NewDB
// limits the pool to a single connection. Readers must close their rows
// before issuing another statement.
package store

// Package services implements the business logic of logscan.
//
// Services sit between the HTTP handlers or CLI commands and the data
// sources: the chat log folder (through internal/logdata) and the DuckDB
// store.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                Handlers (HTTP) / Commands (CLI)                 │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌──────────────────┬───────────────────────┬──────────────────────┐
//	│   LogService     │    ExportService      │    NotesService      │
//	│  folder, avatar  │  xlsx stats history   │  notes per avatar    │
//	└──────────────────┴───────────────────────┴──────────────────────┘
//	         │                    │                       │
//	         ▼                    │                       ▼
//	┌──────────────────┐          │             ┌──────────────────────┐
//	│ logdata.LogData  │◄─────────┘             │  store.NotesStore    │
//	│ scheduler.Pool   │                        └──────────────────────┘
//	└──────────────────┘
//	         │
//	         ▼
//	┌──────────────────┐
//	│ store.Settings   │
//	└──────────────────┘
//
// # LogService
//
// LogService owns exactly one LogData, and with it one scheduler.Pool. When
// the user selects another folder, SetFolder builds a new LogData, swaps it in
// and closes the old one. Read operations hold a read lock for their whole
// duration, so the old pool is only closed after every request using it has
// returned.
//
//	SetFolder(dir)
//	    ├── os.Stat(dir)           → LogFolderError when missing or a file
//	    ├── logdata.New(dir, n)    → new pool of n workers
//	    ├── swap under write lock
//	    ├── old.Close()            → pool shutdown
//	    └── settings.Save()        → persisted for the next start
//
// Init restores the persisted folder and avatar at startup. A folder passed
// explicitly (flag, environment, config file) wins over the persisted one.
//
// Reads before any folder is selected fail with InvalidArgumentError.
//
// # ExportService
//
// Export collects every stats dump of an avatar and writes a workbook with
// two sheets, one column per dump, most recent first:
//
//	┌──────────┬─────────────────────────────────────────────────────┐
//	│ Sheet    │ Rows                                                │
//	├──────────┼─────────────────────────────────────────────────────┤
//	│ Stats    │ every stat name, numeric values stored as numbers   │
//	│ Resists  │ Air .. Water effective resistance                   │
//	└──────────┴─────────────────────────────────────────────────────┘
//
// # NotesService
//
// Thin wrapper over store.NotesStore that validates the avatar name.
package services

// Package handlers implements the HTTP API layer for logscan.
//
// Handlers parse requests, call the services layer and convert models to
// the api/v1 types. They hold no state of their own.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│            v1.ServerInterfaceWrapper (api/v1)                   │
//	│  - Path and query parameter binding                             │
//	│  - 400 on malformed parameters                                  │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request body validation                                      │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│            LogService │ NotesService │ ExportService            │
//	└─────────────────────────────────────────────────────────────────┘
//
// # API Endpoints
//
// Avatar Endpoints (avatars.go):
//
//	┌────────┬────────────────────────────┬──────────────────────────────────┐
//	│ Method │ Endpoint                   │ Description                      │
//	├────────┼────────────────────────────┼──────────────────────────────────┤
//	│ GET    │ /avatars                   │ Avatars with chat logs           │
//	│ GET    │ /avatars/{name}/stats      │ Stats dump timestamps            │
//	│ GET    │ /avatars/{name}/stats/{ts} │ One stats dump                   │
//	│ GET    │ /avatars/{name}/search     │ Search the chat logs             │
//	│ GET    │ /avatars/{name}/export     │ xlsx stats history               │
//	└────────┴────────────────────────────┴──────────────────────────────────┘
//
// Notes Endpoints (notes.go):
//
//	┌────────┬────────────────────────────┬──────────────────────────────────┐
//	│ Method │ Endpoint                   │ Description                      │
//	├────────┼────────────────────────────┼──────────────────────────────────┤
//	│ GET    │ /notes                     │ Notes of every avatar            │
//	│ GET    │ /avatars/{name}/notes      │ Notes of one avatar              │
//	│ PUT    │ /avatars/{name}/notes      │ Replace notes                    │
//	│ DELETE │ /avatars/{name}/notes      │ Delete notes                     │
//	└────────┴────────────────────────────┴──────────────────────────────────┘
//
// Settings Endpoints (settings.go):
//
//	┌────────┬────────────────────────────┬──────────────────────────────────┐
//	│ Method │ Endpoint                   │ Description                      │
//	├────────┼────────────────────────────┼──────────────────────────────────┤
//	│ GET    │ /settings                  │ Selected folder and avatar       │
//	│ PUT    │ /settings                  │ Select folder and avatar         │
//	└────────┴────────────────────────────┴──────────────────────────────────┘
//
// Portal Endpoints (portals.go):
//
//	┌────────┬────────────────────────────┬──────────────────────────────────┐
//	│ Method │ Endpoint                   │ Description                      │
//	├────────┼────────────────────────────┼──────────────────────────────────┤
//	│ GET    │ /portals?at={unix}         │ Lunar rift and Lost Vale timers  │
//	└────────┴────────────────────────────┴──────────────────────────────────┘
//
// # Stats Handler
//
// GET /avatars/{name}/stats/{ts} takes the UNIX timestamp returned by the
// list endpoint.
//
// Query Parameters:
//
//	┌────────┬────────┬────────────────────────────────────────────────────┐
//	│ Name   │ Type   │ Description                                        │
//	├────────┼────────┼────────────────────────────────────────────────────┤
//	│ filter │ string │ Numeric fields whose name contains it (any case)   │
//	│ view   │ string │ "fields" (default) or "resists"                    │
//	└────────┴────────┴────────────────────────────────────────────────────┘
//
// # Search Handler
//
// GET /avatars/{name}/search?q=<term>[&regex=true]
//
// The response text is the most recent mebibyte of matching lines in
// chronological order; truncated is set when older matches were dropped.
//
// # Error Mapping
//
//	┌──────────────────────────────────────┬──────────┐
//	│ Error                                │ Status   │
//	├──────────────────────────────────────┼──────────┤
//	│ ResourceNotFoundError                │ 404      │
//	│ InvalidArgumentError, LogFolderError │ 400      │
//	│ anything else                        │ 500      │
//	└──────────────────────────────────────┴──────────┘
//
// 500 responses carry a generic message; the cause is logged.
package handlers

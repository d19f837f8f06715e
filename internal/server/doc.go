// Package server provides the HTTP server for logscan.
//
// The server uses the Gin web framework. The API is mounted under /api/v1;
// /health is always served without authentication.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger (request id, request/response logging)          │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Authenticator (only when Auth.Enabled)                 │  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// Development Mode (ServerMode = "dev"):
//   - Gin runs in debug mode and prints its routes
//
// Production Mode (ServerMode = "prod"):
//   - Gin runs in release mode
//
// # Server Lifecycle
//
// Creation:
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    v1.RegisterHandlers(router, handler)
//	})
//
// Starting:
//
//	// Blocks until error or shutdown
//	err := srv.Start(ctx)
//
// Requests inherit ctx, so cancelling it cancels in-flight log scans.
//
// Stopping:
//
//	srv.Stop(ctx)
//
// Performs graceful shutdown, waiting for in-flight requests to complete.
//
// # Middleware
//
// Logger Middleware (middlewares.Logger):
//   - Reuses the X-Request-ID header or generates a uuid, and echoes it back
//   - Logs request start at debug level, completion at info level
//   - Errors logged separately if present
//   - Uses zap structured logging with "http" logger name
//
// Recovery Middleware (ginzap.RecoveryWithZap):
//   - Recovers from panics in handlers
//   - Logs panic details with stack trace
//   - Returns 500 Internal Server Error
//
// Authenticator Middleware (middlewares.Authenticator):
//   - Expects "Authorization: Bearer <token>"
//   - HS256 only, iss must match Auth.Issuer, exp is required
//   - Stores the sub claim under middlewares.SubjectKey
//   - Returns 401 with a JSON error otherwise
//
// Tokens are minted with middlewares.NewToken, exposed by the
// "logscan token" command.
package server

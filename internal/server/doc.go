// Package server provides HTTP routing, middleware, and the sync API handlers.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Sync API
//
// [SyncHandler] serves the three sync endpoints:
//
//	GET  /api/tasks       → {"success":true,"tasks":[...]}
//	POST /api/tasks/sync  → {"success":true,"message":...,"syncedAt":...} or 400 {"success":false,"error":...}
//	GET  /api/health      → {"status":"ok","timestamp":...}
//
// State lives in a [TaskVault], an injected in-memory array of raw JSON
// values. Each sync replaces it wholesale; the server never persists it and a
// restart starts empty. The only request validation is that the tasks field
// of a sync payload is a JSON array — element shape is the client's problem,
// and whatever was pushed is what a later GET returns.
//
// # Middleware
//
// [Logging] (charmbracelet/log), [CORS] (rs/cors, allows any origin), and
// [RateLimit] (golang.org/x/time/rate token bucket).
package server

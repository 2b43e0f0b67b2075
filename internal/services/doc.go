// Package services implements the HTTP client side of the sync protocol.
//
// [SyncService] speaks the server's three-endpoint JSON API:
//
//	POST /api/tasks/sync  push the full local collection (wholesale replace)
//	GET  /api/tasks       read the server's current copy
//	GET  /api/health      liveness probe
//
// All methods are context-first and return errors wrapping the sentinel
// values in internal/shared, so callers can branch with errors.Is without
// parsing message text.
package services

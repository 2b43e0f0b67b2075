// Package repositories persists the local sync journal.
//
// The journal is write-mostly observability: every push to the sync server is
// recorded as a [SyncLogEntry] with its outcome, task count, and timestamp,
// queryable via `tdx sync --history`. It has no effect on sync semantics and
// losing it loses nothing but history.
//
// Entries live in a SQLite database managed by the embedded migrations in
// internal/shared.
package repositories

// package repositories provides the persistence layer for the local sync journal.
package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/tdx/internal/shared"
)

// Journal entry statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// SyncLogEntry records a single client sync attempt.
type SyncLogEntry struct {
	ID        string
	Status    string // "ok" or "error"
	TaskCount int
	Message   string
	CreatedAt string
}

// SyncLogRepository persists sync attempts to the local journal database.
type SyncLogRepository struct {
	db *sql.DB
}

// NewSyncLogRepository creates a new [SyncLogRepository] with the given database connection
func NewSyncLogRepository(db *sql.DB) *SyncLogRepository {
	return &SyncLogRepository{db: db}
}

// Create inserts a new journal entry with a generated id and timestamp.
func (r *SyncLogRepository) Create(entry *SyncLogEntry) error {
	if entry.Status != StatusOK && entry.Status != StatusError {
		return fmt.Errorf("invalid journal status: %q", entry.Status)
	}

	if entry.ID == "" {
		entry.ID = shared.GenerateID()
	}
	if entry.CreatedAt == "" {
		entry.CreatedAt = shared.Timestamp()
	}

	query := `
		INSERT INTO sync_log (id, status, task_count, message, created_at) VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, entry.ID, entry.Status, entry.TaskCount, entry.Message, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return nil
}

// Get retrieves a journal entry by ID.
func (r *SyncLogRepository) Get(id string) (*SyncLogEntry, error) {
	query := `
		SELECT id, status, task_count, message, created_at
		FROM sync_log
		WHERE id = ?
	`

	var entry SyncLogEntry
	err := r.db.QueryRow(query, id).Scan(&entry.ID, &entry.Status, &entry.TaskCount, &entry.Message, &entry.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("journal entry not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entry: %w", err)
	}

	return &entry, nil
}

// Recent returns up to limit journal entries, newest first.
func (r *SyncLogRepository) Recent(limit int) ([]SyncLogEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, status, task_count, message, created_at
		FROM sync_log
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []SyncLogEntry
	for rows.Next() {
		var entry SyncLogEntry
		if err := rows.Scan(&entry.ID, &entry.Status, &entry.TaskCount, &entry.Message, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal: %w", err)
	}

	return entries, nil
}

// Prune deletes all but the newest keep entries and returns the number removed.
func (r *SyncLogRepository) Prune(keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	query := `
		DELETE FROM sync_log
		WHERE id NOT IN (
			SELECT id FROM sync_log ORDER BY created_at DESC, id DESC LIMIT ?
		)
	`

	result, err := r.db.Exec(query, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune journal: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return int(removed), nil
}

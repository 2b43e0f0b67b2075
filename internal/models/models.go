// package models defines the data model for the task list and sync service
package models

import (
	"strings"
)

// Task is a single to-do item.
//
// ID and CreatedAt are assigned at creation and never change. CreatedAt is an
// ISO-8601 (RFC 3339) timestamp; it stays a string end to end so the JSON
// state file and the sync payload round-trip byte for byte.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

// Store defines the client-side task collection contract.
//
// Implementations own persistence: every successful mutation is written
// through to the backing state file. Removal is synchronous; any
// transition-then-remove delay belongs to the presentation layer.
type Store interface {
	Load() []Task                   // Load reads persisted state, yielding an empty collection on any failure
	Tasks() []Task                  // Tasks returns a copy of the current collection
	Add(text string) (Task, error)  // Add appends a new task; trimmed-empty text is rejected
	Toggle(id string) (Task, error) // Toggle flips the completed flag of the task with the given id
	Remove(id string) error         // Remove deletes the task with the given id
}

// SyncReceipt is the server's confirmation of a completed sync.
type SyncReceipt struct {
	Message  string // Confirmation message, includes the synced count
	SyncedAt string // ISO-8601 timestamp reported by the server
	Count    int    // Number of tasks that were pushed
}

// HealthStatus is the server's liveness report.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ValidText reports whether text is usable as task text after trimming.
func ValidText(text string) bool {
	return strings.TrimSpace(text) != ""
}

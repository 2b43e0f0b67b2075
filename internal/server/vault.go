package server

import (
	"encoding/json"
	"sync"
)

// TaskVault holds the server's in-memory task collection.
//
// Tasks are stored as raw JSON so that whatever shape a client pushes is
// returned verbatim; the server validates the outer array and nothing else.
// The vault is the only state the server has and it dies with the process.
//
// Replace is last-write-wins under concurrent syncs; the RWMutex only keeps
// individual reads and writes internally consistent.
type TaskVault struct {
	mu    sync.RWMutex
	tasks []json.RawMessage
}

// NewTaskVault creates an empty vault.
func NewTaskVault() *TaskVault {
	return &TaskVault{tasks: []json.RawMessage{}}
}

// Read returns a copy of the current collection. Never nil.
func (v *TaskVault) Read() []json.RawMessage {
	v.mu.RLock()
	defer v.mu.RUnlock()

	tasks := make([]json.RawMessage, len(v.tasks))
	copy(tasks, v.tasks)
	return tasks
}

// Replace overwrites the entire collection and returns the new count.
func (v *TaskVault) Replace(tasks []json.RawMessage) int {
	if tasks == nil {
		tasks = []json.RawMessage{}
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.tasks = tasks
	return len(v.tasks)
}

// Len returns the current number of stored tasks.
func (v *TaskVault) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.tasks)
}

// package store implements the local, file-backed task collection.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/shared"
)

var _ models.Store = (*FileStore)(nil)

// FileStore implements [models.Store] backed by a single JSON state file.
//
// The file holds the full collection as an ordered JSON array of [models.Task]
// and is rewritten on every successful mutation. Writes are gated on a prior
// Load so that a fresh process never clobbers existing state with an empty
// collection.
type FileStore struct {
	path   string
	logger *log.Logger
	loaded bool
	tasks  []models.Task
}

// NewFileStore creates a FileStore persisting to the given path.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &FileStore{
		path:   path,
		logger: logger,
		tasks:  []models.Task{},
	}
}

// Path returns the state file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the persisted collection from the state file.
//
// A missing, unreadable, or unparsable file yields an empty collection; the
// failure is logged and never surfaced to the caller.
func (s *FileStore) Load() []models.Task {
	s.loaded = true
	s.tasks = []models.Task{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read state file", "path", s.path, "error", err)
		}
		return s.Tasks()
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.logger.Warn("discarding unparsable state file", "path", s.path, "error", err)
		return s.Tasks()
	}

	if tasks != nil {
		s.tasks = tasks
	}

	return s.Tasks()
}

// Tasks returns a copy of the current collection.
func (s *FileStore) Tasks() []models.Task {
	s.ensure()

	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Add appends a new task with a generated id and the current timestamp.
//
// Returns [shared.ErrEmptyText] when text trims to nothing, leaving the
// collection unchanged.
func (s *FileStore) Add(text string) (models.Task, error) {
	s.ensure()

	if !models.ValidText(text) {
		return models.Task{}, shared.ErrEmptyText
	}

	task := models.Task{
		ID:        shared.GenerateID(),
		Text:      strings.TrimSpace(text),
		Completed: false,
		CreatedAt: shared.Timestamp(),
	}

	s.tasks = append(s.tasks, task)

	if err := s.persist(); err != nil {
		return task, err
	}

	return task, nil
}

// Toggle flips the completed flag of the task with the given id.
//
// Returns [shared.ErrTaskNotFound] when no task matches; the collection is
// unchanged in that case.
func (s *FileStore) Toggle(id string) (models.Task, error) {
	s.ensure()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed

			if err := s.persist(); err != nil {
				return s.tasks[i], err
			}

			return s.tasks[i], nil
		}
	}

	return models.Task{}, fmt.Errorf("%w: %s", shared.ErrTaskNotFound, id)
}

// Remove deletes the task with the given id from the collection.
//
// Removal is synchronous; callers wanting a transition delay schedule it
// themselves. Returns [shared.ErrTaskNotFound] when no task matches, which
// makes a repeated removal a no-op at the data layer.
func (s *FileStore) Remove(id string) error {
	s.ensure()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.persist()
		}
	}

	return fmt.Errorf("%w: %s", shared.ErrTaskNotFound, id)
}

// Find resolves a task by full id or unique id prefix.
//
// Returns [shared.ErrAmbiguousID] when the prefix matches more than one task.
func (s *FileStore) Find(idOrPrefix string) (models.Task, error) {
	s.ensure()

	var matches []models.Task
	for _, task := range s.tasks {
		if task.ID == idOrPrefix {
			return task, nil
		}
		if strings.HasPrefix(task.ID, idOrPrefix) {
			matches = append(matches, task)
		}
	}

	switch len(matches) {
	case 0:
		return models.Task{}, fmt.Errorf("%w: %s", shared.ErrTaskNotFound, idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return models.Task{}, fmt.Errorf("%w: %s matches %d tasks", shared.ErrAmbiguousID, idOrPrefix, len(matches))
	}
}

// ensure lazily loads persisted state before the first mutation or read.
func (s *FileStore) ensure() {
	if !s.loaded {
		s.Load()
	}
}

// persist writes the full collection back to the state file.
//
// Skipped until the initial load has run, so partial startup never overwrites
// stored state.
func (s *FileStore) persist() error {
	if !s.loaded {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

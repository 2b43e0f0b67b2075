package store

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/shared"
)

// newTestStore creates a FileStore over a throwaway state file
func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	return NewFileStore(path, shared.NewLogger(io.Discard))
}

func TestFileStore(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		t.Run("appends a task with generated fields", func(t *testing.T) {
			s := newTestStore(t)
			s.Load()

			task, err := s.Add("Buy milk")
			if err != nil {
				t.Fatalf("failed to add task: %v", err)
			}

			if task.ID == "" {
				t.Error("expected non-empty id")
			}
			if task.Text != "Buy milk" {
				t.Errorf("expected text 'Buy milk', got %q", task.Text)
			}
			if task.Completed {
				t.Error("expected new task to be open")
			}
			if task.CreatedAt == "" {
				t.Error("expected createdAt to be set")
			}

			if got := len(s.Tasks()); got != 1 {
				t.Errorf("expected 1 task, got %d", got)
			}
		})

		t.Run("rejects empty text", func(t *testing.T) {
			s := newTestStore(t)
			s.Load()

			for _, text := range []string{"", "   ", "\t\n"} {
				if _, err := s.Add(text); !errors.Is(err, shared.ErrEmptyText) {
					t.Errorf("Add(%q): expected ErrEmptyText, got %v", text, err)
				}
			}

			if got := len(s.Tasks()); got != 0 {
				t.Errorf("expected collection unchanged, got %d tasks", got)
			}
		})

		t.Run("trims surrounding whitespace", func(t *testing.T) {
			s := newTestStore(t)
			s.Load()

			task, err := s.Add("  walk the dog  ")
			if err != nil {
				t.Fatalf("failed to add task: %v", err)
			}
			if task.Text != "walk the dog" {
				t.Errorf("expected trimmed text, got %q", task.Text)
			}
		})

		t.Run("generates unique ids", func(t *testing.T) {
			s := newTestStore(t)
			s.Load()

			seen := map[string]bool{}
			for i := 0; i < 50; i++ {
				task, err := s.Add("task")
				if err != nil {
					t.Fatalf("failed to add task: %v", err)
				}
				if seen[task.ID] {
					t.Fatalf("duplicate id %s", task.ID)
				}
				seen[task.ID] = true
			}
		})
	})

	t.Run("Toggle", func(t *testing.T) {
		t.Run("twice returns completed to original value", func(t *testing.T) {
			s := newTestStore(t)
			s.Load()

			task, _ := s.Add("Buy milk")

			toggled, err := s.Toggle(task.ID)
			if err != nil {
				t.Fatalf("failed to toggle: %v", err)
			}
			if !toggled.Completed {
				t.Error("expected task completed after first toggle")
			}

			toggled, err = s.Toggle(task.ID)
			if err != nil {
				t.Fatalf("failed to toggle: %v", err)
			}
			if toggled.Completed {
				t.Error("expected task open after second toggle")
			}
		})

		t.Run("unknown id is a no-op", func(t *testing.T) {
			s := newTestStore(t)
			s.Load()
			s.Add("Buy milk")

			before := s.Tasks()
			if _, err := s.Toggle("nope"); !errors.Is(err, shared.ErrTaskNotFound) {
				t.Errorf("expected ErrTaskNotFound, got %v", err)
			}
			if !reflect.DeepEqual(before, s.Tasks()) {
				t.Error("expected collection unchanged")
			}
		})
	})

	t.Run("Remove", func(t *testing.T) {
		t.Run("deletes and repeat is a no-op", func(t *testing.T) {
			s := newTestStore(t)
			s.Load()

			task, _ := s.Add("Buy milk")
			keep, _ := s.Add("Walk dog")

			if err := s.Remove(task.ID); err != nil {
				t.Fatalf("failed to remove: %v", err)
			}

			tasks := s.Tasks()
			if len(tasks) != 1 || tasks[0].ID != keep.ID {
				t.Errorf("expected only %s to remain, got %v", keep.ID, tasks)
			}

			if err := s.Remove(task.ID); !errors.Is(err, shared.ErrTaskNotFound) {
				t.Errorf("expected ErrTaskNotFound on repeat removal, got %v", err)
			}
			if got := len(s.Tasks()); got != 1 {
				t.Errorf("expected collection unchanged after repeat removal, got %d", got)
			}
		})
	})

	t.Run("Find", func(t *testing.T) {
		s := newTestStore(t)
		s.Load()
		task, _ := s.Add("Buy milk")

		t.Run("by full id", func(t *testing.T) {
			found, err := s.Find(task.ID)
			if err != nil {
				t.Fatalf("failed to find: %v", err)
			}
			if found.ID != task.ID {
				t.Errorf("expected %s, got %s", task.ID, found.ID)
			}
		})

		t.Run("by unique prefix", func(t *testing.T) {
			found, err := s.Find(task.ID[:8])
			if err != nil {
				t.Fatalf("failed to find by prefix: %v", err)
			}
			if found.ID != task.ID {
				t.Errorf("expected %s, got %s", task.ID, found.ID)
			}
		})

		t.Run("unknown prefix", func(t *testing.T) {
			if _, err := s.Find("zzzzzzzz"); !errors.Is(err, shared.ErrTaskNotFound) {
				t.Errorf("expected ErrTaskNotFound, got %v", err)
			}
		})
	})

	t.Run("Persistence", func(t *testing.T) {
		t.Run("round-trips through the state file", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			logger := shared.NewLogger(io.Discard)

			s := NewFileStore(path, logger)
			s.Load()
			s.Add("Buy milk")
			s.Add("Walk dog")
			s.Toggle(s.Tasks()[0].ID)
			want := s.Tasks()

			reopened := NewFileStore(path, logger)
			got := reopened.Load()

			if !reflect.DeepEqual(want, got) {
				t.Errorf("round trip mismatch:\nwant %v\ngot  %v", want, got)
			}
		})

		t.Run("missing file yields empty collection", func(t *testing.T) {
			s := newTestStore(t)
			if got := s.Load(); len(got) != 0 {
				t.Errorf("expected empty collection, got %v", got)
			}
		})

		t.Run("unparsable file yields empty collection", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
				t.Fatalf("failed to write corrupt state: %v", err)
			}

			s := NewFileStore(path, shared.NewLogger(io.Discard))
			if got := s.Load(); len(got) != 0 {
				t.Errorf("expected empty collection, got %v", got)
			}
		})

		t.Run("existing state survives a mutation", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			logger := shared.NewLogger(io.Discard)

			seed := NewFileStore(path, logger)
			seed.Load()
			kept, _ := seed.Add("already here")

			s := NewFileStore(path, logger)
			s.Add("new task") // implicit load happens first

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read state file: %v", err)
			}

			var tasks []models.Task
			if err := json.Unmarshal(data, &tasks); err != nil {
				t.Fatalf("failed to parse state file: %v", err)
			}

			if len(tasks) != 2 {
				t.Fatalf("expected 2 persisted tasks, got %d", len(tasks))
			}
			if tasks[0].ID != kept.ID {
				t.Errorf("expected earlier task to survive, got %v", tasks)
			}
		})
	})
}

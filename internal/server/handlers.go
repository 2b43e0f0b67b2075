package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tdx/internal/shared"
)

// SyncHandler serves the task sync API. Implements the [Handler] interface
// for registration with a [Router].
type SyncHandler struct {
	vault  *TaskVault
	logger *log.Logger
}

// NewSyncHandler creates a SyncHandler over the given vault.
func NewSyncHandler(vault *TaskVault, logger *log.Logger) *SyncHandler {
	if vault == nil {
		vault = NewTaskVault()
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &SyncHandler{vault: vault, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *SyncHandler) Routes() []string {
	return []string{"/api/tasks", "/api/tasks/sync", "/api/health"}
}

// ServeHTTP dispatches to the endpoint handlers by path and method.
func (h *SyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/tasks":
		if r.Method != http.MethodGet {
			h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.listTasks(w, r)
	case "/api/tasks/sync":
		if r.Method != http.MethodPost {
			h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.syncTasks(w, r)
	case "/api/health":
		if r.Method != http.MethodGet {
			h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.health(w, r)
	default:
		h.writeError(w, http.StatusNotFound, "not found")
	}
}

// listTasks returns the vault's collection verbatim.
func (h *SyncHandler) listTasks(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"tasks":   h.vault.Read(),
	})
}

// syncPayload is the expected sync request body. Tasks stays raw so the outer
// array can be validated without constraining element shape.
type syncPayload struct {
	Tasks json.RawMessage `json:"tasks"`
}

// syncTasks replaces the vault's collection wholesale.
//
// The only validation is that the tasks field is a JSON array; individual
// elements are stored as-is. A rejected payload leaves the previous
// collection untouched.
func (h *SyncHandler) syncTasks(w http.ResponseWriter, r *http.Request) {
	var payload syncPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(payload.Tasks) == 0 {
		h.writeError(w, http.StatusBadRequest, "tasks must be an array")
		return
	}

	var tasks []json.RawMessage
	if err := json.Unmarshal(payload.Tasks, &tasks); err != nil {
		h.writeError(w, http.StatusBadRequest, "tasks must be an array")
		return
	}

	// json null unmarshals into a nil slice without error
	if tasks == nil {
		h.writeError(w, http.StatusBadRequest, "tasks must be an array")
		return
	}

	count := h.vault.Replace(tasks)
	h.logger.Info("collection replaced", "count", count)

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  fmt.Sprintf("synced %d tasks", count),
		"syncedAt": shared.Timestamp(),
	})
}

// health reports liveness with the current timestamp.
func (h *SyncHandler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": shared.Timestamp(),
	})
}

func (h *SyncHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *SyncHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}

// package tasks implements sync orchestration between the local store and the server.
//
// The core abstraction is [Engine], which reads the full local collection,
// pushes it through a [Syncer], and journals the outcome. The push itself is
// fire-and-forget from the store's perspective: nothing the server says ever
// mutates local state.
package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/repositories"
	"github.com/desertthunder/tdx/internal/shared"
)

// Syncer pushes a full task collection to the sync server.
//
// Satisfied by [services.SyncService]; test doubles live in internal/testing.
type Syncer interface {
	Push(ctx context.Context, tasks []models.Task) (*models.SyncReceipt, error)
}

// Engine orchestrates sync pushes and records each attempt in the journal.
type Engine struct {
	store   models.Store
	service Syncer
	journal *repositories.SyncLogRepository
	logger  *log.Logger
}

// NewEngine creates an Engine. The journal may be nil, in which case attempts
// are not recorded.
func NewEngine(store models.Store, service Syncer, journal *repositories.SyncLogRepository, logger *log.Logger) *Engine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Engine{
		store:   store,
		service: service,
		journal: journal,
		logger:  logger,
	}
}

// Push sends the current local collection to the server.
func (e *Engine) Push(ctx context.Context) (*models.SyncReceipt, error) {
	return e.PushTasks(ctx, e.store.Tasks())
}

// PushTasks sends the given snapshot of the collection to the server.
//
// The store itself is never touched here, so callers running the push off the
// main goroutine snapshot first and pass the slice in. The attempt is
// journaled whether it succeeds or fails; journal write failures are logged
// and swallowed so observability never breaks the sync itself.
func (e *Engine) PushTasks(ctx context.Context, tasks []models.Task) (*models.SyncReceipt, error) {
	if e.service == nil {
		return nil, fmt.Errorf("%w: sync service not configured", shared.ErrServiceUnavailable)
	}

	receipt, err := e.service.Push(ctx, tasks)
	if err != nil {
		e.record(repositories.StatusError, len(tasks), err.Error())
		return nil, err
	}

	e.record(repositories.StatusOK, receipt.Count, receipt.Message)
	e.logger.Info("sync complete", "count", receipt.Count, "syncedAt", receipt.SyncedAt)

	return receipt, nil
}

// History returns up to limit journal entries, newest first.
func (e *Engine) History(limit int) ([]repositories.SyncLogEntry, error) {
	if e.journal == nil {
		return nil, errors.New("sync journal not configured")
	}
	return e.journal.Recent(limit)
}

// PruneHistory deletes all but the newest keep journal entries and returns
// the number removed.
func (e *Engine) PruneHistory(keep int) (int, error) {
	if e.journal == nil {
		return 0, errors.New("sync journal not configured")
	}
	return e.journal.Prune(keep)
}

func (e *Engine) record(status string, count int, message string) {
	if e.journal == nil {
		return
	}

	entry := repositories.SyncLogEntry{
		Status:    status,
		TaskCount: count,
		Message:   message,
	}
	if err := e.journal.Create(&entry); err != nil {
		e.logger.Warn("failed to record sync attempt", "error", err)
	}
}

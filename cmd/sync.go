package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/tdx/internal/repositories"
	"github.com/urfave/cli/v3"
)

// Sync pushes the full local collection to the sync server, shows the
// journal with --history, or trims it with --prune.
func (r *Runner) Sync(ctx context.Context, cmd *cli.Command) error {
	engine, closeJournal := r.engine()
	defer closeJournal()

	if keep := cmd.Int("prune"); keep > 0 {
		removed, err := engine.PruneHistory(keep)
		if err != nil {
			return err
		}
		return r.writePlain("pruned %d journal entries\n", removed)
	}

	if cmd.Bool("history") {
		entries, err := engine.History(cmd.Int("limit"))
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			return r.writePlain("no sync attempts recorded\n")
		}

		for _, entry := range entries {
			mark := "✓"
			if entry.Status == repositories.StatusError {
				mark = "✗"
			}
			r.writePlain("%s  %s  %d tasks  %s\n", entry.CreatedAt, mark, entry.TaskCount, entry.Message)
		}
		return nil
	}

	r.logger.Info("syncing", "server", r.sync.BaseURL())

	receipt, err := engine.Push(ctx)
	if err != nil {
		return err
	}

	return r.writePlain("%s (syncedAt %s)\n", receipt.Message, receipt.SyncedAt)
}

// Fetch prints the server's current collection.
func (r *Runner) Fetch(ctx context.Context, cmd *cli.Command) error {
	pretty := cmd.Bool("pretty")

	tasks, err := r.sync.Fetch(ctx)
	if err != nil {
		return err
	}

	return r.writeJSON(tasks, pretty)
}

// Health probes the server's health endpoint.
func (r *Runner) Health(ctx context.Context, cmd *cli.Command) error {
	status, err := r.sync.Health(ctx)
	if err != nil {
		return err
	}

	if status.Status != "ok" {
		return fmt.Errorf("server reported status %q at %s", status.Status, status.Timestamp)
	}

	return r.writePlain("ok (%s)\n", status.Timestamp)
}

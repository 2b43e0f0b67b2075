package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/tdx/internal/formatter"
	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Add appends a new task to the local collection.
func (r *Runner) Add(ctx context.Context, cmd *cli.Command) error {
	text := cmd.StringArg("text")

	task, err := r.store.Add(text)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	r.logger.Info("task added", "id", task.ID)
	return r.writePlain("%s  %s\n", formatter.ShortID(task.ID), task.Text)
}

// List prints the local collection in the requested format.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	format := cmd.String("format")
	onlyDone := cmd.Bool("done")
	onlyOpen := cmd.Bool("open")

	tasks := r.store.Tasks()

	if cmd.Bool("all") {
		onlyDone, onlyOpen = false, false
	}

	if onlyDone || onlyOpen {
		filtered := make([]models.Task, 0, len(tasks))
		for _, task := range tasks {
			if task.Completed == onlyDone {
				filtered = append(filtered, task)
			}
		}
		tasks = filtered
	}

	if useJSON {
		return r.writeJSON(tasks, pretty)
	}

	switch format {
	case "csv":
		out, err := formatter.ExportToCSV(tasks)
		if err != nil {
			return err
		}
		return r.writePlain("%s", out)
	case "md", "markdown":
		return r.writePlain("%s", formatter.ExportToMarkdown(tasks, "Tasks"))
	case "text", "":
		return r.writePlain("%s", formatter.ExportToText(tasks))
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// Toggle flips the completed flag of the task matching the given id prefix.
func (r *Runner) Toggle(ctx context.Context, cmd *cli.Command) error {
	idArg := cmd.StringArg("id")
	if idArg == "" {
		return fmt.Errorf("%w: task id", shared.ErrMissingArgument)
	}

	task, err := r.store.Find(idArg)
	if err != nil {
		return err
	}

	task, err = r.store.Toggle(task.ID)
	if err != nil {
		return err
	}

	state := "open"
	if task.Completed {
		state = "done"
	}

	r.logger.Info("task toggled", "id", task.ID, "completed", task.Completed)
	return r.writePlain("%s  %s  [%s]\n", formatter.ShortID(task.ID), task.Text, state)
}

// Remove deletes the task matching the given id prefix.
//
// Removal at the CLI is immediate; the transition delay is a TUI concern.
func (r *Runner) Remove(ctx context.Context, cmd *cli.Command) error {
	idArg := cmd.StringArg("id")
	if idArg == "" {
		return fmt.Errorf("%w: task id", shared.ErrMissingArgument)
	}

	task, err := r.store.Find(idArg)
	if err != nil {
		return err
	}

	if err := r.store.Remove(task.ID); err != nil {
		return err
	}

	r.logger.Info("task removed", "id", task.ID)
	return r.writePlain("removed %s  %s\n", formatter.ShortID(task.ID), task.Text)
}

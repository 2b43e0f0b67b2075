package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/tdx/internal/formatter"
	"github.com/desertthunder/tdx/internal/models"
)

var _ list.Item = taskItem{}

// taskItem wraps [models.Task] to implement [list.Item].
//
// doomed marks a task whose removal is scheduled but still inside the
// transition delay; the task is gone from the store only after the delay
// fires.
type taskItem struct {
	task   models.Task
	doomed bool
}

func (i taskItem) FilterValue() string { return i.task.Text }

func (i taskItem) Title() string {
	switch {
	case i.doomed:
		return styles.doomed.Render(i.task.Text)
	case i.task.Completed:
		return styles.done.Render(i.task.Text)
	default:
		return i.task.Text
	}
}

func (i taskItem) Description() string {
	if i.doomed {
		return "removing…"
	}

	state := "open"
	if i.task.Completed {
		state = "done"
	}
	return fmt.Sprintf("%s • %s", formatter.ShortID(i.task.ID), state)
}

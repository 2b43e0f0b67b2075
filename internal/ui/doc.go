// Package ui implements the interactive terminal UI for the task list.
//
// The TUI is a single bubbletea [Model]: a bubbles list of tasks with an
// attached text input for entry. Mutations go straight through the injected
// [models.Store]; the store persists synchronously and the view re-reads it
// after every change.
//
// Two behaviors are deliberately presentation-only:
//
//   - Deletion strikes the task out and removes it from the store only after
//     [RemoveDelay], via a tea.Tick command. The store contract itself is
//     synchronous removal.
//   - The sync indicator runs idle → syncing → success|error → idle, with
//     terminal states reverting after [SuccessFlash] / [ErrorFlash]. The sync
//     key is inert while a request is in flight and an in-flight request
//     cannot be cancelled.
package ui

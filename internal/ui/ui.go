package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/shared"
	"github.com/desertthunder/tdx/internal/tasks"
)

// Presentation timing. RemoveDelay is the strike-then-remove transition for
// deleted tasks; the flash intervals are how long the sync indicator shows a
// terminal state before reverting to idle.
const (
	RemoveDelay  = 300 * time.Millisecond
	SuccessFlash = 2500 * time.Millisecond
	ErrorFlash   = 3 * time.Second
)

// SyncState tracks the sync indicator: idle → syncing → success|error → idle.
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncInFlight
	SyncSuccess
	SyncError
)

// Model represents the TUI application state.
type Model struct {
	store   models.Store
	engine  *tasks.Engine
	input   textinput.Model
	list    list.Model
	help    help.Model
	keys    keyMap
	adding  bool
	doomed  map[string]bool
	sync    SyncState
	syncMsg string
	width   int
	height  int
}

// NewModel creates the TUI model over an already-loaded store.
func NewModel(store models.Store, engine *tasks.Engine) Model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 256

	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "tdx"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	m := Model{
		store:  store,
		engine: engine,
		input:  input,
		list:   l,
		help:   help.New(),
		keys:   newKeyMap(),
		doomed: map[string]bool{},
	}
	m.refresh()

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-6)
		return m, nil

	case removeTaskMsg:
		// Not-found is fine: the task may already be gone.
		if err := m.store.Remove(msg.id); err != nil && !errors.Is(err, shared.ErrTaskNotFound) {
			m.syncMsg = err.Error()
		}
		delete(m.doomed, msg.id)
		m.refresh()
		return m, nil

	case syncDoneMsg:
		m.sync = SyncSuccess
		m.syncMsg = msg.receipt.Message
		return m, tea.Tick(SuccessFlash, func(time.Time) tea.Msg { return syncRevertMsg{} })

	case syncFailedMsg:
		m.sync = SyncError
		m.syncMsg = msg.err.Error()
		return m, tea.Tick(ErrorFlash, func(time.Time) tea.Msg { return syncRevertMsg{} })

	case syncRevertMsg:
		if m.sync == SyncSuccess || m.sync == SyncError {
			m.sync = SyncIdle
			m.syncMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateAdding handles keys while the entry field is focused.
func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if _, err := m.store.Add(m.input.Value()); err != nil && !errors.Is(err, shared.ErrEmptyText) {
			m.syncMsg = err.Error()
		}
		// Clear and keep focus so entry can continue
		m.input.Reset()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateList handles keys in the list view.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.add):
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.toggle):
		if item, ok := m.list.SelectedItem().(taskItem); ok && !item.doomed {
			if _, err := m.store.Toggle(item.task.ID); err != nil && !errors.Is(err, shared.ErrTaskNotFound) {
				m.syncMsg = err.Error()
			}
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.remove):
		if item, ok := m.list.SelectedItem().(taskItem); ok && !item.doomed {
			id := item.task.ID
			m.doomed[id] = true
			m.refresh()
			return m, tea.Tick(RemoveDelay, func(time.Time) tea.Msg { return removeTaskMsg{id: id} })
		}
		return m, nil

	case key.Matches(msg, m.keys.sync):
		// One outstanding request at a time; the trigger is inert while syncing
		if m.sync == SyncInFlight {
			return m, nil
		}
		m.sync = SyncInFlight
		m.syncMsg = ""
		return m, m.syncCmd(m.store.Tasks())
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	view := styles.title.Render("tdx — tasks") + "\n"

	if m.adding {
		view += m.input.View() + "\n\n"
	}

	view += m.list.View() + "\n"
	view += m.statusLine() + "\n"
	view += m.help.View(m.keys)

	return view
}

// statusLine renders the sync indicator.
func (m Model) statusLine() string {
	switch m.sync {
	case SyncInFlight:
		return styles.warn.Render("syncing…")
	case SyncSuccess:
		return styles.ok.Render(fmt.Sprintf("✓ %s", m.syncMsg))
	case SyncError:
		return styles.err.Render(fmt.Sprintf("✗ %s", m.syncMsg))
	default:
		return styles.help.Render("press s to sync")
	}
}

// syncCmd runs the push off the update loop and reports back as a message.
//
// It takes a snapshot of the collection, captured while Update still owns the
// store; the command goroutine must never touch the store itself.
func (m Model) syncCmd(tasks []models.Task) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		receipt, err := engine.PushTasks(context.Background(), tasks)
		if err != nil {
			return syncFailedMsg{err: err}
		}
		return syncDoneMsg{receipt: receipt}
	}
}

// refresh rebuilds the list items from the store, preserving doomed marks.
func (m *Model) refresh() {
	tasks := m.store.Tasks()

	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, taskItem{task: task, doomed: m.doomed[task.ID]})
	}

	m.list.SetItems(items)
}

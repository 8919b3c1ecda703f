// Package tui implements an interactive terminal UI for browsing boards.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/antopolskiy/cardboard-md/internal/board"
	"github.com/antopolskiy/cardboard-md/internal/date"
	"github.com/antopolskiy/cardboard-md/internal/task"
)

// view represents the current screen state.
type view int

const (
	viewBoard view = iota
	viewHelp
)

const defaultColWidth = 30

// ReloadMsg tells the model which note files changed on disk.
type ReloadMsg struct {
	Changed []string
}

// errMsg carries an asynchronous error into the model.
type errMsg struct {
	err error
}

// keyMap defines the board view key bindings.
type keyMap struct {
	NextBoard key.Binding
	PrevBoard key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	NextBoard: key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab/]", "next board")),
	PrevBoard: key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("shift+tab/[", "previous board")),
	Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous column")),
	Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next column")),
	Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "card up")),
	Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "card down")),
	Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload all notes")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the top-level bubbletea model: a card browser over a board set.
type Model struct {
	set      board.Set
	notesDir string

	columns   []board.Column
	activeCol int
	activeRow int

	view   view
	width  int
	height int
	err    error

	now func() time.Time // clock for day bucketing; defaults to time.Now
}

// New creates a Model over the given board set. notesDir is re-read on a
// full reload.
func New(set board.Set, notesDir string) *Model {
	m := &Model{set: set, notesDir: notesDir, now: time.Now}
	m.refresh()
	return m
}

// SetNow overrides the clock used for due-date bucketing (for testing).
func (m *Model) SetNow(fn func() time.Time) {
	m.now = fn
	m.refresh()
}

// Set returns the model's current board set.
func (m *Model) Set() board.Set {
	return m.set
}

func (m *Model) today() date.Day {
	return date.FromTime(m.now())
}

// refresh recomputes the selected board's columns and clamps the cursor.
func (m *Model) refresh() {
	view, ok := m.set.CurrentView(m.today())
	if !ok {
		m.columns = nil
		m.activeCol, m.activeRow = 0, 0
		return
	}
	m.columns = view.Columns
	if m.activeCol >= len(m.columns) {
		m.activeCol = len(m.columns) - 1
	}
	if m.activeCol < 0 {
		m.activeCol = 0
	}
	m.clampRow()
}

func (m *Model) clampRow() {
	n := 0
	if m.activeCol < len(m.columns) {
		n = len(m.columns[m.activeCol].Tasks)
	}
	if m.activeRow >= n {
		m.activeRow = n - 1
	}
	if m.activeRow < 0 {
		m.activeRow = 0
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case ReloadMsg:
		m.applyReload(msg.Changed)
		return m, nil
	case errMsg:
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

// applyReload re-parses only the changed documents and swaps the updated
// collection into the board set, selection untouched.
func (m *Model) applyReload(changed []string) {
	tasks := m.set.Tasks()
	for _, path := range changed {
		fresh, err := task.ReadFile(path)
		if err != nil {
			m.err = err
			continue
		}
		tasks = tasks.ReplaceForFile(path, fresh)
	}
	m.set = m.set.WithTasks(tasks)
	m.refresh()
}

// reloadAll re-reads the whole notes directory.
func (m *Model) reloadAll() {
	tasks, err := task.ReadAll(m.notesDir)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.set = m.set.WithTasks(tasks)
	m.refresh()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view == viewHelp {
		m.view = viewBoard
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.view = viewHelp
	case key.Matches(msg, keys.NextBoard):
		m.set = m.set.Next()
		m.activeCol, m.activeRow = 0, 0
		m.refresh()
	case key.Matches(msg, keys.PrevBoard):
		m.set = m.set.Prev()
		m.activeCol, m.activeRow = 0, 0
		m.refresh()
	case key.Matches(msg, keys.Left):
		if m.activeCol > 0 {
			m.activeCol--
			m.clampRow()
		}
	case key.Matches(msg, keys.Right):
		if m.activeCol < len(m.columns)-1 {
			m.activeCol++
			m.clampRow()
		}
	case key.Matches(msg, keys.Down):
		if m.activeCol < len(m.columns) && m.activeRow < len(m.columns[m.activeCol].Tasks)-1 {
			m.activeRow++
		}
	case key.Matches(msg, keys.Up):
		if m.activeRow > 0 {
			m.activeRow--
		}
	case key.Matches(msg, keys.Reload):
		m.reloadAll()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.view == viewHelp {
		return m.viewHelp()
	}
	return m.viewBoard()
}

var (
	activeTabStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).Background(lipgloss.Color("62")).
			Padding(0, 1)
	tabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1)

	columnHeaderStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("252")).Padding(0, 1)
	activeColumnHeaderStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("229")).Background(lipgloss.Color("62")).
				Padding(0, 1)

	cardStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeCardStyle = lipgloss.NewStyle().Padding(0, 1).
			Foreground(lipgloss.Color("229")).Background(lipgloss.Color("62"))

	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	statusBarText = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m *Model) viewBoard() string {
	if m.set.Len() == 0 {
		return "No boards configured."
	}

	tabs := m.renderTabs()
	colWidth := m.columnWidth()

	rendered := make([]string, len(m.columns))
	for i, col := range m.columns {
		rendered[i] = m.renderColumn(i, col, colWidth)
	}
	boardView := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	return lipgloss.JoinVertical(lipgloss.Left, tabs, boardView, "", m.renderStatusBar())
}

func (m *Model) renderTabs() string {
	selected, _ := m.set.Index()
	parts := make([]string, 0, m.set.Len())
	for i, title := range m.set.Titles() {
		if i == selected {
			parts = append(parts, activeTabStyle.Render(title))
		} else {
			parts = append(parts, tabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) columnWidth() int {
	if m.width == 0 || len(m.columns) == 0 {
		return defaultColWidth
	}
	w := m.width / len(m.columns)
	const maxColWidth = 50
	if w > maxColWidth {
		w = maxColWidth
	}
	return w
}

func (m *Model) renderColumn(colIdx int, col board.Column, width int) string {
	headerText := truncate(fmt.Sprintf("%s (%d)", col.Label, len(col.Tasks)), width-2)

	var header string
	if colIdx == m.activeCol {
		header = activeColumnHeaderStyle.Width(width).Render(headerText)
	} else {
		header = columnHeaderStyle.Width(width).Render(headerText)
	}

	parts := []string{header}
	if len(col.Tasks) == 0 {
		parts = append(parts, dimStyle.Width(width).Render(" (empty)"))
	}
	for rowIdx, t := range col.Tasks {
		parts = append(parts, m.renderCard(t, width, colIdx == m.activeCol && rowIdx == m.activeRow))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderCard(t *task.Task, width int, active bool) string {
	text := t.DisplayTitle
	if t.Due != nil {
		text += " @" + t.Due.String()
	}
	text = truncate(text, width-2)
	if active {
		return activeCardStyle.Width(width).Render(text)
	}
	return cardStyle.Width(width).Render(text)
}

func (m *Model) renderStatusBar() string {
	if m.err != nil {
		return errorStyle.Render("error: " + m.err.Error())
	}
	idx, _ := m.set.Index()
	bar := fmt.Sprintf("board %d/%d | tab: switch | ?: help | q: quit",
		idx+1, m.set.Len())
	return statusBarText.Render(bar)
}

func (m *Model) viewHelp() string {
	bindings := []key.Binding{
		keys.NextBoard, keys.PrevBoard,
		keys.Left, keys.Right, keys.Up, keys.Down,
		keys.Reload, keys.Help, keys.Quit,
	}
	out := "Key bindings\n\n"
	for _, b := range bindings {
		out += fmt.Sprintf("  %-14s %s\n", b.Help().Key, b.Help().Desc)
	}
	out += "\nPress any key to return."
	return out
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

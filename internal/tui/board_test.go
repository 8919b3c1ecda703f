package tui_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/antopolskiy/cardboard-md/internal/board"
	"github.com/antopolskiy/cardboard-md/internal/task"
	"github.com/antopolskiy/cardboard-md/internal/tui"
)

func init() {
	// Strip all ANSI codes so view assertions are plain text.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func testSet(tasks task.Collection) board.Set {
	cfgs := []board.Config{
		board.DateConfig{BoardTitle: "Dates", IncludeUndated: true},
		board.TagConfig{
			BoardTitle: "Work",
			Columns:    []board.TagColumn{{Tag: "work", Label: "Work"}},
		},
	}
	return board.NewSet(cfgs, tasks)
}

func newModel(t *testing.T, text string) *tui.Model {
	t.Helper()
	m := tui.New(testSet(task.Parse(text, "notes/a.md", nil)), "notes")
	m.SetNow(fixedNow)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *tui.Model, k string) {
	var msg tea.KeyMsg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	m.Update(msg)
}

func TestViewShowsBoardTabsAndColumns(t *testing.T) {
	m := newModel(t, "- [ ] Water plants\n- [ ] Report #work")
	got := m.View()

	for _, want := range []string{"Dates", "Work", "Undated", "Today", "Water plants"} {
		if !strings.Contains(got, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestTabCyclesBoards(t *testing.T) {
	m := newModel(t, "- [ ] Report #work")

	if idx, _ := m.Set().Index(); idx != 0 {
		t.Fatalf("initial Index = %d, want 0", idx)
	}

	press(m, "tab")
	if idx, _ := m.Set().Index(); idx != 1 {
		t.Errorf("Index after tab = %d, want 1", idx)
	}
	if got := m.View(); !strings.Contains(got, "Report") {
		t.Errorf("View() on tag board missing task, got:\n%s", got)
	}

	press(m, "tab")
	if idx, _ := m.Set().Index(); idx != 0 {
		t.Errorf("Index after wrap = %d, want 0", idx)
	}

	press(m, "shift+tab")
	if idx, _ := m.Set().Index(); idx != 1 {
		t.Errorf("Index after shift+tab = %d, want 1", idx)
	}
}

func TestColumnNavigationStaysInBounds(t *testing.T) {
	m := newModel(t, "- [ ] a\n- [ ] b")

	// Hammer the navigation keys; the cursor must stay valid (no panic).
	for range 10 {
		press(m, "l")
	}
	for range 10 {
		press(m, "h")
	}
	for range 10 {
		press(m, "j")
	}
	for range 10 {
		press(m, "k")
	}
	_ = m.View()
}

func TestHelpToggle(t *testing.T) {
	m := newModel(t, "- [ ] a")

	press(m, "?")
	if got := m.View(); !strings.Contains(got, "Key bindings") {
		t.Error("View() after ? is not the help screen")
	}

	press(m, "x") // any key returns
	if got := m.View(); strings.Contains(got, "Key bindings") {
		t.Error("View() still shows help after keypress")
	}
}

func TestQuitKey(t *testing.T) {
	m := newModel(t, "- [ ] a")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("q produced %T, want tea.QuitMsg", msg)
	}
}

func TestReloadMsgReplacesChangedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.md")
	if err := os.WriteFile(path, []byte("- [ ] Original"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	initial, err := task.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	m := tui.New(testSet(initial), dir)
	m.SetNow(fixedNow)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if got := m.View(); !strings.Contains(got, "Original") {
		t.Fatalf("View() missing initial task:\n%s", got)
	}

	if err := os.WriteFile(path, []byte("- [ ] Rewritten"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m.Update(tui.ReloadMsg{Changed: []string{path}})

	got := m.View()
	if strings.Contains(got, "Original") {
		t.Error("View() still shows the stale task after reload")
	}
	if !strings.Contains(got, "Rewritten") {
		t.Errorf("View() missing re-parsed task:\n%s", got)
	}
}

func TestReloadMsgPreservesBoardSelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.md")
	if err := os.WriteFile(path, []byte("- [ ] One #work"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	initial, err := task.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	m := tui.New(testSet(initial), dir)
	m.SetNow(fixedNow)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	press(m, "tab") // switch to the Work board
	m.Update(tui.ReloadMsg{Changed: []string{path}})

	if idx, _ := m.Set().Index(); idx != 1 {
		t.Errorf("Index after reload = %d, want 1", idx)
	}
}

package board_test

import (
	"strings"
	"testing"
	"time"

	"github.com/antopolskiy/cardboard-md/internal/board"
	"github.com/antopolskiy/cardboard-md/internal/date"
	"github.com/antopolskiy/cardboard-md/internal/task"
)

func tagged(id, title string, tags ...string) *task.Task {
	display := title
	for _, tg := range tags {
		display += " #" + tg
	}
	return &task.Task{ID: id, Title: title, DisplayTitle: display, Tags: tags}
}

func labels(cols []board.Column) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = col.Label
	}
	return out
}

func TestTagColumnsConfiguredOrder(t *testing.T) {
	cfg := board.TagConfig{
		BoardTitle: "Projects",
		Columns: []board.TagColumn{
			{Tag: "home", Label: "Home"},
			{Tag: "work", Label: "Work"},
		},
	}
	cols := board.Columns(cfg, task.NewCollection(nil), 0)
	assertOrder(t, labels(cols), []string{"Home", "Work"}, "labels")
}

func TestTagColumnsFullOrder(t *testing.T) {
	cfg := board.TagConfig{
		BoardTitle:      "Projects",
		Columns:         []board.TagColumn{{Tag: "work", Label: "Work"}},
		IncludeOthers:   true,
		IncludeUntagged: true,
		CompletedCount:  5,
	}
	cols := board.Columns(cfg, task.NewCollection(nil), 0)
	assertOrder(t, labels(cols), []string{"Untagged", "Others", "Work", "Completed"}, "labels")
}

func TestTagDedupeFirstWins(t *testing.T) {
	cfg := board.TagConfig{
		BoardTitle: "Projects",
		Columns: []board.TagColumn{
			{Tag: "work", Label: "Work"},
			{Tag: "work", Label: "Work again"},
			{Tag: "home", Label: "Home"},
		},
	}
	cols := board.Columns(cfg, task.NewCollection(nil), 0)
	assertOrder(t, labels(cols), []string{"Work", "Home"}, "labels")
}

func TestTagMultiTagTaskInEveryMatchingColumn(t *testing.T) {
	tasks := []*task.Task{tagged("1", "both", "work", "home")}
	cfg := board.TagConfig{
		BoardTitle: "Projects",
		Columns: []board.TagColumn{
			{Tag: "work", Label: "Work"},
			{Tag: "home", Label: "Home"},
		},
	}
	cols := board.Columns(cfg, task.NewCollection(tasks), 0)

	assertOrder(t, columnTitles(t, cols, "Work"), []string{"both"}, "Work")
	assertOrder(t, columnTitles(t, cols, "Home"), []string{"both"}, "Home")
}

func TestTagColumnStripsOwnTagOnly(t *testing.T) {
	tasks := []*task.Task{tagged("1", "both", "work", "home")}
	cfg := board.TagConfig{
		BoardTitle: "Projects",
		Columns:    []board.TagColumn{{Tag: "work", Label: "Work"}},
	}
	cols := board.Columns(cfg, task.NewCollection(tasks), 0)

	got := cols[0].Tasks[0].DisplayTitle
	if got != "both #home" {
		t.Errorf("DisplayTitle = %q, want %q", got, "both #home")
	}
	// The underlying record keeps its full display title.
	if tasks[0].DisplayTitle != "both #work #home" {
		t.Errorf("record DisplayTitle mutated to %q", tasks[0].DisplayTitle)
	}
}

func TestTagOthersAndUntagged(t *testing.T) {
	tasks := []*task.Task{
		tagged("1", "configured", "work"),
		tagged("2", "unconfigured", "garden"),
		tagged("3", "bare"),
	}
	cfg := board.TagConfig{
		BoardTitle:      "Projects",
		Columns:         []board.TagColumn{{Tag: "work", Label: "Work"}},
		IncludeOthers:   true,
		IncludeUntagged: true,
	}
	cols := board.Columns(cfg, task.NewCollection(tasks), 0)

	assertOrder(t, columnTitles(t, cols, "Untagged"), []string{"bare"}, "Untagged")
	assertOrder(t, columnTitles(t, cols, "Others"), []string{"unconfigured"}, "Others")
	assertOrder(t, columnTitles(t, cols, "Work"), []string{"configured"}, "Work")

	// The others column keeps tags in the display title.
	others := cols[1].Tasks[0]
	if !strings.Contains(others.DisplayTitle, "#garden") {
		t.Errorf("Others DisplayTitle = %q, want tag kept", others.DisplayTitle)
	}
}

func TestTagCompletedRequiresConfiguredTag(t *testing.T) {
	done := tagged("1", "done work", "work")
	done.Completed = true
	doneOther := tagged("2", "done garden", "garden")
	doneOther.Completed = true

	cfg := board.TagConfig{
		BoardTitle:     "Projects",
		Columns:        []board.TagColumn{{Tag: "work", Label: "Work"}},
		CompletedCount: 3,
	}
	cols := board.Columns(cfg, task.NewCollection([]*task.Task{done, doneOther}), 0)

	assertOrder(t, columnTitles(t, cols, "Completed"), []string{"done work"}, "Completed")
}

func TestTagCompletedDisabledWhenCountZero(t *testing.T) {
	cfg := board.TagConfig{
		BoardTitle: "Projects",
		Columns:    []board.TagColumn{{Tag: "work", Label: "Work"}},
	}
	cols := board.Columns(cfg, task.NewCollection(nil), 0)
	for _, col := range cols {
		if col.Label == "Completed" {
			t.Error("Completed column present with CompletedCount = 0")
		}
	}
}

func TestTagColumnSortsByDueThenTitle(t *testing.T) {
	later := date.New(2026, time.March, 20)
	sooner := date.New(2026, time.March, 5)

	a := tagged("1", "zeta", "work")
	a.Due = &sooner
	b := tagged("2", "alpha", "work")
	b.Due = &later
	c := tagged("3", "undated", "work")

	cfg := board.TagConfig{
		BoardTitle: "Projects",
		Columns:    []board.TagColumn{{Tag: "work", Label: "Work"}},
	}
	cols := board.Columns(cfg, task.NewCollection([]*task.Task{a, b, c}), 0)

	assertOrder(t, columnTitles(t, cols, "Work"), []string{"zeta", "alpha", "undated"}, "Work")
}

// TestTagEndToEnd mirrors the documented four-line example: one shopping
// column with others, untagged, and completed enabled.
func TestTagEndToEnd(t *testing.T) {
	text := strings.Join([]string{
		"- [ ] Buy milk #shopping",
		"- [ ] Call Alice #work",
		"- [ ] Water plants",
		"- [x] Pay bills #shopping @completed(2026-03-01T10:00:00)",
	}, "\n")
	c := task.Parse(text, "list.md", nil)

	cfg := board.TagConfig{
		BoardTitle:      "Shopping board",
		Columns:         []board.TagColumn{{Tag: "shopping", Label: "Shopping"}},
		IncludeOthers:   true,
		IncludeUntagged: true,
		CompletedCount:  10,
	}
	cols := board.Columns(cfg, c, 0)

	assertOrder(t, labels(cols), []string{"Untagged", "Others", "Shopping", "Completed"}, "labels")
	assertOrder(t, columnTitles(t, cols, "Untagged"), []string{"Water plants"}, "Untagged")
	assertOrder(t, columnTitles(t, cols, "Shopping"), []string{"Buy milk"}, "Shopping")
	assertOrder(t, columnTitles(t, cols, "Completed"), []string{"Pay bills"}, "Completed")

	if got := cols[1].Tasks[0].DisplayTitle; got != "Call Alice #work" {
		t.Errorf("Others card = %q, want %q", got, "Call Alice #work")
	}
	if got := cols[2].Tasks[0].DisplayTitle; got != "Buy milk" {
		t.Errorf("Shopping card = %q, want %q", got, "Buy milk")
	}
}

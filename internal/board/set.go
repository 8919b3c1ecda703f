package board

import (
	"github.com/antopolskiy/cardboard-md/internal/date"
	"github.com/antopolskiy/cardboard-md/internal/selector"
	"github.com/antopolskiy/cardboard-md/internal/task"
)

// View is one board's computed output: its title and its ordered columns.
type View struct {
	Title   string   `json:"title"`
	Columns []Column `json:"columns"`
}

// Set composes the configured boards with the current task collection.
// The selector tracks which board is active; it never touches task content.
// Sets are values, like the selector they wrap.
type Set struct {
	boards selector.Selector[Config]
	tasks  task.Collection
}

// NewSet builds a Set over the given configurations. The first board is
// selected when any exist.
func NewSet(cfgs []Config, tasks task.Collection) Set {
	return Set{
		boards: selector.FromList(cfgs).SelectFirst(),
		tasks:  tasks,
	}
}

// Len returns the number of configured boards.
func (s Set) Len() int {
	return s.boards.Len()
}

// Index returns the selected board index, ok false when no boards exist.
func (s Set) Index() (int, bool) {
	return s.boards.Selected()
}

// Select makes board i active. Out-of-range indexes are rejected.
func (s Set) Select(i int) (Set, bool) {
	boards, ok := s.boards.Select(i)
	if !ok {
		return s, false
	}
	s.boards = boards
	return s, true
}

// Next cycles to the following board, wrapping at the end.
func (s Set) Next() Set {
	s.boards = s.boards.Next()
	return s
}

// Prev cycles to the preceding board, wrapping at the start.
func (s Set) Prev() Set {
	s.boards = s.boards.Prev()
	return s
}

// WithTasks returns the Set viewing a new collection, selection preserved.
// This is the entry point for incremental re-parse: the caller replaces a
// document's tasks in the collection and swaps it in here.
func (s Set) WithTasks(tasks task.Collection) Set {
	s.tasks = tasks
	return s
}

// Tasks returns the collection the boards are viewing.
func (s Set) Tasks() task.Collection {
	return s.tasks
}

// Titles returns every board's title in order.
func (s Set) Titles() []string {
	out := make([]string, 0, s.boards.Len())
	for _, cfg := range s.boards.Items() {
		out = append(out, cfg.Title())
	}
	return out
}

// Views computes the title and columns of every board via the selector's
// dual-map. Title and columns do not depend on selection, so both
// transforms are the same function; selection-dependent rendering sits
// with collaborators.
func (s Set) Views(today date.Day) []View {
	view := func(cfg Config) View {
		return View{Title: cfg.Title(), Columns: Columns(cfg, s.tasks, today)}
	}
	return selector.MapBoth(s.boards, view, view).Items()
}

// CurrentView computes the selected board's view, ok false when no board
// is selected.
func (s Set) CurrentView(today date.Day) (View, bool) {
	cfg, ok := s.boards.Current()
	if !ok {
		return View{}, false
	}
	return View{Title: cfg.Title(), Columns: Columns(cfg, s.tasks, today)}, true
}

// Cards returns the selected board's tasks flattened across its columns in
// column order, the display-ready card sequence.
func (s Set) Cards(today date.Day) []*task.Task {
	view, ok := s.CurrentView(today)
	if !ok {
		return nil
	}
	var out []*task.Task
	for _, col := range view.Columns {
		out = append(out, col.Tasks...)
	}
	return out
}

package board

import (
	"sort"
	"strings"

	"github.com/antopolskiy/cardboard-md/internal/task"
)

// sortByTitle orders tasks by case-insensitive title ascending.
func sortByTitle(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return lessTitle(tasks[i], tasks[j])
	})
}

// sortByDueThenTitle orders tasks by due day ascending, case-insensitive
// title breaking ties. Undated tasks sort last.
func sortByDueThenTitle(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.Due == nil && b.Due == nil:
			return lessTitle(a, b)
		case a.Due == nil:
			return false
		case b.Due == nil:
			return true
		case *a.Due != *b.Due:
			return *a.Due < *b.Due
		}
		return lessTitle(a, b)
	})
}

// sortCompleted orders completed tasks by completion timestamp descending
// (most recent first, absent timestamps after all present ones),
// case-insensitive title ascending among equal or absent timestamps.
func sortCompleted(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.CompletedAt == nil && b.CompletedAt == nil:
			return lessTitle(a, b)
		case a.CompletedAt == nil:
			return false
		case b.CompletedAt == nil:
			return true
		case !a.CompletedAt.Equal(*b.CompletedAt):
			return a.CompletedAt.After(*b.CompletedAt)
		}
		return lessTitle(a, b)
	})
}

func lessTitle(a, b *task.Task) bool {
	return strings.ToLower(a.Title) < strings.ToLower(b.Title)
}

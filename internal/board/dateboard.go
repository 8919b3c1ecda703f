package board

import (
	"github.com/antopolskiy/cardboard-md/internal/date"
	"github.com/antopolskiy/cardboard-md/internal/task"
)

// Date board column labels.
const (
	labelUndated   = "Undated"
	labelToday     = "Today"
	labelTomorrow  = "Tomorrow"
	labelFuture    = "Future"
	labelCompleted = "Completed"
)

// dateColumns buckets top-level tasks by due date. "Today" deliberately
// absorbs overdue tasks (due on or before today); "Tomorrow" is exact;
// "Future" is strictly after tomorrow. Only top-level tasks are placed;
// subtasks ride along inside their parents.
func dateColumns(cfg DateConfig, c task.Collection, today date.Day) []Column {
	tomorrow := today.Add(1)
	var cols []Column

	if cfg.IncludeUndated {
		undated := collect(c, func(t *task.Task) bool {
			return !t.Completed && t.Due == nil
		})
		sortByTitle(undated)
		cols = append(cols, Column{Label: labelUndated, Tasks: undated})
	}

	todayTasks := collect(c, func(t *task.Task) bool {
		return !t.Completed && t.DueOnOrBefore(today)
	})
	sortByDueThenTitle(todayTasks)
	cols = append(cols, Column{Label: labelToday, Tasks: todayTasks})

	// All tasks here share the same day, so no due tie-break is needed.
	tomorrowTasks := collect(c, func(t *task.Task) bool {
		return !t.Completed && t.DueOn(tomorrow)
	})
	sortByTitle(tomorrowTasks)
	cols = append(cols, Column{Label: labelTomorrow, Tasks: tomorrowTasks})

	future := collect(c, func(t *task.Task) bool {
		return !t.Completed && t.DueAfter(tomorrow)
	})
	sortByDueThenTitle(future)
	cols = append(cols, Column{Label: labelFuture, Tasks: future})

	if cfg.IncludeCompleted {
		completed := collect(c, func(t *task.Task) bool { return t.Completed })
		sortCompleted(completed)
		cols = append(cols, Column{Label: labelCompleted, Tasks: completed})
	}

	return cols
}

// collect copies the matching top-level tasks into a fresh slice the sort
// helpers may reorder.
func collect(c task.Collection, pred func(*task.Task) bool) []*task.Task {
	var out []*task.Task
	for _, t := range c.Tasks() {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

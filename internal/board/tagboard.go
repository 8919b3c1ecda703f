package board

import (
	"github.com/antopolskiy/cardboard-md/internal/task"
)

// Tag board extra column labels.
const (
	labelOthers   = "Others"
	labelUntagged = "Untagged"
)

// tagColumns builds one column per configured tag, in configured order,
// with the optional Untagged, Others, and Completed columns around them.
// A task carrying several configured tags appears in every matching
// column; the columns are not mutually exclusive.
func tagColumns(cfg TagConfig, c task.Collection) []Column {
	configured := dedupeColumns(cfg.Columns)
	tags := make([]string, len(configured))
	for i, tc := range configured {
		tags[i] = tc.Tag
	}

	var cols []Column
	for _, tc := range configured {
		cols = append(cols, tagColumn(tc, c))
	}

	if cfg.IncludeOthers {
		others := collect(c, func(t *task.Task) bool {
			return !t.Completed && len(t.Tags) > 0 && !t.HasAnyTag(tags)
		})
		sortByDueThenTitle(others)
		cols = append([]Column{{Label: labelOthers, Tasks: others}}, cols...)
	}

	if cfg.IncludeUntagged {
		untagged := collect(c, func(t *task.Task) bool {
			return !t.Completed && len(t.Tags) == 0
		})
		sortByDueThenTitle(untagged)
		cols = append([]Column{{Label: labelUntagged, Tasks: untagged}}, cols...)
	}

	if cfg.CompletedCount > 0 {
		completed := collect(c, func(t *task.Task) bool {
			return t.Completed && t.HasAnyTag(tags)
		})
		sortCompleted(completed)
		cols = append(cols, Column{Label: labelCompleted, Tasks: completed})
	}

	return cols
}

// tagColumn builds the column for one configured tag. Matching tasks are
// shallow-copied with the column's tag removed from the display title;
// the underlying records stay untouched.
func tagColumn(tc TagColumn, c task.Collection) Column {
	var tasks []*task.Task
	for _, t := range c.Tasks() {
		if t.Completed || !t.HasTag(tc.Tag) {
			continue
		}
		cp := *t
		cp.DisplayTitle = t.TitleWithoutTag(tc.Tag)
		tasks = append(tasks, &cp)
	}
	sortByDueThenTitle(tasks)
	return Column{Label: tc.Label, Tasks: tasks}
}

// dedupeColumns drops repeated tags, keeping the first occurrence.
func dedupeColumns(cols []TagColumn) []TagColumn {
	seen := make(map[string]bool, len(cols))
	var out []TagColumn
	for _, tc := range cols {
		if seen[tc.Tag] {
			continue
		}
		seen[tc.Tag] = true
		out = append(out, tc)
	}
	return out
}

// Package task defines the task record model, the checklist-line parser,
// and the ordered collection the board engines consume.
package task

import (
	"strings"
	"time"

	"github.com/antopolskiy/cardboard-md/internal/date"
)

// Task is one checklist line from a note, together with its nested sub-items.
// A parent exclusively owns its Subtasks; they never detach or outlive it.
type Task struct {
	// ID is derived from SourcePath and line number, so re-parsing
	// unmodified text yields identical ids.
	ID string `json:"id"`

	// Title is the line text with the checkbox, metadata tokens, and tag
	// tokens stripped. Used for sorting.
	Title string `json:"title"`

	// DisplayTitle is like Title but keeps tag tokens in place, which is
	// what a card normally shows.
	DisplayTitle string `json:"display_title"`

	// Tags holds tag names without the leading '#', first occurrence
	// order, duplicates removed. Case-sensitive.
	Tags []string `json:"tags,omitempty"`

	// Due is the due day, nil when undated.
	Due *date.Day `json:"due,omitempty"`

	Completed bool `json:"completed"`

	// CompletedAt is only ever set when Completed is true.
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// SourcePath identifies the originating document.
	SourcePath string `json:"source_path"`

	Subtasks []*Task `json:"subtasks,omitempty"`
}

// HasTag reports whether the task carries the given tag.
func (t *Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the task carries at least one of the given tags.
func (t *Task) HasAnyTag(tags []string) bool {
	for _, tg := range tags {
		if t.HasTag(tg) {
			return true
		}
	}
	return false
}

// TitleWithoutTag returns DisplayTitle with the token for the given tag
// removed. Other tags stay in place.
func (t *Task) TitleWithoutTag(tag string) string {
	words := strings.Fields(t.DisplayTitle)
	out := words[:0:0]
	for _, w := range words {
		if w == "#"+tag {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// DueOn reports whether the task has the given due day.
func (t *Task) DueOn(d date.Day) bool {
	return t.Due != nil && *t.Due == d
}

// DueOnOrBefore reports whether the task is due on d or overdue relative
// to it. False when undated.
func (t *Task) DueOnOrBefore(d date.Day) bool {
	return t.Due != nil && *t.Due <= d
}

// DueAfter reports whether the task is due strictly after d. False when
// undated.
func (t *Task) DueAfter(d date.Day) bool {
	return t.Due != nil && *t.Due > d
}

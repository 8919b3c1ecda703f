// Package board builds ordered columns of tasks from board configurations.
//
// Two board kinds exist: date boards bucket incomplete tasks by due-date
// relative to a supplied "today", and tag boards bucket them by tag
// membership. Config is a closed sum over the two; Columns dispatches on
// the variant. Engines are pure: they read the collection and the supplied
// day and never touch the clock.
package board

import (
	"github.com/antopolskiy/cardboard-md/internal/date"
	"github.com/antopolskiy/cardboard-md/internal/task"
)

// Column is one labelled, sorted list of tasks within a board.
type Column struct {
	Label string       `json:"label"`
	Tasks []*task.Task `json:"tasks"`
}

// Config is a board configuration, either a DateConfig or a TagConfig.
// The interface is closed: only those two types implement it.
type Config interface {
	// Title is the board's display title.
	Title() string

	isConfig()
}

// DateConfig configures a board bucketed by due date.
type DateConfig struct {
	BoardTitle       string
	IncludeUndated   bool
	IncludeCompleted bool
}

// Title implements Config.
func (c DateConfig) Title() string { return c.BoardTitle }

func (DateConfig) isConfig() {}

// TagColumn pairs a tag with the label its column displays.
type TagColumn struct {
	Tag   string
	Label string
}

// TagConfig configures a board with one column per configured tag.
type TagConfig struct {
	BoardTitle      string
	Columns         []TagColumn
	IncludeOthers   bool
	IncludeUntagged bool

	// CompletedCount > 0 enables the Completed column. The value itself is
	// a display hint for rendering surfaces; the engine does not truncate.
	CompletedCount int
}

// Title implements Config.
func (c TagConfig) Title() string { return c.BoardTitle }

func (TagConfig) isConfig() {}

// Columns builds the ordered columns for cfg over the collection. today is
// the externally resolved current day; tag boards ignore it.
func Columns(cfg Config, c task.Collection, today date.Day) []Column {
	switch cfg := cfg.(type) {
	case DateConfig:
		return dateColumns(cfg, c, today)
	case TagConfig:
		return tagColumns(cfg, c)
	}
	return nil
}

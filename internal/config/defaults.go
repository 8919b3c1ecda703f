// Package config handles the cardboard-md board-set configuration.
package config

// Default values for a new board set.
var (
	DefaultNotesDir = "notes"

	// DefaultBoards is the board list a fresh config starts with.
	DefaultBoards = []Board{
		{
			Kind:             KindDate,
			Title:            "Dates",
			IncludeUndated:   true,
			IncludeCompleted: true,
		},
	}
)

const (
	// ConfigFileName is the name of the config file within the board
	// directory.
	ConfigFileName = "boards.yml"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 1
)

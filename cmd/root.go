// Package cmd implements the cardboard-md CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/antopolskiy/cardboard-md/internal/board"
	"github.com/antopolskiy/cardboard-md/internal/clierr"
	"github.com/antopolskiy/cardboard-md/internal/config"
	"github.com/antopolskiy/cardboard-md/internal/date"
	"github.com/antopolskiy/cardboard-md/internal/output"
	"github.com/antopolskiy/cardboard-md/internal/task"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON    bool
	flagTable   bool
	flagDir     string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "cardboard-md",
	Short: "Task boards over Markdown notes",
	Long: `cardboard-md turns checklist lines scattered across plain Markdown notes
into configurable board views. Date boards bucket tasks by due date;
tag boards give each configured tag its own column. Notes stay the
source of truth; boards are read-only projections over them.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			output.DisableColor()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output as table")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "path to board directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	// Handle SilentError — exit with code, no output.
	var silent *clierr.SilentError
	if errors.As(err, &silent) {
		os.Exit(silent.Code)
	}

	jsonMode := flagJSON
	if !jsonMode {
		jsonMode = os.Getenv("CARDBOARD_OUTPUT") == "json"
	}

	if jsonMode {
		var cliErr *clierr.Error
		if errors.As(err, &cliErr) {
			output.JSONError(cliErr.Code, cliErr.Message, cliErr.Details)
			os.Exit(cliErr.ExitCode())
		}
		output.JSONError(clierr.InternalError, err.Error(), nil)
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	fmt.Fprintln(os.Stderr, err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

// loadConfig finds and loads the board config.
func loadConfig() (*config.Config, error) {
	return config.Load(flagDir)
}

// loadTasks parses every note under the configured notes directory.
func loadTasks(cfg *config.Config) (task.Collection, error) {
	return task.ReadAll(cfg.NotesPath())
}

// buildSet assembles the board set from config plus parsed tasks.
func buildSet(cfg *config.Config) (board.Set, error) {
	boards, err := cfg.BoardConfigs()
	if err != nil {
		return board.Set{}, err
	}
	tasks, err := loadTasks(cfg)
	if err != nil {
		return board.Set{}, err
	}
	return board.NewSet(boards, tasks), nil
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagTable)
}

// today resolves the current day once, at the command boundary; the board
// engines only ever see the resolved value.
func today() date.Day {
	return date.FromTime(time.Now())
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antopolskiy/cardboard-md/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a new board config",
	Long: `Creates a boards.yml with a default date board plus an empty notes
directory. With no argument the config lands in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	dir := flagDir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		dir = cwd
	}

	cfg, err := config.Init(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s with %d board(s); notes go in %s\n",
		cfg.ConfigPath(), len(cfg.Boards), cfg.NotesPath())
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/antopolskiy/cardboard-md/internal/clierr"
	"github.com/antopolskiy/cardboard-md/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show [board]",
	Short: "Show a board's columns",
	Long: `Renders the columns of one board. With no argument the first configured
board is shown; otherwise the board is picked by title.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	set, err := buildSet(cfg)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		idx := -1
		for i, title := range set.Titles() {
			if title == args[0] {
				idx = i
				break
			}
		}
		if idx < 0 {
			return clierr.Newf(clierr.BoardUnknown, "unknown board %q", args[0]).
				WithDetails(map[string]any{"boards": set.Titles()})
		}
		set, _ = set.Select(idx)
	}

	view, ok := set.CurrentView(today())
	if !ok {
		return clierr.New(clierr.BoardNotFound, "no boards configured")
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(view)
	}
	output.BoardTable(view)
	return nil
}

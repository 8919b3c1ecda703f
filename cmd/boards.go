package cmd

import (
	"github.com/spf13/cobra"

	"github.com/antopolskiy/cardboard-md/internal/output"
)

var boardsCmd = &cobra.Command{
	Use:     "boards",
	Aliases: []string{"ls"},
	Short:   "List configured boards",
	RunE:    runBoards,
}

func init() {
	rootCmd.AddCommand(boardsCmd)
}

// boardInfo is the JSON shape for one configured board.
type boardInfo struct {
	Index    int    `json:"index"`
	Title    string `json:"title"`
	Kind     string `json:"kind"`
	Selected bool   `json:"selected"`
}

func runBoards(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	set, err := buildSet(cfg)
	if err != nil {
		return err
	}

	selected, _ := set.Index()

	if outputFormat() == output.FormatJSON {
		infos := make([]boardInfo, len(cfg.Boards))
		for i, b := range cfg.Boards {
			infos[i] = boardInfo{
				Index:    i,
				Title:    b.Title,
				Kind:     b.Kind,
				Selected: i == selected,
			}
		}
		return output.JSON(infos)
	}

	output.BoardsTable(set.Titles(), selected)
	return nil
}

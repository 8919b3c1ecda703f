package cmd

import (
	"github.com/spf13/cobra"

	"github.com/antopolskiy/cardboard-md/internal/output"
	"github.com/antopolskiy/cardboard-md/internal/task"
)

var (
	flagTag       string
	flagCompleted bool
	flagSource    string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List parsed tasks",
	Long: `Lists every task parsed from the notes directory, subtasks included,
in document order. Filters narrow by tag, completion state, or source file.`,
	RunE: runTasks,
}

func init() {
	tasksCmd.Flags().StringVar(&flagTag, "tag", "", "only tasks carrying this tag")
	tasksCmd.Flags().BoolVar(&flagCompleted, "completed", false, "only completed tasks")
	tasksCmd.Flags().StringVar(&flagSource, "source", "", "only tasks from this note file")
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tasks, err := loadTasks(cfg)
	if err != nil {
		return err
	}

	var out []*task.Task
	for _, t := range tasks.Flatten() {
		if flagTag != "" && !t.HasTag(flagTag) {
			continue
		}
		if flagCompleted && !t.Completed {
			continue
		}
		if flagSource != "" && t.SourcePath != flagSource {
			continue
		}
		out = append(out, t)
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(out)
	}
	output.TasksTable(out)
	return nil
}

package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/antopolskiy/cardboard-md/internal/board"
	"github.com/antopolskiy/cardboard-md/internal/task"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// DisableColor strips all styling from table output.
func DisableColor() {
	titleStyle = lipgloss.NewStyle()
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
}

// BoardTable renders one board view: the title, then each column with its
// cards.
func BoardTable(view board.View) {
	fmt.Fprintln(os.Stdout, titleStyle.Render(view.Title))

	for _, col := range view.Columns {
		fmt.Fprintf(os.Stdout, "\n%s\n", headerStyle.Render(
			fmt.Sprintf("%s (%d)", col.Label, len(col.Tasks))))
		if len(col.Tasks) == 0 {
			fmt.Fprintln(os.Stdout, dimStyle.Render("  (empty)"))
			continue
		}
		for _, t := range col.Tasks {
			fmt.Fprintln(os.Stdout, "  "+cardLine(t))
		}
	}
}

// cardLine formats one card: checkbox, display title, and due date.
func cardLine(t *task.Task) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	line := box + " " + t.DisplayTitle
	if t.Due != nil {
		line += " " + dimStyle.Render("("+t.Due.String()+")")
	}
	return line
}

// TasksTable renders a flat list of tasks.
func TasksTable(tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	const pad = 2
	titleW, dueW := 5, 12
	for _, t := range tasks {
		titleW = max(titleW, min(len(t.Title)+pad, 50)) //nolint:mnd // max title column width
	}

	header := fmt.Sprintf("%-3s %-*s %-*s %-20s %s",
		"", titleW, "TITLE", dueW, "DUE", "TAGS", "SOURCE")
	fmt.Fprintln(os.Stdout, headerStyle.Render(header))

	for _, t := range tasks {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		title := t.Title
		const maxTitle = 48
		if len(title) > maxTitle {
			title = title[:maxTitle-3] + "..."
		}
		due := dimStyle.Render("--")
		if t.Due != nil {
			due = t.Due.String()
		}
		tags := dimStyle.Render("--")
		if len(t.Tags) > 0 {
			tags = strings.Join(t.Tags, ", ")
		}
		fmt.Fprintf(os.Stdout, "%-3s %-*s %-*s %-20s %s\n",
			box, titleW, title, dueW, due, tags, t.SourcePath)
	}
}

// BoardsTable renders the configured board list, marking the selected one.
func BoardsTable(titles []string, selected int) {
	for i, title := range titles {
		marker := " "
		if i == selected {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %d  %s\n", marker, i, title)
	}
}

package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/antopolskiy/cardboard-md/internal/task"
	"github.com/antopolskiy/cardboard-md/internal/tui"
	"github.com/antopolskiy/cardboard-md/internal/watcher"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive board UI",
	Long: `Launches the interactive terminal UI for browsing the configured boards.
Boards live-reload when note files change on disk; only the changed
documents are re-parsed.

Switch boards with tab, navigate with arrow keys or vim-style h/j/k/l,
press ? for help.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	set, err := buildSet(cfg)
	if err != nil {
		return err
	}

	model := tui.New(set, cfg.NotesPath())
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go startTUIWatcher(ctx, cfg.NotesPath(), p)

	_, err = p.Run()
	return err
}

func startTUIWatcher(ctx context.Context, notesDir string, p *tea.Program) {
	dirs, err := task.NoteDirs(notesDir)
	if err != nil {
		return // non-fatal: TUI works without live refresh
	}
	w, err := watcher.New(dirs, func(changed []string) {
		p.Send(tui.ReloadMsg{Changed: changed})
	})
	if err != nil {
		return
	}
	defer w.Close()
	w.Run(ctx, nil)
}

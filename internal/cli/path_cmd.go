package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/pathkeeper/internal/cli/formatter"
	"github.com/alexanderramin/pathkeeper/internal/progression"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newPathCmd(a *App) *cobra.Command {
	var (
		table       bool
		from, to    int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show all 120 days and their state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := a.Missions.Snapshot(ctx)
			w := cmd.OutOrStdout()
			if !s.HasOffice() {
				fmt.Fprintln(w, formatter.FormatToday(s))
				return nil
			}

			if interactive {
				if !a.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				return runPathBrowser(cmd, a)
			}

			views := a.Missions.DayViews(ctx)
			if table || from != 0 || to != 0 {
				lo, hi := from, to
				if lo == 0 {
					lo = 1
				}
				if hi == 0 {
					hi = progression.TotalDays
				}
				if lo > hi {
					return fmt.Errorf("--from %d is after --to %d", lo, hi)
				}
				fmt.Fprintln(w, formatter.FormatPathTable(views, lo, hi))
				return nil
			}
			fmt.Fprintln(w, formatter.FormatPath(views, s.Order))
			return nil
		},
	}

	cmd.Flags().BoolVar(&table, "table", false, "List days with titles instead of the grid")
	addDayFlag(cmd.Flags(), &from, "from", "First day to list")
	addDayFlag(cmd.Flags(), &to, "to", "Last day to list")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the path in a full-screen view")
	return cmd
}

func runPathBrowser(cmd *cobra.Command, a *App) error {
	browser := newPathBrowser(a.Missions)
	if a.DBPath != "" {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("watching store: %w", err)
		}
		defer func() { _ = watcher.Close() }()
		if err := watcher.Add(filepath.Dir(a.DBPath)); err != nil {
			return fmt.Errorf("watching store: %w", err)
		}
		browser.watchStore(watcher, a.DBPath)
	}
	_, err := tea.NewProgram(browser,
		tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout())).Run()
	return err
}

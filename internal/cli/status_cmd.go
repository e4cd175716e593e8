package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pathkeeper/internal/cli/formatter"
	"github.com/alexanderramin/pathkeeper/internal/notify"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show medals, badges and overall progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.Missions.Snapshot(context.Background())
			if !s.HasOffice() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatToday(s))
				return nil
			}
			streak, err := a.Journal.Streak(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(s, streak))
			return nil
		},
	}
}

func newJournalCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Browse saved reflections",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recent journal entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}
			entries, err := a.Journal.ListJournal(context.Background(), limit)
			if err != nil {
				return err
			}
			streak, err := a.Journal.Streak(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatJournal(entries, a.now(), streak))
			return nil
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show")

	cmd.AddCommand(list)
	return cmd
}

func newNudgeCmd(a *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "nudge",
		Short: "Print the evening reminder if today's mission is still open",
		Long: "Print the evening reminder if today's mission is still open.\n" +
			"Meant for cron or a login hook; it reads the status file written after\n" +
			"each change and prints nothing when no reminder is due.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.Reminders && !force {
				return nil
			}
			status, err := notify.ReadStatus(a.NudgeStatusPath)
			if err != nil {
				return err
			}
			hour := a.ReminderHour
			if force {
				hour = 0
			}
			if !notify.ReminderDue(status, a.now(), hour) {
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNudge(notify.ReminderTitle, notify.ReminderBody))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Ignore the reminder setting and hour")
	return cmd
}

package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pathkeeper/internal/cli/formatter"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/spf13/cobra"
)

func newHabitCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Track today's scripture, prayer and service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printHabits(cmd, a)
			return nil
		},
	}

	for _, c := range []struct {
		use, short string
		done       bool
	}{
		{"done", "Mark habits kept today", true},
		{"undo", "Clear habits marked today", false},
	} {
		done := c.done
		cmd.AddCommand(&cobra.Command{
			Use:       c.use + " <habit>...",
			Short:     c.short,
			Args:      cobra.MinimumNArgs(1),
			ValidArgs: []string{string(domain.HabitScripture), string(domain.HabitPrayer), string(domain.HabitService)},
			RunE: func(cmd *cobra.Command, args []string) error {
				return setHabits(cmd, a, args, done)
			},
		})
	}
	return cmd
}

func setHabits(cmd *cobra.Command, a *App, args []string, done bool) error {
	habits := make([]domain.Habit, 0, len(args))
	for _, arg := range args {
		h, ok := domain.ParseHabit(arg)
		if !ok {
			return fmt.Errorf("unknown habit %q (choose scripture, prayer or service)", arg)
		}
		habits = append(habits, h)
	}

	ctx := context.Background()
	for _, h := range habits {
		out, err := a.Missions.SetHabit(ctx, h, done)
		if err != nil {
			return err
		}
		if !out.OK() {
			printOutcome(cmd, a, out)
			return nil
		}
	}
	printHabits(cmd, a)
	return nil
}

func printHabits(cmd *cobra.Command, a *App) {
	s := a.Missions.Snapshot(context.Background())
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHabits(s.HabitsToday, s.WeekHabitDays))
}

package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pathkeeper/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDevCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:    "dev",
		Short:  "Developer tools for testing the path",
		Hidden: true,
	}
	cmd.AddCommand(
		newDevSetDayCmd(a),
		newDevAdvanceCmd(a),
		newDevCompleteMonthCmd(a),
		newDevToggleOrderCmd(a),
		newDevResetCmd(a),
	)
	return cmd
}

func newDevSetDayCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-day <day>",
		Short: "Jump to an absolute day (1-120)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			out, err := a.Missions.SetOverallDay(context.Background(), day)
			if err != nil {
				return err
			}
			if out.OK() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Now on %s\n", formatter.StyleGreen.Render("✔"), formatter.DayRef(day))
			}
			printOutcome(cmd, a, out)
			return nil
		},
	}
}

func newDevAdvanceCmd(a *App) *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Treat the active day as done yesterday so the next day opens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			for i := 0; i < times; i++ {
				out, err := a.Dev.DebugAdvanceDay(ctx)
				if err != nil {
					return err
				}
				printOutcome(cmd, a, out)
				if !out.OK() {
					break
				}
			}
			day, _ := a.Missions.ActiveDay(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Active day: %s\n", formatter.StyleBlue.Render("●"), formatter.DayRef(day))
			return nil
		},
	}

	cmd.Flags().IntVarP(&times, "times", "n", 1, "Number of days to advance")
	return cmd
}

func newDevCompleteMonthCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete-month",
		Short: "Skip to the start of the next month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.Dev.DebugCompleteMonth(context.Background())
			if err != nil {
				return err
			}
			if out.OK() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Active day: %s\n", formatter.StyleBlue.Render("●"), formatter.DayRef(out.ActiveDay))
			}
			printOutcome(cmd, a, out)
			return nil
		},
	}
}

func newDevToggleOrderCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-order",
		Short: "Switch between the Aaronic and Melchizedek tracks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out, err := a.Dev.DebugToggleOrder(ctx)
			if err != nil {
				return err
			}
			printOutcome(cmd, a, out)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OfficePill(a.Missions.Snapshot(ctx).Office))
			return nil
		},
	}
}

func newDevResetCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress (journal history is kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !a.interactive() {
					return fmt.Errorf("refusing to reset without --yes")
				}
				var ok bool
				if err := runForm(confirmForm("Erase all progress?", &ok)); err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Reset cancelled."))
					return nil
				}
			}
			out, err := a.Missions.Reset(context.Background())
			if err != nil {
				return err
			}
			if out.OK() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔")+" Progress erased.")
			}
			printOutcome(cmd, a, out)
			return nil
		},
	}

	addYesFlag(cmd.Flags(), &yes)
	return cmd
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/cli/formatter"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/spf13/cobra"
)

func newOfficeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "office",
		Short: "Choose or show your priesthood office",
	}
	cmd.AddCommand(
		newOfficeSetCmd(app),
		newOfficeShowCmd(app),
	)
	return cmd
}

func officeNames() string {
	names := make([]string, len(domain.Offices))
	for i, o := range domain.Offices {
		names[i] = string(o)
	}
	return strings.Join(names, ", ")
}

func newOfficeSetCmd(a *App) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:       "set <office>",
		Short:     "Select your office (" + officeNames() + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"deacon", "teacher", "priest", "elder"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			office, ok := domain.ParseOffice(args[0])
			if !ok {
				return fmt.Errorf("unknown office %q (choose one of %s)", args[0], officeNames())
			}

			current := a.Missions.Snapshot(ctx).Office
			mode := app.OfficeChangeContinue
			if reset {
				mode = app.OfficeChangeReset
			} else if current != "" && current != office && a.interactive() {
				var startOver bool
				if err := runForm(officeChangeForm(current, office, &startOver)); err != nil {
					return err
				}
				if startOver {
					mode = app.OfficeChangeReset
				}
			}

			out, err := a.Missions.SelectOffice(ctx, office, mode)
			if err != nil {
				return err
			}
			if !out.OK() {
				printOutcome(cmd, a, out)
				return nil
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s Office set to %s\n", formatter.StyleGreen.Render("✔"), formatter.OfficePill(office))
			if mode == app.OfficeChangeReset && current != "" {
				fmt.Fprintln(w, formatter.Dim("Progress restarted at Day 1. Your journal was kept."))
			}
			printOutcome(cmd, a, out)
			if out.Has(app.EventHigherUnlocked) {
				if _, err := a.Missions.ClearHigherUnlocked(ctx); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Restart the path at Day 1 instead of keeping progress")
	return cmd
}

func newOfficeShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the selected office",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.Missions.Snapshot(context.Background())
			w := cmd.OutOrStdout()
			if !s.HasOffice() {
				fmt.Fprintln(w, formatter.Dim("No office selected. Run: pathkeeper office set <"+officeNames()+">"))
				return nil
			}
			fmt.Fprintf(w, "%s  %s\n", formatter.OfficePill(s.Office), formatter.Dim(string(s.Order)+" Priesthood"))
			return nil
		},
	}
}

func newNameCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name",
		Short: "Set the name used in greetings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <name...>",
		Short: "Set your name (empty to clear)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out, err := a.Missions.SetUserName(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !out.OK() {
				printOutcome(cmd, a, out)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Hello, %s.\n",
				formatter.StyleGreen.Render("✔"), a.Missions.Snapshot(ctx).DisplayName)
			return nil
		},
	})
	return cmd
}

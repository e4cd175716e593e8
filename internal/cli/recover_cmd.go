package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/cli/formatter"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/spf13/cobra"
)

func newRecoverCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Show or answer the welcome-back prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w := cmd.OutOrStdout()
			prompt, err := a.Recovery.Evaluate(ctx)
			if err != nil {
				return err
			}
			if prompt == nil {
				prompt = a.Missions.Snapshot(ctx).Recovery
			}
			if prompt == nil {
				fmt.Fprintln(w, formatter.Dim("Nothing to recover. You're on track."))
				return nil
			}
			if prompt.Kind == domain.RecoveryToast || !a.interactive() {
				fmt.Fprintln(w, formatter.FormatRecovery(prompt))
				return nil
			}

			var choice string
			if err := runForm(recoveryChoiceForm(prompt, &choice)); err != nil {
				return err
			}
			return runRecoveryChoice(cmd, a, choice)
		},
	}

	for _, c := range []struct{ use, short string }{
		{"catchup", "Queue every missed day for reflection"},
		{"resume", "Resume at the target day; missed days get grace"},
		{"restart", "Restart at the target day after a long absence"},
		{"dismiss", "Close the prompt without choosing"},
	} {
		choice := c.use
		cmd.AddCommand(&cobra.Command{
			Use:   choice,
			Short: c.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runRecoveryChoice(cmd, a, choice)
			},
		})
	}
	return cmd
}

func runRecoveryChoice(cmd *cobra.Command, a *App, choice string) error {
	ctx := context.Background()
	var (
		out app.Outcome
		err error
	)
	switch choice {
	case "catchup":
		out, err = a.Recovery.ChooseCatchUp(ctx)
	case "resume":
		out, err = a.Recovery.ChooseResume(ctx)
	case "restart":
		out, err = a.Recovery.ChooseRestart(ctx)
	case "dismiss":
		out, err = a.Recovery.Dismiss(ctx)
	default:
		return fmt.Errorf("unknown recovery choice %q", choice)
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printOutcome(cmd, a, out)
	if !out.OK() {
		return nil
	}
	switch choice {
	case "catchup":
		if next, ok := a.Recovery.NextCatchUp(ctx); ok {
			fmt.Fprintf(w, "%s Catch-up started. First up: %s  %s\n", formatter.StyleBlue.Render("●"),
				formatter.DayRef(next), formatter.Dim("pathkeeper reflect"))
		} else {
			fmt.Fprintln(w, formatter.Dim("No missed days to catch up on."))
		}
	case "resume", "restart":
		day, _ := a.Missions.ActiveDay(ctx)
		fmt.Fprintf(w, "%s Continuing at %s\n", formatter.StyleGreen.Render("✔"), formatter.DayRef(day))
	default:
		fmt.Fprintln(w, formatter.Dim("Prompt dismissed."))
	}
	return nil
}

func newCatchUpCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catchup",
		Short: "Work through missed days",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "next",
		Short: "Show the next day waiting for a reflection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w := cmd.OutOrStdout()
			next, ok := a.Recovery.NextCatchUp(ctx)
			if !ok {
				fmt.Fprintln(w, formatter.Dim("Not catching up."))
				return nil
			}
			s := a.Missions.Snapshot(ctx)
			fmt.Fprintf(w, "%s %s  %s\n", formatter.StyleYellow.Render("Next:"), formatter.Bold(formatter.DayRef(next)),
				missionTitle(ctx, a, next))
			fmt.Fprintf(w, "%s %s\n", formatter.Dim("Queue:"), formatter.DayList(s.CatchUpQueue))
			fmt.Fprintln(w, formatter.Dim("pathkeeper reflect \"...\""))
			return nil
		},
	})
	return cmd
}

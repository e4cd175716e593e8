package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/cli/formatter"
	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/spf13/cobra"
)

func newPhaseCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Show or resolve a waiting phase transition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := a.Missions.Snapshot(ctx)
			t := s.Pending
			w := cmd.OutOrStdout()
			if t == nil {
				fmt.Fprintln(w, formatter.Dim("No phase transition waiting."))
				return nil
			}
			if t.Kind == domain.TransitionCelebration {
				fmt.Fprintln(w, formatter.FormatCelebration(t, s.Order))
				return nil
			}
			if !a.interactive() {
				fmt.Fprintln(w, formatter.FormatReview(t))
				return nil
			}

			var choice string
			if err := runForm(reviewChoiceForm(t, &choice)); err != nil {
				return err
			}
			var out app.Outcome
			var err error
			if choice == "review" {
				out, err = a.Gate.ReviewFirst(ctx)
			} else {
				out, err = a.Gate.ResolveWithSilver(ctx)
			}
			if err != nil {
				return err
			}
			return reportGate(cmd, a, out)
		},
	}

	cmd.AddCommand(
		newPhaseContinueCmd(a),
		newPhaseSilverCmd(a),
		newPhaseReviewCmd(a),
	)
	return cmd
}

func newPhaseContinueCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "continue",
		Short: "Acknowledge a phase celebration and move on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.Gate.Acknowledge(context.Background())
			if err != nil {
				return err
			}
			return reportGate(cmd, a, out)
		},
	}
}

func newPhaseSilverCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "silver",
		Short: "Proceed past a review with a silver medal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.Gate.ResolveWithSilver(context.Background())
			if err != nil {
				return err
			}
			return reportGate(cmd, a, out)
		},
	}
}

func newPhaseReviewCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Reflect on the excused days first to earn gold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.Gate.ReviewFirst(context.Background())
			if err != nil {
				return err
			}
			return reportGate(cmd, a, out)
		},
	}
}

// reportGate prints the result of resolving a gate and, when catch-up mode
// was entered, where to start.
func reportGate(cmd *cobra.Command, a *App, out app.Outcome) error {
	ctx := context.Background()
	w := cmd.OutOrStdout()
	printOutcome(cmd, a, out)
	if !out.OK() {
		return nil
	}
	if next, ok := a.Recovery.NextCatchUp(ctx); ok {
		fmt.Fprintf(w, "%s Start with %s  %s\n", formatter.StyleBlue.Render("●"),
			formatter.DayRef(next), formatter.Dim("pathkeeper reflect"))
		return nil
	}
	day, _ := a.Missions.ActiveDay(ctx)
	fmt.Fprintf(w, "%s Now on %s\n", formatter.StyleGreen.Render("✔"), formatter.DayRef(day))
	s := a.Missions.Snapshot(ctx)
	return flushNotices(ctx, cmd, a, s)
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/cli/formatter"
	"github.com/alexanderramin/pathkeeper/internal/service"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's mission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(cmd, app)
		},
	}
}

// runToday checks for a welcome-back prompt, renders the active mission and
// flushes one-shot notices.
func runToday(cmd *cobra.Command, a *App) error {
	ctx := context.Background()
	w := cmd.OutOrStdout()

	if a.Missions.Snapshot(ctx).HasOffice() {
		prompt, err := a.Recovery.Evaluate(ctx)
		if err != nil {
			return err
		}
		if prompt != nil {
			fmt.Fprintln(w, formatter.FormatRecovery(prompt))
		}
	}

	s := a.Missions.Snapshot(ctx)
	fmt.Fprintln(w, formatter.FormatToday(s))
	return flushNotices(ctx, cmd, a, s)
}

// flushNotices prints and clears the badge toast and the higher-track
// notice so each shows once.
func flushNotices(ctx context.Context, cmd *cobra.Command, a *App, s app.Snapshot) error {
	w := cmd.OutOrStdout()
	if s.BadgeUnlock != nil {
		fmt.Fprintln(w, formatter.FormatBadge(*s.BadgeUnlock))
		if _, err := a.Missions.ClearBadgeUnlock(ctx); err != nil {
			return err
		}
	}
	if s.HigherUnlocked {
		fmt.Fprint(w, formatter.FormatEvent(app.Event{Kind: app.EventHigherUnlocked}, s.Order))
		if _, err := a.Missions.ClearHigherUnlocked(ctx); err != nil {
			return err
		}
	}
	return nil
}

func newCompleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Mark today's mission complete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			day, _ := a.Missions.ActiveDay(ctx)
			out, err := a.Missions.CompleteMission(ctx)
			if err != nil {
				return err
			}
			if out.OK() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s complete\n", formatter.StyleGreen.Render("✔"), formatter.DayRef(day))
			}
			printOutcome(cmd, a, out)
			if out.Has(app.EventBadgeUnlocked) {
				if _, err := a.Missions.ClearBadgeUnlock(ctx); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newReflectCmd(a *App) *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:   "reflect [text...]",
		Short: "Write the reflection for a day",
		Long: "Write the reflection for a day. Defaults to the next catch-up day while\n" +
			"catching up, then the day completed today, otherwise the active day.\n" +
			"A reflection counts the day as completed by hand.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if day == 0 {
				day = defaultReflectionDay(ctx, a)
			}
			if day == 0 {
				printOutcome(cmd, a, app.Rejected(app.RejectNoOffice))
				return nil
			}

			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" && a.interactive() {
				text = a.Missions.Reflection(ctx, day)
				if err := runForm(reflectionForm(day, missionTitle(ctx, a, day), &text)); err != nil {
					return err
				}
			}

			out, err := a.Missions.SaveReflection(ctx, day, text)
			if err != nil {
				return err
			}
			if out.OK() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Reflection saved for %s\n",
					formatter.StyleGreen.Render("✔"), formatter.DayRef(day))
				if next, ok := a.Recovery.NextCatchUp(ctx); ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("Next catch-up: %s  pathkeeper reflect", formatter.DayRef(next))))
				}
			}
			printOutcome(cmd, a, out)
			return nil
		},
	}

	addDayFlag(cmd.Flags(), &day, "day", "Day to reflect on (1-120)")
	return cmd
}

// defaultReflectionDay picks the day a bare `reflect` writes to: the next
// catch-up day, then the mission finished today, then the active day. A
// mastery completion opens the next day at once, so the active day is
// already tomorrow's by then.
func defaultReflectionDay(ctx context.Context, a *App) int {
	if next, ok := a.Recovery.NextCatchUp(ctx); ok {
		return next
	}
	s := a.Missions.Snapshot(ctx)
	if s.CompletedToday && s.LastCompletedDay > 0 {
		return s.LastCompletedDay
	}
	return s.ActiveDay
}

// missionTitle looks up the title shown for day in the path view.
func missionTitle(ctx context.Context, a *App, day int) string {
	for _, v := range a.Missions.DayViews(ctx) {
		if v.Day == day {
			return v.Title
		}
	}
	return ""
}

func newWeeklyCmd(a *App) *cobra.Command {
	var answers map[string]string

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: service.WeeklyTitle,
		Long: service.WeeklyTitle + " closes the Starter Week on day 7.\n" +
			"Without --answer it opens a short wizard.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			responses := map[string]string{}
			for k, v := range answers {
				responses[k] = v
			}

			if len(responses) == 0 && a.interactive() {
				ptrs := make(map[string]*string, len(service.WeeklyPrompts))
				for _, q := range service.WeeklyPrompts {
					ptrs[q.Key] = new(string)
				}
				if err := runForm(weeklyForm(ptrs)); err != nil {
					return err
				}
				for k, v := range ptrs {
					responses[k] = *v
				}
			}
			if len(responses) == 0 {
				return fmt.Errorf("no answers given; use --answer %s=...", service.WeeklyPrompts[0].Key)
			}
			if err := checkWeeklyKeys(responses); err != nil {
				return err
			}

			out, err := a.Missions.CompleteWeeklyReflection(ctx, responses)
			if err != nil {
				return err
			}
			if out.OK() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Weekly reflection saved\n", formatter.StyleGreen.Render("✔"))
			}
			printOutcome(cmd, a, out)
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&answers, "answer", nil, "Answer a prompt, e.g. --answer habit=\"daily prayer\"")
	return cmd
}

func checkWeeklyKeys(responses map[string]string) error {
	known := make(map[string]bool, len(service.WeeklyPrompts))
	keys := make([]string, len(service.WeeklyPrompts))
	for i, q := range service.WeeklyPrompts {
		known[q.Key] = true
		keys[i] = q.Key
	}
	for k := range responses {
		if !known[k] {
			return fmt.Errorf("unknown prompt %q (expected one of %s)", k, strings.Join(keys, ", "))
		}
	}
	return nil
}


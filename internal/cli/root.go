package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pathkeeper/internal/app"
	"github.com/alexanderramin/pathkeeper/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// App holds the use cases and settings CLI commands run against.
type App struct {
	Missions app.MissionUseCase
	Gate     app.PhaseGateUseCase
	Recovery app.RecoveryUseCase
	Journal  app.JournalUseCase
	Dev      app.DevToolsUseCase

	// DBPath enables live refresh in the path browser when set.
	DBPath string
	// NudgeStatusPath is the status file the nudge command reads.
	NudgeStatusPath string
	Reminders       bool
	ReminderHour    int

	// Now defaults to time.Now.
	Now func() time.Time
	// IsInteractive reports whether forms and the browser may be shown.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "pathkeeper" command and registers all
// subcommands against the provided App. Without a subcommand it shows today.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pathkeeper",
		Short:         "A 120-day Priesthood Path of daily missions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(cmd, app)
		},
	}

	root.AddCommand(
		newOfficeCmd(app),
		newNameCmd(app),
		newTodayCmd(app),
		newCompleteCmd(app),
		newReflectCmd(app),
		newWeeklyCmd(app),
		newPhaseCmd(app),
		newRecoverCmd(app),
		newCatchUpCmd(app),
		newPathCmd(app),
		newStatusCmd(app),
		newJournalCmd(app),
		newHabitCmd(app),
		newNudgeCmd(app),
		newDevCmd(app),
	)

	return root
}

// printOutcome writes the formatted outcome for the current order.
func printOutcome(cmd *cobra.Command, app *App, o app.Outcome) {
	order := app.Missions.Snapshot(context.Background()).Order
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOutcome(o, order))
}


package cli

import (
	"context"

	"github.com/alexanderramin/gatetrack/internal/cli/formatter"
	"github.com/alexanderramin/gatetrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds what the commands need.
type App struct {
	Progress service.ProgressService

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// Confirm overrides the reset prompt. Nil uses a huh form on a
	// terminal and denies otherwise.
	Confirm service.Confirmer

	// PromptDate overrides the date form used by "date set" without an
	// argument.
	PromptDate func(current string) (string, error)

	// RunTUI overrides how the dashboard program is started.
	RunTUI func(ctx context.Context, app *App) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// confirmer picks the confirmation strategy for destructive commands.
func (a *App) confirmer(assumeYes bool) service.Confirmer {
	switch {
	case assumeYes:
		return service.ConfirmFunc(func(string) bool { return true })
	case a.Confirm != nil:
		return a.Confirm
	case a.interactive():
		return huhConfirmer{}
	default:
		return nil
	}
}

// NewRootCmd creates the top-level "gatetrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gatetrack",
		Short: "Study plan tracker for the GATE CSE schedule",
		Long: "Tracks a dated study plan, a daily routine and habit add-ons.\n" +
			"Run without arguments on a terminal to open the dashboard.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			formatter.SetTheme(app.Progress.ThemeMode())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(cmd.Context(), app)
			}
			return printToday(cmd, app)
		},
	}

	root.AddCommand(
		newTodayCmd(app),
		newScheduleCmd(app),
		newRoutineCmd(app),
		newTipsCmd(app),
		newStatusCmd(app),
		newToggleCmd(app),
		newDateCmd(app),
		newResetCmd(app),
		newThemeCmd(app),
		newPlanCmd(app),
		newTUICmd(app),
	)

	return root
}

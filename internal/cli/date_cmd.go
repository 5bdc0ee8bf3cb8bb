package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/gatetrack/internal/cli/formatter"
	"github.com/alexanderramin/gatetrack/internal/contract"
	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/spf13/cobra"
)

func newDateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Show or move the focus date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFocus(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the focus date and the entry it resolves to",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printFocus(cmd, app)
			},
		},
		newDateSetCmd(app),
		newDateStepCmd(app, "next", "Move the focus date one day forward", 1),
		newDateStepCmd(app, "prev", "Move the focus date one day back", -1),
		newDateShiftCmd(app),
		&cobra.Command{
			Use:   "today",
			Short: "Set the focus date to the system date",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				app.Progress.SetFocusDate(cmd.Context(), domain.Today())
				return printFocus(cmd, app)
			},
		},
	)
	return cmd
}

func newDateSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set [YYYY-MM-DD]",
		Short: "Set the focus date (prompts when no date is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value string
			switch {
			case len(args) == 1:
				value = args[0]
			case app.PromptDate != nil:
				v, err := app.PromptDate(app.Progress.FocusDate().String())
				if err != nil {
					return err
				}
				value = v
			case app.interactive():
				v, err := promptDate(app.Progress.FocusDate().String())
				if err != nil {
					return err
				}
				value = v
			default:
				return fmt.Errorf("date required (YYYY-MM-DD) when not running in a terminal")
			}

			if err := app.Progress.SetFocusDateString(cmd.Context(), value); err != nil {
				return err
			}
			return printFocus(cmd, app)
		},
	}
}

func newDateStepCmd(app *App, use, short string, delta int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Progress.ShiftFocusDate(cmd.Context(), delta)
			return printFocus(cmd, app)
		},
	}
}

func newDateShiftCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shift DAYS",
		Short: "Move the focus date by a signed number of days (e.g. -3, +7)",
		// Negative numbers would otherwise parse as flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one argument: the number of days")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day count %q: %w", args[0], err)
			}
			app.Progress.ShiftFocusDate(cmd.Context(), n)
			return printFocus(cmd, app)
		},
	}
}

func printFocus(cmd *cobra.Command, app *App) error {
	s := app.Progress.Summary()
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
		formatter.Bold(s.FocusDate.String()),
		formatter.Dim(formatter.DayOfPlanLabel(s.DayOfPlan, s.PlanDays)),
		activeLabel(s))
	return err
}

func activeLabel(s contract.ProgressSummary) string {
	if s.ActiveEntry == nil {
		return formatter.StyleYellow.Render(contract.RestLabel)
	}
	label := formatter.PhaseLabel(s.ActiveEntry.Phase) + " " + s.ActiveLabel
	if badge := formatter.TestDayBadge(s.ActiveEntry); badge != "" {
		label += " " + badge
	}
	return label
}

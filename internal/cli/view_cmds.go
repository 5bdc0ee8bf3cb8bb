package cli

import (
	"fmt"

	"github.com/alexanderramin/gatetrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func checksFor(app *App) formatter.Checks {
	return formatter.Checks{
		Task:    app.Progress.IsTaskDone,
		Routine: app.Progress.IsRoutineDone,
		AddOn:   app.Progress.IsAddOnDone,
	}
}

func printToday(cmd *cobra.Command, app *App) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatToday(app.Progress.Summary(), checksFor(app)))
	return err
}

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the focus day: active subject, its tasks and daily counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printToday(cmd, app)
		},
	}
}

func newScheduleCmd(app *App) *cobra.Command {
	var phase int

	cmd := &cobra.Command{
		Use:   "schedule [ENTRY_ID]",
		Short: "Show the full schedule, or one entry with its tasks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := app.Progress.Catalog()
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				entry, ok := c.EntryByID(args[0])
				if !ok {
					return fmt.Errorf("no schedule entry with id %q", args[0])
				}
				_, err := fmt.Fprintln(out, formatter.RenderBox("Entry", formatter.FormatEntryDetail(&entry, checksFor(app))))
				return err
			}
			if phase < 0 {
				return fmt.Errorf("--phase must be positive")
			}
			_, err := fmt.Fprintln(out, formatter.FormatSchedule(c.Entries(), app.Progress.Summary(), phase))
			return err
		},
	}

	cmd.Flags().IntVar(&phase, "phase", 0, "Only show this phase")
	return cmd
}

func newRoutineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "routine",
		Short: "Show the daily routine and add-on checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(),
				formatter.FormatRoutine(app.Progress.Catalog(), app.Progress.Summary(), checksFor(app)))
			return err
		},
	}
}

func newTipsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "Show study tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTips(app.Progress.Catalog().Tips()))
			return err
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show overall and per-phase progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(),
				formatter.FormatStatus(app.Progress.Catalog().Name, app.Progress.Summary()))
			return err
		},
	}
}

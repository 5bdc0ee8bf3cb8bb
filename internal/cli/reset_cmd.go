package cli

import (
	"fmt"

	"github.com/alexanderramin/gatetrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Start a new day: uncheck every routine item and add-on",
		Long: "Clears the daily routine and add-on checklists. Syllabus tasks,\n" +
			"the focus date and the theme are left alone.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			confirmer := app.confirmer(yes)
			if confirmer == nil {
				_, err := fmt.Fprintln(out, formatter.Dim("Reset cancelled. Pass --yes to reset without a prompt."))
				return err
			}
			if !app.Progress.ResetDailyChecklist(cmd.Context(), confirmer) {
				_, err := fmt.Fprintln(out, formatter.Dim("Reset cancelled."))
				return err
			}
			_, err := fmt.Fprintln(out, formatter.StyleGreen.Render("New day started. Daily checklist cleared."))
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

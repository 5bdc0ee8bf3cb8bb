package cli

import (
	"fmt"

	"github.com/alexanderramin/gatetrack/internal/cli/formatter"
	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				if args[0] == "toggle" {
					app.Progress.ToggleThemeMode(ctx)
				} else {
					mode, err := domain.ParseThemeMode(args[0])
					if err != nil {
						return err
					}
					app.Progress.SetThemeMode(ctx, mode)
				}
			}

			mode := app.Progress.ThemeMode()
			formatter.SetTheme(mode)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", formatter.StyleHeader.Render(string(mode)))
			return err
		},
	}
}

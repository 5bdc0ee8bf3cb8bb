package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/gatetrack/internal/cli/formatter"
	"github.com/alexanderramin/gatetrack/internal/importer"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Validate or export plan files",
	}
	cmd.AddCommand(newPlanValidateCmd(), newPlanExportCmd(app))
	return cmd
}

func newPlanValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a YAML or JSON plan file without loading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadPlanSchema(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errs := importer.ValidatePlan(schema)
			if len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(out, "  %s %s\n", formatter.StyleRed.Render("✗"), e)
				}
				return fmt.Errorf("%s: %d validation error(s)", args[0], len(errs))
			}

			tasks := 0
			for _, e := range schema.Entries {
				tasks += len(e.Tasks)
			}
			_, err = fmt.Fprintf(out, "%s %s is valid: %d entries, %d tasks, %d routine items, %d add-ons, %d tips\n",
				formatter.StyleGreen.Render("✔"), args[0],
				len(schema.Entries), tasks, len(schema.Routine), len(schema.AddOns), len(schema.Tips))
			return err
		},
	}
}

func newPlanExportCmd(app *App) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded plan as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := importer.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := importer.Marshal(importer.FromCatalog(app.Progress.Catalog()), f)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing plan: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Plan written to %s\n", output)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

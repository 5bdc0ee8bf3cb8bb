package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/cli/formatter"
	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/spf13/cobra"
)

func newToggleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Check or uncheck a task, routine item or add-on",
	}

	cmd.AddCommand(
		newToggleKindCmd(app, "task", "Toggle a syllabus task (e.g. p1-c-lang-task-0)",
			func(ctx context.Context, id string) bool { return app.Progress.ToggleTask(ctx, id) },
			func(id string) (string, bool) { return taskLabel(app, id) }),
		newToggleKindCmd(app, "routine", "Toggle a daily routine item (e.g. dr-3)",
			func(ctx context.Context, id string) bool { return app.Progress.ToggleRoutineItem(ctx, id) },
			func(id string) (string, bool) { return routineLabel(app, id) }),
		newToggleKindCmd(app, "addon", "Toggle a daily add-on (e.g. da-1)",
			func(ctx context.Context, id string) bool { return app.Progress.ToggleAddOn(ctx, id) },
			func(id string) (string, bool) { return addOnLabel(app, id) }),
	)
	return cmd
}

func newToggleKindCmd(
	app *App,
	kind, short string,
	toggle func(ctx context.Context, id string) bool,
	label func(id string) (string, bool),
) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("%s id must not be empty", kind)
			}
			text, known := label(id)
			if !known {
				fmt.Fprintln(cmd.ErrOrStderr(),
					formatter.StyleYellow.Render(fmt.Sprintf("warning: %q is not a %s in this plan; toggling anyway", id, kind)))
			}

			done := toggle(cmd.Context(), id)
			state := "unchecked"
			if done {
				state = "checked"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", formatter.Checkbox(done), text, formatter.Dim("("+state+")"))
			return err
		},
	}
}

func taskLabel(app *App, id string) (string, bool) {
	text, ok := taskText(app.Progress.Catalog(), id)
	if !ok {
		return id, false
	}
	entryID, _, _ := domain.SplitTaskID(id)
	entry, _ := app.Progress.Catalog().EntryByID(entryID)
	return entry.Subject + ": " + text, true
}

// taskText resolves a task id to its text within c.
func taskText(c *catalog.Catalog, id string) (string, bool) {
	entryID, idx, ok := domain.SplitTaskID(id)
	if !ok {
		return id, false
	}
	entry, ok := c.EntryByID(entryID)
	if !ok || idx >= len(entry.Tasks) {
		return id, false
	}
	return entry.Tasks[idx], true
}

func routineLabel(app *App, id string) (string, bool) {
	subject := ""
	if e, ok := app.Progress.ActiveEntry(); ok {
		subject = e.Subject
	}
	for _, r := range app.Progress.Catalog().Routine() {
		if r.ID == id {
			return r.DisplayTask(subject), true
		}
	}
	return id, false
}

func routineTime(c *catalog.Catalog, id string) string {
	for _, r := range c.Routine() {
		if r.ID == id {
			return r.Time
		}
	}
	return ""
}

func addOnIcon(c *catalog.Catalog, id string) string {
	for _, a := range c.AddOns() {
		if a.ID == id {
			if icon := domain.StrFromPtr(a.Icon); icon != "" {
				return icon + " "
			}
		}
	}
	return ""
}

func addOnLabel(app *App, id string) (string, bool) {
	for _, a := range app.Progress.Catalog().AddOns() {
		if a.ID == id {
			return a.Label, true
		}
	}
	return id, false
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/gatetrack/internal/cli/formatter"
	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formTheme styles huh forms with the active palette.
func formTheme() *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	dim := lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Focused.Title = accent.Bold(true)
	t.Focused.Description = dim
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = dim.Padding(0, 1)
	t.Focused.TextInput.Cursor = accent
	t.Focused.TextInput.Prompt = accent
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = dim
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = dim
	t.Blurred.TextInput.Prompt = dim
	t.Blurred.TextInput.Text = dim

	return t
}

func validateDay(s string) error {
	if _, err := domain.ParseDay(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// dateForm asks for a focus date, pre-filled with value.
func dateForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Focus date").
				Description("YYYY-MM-DD").
				Placeholder(*value).
				Value(value).
				Validate(validateDay),
		),
	).WithTheme(formTheme()).WithShowHelp(false)
}

func promptDate(current string) (string, error) {
	value := current
	if err := dateForm(&value).Run(); err != nil {
		return "", err
	}
	return value, nil
}

func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(formTheme()).WithShowHelp(false)
}

// huhConfirmer asks on the terminal. An aborted form counts as "no".
type huhConfirmer struct{}

func (huhConfirmer) Confirm(message string) bool {
	var ok bool
	if err := confirmForm(message, &ok).Run(); err != nil {
		return false
	}
	return ok
}

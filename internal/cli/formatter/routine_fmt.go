package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/contract"
	"github.com/alexanderramin/gatetrack/internal/domain"
)

// FormatRoutine renders the daily routine by category followed by the
// add-on checklist. Placeholder tasks show the active subject.
func FormatRoutine(c *catalog.Catalog, s contract.ProgressSummary, checks Checks) string {
	subject := ""
	if s.ActiveEntry != nil {
		subject = s.ActiveEntry.Subject
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s banked of %s · %d tasks left\n\n",
		Bold(FormatHours(s.RoutineHoursCompleted)), FormatHours(s.RoutineHoursTotal), s.RoutineTasksLeft))

	for _, cat := range domain.RoutineCategories {
		items := c.RoutineByCategory(cat)
		if len(items) == 0 {
			continue
		}
		b.WriteString(CategoryStyle(cat).Bold(true).Render(strings.ToUpper(string(cat))) + "\n")
		for _, item := range items {
			done := checks.routine(item.ID)
			line := fmt.Sprintf("  %s %-18s %s %s  %s",
				Checkbox(done),
				Dim(item.Time),
				Strike(item.DisplayTask(subject), done),
				Dim("("+FormatHours(item.Duration)+")"),
				Dim(item.ID))
			b.WriteString(line + "\n")
			if details := domain.StrFromPtr(item.Details); details != "" && !done {
				b.WriteString("      " + Dim(details) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if addOns := c.AddOns(); len(addOns) > 0 {
		b.WriteString(StyleHeader.Render("ADD-ONS") + "\n")
		for _, a := range addOns {
			done := checks.addOn(a.ID)
			label := a.Label
			if icon := domain.StrFromPtr(a.Icon); icon != "" {
				label = icon + " " + label
			}
			b.WriteString(fmt.Sprintf("  %s %s  %s\n", Checkbox(done), Strike(label, done), Dim(a.ID)))
		}
	}

	return RenderBox("Daily Routine", strings.TrimRight(b.String(), "\n"))
}

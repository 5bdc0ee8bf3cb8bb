package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Checkbox renders a done or open marker.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// Strike renders completed item text dimmed and struck through.
func Strike(text string, done bool) string {
	if done {
		return StyleDim.Strikethrough(true).Render(text)
	}
	return StyleFg.Render(text)
}

// FormatHours renders hours with one decimal, e.g. "3.5h".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

// HumanDay renders a day like "Sat, 29 Nov 2025".
func HumanDay(d domain.Day) string {
	if d.IsZero() {
		return "--"
	}
	return d.Format("Mon, 2 Jan 2006")
}

// DayOfPlanLabel renders "Day 5 of 72", or "Outside plan".
func DayOfPlanLabel(day, total int) string {
	if day <= 0 {
		return Dim("Outside plan")
	}
	return fmt.Sprintf("Day %d of %d", day, total)
}

// TestDayBadge marks test days.
func TestDayBadge(e *domain.ScheduleEntry) string {
	if e == nil || !e.TestDay() {
		return ""
	}
	return StyleRed.Render("TEST DAY")
}

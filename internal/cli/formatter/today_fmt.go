package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gatetrack/internal/contract"
	"github.com/alexanderramin/gatetrack/internal/domain"
)

const todayBarWidth = 20

// Checks answers "is this id done?" for each completion set.
type Checks struct {
	Task    func(id string) bool
	Routine func(id string) bool
	AddOn   func(id string) bool
}

func (c Checks) task(id string) bool    { return c.Task != nil && c.Task(id) }
func (c Checks) routine(id string) bool { return c.Routine != nil && c.Routine(id) }
func (c Checks) addOn(id string) bool   { return c.AddOn != nil && c.AddOn(id) }

// FormatToday renders the focus day: date, active entry with its tasks, and
// the daily counters.
func FormatToday(s contract.ProgressSummary, checks Checks) string {
	var b strings.Builder

	b.WriteString(Bold(HumanDay(s.FocusDate)) + "  " + DayOfPlanLabel(s.DayOfPlan, s.PlanDays) + "\n\n")

	if s.ActiveEntry == nil {
		b.WriteString(StyleYellow.Render(contract.RestLabel) + "\n")
		b.WriteString(Dim("No schedule entry covers this day. Catch up on backlog or revise.") + "\n")
	} else {
		b.WriteString(FormatEntryDetail(s.ActiveEntry, checks))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Overall    %s  %s\n",
		RenderPercent(s.Percent, todayBarWidth),
		Dim(fmt.Sprintf("%d/%d tasks", s.CompletedTasks, s.TotalTasks))))
	b.WriteString(fmt.Sprintf("Routine    %s  %s\n",
		RenderProgress(hoursFraction(s), todayBarWidth),
		Dim(fmt.Sprintf("%s of %s banked", FormatHours(s.RoutineHoursCompleted), FormatHours(s.RoutineHoursTotal)))))
	b.WriteString(fmt.Sprintf("Remaining  %s\n", remainingLabel(s.DailyRemaining)))

	return RenderBox("Today", b.String())
}

// FormatEntryDetail renders one schedule entry with its task checklist.
func FormatEntryDetail(e *domain.ScheduleEntry, checks Checks) string {
	var b strings.Builder

	title := StyleHeader.Render(e.Subject)
	if badge := TestDayBadge(e); badge != "" {
		title += "  " + badge
	}
	b.WriteString(title + "\n")
	b.WriteString(Dim(fmt.Sprintf("%s · Phase %d · %s", e.DateRange, e.Phase, e.ID)) + "\n")
	if e.Focus != "" {
		b.WriteString(StyleBlue.Render("Focus: ") + e.Focus + "\n")
	}
	b.WriteString("\n")

	for i, task := range e.Tasks {
		id := e.TaskID(i)
		done := checks.task(id)
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", Checkbox(done), Strike(task, done), Dim(id)))
	}
	return b.String()
}

func hoursFraction(s contract.ProgressSummary) float64 {
	if s.RoutineHoursTotal <= 0 {
		return 0
	}
	return s.RoutineHoursCompleted / s.RoutineHoursTotal
}

func remainingLabel(n int) string {
	if n == 0 {
		return StyleGreen.Render("all daily items done")
	}
	return StyleYellow.Render(fmt.Sprintf("%d daily items left", n))
}

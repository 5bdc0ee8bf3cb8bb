package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gatetrack/internal/contract"
)

const statusBarWidth = 24

// FormatStatus renders overall and per-phase progress plus today's counters.
func FormatStatus(planName string, s contract.ProgressSummary) string {
	var b strings.Builder

	b.WriteString(Bold(planName) + "\n")
	b.WriteString(fmt.Sprintf("%s · %s · %s\n\n",
		HumanDay(s.FocusDate), DayOfPlanLabel(s.DayOfPlan, s.PlanDays), StyleBlue.Render(s.ActiveLabel)))

	b.WriteString(fmt.Sprintf("Syllabus  %s  %s\n\n",
		RenderPercent(s.Percent, statusBarWidth),
		Dim(fmt.Sprintf("%d/%d tasks", s.CompletedTasks, s.TotalTasks))))

	rows := make([][]string, 0, len(s.Phases))
	for _, p := range s.Phases {
		rows = append(rows, []string{
			PhaseLabel(p.Phase),
			fmt.Sprintf("%d", p.Entries),
			RenderPercent(p.Percent, scheduleBarWidth),
			Dim(fmt.Sprintf("%d/%d", p.Done, p.Total)),
		})
	}
	b.WriteString(RenderTable([]string{"PHASE", "ENTRIES", "PROGRESS", "DONE"}, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Routine   %s of %s · %d tasks left\n",
		FormatHours(s.RoutineHoursCompleted), FormatHours(s.RoutineHoursTotal), s.RoutineTasksLeft))
	b.WriteString(fmt.Sprintf("Add-ons   %d left\n", s.AddOnsLeft))
	b.WriteString(fmt.Sprintf("Today     %s\n", remainingLabel(s.DailyRemaining)))
	b.WriteString(Dim(fmt.Sprintf("Theme: %s", s.Theme)))

	return RenderBox("Status", b.String())
}

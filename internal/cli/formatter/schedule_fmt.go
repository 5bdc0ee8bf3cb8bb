package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gatetrack/internal/contract"
	"github.com/alexanderramin/gatetrack/internal/domain"
)

const scheduleBarWidth = 10

// FormatSchedule renders the schedule grouped by phase. When phase is
// positive only that phase is shown. The active entry is marked.
func FormatSchedule(entries []domain.ScheduleEntry, s contract.ProgressSummary, phase int) string {
	progress := make(map[string]contract.EntryProgress, len(s.Entries))
	for _, p := range s.Entries {
		progress[p.EntryID] = p
	}
	activeID := ""
	if s.ActiveEntry != nil {
		activeID = s.ActiveEntry.ID
	}

	var b strings.Builder
	for _, pp := range s.Phases {
		if phase > 0 && pp.Phase != phase {
			continue
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", PhaseLabel(pp.Phase), RenderPercent(pp.Percent, scheduleBarWidth)))

		var rows [][]string
		for i := range entries {
			e := &entries[i]
			if e.Phase != pp.Phase {
				continue
			}
			p := progress[e.ID]
			marker := " "
			if e.ID == activeID {
				marker = StyleGreen.Render("▶")
			}
			subject := e.Subject
			if e.TestDay() {
				subject += " " + StyleRed.Render("(test)")
			}
			rows = append(rows, []string{
				marker,
				Dim(e.DateRange),
				Bold(subject),
				RenderPercent(p.Percent, scheduleBarWidth),
				Dim(fmt.Sprintf("%d/%d", p.Done, p.Total)),
				Dim(e.ID),
			})
		}
		b.WriteString(RenderTable([]string{"", "DATES", "SUBJECT", "PROGRESS", "DONE", "ID"}, rows))
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return Dim(fmt.Sprintf("No entries in phase %d.", phase)) + "\n"
	}
	return RenderBox("Schedule", strings.TrimRight(b.String(), "\n"))
}

// Package contract holds the read models shown to users. Everything here is
// derived on demand from the catalog and the completion sets; nothing is
// stored.
package contract

import (
	"math"

	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/alexanderramin/gatetrack/internal/scheduler"
	"github.com/samber/lo"
)

// RestLabel is shown when the focus date falls outside every schedule entry.
const RestLabel = "Rest / Buffer"

// Snapshot is the store state the read model is computed from.
type Snapshot struct {
	FocusDate domain.Day
	Tasks     domain.CompletionSet
	Routine   domain.CompletionSet
	AddOns    domain.CompletionSet
	Theme     domain.ThemeMode
}

type EntryProgress struct {
	EntryID  string
	Phase    int
	Subject  string
	Done     int
	Total    int
	Percent  int
	Complete bool
}

type PhaseProgress struct {
	Phase   int
	Entries int
	Done    int
	Total   int
	Percent int
}

type ProgressSummary struct {
	FocusDate domain.Day
	DayOfPlan int
	PlanDays  int
	Theme     domain.ThemeMode

	ActiveEntry *domain.ScheduleEntry
	ActiveLabel string

	TotalTasks     int
	CompletedTasks int
	Percent        int

	RoutineHoursTotal     float64
	RoutineHoursCompleted float64
	RoutineTasksLeft      int
	AddOnsLeft            int
	DailyRemaining        int

	Entries []EntryProgress
	Phases  []PhaseProgress
}

// Percent returns round(100*done/total) clamped to [0, 100], or 0 when
// total is not positive.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(done) / float64(total)))
	return max(0, min(100, p))
}

// CompletedTasks counts completed ids that name a task in the catalog.
func CompletedTasks(c *catalog.Catalog, tasks domain.CompletionSet) int {
	return tasks.CountIn(c.HasTaskID)
}

// ProgressOf computes one entry's progress.
func ProgressOf(e *domain.ScheduleEntry, tasks domain.CompletionSet) EntryProgress {
	done := lo.CountBy(e.TaskIDs(), tasks.Contains)
	total := len(e.Tasks)
	return EntryProgress{
		EntryID:  e.ID,
		Phase:    e.Phase,
		Subject:  e.Subject,
		Done:     done,
		Total:    total,
		Percent:  Percent(done, total),
		Complete: total > 0 && done == total,
	}
}

// EntriesProgress returns progress for every entry in catalog order.
func EntriesProgress(c *catalog.Catalog, tasks domain.CompletionSet) []EntryProgress {
	entries := c.Entries()
	out := make([]EntryProgress, len(entries))
	for i := range entries {
		out[i] = ProgressOf(&entries[i], tasks)
	}
	return out
}

// PhasesProgress rolls entry progress up by phase, ordered by phase number.
func PhasesProgress(c *catalog.Catalog, tasks domain.CompletionSet) []PhaseProgress {
	byPhase := lo.GroupBy(EntriesProgress(c, tasks), func(p EntryProgress) int { return p.Phase })
	out := make([]PhaseProgress, 0, len(byPhase))
	for _, phase := range c.Phases() {
		group := byPhase[phase]
		done := lo.SumBy(group, func(p EntryProgress) int { return p.Done })
		total := lo.SumBy(group, func(p EntryProgress) int { return p.Total })
		out = append(out, PhaseProgress{
			Phase:   phase,
			Entries: len(group),
			Done:    done,
			Total:   total,
			Percent: Percent(done, total),
		})
	}
	return out
}

// CompletedRoutineHours sums the durations of completed routine items.
func CompletedRoutineHours(c *catalog.Catalog, routine domain.CompletionSet) float64 {
	return lo.SumBy(routine.IDs(), c.RoutineDuration)
}

// DailyRemaining is the number of routine items and add-ons not yet checked
// today. Ids unknown to the catalog do not count.
func DailyRemaining(c *catalog.Catalog, routine, addOns domain.CompletionSet) int {
	return routineLeft(c, routine) + addOnsLeft(c, addOns)
}

func routineLeft(c *catalog.Catalog, routine domain.CompletionSet) int {
	return max(0, len(c.Routine())-routine.CountIn(c.HasRoutineID))
}

func addOnsLeft(c *catalog.Catalog, addOns domain.CompletionSet) int {
	return max(0, len(c.AddOns())-addOns.CountIn(c.HasAddOnID))
}

// ActiveLabel is the active entry's subject, or RestLabel.
func ActiveLabel(active *domain.ScheduleEntry) string {
	if active == nil {
		return RestLabel
	}
	return active.Subject
}

// Summarize builds the full read model.
func Summarize(c *catalog.Catalog, s Snapshot) ProgressSummary {
	active, _ := scheduler.ResolveIn(s.FocusDate, c)
	total := c.TotalTasks()
	done := CompletedTasks(c, s.Tasks)
	return ProgressSummary{
		FocusDate:             s.FocusDate,
		DayOfPlan:             scheduler.DayOfPlan(s.FocusDate, c),
		PlanDays:              scheduler.PlanLength(c),
		Theme:                 s.Theme,
		ActiveEntry:           active,
		ActiveLabel:           ActiveLabel(active),
		TotalTasks:            total,
		CompletedTasks:        done,
		Percent:               Percent(done, total),
		RoutineHoursTotal:     c.TotalRoutineHours(),
		RoutineHoursCompleted: CompletedRoutineHours(c, s.Routine),
		RoutineTasksLeft:      routineLeft(c, s.Routine),
		AddOnsLeft:            addOnsLeft(c, s.AddOns),
		DailyRemaining:        DailyRemaining(c, s.Routine, s.AddOns),
		Entries:               EntriesProgress(c, s.Tasks),
		Phases:                PhasesProgress(c, s.Tasks),
	}
}

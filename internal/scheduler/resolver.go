// Package scheduler maps calendar days onto the plan's schedule entries.
package scheduler

import (
	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/domain"
)

// Resolve returns the first entry, in authored order, whose inclusive date
// range contains focus. Entries whose range does not parse are skipped.
// Overlapping ranges are not expected; if present, the earliest entry wins.
func Resolve(focus domain.Day, entries []domain.ScheduleEntry, season domain.Season) (*domain.ScheduleEntry, bool) {
	if focus.IsZero() {
		return nil, false
	}
	for i := range entries {
		r, err := entries[i].Range()
		if err != nil {
			continue
		}
		start, end := season.Bounds(r)
		if focus.Within(start, end) {
			e := entries[i]
			return &e, true
		}
	}
	return nil, false
}

// ResolveIn resolves focus against a catalog.
func ResolveIn(focus domain.Day, c *catalog.Catalog) (*domain.ScheduleEntry, bool) {
	return Resolve(focus, c.Entries(), c.Season)
}

// DayOfPlan returns the 1-based day number of focus within the plan span,
// or 0 when focus falls outside it.
func DayOfPlan(focus domain.Day, c *catalog.Catalog) int {
	start, end := c.StartDay(), c.EndDay()
	if focus.IsZero() || start.IsZero() || end.IsZero() || !focus.Within(start, end) {
		return 0
	}
	return start.DaysUntil(focus) + 1
}

// PlanLength returns the number of days covered by the plan, inclusive.
func PlanLength(c *catalog.Catalog) int {
	start, end := c.StartDay(), c.EndDay()
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return start.DaysUntil(end) + 1
}

// Package catalog holds the immutable study plan: schedule entries, the
// daily routine, add-on habits and tips.
package catalog

import (
	"sort"

	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/samber/lo"
)

// Catalog is read-only after construction. Accessors that return slices
// return copies.
type Catalog struct {
	Name    string
	Season  domain.Season
	entries []domain.ScheduleEntry
	routine []domain.RoutineItem
	addOns  []domain.AddOn
	tips    []domain.Tip

	taskIDs    map[string]bool
	routineIDs map[string]bool
	addOnIDs   map[string]bool
}

// New builds a catalog and indexes its identifiers.
func New(name string, season domain.Season, entries []domain.ScheduleEntry, routine []domain.RoutineItem, addOns []domain.AddOn, tips []domain.Tip) *Catalog {
	c := &Catalog{
		Name:       name,
		Season:     season,
		entries:    cloneEntries(entries),
		routine:    append([]domain.RoutineItem(nil), routine...),
		addOns:     append([]domain.AddOn(nil), addOns...),
		tips:       append([]domain.Tip(nil), tips...),
		taskIDs:    make(map[string]bool),
		routineIDs: make(map[string]bool),
		addOnIDs:   make(map[string]bool),
	}
	for i := range c.entries {
		for _, id := range c.entries[i].TaskIDs() {
			c.taskIDs[id] = true
		}
	}
	for _, r := range c.routine {
		c.routineIDs[r.ID] = true
	}
	for _, a := range c.addOns {
		c.addOnIDs[a.ID] = true
	}
	return c
}

func cloneEntries(entries []domain.ScheduleEntry) []domain.ScheduleEntry {
	out := make([]domain.ScheduleEntry, len(entries))
	for i, e := range entries {
		e.Tasks = append([]string(nil), e.Tasks...)
		out[i] = e
	}
	return out
}

func (c *Catalog) Entries() []domain.ScheduleEntry { return cloneEntries(c.entries) }
func (c *Catalog) Routine() []domain.RoutineItem { return append([]domain.RoutineItem(nil), c.routine...) }
func (c *Catalog) AddOns() []domain.AddOn { return append([]domain.AddOn(nil), c.addOns...) }
func (c *Catalog) Tips() []domain.Tip { return append([]domain.Tip(nil), c.tips...) }

// EntryByID returns a copy of the entry with the given id.
func (c *Catalog) EntryByID(id string) (domain.ScheduleEntry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			e.Tasks = append([]string(nil), e.Tasks...)
			return e, true
		}
	}
	return domain.ScheduleEntry{}, false
}

// TotalTasks counts tasks across all schedule entries.
func (c *Catalog) TotalTasks() int {
	return len(c.taskIDs)
}

func (c *Catalog) HasTaskID(id string) bool { return c.taskIDs[id] }
func (c *Catalog) HasRoutineID(id string) bool { return c.routineIDs[id] }
func (c *Catalog) HasAddOnID(id string) bool { return c.addOnIDs[id] }

// Phases returns the distinct phase numbers in ascending order.
func (c *Catalog) Phases() []int {
	phases := lo.Uniq(lo.Map(c.entries, func(e domain.ScheduleEntry, _ int) int { return e.Phase }))
	sort.Ints(phases)
	return phases
}

// EntriesInPhase returns the entries of one phase in authored order.
func (c *Catalog) EntriesInPhase(phase int) []domain.ScheduleEntry {
	return cloneEntries(lo.Filter(c.entries, func(e domain.ScheduleEntry, _ int) bool {
		return e.Phase == phase
	}))
}

// RoutineByCategory returns the routine items of one category in order.
func (c *Catalog) RoutineByCategory(cat domain.RoutineCategory) []domain.RoutineItem {
	return lo.Filter(c.routine, func(r domain.RoutineItem, _ int) bool {
		return r.Category == cat
	})
}

// RoutineDuration returns the duration of a routine item, 0 if unknown.
func (c *Catalog) RoutineDuration(id string) float64 {
	for _, r := range c.routine {
		if r.ID == id {
			return r.Duration
		}
	}
	return 0
}

// TotalRoutineHours sums the duration of every routine item.
func (c *Catalog) TotalRoutineHours() float64 {
	return lo.SumBy(c.routine, func(r domain.RoutineItem) float64 { return r.Duration })
}

// StartDay is the first day of the first entry. Zero if the catalog is
// empty or the range does not parse.
func (c *Catalog) StartDay() domain.Day {
	if len(c.entries) == 0 {
		return domain.Day{}
	}
	r, err := c.entries[0].Range()
	if err != nil {
		return domain.Day{}
	}
	start, _ := c.Season.Bounds(r)
	return start
}

// EndDay is the last day of the last entry.
func (c *Catalog) EndDay() domain.Day {
	if len(c.entries) == 0 {
		return domain.Day{}
	}
	r, err := c.entries[len(c.entries)-1].Range()
	if err != nil {
		return domain.Day{}
	}
	_, end := c.Season.Bounds(r)
	return end
}

// DefaultFocusDay is where a fresh install starts: the plan's first day.
func (c *Catalog) DefaultFocusDay() domain.Day {
	return c.StartDay()
}

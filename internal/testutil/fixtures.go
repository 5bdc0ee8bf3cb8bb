package testutil

import (
	"time"

	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/domain"
)

// TinySeason places Jan and later in 2026, Dec in 2025.
var TinySeason = domain.Season{StartYear: 2025, StartMonth: time.December}

// EntryOption customizes a fixture schedule entry.
type EntryOption func(*domain.ScheduleEntry)

func WithPhase(p int) EntryOption {
	return func(e *domain.ScheduleEntry) { e.Phase = p }
}

func WithTasks(tasks ...string) EntryOption {
	return func(e *domain.ScheduleEntry) { e.Tasks = tasks }
}

func WithTestDay() EntryOption {
	return func(e *domain.ScheduleEntry) { e.IsTestDay = domain.Ptr(true) }
}

func NewTestEntry(id, dateRange, subject string, opts ...EntryOption) domain.ScheduleEntry {
	e := domain.ScheduleEntry{
		ID:        id,
		Phase:     1,
		DateRange: dateRange,
		Subject:   subject,
		Focus:     subject + " basics",
		Tasks:     []string{"Read notes", "Solve PYQs"},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func NewTestRoutineItem(id string, cat domain.RoutineCategory, hours float64, task string) domain.RoutineItem {
	return domain.RoutineItem{ID: id, Time: "9:00 - 10:00", Task: task, Category: cat, Duration: hours}
}

// NewTinyCatalog returns a three-entry plan spanning 30 Dec 2025 to 5 Jan 2026:
// 3 + 2 + 1 tasks, three routine items (4.5h) and two add-ons.
func NewTinyCatalog() *catalog.Catalog {
	entries := []domain.ScheduleEntry{
		NewTestEntry("t-alg", "30 Dec - 31 Dec", "Algebra", WithTasks("Groups", "Rings", "Fields")),
		NewTestEntry("t-geo", "1 Jan - 3 Jan", "Geometry"),
		NewTestEntry("t-mock", "4 Jan - 5 Jan", "Mock", WithPhase(2), WithTasks("Full mock"), WithTestDay()),
	}
	routine := []domain.RoutineItem{
		NewTestRoutineItem("r-am", domain.CategoryMorning, 2, "Main Subject (Theory)"),
		NewTestRoutineItem("r-noon", domain.CategoryMidDay, 1.5, "PYQ practice"),
		NewTestRoutineItem("r-pm", domain.CategoryEvening, 1, "Revision"),
	}
	addOns := []domain.AddOn{
		{ID: "a-water", Label: "Drink water", Icon: domain.Ptr("💧")},
		{ID: "a-walk", Label: "Walk"},
	}
	tips := []domain.Tip{
		{Title: "Consistency", Content: "Show up daily.", Highlight: domain.Ptr(true)},
		{Title: "Rest", Content: "Sleep eight hours."},
	}
	return catalog.New("Tiny Plan", TinySeason, entries, routine, addOns, tips)
}

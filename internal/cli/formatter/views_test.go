package formatter

import (
	"testing"

	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/contract"
	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateSummary(focus domain.Day, tasks ...string) (*catalog.Catalog, contract.ProgressSummary, Checks) {
	c := catalog.GATE()
	set := domain.NewCompletionSet(tasks...)
	routine := domain.NewCompletionSet("dr-3")
	addOns := domain.NewCompletionSet("da-2")
	s := contract.Summarize(c, contract.Snapshot{
		FocusDate: focus,
		Tasks:     set,
		Routine:   routine,
		AddOns:    addOns,
		Theme:     domain.ThemeDark,
	})
	return c, s, Checks{Task: set.Contains, Routine: routine.Contains, AddOn: addOns.Contains}
}

func TestFormatToday_ActiveEntry(t *testing.T) {
	_, s, checks := gateSummary(domain.NewDay(2025, 11, 30), "p1-c-lang-task-0", "p1-c-lang-task-1")

	got := stripANSI(FormatToday(s, checks))

	assert.Contains(t, got, "Sun, 30 Nov 2025")
	assert.Contains(t, got, "Day 2 of 72")
	assert.Contains(t, got, "C Programming")
	assert.Contains(t, got, "Focus: FULL (Fast Mode)")
	assert.Contains(t, got, "✔ Pointers")
	assert.Contains(t, got, "○ Functions")
	assert.Contains(t, got, "p1-c-lang-task-2")
	assert.Contains(t, got, "2/83 tasks")
	assert.Contains(t, got, "2.0h of 12.0h banked")
	assert.Contains(t, got, "14 daily items left")
}

func TestFormatToday_RestDay(t *testing.T) {
	_, s, checks := gateSummary(domain.NewDay(2026, 3, 1))

	got := stripANSI(FormatToday(s, checks))

	assert.Contains(t, got, "Rest / Buffer")
	assert.Contains(t, got, "Outside plan")
}

func TestFormatSchedule_MarksActiveAndFilters(t *testing.T) {
	c, s, _ := gateSummary(domain.NewDay(2025, 12, 5))

	all := stripANSI(FormatSchedule(c.Entries(), s, 0))
	assert.Contains(t, all, "PHASE 1")
	assert.Contains(t, all, "PHASE 3")
	assert.Contains(t, all, "▶")
	assert.Contains(t, all, "p1-dsa-1")

	one := stripANSI(FormatSchedule(c.Entries(), s, 2))
	assert.NotContains(t, one, "PHASE 1")
	assert.Contains(t, one, "PHASE 2")

	none := stripANSI(FormatSchedule(c.Entries(), s, 9))
	assert.Contains(t, none, "No entries in phase 9")
}

func TestFormatRoutine_SubstitutesSubject(t *testing.T) {
	c, s, checks := gateSummary(domain.NewDay(2025, 12, 5))
	require.NotNil(t, s.ActiveEntry)

	got := stripANSI(FormatRoutine(c, s, checks))

	assert.Contains(t, got, s.ActiveEntry.Subject+" (Core Study)")
	assert.NotContains(t, got, "Main Subject")
	assert.Contains(t, got, "MORNING")
	assert.Contains(t, got, "MID-DAY")
	assert.Contains(t, got, "ADD-ONS")
	assert.Contains(t, got, "✔ 💧 Drink Water Every 1 Hr")
}

func TestFormatRoutine_RestDayUsesFallback(t *testing.T) {
	c, s, checks := gateSummary(domain.NewDay(2026, 3, 1))
	got := stripANSI(FormatRoutine(c, s, checks))
	assert.Contains(t, got, "Study Session (General)")
	assert.Contains(t, got, "General Revision + PYQs")
	assert.Contains(t, got, "Continue Study Session + PYQs")
	assert.NotContains(t, got, "Study Session (Core Study)")
}

func TestFormatRoutine_ActiveSubjectNamesRevision(t *testing.T) {
	c, s, checks := gateSummary(domain.NewDay(2025, 11, 30))
	got := stripANSI(FormatRoutine(c, s, checks))
	assert.Contains(t, got, "C Programming (Core Study)")
	assert.Contains(t, got, "C Programming Revision + PYQs")
	assert.NotContains(t, got, "Topic Revision + PYQs")
}

func TestFormatTips(t *testing.T) {
	got := stripANSI(FormatTips(catalog.GATE().Tips()))
	assert.Contains(t, got, "TOPPER TIPS")
	assert.Contains(t, got, "★")

	assert.Contains(t, stripANSI(FormatTips(nil)), "No tips")
}

func TestFormatStatus(t *testing.T) {
	c, s, _ := gateSummary(domain.NewDay(2025, 11, 29), "p1-c-lang-task-0")

	got := stripANSI(FormatStatus(c.Name, s))

	assert.Contains(t, got, c.Name)
	assert.Contains(t, got, "Day 1 of 72")
	assert.Contains(t, got, "C Programming")
	assert.Contains(t, got, "1/83 tasks")
	assert.Contains(t, got, "PHASE 1")
	assert.Contains(t, got, "Theme: dark")
}

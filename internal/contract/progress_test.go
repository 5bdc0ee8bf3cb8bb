package contract_test

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/gatetrack/internal/catalog"
	"github.com/alexanderramin/gatetrack/internal/contract"
	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/alexanderramin/gatetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		done, total int
		want        int
	}{
		{"empty catalog", 0, 0, 0},
		{"negative total", 3, -1, 0},
		{"none done", 0, 8, 0},
		{"quarter", 2, 8, 25},
		{"rounds half up", 1, 8, 13},
		{"thirds", 1, 3, 33},
		{"two thirds", 2, 3, 67},
		{"all done", 83, 83, 100},
		{"more done than total clamps", 9, 8, 100},
		{"negative done clamps", -1, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contract.Percent(tt.done, tt.total))
		})
	}
}

func TestPercent_AlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		total := rng.Intn(200)
		done := rng.Intn(total + 1)
		p := contract.Percent(done, total)
		require.GreaterOrEqual(t, p, 0)
		require.LessOrEqual(t, p, 100)
	}
}

func TestProgressOf_CLanguageQuarter(t *testing.T) {
	c := catalog.GATE()
	entry, ok := c.EntryByID("p1-c-lang")
	require.True(t, ok)
	require.Len(t, entry.Tasks, 8)

	tasks := domain.NewCompletionSet("p1-c-lang-task-0", "p1-c-lang-task-3")
	got := contract.ProgressOf(&entry, tasks)

	assert.Equal(t, 2, got.Done)
	assert.Equal(t, 8, got.Total)
	assert.Equal(t, 25, got.Percent)
	assert.False(t, got.Complete)
}

func TestProgressOf_Complete(t *testing.T) {
	e := testutil.NewTestEntry("e", "1 Jan - 1 Jan", "X", testutil.WithTasks("only"))
	got := contract.ProgressOf(&e, domain.NewCompletionSet("e-task-0"))
	assert.True(t, got.Complete)
	assert.Equal(t, 100, got.Percent)

	empty := testutil.NewTestEntry("z", "2 Jan - 2 Jan", "Y", testutil.WithTasks())
	got = contract.ProgressOf(&empty, domain.NewCompletionSet())
	assert.False(t, got.Complete, "an entry with no tasks is never complete")
	assert.Equal(t, 0, got.Percent)
}

func TestCompletedTasks_IgnoresOrphans(t *testing.T) {
	c := testutil.NewTinyCatalog()
	tasks := domain.NewCompletionSet("t-alg-task-0", "t-alg-task-9", "gone-task-0", "t-mock-task-0")
	assert.Equal(t, 2, contract.CompletedTasks(c, tasks))
}

func TestPhasesProgress(t *testing.T) {
	c := testutil.NewTinyCatalog()
	tasks := domain.NewCompletionSet("t-alg-task-0", "t-geo-task-1", "t-mock-task-0")

	phases := contract.PhasesProgress(c, tasks)
	require.Len(t, phases, 2)
	assert.Equal(t, contract.PhaseProgress{Phase: 1, Entries: 2, Done: 2, Total: 5, Percent: 40}, phases[0])
	assert.Equal(t, contract.PhaseProgress{Phase: 2, Entries: 1, Done: 1, Total: 1, Percent: 100}, phases[1])
}

func TestDailyRemaining(t *testing.T) {
	c := testutil.NewTinyCatalog()

	assert.Equal(t, 5, contract.DailyRemaining(c, domain.NewCompletionSet(), domain.NewCompletionSet()))
	assert.Equal(t, 3, contract.DailyRemaining(c,
		domain.NewCompletionSet("r-am"), domain.NewCompletionSet("a-walk")))
	assert.Equal(t, 5, contract.DailyRemaining(c,
		domain.NewCompletionSet("unknown-1", "unknown-2"), domain.NewCompletionSet("unknown-3")),
		"unknown ids do not reduce the remaining count")
	assert.Equal(t, 0, contract.DailyRemaining(c,
		domain.NewCompletionSet("r-am", "r-noon", "r-pm"), domain.NewCompletionSet("a-water", "a-walk")))
}

func TestCompletedRoutineHours(t *testing.T) {
	c := testutil.NewTinyCatalog()
	assert.InDelta(t, 3.5, contract.CompletedRoutineHours(c, domain.NewCompletionSet("r-am", "r-noon", "nope")), 1e-9)
}

func TestSummarize_InsidePlan(t *testing.T) {
	c := testutil.NewTinyCatalog()
	snap := contract.Snapshot{
		FocusDate: domain.NewDay(2026, 1, 2),
		Tasks:     domain.NewCompletionSet("t-geo-task-0"),
		Routine:   domain.NewCompletionSet("r-pm"),
		AddOns:    domain.NewCompletionSet("a-water"),
		Theme:     domain.ThemeDark,
	}

	s := contract.Summarize(c, snap)

	require.NotNil(t, s.ActiveEntry)
	assert.Equal(t, "t-geo", s.ActiveEntry.ID)
	assert.Equal(t, "Geometry", s.ActiveLabel)
	assert.Equal(t, 4, s.DayOfPlan)
	assert.Equal(t, 7, s.PlanDays)
	assert.Equal(t, 6, s.TotalTasks)
	assert.Equal(t, 1, s.CompletedTasks)
	assert.Equal(t, 17, s.Percent)
	assert.InDelta(t, 4.5, s.RoutineHoursTotal, 1e-9)
	assert.InDelta(t, 1.0, s.RoutineHoursCompleted, 1e-9)
	assert.Equal(t, 2, s.RoutineTasksLeft)
	assert.Equal(t, 1, s.AddOnsLeft)
	assert.Equal(t, 3, s.DailyRemaining)
	assert.Len(t, s.Entries, 3)
	assert.Equal(t, domain.ThemeDark, s.Theme)
}

func TestSummarize_OutsidePlan(t *testing.T) {
	c := testutil.NewTinyCatalog()
	s := contract.Summarize(c, contract.Snapshot{FocusDate: domain.NewDay(2026, 3, 1)})

	assert.Nil(t, s.ActiveEntry)
	assert.Equal(t, contract.RestLabel, s.ActiveLabel)
	assert.Equal(t, 0, s.DayOfPlan)
}

func TestSummarize_EmptyCatalog(t *testing.T) {
	c := catalog.New("Empty", testutil.TinySeason, nil, nil, nil, nil)
	s := contract.Summarize(c, contract.Snapshot{
		FocusDate: domain.NewDay(2026, 1, 1),
		Tasks:     domain.NewCompletionSet("stale-task-0"),
	})

	assert.Equal(t, 0, s.TotalTasks)
	assert.Equal(t, 0, s.CompletedTasks)
	assert.Equal(t, 0, s.Percent)
	assert.Equal(t, 0, s.DailyRemaining)
	assert.Empty(t, s.Phases)
}

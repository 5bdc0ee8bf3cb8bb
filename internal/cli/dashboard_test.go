package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/gatetrack/internal/cli/formatter"
	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/alexanderramin/gatetrack/internal/service"
	"github.com/alexanderramin/gatetrack/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardDriver(t *testing.T, seed map[string]string) (*teatest.Driver, *App) {
	t.Helper()
	app, _ := testApp(t, seed)
	prev := formatter.CurrentTheme()
	t.Cleanup(func() { formatter.SetTheme(prev) })
	d := teatest.New(t, newDashboardModel(context.Background(), app), teatest.WithSize(120, 60))
	return d, app
}

func TestDashboard_InitialView(t *testing.T) {
	d, _ := newDashboardDriver(t, nil)

	view := stripANSI(d.View())
	assert.Contains(t, view, "Daily Routine")
	assert.Contains(t, view, "Full Schedule")
	assert.Contains(t, view, "Topper Tips")
	assert.Contains(t, view, "TODAY · C Programming")
	assert.Contains(t, view, "Day 1 of 72")
	assert.Contains(t, view, "ADD-ONS")
}

func TestDashboard_SpaceTogglesSelectedTask(t *testing.T) {
	d, app := newDashboardDriver(t, nil)

	d.PressSpace()
	assert.True(t, app.Progress.IsTaskDone("p1-c-lang-task-0"))

	d.PressDown()
	d.PressSpace()
	assert.True(t, app.Progress.IsTaskDone("p1-c-lang-task-1"))

	d.PressSpace()
	assert.False(t, app.Progress.IsTaskDone("p1-c-lang-task-1"))
	assert.Contains(t, stripANSI(d.View()), "1/83 tasks")
}

func TestDashboard_TogglesRoutineAfterTasks(t *testing.T) {
	d, app := newDashboardDriver(t, nil)

	// Eight tasks of the active entry come first.
	for range 8 {
		d.PressDown()
	}
	d.PressSpace()
	assert.Equal(t, []string{"dr-1"}, app.Progress.CompletedRoutineIDs())
}

func TestDashboard_CursorStaysInBounds(t *testing.T) {
	d, _ := newDashboardDriver(t, nil)

	d.PressUp()
	m := d.Model().(*dashboardModel)
	assert.Equal(t, 0, m.cursor)

	for range 100 {
		d.PressDown()
	}
	m = d.Model().(*dashboardModel)
	assert.Equal(t, len(m.rows())-1, m.cursor)
}

func TestDashboard_DateKeys(t *testing.T) {
	d, app := newDashboardDriver(t, nil)

	d.Press("]]")
	assert.Equal(t, "2025-12-01", app.Progress.FocusDate().String())

	d.Press("[[[")
	assert.Equal(t, "2025-11-28", app.Progress.FocusDate().String())
	assert.Contains(t, stripANSI(d.View()), "Rest / Buffer")
}

func TestDashboard_ResetAsksFirst(t *testing.T) {
	seed := map[string]string{
		service.KeyRoutine: `["dr-1"]`,
		service.KeyAddOns:  `["da-1"]`,
	}
	d, app := newDashboardDriver(t, seed)

	d.Press("R")
	assert.Contains(t, stripANSI(d.View()), service.ResetPrompt)

	d.Press("n")
	assert.Contains(t, stripANSI(d.View()), "Reset cancelled.")
	assert.Len(t, app.Progress.CompletedRoutineIDs(), 1)

	d.Press("R")
	d.Press("y")
	assert.Empty(t, app.Progress.CompletedRoutineIDs())
	assert.Empty(t, app.Progress.CompletedAddOnIDs())
	assert.Contains(t, stripANSI(d.View()), "New day started.")
}

func TestDashboard_ResetPromptSwallowsOtherKeys(t *testing.T) {
	d, app := newDashboardDriver(t, map[string]string{service.KeyRoutine: `["dr-1"]`})

	d.Press("R")
	d.Press("q")
	assert.False(t, d.Quit())
	d.PressEsc()
	assert.Len(t, app.Progress.CompletedRoutineIDs(), 1)
}

func TestDashboard_CtrlCQuitsFromResetPrompt(t *testing.T) {
	d, app := newDashboardDriver(t, map[string]string{service.KeyRoutine: `["dr-1"]`})

	d.Press("R")
	d.PressCtrlC()
	assert.True(t, d.Quit())
	assert.Len(t, app.Progress.CompletedRoutineIDs(), 1, "quitting does not reset")
}

func TestDashboard_ScheduleTab(t *testing.T) {
	d, app := newDashboardDriver(t, nil)

	d.PressTab()
	m := d.Model().(*dashboardModel)
	require.Equal(t, tabSchedule, m.tab)

	rows := m.rows()
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, row{kind: rowEntry, id: "p1-c-lang", section: rows[0].section}, rows[0])
	assert.Equal(t, rowTask, rows[1].kind, "active entry starts expanded")

	d.PressDown()
	d.PressSpace()
	assert.True(t, app.Progress.IsTaskDone("p1-c-lang-task-0"))

	d.PressUp()
	d.PressEnter()
	m = d.Model().(*dashboardModel)
	assert.Equal(t, rowEntry, m.rows()[1].kind, "enter collapses the entry")
	assert.Contains(t, stripANSI(d.View()), "1/8")
}

func TestDashboard_TabKeys(t *testing.T) {
	d, _ := newDashboardDriver(t, nil)

	d.Press("3")
	assert.Contains(t, stripANSI(d.View()), "TOPPER TIPS")

	d.PressTab()
	assert.Equal(t, tabRoutine, d.Model().(*dashboardModel).tab)

	d.PressShiftTab()
	assert.Equal(t, tabTips, d.Model().(*dashboardModel).tab)
}

func TestDashboard_ThemeToggle(t *testing.T) {
	d, app := newDashboardDriver(t, nil)

	d.Press("t")
	assert.Equal(t, domain.ThemeDark, app.Progress.ThemeMode())
}

func TestDashboard_Quit(t *testing.T) {
	d, _ := newDashboardDriver(t, nil)
	d.Press("q")
	assert.True(t, d.Quit())
}

func TestWindow(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

	assert.Equal(t, lines, window(lines, 3, 0))
	assert.Equal(t, lines, window(lines, 3, 20))
	assert.Equal(t, []string{"0", "1", "2", "3"}, window(lines, 0, 4))
	assert.Equal(t, []string{"6", "7", "8", "9"}, window(lines, 9, 4))
	assert.Equal(t, []string{"3", "4", "5", "6"}, window(lines, 5, 4))
}

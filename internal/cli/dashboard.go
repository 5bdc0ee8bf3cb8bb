package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/gatetrack/internal/cli/formatter"
	"github.com/alexanderramin/gatetrack/internal/domain"
	"github.com/alexanderramin/gatetrack/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// ── tabs and rows ────────────────────────────────────────────────────────────

type dashboardTab int

const (
	tabRoutine dashboardTab = iota
	tabSchedule
	tabTips
)

var tabTitles = []string{"Daily Routine", "Full Schedule", "Topper Tips"}

type rowKind int

const (
	rowTask rowKind = iota
	rowRoutine
	rowAddOn
	rowEntry
)

// row is one selectable line. section is printed above the first row of
// each run of rows sharing it.
type row struct {
	kind    rowKind
	id      string
	section string
}

// ── key map ──────────────────────────────────────────────────────────────────

type dashboardKeys struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Expand  key.Binding
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Reset   key.Binding
	Theme   key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check")),
		Expand:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open entry")),
		PrevDay: key.NewBinding(key.WithKeys("[", "left", "h"), key.WithHelp("[", "prev day")),
		NextDay: key.NewBinding(key.WithKeys("]", "right", "l"), key.WithHelp("]", "next day")),
		Today:   key.NewBinding(key.WithKeys("."), key.WithHelp(".", "today")),
		Reset:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "new day")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.PrevDay, k.NextDay, k.NextTab, k.Reset, k.Help, k.Quit}
}

func (k dashboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Expand},
		{k.PrevDay, k.NextDay, k.Today},
		{k.NextTab, k.PrevTab, k.Theme},
		{k.Reset, k.Help, k.Quit},
	}
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel is the interactive view over the progress service. Every
// key that changes progress calls the service synchronously.
type dashboardModel struct {
	ctx  context.Context
	app  *App
	keys dashboardKeys
	help help.Model

	tab      dashboardTab
	cursor   int
	expanded map[string]bool

	confirming bool
	flash      string

	width, height int
}

func newDashboardModel(ctx context.Context, app *App) *dashboardModel {
	formatter.SetTheme(app.Progress.ThemeMode())
	m := &dashboardModel{
		ctx:      ctx,
		app:      app,
		keys:     newDashboardKeys(),
		help:     help.New(),
		expanded: make(map[string]bool),
	}
	// Open the active entry so its tasks are visible on the schedule tab.
	if e, ok := app.Progress.ActiveEntry(); ok {
		m.expanded[e.ID] = true
	}
	return m
}

func (m *dashboardModel) Init() tea.Cmd { return nil }

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.confirming {
			return m, m.updateConfirm(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

// updateConfirm handles keys while the reset prompt is open. Only y, n,
// esc and ctrl+c act; ctrl+c quits like everywhere else.
func (m *dashboardModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		yes := service.ConfirmFunc(func(string) bool { return true })
		if m.app.Progress.ResetDailyChecklist(m.ctx, yes) {
			m.flash = "New day started. Daily checklist cleared."
		}
	case "n", "N", "esc":
		m.confirming = false
		m.flash = "Reset cancelled."
	case "ctrl+c":
		m.confirming = false
		return tea.Quit
	}
	return nil
}

func (m *dashboardModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""
	p := m.app.Progress

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()
	case key.Matches(msg, m.keys.Expand):
		if r, ok := m.selected(); ok && r.kind == rowEntry {
			m.expanded[r.id] = !m.expanded[r.id]
		}
	case key.Matches(msg, m.keys.PrevDay):
		p.ShiftFocusDate(m.ctx, -1)
		m.clampCursor()
	case key.Matches(msg, m.keys.NextDay):
		p.ShiftFocusDate(m.ctx, 1)
		m.clampCursor()
	case key.Matches(msg, m.keys.Today):
		p.SetFocusDate(m.ctx, domain.Today())
		m.clampCursor()
	case key.Matches(msg, m.keys.Reset):
		m.confirming = true
	case key.Matches(msg, m.keys.Theme):
		formatter.SetTheme(p.ToggleThemeMode(m.ctx))
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab((m.tab + 1) % dashboardTab(len(tabTitles)))
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab((m.tab + dashboardTab(len(tabTitles)) - 1) % dashboardTab(len(tabTitles)))
	default:
		switch msg.String() {
		case "1", "2", "3":
			m.switchTab(dashboardTab(msg.String()[0] - '1'))
		}
	}
	return m, nil
}

func (m *dashboardModel) switchTab(t dashboardTab) {
	m.tab = t
	m.cursor = 0
}

func (m *dashboardModel) clampCursor() {
	if n := len(m.rows()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *dashboardModel) selected() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

func (m *dashboardModel) toggleSelected() {
	r, ok := m.selected()
	if !ok {
		return
	}
	p := m.app.Progress
	switch r.kind {
	case rowTask:
		p.ToggleTask(m.ctx, r.id)
	case rowRoutine:
		p.ToggleRoutineItem(m.ctx, r.id)
	case rowAddOn:
		p.ToggleAddOn(m.ctx, r.id)
	case rowEntry:
		m.expanded[r.id] = !m.expanded[r.id]
	}
}

// rows lists the selectable lines of the current tab.
func (m *dashboardModel) rows() []row {
	c := m.app.Progress.Catalog()
	var rows []row

	switch m.tab {
	case tabRoutine:
		if e, ok := m.app.Progress.ActiveEntry(); ok {
			for _, id := range e.TaskIDs() {
				rows = append(rows, row{kind: rowTask, id: id, section: "TODAY"})
			}
		}
		for _, cat := range domain.RoutineCategories {
			for _, item := range c.RoutineByCategory(cat) {
				rows = append(rows, row{kind: rowRoutine, id: item.ID, section: strings.ToUpper(string(cat))})
			}
		}
		for _, a := range c.AddOns() {
			rows = append(rows, row{kind: rowAddOn, id: a.ID, section: "ADD-ONS"})
		}
	case tabSchedule:
		for _, e := range c.Entries() {
			section := formatter.PhaseLabel(e.Phase)
			rows = append(rows, row{kind: rowEntry, id: e.ID, section: section})
			if m.expanded[e.ID] {
				for _, id := range e.TaskIDs() {
					rows = append(rows, row{kind: rowTask, id: id, section: section})
				}
			}
		}
	}
	return rows
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m *dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	footer := m.viewFooter()
	body := m.viewBody()
	if m.height > 0 {
		avail := m.height - lipgloss.Height(b.String()) - lipgloss.Height(footer) - 1
		body = window(body, m.cursorLine(body), avail)
	}
	b.WriteString(strings.Join(body, "\n"))
	b.WriteString("\n\n")
	b.WriteString(footer)
	return b.String()
}

func (m *dashboardModel) viewHeader() string {
	s := m.app.Progress.Summary()
	title := formatter.StyleHeader.Bold(true).Render(strings.ToUpper(m.app.Progress.Catalog().Name))
	date := formatter.Bold(formatter.HumanDay(s.FocusDate)) + "  " + formatter.DayOfPlanLabel(s.DayOfPlan, s.PlanDays)
	overall := fmt.Sprintf("Overall %s  %s",
		formatter.RenderPercent(s.Percent, 24),
		formatter.Dim(fmt.Sprintf("%d/%d tasks · %s/%s routine · %d daily left",
			s.CompletedTasks, s.TotalTasks,
			formatter.FormatHours(s.RoutineHoursCompleted), formatter.FormatHours(s.RoutineHoursTotal),
			s.DailyRemaining)))
	return title + "\n" + date + "  " + activeLabel(s) + "\n" + overall + "\n"
}

func (m *dashboardModel) viewTabs() string {
	parts := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		label := fmt.Sprintf(" %d %s ", i+1, t)
		if dashboardTab(i) == m.tab {
			parts[i] = lipgloss.NewStyle().Bold(true).
				Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Render(label)
		} else {
			parts[i] = formatter.Dim(label)
		}
	}
	return strings.Join(parts, " ")
}

const cursorMarker = "❯ "

func (m *dashboardModel) viewBody() []string {
	if m.tab == tabTips {
		return strings.Split(formatter.FormatTips(m.app.Progress.Catalog().Tips()), "\n")
	}

	rows := m.rows()
	if len(rows) == 0 {
		return []string{formatter.Dim("Nothing to show.")}
	}

	var lines []string
	section := ""
	for i, r := range rows {
		if r.section != section {
			if section != "" {
				lines = append(lines, "")
			}
			lines = append(lines, m.sectionHeading(r))
			section = r.section
		}
		prefix := "  "
		if i == m.cursor {
			prefix = formatter.StyleHeader.Render(cursorMarker)
		}
		lines = append(lines, prefix+m.renderRow(r))
	}
	return lines
}

func (m *dashboardModel) sectionHeading(r row) string {
	if r.section == "TODAY" {
		s := m.app.Progress.Summary()
		return formatter.StyleHeader.Render("TODAY · " + s.ActiveLabel)
	}
	if r.kind == rowRoutine {
		for _, cat := range domain.RoutineCategories {
			if strings.ToUpper(string(cat)) == r.section {
				return formatter.CategoryStyle(cat).Bold(true).Render(r.section)
			}
		}
	}
	return formatter.StyleHeader.Render(r.section)
}

func (m *dashboardModel) renderRow(r row) string {
	p := m.app.Progress
	c := p.Catalog()

	switch r.kind {
	case rowTask:
		done := p.IsTaskDone(r.id)
		text, _ := taskText(c, r.id)
		indent := ""
		if m.tab == tabSchedule {
			indent = "    "
		}
		return indent + formatter.Checkbox(done) + " " + formatter.Strike(text, done)
	case rowRoutine:
		done := p.IsRoutineDone(r.id)
		label, _ := routineLabel(m.app, r.id)
		return fmt.Sprintf("%s %-18s %s %s", formatter.Checkbox(done),
			formatter.Dim(routineTime(c, r.id)), formatter.Strike(label, done),
			formatter.Dim("("+formatter.FormatHours(c.RoutineDuration(r.id))+")"))
	case rowAddOn:
		done := p.IsAddOnDone(r.id)
		label, _ := addOnLabel(m.app, r.id)
		return formatter.Checkbox(done) + " " + formatter.Strike(addOnIcon(c, r.id)+label, done)
	case rowEntry:
		return m.renderEntryRow(r.id)
	}
	return r.id
}

func (m *dashboardModel) renderEntryRow(id string) string {
	p := m.app.Progress
	e, ok := p.Catalog().EntryByID(id)
	if !ok {
		return id
	}

	done := 0
	for _, tid := range e.TaskIDs() {
		if p.IsTaskDone(tid) {
			done++
		}
	}

	fold := "▸"
	if m.expanded[id] {
		fold = "▾"
	}
	line := fmt.Sprintf("%s %-16s %-28s %s %s", fold, e.DateRange, e.Subject,
		formatter.RenderCompactBar(fraction(done, len(e.Tasks)), 10),
		formatter.Dim(fmt.Sprintf("%d/%d", done, len(e.Tasks))))

	if active, ok := p.ActiveEntry(); ok && active.ID == id {
		line = formatter.StyleGreen.Render("● ") + line
	} else {
		line = "  " + line
	}
	if badge := formatter.TestDayBadge(&e); badge != "" {
		line += " " + badge
	}
	return line
}

func (m *dashboardModel) viewFooter() string {
	var b strings.Builder
	switch {
	case m.confirming:
		b.WriteString(formatter.StyleYellow.Render(service.ResetPrompt+" (y/n)") + "\n")
	case m.flash != "":
		b.WriteString(formatter.StyleGreen.Render(m.flash) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// cursorLine finds the body line carrying the cursor marker.
func (m *dashboardModel) cursorLine(lines []string) int {
	for i, l := range lines {
		if strings.Contains(l, cursorMarker) {
			return i
		}
	}
	return 0
}

// window returns at most height lines of lines, scrolled so that line
// focus is visible.
func window(lines []string, focus, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := focus - height/2
	start = max(0, min(start, len(lines)-height))
	return lines[start : start+height]
}

func fraction(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

// ── program ──────────────────────────────────────────────────────────────────

func runDashboard(ctx context.Context, app *App) error {
	if app.RunTUI != nil {
		return app.RunTUI(ctx, app)
	}
	_, err := tea.NewProgram(newDashboardModel(ctx, app), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), app)
		},
	}
}

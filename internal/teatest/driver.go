// Package teatest drives bubbletea models in tests without a terminal.
//
// Update is called directly and any returned Cmd is run inline, with its
// message fed back through Update. Cmds that block longer than cmdTimeout
// (tickers, blinking cursors) are dropped.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds Cmd chains that keep producing messages.
const maxDepth = 64

const cmdTimeout = 10 * time.Millisecond

// Driver feeds messages to a model and tracks whether it asked to quit.
type Driver struct {
	t     *testing.T
	model tea.Model
	quit  bool
}

type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(width, height int) Option {
	return func(d *Driver) {
		d.Send(tea.WindowSizeMsg{Width: width, Height: height})
	}
}

// New wraps model and runs its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{t: t, model: model}
	for _, opt := range opts {
		opt(d)
	}
	d.run(model.Init(), 0)
	return d
}

// Model returns the latest model value.
func (d *Driver) Model() tea.Model { return d.model }

// Quit reports whether the model returned tea.Quit.
func (d *Driver) Quit() bool { return d.quit }

// View renders the current model.
func (d *Driver) View() string { return d.model.View() }

// Send delivers msg unless the model already quit.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.quit {
		return
	}
	next, cmd := d.model.Update(msg)
	d.model = next
	d.run(cmd, 0)
}

func (d *Driver) key(k tea.KeyType) { d.Send(tea.KeyMsg{Type: k}) }

// Press sends each rune of keys as its own key press.
func (d *Driver) Press(keys string) {
	d.t.Helper()
	for _, r := range keys {
		if r == ' ' {
			d.key(tea.KeySpace)
			continue
		}
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (d *Driver) PressSpace()    { d.key(tea.KeySpace) }
func (d *Driver) PressEnter()    { d.key(tea.KeyEnter) }
func (d *Driver) PressEsc()      { d.key(tea.KeyEsc) }
func (d *Driver) PressTab()      { d.key(tea.KeyTab) }
func (d *Driver) PressShiftTab() { d.key(tea.KeyShiftTab) }
func (d *Driver) PressUp()       { d.key(tea.KeyUp) }
func (d *Driver) PressDown()     { d.key(tea.KeyDown) }
func (d *Driver) PressCtrlC()    { d.key(tea.KeyCtrlC) }

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.t.Logf("teatest: command chain deeper than %d, stopping", maxDepth)
		return
	}

	msg := runWithTimeout(cmd)
	switch msg := msg.(type) {
	case nil:
		return
	case tea.QuitMsg:
		d.quit = true
	case tea.BatchMsg:
		for _, c := range msg {
			d.run(c, depth+1)
		}
	default:
		next, c := d.model.Update(msg)
		d.model = next
		d.run(c, depth+1)
	}
}

func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type echoMsg string

// recorder logs every key it sees and chains one follow-up message.
type recorder struct {
	keys  []string
	echo  []string
	width int
}

func (r recorder) Init() tea.Cmd {
	return func() tea.Msg { return echoMsg("init") }
}

func (r recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
	case echoMsg:
		r.echo = append(r.echo, string(msg))
	case tea.KeyMsg:
		r.keys = append(r.keys, msg.String())
		switch msg.String() {
		case "q":
			return r, tea.Quit
		case "b":
			return r, tea.Batch(
				func() tea.Msg { return echoMsg("one") },
				func() tea.Msg { return echoMsg("two") },
			)
		}
	}
	return r, nil
}

func (r recorder) View() string { return "" }

func TestDriver_RunsInitAndSize(t *testing.T) {
	d := New(t, recorder{}, WithSize(80, 24))

	m := d.Model().(recorder)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, []string{"init"}, m.echo)
}

func TestDriver_PressAndBatch(t *testing.T) {
	d := New(t, recorder{})
	d.Press("a b")
	d.PressTab()

	m := d.Model().(recorder)
	assert.Equal(t, []string{"a", " ", "b", "tab"}, m.keys)
	assert.Equal(t, []string{"init", "one", "two"}, m.echo)
}

func TestDriver_StopsAfterQuit(t *testing.T) {
	d := New(t, recorder{})
	d.Press("q")
	assert.True(t, d.Quit())

	d.Press("z")
	assert.Equal(t, []string{"q"}, d.Model().(recorder).keys)
}

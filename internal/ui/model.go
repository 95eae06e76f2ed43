package ui

import (
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mofkit/internal/driver"
)

// progressModel follows driver events for a fixed list of files.
type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	files   []string
	states  []fileState
	byPath  map[string]int
	phase   string              // label of the latest run-wide event
	width   int
	done    bool
}

type (
	eventMsg  driver.Event
	closedMsg struct{}
)

// NewProgressModel returns a Bubble Tea model that follows events for files
// until the channel is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		files:   files,
		states:  make([]fileState, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.byPath[f] = i
	}
	return m
}

// Run draws the progress view on out until events is closed.
func Run(out io.Writer, title string, files []string, events <-chan driver.Event) error {
	_, err := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithInput(nil)).Run()
	return err
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.await())
}

// await blocks for the next driver event.
func (m *progressModel) await() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return closedMsg{}
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.await())
	case closedMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

// apply records ev and returns the command animating the bar, if any.
func (m *progressModel) apply(ev driver.Event) tea.Cmd {
	state, ok := stateFor(ev.Stage, ev.Status)
	if !ok {
		return nil
	}
	if ev.File == "" {
		m.phase = state.String()
		return nil
	}
	i, known := m.byPath[ev.File]
	if !known {
		return nil
	}
	m.states[i] = state
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.states) == 0 {
		return 0
	}
	var sum float64
	for _, s := range m.states {
		sum += s.weight()
	}
	return sum / float64(len(m.states))
}

// tally counts finished and failed files.
func (m *progressModel) tally() (finished, failed int) {
	for _, s := range m.states {
		if s.finished() {
			finished++
		}
		if s == stateFailed {
			failed++
		}
	}
	return finished, failed
}

// Package tui shows terminal progress while a point cloud is read, before
// the viewer window exists.
package tui

import (
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/lazview/internal/config"
	"github.com/san-kum/lazview/internal/pipeline"
)

var ErrCanceled = errors.New("tui: loading canceled")

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type tickMsg time.Time

type doneMsg struct {
	res *pipeline.Result
	err error
}

// Loading runs a prepare job in the background and animates a spinner until
// it finishes or the user presses ctrl+c.
type Loading struct {
	label   string
	job     func() (*pipeline.Result, error)
	frame   int
	started time.Time
	elapsed time.Duration

	done bool
	res  *pipeline.Result
	err  error
}

func NewLoading(label string, job func() (*pipeline.Result, error)) Loading {
	return Loading{label: label, job: job, started: time.Now()}
}

func (m Loading) Result() (*pipeline.Result, error) { return m.res, m.err }

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Loading) run() tea.Msg {
	res, err := m.job()
	return doneMsg{res: res, err: err}
}

func (m Loading) Init() tea.Cmd {
	return tea.Batch(m.run, tick())
}

func (m Loading) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.res, m.err = msg.res, msg.err
		return m, tea.Quit
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.frame++
		m.elapsed = time.Time(msg).Sub(m.started)
		return m, tick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			m.err = ErrCanceled
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Loading) View() string {
	if m.done {
		return ""
	}
	spin := spinnerFrames[m.frame%len(spinnerFrames)]
	return spinnerStyle.Render(spin) + " " +
		labelStyle.Render(m.label) + " " +
		hintStyle.Render(m.elapsed.Truncate(100*time.Millisecond).String()+"  ctrl+c to cancel") + "\n"
}

// Prepare runs pipeline.Prepare behind a spinner drawn on out. A nil in
// disables keyboard input.
func Prepare(cfg *config.Config, in io.Reader, out io.Writer) (*pipeline.Result, error) {
	m := NewLoading("loading "+cfg.Input, func() (*pipeline.Result, error) {
		return pipeline.Prepare(cfg)
	})
	final, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return nil, err
	}
	return final.(Loading).Result()
}

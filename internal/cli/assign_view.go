package cli

import (
	"fmt"
	"strings"

	"github.com/NamiSwwaan/crewplan/internal/cli/formatter"
	"github.com/NamiSwwaan/crewplan/internal/scheduler"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// assignResultMsg carries the finished assignment back into the model.
type assignResultMsg struct {
	result scheduler.AssignmentResult
	err    error
}

// assignModel shows a spinner while the crew is being evaluated for one
// task, then the per-candidate response lines. The assignment itself runs
// as a command so the UI stays responsive.
type assignModel struct {
	task string
	run  func() (scheduler.AssignmentResult, error)
	spin spinner.Model

	done     bool
	canceled bool
	result   scheduler.AssignmentResult
	err      error
}

func newAssignModel(task string, run func() (scheduler.AssignmentResult, error)) assignModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return assignModel{task: task, run: run, spin: spin}
}

func (m assignModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.start)
}

func (m assignModel) start() tea.Msg {
	result, err := m.run()
	return assignResultMsg{result: result, err: err}
}

func (m assignModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assignResultMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.canceled = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m assignModel) View() string {
	if !m.done {
		return fmt.Sprintf("  %s %s\n", m.spin.View(), formatter.Dim("Asking the crew: "+m.task))
	}
	if m.err != nil {
		return formatter.StyleRed.Render("Assignment failed: "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.FormatResponses(m.result.Responses))
	return b.String()
}

// runAssignView runs the assignment behind the spinner view and returns
// the outcome. Falls back to a plain spinner when the TUI cannot start.
func runAssignView(task string, run func() (scheduler.AssignmentResult, error)) (scheduler.AssignmentResult, error) {
	model := newAssignModel(task, run)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		// No usable terminal for the program loop; run the call directly.
		stop := formatter.StartSpinner("Asking the crew: " + task)
		defer stop()
		return run()
	}

	m := final.(assignModel)
	if m.canceled {
		return scheduler.AssignmentResult{}, errQuitWizard
	}
	fmt.Print(m.View())
	return m.result, m.err
}

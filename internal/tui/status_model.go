package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/punch-cli/punch/internal/format"
	"github.com/punch-cli/punch/internal/models"
	"github.com/punch-cli/punch/internal/punch"
)

// StatusModel is the live view of the active entry: a ticking elapsed
// clock with keys to punch out or walk away.
type StatusModel struct {
	width  int
	height int

	svc   *punch.Service
	entry *models.Entry

	spinner spinner.Model
	elapsed time.Duration

	// Final states inspected by RunStatusTUI after the program ends.
	stopped *models.Entry
	err     error
}

// tickMsg fires every second to refresh the elapsed clock.
type tickMsg struct{}

// NewStatusModel builds the view for an already-active entry.
func NewStatusModel(svc *punch.Service, entry *models.Entry) StatusModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return StatusModel{
		svc:     svc,
		entry:   entry,
		spinner: sp,
		elapsed: time.Since(entry.StartTime),
	}
}

func (m StatusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.elapsed = time.Since(m.entry.StartTime)
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			// Punch out and leave
			stopped, err := m.svc.PunchOut("")
			m.stopped = stopped
			m.err = err
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Leave the task running
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m StatusModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	taskLine := valueStyle.Render(m.entry.TaskName)
	if m.entry.Project != nil {
		taskLine += labelStyle.Render(" · " + *m.entry.Project)
	}

	elapsed := m.elapsed.Truncate(time.Second)
	clock := fmt.Sprintf("%02d:%02d:%02d",
		int(elapsed.Hours()), int(elapsed.Minutes())%60, int(elapsed.Seconds())%60)

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.spinner.View()+headerStyle.Render(" TRACKING"),
		"",
		taskLine,
		labelStyle.Render("started at ")+valueStyle.Render(format.Time(m.entry.StartTime)),
		"",
		valueStyle.Render(clock),
		"",
		helpStyle.Render("s stop · q leave running"),
	)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 3)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(body))
}

// RunStatusTUI shows the live status view until the user stops the task
// or leaves it running.
func RunStatusTUI(svc *punch.Service, entry *models.Entry) error {
	p := tea.NewProgram(NewStatusModel(svc, entry), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(StatusModel); ok {
		if m.err != nil {
			return m.err
		}
		if m.stopped != nil {
			successStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
			fmt.Println(successStyle.Render(fmt.Sprintf("✓ Stopped '%s' - worked %s",
				m.stopped.TaskName, format.Duration(m.stopped.StartTime, m.stopped.EndTime))))
		}
	}

	return nil
}

// Package browse provides an interactive viewer for ranked mission
// results: a selectable list pane and a detail viewport.
package browse

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marslog/pkg/render"
)

// Run launches the browser over a ranked report. It blocks until the
// user quits and requires in/out to be attached to a terminal.
func Run(report render.Report, theme render.Theme, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(newModel(report, theme),
		tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	report   render.Report
	theme    render.Theme
	selected int
	viewport viewport.Model
	ready    bool
	width    int
	height   int

	listStyle   lipgloss.Style
	detailStyle lipgloss.Style
}

func newModel(report render.Report, theme render.Theme) model {
	vp := viewport.New(0, 0)
	m := model{
		report:      report,
		theme:       theme,
		viewport:    vp,
		listStyle:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		detailStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
		case "down", "j":
			if m.selected < len(m.report.Records)-1 {
				m.selected++
				m.refreshViewport()
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listWidth := m.listWidth()
		m.viewport.Width = m.width - listWidth - 8 // borders + padding + gap
		m.viewport.Height = m.height - 6           // title, status bar, box chrome
		m.ready = true
		m.refreshViewport()
	}
	return m, nil
}

// listWidth sizes the list pane to its widest entry, capped at half
// the terminal.
func (m model) listWidth() int {
	w := 24
	for i, rec := range m.report.Records {
		line := len(listEntry(i, rec.MissionID, rec.DurationDays))
		if line+4 > w {
			w = line + 4
		}
	}
	if m.width > 0 && w > m.width/2 {
		w = m.width / 2
	}
	return w
}

func listEntry(rank int, missionID string, duration int) string {
	return fmt.Sprintf("#%d %s %dd", rank+1, missionID, duration)
}

func (m *model) refreshViewport() {
	if m.selected < 0 || m.selected >= len(m.report.Records) {
		return
	}
	m.viewport.SetContent(m.detailContent())
}

func (m model) detailContent() string {
	rec := m.report.Records[m.selected]
	var sb strings.Builder
	for _, row := range render.FieldRows(rec) {
		sb.WriteString(m.theme.Muted.Render(row[0] + ":"))
		sb.WriteString(" ")
		sb.WriteString(m.theme.Primary.Render(row[1]))
		sb.WriteString("\n")
	}

	s := m.report.Stats
	sb.WriteString("\n")
	sb.WriteString(m.theme.Bold.Render("Statistics"))
	sb.WriteString("\n")
	for _, row := range [][2]string{
		{"Total lines", fmt.Sprintf("%d", s.TotalLines)},
		{"Data lines", fmt.Sprintf("%d", s.DataLines)},
		{"Category matches", fmt.Sprintf("%d", s.CategoryMatches)},
		{"Qualifying matches", fmt.Sprintf("%d", s.QualifyingMatches)},
		{"Valid records", fmt.Sprintf("%d", s.ValidCount)},
		{"Errors", fmt.Sprintf("%d", s.Errors)},
	} {
		sb.WriteString(m.theme.Muted.Render(row[0] + ":"))
		sb.WriteString(" ")
		sb.WriteString(row[1])
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := m.theme.Bold.Render(render.Headline(m.report))

	var list []string
	for i, rec := range m.report.Records {
		entry := listEntry(i, rec.MissionID, rec.DurationDays)
		if i == m.selected {
			list = append(list, m.theme.Accent.Render("> "+entry))
		} else {
			list = append(list, "  "+entry)
		}
	}
	contentHeight := m.height - 6
	if contentHeight < 3 {
		contentHeight = 3
	}
	for len(list) < contentHeight {
		list = append(list, "")
	}
	if len(list) > contentHeight {
		list = list[:contentHeight]
	}

	listPanel := m.listStyle.Width(m.listWidth()).Render(strings.Join(list, "\n"))
	detailPanel := m.detailStyle.Width(m.viewport.Width + 2).Render(m.viewport.View())
	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)

	help := m.theme.Muted.Render("up/down navigate · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, panels, help)
}

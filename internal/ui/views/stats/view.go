package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	statsdto "focusdeck/internal/modules/stats/dto"
	"focusdeck/internal/ui/theme"
)

type StatsPort interface {
	Overview(ctx context.Context) (statsdto.OverviewOutput, error)
	Recent(ctx context.Context, windowDays int) ([]statsdto.SessionOutput, error)
}

type LoadedMsg struct {
	Overview statsdto.OverviewOutput
	Recent   []statsdto.SessionOutput
	Err      error
}

const recentWindowDays = 7

type Model struct {
	port     StatsPort
	pal      theme.Palette
	overview statsdto.OverviewOutput
	recent   []statsdto.SessionOutput
	body     viewport.Model
	loaded   bool
	loadErr  string
	width    int
	height   int
}

func New(port StatsPort, pal theme.Palette) Model {
	return Model{port: port, pal: pal, body: viewport.New(0, 0)}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *Model) SetPalette(pal theme.Palette) {
	m.pal = pal
	if m.loaded {
		m.body.SetContent(m.render())
	}
}

// Reload recomputes every aggregate; the app calls this whenever a
// session gets recorded.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 2
		if m.loaded {
			m.body.SetContent(m.render())
		}

	case LoadedMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err.Error()
			return m, nil
		}
		m.loaded = true
		m.loadErr = ""
		m.overview = msg.Overview
		m.recent = msg.Recent
		m.body.SetContent(m.render())

	case tea.KeyMsg:
		if msg.String() == "g" {
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loadErr != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.pal.Muted.Render("stats: "+m.loadErr))
	}
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.pal.Muted.Render("Computing stats…"))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(m.body.View())
}

func (m Model) render() string {
	o := m.overview
	var sb strings.Builder
	sb.WriteString(m.pal.Title.Render("Statistics") + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", m.pal.Muted.Render("total:  "), formatDuration(o.TotalSeconds)))
	sb.WriteString(fmt.Sprintf("%s %d full, %d partial\n", m.pal.Muted.Render("count:  "), o.FullSessions, o.PartialSessions))
	sb.WriteString(fmt.Sprintf("%s %s\n", m.pal.Muted.Render("average:"), formatDuration(o.AverageSeconds)))
	sb.WriteString(fmt.Sprintf("%s %d day(s)\n", m.pal.Muted.Render("streak: "), o.StreakDays))
	if o.MostStudied != nil {
		sb.WriteString(fmt.Sprintf("%s %s (%s)\n", m.pal.Muted.Render("top:    "),
			o.MostStudied.CourseName, formatDuration(o.MostStudied.DurationSeconds)))
	}

	if len(o.Breakdown) > 0 {
		sb.WriteString("\n" + m.pal.Title.Render("Per course") + "\n")
		for _, share := range o.Breakdown {
			bar := shareBar(share.Percent, 24)
			sb.WriteString(fmt.Sprintf("  %-20s %s %5.1f%%  %s\n",
				clip(share.CourseName, 20), m.pal.Good.Render(bar), share.Percent,
				formatDuration(share.DurationSeconds)))
		}
	}

	sb.WriteString("\n" + m.pal.Title.Render(fmt.Sprintf("Last %d days", recentWindowDays)) + "\n")
	if len(m.recent) == 0 {
		sb.WriteString(m.pal.Muted.Render("  no sessions") + "\n")
	}
	for _, session := range m.recent {
		outcome := "✓"
		if session.IsPartial {
			outcome = "◐"
		}
		sb.WriteString(fmt.Sprintf("  %s %s  %-20s %s\n",
			outcome, session.StartAt.Local().Format("Mon 15:04"),
			clip(session.CourseName, 20), formatDuration(session.DurationSeconds)))
	}

	sb.WriteString("\n" + m.pal.Muted.Render("g: refresh"))
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.port.Overview(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		recent, err := m.port.Recent(context.Background(), recentWindowDays)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Overview: overview, Recent: recent}
	}
}

func formatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}

func shareBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

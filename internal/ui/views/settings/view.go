package settings

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	settingsdto "focusdeck/internal/modules/settings/dto"
	"focusdeck/internal/ui/theme"
)

type SettingsPort interface {
	Get(ctx context.Context) (settingsdto.SettingsOutput, error)
	Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error)
	Profile(ctx context.Context) (settingsdto.ProfileOutput, error)
}

// LoadedMsg carries both singletons; the app also watches it to switch
// the palette when the theme mode changes.
type LoadedMsg struct {
	Settings settingsdto.SettingsOutput
	Profile  settingsdto.ProfileOutput
	Err      error
}

type Model struct {
	port     SettingsPort
	pal      theme.Palette
	settings settingsdto.SettingsOutput
	profile  settingsdto.ProfileOutput
	loaded   bool
	notice   string
	width    int
	height   int
}

func New(port SettingsPort, pal theme.Palette) Model {
	return Model{port: port, pal: pal}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *Model) SetPalette(pal theme.Palette) { m.pal = pal }

// Reload re-reads both singletons from the store.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			return m, nil
		}
		m.loaded = true
		m.settings = msg.Settings
		m.profile = msg.Profile

	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			mode := "dark"
			if m.settings.ThemeMode == "dark" {
				mode = "light"
			}
			return m, m.updateCmd(settingsdto.UpdateInput{ThemeMode: &mode})
		case "n":
			enabled := !m.settings.NotificationsEnabled
			return m, m.updateCmd(settingsdto.UpdateInput{NotificationsEnabled: &enabled})
		case "+", "-":
			delta := 5
			if msg.String() == "-" {
				delta = -5
			}
			minutes := m.settings.DefaultDurationMin + delta
			return m, m.updateCmd(settingsdto.UpdateInput{DefaultDurationMin: &minutes})
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.pal.Muted.Render("Loading settings…"))
	}

	s := m.settings
	var sb strings.Builder
	sb.WriteString(m.pal.Title.Render("Settings") + "\n\n")
	sb.WriteString(row(m.pal, "theme", s.ThemeMode))
	sb.WriteString(row(m.pal, "default duration", fmt.Sprintf("%d min", s.DefaultDurationMin)))
	sb.WriteString(row(m.pal, "notifications", onOff(s.NotificationsEnabled)))
	sb.WriteString(row(m.pal, "reminder", emptyDash(s.ReminderTime)))
	quiet := "off"
	if s.QuietHoursStart != "" && s.QuietHoursEnd != "" {
		quiet = s.QuietHoursStart + " to " + s.QuietHoursEnd
	}
	sb.WriteString(row(m.pal, "quiet hours", quiet))

	sb.WriteString("\n" + m.pal.Title.Render("Profile") + "\n\n")
	sb.WriteString(row(m.pal, "name", m.profile.Name))
	if !m.profile.CreatedAt.IsZero() {
		sb.WriteString(row(m.pal, "since", m.profile.CreatedAt.Format("2006-01-02")))
	}

	sb.WriteString("\n" + m.pal.Muted.Render("t: theme  n: notifications  +/-: duration"))
	if m.notice != "" {
		sb.WriteString("\n" + m.pal.Hot.Render(m.notice))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.pal.Pane.Render(sb.String()))
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.port.Get(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		profile, err := m.port.Profile(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Settings: settings, Profile: profile}
	}
}

func (m Model) updateCmd(input settingsdto.UpdateInput) tea.Cmd {
	return func() tea.Msg {
		settings, err := m.port.Update(context.Background(), input)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		profile, err := m.port.Profile(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Settings: settings, Profile: profile}
	}
}

func row(pal theme.Palette, label, value string) string {
	return fmt.Sprintf("%s %s\n", pal.Muted.Render(fmt.Sprintf("%-17s", label)), value)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func emptyDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	coursedto "focusdeck/internal/modules/course/dto"
	exportdto "focusdeck/internal/modules/export/dto"
	sessiondto "focusdeck/internal/modules/session/dto"
	settingsdto "focusdeck/internal/modules/settings/dto"
	statsdto "focusdeck/internal/modules/stats/dto"
	"focusdeck/internal/platform/kvstore"
	"focusdeck/internal/ui/components"
	"focusdeck/internal/ui/theme"
	coursesview "focusdeck/internal/ui/views/courses"
	settingsview "focusdeck/internal/ui/views/settings"
	statsview "focusdeck/internal/ui/views/stats"
	timerview "focusdeck/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StartOutput, error)
	Status(ctx context.Context) (sessiondto.StatusOutput, error)
	Pause(ctx context.Context) (sessiondto.StatusOutput, error)
	Resume(ctx context.Context) (sessiondto.StatusOutput, error)
	Reset(ctx context.Context) (sessiondto.StatusOutput, error)
	Stop(ctx context.Context) (sessiondto.StopOutput, error)
}

type coursePort interface {
	List(ctx context.Context) ([]coursedto.CourseOutput, error)
	Create(ctx context.Context, input coursedto.CreateInput) (coursedto.CourseOutput, error)
	Rename(ctx context.Context, id, name string) (coursedto.CourseOutput, error)
	Recolor(ctx context.Context, id, color string) (coursedto.CourseOutput, error)
	Delete(ctx context.Context, id string) (coursedto.DeleteOutput, error)
}

type statsPort interface {
	Overview(ctx context.Context) (statsdto.OverviewOutput, error)
	Recent(ctx context.Context, windowDays int) ([]statsdto.SessionOutput, error)
	Reindex(ctx context.Context) (statsdto.ReindexOutput, error)
}

type settingsPort interface {
	Get(ctx context.Context) (settingsdto.SettingsOutput, error)
	Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error)
	Profile(ctx context.Context) (settingsdto.ProfileOutput, error)
	SetProfileName(ctx context.Context, name string) (settingsdto.ProfileOutput, error)
}

type exportPort interface {
	Report(ctx context.Context, input exportdto.ReportInput) (exportdto.ReportOutput, error)
	CSV(ctx context.Context, input exportdto.CSVInput) (exportdto.CSVOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabCourses
	tabStats
	tabSettings
	tabCount
)

var tabLabels = [tabCount]string{
	"Timer", "Courses", "Stats", "Settings",
}

// ─── async messages ───────────────────────────────────────────────────────────

type exportDoneMsg struct {
	path string
	err  error
}

type reindexDoneMsg struct {
	indexed int
	err     error
}

type profileSavedMsg struct {
	name string
	err  error
}

type stoppedForQuitMsg struct{}

// storeEventMsg carries a collection-change notification from the
// kvstore subscription, so panes refresh on writes instead of polling.
type storeEventMsg struct {
	key string
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Start   key.Binding
	Pause   key.Binding
	Stop    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start timer")),
		Pause:   key.NewBinding(key.WithKeys("p", "r"), key.WithHelp("p/r", "pause/resume")),
		Stop:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end early")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Start},
		{k.Pause, k.Stop},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the theme,
// the global help overlay, and the command palette. All business logic
// is delegated to port interfaces; all rendering to sub-views.
type Model struct {
	session  sessionPort
	stats    statsPort
	settings settingsPort
	export   exportPort
	events   <-chan kvstore.Event

	timerView    timerview.Model
	coursesView  coursesview.Model
	statsView    statsview.Model
	settingsView settingsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	pal       theme.Palette
	themeMode string
	status    string
	width     int
	height    int
}

func NewModel(
	session sessionPort,
	courses coursePort,
	stats statsPort,
	settings settingsPort,
	export exportPort,
	events <-chan kvstore.Event,
) Model {
	pal := theme.Dark()
	return Model{
		session:      session,
		stats:        stats,
		settings:     settings,
		export:       export,
		events:       events,
		timerView:    timerview.New(session, pal),
		coursesView:  coursesview.New(courses, pal),
		statsView:    statsview.New(statsPortBridge{p: stats}, pal),
		settingsView: settingsview.New(settingsPortBridge{p: settings}, pal),
		activeTab:    tabTimer,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(pal),
		pal:          pal,
		themeMode:    "dark",
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.coursesView.Init(),
		m.statsView.Init(),
		m.settingsView.Init(),
		m.awaitStoreEvent(),
	)
}

// awaitStoreEvent blocks on the kvstore subscription and converts the
// next write notification into a message. Re-armed after every receipt.
func (m Model) awaitStoreEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg{key: event.Key}
	}
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, ok := msg.(components.PaletteSubmitMsg); !ok {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			if _, cancel := msg.(components.PaletteCancelMsg); cancel {
				m.status = "ready"
			}
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	// Terminal focus regained: time kept passing while we were away,
	// so the countdown and aggregates recompute from the clock now.
	case tea.FocusMsg:
		cmds = append(cmds, m.timerView.Refresh(), m.statsView.Reload())

	case coursesview.SelectedMsg:
		m.timerView.SetCourse(msg.ID, msg.Name)
		return m, nil

	case timerview.StatusMsg:
		if msg.Err == nil && msg.Status.Recorded {
			cmds = append(cmds, m.statsView.Reload())
		}

	case timerview.StoppedMsg:
		if msg.Err == nil && msg.Out.Recorded {
			cmds = append(cmds, m.statsView.Reload())
		}

	case settingsview.LoadedMsg:
		if msg.Err == nil && msg.Settings.ThemeMode != m.themeMode {
			m.themeMode = msg.Settings.ThemeMode
			m.applyTheme(theme.ForMode(m.themeMode))
		}
		if msg.Err == nil {
			m.timerView.SetDefaultTarget(msg.Settings.DefaultDurationMin * 60)
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported to " + msg.path
		}

	case reindexDoneMsg:
		if msg.err != nil {
			m.status = "reindex failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("indexed %d sessions", msg.indexed)
		}

	case profileSavedMsg:
		if msg.err != nil {
			m.status = "profile: " + msg.err.Error()
		} else {
			m.status = "profile name set to " + msg.name
			cmds = append(cmds, m.settingsView.Reload())
		}

	case stoppedForQuitMsg:
		return m, tea.Quit

	case storeEventMsg:
		switch msg.key {
		case kvstore.KeyCourses:
			cmds = append(cmds, m.coursesView.Reload())
		case kvstore.KeySessions:
			cmds = append(cmds, m.statsView.Reload())
		case kvstore.KeySettings, kvstore.KeyUser:
			cmds = append(cmds, m.settingsView.Reload())
		}
		cmds = append(cmds, m.awaitStoreEvent())

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.coursesView.Filtering() && m.activeTab == tabCourses {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m.quit()
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			return m, m.palette.Open()
		case "enter":
			if m.activeTab == tabCourses {
				if course, ok := m.coursesView.Selected(); ok {
					m.timerView.SetCourse(course.ID, course.Name)
					m.status = "timer set to " + course.Name
					m.activeTab = tabTimer
					return m, nil
				}
			}
		}
	}

	// Every view sees every non-key message, so the timer keeps ticking
	// (and recording completions) while another tab is on screen. Key
	// presses only reach the active tab.
	_, isKey := msg.(tea.KeyMsg)
	var c tea.Cmd
	if !isKey || m.activeTab == tabTimer {
		m.timerView, c = m.timerView.Update(msg)
		cmds = append(cmds, c)
	}
	if !isKey || m.activeTab == tabCourses {
		m.coursesView, c = m.coursesView.Update(msg)
		cmds = append(cmds, c)
	}
	if !isKey || m.activeTab == tabStats {
		m.statsView, c = m.statsView.Update(msg)
		cmds = append(cmds, c)
	}
	if !isKey || m.activeTab == tabSettings {
		m.settingsView, c = m.settingsView.Update(msg)
		cmds = append(cmds, c)
	}

	return m, tea.Batch(cmds...)
}

// quit ends the program; a live run is terminated first so its partial
// session records through the usual at-most-once path.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if !m.timerView.HasRun() {
		return m, tea.Quit
	}
	session := m.session
	m.status = "recording session…"
	return m, func() tea.Msg {
		_, _ = session.Stop(context.Background())
		return stoppedForQuitMsg{}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabCourses:
		return m.coursesView.View()
	case tabStats:
		return m.statsView.View()
	case tabSettings:
		return m.settingsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = m.pal.Hot.Render(" " + label + " ")
		} else {
			parts[i] = m.pal.Muted.Render(" " + label + " ")
		}
	}
	sep := m.pal.Muted.Render(" │ ")
	bar := "focusdeck  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(m.pal.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := m.pal.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(m.pal.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "course:add":
		if len(parts) < 2 {
			m.status = "usage: course:add <name> [color]"
			return m, nil
		}
		name := parts[1]
		color := ""
		if len(parts) >= 3 {
			color = parts[len(parts)-1]
			name = strings.Join(parts[1:len(parts)-1], " ")
			if !strings.HasPrefix(color, "#") {
				name = strings.Join(parts[1:], " ")
				color = ""
			}
		}
		m.activeTab = tabCourses
		return m, m.coursesView.Create(name, color)

	case "course:rename":
		if len(parts) < 2 {
			m.status = "usage: course:rename <name>"
			return m, nil
		}
		m.activeTab = tabCourses
		return m, m.coursesView.RenameSelected(strings.Join(parts[1:], " "))

	case "course:recolor":
		if len(parts) < 2 {
			m.status = "usage: course:recolor <color>"
			return m, nil
		}
		m.activeTab = tabCourses
		return m, m.coursesView.RecolorSelected(parts[1])

	case "course:delete":
		m.activeTab = tabCourses
		return m, m.coursesView.DeleteSelected()

	case "timer:start":
		course, ok := m.coursesView.Selected()
		if !ok {
			m.status = "no course selected"
			return m, nil
		}
		minutes := 0
		if len(parts) >= 2 {
			if v, err := strconv.Atoi(parts[1]); err == nil {
				minutes = v
			}
		}
		m.activeTab = tabTimer
		m.timerView.SetCourse(course.ID, course.Name)
		return m, m.timerView.StartRun(course.ID, minutes)

	case "timer:stop":
		m.activeTab = tabTimer
		return m, m.timerView.StopRun()

	case "settings:set":
		if len(parts) < 3 {
			m.status = "usage: settings:set <field> <value>"
			return m, nil
		}
		return m, m.settingsSetCmd(parts[1], strings.Join(parts[2:], " "))

	case "profile:name":
		if len(parts) < 2 {
			m.status = "usage: profile:name <name>"
			return m, nil
		}
		name := strings.Join(parts[1:], " ")
		return m, func() tea.Msg {
			out, err := m.settings.SetProfileName(context.Background(), name)
			return profileSavedMsg{name: out.Name, err: err}
		}

	case "export:report":
		path := ""
		if len(parts) >= 2 {
			path = parts[1]
		}
		return m, func() tea.Msg {
			out, err := m.export.Report(context.Background(), exportdto.ReportInput{OutPath: path})
			return exportDoneMsg{path: out.Path, err: err}
		}

	case "export:csv":
		path := ""
		if len(parts) >= 2 {
			path = parts[1]
		}
		return m, func() tea.Msg {
			out, err := m.export.CSV(context.Background(), exportdto.CSVInput{OutPath: path})
			return exportDoneMsg{path: out.Path, err: err}
		}

	case "reindex":
		return m, func() tea.Msg {
			out, err := m.stats.Reindex(context.Background())
			return reindexDoneMsg{indexed: out.Indexed, err: err}
		}

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) applyTheme(pal theme.Palette) {
	m.pal = pal
	m.palette.SetPalette(pal)
	m.timerView.SetPalette(pal)
	m.coursesView.SetPalette(pal)
	m.statsView.SetPalette(pal)
	m.settingsView.SetPalette(pal)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.coursesView, _ = m.coursesView.Update(sz)
	m.statsView, _ = m.statsView.Update(sz)
	m.settingsView, _ = m.settingsView.Update(sz)
}

func (m Model) settingsSetCmd(field, value string) tea.Cmd {
	input := settingsdto.UpdateInput{}
	switch field {
	case "theme":
		input.ThemeMode = &value
	case "duration":
		v, err := strconv.Atoi(value)
		if err != nil {
			return func() tea.Msg { return settingsview.LoadedMsg{Err: fmt.Errorf("invalid duration: %s", value)} }
		}
		input.DefaultDurationMin = &v
	case "notifications":
		enabled := value == "on" || value == "true"
		input.NotificationsEnabled = &enabled
	case "reminder":
		input.ReminderTime = &value
	case "quiet-start":
		input.QuietHoursStart = &value
	case "quiet-end":
		input.QuietHoursEnd = &value
	default:
		return func() tea.Msg { return settingsview.LoadedMsg{Err: fmt.Errorf("unknown field: %s", field)} }
	}
	settings := m.settings
	return func() tea.Msg {
		out, err := settings.Update(context.Background(), input)
		if err != nil {
			return settingsview.LoadedMsg{Err: err}
		}
		profile, err := settings.Profile(context.Background())
		return settingsview.LoadedMsg{Settings: out, Profile: profile, Err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface a
// sub-view declares, keeping view packages free of the wider surface.

type statsPortBridge struct{ p statsPort }

func (b statsPortBridge) Overview(ctx context.Context) (statsdto.OverviewOutput, error) {
	return b.p.Overview(ctx)
}
func (b statsPortBridge) Recent(ctx context.Context, windowDays int) ([]statsdto.SessionOutput, error) {
	return b.p.Recent(ctx, windowDays)
}

type settingsPortBridge struct{ p settingsPort }

func (b settingsPortBridge) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return b.p.Get(ctx)
}
func (b settingsPortBridge) Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error) {
	return b.p.Update(ctx, input)
}
func (b settingsPortBridge) Profile(ctx context.Context) (settingsdto.ProfileOutput, error) {
	return b.p.Profile(ctx)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

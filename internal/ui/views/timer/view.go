package timer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "focusdeck/internal/modules/session/dto"
	apperrors "focusdeck/internal/platform/errors"
	"focusdeck/internal/ui/theme"
)

type TimerPort interface {
	Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StartOutput, error)
	Status(ctx context.Context) (sessiondto.StatusOutput, error)
	Pause(ctx context.Context) (sessiondto.StatusOutput, error)
	Resume(ctx context.Context) (sessiondto.StatusOutput, error)
	Reset(ctx context.Context) (sessiondto.StatusOutput, error)
	Stop(ctx context.Context) (sessiondto.StopOutput, error)
}

type StatusMsg struct {
	Status sessiondto.StatusOutput
	Err    error
}

type StoppedMsg struct {
	Out sessiondto.StopOutput
	Err error
}

type tickMsg time.Time

type Model struct {
	port     TimerPort
	pal      theme.Palette
	progress progress.Model

	status     sessiondto.StatusOutput
	hasRun     bool
	notice     string
	courseID   string
	courseName string
	targetSecs int

	width  int
	height int
}

func New(port TimerPort, pal theme.Palette) Model {
	pb := progress.New(progress.WithDefaultGradient())
	return Model{port: port, pal: pal, progress: pb, targetSecs: 25 * 60}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.statusCmd(), tick())
}

// SetCourse records the course the next run will bill time to.
func (m *Model) SetCourse(id, name string) {
	m.courseID = id
	m.courseName = name
}

// SetDefaultTarget sets the countdown length used by a plain start.
func (m *Model) SetDefaultTarget(seconds int) {
	if seconds > 0 {
		m.targetSecs = seconds
	}
}

func (m *Model) SetPalette(pal theme.Palette) { m.pal = pal }

// HasRun reports whether a live run is on screen. The app checks this
// on quit so an abandoned countdown still records its partial session.
func (m Model) HasRun() bool { return m.hasRun }

// Refresh recomputes the countdown from the wall clock. The app calls
// this on terminal focus so time spent suspended shows up immediately.
func (m Model) Refresh() tea.Cmd {
	return m.statusCmd()
}

// StartRun begins a countdown for the given course, overriding the
// default target when minutes > 0.
func (m Model) StartRun(courseID string, minutes int) tea.Cmd {
	target := m.targetSecs
	if minutes > 0 {
		target = minutes * 60
	}
	return func() tea.Msg {
		out, err := m.port.Start(context.Background(), sessiondto.StartInput{
			CourseID:      courseID,
			TargetSeconds: target,
		})
		if err != nil {
			return StatusMsg{Err: err}
		}
		return StatusMsg{Status: sessiondto.StatusOutput{
			RunID:            out.RunID,
			CourseID:         out.CourseID,
			CourseName:       out.CourseName,
			Phase:            "running",
			RemainingSeconds: out.TargetSeconds,
			TargetSeconds:    out.TargetSeconds,
		}}
	}
}

// StopRun ends the active countdown early.
func (m Model) StopRun() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Stop(context.Background())
		return StoppedMsg{Out: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(m.width-12, 60)

	case tickMsg:
		cmds := []tea.Cmd{tick()}
		if m.hasRun && m.status.Phase == "running" {
			cmds = append(cmds, m.statusCmd())
		}
		return m, tea.Batch(cmds...)

	case StatusMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrNoActiveRun) {
				m.hasRun = false
				m.status = sessiondto.StatusOutput{}
			} else {
				m.notice = msg.Err.Error()
			}
			return m, nil
		}
		m.hasRun = true
		m.status = msg.Status
		if msg.Status.Recorded {
			m.notice = "session recorded: " + msg.Status.CourseName
		}

	case StoppedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			return m, nil
		}
		m.hasRun = false
		m.status = sessiondto.StatusOutput{}
		if msg.Out.Recorded {
			kind := "full"
			if msg.Out.IsPartial {
				kind = "partial"
			}
			m.notice = fmt.Sprintf("%s session saved (%s)", kind, formatClock(msg.Out.DurationSeconds))
		} else {
			m.notice = "nothing recorded"
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		if m.hasRun {
			m.notice = "a run is already active"
			return m, nil
		}
		if m.courseID == "" {
			m.notice = "pick a course on the Courses tab first"
			return m, nil
		}
		return m, m.StartRun(m.courseID, 0)
	case "p":
		if m.hasRun && m.status.Phase == "running" {
			return m, m.mutateCmd(m.port.Pause)
		}
	case "r":
		if m.hasRun && m.status.Phase == "paused" {
			return m, m.mutateCmd(m.port.Resume)
		}
	case "x":
		if m.hasRun {
			return m, m.mutateCmd(m.port.Reset)
		}
	case "e":
		if m.hasRun {
			return m, m.StopRun()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	if !m.hasRun {
		sb.WriteString(m.pal.Title.Render("Focus timer") + "\n\n")
		if m.courseName != "" {
			sb.WriteString("Course: " + m.pal.Hot.Render(m.courseName) + "\n")
		} else {
			sb.WriteString(m.pal.Muted.Render("No course selected.") + "\n")
		}
		sb.WriteString(fmt.Sprintf("Target: %d min\n\n", m.targetSecs/60))
		sb.WriteString(m.pal.Muted.Render("s: start  e: end early  x: reset"))
	} else {
		course := m.status.CourseName
		if course == "" {
			course = m.status.CourseID
		}
		sb.WriteString(m.pal.Title.Render(course) + "  " + m.phaseBadge() + "\n\n")
		clock := lipgloss.NewStyle().Foreground(m.pal.Accent).Bold(true).
			Render(formatClock(m.status.RemainingSeconds))
		sb.WriteString("  " + clock + "\n\n")
		pct := 0.0
		if m.status.TargetSeconds > 0 {
			pct = float64(m.status.ElapsedSeconds) / float64(m.status.TargetSeconds)
		}
		sb.WriteString(m.progress.ViewAs(pct) + "\n\n")
		sb.WriteString(m.pal.Muted.Render(fmt.Sprintf("elapsed %s of %s",
			formatClock(m.status.ElapsedSeconds), formatClock(m.status.TargetSeconds))) + "\n\n")
		sb.WriteString(m.pal.Muted.Render("p: pause  r: resume  x: reset  e: end early"))
	}

	if m.notice != "" {
		sb.WriteString("\n\n" + m.pal.Good.Render(m.notice))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.pal.Pane.Render(sb.String()))
}

func (m Model) phaseBadge() string {
	switch m.status.Phase {
	case "running":
		return m.pal.Good.Render("● running")
	case "paused":
		return m.pal.Hot.Render("❚❚ paused")
	case "completed":
		return m.pal.Good.Render("✓ completed")
	default:
		return m.pal.Muted.Render(m.status.Phase)
	}
}

func (m Model) statusCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Status(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func (m Model) mutateCmd(op func(context.Context) (sessiondto.StatusOutput, error)) tea.Cmd {
	return func() tea.Msg {
		status, err := op(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

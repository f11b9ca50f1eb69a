package courses

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	coursedto "focusdeck/internal/modules/course/dto"
	"focusdeck/internal/ui/theme"
)

type CoursePort interface {
	List(ctx context.Context) ([]coursedto.CourseOutput, error)
	Create(ctx context.Context, input coursedto.CreateInput) (coursedto.CourseOutput, error)
	Rename(ctx context.Context, id, name string) (coursedto.CourseOutput, error)
	Recolor(ctx context.Context, id, color string) (coursedto.CourseOutput, error)
	Delete(ctx context.Context, id string) (coursedto.DeleteOutput, error)
}

type CoursesLoadedMsg struct {
	Courses []coursedto.CourseOutput
	Err     error
}

type MutatedMsg struct {
	Notice string
	Err    error
}

// SelectedMsg bubbles the current selection up to the app so the timer
// tab knows which course the next run belongs to.
type SelectedMsg struct {
	ID   string
	Name string
}

type courseItem struct {
	course coursedto.CourseOutput
}

func (i courseItem) Title() string { return i.course.Name }
func (i courseItem) Description() string {
	return fmt.Sprintf("%s  added %s", i.course.Color, i.course.CreatedAt.Format("2006-01-02"))
}
func (i courseItem) FilterValue() string { return i.course.Name }

type Model struct {
	port   CoursePort
	pal    theme.Palette
	list   list.Model
	notice string
	width  int
	height int
}

func New(port CoursePort, pal theme.Palette) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(pal.Accent).BorderForeground(pal.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(pal.Subtext).BorderForeground(pal.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Courses"
	l.Styles.Title = pal.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, pal: pal, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *Model) SetPalette(pal theme.Palette) {
	m.pal = pal
	m.list.Styles.Title = pal.Title
}

// Filtering reports whether the list's search filter is currently
// active, so the app can yield global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Selected returns the current selection, if any.
func (m Model) Selected() (coursedto.CourseOutput, bool) {
	if item, ok := m.list.SelectedItem().(courseItem); ok {
		return item.course, true
	}
	return coursedto.CourseOutput{}, false
}

// Reload refreshes the course list from the store.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

// Create, Rename, Recolor and Delete run against the selection (or a
// new record) and report through MutatedMsg; the app reloads on it.
func (m Model) Create(name, color string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Create(context.Background(), coursedto.CreateInput{Name: name, Color: color})
		if err != nil {
			return MutatedMsg{Err: err}
		}
		return MutatedMsg{Notice: "added " + out.Name}
	}
}

func (m Model) RenameSelected(name string) tea.Cmd {
	course, ok := m.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		out, err := m.port.Rename(context.Background(), course.ID, name)
		if err != nil {
			return MutatedMsg{Err: err}
		}
		return MutatedMsg{Notice: "renamed to " + out.Name}
	}
}

func (m Model) RecolorSelected(color string) tea.Cmd {
	course, ok := m.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		_, err := m.port.Recolor(context.Background(), course.ID, color)
		if err != nil {
			return MutatedMsg{Err: err}
		}
		return MutatedMsg{Notice: "recolored " + course.Name}
	}
}

func (m Model) DeleteSelected() tea.Cmd {
	course, ok := m.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		out, err := m.port.Delete(context.Background(), course.ID)
		if err != nil {
			return MutatedMsg{Err: err}
		}
		return MutatedMsg{Notice: fmt.Sprintf("deleted %s (%d sessions removed)", out.Name, out.SessionsRemoved)}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-2)

	case CoursesLoadedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Courses))
		for i, course := range msg.Courses {
			items[i] = courseItem{course: course}
		}
		cmds = append(cmds, m.list.SetItems(items))
		cmds = append(cmds, m.announceSelection())

	case MutatedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
		} else {
			m.notice = msg.Notice
		}
		cmds = append(cmds, m.loadCmd())
	}

	prevIdx := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		cmds = append(cmds, m.announceSelection())
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.list.View())
	sb.WriteString("\n")
	if m.notice != "" {
		sb.WriteString(m.pal.Good.Render(m.notice))
	} else {
		sb.WriteString(m.pal.Muted.Render("enter: use for timer  :course:add <name> to add"))
	}
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(sb.String())
}

func (m Model) announceSelection() tea.Cmd {
	course, ok := m.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return SelectedMsg{ID: course.ID, Name: course.Name}
	}
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		courses, err := m.port.List(context.Background())
		return CoursesLoadedMsg{Courses: courses, Err: err}
	}
}

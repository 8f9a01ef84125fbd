package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lessonplan/internal/agenda"
	"github.com/alexanderramin/lessonplan/internal/cli/formatter"
	"github.com/alexanderramin/lessonplan/internal/domain"
	"github.com/alexanderramin/lessonplan/internal/planner"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// storeChangedMsg reports that the store notified a change.
type storeChangedMsg struct{}

// pullDoneMsg carries the outcome of a manual pull.
type pullDoneMsg struct{ err error }

type agendaKeyMap struct {
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	Up       key.Binding
	Down     key.Binding
	Cycle    key.Binding
	Note     key.Binding
	Pull     key.Binding
	Quit     key.Binding
}

func newAgendaKeyMap() agendaKeyMap {
	return agendaKeyMap{
		PrevWeek: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev week")),
		NextWeek: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next week")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Cycle:    key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "cycle status")),
		Note:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "observations")),
		Pull:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "pull")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k agendaKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevWeek, k.NextWeek, k.Up, k.Down, k.Cycle, k.Note, k.Pull, k.Quit}
}

// agendaModel is the interactive weekly agenda. It reads everything from
// the store and refreshes on store notifications.
type agendaModel struct {
	store     *planner.Store
	weekStart time.Weekday
	now       func() time.Time
	keys      agendaKeyMap

	ref     time.Time
	week    []domain.Lesson
	units   []domain.Unit
	syncSt  planner.SyncState
	cursor  int
	flash   string
	width   int
	height  int
	changes chan struct{}

	editing bool
	note    textinput.Model

	quitting bool
}

func newAgendaModel(app *App, store *planner.Store) agendaModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 2000
	ti.Placeholder = "observations for this lesson"

	m := agendaModel{
		store:     store,
		weekStart: app.WeekStart,
		now:       app.now,
		keys:      newAgendaKeyMap(),
		ref:       app.now(),
		changes:   make(chan struct{}, 1),
		note:      ti,
	}
	m.reload()
	return m
}

// subscribe forwards store notifications to the model's change channel,
// coalescing bursts into a single pending message.
func (m agendaModel) subscribe() func() {
	ch := m.changes
	return m.store.Subscribe(func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}

// reload re-derives the visible week from the store, keeping the cursor on
// the same lesson when it is still there.
func (m *agendaModel) reload() {
	var selected string
	if l, ok := m.selected(); ok {
		selected = l.ID
	}

	m.units = m.store.Units()
	m.week = agenda.WeeklyAgenda(m.store.Lessons(), m.units, m.ref, m.weekStart)
	m.syncSt = m.store.SyncState()

	m.cursor = min(m.cursor, max(len(m.week)-1, 0))
	for i, l := range m.week {
		if l.ID == selected {
			m.cursor = i
			break
		}
	}
}

func (m agendaModel) selected() (domain.Lesson, bool) {
	if m.cursor < 0 || m.cursor >= len(m.week) {
		return domain.Lesson{}, false
	}
	return m.week[m.cursor], true
}

func (m agendaModel) Init() tea.Cmd {
	return waitForChange(m.changes)
}

func (m agendaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.note.Width = max(msg.Width-4, 20)
		return m, nil

	case storeChangedMsg:
		m.reload()
		return m, waitForChange(m.changes)

	case pullDoneMsg:
		m.reload()
		if msg.err != nil {
			m.flash = formatter.StyleRed.Render(m.syncSt.Err)
		} else {
			m.flash = formatter.StyleGreen.Render("Pulled latest data.")
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateNote(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m agendaModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevWeek):
		m.ref = m.ref.AddDate(0, 0, -7)
		m.cursor = 0
		m.reload()

	case key.Matches(msg, m.keys.NextWeek):
		m.ref = m.ref.AddDate(0, 0, 7)
		m.cursor = 0
		m.reload()

	case key.Matches(msg, m.keys.Today):
		m.ref = m.now()
		m.cursor = 0
		m.reload()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.week)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Cycle):
		l, ok := m.selected()
		if !ok {
			return m, nil
		}
		if _, err := m.store.UpdateLessonStatus(l.ID, l.Status.Next()); err != nil {
			m.flash = formatter.StyleRed.Render(err.Error())
		}
		m.reload()

	case key.Matches(msg, m.keys.Note):
		l, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.editing = true
		m.note.SetValue(l.Observations)
		m.note.CursorEnd()
		cmd := m.note.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Pull):
		if m.store.RemoteURL() == "" {
			m.flash = formatter.Dim("Offline: set an endpoint with `lessonplan sync url URL`.")
			return m, nil
		}
		store := m.store
		return m, func() tea.Msg {
			return pullDoneMsg{err: store.ManualPull(context.Background())}
		}
	}
	return m, nil
}

func (m agendaModel) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.note.Blur()
		return m, nil
	case tea.KeyEnter:
		m.editing = false
		m.note.Blur()
		if l, ok := m.selected(); ok {
			m.store.UpdateLessonObservation(l.ID, strings.TrimSpace(m.note.Value()))
			m.flash = formatter.StyleGreen.Render("Observations saved.")
		}
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return m, cmd
}

func (m agendaModel) View() string {
	if m.quitting {
		return ""
	}
	width := max(m.width, 20)
	start, end := agenda.Window(m.ref, m.weekStart)

	var b strings.Builder
	title := formatter.StylePurple.Render("lessonplan") + " " +
		formatter.Dim("›") + " " +
		formatter.Bold(fmt.Sprintf("%s to %s", start.Format("Mon 02 Jan"), end.Format("Mon 02 Jan 2006")))
	b.WriteString(title + "  " + formatter.SyncIndicator(m.syncSt.Indicator()))
	b.WriteString("\n" + formatter.Dim(strings.Repeat("─", width)) + "\n")

	if len(m.week) == 0 {
		b.WriteString(formatter.Dim("No lessons scheduled this week.") + "\n")
	}
	now := m.now()
	for i, l := range m.week {
		u, _ := agenda.FindUnit(m.units, l.UnitID)
		marker := "  "
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("› ")
		}
		fmt.Fprintf(&b, "%s%-10s %-7s %-10s %-8s %s  %s\n",
			marker,
			formatter.LessonDayFrom(l.Date, now),
			formatter.Truncate(u.Shift, 7),
			formatter.Truncate(u.ClassCode, 10),
			formatter.Truncate(l.SequenceLabel, 8),
			formatter.StatusBadge(l.Status),
			formatter.Truncate(l.Title, max(width-56, 12)),
		)
	}

	if l, ok := m.selected(); ok {
		b.WriteString("\n" + m.renderDetail(l))
	}

	b.WriteString("\n" + formatter.Dim(strings.Repeat("─", width)) + "\n")
	switch {
	case m.editing:
		b.WriteString(m.note.View() + "\n" + formatter.Dim("enter: save  esc: cancel"))
	default:
		if m.flash != "" {
			b.WriteString(m.flash + "\n")
		} else if m.syncSt.Err != "" {
			b.WriteString(formatter.StyleRed.Render(m.syncSt.Err) + "\n")
		}
		var hints []string
		for _, k := range m.keys.ShortHelp() {
			hints = append(hints, formatter.Dim(k.Help().Key+": "+k.Help().Desc))
		}
		b.WriteString(strings.Join(hints, "  "))
	}
	return b.String()
}

func (m agendaModel) renderDetail(l domain.Lesson) string {
	var lines []string
	lines = append(lines, formatter.Bold(l.Title))
	if u, ok := agenda.FindUnit(m.units, l.UnitID); ok {
		loc := ""
		if u.Location != "" {
			loc = " · " + u.Location
		}
		lines = append(lines, formatter.Dim(u.Name+loc))
	}
	if l.Description != "" {
		lines = append(lines, l.Description)
	}
	if l.Observations != "" {
		lines = append(lines, formatter.StyleYellow.Render("Obs: ")+l.Observations)
	}
	if l.Link != "" {
		lines = append(lines, formatter.StyleBlue.Render(l.Link))
	}
	return strings.Join(lines, "\n") + "\n"
}

package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/remindme/internal/confirm"
	"github.com/manav03panchal/remindme/internal/model"
	"github.com/manav03panchal/remindme/internal/parser"
	"github.com/manav03panchal/remindme/internal/runtime"
	"github.com/manav03panchal/remindme/internal/view"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// refreshMsg is sent when the reminder list changed.
type refreshMsg struct{}

// alertMsg carries a delivered notification into the UI.
type alertMsg struct {
	id int
	n  *model.Notification
}

// UI modes.
const (
	modeList = iota
	modeForm
	modeConfirmDelete
)

// filter cycle orders. Index 0 is the wildcard.
var (
	categoryCycle = append([]string{view.All}, model.ValidCategories()...)
	priorityCycle = append([]string{view.All}, model.ValidPriorities()...)
)

// DashboardModel is the main bubbletea model for the session.
type DashboardModel struct {
	ctx *runtime.Context

	reminders []*model.Reminder // display order
	filter    view.Filter
	cursor    int

	mode   int
	form   formModel
	target string // reminder id pending deletion

	alert   *model.Notification
	alertID int
	motd    *model.Notification

	width      int
	height     int
	err        error
	message    string
	messageExp time.Time
}

// NewDashboardModel creates the model for a session context.
func NewDashboardModel(ctx *runtime.Context) *DashboardModel {
	m := &DashboardModel{
		ctx:    ctx,
		filter: view.NewFilter(),
		mode:   modeList,
	}
	m.reload()
	return m
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.ResumeMsg:
		// Back in the foreground after a suspend; re-check overdue now.
		m.ctx.Lifecycle.Emit()
		m.reload()
		return m, nil

	case tickMsg:
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case refreshMsg:
		m.reload()
		return m, nil

	case alertMsg:
		if msg.n.Type == model.NotifyMOTD {
			m.motd = msg.n
		} else {
			m.alert = msg.n
			m.alertID = msg.id
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input per mode.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.handleFormKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}
	return m.handleListKey(msg)
}

// handleListKey handles keys in list mode.
func (m *DashboardModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.reminders)-1 {
			m.cursor++
		}

	case " ", "enter":
		if r := m.selected(); r != nil {
			if _, err := m.ctx.Store.ToggleComplete(r.ID); err != nil {
				m.err = err
			} else {
				m.reload()
			}
		}

	case "a":
		m.form = newAddForm(m.ctx.Config.DefaultCategory, m.ctx.Config.DefaultPriority)
		m.mode = modeForm

	case "e":
		if r := m.selected(); r != nil {
			m.form = newEditForm(r)
			m.mode = modeForm
		}

	case "d":
		if r := m.selected(); r != nil {
			if s, ok := m.ctx.Confirmer.(confirm.Static); ok && s.Answer {
				m.ctx.Store.Remove(r.ID)
				m.setMessage("Deleted", 2*time.Second)
				m.reload()
			} else {
				m.target = r.ID
				m.mode = modeConfirmDelete
			}
		}

	case "c":
		m.filter.Category = cycleNext(categoryCycle, m.filter.Category)
		m.reload()

	case "p":
		m.filter.Priority = cycleNext(priorityCycle, m.filter.Priority)
		m.reload()

	case "m":
		if m.alert != nil && m.alert.ReminderID != "" {
			if _, err := m.ctx.Store.ToggleComplete(m.alert.ReminderID); err != nil {
				m.err = err
			} else {
				m.setMessage("Marked complete", 2*time.Second)
			}
			m.dismissAlert()
			m.reload()
		}

	case "z":
		if m.alert != nil && m.alert.ReminderID != "" {
			if r, err := m.ctx.Store.Get(m.alert.ReminderID); err == nil {
				m.ctx.Scheduler.Snooze(r)
				m.setMessage("Snoozed for 10 minutes", 2*time.Second)
			}
			m.dismissAlert()
		}

	case "x", "esc":
		m.dismissAlert()
		m.motd = nil

	case "r":
		m.reload()
		m.setMessage("Refreshed", time.Second)
	}

	return m, nil
}

// handleFormKey handles keys in the add/edit form.
func (m *DashboardModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeList
		return m, nil
	}

	if m.form.handleKey(msg) {
		if err := m.submitForm(); err != nil {
			m.form.errText = err.Error()
			return m, nil
		}
		m.mode = modeList
		m.reload()
	}
	return m, nil
}

// submitForm applies the form as an add or an update.
func (m *DashboardModel) submitForm() error {
	due, err := parser.ParseDue(m.form.due, m.ctx.Clock.Now())
	if err != nil {
		return err
	}

	if m.form.editID == "" {
		_, err = m.ctx.Store.Add(model.Draft{
			Text:     m.form.text,
			Category: m.form.Category(),
			Priority: m.form.Priority(),
			DueDate:  due.DueDate,
			DueTime:  due.DueTime,
		})
		if err == nil {
			m.setMessage("Reminder added", 2*time.Second)
		}
		return err
	}

	text := m.form.text
	category := m.form.Category()
	priority := m.form.Priority()
	_, err = m.ctx.Store.Update(m.form.editID, model.Patch{
		Text:     &text,
		Category: &category,
		Priority: &priority,
		DueDate:  &due.DueDate,
		DueTime:  &due.DueTime,
	})
	if err == nil {
		m.setMessage("Reminder updated", 2*time.Second)
	}
	return err
}

// handleConfirmKey handles the delete confirmation prompt.
func (m *DashboardModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.ctx.Store.Remove(m.target)
		m.setMessage("Deleted", 2*time.Second)
		m.reload()
	case "ctrl+c":
		return m, tea.Quit
	}
	m.target = ""
	m.mode = modeList
	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
		m.err = nil
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	if m.motd != nil {
		sections = append(sections, StyleMOTDBox.Render(
			StyleSuccess.Render(m.motd.Title)+"\n"+m.motd.Message))
	}

	if m.alert != nil {
		sections = append(sections, m.renderAlert())
	}

	switch m.mode {
	case modeForm:
		sections = append(sections, m.form.View())
	case modeConfirmDelete:
		sections = append(sections, StyleAlertBox.Render(
			"Delete this reminder? This cannot be undone.\n"+
				HelpBar("y", "delete", "any other key", "keep")))
	default:
		sections = append(sections, m.renderList())
		sections = append(sections, HelpBar(
			"a", "add", "e", "edit", "space", "toggle", "d", "delete",
			"c/p", "filter", "q", "quit",
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line with active filters.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("RemindMe")
	now := m.ctx.Clock.Now().Format("Mon Jan 2, 15:04")

	filters := fmt.Sprintf("category: %s  priority: %s", m.filter.Category, m.filter.Priority)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		title, "  ", StyleSubtitle.Render(now), "  ", StyleSubtitle.Render(filters)) + "\n"
}

// renderAlert renders the notification banner with its actions.
func (m *DashboardModel) renderAlert() string {
	lines := []string{
		StyleError.Render(m.alert.Title),
		m.alert.Message,
	}
	if len(m.alert.Actions) > 0 {
		lines = append(lines, HelpBar("m", model.ActionMarkComplete, "z", model.ActionSnooze, "x", "dismiss"))
	}
	return StyleAlertBox.Render(strings.Join(lines, "\n"))
}

// renderList renders the filtered, sorted reminder list.
func (m *DashboardModel) renderList() string {
	if len(m.reminders) == 0 {
		return StyleListBox.Render(StyleSubtitle.Render("No reminders. Press 'a' to add one."))
	}

	now := m.ctx.Clock.Now()
	var rows []string
	for i, r := range m.reminders {
		rows = append(rows, m.renderRow(r, i == m.cursor, now))
	}
	return StyleListBox.Render(strings.Join(rows, "\n"))
}

// renderRow renders one reminder line.
func (m *DashboardModel) renderRow(r *model.Reminder, active bool, now time.Time) string {
	pointer := "  "
	if active {
		pointer = StyleCursor.Render("❯ ")
	}

	check := "[ ]"
	text := r.Text
	if r.Completed {
		check = "[x]"
		text = StyleDone.Render(text)
	}

	line := fmt.Sprintf("%s%s %s  %s %s", pointer, check, text,
		CategoryBadge(r.Category), PriorityBadge(r.Priority))

	if r.HasDueDate() {
		due := parser.FormatDue(r.DueDate, r.DueTime, now)
		switch {
		case !r.Completed && model.IsOverdue(r.DueDate, now):
			due = StyleError.Render(due + " · overdue")
		case !r.Completed && model.IsDueToday(r.DueDate, now):
			due = StyleWarning.Render(due + " · today")
		default:
			due = StyleSubtitle.Render(due)
		}
		line += "  " + due
	}

	return line
}

// reload pulls the display list from the store.
func (m *DashboardModel) reload() {
	m.reminders = view.Apply(m.ctx.Store.List(), m.filter)
	if m.cursor >= len(m.reminders) {
		m.cursor = len(m.reminders) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the reminder under the cursor.
func (m *DashboardModel) selected() *model.Reminder {
	if m.cursor < 0 || m.cursor >= len(m.reminders) {
		return nil
	}
	return m.reminders[m.cursor]
}

// dismissAlert clears the alert banner.
func (m *DashboardModel) dismissAlert() {
	m.alert = nil
	m.alertID = 0
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// cycleNext advances a filter value through its cycle order.
func cycleNext(cycle []string, current string) string {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// Run starts the session TUI. Store changes and fired notifications are
// pushed into the program so the view stays current.
func Run(ctx *runtime.Context) error {
	m := NewDashboardModel(ctx)
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx.Store.OnChange(func() {
		p.Send(refreshMsg{})
	})
	ctx.Dispatcher.OnFire(func(id int, n *model.Notification) {
		p.Send(alertMsg{id: id, n: n})
	})

	_, err := p.Run()
	return err
}

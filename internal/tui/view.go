package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
	"github.com/thenoetrevino/taskflow/internal/tui/layers"
	"github.com/thenoetrevino/taskflow/internal/tui/notifications"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// headerHeight is the tab bar; footerHeight the status bar
const (
	headerHeight = 3
	footerHeight = 1
)

// tabViews are the views listed in the tab bar, in order
var tabViews = []state.View{state.DashboardView, state.ProjectsView, state.BoardView, state.TaskView}

// view renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m *Model) view() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderBody(),
		m.renderFooter(),
	)

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.FormMode:
		if m.UiState.View() != state.LoginView {
			modal = layers.CreateCenteredLayer(m.renderFormModal(), m.UiState.Width(), m.UiState.Height())
		}
	case state.HelpMode:
		modal = layers.CreateCenteredLayer(m.renderHelp(), m.UiState.Width(), m.UiState.Height())
	case state.DeleteConfirmMode:
		modal = layers.CreateCenteredLayer(m.renderDeleteConfirm(), m.UiState.Width(), m.UiState.Height())
	}

	canvas := lipgloss.NewCanvas(layers.Stack(base, modal)...)
	view.Content = canvas.Render()
	return view
}

// bodyHeight is what is left between the header and the footer
func (m *Model) bodyHeight() int {
	return max(m.UiState.Height()-headerHeight-footerHeight, 0)
}

func (m *Model) renderHeader() string {
	var notification string
	if n, ok := m.NotificationState.Latest(); ok {
		notification = notifications.RenderInlineFromState(n)
	}

	if m.UiState.View() == state.LoginView {
		return components.RenderTabs([]string{"TaskFlow"}, 0, m.UiState.Width(), notification)
	}

	names := make([]string, 0, len(tabViews))
	selected := 0
	for i, v := range tabViews {
		names = append(names, v.Title())
		if v == m.UiState.View() {
			selected = i
		}
	}
	return components.RenderTabs(names, selected, m.UiState.Width(), notification)
}

func (m *Model) renderBody() string {
	var body string
	if m.UiState.Loading() {
		body = components.SubtleStyle.Render("Loading...")
	} else {
		switch m.UiState.View() {
		case state.LoginView:
			body = m.renderLogin()
		case state.DashboardView:
			body = m.renderDashboard()
		case state.ProjectsView:
			body = m.renderProjects()
		case state.BoardView:
			body = m.renderBoard()
		case state.TaskView:
			body = m.renderTask()
		}
	}

	return lipgloss.NewStyle().
		Height(m.bodyHeight()).
		MaxHeight(m.bodyHeight()).
		Render(body)
}

func (m *Model) renderFooter() string {
	left := "TaskFlow"
	if m.User != nil {
		left = fmt.Sprintf("TaskFlow · %s <%s>", m.User.Name, m.User.Email)
	}

	var hint string
	switch m.UiState.View() {
	case state.LoginView:
		hint = "enter submit  ctrl+n register/login  ctrl+c quit"
	case state.DashboardView:
		hint = components.DashboardFooter
	case state.ProjectsView:
		hint = components.ProjectsFooter
	case state.BoardView:
		hint = components.BoardFooter
	case state.TaskView:
		hint = components.DetailFooter
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  left,
		Hint:  hint,
	})
}

// renderFormModal wraps the active form in a box colored by its purpose
func (m *Model) renderFormModal() string {
	if !m.FormState.IsOpen() {
		return ""
	}
	width, _ := layers.ModalDimensions(m.UiState.Width(), m.UiState.Height())

	var title string
	box := components.FormBoxStyle
	switch m.FormState.Kind {
	case state.ProjectForm:
		title = "New Project"
		box = components.ProjectFormBoxStyle
	case state.TaskForm:
		title = "New Task"
	case state.EditTaskForm:
		title = "Edit Task"
		box = components.EditFormBoxStyle
	case state.CommentForm:
		title = "Add Comment"
		box = components.EditFormBoxStyle
	}

	content := components.TitleStyle.Render(title) + "\n\n" + m.FormState.Form.View()
	return box.Width(width).Render(content)
}

func (m *Model) renderHelp() string {
	km := m.Config.KeyMappings
	rows := [][2]string{
		{km.ShowDashboard, "dashboard"},
		{km.ShowProjects, "projects"},
		{km.Refresh, "refresh"},
		{km.PrevColumn + "/" + km.NextColumn, "select column"},
		{km.PrevTask + "/" + km.NextTask, "select task"},
		{km.MoveTaskLeft + "/" + km.MoveTaskRight, "move task"},
		{km.AddTask, "new task"},
		{km.ViewTask, "open"},
		{km.EditTask, "edit task"},
		{km.CycleStatus, "next status"},
		{km.CyclePriority, "next priority"},
		{km.AddComment, "comment"},
		{km.DeleteTask, "delete task"},
		{km.CreateProject, "new project"},
		{km.DeleteProject, "delete project"},
		{km.Back, "back"},
		{km.Logout, "log out"},
		{km.Quit, "quit"},
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true).
		Width(12)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	lines := []string{components.TitleStyle.Render("Keyboard Shortcuts"), ""}
	for _, row := range rows {
		lines = append(lines, keyStyle.Render(row[0])+descStyle.Render(row[1]))
	}
	lines = append(lines, "", components.SubtleStyle.Render("press any key to close"))

	return components.HelpBoxStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderDeleteConfirm() string {
	var question, detail string
	switch {
	case m.UiState.View() == state.TaskView && m.Detail != nil:
		question = fmt.Sprintf("Delete task '%s'?", m.Detail.Task().Title)
		detail = "Its comments are removed as well."
	case m.ProjectList.PendingDelete() != nil:
		question = fmt.Sprintf("Delete project '%s'?", m.ProjectList.PendingDelete().Name)
		detail = "All of its tasks and comments are removed."
	default:
		return ""
	}

	warn := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete)).Bold(true)
	content := warn.Render(question) + "\n\n" +
		detail + "\n\n" +
		components.SubtleStyle.Render("[y] delete  [n] cancel")

	return components.DeleteConfirmBoxStyle.Render(content)
}

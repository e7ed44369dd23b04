package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/dashboard"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
	"github.com/thenoetrevino/taskflow/internal/tui/notifications"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

func (m *Model) renderLogin() string {
	heading := components.TitleStyle.Render("TaskFlow")

	var content string
	if m.FormState.IsOpen() {
		subtitle := "Sign in to continue"
		if m.FormState.Kind == state.RegisterForm {
			subtitle = "Create an account"
		}
		content = heading + "\n" + components.SubtleStyle.Render(subtitle) + "\n\n" + m.FormState.Form.View()
	} else {
		content = heading + "\n\n" + components.SubtleStyle.Render("press any key to sign in")
	}

	box := components.FormBoxStyle.Width(min(60, m.UiState.Width())).Render(content)
	// failed sign-ins are shown above the form as well as in the header
	if n, ok := m.NotificationState.Latest(); ok && n.Level == state.LevelError {
		box = lipgloss.JoinVertical(lipgloss.Center, notifications.RenderFromState(n), box)
	}
	return lipgloss.Place(m.UiState.Width(), m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderDashboard() string {
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		MarginTop(1)

	parts := []string{components.RenderStats(m.DashboardState.Stats())}

	parts = append(parts, sectionStyle.Render("Assigned to me"))
	var assigned []dashboard.AssignedTask
	if m.User != nil {
		assigned = m.DashboardState.Assigned(m.User.ID)
	}
	if len(assigned) == 0 {
		parts = append(parts, components.SubtleStyle.Render("Nothing assigned to you"))
	}
	for _, task := range assigned {
		parts = append(parts, components.RenderAssignedTask(task))
	}

	parts = append(parts, sectionStyle.Render("Projects"))
	if len(m.DashboardState.Projects) == 0 {
		parts = append(parts, components.SubtleStyle.Render("No projects yet. Press "+m.Config.KeyMappings.ShowProjects+" to create one."))
	}
	for _, pt := range m.DashboardState.Projects {
		parts = append(parts, components.RenderProjectProgress(pt.Project.Name, dashboard.ProjectProgress(pt.Tasks), 34))
	}

	return strings.Join(parts, "\n")
}

func (m *Model) renderProjects() string {
	if len(m.ProjectList.Projects) == 0 {
		return components.SubtleStyle.Render("No projects. Press " + m.Config.KeyMappings.CreateProject + " to create one.")
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	var lines []string
	for i, p := range m.ProjectList.Projects {
		line := "  " + p.Name
		style := nameStyle
		if i == m.ProjectList.Cursor() {
			line = "> " + p.Name
			style = selectedStyle
		}
		row := style.Render(line)
		if p.Description != "" {
			row += "  " + descStyle.Render(components.TruncateTitle(p.Description))
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBoard() string {
	if m.Board == nil {
		return components.SubtleStyle.Render("Board unavailable. Press " + m.Config.KeyMappings.Refresh + " to retry.")
	}

	title := components.TitleStyle.Render(m.Board.Project.Name)
	columnHeight := max(m.bodyHeight()-1, 0)

	columns := make([]string, 0, len(models.Statuses))
	for i, status := range models.Statuses {
		selected := i == m.Board.SelectedColumn()
		selectedTask := -1
		if selected {
			selectedTask = m.Board.SelectedTaskIndex()
		}
		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Status:       status,
			Tasks:        m.Board.Column(status),
			Selected:     selected,
			SelectedTask: selectedTask,
			Height:       columnHeight,
			Assignees:    m.userNames(),
		}))
	}

	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m *Model) renderTask() string {
	if m.Detail == nil {
		return components.SubtleStyle.Render("Task unavailable. Press " + m.Config.KeyMappings.Back + " to go back.")
	}

	task := m.Detail.Task()
	return components.RenderTaskView(components.TaskViewProps{
		Task:            task,
		Assignee:        m.assigneeName(task),
		Comments:        m.Detail.Comments,
		SelectedComment: m.Detail.SelectedComment(),
		Authors:         m.authorNames(),
		Width:           m.UiState.Width(),
		Height:          m.bodyHeight(),
		Scroll:          m.Detail.Scroll(),
		Now:             m.now(),
	})
}

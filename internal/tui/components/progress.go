package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/dashboard"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// RenderProgressBar draws a bar of the given width filled to percent
func RenderProgressBar(percent, width int) string {
	percent = min(max(percent, 0), 100)
	filled := width * percent / 100

	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ProgressFill)).
		Render(strings.Repeat("█", filled))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ProgressEmpty)).
		Render(strings.Repeat("░", width-filled))

	return fill + empty
}

// RenderProjectProgress renders one dashboard row
//
//	Website Relaunch   ██████░░░░░░░░░░░░░░░░░░  25%  1/4 done
func RenderProjectProgress(name string, p dashboard.Progress, nameWidth int) string {
	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Width(nameWidth)

	summary := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(fmt.Sprintf("%d/%d done", p.Done, p.Total))

	return nameStyle.Render(TruncateTitle(name)) + " " +
		RenderProgressBar(p.Percent, progressBarWidth) +
		fmt.Sprintf(" %3d%%  ", p.Percent) + summary
}

// RenderStatCard renders a labelled total
func RenderStatCard(label string, value int) string {
	valueStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	return StatCardStyle.Render(valueStyle.Render(fmt.Sprintf("%d", value)) + "\n" + labelStyle.Render(label))
}

// RenderStats renders the dashboard totals side by side
func RenderStats(stats dashboard.Stats) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		RenderStatCard("Projects", stats.Projects),
		RenderStatCard("Tasks", stats.Total),
		RenderStatCard("To Do", stats.Todo),
		RenderStatCard("In Progress", stats.InProgress),
		RenderStatCard("Done", stats.Done),
	)
}

// RenderAssignedTask renders one row of the "Assigned to me" list
func RenderAssignedTask(task dashboard.AssignedTask) string {
	projectStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	priorityStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(task.Priority.Color()))

	return fmt.Sprintf("%s %s  %s  %s",
		priorityStyle.Render("●"),
		TruncateTitle(task.Title),
		projectStyle.Render(task.ProjectName),
		projectStyle.Render("["+task.Status.Title()+"]"),
	)
}

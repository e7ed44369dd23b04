package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// TaskProps describes one task card
type TaskProps struct {
	Task     models.Task
	Selected bool
	// Assignee is the display name, empty when unassigned
	Assignee string
}

// RenderTask renders a single task as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Task Title}                       ┃
//	┃ priority │ assignee                ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
//
// This has a fixed width and length
func RenderTask(props TaskProps) string {
	bg := theme.TaskBg
	border := theme.TaskBorder
	if props.Selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}

	content := renderTaskTitle(props.Task, bg) + "\n" + renderTaskMetadata(props, bg)

	style := TaskStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))

	return style.Render(content)
}

// TruncateTitle shortens titles longer than the card allows
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= taskTitleMaxLength {
		return title
	}
	return string(runes[:taskTitleMaxLength]) + "..."
}

func renderTaskTitle(task models.Task, bg string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg)).
		Render(" " + TruncateTitle(task.Title))
}

// renderTaskMetadata renders priority and assignee on the same line, separated by │
func renderTaskMetadata(props TaskProps, bg string) string {
	priorityDisplay := lipgloss.NewStyle().
		Foreground(lipgloss.Color(props.Task.Priority.Color())).
		Background(lipgloss.Color(bg)).
		Render(string(props.Task.Priority))

	var assigneeDisplay string
	if props.Assignee != "" {
		assigneeDisplay = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Render(props.Assignee)
	} else {
		assigneeDisplay = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true).
			Render("unassigned")
	}

	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(" │ ")

	return " " + priorityDisplay + separator + assigneeDisplay
}

package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// ColumnProps describes one board column
type ColumnProps struct {
	Status models.Status
	Tasks  []models.Task
	// Selected is true for the focused column
	Selected bool
	// SelectedTask is the index of the highlighted task, -1 for none
	SelectedTask int
	// Height is the fixed outer height, 0 for auto
	Height int
	// Assignees maps user ids to display names
	Assignees map[int]string
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Status} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
func RenderColumn(props ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", props.Status.Title(), len(props.Tasks))
	content := TitleStyle.Render(header) + "\n"

	if len(props.Tasks) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No tasks")
	} else {
		maxVisible := len(props.Tasks)
		if props.Height > 0 {
			maxVisible = max((props.Height-columnOverhead)/TaskCardHeight, 1)
		}

		// keep the selected task on screen
		offset := 0
		if props.Selected && props.SelectedTask >= maxVisible {
			offset = props.SelectedTask - maxVisible + 1
		}
		end := min(offset+maxVisible, len(props.Tasks))

		if offset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		var cards []string
		for i, task := range props.Tasks[offset:end] {
			selected := props.Selected && offset+i == props.SelectedTask
			cards = append(cards, RenderTask(TaskProps{
				Task:     task,
				Selected: selected,
				Assignee: assigneeName(task, props.Assignees),
			}))
		}
		content += strings.Join(cards, "\n")

		if end < len(props.Tasks) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		style = style.Height(props.Height - 2)
	}

	return style.Render(content)
}

// assigneeName resolves the display name of the task's assignee
func assigneeName(task models.Task, names map[int]string) string {
	if task.AssigneeID == nil {
		return ""
	}
	if name, ok := names[*task.AssigneeID]; ok {
		return name
	}
	return fmt.Sprintf("user #%d", *task.AssigneeID)
}

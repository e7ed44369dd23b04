package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type MetadataColumnProps struct {
	Task      models.Task
	Assignee  string
	Width     int
	HasBorder bool
}

func RenderMetadataColumn(props MetadataColumnProps) string {
	var parts []string

	parts = append(parts, renderMetadataSection("Status", props.Task.Status.Title()))

	priority := lipgloss.NewStyle().
		Foreground(lipgloss.Color(props.Task.Priority.Color())).
		Render(string(props.Task.Priority))
	parts = append(parts, renderMetadataLabel("Priority")+"\n"+priority+"\n")

	assignee := props.Assignee
	if assignee == "" {
		assignee = "Unassigned"
	}
	parts = append(parts, renderMetadataSection("Assignee", assignee))

	createdStr := props.Task.CreatedAt.Format("Jan 2, 2006 3:04 PM")
	parts = append(parts, renderMetadataSection("Created", createdStr))

	updatedStr := props.Task.UpdatedAt.Format("Jan 2, 2006 3:04 PM")
	parts = append(parts, renderMetadataSection("Updated", updatedStr))

	content := strings.Join(parts, "\n")

	style := lipgloss.NewStyle().
		Width(props.Width).
		Padding(0, 1)

	if props.HasBorder {
		style = style.
			BorderLeft(true).
			BorderStyle(lipgloss.Border{
				Left: "│",
			}).
			BorderForeground(lipgloss.Color(theme.Subtle))
	}

	return style.Render(content)
}

func renderMetadataLabel(label string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Bold(true).
		Render(label)
}

func renderMetadataSection(label string, value string) string {
	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	return renderMetadataLabel(label) + "\n" + valueStyle.Render(value) + "\n"
}

package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type TaskViewProps struct {
	Task     models.Task
	Assignee string
	Comments []models.Comment
	// SelectedComment is the index of the highlighted comment
	SelectedComment int
	// Authors maps user ids to display names
	Authors map[int]string
	Width   int
	Height  int
	// Scroll is the number of body lines hidden above the top
	Scroll int
	Now    time.Time
}

// RenderTaskView renders the task detail: title, markdown description and
// comments on the left, metadata on the right.
func RenderTaskView(props TaskViewProps) string {
	task := props.Task

	contentWidth := max(props.Width-8, 40)
	leftColWidth := (contentWidth * 75) / 100
	rightColWidth := contentWidth - leftColWidth - 1

	var leftParts []string

	idStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
	leftParts = append(leftParts, idStyle.Render(fmt.Sprintf("Task #%d", task.ID)))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))
	leftParts = append(leftParts, titleStyle.Render(task.Title))
	leftParts = append(leftParts, "")

	leftParts = append(leftParts, RenderDescription(DescriptionProps{
		Description: task.Description,
		Width:       leftColWidth - 2,
	}))
	leftParts = append(leftParts, "")

	leftParts = append(leftParts, RenderCommentSection(props, leftColWidth-2))

	body := strings.Join(leftParts, "\n")
	if props.Scroll > 0 {
		lines := strings.Split(body, "\n")
		body = strings.Join(lines[min(props.Scroll, len(lines)-1):], "\n")
	}

	leftColumn := lipgloss.NewStyle().
		Width(leftColWidth).
		Padding(0, 1).
		Render(body)

	rightColumn := RenderMetadataColumn(MetadataColumnProps{
		Task:      task,
		Assignee:  props.Assignee,
		Width:     rightColWidth,
		HasBorder: true,
	})

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2).
		Width(props.Width)
	if props.Height > 0 {
		box = box.Height(props.Height).MaxHeight(props.Height)
	}

	return box.Render(lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, rightColumn))
}

// RenderCommentSection renders the "Comments (n)" header and one card per comment
func RenderCommentSection(props TaskViewProps, width int) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Bold(true)

	parts := []string{headerStyle.Render(fmt.Sprintf("Comments (%d)", len(props.Comments)))}
	if len(props.Comments) == 0 {
		parts = append(parts, SubtleStyle.Render("No comments yet"))
	}

	for i, c := range props.Comments {
		author, ok := props.Authors[c.AuthorID]
		if !ok {
			author = fmt.Sprintf("user #%d", c.AuthorID)
		}
		parts = append(parts, RenderCommentCard(CommentProps{
			Comment:  c,
			Author:   author,
			Selected: i == props.SelectedComment,
			Width:    width,
			Now:      props.Now,
		}))
	}

	return strings.Join(parts, "\n")
}

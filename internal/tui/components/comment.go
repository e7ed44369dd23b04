package components

import (
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// CommentProps describes one comment card
type CommentProps struct {
	Comment  models.Comment
	Author   string
	Selected bool
	Width    int
	Now      time.Time
}

// RenderCommentCard renders a single comment as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓  (selected)
//	┃ you · 3 minutes ago                  ┃
//	┃ this is a new comment                ┃
//	┃ with multiple lines                  ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
func RenderCommentCard(props CommentProps) string {
	bg := theme.TaskBg
	borderForeground := theme.Subtle
	if props.Selected {
		bg = theme.SelectedBg
		borderForeground = theme.SelectedBorder
	}

	header := RenderCommentHeader(props.Author, props.Comment.CreatedAt, props.Now)
	content := renderCommentContent(props.Comment, props.Width, bg)

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(borderForeground)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Width(props.Width).
		Padding(0, 1)

	return style.Render(header + "\n" + content)
}

// RenderCommentHeader renders "author · relative time"
func RenderCommentHeader(author string, created, now time.Time) string {
	if now.IsZero() {
		now = time.Now()
	}
	when := humanize.RelTime(created, now, "ago", "from now")

	authorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	return authorStyle.Render(author) + dateStyle.Render(" · "+when)
}

// WrapComment word-wraps comment text to fit a card of the given width
func WrapComment(content string, width int) string {
	// Reserve space for padding/borders
	return wordwrap.String(content, max(width-4, 20))
}

// renderCommentContent renders the comment content with word wrapping
func renderCommentContent(comment models.Comment, width int, bg string) string {
	contentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg))

	return contentStyle.Render(WrapComment(comment.Content, width))
}

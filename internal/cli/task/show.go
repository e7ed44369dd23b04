package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task including its markdown description and comments.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	// Flags
	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.ParseID(cmd, args, "id")
	if err != nil || taskID <= 0 {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID",
			"task ID must be a positive integer",
			"Usage: taskflow task show <id> or taskflow task show --id=<id>")
	}

	projectID, err := cli.RequireProject(cmd, formatter)
	if err != nil {
		return err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	task, err := cliInstance.App.Tasks.Get(ctx, projectID, taskID)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success(task)
	}

	comments, err := cliInstance.App.Comments.List(ctx, projectID, taskID)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{
			"task":     task,
			"comments": comments,
		})
	}

	fmt.Println(styles.RenderCard(renderTask(task, comments, time.Now())))
	return nil
}

func renderTask(task *models.Task, comments []models.Comment, now time.Time) string {
	var content strings.Builder
	width := styles.CardWidth - 6

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", task.ID, task.Title)))
	content.WriteString("\n\n")

	fmt.Fprintf(&content, "%s %s  %s %s\n",
		styles.LabelStyle.Render("Status:"), styles.RenderStatus(task.Status),
		styles.LabelStyle.Render("Priority:"), styles.RenderPriority(task.Priority))

	assignee := "unassigned"
	if task.AssigneeID != nil {
		assignee = fmt.Sprintf("user %d", *task.AssigneeID)
	}
	fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Assignee:"), styles.ValueStyle.Render(assignee))

	if !task.CreatedAt.IsZero() {
		fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Created:"),
			styles.SubtitleStyle.Render(task.CreatedAt.Format("Jan 2, 2006 3:04 PM")))
	}
	if !task.UpdatedAt.IsZero() {
		fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Updated:"),
			styles.SubtitleStyle.Render(task.UpdatedAt.Format("Jan 2, 2006 3:04 PM")))
	}

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: task.Description,
		Width:       width,
	}))
	content.WriteString("\n")

	content.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Comments (%d)", len(comments))))
	content.WriteString("\n")
	for _, c := range comments {
		author := fmt.Sprintf("user %d", c.AuthorID)
		content.WriteString(components.RenderCommentHeader(author, c.CreatedAt, now))
		content.WriteString("\n")
		content.WriteString(components.WrapComment(c.Content, width))
		content.WriteString("\n\n")
	}

	return strings.TrimRight(content.String(), "\n")
}

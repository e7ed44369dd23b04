package project

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/dashboard"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show project details",
		Long:  "Display a project with its members and board progress.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	projectID, err := cli.ParseID(cmd, args, "id")
	if err != nil || projectID <= 0 {
		return formatter.Fail(cli.ExitUsage, "INVALID_PROJECT_ID",
			"project ID must be a positive integer",
			"Usage: taskflow project show <id> or taskflow project show --id=<id>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	detail, err := cliInstance.App.Projects.Get(ctx, projectID)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	tasks, err := cliInstance.App.Tasks.List(ctx, projectID, models.TaskListParams{})
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}
	progress := dashboard.ProjectProgress(tasks)

	if formatter.Quiet {
		return formatter.Success(detail)
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{
			"project":  detail,
			"progress": progress,
		})
	}

	var content strings.Builder
	content.WriteString(styles.TitleStyle.Render(detail.Name))
	content.WriteString("\n")
	if detail.Description != "" {
		content.WriteString(styles.SubtitleStyle.Render(detail.Description))
		content.WriteString("\n")
	}

	content.WriteString(styles.SectionStyle.Render("Progress"))
	content.WriteString("\n")
	fmt.Fprintf(&content, "  %s %d%%  (%d todo, %d in progress, %d done)\n",
		styles.ProgressBar(progress.Percent, 30), progress.Percent,
		progress.Todo, progress.InProgress, progress.Done)

	content.WriteString(styles.SectionStyle.Render("Members"))
	content.WriteString("\n")
	for _, m := range detail.Members {
		fmt.Fprintf(&content, "  user %d  %s\n", m.UserID, styles.LabelStyle.Render(string(m.Role)))
	}

	fmt.Println(styles.RenderCard(content.String()))
	return nil
}

package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List the tasks of a project, optionally filtered and sorted by the backend.

Examples:
  taskflow task list --project=1
  taskflow task list --status=todo --priority=high
  taskflow task list --assignee=4 --sort-by=priority --sort-order=asc --json`,
		RunE: runList,
	}

	cli.AddProjectFlag(cmd)
	cmd.Flags().String("status", "", "Filter by status: todo, in_progress, done")
	cmd.Flags().String("priority", "", "Filter by priority: low, medium, high, critical")
	cmd.Flags().Int("assignee", 0, "Filter by assignee user ID")
	cmd.Flags().String("sort-by", "", "Sort field: created_at, updated_at, title, priority, status")
	cmd.Flags().String("sort-order", "", "Sort order: asc, desc")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	projectID, err := cli.RequireProject(cmd, formatter)
	if err != nil {
		return err
	}

	params, err := listParams(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_FILTER", err.Error(), "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	tasks, err := cliInstance.App.Tasks.List(ctx, projectID, params)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Found %d task(s):\n\n", len(tasks))
	for _, t := range tasks {
		assignee := ""
		if t.AssigneeID != nil {
			assignee = styles.SubtitleStyle.Render(fmt.Sprintf("  @%d", *t.AssigneeID))
		}
		fmt.Printf("  [%d] %s  %s  %s%s\n", t.ID, t.Title,
			styles.RenderStatus(t.Status), styles.RenderPriority(t.Priority), assignee)
	}
	return nil
}

func listParams(cmd *cobra.Command) (models.TaskListParams, error) {
	var params models.TaskListParams

	if s, _ := cmd.Flags().GetString("status"); s != "" {
		status, err := models.ParseStatus(s)
		if err != nil {
			return params, err
		}
		params.Status = &status
	}
	if p, _ := cmd.Flags().GetString("priority"); p != "" {
		priority, err := models.ParsePriority(p)
		if err != nil {
			return params, err
		}
		params.Priority = &priority
	}
	if cmd.Flags().Changed("assignee") {
		assignee, _ := cmd.Flags().GetInt("assignee")
		params.AssigneeID = &assignee
	}
	params.SortBy, _ = cmd.Flags().GetString("sort-by")
	params.SortOrder, _ = cmd.Flags().GetString("sort-order")

	return params, nil
}

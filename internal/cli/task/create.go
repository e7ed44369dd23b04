package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task in the todo column of a project.

Examples:
  taskflow task create --project=1 --title="Fix login bug"
  taskflow task create --title="Write docs" --priority=high --assignee=4 --quiet`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cli.AddProjectFlag(cmd)
	cmd.Flags().String("description", "", "Task description (markdown)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high, critical (default medium)")
	cmd.Flags().Int("assignee", 0, "Assignee user ID")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	projectID, err := cli.RequireProject(cmd, formatter)
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	req := models.TaskCreate{Title: title, Description: description}

	if priorityStr, _ := cmd.Flags().GetString("priority"); priorityStr != "" {
		priority, err := models.ParsePriority(priorityStr)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err.Error(), "")
		}
		req.Priority = &priority
	}
	if cmd.Flags().Changed("assignee") {
		assignee, _ := cmd.Flags().GetInt("assignee")
		req.AssigneeID = &assignee
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	task, err := cliInstance.App.Tasks.Create(ctx, projectID, req)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	fmt.Printf("✓ Task '%s' created successfully (ID: %d)\n", task.Title, task.ID)
	return nil
}

package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task",
		Long: `Update task title, description, status, priority or assignee.
Only the flags you pass are changed. An empty title is stored as "Untitled".

Examples:
  taskflow task update 7 --title="Fix login redirect"
  taskflow task update --id=7 --priority=critical --assignee=3 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cli.AddProjectFlag(cmd)

	// Optional update flags
	cmd.Flags().String("title", "", "New task title")
	cmd.Flags().String("description", "", "New task description")
	cmd.Flags().String("status", "", "New status: todo, in_progress, done")
	cmd.Flags().String("priority", "", "New priority: low, medium, high, critical")
	cmd.Flags().Int("assignee", 0, "New assignee user ID")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	taskID, err := cli.ParseID(cmd, args, "id")
	if err != nil || taskID <= 0 {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", "task ID must be a positive integer", "")
	}

	update, err := taskUpdate(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_VALUE", err.Error(), "")
	}
	if update.IsEmpty() {
		return formatter.Fail(cli.ExitUsage, "NO_UPDATES",
			"at least one of --title, --description, --status, --priority or --assignee must be specified", "")
	}

	tt, err := loadTarget(cmd, formatter, taskID)
	if err != nil {
		return err
	}
	defer tt.Close()

	task, err := tt.edit(cmd.Context(), update)
	if err != nil {
		return err
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	fmt.Printf("✓ Task %d updated successfully\n", task.ID)
	return nil
}

func taskUpdate(cmd *cobra.Command) (models.TaskUpdate, error) {
	var update models.TaskUpdate
	flags := cmd.Flags()

	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		update.Title = &title
	}
	if flags.Changed("description") {
		description, _ := flags.GetString("description")
		update.Description = &description
	}
	if flags.Changed("status") {
		s, _ := flags.GetString("status")
		status, err := models.ParseStatus(s)
		if err != nil {
			return update, err
		}
		update.Status = &status
	}
	if flags.Changed("priority") {
		p, _ := flags.GetString("priority")
		priority, err := models.ParsePriority(p)
		if err != nil {
			return update, err
		}
		update.Priority = &priority
	}
	if flags.Changed("assignee") {
		assignee, _ := flags.GetInt("assignee")
		update.AssigneeID = &assignee
	}

	return update, nil
}

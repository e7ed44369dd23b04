package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cli.AddProjectFlag(cmd)

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	taskID, err := cli.ParseID(cmd, args, "id")
	if err != nil || taskID <= 0 {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", "task ID must be a positive integer", "")
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

	// Get task details for confirmation
	task, err := cliInstance.App.Tasks.Get(ctx, projectID, taskID)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !formatter.Quiet {
		fmt.Printf("Delete task #%d: '%s'? (y/N): ", taskID, task.Title)
		var response string
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
			slog.Debug("no confirmation read", "error", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.Tasks.Delete(ctx, projectID, taskID); err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]int{"task_id": taskID})
	}

	fmt.Printf("✓ Task %d deleted successfully\n", taskID)
	return nil
}

package task

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to another status column",
		Long: `Move a task to another column by direction or status name.

Examples:
  # Move to next column
  taskflow task move --id 1 next

  # Move to previous column
  taskflow task move --id 1 prev

  # Move to specific column by status (case-insensitive)
  taskflow task move --id 1 "In Progress"
  taskflow task move --id 1 done

  # JSON output for agents
  taskflow task move --id 1 next --json

  # Quiet mode for bash capture
  taskflow task move --id 1 next --quiet
`,
		RunE: runMove,
		Args: cobra.ExactArgs(1),
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cli.AddProjectFlag(cmd)

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	taskID, _ := cmd.Flags().GetInt("id")
	return moveTask(cmd, taskID, args[0])
}

// moveTask moves taskID to target: "next", "prev" or a status name
func moveTask(cmd *cobra.Command, taskID int, target string) error {
	formatter := cli.NewFormatter(cmd)

	if taskID <= 0 {
		return formatter.Fail(cli.ExitUsage, "INVALID_TASK_ID", "task ID must be a positive integer", "")
	}

	var status models.Status
	direction := strings.ToLower(strings.TrimSpace(target))
	if direction != "next" && direction != "prev" {
		parsed, err := models.ParseStatus(target)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_STATUS", err.Error(),
				"Valid targets: next, prev, todo, in_progress, done")
		}
		status = parsed
	}

	tt, err := loadTarget(cmd, formatter, taskID)
	if err != nil {
		return err
	}
	defer tt.Close()

	from := tt.before.Status
	switch direction {
	case "next":
		status, err = from.Next()
	case "prev":
		status, err = from.Prev()
	}
	if err != nil {
		code := "NO_NEXT_COLUMN"
		if errors.Is(err, models.ErrAlreadyFirstColumn) {
			code = "NO_PREV_COLUMN"
		}
		return formatter.Fail(cli.ExitValidation, code,
			fmt.Sprintf("%v (%s)", err, from.Title()), "")
	}

	task, err := tt.move(cmd.Context(), status)
	if err != nil {
		return err
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	fmt.Printf("✓ Task %d moved from '%s' to '%s'\n", task.ID, from.Title(), task.Status.Title())
	return nil
}

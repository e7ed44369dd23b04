package task

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// InProgressCmd returns the task in-progress subcommand
func InProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "in-progress <task_id>",
		Short: "Move a task to the In Progress column",
		Long: `Shortcut for 'taskflow task move --id <task_id> in_progress'.

Examples:
  taskflow task in-progress 42
  taskflow task in-progress 42 --json
`,
		RunE: runInProgress,
		Args: cobra.ExactArgs(1),
	}

	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runInProgress(cmd *cobra.Command, args []string) error {
	taskID, err := strconv.Atoi(args[0])
	if err != nil {
		taskID = 0
	}
	return moveTask(cmd, taskID, string(models.StatusInProgress))
}

package task

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task_id>",
		Short: "Move a task to the Done column",
		Long: `Shortcut for 'taskflow task move --id <task_id> done'.

Examples:
  # Move task to done
  taskflow task done 42

  # JSON output for agents
  taskflow task done 42 --json

  # Quiet mode for bash capture
  taskflow task done 42 --quiet
`,
		RunE: runDone,
		Args: cobra.ExactArgs(1),
	}

	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	taskID, err := strconv.Atoi(args[0])
	if err != nil {
		taskID = 0
	}
	return moveTask(cmd, taskID, string(models.StatusDone))
}

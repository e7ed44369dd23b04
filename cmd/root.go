package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli/auth"
	"github.com/thenoetrevino/taskflow/internal/cli/comment"
	"github.com/thenoetrevino/taskflow/internal/cli/dashboard"
	"github.com/thenoetrevino/taskflow/internal/cli/project"
	"github.com/thenoetrevino/taskflow/internal/cli/task"
	"github.com/thenoetrevino/taskflow/internal/cli/tutorial"
	"github.com/thenoetrevino/taskflow/internal/cli/use"
	"github.com/thenoetrevino/taskflow/internal/launcher"
	"github.com/thenoetrevino/taskflow/internal/logging"
)

// logFile is closed once the command has run
var logFile io.Closer

var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "TaskFlow - A terminal client for the TaskFlow kanban API",
	Long: `TaskFlow is a terminal client for a TaskFlow kanban backend.

Run without arguments to open the interactive board, or use the subcommands
to script projects, tasks and comments.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closer, err := logging.Init()
		if err != nil {
			// logging is not worth failing a command over
			fmt.Fprintf(os.Stderr, "warning: failed to initialize logging: %v\n", err)
			return nil
		}
		logFile = closer
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logFile != nil {
			return logFile.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(auth.AuthCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(comment.CommentCmd())
	rootCmd.AddCommand(dashboard.DashboardCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

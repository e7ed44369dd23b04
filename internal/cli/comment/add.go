package comment

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// AddCmd returns the comment add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [message]",
		Short: "Add a comment to a task",
		Long: `Add a comment to a task. The message can be given as a positional
argument or with --message. Comments are limited to 1000 characters.

Examples:
  taskflow comment add --task=7 "Deployed to staging"
  taskflow comment add --task=7 --message="LGTM" --quiet`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().Int("task", 0, "Task ID (required)")
	if err := cmd.MarkFlagRequired("task"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("message", "", "Comment text")
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	taskID, _ := cmd.Flags().GetInt("task")
	message, _ := cmd.Flags().GetString("message")
	if len(args) > 0 {
		message = args[0]
	}
	if strings.TrimSpace(message) == "" {
		return formatter.Fail(cli.ExitUsage, "NO_MESSAGE", "comment message is required",
			"Pass the message as an argument or with --message")
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

	comment, err := cliInstance.App.Comments.Create(ctx, projectID, taskID, models.CommentCreate{Content: message})
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(comment)
	}

	fmt.Printf("✓ Comment added to task %d (ID: %d)\n", taskID, comment.ID)
	return nil
}

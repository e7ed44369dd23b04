package comment

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/tui/components"
)

// ListCmd returns the comment list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a task's comments, oldest first",
		RunE:  runList,
	}

	cmd.Flags().Int("task", 0, "Task ID (required)")
	if err := cmd.MarkFlagRequired("task"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	taskID, _ := cmd.Flags().GetInt("task")

	projectID, err := cli.RequireProject(cmd, formatter)
	if err != nil {
		return err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	comments, err := cliInstance.App.Comments.List(ctx, projectID, taskID)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.Quiet {
		for _, c := range comments {
			fmt.Printf("%d\n", c.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(comments)
	}

	if len(comments) == 0 {
		fmt.Println("No comments yet")
		return nil
	}

	now := time.Now()
	for _, c := range comments {
		fmt.Println(components.RenderCommentHeader(fmt.Sprintf("user %d", c.AuthorID), c.CreatedAt, now))
		fmt.Println(components.WrapComment(c.Content, 80))
		fmt.Println()
	}
	return nil
}

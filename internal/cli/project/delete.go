package project

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a project",
		Long:  "Delete a project and all of its tasks (owner only; requires confirmation unless --force or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")

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

	projectID, err := cli.ParseID(cmd, args, "id")
	if err != nil || projectID <= 0 {
		return formatter.Fail(cli.ExitUsage, "INVALID_PROJECT_ID",
			"project ID must be a positive integer", "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	// Get project details for confirmation
	project, err := cliInstance.App.Projects.Get(ctx, projectID)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !formatter.Quiet {
		fmt.Printf("Delete project #%d: '%s'? (y/N): ", projectID, project.Name)
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

	if err := cliInstance.App.Projects.Delete(ctx, projectID); err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	// Output success
	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]int{"project_id": projectID})
	}

	fmt.Printf("✓ Project %d deleted successfully\n", projectID)
	return nil
}

package project

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// AddMemberCmd returns the project add-member subcommand
func AddMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-member [id]",
		Short: "Add a user to a project",
		Long: `Add an existing user to a project. The role defaults to member.

Examples:
  taskflow project add-member 3 --user=7
  taskflow project add-member --id=3 --user=7 --role=admin`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAddMember,
	}

	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	cmd.Flags().Int("user", 0, "User ID to add (required)")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("role", "", "Role: owner, admin, member (default member)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAddMember(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	projectID, err := cli.ParseID(cmd, args, "id")
	if err != nil || projectID <= 0 {
		return formatter.Fail(cli.ExitUsage, "INVALID_PROJECT_ID",
			"project ID must be a positive integer", "")
	}

	userID, _ := cmd.Flags().GetInt("user")
	req := models.MemberAdd{UserID: userID}

	if roleStr, _ := cmd.Flags().GetString("role"); roleStr != "" {
		role, err := models.ParseRole(roleStr)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_ROLE", err.Error(),
				"Valid roles: owner, admin, member")
		}
		req.Role = &role
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	member, err := cliInstance.App.Projects.AddMember(ctx, projectID, req)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.JSON {
		return formatter.Success(member)
	}
	if formatter.Quiet {
		fmt.Printf("%d\n", member.ID)
		return nil
	}

	fmt.Printf("✓ User %d added to project %d as %s\n", member.UserID, member.ProjectID, member.Role)
	return nil
}

package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Rename a project or change its description",
		Long: `Update a project's name and/or description. Only owners and admins may
update a project. Flags that are not given are left unchanged.

Examples:
  taskflow project update 3 --name="Website v2"
  taskflow project update --id=3 --description=""`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("description", "", "New project description")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	projectID, err := cli.ParseID(cmd, args, "id")
	if err != nil || projectID <= 0 {
		return formatter.Fail(cli.ExitUsage, "INVALID_PROJECT_ID",
			"project ID must be a positive integer", "")
	}

	var req models.ProjectUpdate
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if req.Name == nil && req.Description == nil {
		return formatter.Fail(cli.ExitUsage, "NO_UPDATES",
			"nothing to update", "Pass --name and/or --description")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	project, err := cliInstance.App.Projects.Update(ctx, projectID, req)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(project)
	}

	fmt.Printf("✓ Project %d updated\n", project.ID)
	return nil
}

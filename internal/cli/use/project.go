package use

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
)

// ProjectCmd returns the use project subcommand
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [project-id]",
		Short: "Set project context for current shell session",
		Long: `Set the current project context using environment variables.
This command outputs shell commands that should be evaluated:

  eval $(taskflow use project 3)              # Use project 3
  eval $(taskflow use project --clear)        # Clear project context
  taskflow use project --show                 # Show current project

The TASKFLOW_PROJECT environment variable will be set in your current shell
session only. The --project flag on other commands takes precedence over
this environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseProject,
	}

	cmd.Flags().Bool("clear", false, "Clear the current project context")
	cmd.Flags().Bool("show", false, "Show the current project context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseProject(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := &cli.OutputFormatter{}

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Handle --show flag
	if showFlag {
		return showCurrentProject(cmd)
	}

	// Handle --clear flag
	if clearFlag {
		if dryRun {
			fmt.Fprintf(os.Stderr, "Would clear %s\n", cli.EnvProject)
			return nil
		}
		fmt.Printf("unset %s\n", cli.EnvProject)
		fmt.Fprintf(os.Stderr, "Cleared project context\n")
		return nil
	}

	// Validate project ID provided
	if len(args) == 0 {
		return formatter.Fail(cli.ExitUsage, "NO_PROJECT", "project ID required",
			"Usage: eval $(taskflow use project <project-id>)")
	}

	projectID, err := strconv.Atoi(args[0])
	if err != nil || projectID <= 0 {
		return formatter.Fail(cli.ExitUsage, "INVALID_PROJECT_ID",
			fmt.Sprintf("invalid project ID: %s", args[0]), "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	// Validate project exists and is visible
	project, err := cliInstance.App.Projects.Get(ctx, projectID)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	// Output shell export command (to stdout for eval)
	if dryRun {
		fmt.Fprintf(os.Stderr, "Would set %s=%d (%s)\n", cli.EnvProject, projectID, project.Name)
		return nil
	}

	fmt.Printf("export %s=%d\n", cli.EnvProject, projectID)
	fmt.Fprintf(os.Stderr, "Now using project %d: %s\n", projectID, project.Name)

	return nil
}

func showCurrentProject(cmd *cobra.Command) error {
	currentProject := os.Getenv(cli.EnvProject)
	if currentProject == "" {
		fmt.Println("No project context set")
		fmt.Println("Use 'eval $(taskflow use project <project-id>)' to set one")
		return nil
	}

	projectID, err := strconv.Atoi(currentProject)
	if err != nil {
		fmt.Printf("Invalid project context: %s\n", currentProject)
		return nil
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return (&cli.OutputFormatter{}).Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	project, err := cliInstance.App.Projects.Get(cmd.Context(), projectID)
	if err != nil {
		fmt.Printf("Current project: %s (project not found)\n", currentProject)
		return nil
	}

	fmt.Printf("Current project: %d (%s)\n", projectID, project.Name)
	return nil
}

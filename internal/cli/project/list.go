package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects you are a member of",
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	projects, err := cliInstance.App.Projects.List(ctx)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.Quiet {
		for _, p := range projects {
			fmt.Printf("%d\n", p.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(projects)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Printf("Found %d project(s):\n\n", len(projects))
	for _, p := range projects {
		fmt.Printf("  [%d] %s\n", p.ID, styles.TitleStyle.Render(p.Name))
		if p.Description != "" {
			fmt.Printf("      %s\n", styles.SubtitleStyle.Render(p.Description))
		}
	}
	return nil
}

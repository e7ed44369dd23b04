package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Output the CLI workflow as markdown",
		Long: `Output essential taskflow workflow context in markdown.

Plain markdown is printed by default so agents and hooks can consume it.
Pass --render to format it for the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			render, _ := cmd.Flags().GetBool("render")
			return outputTutorialContext(render)
		},
	}
	cmd.Flags().Bool("render", false, "Render the markdown for the terminal")
	return cmd
}

func outputTutorialContext(render bool) error {
	if !render {
		fmt.Print(tutorialContent)
		return nil
	}

	out, err := glamour.Render(tutorialContent, "dark")
	if err != nil {
		return fmt.Errorf("failed to render tutorial: %w", err)
	}
	fmt.Print(out)
	return nil
}

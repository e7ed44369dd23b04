package auth

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
)

// WhoamiCmd returns the auth whoami subcommand
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE:  runWhoami,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	user, err := cliInstance.App.Auth.Me(ctx)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(user)
	}

	fmt.Printf("%s %s\n", styles.LabelStyle.Render("Name:"), styles.ValueStyle.Render(user.Name))
	fmt.Printf("%s %s\n", styles.LabelStyle.Render("Email:"), styles.ValueStyle.Render(user.Email))
	fmt.Printf("%s %d\n", styles.LabelStyle.Render("ID:"), user.ID)
	return nil
}

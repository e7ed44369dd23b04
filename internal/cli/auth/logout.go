package auth

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
)

// LogoutCmd returns the auth logout subcommand
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored credential",
		RunE:  runLogout,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	if err := cliInstance.App.Auth.Logout(ctx); err != nil {
		return formatter.Fail(cli.ExitError, "SESSION_ERROR", err.Error(), "")
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]bool{"logged_out": true})
	}

	fmt.Println("✓ Logged out")
	return nil
}

package auth

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// LoginCmd returns the auth login subcommand
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the credential",
		Long: `Sign in with email and password. The access token is stored under
~/.taskflow and used by every other command until logout.

Examples:
  taskflow auth login --email=ada@example.com --password=secret
  taskflow auth login --email=ada@example.com --password=secret --quiet`,
		RunE: runLogin,
	}

	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().String("password", "", "Account password (required)")
	for _, name := range []string{"email", "password"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	resp, err := cliInstance.App.Auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(&resp.User)
	}

	fmt.Printf("✓ Logged in as %s <%s>\n", resp.User.Name, resp.User.Email)
	return nil
}

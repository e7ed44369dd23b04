package auth

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// RegisterCmd returns the auth register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Long: `Create a new TaskFlow account. On success the new account is signed in
and the credential is stored for later commands.

Examples:
  taskflow auth register --email=ada@example.com --name="Ada" --password=secret
  taskflow auth register --email=ada@example.com --name="Ada" --password=secret --json`,
		RunE: runRegister,
	}

	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().String("name", "", "Display name (required)")
	cmd.Flags().String("password", "", "Account password (required)")
	for _, name := range []string{"email", "name", "password"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	password, _ := cmd.Flags().GetString("password")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	resp, err := cliInstance.App.Auth.SignUp(ctx, models.RegisterRequest{
		Email:    email,
		Name:     name,
		Password: password,
	})
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(&resp.User)
	}

	fmt.Printf("✓ Account created for %s (ID: %d)\n", resp.User.Email, resp.User.ID)
	return nil
}

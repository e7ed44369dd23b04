package auth

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
)

// StatusReport describes backend reachability and the stored session
type StatusReport struct {
	APIURL    string     `json:"api_url"`
	Reachable bool       `json:"reachable"`
	Message   string     `json:"message,omitempty"`
	LoggedIn  bool       `json:"logged_in"`
	Subject   string     `json:"subject,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Expired   bool       `json:"expired"`
}

// StatusCmd returns the auth status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check the backend and the stored credential",
		Long: `Report whether the TaskFlow API answers its health check and whether a
credential is stored. The credential's expiry is read locally; nothing is
refreshed.

Examples:
  taskflow auth status
  taskflow auth status --json`,
		RunE: runStatus,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	application := cliInstance.App
	report := StatusReport{APIURL: application.Client.BaseURL()}

	health, err := application.Auth.Health(ctx)
	if err != nil {
		slog.Warn("health check failed", "error", err)
		report.Message = err.Error()
	} else {
		report.Reachable = true
		report.Message = health.Message
	}

	report.LoggedIn = application.Session.LoggedIn(ctx)
	if report.LoggedIn {
		claims, err := application.Session.Claims(ctx)
		if err != nil {
			slog.Warn("stored credential is not a readable JWT", "error", err)
		} else {
			report.Subject = claims.Subject
			if claims.ExpiresAt != nil {
				expires := claims.ExpiresAt.Time
				report.ExpiresAt = &expires
				report.Expired = time.Now().After(expires)
			}
		}
	}

	if formatter.JSON {
		return formatter.Success(report)
	}

	printStatus(report)
	return nil
}

func printStatus(report StatusReport) {
	api := styles.ErrorStyle.Render("unreachable")
	if report.Reachable {
		api = styles.SuccessStyle.Render("ok")
	}
	fmt.Printf("%s %s %s\n", styles.LabelStyle.Render("API:"), report.APIURL, api)
	if report.Message != "" {
		fmt.Printf("  %s\n", styles.SubtitleStyle.Render(report.Message))
	}

	if !report.LoggedIn {
		fmt.Printf("%s not logged in\n", styles.LabelStyle.Render("Session:"))
		return
	}

	line := "logged in"
	if report.Subject != "" {
		line += " as user " + report.Subject
	}
	if report.ExpiresAt != nil {
		if report.Expired {
			line += ", expired " + humanize.Time(*report.ExpiresAt)
		} else {
			line += ", expires " + humanize.Time(*report.ExpiresAt)
		}
	}
	fmt.Printf("%s %s\n", styles.LabelStyle.Render("Session:"), line)
}

package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/api"
)

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// NewFormatter builds an OutputFormatter from the --json and --quiet flags
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// CloseQuietly closes c and logs any error
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("error closing CLI", "error", err)
	}
}

// ParseID reads a resource ID from the first positional argument, falling
// back to the named flag. Zero means neither was given.
func ParseID(cmd *cobra.Command, args []string, flag string) (int, error) {
	if len(args) > 0 {
		id, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: must be a positive integer", flag, args[0])
		}
		return id, nil
	}
	id, _ := cmd.Flags().GetInt(flag)
	return id, nil
}

// HandleAPIError prints err according to its kind and returns the matching
// *ExitCodeError.
func HandleAPIError(formatter *OutputFormatter, err error) error {
	kind := api.Classify(err)
	slog.Error("command failed", "kind", kind.String(), "error", err)

	switch kind {
	case api.KindValidation:
		return formatter.Fail(ExitValidation, "VALIDATION_ERROR", err.Error(), "")
	case api.KindAuthorization:
		if api.StatusOf(err) == http.StatusUnauthorized {
			return formatter.Fail(ExitAuthorization, "UNAUTHORIZED", err.Error(),
				"Run 'taskflow auth login' to sign in")
		}
		return formatter.Fail(ExitAuthorization, "FORBIDDEN", err.Error(),
			"Ask a project owner or admin for access")
	case api.KindNotFound:
		return formatter.Fail(ExitNotFound, "NOT_FOUND", err.Error(), "")
	case api.KindNetwork:
		return formatter.Fail(ExitError, "NETWORK_ERROR", err.Error(),
			"Check that the TaskFlow API is running (api_url in config or TASKFLOW_API_URL)")
	}
	return formatter.Fail(ExitError, "API_ERROR", err.Error(), "")
}

// EnvProject names the shell variable set by `taskflow use project`
const EnvProject = "TASKFLOW_PROJECT"

// GetProjectID reads the project from --project, falling back to $TASKFLOW_PROJECT
func GetProjectID(cmd *cobra.Command) (int, error) {
	if cmd.Flags().Changed("project") {
		projectID, _ := cmd.Flags().GetInt("project")
		if projectID <= 0 {
			return 0, fmt.Errorf("invalid project ID %d: must be a positive integer", projectID)
		}
		return projectID, nil
	}

	env := strings.TrimSpace(os.Getenv(EnvProject))
	if env == "" {
		return 0, fmt.Errorf("no project specified: use --project or set %s", EnvProject)
	}
	projectID, err := strconv.Atoi(env)
	if err != nil || projectID <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be a positive integer", EnvProject, env)
	}
	return projectID, nil
}

// AddProjectFlag registers --project on cmd
func AddProjectFlag(cmd *cobra.Command) {
	cmd.Flags().Int("project", 0, "Project ID (uses "+EnvProject+" env var if not specified)")
}

// RequireProject resolves the project or prints a usage error
func RequireProject(cmd *cobra.Command, formatter *OutputFormatter) (int, error) {
	projectID, err := GetProjectID(cmd)
	if err != nil {
		return 0, formatter.Fail(ExitUsage, "NO_PROJECT", err.Error(),
			"Set project with: eval $(taskflow use project <project-id>)")
	}
	return projectID, nil
}

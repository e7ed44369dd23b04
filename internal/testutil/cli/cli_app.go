package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/testutil"
)

// SetupCLITest starts a seeded fake backend and returns it together with an
// App signed in as the demo user.
func SetupCLITest(t *testing.T) (*testutil.Backend, *app.App, models.User) {
	t.Helper()

	backend := testutil.NewBackend(t)
	application, user := backend.SeededApp(t)
	return backend, application, user
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app travels on the command context so GetCLIFromContext reuses it.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	ctxWithApp := app.NewContext(ctx, testApp)
	testutil.SetupCobraCommand(cmd, args)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}

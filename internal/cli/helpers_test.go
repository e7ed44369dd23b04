package cli

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/api"
	"github.com/thenoetrevino/taskflow/internal/testutil"
)

func TestParseID(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "x"}
		cmd.Flags().Int("id", 0, "")
		return cmd
	}

	tests := []struct {
		name    string
		args    []string
		flag    string
		want    int
		wantErr bool
	}{
		{name: "positional", args: []string{"12"}, want: 12},
		{name: "flag", flag: "5", want: 5},
		{name: "positional wins", args: []string{"3"}, flag: "5", want: 3},
		{name: "neither", want: 0},
		{name: "not a number", args: []string{"abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newCmd()
			if tt.flag != "" {
				require.NoError(t, cmd.Flags().Set("id", tt.flag))
			}
			got, err := ParseID(cmd, tt.args, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		exitCode int
		code     string
	}{
		{"validation", &api.ValidationError{Fields: []api.FieldError{{Field: "title", Rule: "required"}}}, ExitValidation, "VALIDATION_ERROR"},
		{"unauthorized", &api.Error{Status: http.StatusUnauthorized, Message: "Not authenticated"}, ExitAuthorization, "UNAUTHORIZED"},
		{"forbidden", &api.Error{Status: http.StatusForbidden, Message: "Not a member"}, ExitAuthorization, "FORBIDDEN"},
		{"not found", fmt.Errorf("wrapped: %w", &api.Error{Status: http.StatusNotFound, Message: "Task not found"}), ExitNotFound, "NOT_FOUND"},
		{"network", &api.NetworkError{Method: "GET", URL: "http://x", Err: errors.New("refused")}, ExitError, "NETWORK_ERROR"},
		{"server", &api.Error{Status: http.StatusInternalServerError, Message: "API error: 500"}, ExitError, "API_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true}
			var err error
			output := testutil.CaptureOutput(t, func() {
				err = HandleAPIError(formatter, tt.err)
			})

			assert.Equal(t, tt.exitCode, ExitCodeFor(err))
			errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
			assert.Equal(t, tt.code, errData["code"])
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCodeFor(nil))
	assert.Equal(t, ExitUsage, ExitCodeFor(errors.New("unknown flag: --nope")))
	assert.Equal(t, ExitNotFound, ExitCodeFor(fmt.Errorf("x: %w", &ExitCodeError{Code: ExitNotFound})))
}

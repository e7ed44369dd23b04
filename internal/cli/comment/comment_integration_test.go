package comment

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/testutil"
	clitest "github.com/thenoetrevino/taskflow/internal/testutil/cli"
)

func TestAddAndList(t *testing.T) {
	_, application, user := clitest.SetupCLITest(t)
	project := testutil.FirstProject(t, application)
	task := testutil.TaskByTitle(t, application, project.ID, "Build landing page")

	projectFlag := "--project=" + strconv.Itoa(project.ID)
	taskFlag := "--task=" + strconv.Itoa(task.ID)

	_, err := clitest.ExecuteCLICommand(t, application, AddCmd(), []string{projectFlag, taskFlag, "first", "--quiet"})
	require.NoError(t, err)
	output, err := clitest.ExecuteCLICommand(t, application, AddCmd(), []string{projectFlag, taskFlag, "--message=second", "--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.EqualValues(t, user.ID, data["author_id"])
	assert.EqualValues(t, task.ID, data["task_id"])

	output, err = clitest.ExecuteCLICommand(t, application, ListCmd(), []string{projectFlag, taskFlag, "--json"})
	require.NoError(t, err)
	comments := testutil.ParseJSON(t, output)["data"].([]any)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].(map[string]any)["content"])
	assert.Equal(t, "second", comments[1].(map[string]any)["content"])

	output, err = clitest.ExecuteCLICommand(t, application, ListCmd(), []string{projectFlag, taskFlag})
	require.NoError(t, err)
	assert.Contains(t, output, "user "+strconv.Itoa(user.ID))
}

func TestAdd_Errors(t *testing.T) {
	_, application, _ := clitest.SetupCLITest(t)
	project := testutil.FirstProject(t, application)
	task := testutil.TaskByTitle(t, application, project.ID, "Build landing page")

	projectFlag := "--project=" + strconv.Itoa(project.ID)
	taskFlag := "--task=" + strconv.Itoa(task.ID)

	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"no message", []string{projectFlag, taskFlag, "--json"}, cli.ExitUsage},
		{"too long", []string{projectFlag, taskFlag, strings.Repeat("x", 1001), "--json"}, cli.ExitValidation},
		{"unknown task", []string{projectFlag, "--task=9999", "hi", "--json"}, cli.ExitNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, application, AddCmd(), tt.args)
			assert.Equal(t, tt.exitCode, cli.ExitCodeFor(err))
		})
	}
}

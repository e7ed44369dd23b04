package tutorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/testutil"
)

func TestTutorial(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"plain", []string{}},
		{"rendered", []string{"--render"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := TutorialCmd()
			testutil.SetupCobraCommand(cmd, tt.args)
			output, err := testutil.ExecuteCommand(t, cmd)
			require.NoError(t, err)
			assert.Contains(t, output, "TaskFlow")
		})
	}
}

func TestTutorial_PlainIsRawMarkdown(t *testing.T) {
	cmd := TutorialCmd()
	testutil.SetupCobraCommand(cmd, nil)
	output, err := testutil.ExecuteCommand(t, cmd)
	require.NoError(t, err)
	assert.Equal(t, tutorialContent, output)
}

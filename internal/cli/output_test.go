package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/testutil"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, data any)
	}{
		{
			name: "map data",
			data: map[string]any{"test": "value"},
			validate: func(t *testing.T, data any) {
				assert.Equal(t, "value", data.(map[string]any)["test"])
			},
		},
		{
			name: "task",
			data: &models.Task{ID: 7, Title: "Ship", Status: models.StatusDone},
			validate: func(t *testing.T, data any) {
				task := data.(map[string]any)
				assert.EqualValues(t, 7, task["id"])
				assert.Equal(t, "done", task["status"])
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, data any) {
				assert.Nil(t, data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true}
			output := testutil.CaptureOutput(t, func() {
				require.NoError(t, formatter.Success(tt.data))
			})

			result := testutil.ParseJSON(t, output)
			assert.Equal(t, true, result["success"])
			tt.validate(t, result["data"])
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected string
	}{
		{"value with ID", mockDataWithID{ID: 42, Name: "x"}, "42\n"},
		{"pointer model", &models.Project{ID: 3}, "3\n"},
		{"without ID falls through to human output", mockDataWithoutID{Name: "n", Value: 1}, "{Name:n Value:1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{Quiet: true}
			output := testutil.CaptureOutput(t, func() {
				require.NoError(t, formatter.Success(tt.data))
			})
			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestOutputFormatter_QuietWinsOverJSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true, Quiet: true}
	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Success(mockDataWithID{ID: 9}))
	})
	assert.Equal(t, "9\n", output)
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	tests := []struct {
		name       string
		suggestion string
	}{
		{"with suggestion", "try again"},
		{"without suggestion", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true}
			output := testutil.CaptureOutput(t, func() {
				require.NoError(t, formatter.ErrorWithSuggestion("NOT_FOUND", "task 1 not found", tt.suggestion))
			})

			result := testutil.ParseJSON(t, output)
			assert.Equal(t, false, result["success"])
			errData := result["error"].(map[string]any)
			assert.Equal(t, "NOT_FOUND", errData["code"])
			assert.Equal(t, "task 1 not found", errData["message"])
			if tt.suggestion == "" {
				assert.NotContains(t, errData, "suggestion")
			} else {
				assert.Equal(t, tt.suggestion, errData["suggestion"])
			}
		})
	}
}

func TestOutputFormatter_ErrorWithSuggestion_HumanReadable(t *testing.T) {
	formatter := &OutputFormatter{}
	var stdout string
	stderr := testutil.CaptureStderr(t, func() {
		stdout = testutil.CaptureOutput(t, func() {
			require.NoError(t, formatter.ErrorWithSuggestion("X", "boom", "rerun"))
		})
	})

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "❌ Error: boom")
	assert.Contains(t, stderr, "💡 Suggestion: rerun")
}

func TestOutputFormatter_Fail(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	var err error
	output := testutil.CaptureOutput(t, func() {
		err = formatter.Fail(ExitValidation, "INVALID_STATUS", "bad status", "")
	})

	var exitErr *ExitCodeError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitValidation, exitErr.Code)
	assert.Equal(t, "bad status", err.Error())
	assert.Equal(t, "INVALID_STATUS", testutil.ParseJSON(t, output)["error"].(map[string]any)["code"])
}

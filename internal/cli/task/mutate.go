package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/optimistic"
)

// taskTarget is the task a mutation command operates on, loaded into a
// single-item optimistic controller so the CLI shares the board's semantics.
type taskTarget struct {
	cli       *cli.CLI
	formatter *cli.OutputFormatter
	tasks     *optimistic.Tasks
	before    models.Task
}

// loadTarget resolves the project and task and builds the controller. The
// caller must Close the returned target.
func loadTarget(cmd *cobra.Command, formatter *cli.OutputFormatter, taskID int) (*taskTarget, error) {
	ctx := cmd.Context()

	projectID, err := cli.RequireProject(cmd, formatter)
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}

	task, err := cliInstance.App.Tasks.Get(ctx, projectID, taskID)
	if err != nil {
		cli.CloseQuietly(cliInstance)
		return nil, cli.HandleAPIError(formatter, err)
	}

	tasks := optimistic.NewTasks([]models.Task{*task}, cliInstance.App.Tasks, optimistic.Config[models.Task]{
		Reconcile: optimistic.ReconcileTask,
	})

	return &taskTarget{cli: cliInstance, formatter: formatter, tasks: tasks, before: *task}, nil
}

func (t *taskTarget) Close() {
	t.tasks.Unmount()
	cli.CloseQuietly(t.cli)
}

// settle converts a mutation outcome into command output
func (t *taskTarget) settle(outcome optimistic.TaskOutcome, err error, noOpCode, noOpMessage string) (*models.Task, error) {
	if err != nil {
		if errors.Is(err, optimistic.ErrNotFound) {
			return nil, t.formatter.Fail(cli.ExitNotFound, "NOT_FOUND",
				fmt.Sprintf("task %d not found", t.before.ID), "")
		}
		return nil, t.formatter.Fail(cli.ExitError, "MUTATION_ERROR", err.Error(), "")
	}

	switch outcome.Result {
	case optimistic.NoOp:
		return nil, t.formatter.Fail(cli.ExitValidation, noOpCode, noOpMessage, "")
	case optimistic.ResultRolledBack:
		return nil, cli.HandleAPIError(t.formatter, outcome.Err)
	}

	task := outcome.Item
	return &task, nil
}

func (t *taskTarget) move(ctx context.Context, status models.Status) (*models.Task, error) {
	outcome, err := t.tasks.MoveStatus(ctx, t.before.ID, status)
	return t.settle(outcome, err, "ALREADY_IN_STATUS",
		fmt.Sprintf("task %d is already in '%s'", t.before.ID, status.Title()))
}

func (t *taskTarget) edit(ctx context.Context, update models.TaskUpdate) (*models.Task, error) {
	outcome, err := t.tasks.EditFields(ctx, t.before.ID, update)
	return t.settle(outcome, err, "NO_CHANGES",
		fmt.Sprintf("task %d already has these values", t.before.ID))
}

package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// priorityOptions lists every priority, lowest first
func priorityOptions() []huh.Option[models.Priority] {
	options := make([]huh.Option[models.Priority], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		options = append(options, huh.NewOption(string(p), p))
	}
	return options
}

// CreateTaskForm creates a huh form for adding a new task to the board
// The form uses pointers to update values in place
func CreateTaskForm(
	title *string,
	description *string,
	priority *models.Priority,
	confirm *bool,
	descriptionLines int,
) *huh.Form {
	var fields []huh.Field

	// Title input field
	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			Validate(huh.ValidateNotEmpty()).
			Value(title),
	)

	// Description text area field with dynamic height
	fields = append(fields,
		huh.NewText().
			Key("description").
			Title("Description (markdown)").
			Placeholder("Enter task description...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(description),
	)

	fields = append(fields,
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorityOptions()...).
			Value(priority),
	)

	// Confirmation
	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Create this task?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

// EditTaskForm creates a huh form for editing an existing task.
// An emptied title is saved as "Untitled", so it is not validated here.
func EditTaskForm(
	title *string,
	description *string,
	priority *models.Priority,
	descriptionLines int,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description (markdown)").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(description),

		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorityOptions()...).
			Value(priority),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

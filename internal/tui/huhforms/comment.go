package huhforms

import "charm.land/huh/v2"

// CreateCommentForm creates a huh form for adding a comment to a task.
// No confirmation field is used - the form saves on completion.
func CreateCommentForm(message *string) *huh.Form {
	fields := []huh.Field{
		huh.NewText().
			Key("message").
			Title("New Comment").
			Placeholder("Enter comment text...").
			Value(message).
			CharLimit(1000),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter())
}

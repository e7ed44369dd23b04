package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
)

func validateEmail(s string) error {
	if !strings.Contains(s, "@") {
		return errors.New("enter a valid email")
	}
	return nil
}

// CreateLoginForm creates the sign-in form
func CreateLoginForm(email, password *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Validate(validateEmail).
			Value(email),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(huh.ValidateNotEmpty()).
			Value(password),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// CreateRegisterForm creates the sign-up form. A successful sign-up also signs in.
func CreateRegisterForm(email, name, password *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Validate(validateEmail).
			Value(email),

		huh.NewInput().
			Key("name").
			Title("Name").
			CharLimit(100).
			Validate(huh.ValidateNotEmpty()).
			Value(name),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(huh.ValidateNotEmpty()).
			Value(password),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

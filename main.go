package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/taskflow/cmd"
	"github.com/thenoetrevino/taskflow/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())

	// command errors were already printed by the output formatter
	var exitErr *cli.ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCodeFor(err))
}

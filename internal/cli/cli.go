package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with API facades
	owned bool
}

// NewCLI loads the user config and builds an App with the durable session store
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext reuses an App placed on ctx with app.NewContext (tests,
// the root command) and otherwise falls back to NewCLI.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if application, ok := app.FromContext(ctx); ok {
		return &CLI{App: application}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources. An App borrowed from the context is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

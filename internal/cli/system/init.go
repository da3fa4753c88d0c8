package system

import (
	"fmt"
	"os"

	"daytrack/internal/cli"
	"daytrack/internal/storage"
)

type InitCmd struct {
	Force bool `short:"f" help:"Reinitialize even if storage already exists. Destroys existing data."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()

	if c.Force && storage.KindForPath(path) != storage.KindPostgres {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	fmt.Printf("Initialized storage at %s\n", path)
	return nil
}

package reports

import (
	"errors"
	"fmt"

	"daytrack/internal/cli"
	"daytrack/internal/storage"
	"daytrack/internal/utils"
)

type DeleteCmd struct {
	Date string `arg:"" help:"Report date (YYYY-MM-DD) to delete."`
}

func (c *DeleteCmd) Validate() error {
	return utils.ValidateDateFormat(c.Date)
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	err := ctx.Store.DeleteReport(c.Date)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no report for %s", c.Date)
	}
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	fmt.Printf("Deleted report for %s. Restore with 'daytrack report restore %s'.\n", c.Date, c.Date)
	return nil
}

type RestoreCmd struct {
	Date string `arg:"" help:"Report date (YYYY-MM-DD) to restore."`
}

func (c *RestoreCmd) Validate() error {
	return utils.ValidateDateFormat(c.Date)
}

func (c *RestoreCmd) Run(ctx *cli.Context) error {
	err := ctx.Store.RestoreReport(c.Date)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no deleted report for %s", c.Date)
	}
	if err != nil {
		return fmt.Errorf("failed to restore report: %w", err)
	}

	fmt.Printf("Restored report for %s\n", c.Date)
	return nil
}

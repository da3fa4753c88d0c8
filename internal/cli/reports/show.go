package reports

import (
	"errors"
	"fmt"

	"daytrack/internal/cli"
	"daytrack/internal/storage"
	"daytrack/internal/utils"
)

type ShowCmd struct {
	Date string `arg:"" optional:"" help:"Report date (YYYY-MM-DD). Defaults to today."`
}

func (c *ShowCmd) Validate() error {
	if c.Date != "" {
		return utils.ValidateDateFormat(c.Date)
	}
	return nil
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today()
	}

	report, err := ctx.Store.GetReport(date)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no report for %s", date)
	}
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}

	fmt.Printf("%s  productivity %s (version %d)\n", report.Date,
		cli.FormatPercent(report.ProductivityPercent), report.Version)
	for _, task := range report.Tasks {
		line := fmt.Sprintf("  %-30s weight %6s  done %6s",
			task.Title, cli.FormatPercent(task.Weight), cli.FormatPercent(task.CompletionPercent))
		if task.Category != "" {
			line += "  [" + task.Category + "]"
		}
		fmt.Println(line)
	}
	if report.Notes != "" {
		fmt.Printf("\nNotes: %s\n", report.Notes)
	}
	return nil
}

package reports

import (
	"fmt"

	"daytrack/internal/cli"
	"daytrack/internal/models"
	"daytrack/internal/score"
	"daytrack/internal/utils"
	"daytrack/internal/validation"
)

type AddCmd struct {
	Tasks     []string `arg:"" name:"task" help:"Tasks as title:weight[:completion[:category]]."`
	Date      string   `short:"d" help:"Report date (YYYY-MM-DD). Defaults to today."`
	Notes     string   `short:"n" help:"Free-form notes for the day."`
	Normalize bool     `help:"Rescale task weights to sum to 100 before saving." default:"true" negatable:""`
}

func (c *AddCmd) Validate() error {
	if c.Date != "" {
		if err := utils.ValidateDateFormat(c.Date); err != nil {
			return err
		}
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today()
	}

	tasks := make([]models.Task, 0, len(c.Tasks))
	for _, spec := range c.Tasks {
		task, err := cli.ParseTaskSpec(spec)
		if err != nil {
			return err
		}
		tasks = append(tasks, task)
	}
	if c.Normalize {
		tasks = score.NormalizeWeights(tasks)
	}

	report := models.DailyReport{
		Date:  date,
		Tasks: tasks,
		Notes: c.Notes,
	}
	if res := validation.ValidateReport(report); !res.Valid() {
		return fmt.Errorf("invalid report:\n%s", res.FormatReport())
	}

	if err := ctx.Store.SaveReport(report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	saved, err := ctx.Store.GetReport(date)
	if err != nil {
		return fmt.Errorf("failed to reload report: %w", err)
	}
	fmt.Printf("Saved report for %s (productivity %s, version %d)\n",
		saved.Date, cli.FormatPercent(saved.ProductivityPercent), saved.Version)
	return nil
}

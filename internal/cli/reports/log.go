package reports

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"daytrack/internal/cli"
	"daytrack/internal/models"
	"daytrack/internal/score"
	"daytrack/internal/storage"
	"daytrack/internal/utils"
	"daytrack/internal/validation"
)

type LogCmd struct {
	Date     string `short:"d" help:"Report date (YYYY-MM-DD). Defaults to today."`
	Template string `short:"t" help:"Template name to prefill tasks from."`
}

func (c *LogCmd) Validate() error {
	if c.Date != "" {
		return utils.ValidateDateFormat(c.Date)
	}
	return nil
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today()
	}

	tasks, err := c.prefillTasks(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		tasks, err = promptTasks()
		if err != nil {
			return err
		}
	}

	completions := make([]string, len(tasks))
	fields := make([]huh.Field, 0, len(tasks)+1)
	for i := range tasks {
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("%s (weight %s)", tasks[i].Title, cli.FormatPercent(tasks[i].Weight))).
			Description("Completion percentage, 0-100").
			Placeholder("0").
			Validate(validatePercent).
			Value(&completions[i]))
	}

	var notes string
	fields = append(fields, huh.NewText().
		Title("Notes").
		Description("Anything worth remembering about the day (optional)").
		Value(&notes))

	if err := huh.NewForm(huh.NewGroup(fields...).Title("Log report for " + date)).Run(); err != nil {
		return err
	}

	for i := range tasks {
		if completions[i] == "" {
			continue
		}
		v, err := strconv.ParseFloat(completions[i], 64)
		if err != nil {
			return fmt.Errorf("invalid completion for %q: %w", tasks[i].Title, err)
		}
		tasks[i].CompletionPercent = v
	}

	tasks = score.NormalizeWeights(tasks)
	report := models.DailyReport{Date: date, Tasks: tasks, Notes: notes}
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
	fmt.Printf("Saved report for %s (productivity %s)\n", saved.Date, cli.FormatPercent(saved.ProductivityPercent))
	return nil
}

// prefillTasks loads tasks from the requested template, or the configured
// default template when none is named.
func (c *LogCmd) prefillTasks(ctx *cli.Context) ([]models.Task, error) {
	var tpl models.Template
	var err error

	switch {
	case c.Template != "":
		tpl, err = ctx.Store.GetTemplateByName(c.Template)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", c.Template, err)
		}
	default:
		settings, serr := ctx.Store.GetSettings()
		if serr != nil || settings.DefaultTemplateID == "" {
			return nil, nil
		}
		tpl, err = ctx.Store.GetTemplate(settings.DefaultTemplateID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
	}

	return tpl.Draft(), nil
}

// promptTasks collects ad-hoc tasks when no template applies.
func promptTasks() ([]models.Task, error) {
	var tasks []models.Task
	for {
		var spec string
		err := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Description("title:weight[:completion[:category]], leave empty to finish").
				Value(&spec),
		)).Run()
		if err != nil {
			return nil, err
		}
		if spec == "" {
			break
		}
		task, err := cli.ParseTaskSpec(spec)
		if err != nil {
			fmt.Println(err)
			continue
		}
		tasks = append(tasks, task)
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no tasks provided")
	}
	return tasks, nil
}

func validatePercent(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("must be between 0 and 100")
	}
	return nil
}

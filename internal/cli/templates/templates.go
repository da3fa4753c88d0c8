package templates

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"daytrack/internal/cli"
	"daytrack/internal/models"
	"daytrack/internal/storage"
	"daytrack/internal/validation"
)

type AddCmd struct {
	Name    string   `arg:"" help:"Template name."`
	Tasks   []string `arg:"" name:"task" help:"Tasks as title:weight[::category]."`
	Default bool     `help:"Mark this template as the default for new reports."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	tasks := make([]models.TemplateTask, 0, len(c.Tasks))
	for _, spec := range c.Tasks {
		task, err := cli.ParseTaskSpec(spec)
		if err != nil {
			return err
		}
		tasks = append(tasks, models.TemplateTask{
			Title:    task.Title,
			Weight:   task.Weight,
			Category: task.Category,
		})
	}

	tpl := models.Template{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Tasks:     tasks,
		IsDefault: c.Default,
	}
	if res := validation.ValidateTemplate(tpl); !res.Valid() {
		return fmt.Errorf("invalid template:\n%s", res.FormatReport())
	}

	if err := ctx.Store.AddTemplate(tpl); err != nil {
		return fmt.Errorf("failed to add template: %w", err)
	}

	fmt.Printf("Added template %q (%d task(s))\n", tpl.Name, len(tpl.Tasks))
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	tpls, err := ctx.Store.GetAllTemplates()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	if len(tpls) == 0 {
		fmt.Println("No templates. Add one with 'daytrack template add'.")
		return nil
	}

	for _, tpl := range tpls {
		marker := " "
		if tpl.IsDefault {
			marker = "*"
		}
		fmt.Printf("%s %-25s %d task(s)\n", marker, tpl.Name, len(tpl.Tasks))
	}
	return nil
}

type ShowCmd struct {
	Name string `arg:"" help:"Template name."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	tpl, err := ctx.Store.GetTemplateByName(c.Name)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no template named %q", c.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	label := tpl.Name
	if tpl.IsDefault {
		label += " (default)"
	}
	fmt.Println(label)
	for _, task := range tpl.Tasks {
		line := fmt.Sprintf("  %-30s weight %6s", task.Title, cli.FormatPercent(task.Weight))
		if task.Category != "" {
			line += "  [" + task.Category + "]"
		}
		fmt.Println(line)
	}
	return nil
}

type DeleteCmd struct {
	Name string `arg:"" help:"Template name."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	tpl, err := ctx.Store.GetTemplateByName(c.Name)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no template named %q", c.Name)
	}
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.DeleteTemplate(tpl.ID); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	fmt.Printf("Deleted template %q\n", c.Name)
	return nil
}

type SetDefaultCmd struct {
	Name string `arg:"" help:"Template name to make the default."`
}

func (c *SetDefaultCmd) Run(ctx *cli.Context) error {
	tpl, err := ctx.Store.GetTemplateByName(c.Name)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no template named %q", c.Name)
	}
	if err != nil {
		return err
	}

	tpl.IsDefault = true
	if err := ctx.Store.UpdateTemplate(tpl); err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err == nil {
		settings.DefaultTemplateID = tpl.ID
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}

	fmt.Printf("Template %q is now the default\n", c.Name)
	return nil
}

package system

import (
	"fmt"

	"daytrack/internal/cli"
	"daytrack/internal/constants"
	"daytrack/internal/utils"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" default:"1" help:"Print the current settings."`
	Set  SettingsSetCmd  `cmd:"" help:"Update one or more settings."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	tz := settings.Timezone
	if tz == "" {
		tz = "(system)"
	}
	threshold := settings.StreakThreshold
	if threshold <= 0 {
		threshold = constants.DefaultStreakTarget
	}
	tpl := settings.DefaultTemplateID
	if tpl == "" {
		tpl = "(none)"
	}

	fmt.Printf("Timezone:         %s\n", tz)
	fmt.Printf("Streak threshold: %s\n", cli.FormatPercent(threshold))
	fmt.Printf("Default template: %s\n", tpl)
	return nil
}

type SettingsSetCmd struct {
	Timezone  *string  `help:"IANA timezone name, e.g. America/New_York. Empty uses the system timezone."`
	Threshold *float64 `help:"Minimum daily productivity that counts toward a streak (0-100)."`
}

func (c *SettingsSetCmd) Validate() error {
	if c.Timezone != nil && *c.Timezone != "" {
		if _, err := utils.LoadLocation(*c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
	}
	if c.Threshold != nil && (*c.Threshold <= 0 || *c.Threshold > 100) {
		return fmt.Errorf("threshold must be between 0 and 100")
	}
	return nil
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	if c.Timezone == nil && c.Threshold == nil {
		return fmt.Errorf("nothing to change")
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
	}
	if c.Threshold != nil {
		settings.StreakThreshold = *c.Threshold
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("Settings updated")
	return nil
}

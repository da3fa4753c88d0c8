package missions

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"daytrack/internal/cli"
	"daytrack/internal/models"
	"daytrack/internal/storage"
	"daytrack/internal/validation"
)

type AddCmd struct {
	Title       string `arg:"" help:"Mission title."`
	Description string `short:"d" help:"Longer description of the mission."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	mission := models.Mission{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		CreatedAt:   time.Now(),
	}
	if res := validation.ValidateMission(mission); !res.Valid() {
		return fmt.Errorf("invalid mission:\n%s", res.FormatReport())
	}

	if err := ctx.Store.AddMission(mission); err != nil {
		return fmt.Errorf("failed to add mission: %w", err)
	}

	fmt.Printf("Added mission %q\n", mission.Title)
	return nil
}

type ListCmd struct {
	All bool `short:"a" help:"Include completed missions."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	missions, err := ctx.Store.GetAllMissions(c.All)
	if err != nil {
		return fmt.Errorf("failed to load missions: %w", err)
	}
	if len(missions) == 0 {
		fmt.Println("No missions. Add one with 'daytrack mission add'.")
		return nil
	}

	for _, m := range missions {
		marker := " "
		if m.Completed {
			marker = "x"
		}
		fmt.Printf("[%s] %-30s %6s  %s\n", marker, m.Title, cli.FormatPercent(m.Progress), m.ID)
	}
	return nil
}

type ProgressCmd struct {
	ID       string  `arg:"" help:"Mission ID."`
	Progress float64 `arg:"" help:"Progress percentage (0-100)."`
}

func (c *ProgressCmd) Run(ctx *cli.Context) error {
	mission, err := ctx.Store.GetMission(c.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no mission with ID %s", c.ID)
	}
	if err != nil {
		return err
	}

	mission.SetProgress(c.Progress)
	if err := ctx.Store.UpdateMission(mission); err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}

	if mission.Completed {
		fmt.Printf("Mission %q completed\n", mission.Title)
	} else {
		fmt.Printf("Mission %q at %s\n", mission.Title, cli.FormatPercent(mission.Progress))
	}
	return nil
}

type CompleteCmd struct {
	ID string `arg:"" help:"Mission ID."`
}

func (c *CompleteCmd) Run(ctx *cli.Context) error {
	mission, err := ctx.Store.GetMission(c.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no mission with ID %s", c.ID)
	}
	if err != nil {
		return err
	}

	mission.SetProgress(100)
	if err := ctx.Store.UpdateMission(mission); err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}

	fmt.Printf("Mission %q completed\n", mission.Title)
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"Mission ID."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	err := ctx.Store.DeleteMission(c.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no mission with ID %s", c.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}

	fmt.Println("Deleted mission")
	return nil
}

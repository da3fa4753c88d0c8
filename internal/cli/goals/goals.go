package goals

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"daytrack/internal/cli"
	"daytrack/internal/constants"
	"daytrack/internal/insights"
	"daytrack/internal/models"
	"daytrack/internal/storage"
	"daytrack/internal/utils"
	"daytrack/internal/validation"
)

type AddCmd struct {
	Title  string  `arg:"" help:"Goal title."`
	Target float64 `short:"t" required:"" help:"Target average productivity percentage (0-100)."`
	Period string  `short:"p" enum:"daily,weekly,monthly" default:"weekly" help:"Goal period."`
	Start  string  `help:"Start date (YYYY-MM-DD). Defaults to today."`
	End    string  `required:"" help:"End date (YYYY-MM-DD), inclusive."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	start := c.Start
	if start == "" {
		start = ctx.Today()
	}

	goal := models.ProductivityGoal{
		ID:               uuid.NewString(),
		Title:            c.Title,
		TargetPercentage: c.Target,
		Period:           constants.GoalPeriod(c.Period),
		StartDate:        start,
		EndDate:          c.End,
	}
	if res := validation.ValidateGoal(goal); !res.Valid() {
		return fmt.Errorf("invalid goal:\n%s", res.FormatReport())
	}

	if err := ctx.Store.AddGoal(goal); err != nil {
		return fmt.Errorf("failed to add goal: %w", err)
	}

	fmt.Printf("Added goal %q: %s average through %s\n", goal.Title,
		cli.FormatPercent(goal.TargetPercentage), goal.EndDate)
	return nil
}

type ListCmd struct {
	All bool `short:"a" help:"Include deleted goals."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	goals, err := ctx.Store.GetAllGoals(c.All)
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	if len(goals) == 0 {
		fmt.Println("No goals. Add one with 'daytrack goal add'.")
		return nil
	}

	reports, err := ctx.Store.GetAllReports()
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}
	today, err := utils.ParseDate(ctx.Today())
	if err != nil {
		today = time.Now()
	}

	for _, goal := range goals {
		progress := insights.GoalProgress(goal, reports, today)
		status := describeStatus(progress)
		fmt.Printf("%-25s %s/%s (%s)  %s to %s  [%s]\n",
			goal.Title,
			cli.FormatPercent(progress.AvgProgress), cli.FormatPercent(goal.TargetPercentage),
			goal.Period, goal.StartDate, goal.EndDate, status)
	}
	return nil
}

func describeStatus(p insights.GoalProgressResult) string {
	switch {
	case p.Achieved && !p.Active:
		return "achieved"
	case p.Achieved:
		return fmt.Sprintf("on track, %d day(s) left", p.DaysLeft)
	case p.Active:
		return fmt.Sprintf("%d day(s) left", p.DaysLeft)
	default:
		return "expired"
	}
}

type UpdateCmd struct {
	ID     string   `arg:"" help:"Goal ID."`
	Title  *string  `help:"New title."`
	Target *float64 `short:"t" help:"New target percentage."`
	End    *string  `help:"New end date (YYYY-MM-DD)."`
}

func (c *UpdateCmd) Run(ctx *cli.Context) error {
	goal, err := ctx.Store.GetGoal(c.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no goal with ID %s", c.ID)
	}
	if err != nil {
		return err
	}

	if c.Title != nil {
		goal.Title = *c.Title
	}
	if c.Target != nil {
		goal.TargetPercentage = *c.Target
	}
	if c.End != nil {
		goal.EndDate = *c.End
	}
	if res := validation.ValidateGoal(goal); !res.Valid() {
		return fmt.Errorf("invalid goal:\n%s", res.FormatReport())
	}

	if err := ctx.Store.UpdateGoal(goal); err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	fmt.Printf("Updated goal %q\n", goal.Title)
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"Goal ID."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	err := ctx.Store.DeleteGoal(c.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no goal with ID %s", c.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	fmt.Println("Deleted goal")
	return nil
}

package reports

import (
	"fmt"

	"daytrack/internal/cli"
)

type ListCmd struct {
	Limit int `short:"l" help:"Maximum number of reports to show." default:"14"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	reports, err := ctx.Store.GetRecentReports(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}
	if len(reports) == 0 {
		fmt.Println("No reports yet. Log one with 'daytrack report log'.")
		return nil
	}

	threshold := ctx.StreakThreshold()
	for _, r := range reports {
		marker := " "
		if r.ProductivityPercent >= threshold {
			marker = "*"
		}
		fmt.Printf("%s %s  %6s  %d task(s)  v%d\n",
			marker, r.Date, cli.FormatPercent(r.ProductivityPercent), len(r.Tasks), r.Version)
	}
	return nil
}

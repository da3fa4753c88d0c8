package stats

import (
	"fmt"
	"time"

	"daytrack/internal/cli"
	"daytrack/internal/insights"
	"daytrack/internal/utils"
)

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type SummaryCmd struct {
	Weeks int `short:"w" help:"Number of rolling weeks to show." default:"4"`
}

func (c *SummaryCmd) Run(ctx *cli.Context) error {
	asc, err := ctx.Store.GetAllReports()
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}
	if len(asc) == 0 {
		fmt.Println("No reports yet. Log one with 'daytrack report log'.")
		return nil
	}
	desc, err := ctx.Store.GetRecentReports(0)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	today, err := utils.ParseDate(ctx.Today())
	if err != nil {
		today = time.Now()
	}
	threshold := ctx.StreakThreshold()

	current := insights.CurrentStreak(desc, today, threshold)
	longest := insights.LongestStreak(asc, threshold)
	fmt.Printf("Streak: %d day(s) current, %d longest (threshold %s)\n",
		current, longest, cli.FormatPercent(threshold))

	if trend := insights.Trend(desc); trend != nil {
		sign := ""
		if trend.Change > 0 {
			sign = "+"
		}
		fmt.Printf("Trend:  %s%s week over week (%s)\n",
			sign, cli.FormatPercent(trend.Change), insights.TrendLabel(trend.Change))
	} else {
		fmt.Println("Trend:  not enough data (need two full weeks)")
	}

	consistency := insights.ConsistencyScore(len(asc), asc[0].Date, today)
	fmt.Printf("Consistency: %d%% of days logged since %s\n", consistency, asc[0].Date)

	if best, ok := insights.BestWeek(asc); ok {
		fmt.Printf("Best week:   %s average, ending %s\n",
			cli.FormatPercent(best.Average), best.EndDate)
	}

	fmt.Println("\nBy day of week:")
	buckets := insights.DayOfWeekAverages(asc)
	for i, b := range buckets {
		if b.Count == 0 {
			fmt.Printf("  %s  --\n", dayNames[i])
			continue
		}
		fmt.Printf("  %s  %6s  (%d report(s))\n", dayNames[i], cli.FormatPercent(b.Average), b.Count)
	}

	weeks := insights.RollingWeekAverages(desc)
	if len(weeks) > 0 {
		fmt.Println("\nRecent weeks (newest first):")
		limit := c.Weeks
		if limit <= 0 || limit > len(weeks) {
			limit = len(weeks)
		}
		for i := 0; i < limit; i++ {
			fmt.Printf("  week %d  %6s  (%d report(s))\n",
				i+1, cli.FormatPercent(weeks[i].Average), weeks[i].Count)
		}
	}
	return nil
}

package insights

import (
	"time"

	"daytrack/internal/models"
	"daytrack/internal/utils"
)

// GoalProgressResult summarizes how a productivity goal is going over its
// date window.
type GoalProgressResult struct {
	AvgProgress float64 `json:"avg_progress"`
	DaysLeft    int     `json:"days_left"`
	Active      bool    `json:"active"`
	Achieved    bool    `json:"achieved"`
}

// GoalProgress averages productivity over the reports falling inside the
// goal's inclusive date window and compares it to the target. Reports in
// YYYY-MM-DD form compare correctly as strings, so no parsing is needed for
// the window filter. A goal whose end date has passed is inactive but still
// reports its final average.
func GoalProgress(goal models.ProductivityGoal, reports []models.DailyReport, today time.Time) GoalProgressResult {
	var result GoalProgressResult

	sum := 0.0
	count := 0
	for _, report := range reports {
		if report.Date >= goal.StartDate && report.Date <= goal.EndDate {
			sum += report.ProductivityPercent
			count++
		}
	}
	if count > 0 {
		result.AvgProgress = round2(sum / float64(count))
	}

	if end, err := utils.ParseDate(goal.EndDate); err == nil {
		result.DaysLeft = utils.DaysBetween(end, today)
		result.Active = result.DaysLeft >= 0
	}

	result.Achieved = count > 0 && result.AvgProgress >= goal.TargetPercentage
	return result
}

// Package insights derives statistics from report history. Every function is
// a pure transformation of (history, parameters); wall-clock time is always
// passed in explicitly so results are deterministic and testable.
package insights

import (
	"time"

	"daytrack/internal/models"
	"daytrack/internal/utils"
)

// CurrentStreak counts consecutive days at or above the threshold ending at
// or adjacent to today. Reports must be sorted date-descending. The report at
// position i is in the streak only when it sits exactly i days before today;
// the first gap or sub-threshold day stops the count.
func CurrentStreak(reportsDesc []models.DailyReport, today time.Time, threshold float64) int {
	streak := 0
	for i, report := range reportsDesc {
		date, err := utils.ParseDate(report.Date)
		if err != nil {
			break
		}
		if utils.DaysBetween(today, date) != i {
			break
		}
		if report.ProductivityPercent < threshold {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak finds the longest run of consecutive days scoring above the
// threshold. Reports must be sorted date-ascending. A calendar gap breaks the
// run even when both surrounding days individually qualify.
func LongestStreak(reportsAsc []models.DailyReport, threshold float64) int {
	longest := 0
	current := 0
	prevDate := ""

	for _, report := range reportsAsc {
		switch {
		case report.ProductivityPercent <= threshold:
			current = 0
		case prevDate == "" || !utils.IsNextDay(prevDate, report.Date):
			current = 1
		default:
			current++
		}
		if current > longest {
			longest = current
		}
		prevDate = report.Date
	}

	return longest
}

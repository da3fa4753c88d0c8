package insights

import (
	"daytrack/internal/constants"
	"daytrack/internal/models"
)

// TrendResult compares the most recent week of reports against the oldest
// week in the loaded window. Change is in percentage points.
type TrendResult struct {
	Change    float64 `json:"change"`
	Improving bool    `json:"improving"`
}

// Trend requires at least fourteen date-descending reports; with fewer
// there is no baseline week to compare against and it returns nil. The
// baseline is the oldest seven reports of whatever window the caller
// loaded, so a longer history widens the comparison span.
func Trend(reportsDesc []models.DailyReport) *TrendResult {
	if len(reportsDesc) < constants.MinTrendReports {
		return nil
	}

	recent := weekMean(reportsDesc[:constants.WeekChunkSize])
	previous := weekMean(reportsDesc[len(reportsDesc)-constants.WeekChunkSize:])

	change := round2(recent - previous)
	return &TrendResult{
		Change:    change,
		Improving: change > 0,
	}
}

func weekMean(reports []models.DailyReport) float64 {
	sum := 0.0
	for _, report := range reports {
		sum += report.ProductivityPercent
	}
	return sum / float64(len(reports))
}

// TrendLabel maps a week-over-week change to a human-readable description.
func TrendLabel(change float64) string {
	switch {
	case change > 10:
		return "strong improvement"
	case change >= 5:
		return "good improvement"
	case change >= 0:
		return "slight improvement"
	case change >= -5:
		return "minor dip"
	case change >= -10:
		return "decline"
	default:
		return "significant drop"
	}
}

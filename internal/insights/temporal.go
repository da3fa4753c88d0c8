package insights

import (
	"math"
	"time"

	"daytrack/internal/constants"
	"daytrack/internal/models"
	"daytrack/internal/utils"
)

// DayBucket is the aggregate for one weekday. Count disambiguates an empty
// bucket from one with a genuinely low average.
type DayBucket struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// WeekAverage is the mean over one contiguous chunk of reports. A final
// partial chunk is averaged over its actual member count.
type WeekAverage struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// BestWeekResult is the highest-scoring window of seven consecutive reports.
type BestWeekResult struct {
	Average float64 `json:"average"`
	EndDate string  `json:"end_date"` // YYYY-MM-DD format
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DayOfWeekAverages buckets reports by weekday (0=Sunday..6=Saturday) and
// returns the mean productivity per bucket. Reports with unparseable dates
// are skipped.
func DayOfWeekAverages(reports []models.DailyReport) [7]DayBucket {
	var sums [7]float64
	var buckets [7]DayBucket

	for _, report := range reports {
		date, err := utils.ParseDate(report.Date)
		if err != nil {
			continue
		}
		day := int(date.Weekday())
		sums[day] += report.ProductivityPercent
		buckets[day].Count++
	}

	for day := range buckets {
		if buckets[day].Count > 0 {
			buckets[day].Average = round2(sums[day] / float64(buckets[day].Count))
		}
	}

	return buckets
}

// RollingWeekAverages partitions date-descending reports into contiguous
// chunks of seven (chunk 0 = most recent seven) and returns each chunk's
// mean productivity.
func RollingWeekAverages(reportsDesc []models.DailyReport) []WeekAverage {
	var averages []WeekAverage

	for start := 0; start < len(reportsDesc); start += constants.WeekChunkSize {
		end := start + constants.WeekChunkSize
		if end > len(reportsDesc) {
			end = len(reportsDesc)
		}
		chunk := reportsDesc[start:end]

		sum := 0.0
		for _, report := range chunk {
			sum += report.ProductivityPercent
		}
		averages = append(averages, WeekAverage{
			Average: round2(sum / float64(len(chunk))),
			Count:   len(chunk),
		})
	}

	return averages
}

// BestWeek slides a seven-report window across date-ascending history and
// returns the window with the highest mean, along with the date of the
// window's final report. The window spans seven consecutive reports by
// position, not necessarily seven consecutive calendar dates. Returns false
// when fewer than seven reports exist.
func BestWeek(reportsAsc []models.DailyReport) (BestWeekResult, bool) {
	if len(reportsAsc) < constants.WeekChunkSize {
		return BestWeekResult{}, false
	}

	windowSum := 0.0
	for i := 0; i < constants.WeekChunkSize; i++ {
		windowSum += reportsAsc[i].ProductivityPercent
	}

	best := BestWeekResult{
		Average: windowSum / constants.WeekChunkSize,
		EndDate: reportsAsc[constants.WeekChunkSize-1].Date,
	}

	for i := constants.WeekChunkSize; i < len(reportsAsc); i++ {
		windowSum += reportsAsc[i].ProductivityPercent - reportsAsc[i-constants.WeekChunkSize].ProductivityPercent
		avg := windowSum / constants.WeekChunkSize
		if avg > best.Average {
			best.Average = avg
			best.EndDate = reportsAsc[i].Date
		}
	}

	best.Average = round2(best.Average)
	return best, true
}

// ConsistencyScore measures tracking frequency, not productivity level: the
// share of days since the first report that have a report, capped at 100.
func ConsistencyScore(reportCount int, oldestDate string, today time.Time) int {
	if reportCount == 0 {
		return 0
	}

	oldest, err := utils.ParseDate(oldestDate)
	if err != nil {
		return 0
	}

	daysTracked := utils.DaysBetween(today, oldest) + 1
	if daysTracked <= 0 {
		return 0
	}

	score := int(math.Round(float64(reportCount) / float64(daysTracked) * 100))
	if score > 100 {
		score = 100
	}
	return score
}

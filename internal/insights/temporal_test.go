package insights

import (
	"math"
	"testing"

	"daytrack/internal/models"
)

func TestDayOfWeekAverages(t *testing.T) {
	// 2025-03-03 is a Monday, 2025-03-10 the next Monday.
	reports := []models.DailyReport{
		{Date: "2025-03-03", ProductivityPercent: 80},
		{Date: "2025-03-10", ProductivityPercent: 60},
		{Date: "2025-03-04", ProductivityPercent: 50},
	}

	buckets := DayOfWeekAverages(reports)

	monday := buckets[1]
	if monday.Count != 2 || monday.Average != 70 {
		t.Errorf("Monday bucket = %+v, want {Average:70 Count:2}", monday)
	}
	tuesday := buckets[2]
	if tuesday.Count != 1 || tuesday.Average != 50 {
		t.Errorf("Tuesday bucket = %+v, want {Average:50 Count:1}", tuesday)
	}
	if buckets[0].Count != 0 || buckets[0].Average != 0 {
		t.Errorf("Sunday bucket = %+v, want empty", buckets[0])
	}
}

func TestDayOfWeekAveragesSkipsBadDates(t *testing.T) {
	reports := []models.DailyReport{
		{Date: "not-a-date", ProductivityPercent: 80},
	}

	buckets := DayOfWeekAverages(reports)
	for day, bucket := range buckets {
		if bucket.Count != 0 {
			t.Errorf("bucket %d has count %d, want 0", day, bucket.Count)
		}
	}
}

func TestRollingWeekAverages(t *testing.T) {
	end := mustDate(t, "2025-03-10")
	scores := make([]float64, 10)
	for i := range scores {
		scores[i] = float64(10 * (i + 1)) // oldest 10 .. newest 100
	}
	reports := reportsEndingAt(end, scores...)

	averages := RollingWeekAverages(reports)
	if len(averages) != 2 {
		t.Fatalf("got %d chunks, want 2", len(averages))
	}
	// Newest seven: 100..40, mean 70.
	if averages[0].Count != 7 || averages[0].Average != 70 {
		t.Errorf("chunk 0 = %+v, want {Average:70 Count:7}", averages[0])
	}
	// Remaining three: 30, 20, 10, mean 20.
	if averages[1].Count != 3 || averages[1].Average != 20 {
		t.Errorf("chunk 1 = %+v, want {Average:20 Count:3}", averages[1])
	}
}

func TestRollingWeekAveragesEmpty(t *testing.T) {
	if got := RollingWeekAverages(nil); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestBestWeekTooFewReports(t *testing.T) {
	end := mustDate(t, "2025-03-10")
	reports := ascending(reportsEndingAt(end, 90, 90, 90, 90, 90, 90))

	if _, ok := BestWeek(reports); ok {
		t.Error("expected no best week with fewer than seven reports")
	}
}

func TestBestWeekFindsHighestWindow(t *testing.T) {
	end := mustDate(t, "2025-03-14")
	// Window ending at the 9th report (2025-03-13) covers the seven 80s.
	reports := ascending(reportsEndingAt(end, 50, 50, 80, 80, 80, 80, 80, 80, 80, 50))

	best, ok := BestWeek(reports)
	if !ok {
		t.Fatal("expected a best week")
	}
	if best.Average != 80 {
		t.Errorf("Average = %v, want 80", best.Average)
	}
	if best.EndDate != "2025-03-13" {
		t.Errorf("EndDate = %q, want 2025-03-13", best.EndDate)
	}
}

func TestBestWeekSpansReportGaps(t *testing.T) {
	// Seven reports over nine calendar days still form one window.
	reports := []models.DailyReport{
		{Date: "2025-03-01", ProductivityPercent: 70},
		{Date: "2025-03-02", ProductivityPercent: 70},
		{Date: "2025-03-04", ProductivityPercent: 70},
		{Date: "2025-03-05", ProductivityPercent: 70},
		{Date: "2025-03-07", ProductivityPercent: 70},
		{Date: "2025-03-08", ProductivityPercent: 70},
		{Date: "2025-03-09", ProductivityPercent: 70},
	}

	best, ok := BestWeek(reports)
	if !ok {
		t.Fatal("expected a best week")
	}
	if best.Average != 70 || best.EndDate != "2025-03-09" {
		t.Errorf("got %+v, want {Average:70 EndDate:2025-03-09}", best)
	}
}

func TestConsistencyScore(t *testing.T) {
	today := mustDate(t, "2025-03-10")

	tests := []struct {
		name   string
		count  int
		oldest string
		want   int
	}{
		{"perfect", 10, "2025-03-01", 100},
		{"half", 5, "2025-03-01", 50},
		{"single report today", 1, "2025-03-10", 100},
		{"no reports", 0, "", 0},
		{"rounds", 3, "2025-03-04", 43}, // 3 of 7 days
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConsistencyScore(tt.count, tt.oldest, today)
			if got != tt.want {
				t.Errorf("ConsistencyScore(%d, %q) = %d, want %d", tt.count, tt.oldest, got, tt.want)
			}
		})
	}
}

func TestConsistencyScoreCappedAt100(t *testing.T) {
	today := mustDate(t, "2025-03-10")
	// More reports than days cannot exceed the cap.
	if got := ConsistencyScore(20, "2025-03-01", today); got != 100 {
		t.Errorf("ConsistencyScore = %d, want 100", got)
	}
}

func TestRound2(t *testing.T) {
	if got := round2(66.666666); math.Abs(got-66.67) > 1e-9 {
		t.Errorf("round2 = %v, want 66.67", got)
	}
}

package insights

import (
	"testing"

	"daytrack/internal/models"
)

func flatReports(n int, score float64) []models.DailyReport {
	reports := make([]models.DailyReport, n)
	for i := range reports {
		reports[i] = models.DailyReport{ProductivityPercent: score}
	}
	return reports
}

func TestTrendRequiresFourteenReports(t *testing.T) {
	if got := Trend(flatReports(13, 80)); got != nil {
		t.Errorf("Trend with 13 reports = %+v, want nil", got)
	}
}

func TestTrendImproving(t *testing.T) {
	// Newest seven at 80, previous seven at 70.
	reports := append(flatReports(7, 80), flatReports(7, 70)...)

	got := Trend(reports)
	if got == nil {
		t.Fatal("expected a trend")
	}
	if got.Change != 10 || !got.Improving {
		t.Errorf("got %+v, want {Change:10 Improving:true}", got)
	}
}

func TestTrendDeclining(t *testing.T) {
	reports := append(flatReports(7, 55), flatReports(7, 75)...)

	got := Trend(reports)
	if got == nil {
		t.Fatal("expected a trend")
	}
	if got.Change != -20 || got.Improving {
		t.Errorf("got %+v, want {Change:-20 Improving:false}", got)
	}
}

func TestTrendFlatIsNotImproving(t *testing.T) {
	got := Trend(flatReports(14, 70))
	if got == nil {
		t.Fatal("expected a trend")
	}
	if got.Change != 0 || got.Improving {
		t.Errorf("got %+v, want {Change:0 Improving:false}", got)
	}
}

func TestTrendBaselineIsOldestWeek(t *testing.T) {
	// With more than fourteen reports the baseline stays the oldest seven,
	// so middle history does not dilute the comparison.
	reports := append(flatReports(7, 80), flatReports(7, 70)...)
	reports = append(reports, flatReports(7, 40)...)

	got := Trend(reports)
	if got == nil {
		t.Fatal("expected a trend")
	}
	if got.Change != 40 {
		t.Errorf("Change = %v, want 40", got.Change)
	}
	if !got.Improving {
		t.Error("expected improving trend")
	}
}

func TestTrendLabel(t *testing.T) {
	tests := []struct {
		change float64
		want   string
	}{
		{15, "strong improvement"},
		{10, "good improvement"},
		{5, "good improvement"},
		{2, "slight improvement"},
		{0, "slight improvement"},
		{-3, "minor dip"},
		{-5, "minor dip"},
		{-8, "decline"},
		{-10, "decline"},
		{-25, "significant drop"},
	}
	for _, tt := range tests {
		if got := TrendLabel(tt.change); got != tt.want {
			t.Errorf("TrendLabel(%v) = %q, want %q", tt.change, got, tt.want)
		}
	}
}

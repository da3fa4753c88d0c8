package insights

import (
	"testing"

	"daytrack/internal/models"
)

func TestGoalProgressWindowIsInclusive(t *testing.T) {
	goal := models.ProductivityGoal{
		Title:            "steady march",
		TargetPercentage: 70,
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-07",
	}
	reports := []models.DailyReport{
		{Date: "2025-02-28", ProductivityPercent: 10}, // before window
		{Date: "2025-03-01", ProductivityPercent: 80}, // first day counts
		{Date: "2025-03-04", ProductivityPercent: 60},
		{Date: "2025-03-07", ProductivityPercent: 70}, // last day counts
		{Date: "2025-03-08", ProductivityPercent: 10}, // after window
	}
	today := mustDate(t, "2025-03-05")

	got := GoalProgress(goal, reports, today)
	if got.AvgProgress != 70 {
		t.Errorf("AvgProgress = %v, want 70", got.AvgProgress)
	}
	if got.DaysLeft != 2 {
		t.Errorf("DaysLeft = %d, want 2", got.DaysLeft)
	}
	if !got.Active {
		t.Error("goal should be active before its end date")
	}
	if !got.Achieved {
		t.Error("average at target should count as achieved")
	}
}

func TestGoalProgressExpiredGoal(t *testing.T) {
	goal := models.ProductivityGoal{
		TargetPercentage: 90,
		StartDate:        "2025-02-01",
		EndDate:          "2025-02-14",
	}
	reports := []models.DailyReport{
		{Date: "2025-02-05", ProductivityPercent: 50},
	}
	today := mustDate(t, "2025-03-01")

	got := GoalProgress(goal, reports, today)
	if got.Active {
		t.Error("goal past its end date should be inactive")
	}
	if got.DaysLeft >= 0 {
		t.Errorf("DaysLeft = %d, want negative", got.DaysLeft)
	}
	if got.AvgProgress != 50 {
		t.Errorf("AvgProgress = %v, want 50", got.AvgProgress)
	}
	if got.Achieved {
		t.Error("goal below target should not be achieved")
	}
}

func TestGoalProgressEndsToday(t *testing.T) {
	goal := models.ProductivityGoal{
		TargetPercentage: 50,
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-10",
	}
	today := mustDate(t, "2025-03-10")

	got := GoalProgress(goal, nil, today)
	if !got.Active || got.DaysLeft != 0 {
		t.Errorf("got {Active:%v DaysLeft:%d}, want {Active:true DaysLeft:0}", got.Active, got.DaysLeft)
	}
}

func TestGoalProgressNoReportsNotAchieved(t *testing.T) {
	goal := models.ProductivityGoal{
		TargetPercentage: 0,
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-10",
	}
	today := mustDate(t, "2025-03-05")

	got := GoalProgress(goal, nil, today)
	if got.Achieved {
		t.Error("goal with no reports in window should not be achieved")
	}
	if got.AvgProgress != 0 {
		t.Errorf("AvgProgress = %v, want 0", got.AvgProgress)
	}
}

package validation

import (
	"strings"
	"testing"

	"daytrack/internal/constants"
	"daytrack/internal/models"
)

func validReport() models.DailyReport {
	return models.DailyReport{
		Date: "2025-03-10",
		Tasks: []models.Task{
			{Title: "deep work", Weight: 60, CompletionPercent: 100},
			{Title: "exercise", Weight: 40, CompletionPercent: 50},
		},
	}
}

func TestValidateReportOK(t *testing.T) {
	result := ValidateReport(validReport())
	if !result.Valid() {
		t.Errorf("expected valid, got: %s", result.FormatReport())
	}
	if result.Err() != nil {
		t.Errorf("Err() = %v, want nil", result.Err())
	}
}

func TestValidateReportBadDate(t *testing.T) {
	report := validReport()
	report.Date = "03/10/2025"

	result := ValidateReport(report)
	if result.Valid() {
		t.Fatal("expected invalid date to fail")
	}
	if result.Errors[0].Field != "date" {
		t.Errorf("Field = %q, want date", result.Errors[0].Field)
	}
}

func TestValidateReportWeightSumOutOfTolerance(t *testing.T) {
	report := models.DailyReport{
		Date: "2025-03-10",
		Tasks: []models.Task{
			{Title: "a", Weight: 50},
			{Title: "b", Weight: 30},
		},
	}

	result := ValidateReport(report)
	if result.Valid() {
		t.Fatal("expected weight sum 80 to fail")
	}
	if !strings.Contains(result.Err().Error(), "weights sum") {
		t.Errorf("unexpected error: %v", result.Err())
	}
}

func TestValidateReportWeightSumWithinTolerance(t *testing.T) {
	report := models.DailyReport{
		Date: "2025-03-10",
		Tasks: []models.Task{
			{Title: "a", Weight: 33.33},
			{Title: "b", Weight: 33.33},
			{Title: "c", Weight: 33.34},
		},
	}

	if result := ValidateReport(report); !result.Valid() {
		t.Errorf("sum 100.00 should pass: %s", result.FormatReport())
	}

	report.Tasks[2].Weight = 33.42 // sum 100.08, inside ±0.1
	if result := ValidateReport(report); !result.Valid() {
		t.Errorf("sum inside tolerance should pass: %s", result.FormatReport())
	}
}

func TestValidateReportSkipsSumWhenWeightOutOfRange(t *testing.T) {
	report := models.DailyReport{
		Date: "2025-03-10",
		Tasks: []models.Task{
			{Title: "a", Weight: -5},
			{Title: "b", Weight: 105},
		},
	}

	result := ValidateReport(report)
	for _, err := range result.Errors {
		if strings.Contains(err.Reason, "weights sum") {
			t.Errorf("sum error should be suppressed when a weight is out of range: %v", err)
		}
	}
	if len(result.Errors) != 2 {
		t.Errorf("got %d errors, want 2 range errors", len(result.Errors))
	}
}

func TestValidateReportEmptyTasksSkipsSum(t *testing.T) {
	report := models.DailyReport{Date: "2025-03-10"}
	if result := ValidateReport(report); !result.Valid() {
		t.Errorf("empty report should be valid: %s", result.FormatReport())
	}
}

func TestValidateTasksBounds(t *testing.T) {
	tests := []struct {
		name  string
		task  models.Task
		field string
	}{
		{"empty title", models.Task{Title: "", Weight: 100}, "tasks[0].title"},
		{"long title", models.Task{Title: strings.Repeat("x", constants.MaxTaskTitleLen+1), Weight: 100}, "tasks[0].title"},
		{"negative weight", models.Task{Title: "t", Weight: -1}, "tasks[0].weight"},
		{"weight over total", models.Task{Title: "t", Weight: 101}, "tasks[0].weight"},
		{"negative completion", models.Task{Title: "t", Weight: 100, CompletionPercent: -1}, "tasks[0].completion_percent"},
		{"completion over max", models.Task{Title: "t", Weight: 100, CompletionPercent: 101}, "tasks[0].completion_percent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateTasks([]models.Task{tt.task})
			if result.Valid() {
				t.Fatal("expected a violation")
			}
			if result.Errors[0].Field != tt.field {
				t.Errorf("Field = %q, want %q", result.Errors[0].Field, tt.field)
			}
		})
	}
}

func TestValidateReportNotesTooLong(t *testing.T) {
	report := validReport()
	report.Notes = strings.Repeat("n", constants.MaxNotesLen+1)

	result := ValidateReport(report)
	if result.Valid() {
		t.Fatal("expected oversized notes to fail")
	}
}

func TestValidateTemplate(t *testing.T) {
	template := models.Template{
		Name: "weekday",
		Tasks: []models.TemplateTask{
			{Title: "deep work", Weight: 60},
			{Title: "exercise", Weight: 40},
		},
	}
	if result := ValidateTemplate(template); !result.Valid() {
		t.Errorf("expected valid: %s", result.FormatReport())
	}

	if result := ValidateTemplate(models.Template{Name: ""}); result.Valid() {
		t.Error("expected empty template to fail")
	}
}

func TestValidateGoal(t *testing.T) {
	goal := models.ProductivityGoal{
		Title:            "march push",
		TargetPercentage: 75,
		Period:           constants.GoalPeriodWeekly,
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-31",
	}
	if result := ValidateGoal(goal); !result.Valid() {
		t.Errorf("expected valid: %s", result.FormatReport())
	}

	goal.Period = "quarterly"
	if result := ValidateGoal(goal); result.Valid() {
		t.Error("expected unknown period to fail")
	}

	goal.Period = constants.GoalPeriodDaily
	goal.EndDate = "2025-02-01"
	if result := ValidateGoal(goal); result.Valid() {
		t.Error("expected end before start to fail")
	}
}

func TestValidateMission(t *testing.T) {
	mission := models.Mission{Title: "ship the rewrite", Progress: 40}
	if result := ValidateMission(mission); !result.Valid() {
		t.Errorf("expected valid: %s", result.FormatReport())
	}

	mission.Progress = 120
	if result := ValidateMission(mission); result.Valid() {
		t.Error("expected out-of-range progress to fail")
	}
}

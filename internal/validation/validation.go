// Package validation enforces boundary constraints on user-supplied data
// before it reaches storage. The scoring code itself stays permissive and
// never rejects input.
package validation

import (
	"fmt"
	"math"
	"strings"

	"daytrack/internal/constants"
	"daytrack/internal/models"
	"daytrack/internal/utils"
)

// Error describes a single failed constraint on a named field.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Result collects every violation found in one pass so callers can show the
// user all problems at once.
type Result struct {
	Errors []*Error
}

// Valid reports whether no constraint failed.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the first violation as an error, or nil when valid.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// FormatReport renders all violations for terminal output.
func (r *Result) FormatReport() string {
	if r.Valid() {
		return "No problems detected."
	}
	var b strings.Builder
	b.WriteString("Validation failed:\n")
	for _, err := range r.Errors {
		fmt.Fprintf(&b, "- %s\n", err.Error())
	}
	return b.String()
}

func (r *Result) add(field, reason string) {
	r.Errors = append(r.Errors, &Error{Field: field, Reason: reason})
}

// ValidateTasks checks the per-task constraints shared by reports and
// templates: title length, weight range, and completion range.
func ValidateTasks(tasks []models.Task) Result {
	var result Result

	for i, task := range tasks {
		field := fmt.Sprintf("tasks[%d]", i)
		if task.Title == "" {
			result.add(field+".title", "must not be empty")
		}
		if len(task.Title) > constants.MaxTaskTitleLen {
			result.add(field+".title", fmt.Sprintf("must be at most %d characters", constants.MaxTaskTitleLen))
		}
		if task.Weight < 0 || task.Weight > constants.TotalWeight {
			result.add(field+".weight", fmt.Sprintf("must be between 0 and %v", constants.TotalWeight))
		}
		if task.CompletionPercent < 0 || task.CompletionPercent > constants.MaxCompletion {
			result.add(field+".completion_percent", fmt.Sprintf("must be between 0 and %v", constants.MaxCompletion))
		}
	}

	return result
}

// ValidateReport checks a full daily report: date format, notes length, task
// constraints, and that weights sum to the total within tolerance. The weight
// sum check is skipped when any individual weight is already out of range,
// since the sum error would just restate the problem.
func ValidateReport(report models.DailyReport) Result {
	result := ValidateTasks(report.Tasks)

	if err := utils.ValidateDateFormat(report.Date); err != nil {
		result.add("date", "must be in YYYY-MM-DD format")
	}
	if len(report.Notes) > constants.MaxNotesLen {
		result.add("notes", fmt.Sprintf("must be at most %d characters", constants.MaxNotesLen))
	}

	if len(report.Tasks) > 0 {
		weightsInRange := true
		total := 0.0
		for _, task := range report.Tasks {
			if task.Weight < 0 || task.Weight > constants.TotalWeight {
				weightsInRange = false
			}
			total += task.Weight
		}
		if weightsInRange && math.Abs(total-constants.TotalWeight) > constants.WeightSumTolerance {
			result.add("tasks", fmt.Sprintf("weights sum to %.2f, expected %v (±%v)",
				total, constants.TotalWeight, constants.WeightSumTolerance))
		}
	}

	return result
}

// ValidateTemplate checks a reusable task template.
func ValidateTemplate(template models.Template) Result {
	var result Result

	if template.Name == "" {
		result.add("name", "must not be empty")
	}
	if len(template.Tasks) == 0 {
		result.add("tasks", "must contain at least one task")
	}
	for i, task := range template.Tasks {
		field := fmt.Sprintf("tasks[%d]", i)
		if task.Title == "" {
			result.add(field+".title", "must not be empty")
		}
		if len(task.Title) > constants.MaxTaskTitleLen {
			result.add(field+".title", fmt.Sprintf("must be at most %d characters", constants.MaxTaskTitleLen))
		}
		if task.Weight < 0 || task.Weight > constants.TotalWeight {
			result.add(field+".weight", fmt.Sprintf("must be between 0 and %v", constants.TotalWeight))
		}
	}

	return result
}

// ValidateGoal checks a productivity goal's target, period, and date window.
func ValidateGoal(goal models.ProductivityGoal) Result {
	var result Result

	if goal.Title == "" {
		result.add("title", "must not be empty")
	}
	if goal.TargetPercentage < 0 || goal.TargetPercentage > constants.MaxCompletion {
		result.add("target_percentage", fmt.Sprintf("must be between 0 and %v", constants.MaxCompletion))
	}

	switch goal.Period {
	case constants.GoalPeriodDaily, constants.GoalPeriodWeekly, constants.GoalPeriodMonthly:
	default:
		result.add("period", fmt.Sprintf("must be one of %s, %s, %s",
			constants.GoalPeriodDaily, constants.GoalPeriodWeekly, constants.GoalPeriodMonthly))
	}

	startErr := utils.ValidateDateFormat(goal.StartDate)
	endErr := utils.ValidateDateFormat(goal.EndDate)
	if startErr != nil {
		result.add("start_date", "must be in YYYY-MM-DD format")
	}
	if endErr != nil {
		result.add("end_date", "must be in YYYY-MM-DD format")
	}
	if startErr == nil && endErr == nil && goal.EndDate < goal.StartDate {
		result.add("end_date", "must not be before start_date")
	}

	return result
}

// ValidateMission checks a long-running mission.
func ValidateMission(mission models.Mission) Result {
	var result Result

	if mission.Title == "" {
		result.add("title", "must not be empty")
	}
	if len(mission.Title) > constants.MaxTaskTitleLen {
		result.add("title", fmt.Sprintf("must be at most %d characters", constants.MaxTaskTitleLen))
	}
	if mission.Progress < 0 || mission.Progress > constants.MaxCompletion {
		result.add("progress", fmt.Sprintf("must be between 0 and %v", constants.MaxCompletion))
	}

	return result
}

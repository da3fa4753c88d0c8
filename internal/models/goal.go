package models

import "daytrack/internal/constants"

// ProductivityGoal is a target productivity percentage over a date range,
// evaluated against all reports whose date falls within [StartDate, EndDate].
type ProductivityGoal struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	TargetPercentage float64              `json:"target_percentage"` // 0-100
	Period           constants.GoalPeriod `json:"period"`
	StartDate        string               `json:"start_date"` // YYYY-MM-DD format
	EndDate          string               `json:"end_date"`   // YYYY-MM-DD format
	DeletedAt        *string              `json:"deleted_at,omitempty"` // RFC3339 timestamp
}

package models

// Task is a unit of planned work for one day. Weight is the task's share of
// the day's total productivity; across a saved report the weights sum to 100
// (enforced at save time, not construction time).
type Task struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Weight            float64 `json:"weight"`             // 0-100
	CompletionPercent float64 `json:"completion_percent"` // 0-100
	Category          string  `json:"category,omitempty"`
}

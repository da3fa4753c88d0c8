package models

// DailyReport is the record for one calendar date. ProductivityPercent is a
// cached derived value: the save path recomputes it from Tasks and it is never
// edited independently. One report exists per date; re-saving supersedes the
// stored report in place and bumps Version.
type DailyReport struct {
	ID                  string  `json:"id"`
	Date                string  `json:"date"` // YYYY-MM-DD format
	Tasks               []Task  `json:"tasks"`
	ProductivityPercent float64 `json:"productivity_percent"`
	Notes               string  `json:"notes,omitempty"`
	Version             int     `json:"version"`
	DeletedAt           *string `json:"deleted_at,omitempty"` // RFC3339 timestamp
}

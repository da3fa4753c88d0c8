package models

import "time"

// Mission is a user-defined progress tracker, independent of daily reports.
// Progress is supplied directly by the user rather than derived from tasks.
type Mission struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Progress    float64   `json:"progress"` // 0-100
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	DeletedAt   *string   `json:"deleted_at,omitempty"` // RFC3339 timestamp
}

// SetProgress clamps the value to [0,100] and marks the mission completed
// exactly when progress reaches 100.
func (m *Mission) SetProgress(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	m.Progress = progress
	m.Completed = progress >= 100
}

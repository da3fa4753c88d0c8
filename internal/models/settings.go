package models

// Settings holds per-installation configuration
type Settings struct {
	Timezone          string  `json:"timezone"`           // IANA name, "Local" or empty for system timezone
	StreakThreshold   float64 `json:"streak_threshold"`   // minimum productivity for a day to count toward a streak
	DefaultTemplateID string  `json:"default_template_id,omitempty"`
}

package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"daytrack/internal/backup"
	"daytrack/internal/constants"
	"daytrack/internal/logger"
	"daytrack/internal/models"
	"daytrack/internal/storage"
	"daytrack/internal/utils"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// PerformAutomaticBackup creates a backup before destructive operations.
// Only meaningful for the sqlite backend; failures are logged, never fatal.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if storage.KindForPath(path) != storage.KindSQLite {
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
	}
}

// Today returns today's date in the user's configured timezone, falling back
// to the system timezone when settings are unavailable or the stored
// timezone is invalid.
func (c *Context) Today() string {
	timezone := ""
	if settings, err := c.Store.GetSettings(); err == nil {
		timezone = settings.Timezone
	}
	today, err := utils.GetTodayInTimezone(timezone)
	if err != nil {
		return time.Now().Format(constants.DateFormat)
	}
	return today
}

// StreakThreshold returns the configured streak threshold, falling back to
// the default.
func (c *Context) StreakThreshold() float64 {
	settings, err := c.Store.GetSettings()
	if err != nil || settings.StreakThreshold <= 0 {
		return constants.DefaultStreakTarget
	}
	return settings.StreakThreshold
}

// ParseTaskSpec parses a "title:weight[:completion[:category]]" task
// argument as used by report and template commands.
func ParseTaskSpec(spec string) (models.Task, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 4 {
		return models.Task{}, fmt.Errorf("invalid task spec %q (expected title:weight[:completion[:category]])", spec)
	}

	task := models.Task{Title: strings.TrimSpace(parts[0])}
	if task.Title == "" {
		return models.Task{}, fmt.Errorf("invalid task spec %q: title cannot be empty", spec)
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Task{}, fmt.Errorf("invalid weight in task spec %q: %w", spec, err)
	}
	task.Weight = weight

	if len(parts) >= 3 && strings.TrimSpace(parts[2]) != "" {
		completion, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return models.Task{}, fmt.Errorf("invalid completion in task spec %q: %w", spec, err)
		}
		task.CompletionPercent = completion
	}
	if len(parts) == 4 {
		task.Category = strings.TrimSpace(parts[3])
	}

	return task, nil
}

// FormatPercent renders a percentage with up to two decimals, trimming
// trailing zeros.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

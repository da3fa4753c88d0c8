package storage

import (
	"errors"

	"daytrack/internal/models"
)

// ErrNotFound is returned when a requested record does not exist or has been
// soft-deleted.
var ErrNotFound = errors.New("record not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Daily reports. Saving an existing date replaces it and bumps its
	// version; the stored productivity is always recomputed from the tasks.
	SaveReport(models.DailyReport) error
	GetReport(date string) (models.DailyReport, error)
	// GetAllReports returns non-deleted reports in ascending date order.
	GetAllReports() ([]models.DailyReport, error)
	// GetRecentReports returns up to limit non-deleted reports in descending
	// date order. A limit <= 0 means no limit.
	GetRecentReports(limit int) ([]models.DailyReport, error)
	DeleteReport(date string) error
	RestoreReport(date string) error

	// Templates
	AddTemplate(models.Template) error
	GetTemplate(id string) (models.Template, error)
	GetTemplateByName(name string) (models.Template, error)
	GetAllTemplates() ([]models.Template, error)
	UpdateTemplate(models.Template) error
	DeleteTemplate(id string) error

	// Goals
	AddGoal(models.ProductivityGoal) error
	GetGoal(id string) (models.ProductivityGoal, error)
	GetAllGoals(includeDeleted bool) ([]models.ProductivityGoal, error)
	UpdateGoal(models.ProductivityGoal) error
	DeleteGoal(id string) error

	// Missions
	AddMission(models.Mission) error
	GetMission(id string) (models.Mission, error)
	GetAllMissions(includeCompleted bool) ([]models.Mission, error)
	UpdateMission(models.Mission) error
	DeleteMission(id string) error

	// Utils
	GetConfigPath() string
}

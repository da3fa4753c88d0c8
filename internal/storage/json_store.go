package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"daytrack/internal/constants"
	"daytrack/internal/models"
	"daytrack/internal/score"
)

// fileData is the on-disk shape of the JSON backend.
type fileData struct {
	Version   int                                `json:"version"`
	Settings  models.Settings                    `json:"settings"`
	Reports   map[string]models.DailyReport      `json:"reports"`   // keyed by date
	Templates map[string]models.Template         `json:"templates"` // keyed by id
	Goals     map[string]models.ProductivityGoal `json:"goals"`     // keyed by id
	Missions  map[string]models.Mission          `json:"missions"`  // keyed by id
}

// JSONStore keeps everything in a single human-readable file. Handy for
// inspection and portability; every write rewrites the whole file.
type JSONStore struct {
	path string
	data *fileData
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.data = &fileData{
		Version: 1,
		Settings: models.Settings{
			StreakThreshold: constants.DefaultStreakTarget,
		},
		Reports:   make(map[string]models.DailyReport),
		Templates: make(map[string]models.Template),
		Goals:     make(map[string]models.ProductivityGoal),
		Missions:  make(map[string]models.Mission),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'daytrack init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.data = &fileData{}
	if err := json.Unmarshal(raw, s.data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.data.Reports == nil {
		s.data.Reports = make(map[string]models.DailyReport)
	}
	if s.data.Templates == nil {
		s.data.Templates = make(map[string]models.Template)
	}
	if s.data.Goals == nil {
		s.data.Goals = make(map[string]models.ProductivityGoal)
	}
	if s.data.Missions == nil {
		s.data.Missions = make(map[string]models.Mission)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) loaded() error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// Settings

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.data.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Settings = settings
	return s.save()
}

// Reports

func (s *JSONStore) SaveReport(report models.DailyReport) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if report.DeletedAt != nil {
		return fmt.Errorf("cannot save a report with deleted_at set; use DeleteReport and RestoreReport")
	}

	if existing, ok := s.data.Reports[report.Date]; ok {
		if existing.DeletedAt != nil {
			return fmt.Errorf("cannot overwrite a deleted report for %s; restore it first", report.Date)
		}
		report.Version = existing.Version + 1
	} else {
		report.Version = 1
	}

	for i := range report.Tasks {
		if report.Tasks[i].ID == "" {
			report.Tasks[i].ID = uuid.NewString()
		}
	}
	report.ProductivityPercent = score.Productivity(report.Tasks)

	s.data.Reports[report.Date] = report
	return s.save()
}

func (s *JSONStore) GetReport(date string) (models.DailyReport, error) {
	if err := s.loaded(); err != nil {
		return models.DailyReport{}, err
	}
	report, ok := s.data.Reports[date]
	if !ok || report.DeletedAt != nil {
		return models.DailyReport{}, ErrNotFound
	}
	return report, nil
}

func (s *JSONStore) GetAllReports() ([]models.DailyReport, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var reports []models.DailyReport
	for _, report := range s.data.Reports {
		if report.DeletedAt == nil {
			reports = append(reports, report)
		}
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Date < reports[j].Date })
	return reports, nil
}

func (s *JSONStore) GetRecentReports(limit int) ([]models.DailyReport, error) {
	reports, err := s.GetAllReports()
	if err != nil {
		return nil, err
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Date > reports[j].Date })
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}

func (s *JSONStore) DeleteReport(date string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	report, ok := s.data.Reports[date]
	if !ok || report.DeletedAt != nil {
		return ErrNotFound
	}
	now := time.Now().UTC().Format(time.RFC3339)
	report.DeletedAt = &now
	s.data.Reports[date] = report
	return s.save()
}

func (s *JSONStore) RestoreReport(date string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	report, ok := s.data.Reports[date]
	if !ok || report.DeletedAt == nil {
		return ErrNotFound
	}
	report.DeletedAt = nil
	s.data.Reports[date] = report
	return s.save()
}

// Templates

func (s *JSONStore) AddTemplate(template models.Template) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if template.ID == "" {
		template.ID = uuid.NewString()
	}
	s.clearDefaultIf(template)
	s.data.Templates[template.ID] = template
	return s.save()
}

func (s *JSONStore) clearDefaultIf(template models.Template) {
	if !template.IsDefault {
		return
	}
	for id, other := range s.data.Templates {
		if id != template.ID && other.IsDefault {
			other.IsDefault = false
			s.data.Templates[id] = other
		}
	}
}

func (s *JSONStore) GetTemplate(id string) (models.Template, error) {
	if err := s.loaded(); err != nil {
		return models.Template{}, err
	}
	template, ok := s.data.Templates[id]
	if !ok || template.DeletedAt != nil {
		return models.Template{}, ErrNotFound
	}
	return template, nil
}

func (s *JSONStore) GetTemplateByName(name string) (models.Template, error) {
	if err := s.loaded(); err != nil {
		return models.Template{}, err
	}
	for _, template := range s.data.Templates {
		if template.Name == name && template.DeletedAt == nil {
			return template, nil
		}
	}
	return models.Template{}, ErrNotFound
}

func (s *JSONStore) GetAllTemplates() ([]models.Template, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var templates []models.Template
	for _, template := range s.data.Templates {
		if template.DeletedAt == nil {
			templates = append(templates, template)
		}
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates, nil
}

func (s *JSONStore) UpdateTemplate(template models.Template) error {
	if err := s.loaded(); err != nil {
		return err
	}
	existing, ok := s.data.Templates[template.ID]
	if !ok || existing.DeletedAt != nil {
		return ErrNotFound
	}
	s.clearDefaultIf(template)
	s.data.Templates[template.ID] = template
	return s.save()
}

func (s *JSONStore) DeleteTemplate(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	template, ok := s.data.Templates[id]
	if !ok || template.DeletedAt != nil {
		return ErrNotFound
	}
	now := time.Now().UTC().Format(time.RFC3339)
	template.DeletedAt = &now
	template.IsDefault = false
	s.data.Templates[id] = template
	return s.save()
}

// Goals

func (s *JSONStore) AddGoal(goal models.ProductivityGoal) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	s.data.Goals[goal.ID] = goal
	return s.save()
}

func (s *JSONStore) GetGoal(id string) (models.ProductivityGoal, error) {
	if err := s.loaded(); err != nil {
		return models.ProductivityGoal{}, err
	}
	goal, ok := s.data.Goals[id]
	if !ok || goal.DeletedAt != nil {
		return models.ProductivityGoal{}, ErrNotFound
	}
	return goal, nil
}

func (s *JSONStore) GetAllGoals(includeDeleted bool) ([]models.ProductivityGoal, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var goals []models.ProductivityGoal
	for _, goal := range s.data.Goals {
		if includeDeleted || goal.DeletedAt == nil {
			goals = append(goals, goal)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].StartDate < goals[j].StartDate })
	return goals, nil
}

func (s *JSONStore) UpdateGoal(goal models.ProductivityGoal) error {
	if err := s.loaded(); err != nil {
		return err
	}
	existing, ok := s.data.Goals[goal.ID]
	if !ok || existing.DeletedAt != nil {
		return ErrNotFound
	}
	s.data.Goals[goal.ID] = goal
	return s.save()
}

func (s *JSONStore) DeleteGoal(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	goal, ok := s.data.Goals[id]
	if !ok || goal.DeletedAt != nil {
		return ErrNotFound
	}
	now := time.Now().UTC().Format(time.RFC3339)
	goal.DeletedAt = &now
	s.data.Goals[id] = goal
	return s.save()
}

// Missions

func (s *JSONStore) AddMission(mission models.Mission) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if mission.ID == "" {
		mission.ID = uuid.NewString()
	}
	if mission.CreatedAt.IsZero() {
		mission.CreatedAt = time.Now().UTC()
	}
	s.data.Missions[mission.ID] = mission
	return s.save()
}

func (s *JSONStore) GetMission(id string) (models.Mission, error) {
	if err := s.loaded(); err != nil {
		return models.Mission{}, err
	}
	mission, ok := s.data.Missions[id]
	if !ok || mission.DeletedAt != nil {
		return models.Mission{}, ErrNotFound
	}
	return mission, nil
}

func (s *JSONStore) GetAllMissions(includeCompleted bool) ([]models.Mission, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var missions []models.Mission
	for _, mission := range s.data.Missions {
		if mission.DeletedAt != nil {
			continue
		}
		if !includeCompleted && mission.Completed {
			continue
		}
		missions = append(missions, mission)
	}
	sort.Slice(missions, func(i, j int) bool { return missions[i].CreatedAt.Before(missions[j].CreatedAt) })
	return missions, nil
}

func (s *JSONStore) UpdateMission(mission models.Mission) error {
	if err := s.loaded(); err != nil {
		return err
	}
	existing, ok := s.data.Missions[mission.ID]
	if !ok || existing.DeletedAt != nil {
		return ErrNotFound
	}
	s.data.Missions[mission.ID] = mission
	return s.save()
}

func (s *JSONStore) DeleteMission(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	mission, ok := s.data.Missions[id]
	if !ok || mission.DeletedAt != nil {
		return ErrNotFound
	}
	now := time.Now().UTC().Format(time.RFC3339)
	mission.DeletedAt = &now
	s.data.Missions[id] = mission
	return s.save()
}

package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"daytrack/internal/constants"
	"daytrack/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "daytrack.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestJSONStoreInitTwiceFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daytrack.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("second Init should fail")
	}
}

func TestJSONStoreLoadNotInitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestJSONStoreSettingsDefaults(t *testing.T) {
	store := newTestJSONStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.StreakThreshold != constants.DefaultStreakTarget {
		t.Errorf("StreakThreshold = %v, want %v", settings.StreakThreshold, constants.DefaultStreakTarget)
	}
}

func TestJSONStoreReportRoundTrip(t *testing.T) {
	store := newTestJSONStore(t)

	report := models.DailyReport{
		Date: "2025-03-10",
		Tasks: []models.Task{
			{Title: "deep work", Weight: 60, CompletionPercent: 100},
			{Title: "exercise", Weight: 40, CompletionPercent: 50},
		},
		Notes: "solid day",
	}
	if err := store.SaveReport(report); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	// Reload from disk to prove persistence
	reloaded := NewJSONStore(store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, err := reloaded.GetReport("2025-03-10")
	if err != nil {
		t.Fatalf("GetReport failed: %v", err)
	}
	if got.ProductivityPercent != 80 {
		t.Errorf("ProductivityPercent = %v, want 80 (recomputed on save)", got.ProductivityPercent)
	}
	if got.Version != 1 {
		t.Errorf("Version = %d, want 1", got.Version)
	}
	if len(got.Tasks) != 2 || got.Tasks[0].ID == "" {
		t.Errorf("tasks not persisted with assigned IDs: %+v", got.Tasks)
	}
	if got.Notes != "solid day" {
		t.Errorf("Notes = %q", got.Notes)
	}
}

func TestJSONStoreSaveBumpsVersion(t *testing.T) {
	store := newTestJSONStore(t)

	report := models.DailyReport{
		Date:  "2025-03-10",
		Tasks: []models.Task{{Title: "a", Weight: 100, CompletionPercent: 50}},
	}
	if err := store.SaveReport(report); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	report.Tasks[0].CompletionPercent = 75
	if err := store.SaveReport(report); err != nil {
		t.Fatalf("second SaveReport failed: %v", err)
	}

	got, err := store.GetReport("2025-03-10")
	if err != nil {
		t.Fatalf("GetReport failed: %v", err)
	}
	if got.Version != 2 {
		t.Errorf("Version = %d, want 2", got.Version)
	}
	if got.ProductivityPercent != 75 {
		t.Errorf("ProductivityPercent = %v, want 75", got.ProductivityPercent)
	}
}

func TestJSONStoreSoftDeleteAndRestore(t *testing.T) {
	store := newTestJSONStore(t)

	report := models.DailyReport{
		Date:  "2025-03-10",
		Tasks: []models.Task{{Title: "a", Weight: 100, CompletionPercent: 90}},
	}
	if err := store.SaveReport(report); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	if err := store.DeleteReport("2025-03-10"); err != nil {
		t.Fatalf("DeleteReport failed: %v", err)
	}
	if _, err := store.GetReport("2025-03-10"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetReport after delete = %v, want ErrNotFound", err)
	}
	if err := store.SaveReport(report); err == nil {
		t.Error("SaveReport over a deleted date should fail")
	}

	if err := store.RestoreReport("2025-03-10"); err != nil {
		t.Fatalf("RestoreReport failed: %v", err)
	}
	got, err := store.GetReport("2025-03-10")
	if err != nil {
		t.Fatalf("GetReport after restore failed: %v", err)
	}
	if got.ProductivityPercent != 90 {
		t.Errorf("ProductivityPercent = %v, want 90", got.ProductivityPercent)
	}

	if err := store.DeleteReport("2025-03-11"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteReport of missing date = %v, want ErrNotFound", err)
	}
}

func TestJSONStoreReportOrdering(t *testing.T) {
	store := newTestJSONStore(t)

	for _, date := range []string{"2025-03-12", "2025-03-10", "2025-03-11"} {
		report := models.DailyReport{
			Date:  date,
			Tasks: []models.Task{{Title: "a", Weight: 100, CompletionPercent: 50}},
		}
		if err := store.SaveReport(report); err != nil {
			t.Fatalf("SaveReport(%s) failed: %v", date, err)
		}
	}

	asc, err := store.GetAllReports()
	if err != nil {
		t.Fatalf("GetAllReports failed: %v", err)
	}
	if asc[0].Date != "2025-03-10" || asc[2].Date != "2025-03-12" {
		t.Errorf("GetAllReports not ascending: %v %v %v", asc[0].Date, asc[1].Date, asc[2].Date)
	}

	recent, err := store.GetRecentReports(2)
	if err != nil {
		t.Fatalf("GetRecentReports failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Date != "2025-03-12" || recent[1].Date != "2025-03-11" {
		t.Errorf("GetRecentReports(2) = %+v", recent)
	}
}

func TestJSONStoreTemplateDefaultIsExclusive(t *testing.T) {
	store := newTestJSONStore(t)

	first := models.Template{Name: "weekday", IsDefault: true, Tasks: []models.TemplateTask{{Title: "work", Weight: 100}}}
	if err := store.AddTemplate(first); err != nil {
		t.Fatalf("AddTemplate failed: %v", err)
	}
	second := models.Template{Name: "weekend", IsDefault: true, Tasks: []models.TemplateTask{{Title: "rest", Weight: 100}}}
	if err := store.AddTemplate(second); err != nil {
		t.Fatalf("AddTemplate failed: %v", err)
	}

	templates, err := store.GetAllTemplates()
	if err != nil {
		t.Fatalf("GetAllTemplates failed: %v", err)
	}
	defaults := 0
	for _, template := range templates {
		if template.IsDefault {
			defaults++
			if template.Name != "weekend" {
				t.Errorf("default template = %q, want weekend", template.Name)
			}
		}
	}
	if defaults != 1 {
		t.Errorf("got %d default templates, want 1", defaults)
	}
}

func TestJSONStoreGoalLifecycle(t *testing.T) {
	store := newTestJSONStore(t)

	goal := models.ProductivityGoal{
		Title:            "march push",
		TargetPercentage: 75,
		Period:           constants.GoalPeriodMonthly,
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-31",
	}
	if err := store.AddGoal(goal); err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	goals, err := store.GetAllGoals(false)
	if err != nil {
		t.Fatalf("GetAllGoals failed: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("got %d goals, want 1", len(goals))
	}

	goals[0].TargetPercentage = 80
	if err := store.UpdateGoal(goals[0]); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}

	if err := store.DeleteGoal(goals[0].ID); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}
	if _, err := store.GetGoal(goals[0].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetGoal after delete = %v, want ErrNotFound", err)
	}

	all, err := store.GetAllGoals(true)
	if err != nil {
		t.Fatalf("GetAllGoals(true) failed: %v", err)
	}
	if len(all) != 1 || all[0].DeletedAt == nil {
		t.Errorf("deleted goal should still be visible with includeDeleted")
	}
}

func TestJSONStoreMissionFiltering(t *testing.T) {
	store := newTestJSONStore(t)

	done := models.Mission{Title: "finished already"}
	done.SetProgress(100)
	if err := store.AddMission(done); err != nil {
		t.Fatalf("AddMission failed: %v", err)
	}
	if err := store.AddMission(models.Mission{Title: "in flight", Progress: 30}); err != nil {
		t.Fatalf("AddMission failed: %v", err)
	}

	active, err := store.GetAllMissions(false)
	if err != nil {
		t.Fatalf("GetAllMissions failed: %v", err)
	}
	if len(active) != 1 || active[0].Title != "in flight" {
		t.Errorf("GetAllMissions(false) = %+v", active)
	}

	all, err := store.GetAllMissions(true)
	if err != nil {
		t.Fatalf("GetAllMissions(true) failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d missions, want 2", len(all))
	}
}

package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"daytrack/internal/models"
	"daytrack/internal/score"
	"daytrack/internal/storage"
)

func (s *Store) SaveReport(report models.DailyReport) error {
	if report.DeletedAt != nil {
		return fmt.Errorf("cannot save a report with deleted_at set; use DeleteReport and RestoreReport")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existingVersion int
	var deletedAt sql.NullString
	err = tx.QueryRow("SELECT version, deleted_at FROM reports WHERE date = $1", report.Date).
		Scan(&existingVersion, &deletedAt)
	switch {
	case err == sql.ErrNoRows:
		report.Version = 1
	case err != nil:
		return fmt.Errorf("failed to check existing report: %w", err)
	case deletedAt.Valid:
		return fmt.Errorf("cannot overwrite a deleted report for %s; restore it first", report.Date)
	default:
		report.Version = existingVersion + 1
	}

	report.ProductivityPercent = score.Productivity(report.Tasks)

	_, err = tx.Exec(`
		INSERT INTO reports (date, productivity, notes, version, deleted_at)
		VALUES ($1, $2, $3, $4, NULL)
		ON CONFLICT (date) DO UPDATE SET
			productivity = EXCLUDED.productivity,
			notes = EXCLUDED.notes,
			version = EXCLUDED.version,
			deleted_at = NULL`,
		report.Date, report.ProductivityPercent, report.Notes, report.Version,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM report_tasks WHERE report_date = $1", report.Date); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO report_tasks (id, report_date, position, title, weight, completion, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, task := range report.Tasks {
		if task.ID == "" {
			task.ID = uuid.NewString()
		}
		if _, err := stmt.Exec(task.ID, report.Date, i, task.Title, task.Weight, task.CompletionPercent, task.Category); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetReport(date string) (models.DailyReport, error) {
	row := s.db.QueryRow(
		"SELECT date, productivity, notes, version FROM reports WHERE date = $1 AND deleted_at IS NULL",
		date,
	)

	var report models.DailyReport
	err := row.Scan(&report.Date, &report.ProductivityPercent, &report.Notes, &report.Version)
	if err == sql.ErrNoRows {
		return models.DailyReport{}, storage.ErrNotFound
	}
	if err != nil {
		return models.DailyReport{}, err
	}

	report.Tasks, err = s.loadTasks(date)
	if err != nil {
		return models.DailyReport{}, err
	}
	return report, nil
}

func (s *Store) loadTasks(date string) ([]models.Task, error) {
	rows, err := s.db.Query(
		"SELECT id, title, weight, completion, category FROM report_tasks WHERE report_date = $1 ORDER BY position",
		date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Weight, &t.CompletionPercent, &t.Category); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) GetAllReports() ([]models.DailyReport, error) {
	return s.queryReports("SELECT date, productivity, notes, version FROM reports WHERE deleted_at IS NULL ORDER BY date ASC")
}

func (s *Store) GetRecentReports(limit int) ([]models.DailyReport, error) {
	query := "SELECT date, productivity, notes, version FROM reports WHERE deleted_at IS NULL ORDER BY date DESC"
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}
	return s.queryReports(query)
}

func (s *Store) queryReports(query string) ([]models.DailyReport, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []models.DailyReport
	for rows.Next() {
		var report models.DailyReport
		if err := rows.Scan(&report.Date, &report.ProductivityPercent, &report.Notes, &report.Version); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range reports {
		tasks, err := s.loadTasks(reports[i].Date)
		if err != nil {
			return nil, err
		}
		reports[i].Tasks = tasks
	}
	return reports, nil
}

func (s *Store) DeleteReport(date string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	result, err := s.db.Exec(
		"UPDATE reports SET deleted_at = $1 WHERE date = $2 AND deleted_at IS NULL",
		now, date,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (s *Store) RestoreReport(date string) error {
	result, err := s.db.Exec(
		"UPDATE reports SET deleted_at = NULL WHERE date = $1 AND deleted_at IS NOT NULL",
		date,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

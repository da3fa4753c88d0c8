package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"daytrack/internal/models"
	"daytrack/internal/storage"
)

func (s *Store) AddTemplate(template models.Template) error {
	if template.ID == "" {
		template.ID = uuid.NewString()
	}
	return s.writeTemplate(template, true)
}

func (s *Store) UpdateTemplate(template models.Template) error {
	return s.writeTemplate(template, false)
}

func (s *Store) writeTemplate(template models.Template, insert bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if !insert {
		var exists int
		err := tx.QueryRow("SELECT 1 FROM templates WHERE id = $1 AND deleted_at IS NULL", template.ID).Scan(&exists)
		if err == sql.ErrNoRows {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
	}

	if template.IsDefault {
		if _, err := tx.Exec("UPDATE templates SET is_default = FALSE WHERE id != $1", template.ID); err != nil {
			return err
		}
	}

	_, err = tx.Exec(`
		INSERT INTO templates (id, name, is_default, deleted_at) VALUES ($1, $2, $3, NULL)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			is_default = EXCLUDED.is_default,
			deleted_at = NULL`,
		template.ID, template.Name, template.IsDefault,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM template_tasks WHERE template_id = $1", template.ID); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO template_tasks (template_id, position, title, weight, category) VALUES ($1, $2, $3, $4, $5)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, task := range template.Tasks {
		if _, err := stmt.Exec(template.ID, i, task.Title, task.Weight, task.Category); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetTemplate(id string) (models.Template, error) {
	row := s.db.QueryRow("SELECT id, name, is_default FROM templates WHERE id = $1 AND deleted_at IS NULL", id)
	return s.scanTemplate(row)
}

func (s *Store) GetTemplateByName(name string) (models.Template, error) {
	row := s.db.QueryRow("SELECT id, name, is_default FROM templates WHERE name = $1 AND deleted_at IS NULL", name)
	return s.scanTemplate(row)
}

func (s *Store) scanTemplate(row *sql.Row) (models.Template, error) {
	var template models.Template
	err := row.Scan(&template.ID, &template.Name, &template.IsDefault)
	if err == sql.ErrNoRows {
		return models.Template{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Template{}, err
	}

	template.Tasks, err = s.loadTemplateTasks(template.ID)
	return template, err
}

func (s *Store) loadTemplateTasks(templateID string) ([]models.TemplateTask, error) {
	rows, err := s.db.Query(
		"SELECT title, weight, category FROM template_tasks WHERE template_id = $1 ORDER BY position",
		templateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.TemplateTask
	for rows.Next() {
		var t models.TemplateTask
		if err := rows.Scan(&t.Title, &t.Weight, &t.Category); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) GetAllTemplates() ([]models.Template, error) {
	rows, err := s.db.Query("SELECT id, name, is_default FROM templates WHERE deleted_at IS NULL ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		var template models.Template
		if err := rows.Scan(&template.ID, &template.Name, &template.IsDefault); err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range templates {
		tasks, err := s.loadTemplateTasks(templates[i].ID)
		if err != nil {
			return nil, err
		}
		templates[i].Tasks = tasks
	}
	return templates, nil
}

func (s *Store) DeleteTemplate(id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	result, err := s.db.Exec(
		"UPDATE templates SET deleted_at = $1, is_default = FALSE WHERE id = $2 AND deleted_at IS NULL",
		now, id,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

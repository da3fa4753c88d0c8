package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"daytrack/internal/models"
	"daytrack/internal/storage"
)

func (s *Store) AddMission(mission models.Mission) error {
	if mission.ID == "" {
		mission.ID = uuid.NewString()
	}
	if mission.CreatedAt.IsZero() {
		mission.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		"INSERT INTO missions (id, title, description, progress, completed, created_at, deleted_at) VALUES ($1, $2, $3, $4, $5, $6, NULL)",
		mission.ID, mission.Title, mission.Description, mission.Progress, mission.Completed,
		mission.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetMission(id string) (models.Mission, error) {
	row := s.db.QueryRow(
		"SELECT id, title, description, progress, completed, created_at FROM missions WHERE id = $1 AND deleted_at IS NULL",
		id,
	)

	var mission models.Mission
	var createdAt string
	err := row.Scan(&mission.ID, &mission.Title, &mission.Description, &mission.Progress, &mission.Completed, &createdAt)
	if err == sql.ErrNoRows {
		return models.Mission{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Mission{}, err
	}

	mission.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Mission{}, fmt.Errorf("parsing mission created_at: %w", err)
	}
	return mission, nil
}

func (s *Store) GetAllMissions(includeCompleted bool) ([]models.Mission, error) {
	query := "SELECT id, title, description, progress, completed, created_at FROM missions WHERE deleted_at IS NULL"
	if !includeCompleted {
		query += " AND completed = FALSE"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var missions []models.Mission
	for rows.Next() {
		var mission models.Mission
		var createdAt string
		if err := rows.Scan(&mission.ID, &mission.Title, &mission.Description, &mission.Progress, &mission.Completed, &createdAt); err != nil {
			return nil, err
		}
		mission.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing mission created_at: %w", err)
		}
		missions = append(missions, mission)
	}
	return missions, rows.Err()
}

func (s *Store) UpdateMission(mission models.Mission) error {
	result, err := s.db.Exec(
		"UPDATE missions SET title = $1, description = $2, progress = $3, completed = $4 WHERE id = $5 AND deleted_at IS NULL",
		mission.Title, mission.Description, mission.Progress, mission.Completed, mission.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (s *Store) DeleteMission(id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	result, err := s.db.Exec(
		"UPDATE missions SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL",
		now, id,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

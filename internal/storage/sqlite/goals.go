package sqlite

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"daytrack/internal/constants"
	"daytrack/internal/models"
	"daytrack/internal/storage"
)

func (s *Store) AddGoal(goal models.ProductivityGoal) error {
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		"INSERT INTO goals (id, title, target, period, start_date, end_date, deleted_at) VALUES (?, ?, ?, ?, ?, ?, NULL)",
		goal.ID, goal.Title, goal.TargetPercentage, string(goal.Period), goal.StartDate, goal.EndDate,
	)
	return err
}

func (s *Store) GetGoal(id string) (models.ProductivityGoal, error) {
	row := s.db.QueryRow(
		"SELECT id, title, target, period, start_date, end_date FROM goals WHERE id = ? AND deleted_at IS NULL",
		id,
	)

	var goal models.ProductivityGoal
	var period string
	err := row.Scan(&goal.ID, &goal.Title, &goal.TargetPercentage, &period, &goal.StartDate, &goal.EndDate)
	if err == sql.ErrNoRows {
		return models.ProductivityGoal{}, storage.ErrNotFound
	}
	if err != nil {
		return models.ProductivityGoal{}, err
	}
	goal.Period = constants.GoalPeriod(period)
	return goal, nil
}

func (s *Store) GetAllGoals(includeDeleted bool) ([]models.ProductivityGoal, error) {
	query := "SELECT id, title, target, period, start_date, end_date, deleted_at FROM goals"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY start_date"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.ProductivityGoal
	for rows.Next() {
		var goal models.ProductivityGoal
		var period string
		var deletedAt sql.NullString
		if err := rows.Scan(&goal.ID, &goal.Title, &goal.TargetPercentage, &period, &goal.StartDate, &goal.EndDate, &deletedAt); err != nil {
			return nil, err
		}
		goal.Period = constants.GoalPeriod(period)
		if deletedAt.Valid {
			goal.DeletedAt = &deletedAt.String
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (s *Store) UpdateGoal(goal models.ProductivityGoal) error {
	result, err := s.db.Exec(
		"UPDATE goals SET title = ?, target = ?, period = ?, start_date = ?, end_date = ? WHERE id = ? AND deleted_at IS NULL",
		goal.Title, goal.TargetPercentage, string(goal.Period), goal.StartDate, goal.EndDate, goal.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (s *Store) DeleteGoal(id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	result, err := s.db.Exec(
		"UPDATE goals SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL",
		now, id,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

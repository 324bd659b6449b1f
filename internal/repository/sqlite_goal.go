package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/inkstone-app/inkstone/internal/db"
	"github.com/inkstone-app/inkstone/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

const goalColumns = `id, user_id, title, goal_type, category, why, status, created_at, updated_at`

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.UserID,
		g.Title,
		string(g.Type),
		g.Category,
		g.Why,
		string(g.Status),
		formatTime(g.CreatedAt),
		formatTime(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	return scanGoal(row)
}

func (r *SQLiteGoalRepo) ListByUserAndStatuses(ctx context.Context, userID string, statuses ...domain.GoalStatus) ([]*domain.Goal, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(statuses))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, 0, len(statuses)+1)
	args = append(args, userID)
	for _, s := range statuses {
		args = append(args, string(s))
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM goals
		WHERE user_id = ? AND status IN (`+placeholders+`)
		ORDER BY created_at ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET title = ?, goal_type = ?, category = ?, why = ?,
		status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Title,
		string(g.Type),
		g.Category,
		g.Why,
		string(g.Status),
		formatTime(g.UpdatedAt),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal %s: %w", g.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var goalType, status, createdAt, updatedAt string
	err := row.Scan(
		&g.ID,
		&g.UserID,
		&g.Title,
		&goalType,
		&g.Category,
		&g.Why,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	g.Type = domain.GoalType(goalType)
	g.Status = domain.GoalStatus(status)
	g.CreatedAt = parseTime(createdAt)
	g.UpdatedAt = parseTime(updatedAt)
	return &g, nil
}

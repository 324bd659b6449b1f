package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inkstone-app/inkstone/internal/db"
	"github.com/inkstone-app/inkstone/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

const userColumns = `id, email, name, current_role, life_phase, focus_areas,
	insight_style, ai_enabled, reminders_enabled, created_at, updated_at`

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Email,
		u.Name,
		u.CurrentRole,
		u.LifePhase,
		encodeStrings(u.FocusAreas),
		string(u.InsightStyle),
		boolToInt(u.AIEnabled),
		boolToInt(u.RemindersEnabled),
		formatTime(u.CreatedAt),
		formatTime(u.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *SQLiteUserRepo) ListRemindersEnabled(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE reminders_enabled = 1 ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing reminder-enabled users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email = ?, name = ?, current_role = ?, life_phase = ?,
		focus_areas = ?, insight_style = ?, ai_enabled = ?, reminders_enabled = ?,
		updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		u.Email,
		u.Name,
		u.CurrentRole,
		u.LifePhase,
		encodeStrings(u.FocusAreas),
		string(u.InsightStyle),
		boolToInt(u.AIEnabled),
		boolToInt(u.RemindersEnabled),
		formatTime(u.UpdatedAt),
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", u.ID, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var focusAreas, style, createdAt, updatedAt string
	var aiEnabled, remindersEnabled int
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.CurrentRole,
		&u.LifePhase,
		&focusAreas,
		&style,
		&aiEnabled,
		&remindersEnabled,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.FocusAreas = decodeStrings(focusAreas)
	u.InsightStyle = domain.InsightStyle(style)
	u.AIEnabled = intToBool(aiEnabled)
	u.RemindersEnabled = intToBool(remindersEnabled)
	u.CreatedAt = parseTime(createdAt)
	u.UpdatedAt = parseTime(updatedAt)
	return &u, nil
}

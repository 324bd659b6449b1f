package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inkstone-app/inkstone/internal/db"
	"github.com/inkstone-app/inkstone/internal/domain"
)

// SQLiteInsightRepo implements InsightRepo using a SQLite database.
type SQLiteInsightRepo struct {
	db db.DBTX
}

// NewSQLiteInsightRepo creates a new SQLiteInsightRepo.
func NewSQLiteInsightRepo(conn db.DBTX) *SQLiteInsightRepo {
	return &SQLiteInsightRepo{db: conn}
}

const insightColumns = `id, user_id, week_start, week_end, journal_count,
	reflection, goal_summaries, suggestion, generated_at, source_version`

func (r *SQLiteInsightRepo) FindByWeek(ctx context.Context, userID string, weekStart time.Time) (*domain.WeeklyInsight, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+insightColumns+` FROM weekly_insights
		WHERE user_id = ? AND week_start = ?`,
		userID, formatTime(weekStart))
	return scanInsight(row)
}

func (r *SQLiteInsightRepo) Upsert(ctx context.Context, ins *domain.WeeklyInsight) (*domain.WeeklyInsight, error) {
	reflection, err := json.Marshal(ins.Reflection)
	if err != nil {
		return nil, fmt.Errorf("encoding reflection: %w", err)
	}
	summaries := ins.GoalSummaries
	if summaries == nil {
		summaries = []domain.GoalSummary{}
	}
	summariesJSON, err := json.Marshal(summaries)
	if err != nil {
		return nil, fmt.Errorf("encoding goal summaries: %w", err)
	}

	id := ins.ID
	if id == "" {
		id = uuid.NewString()
	}

	// The unique (user_id, week_start) index makes concurrent upserts for
	// the same week converge on a single row, last write wins.
	query := `INSERT INTO weekly_insights (` + insightColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, week_start) DO UPDATE SET
			week_end = excluded.week_end,
			journal_count = excluded.journal_count,
			reflection = excluded.reflection,
			goal_summaries = excluded.goal_summaries,
			suggestion = excluded.suggestion,
			generated_at = excluded.generated_at,
			source_version = excluded.source_version`
	_, err = r.db.ExecContext(ctx, query,
		id,
		ins.UserID,
		formatTime(ins.WeekStart),
		formatTime(ins.WeekEnd),
		ins.JournalCount,
		string(reflection),
		string(summariesJSON),
		ins.Suggestion,
		formatTime(ins.GeneratedAt),
		ins.SourceVersion,
	)
	if err != nil {
		return nil, fmt.Errorf("upserting weekly insight: %w", err)
	}

	return r.FindByWeek(ctx, ins.UserID, ins.WeekStart)
}

func (r *SQLiteInsightRepo) MarkStale(ctx context.Context, userID string, weekStart time.Time, version int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE weekly_insights SET source_version = ?
		WHERE user_id = ? AND week_start = ?`,
		version, userID, formatTime(weekStart))
	if err != nil {
		return fmt.Errorf("marking insight stale: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking insight stale: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("insight for user %s week %s: %w",
			userID, formatTime(weekStart), ErrNotFound)
	}
	return nil
}

func scanInsight(row rowScanner) (*domain.WeeklyInsight, error) {
	var ins domain.WeeklyInsight
	var weekStart, weekEnd, reflection, summaries, generatedAt string
	err := row.Scan(
		&ins.ID,
		&ins.UserID,
		&weekStart,
		&weekEnd,
		&ins.JournalCount,
		&reflection,
		&summaries,
		&ins.Suggestion,
		&generatedAt,
		&ins.SourceVersion,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("weekly insight: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning weekly insight: %w", err)
	}
	ins.WeekStart = parseTime(weekStart)
	ins.WeekEnd = parseTime(weekEnd)
	ins.GeneratedAt = parseTime(generatedAt)
	if err := json.Unmarshal([]byte(reflection), &ins.Reflection); err != nil {
		return nil, fmt.Errorf("decoding reflection: %w", err)
	}
	if err := json.Unmarshal([]byte(summaries), &ins.GoalSummaries); err != nil {
		return nil, fmt.Errorf("decoding goal summaries: %w", err)
	}
	return &ins, nil
}

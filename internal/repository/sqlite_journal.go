package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/inkstone-app/inkstone/internal/db"
	"github.com/inkstone-app/inkstone/internal/domain"
)

// SQLiteJournalRepo implements JournalRepo using a SQLite database.
type SQLiteJournalRepo struct {
	db db.DBTX
}

// NewSQLiteJournalRepo creates a new SQLiteJournalRepo.
func NewSQLiteJournalRepo(conn db.DBTX) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: conn}
}

const journalColumns = `id, user_id, entry_date, entry_type, what_happened, wins,
	challenges, gratitude, lessons_learned, mood_score, energy_level, tags,
	private, created_at, updated_at`

func (r *SQLiteJournalRepo) Create(ctx context.Context, e *domain.JournalEntry) error {
	query := `INSERT INTO journal_entries (` + journalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		formatTime(e.Date),
		string(e.Type),
		e.WhatHappened,
		encodeStrings(e.Wins),
		encodeStrings(e.Challenges),
		encodeStrings(e.Gratitude),
		e.LessonsLearned,
		e.MoodScore,
		e.EnergyLevel,
		encodeStrings(e.Tags),
		boolToInt(e.Private),
		formatTime(e.CreatedAt),
		formatTime(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+journalColumns+` FROM journal_entries WHERE id = ?`, id)
	return scanJournalEntry(row)
}

func (r *SQLiteJournalRepo) ListByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+journalColumns+` FROM journal_entries
		WHERE user_id = ? AND entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date ASC, created_at ASC`,
		userID, formatTime(start), formatTime(end))
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.JournalEntry
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLiteJournalRepo) CountCreatedBetween(ctx context.Context, userID string, start, end time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM journal_entries
		WHERE user_id = ? AND created_at >= ? AND created_at < ?`,
		userID, formatTime(start), formatTime(end)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting journal entries: %w", err)
	}
	return count, nil
}

func (r *SQLiteJournalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("journal entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanJournalEntry(row rowScanner) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	var date, entryType, wins, challenges, gratitude, tags, createdAt, updatedAt string
	var private int
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&date,
		&entryType,
		&e.WhatHappened,
		&wins,
		&challenges,
		&gratitude,
		&e.LessonsLearned,
		&e.MoodScore,
		&e.EnergyLevel,
		&tags,
		&private,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("journal entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}
	e.Date = parseTime(date)
	e.Type = domain.EntryType(entryType)
	e.Wins = decodeStrings(wins)
	e.Challenges = decodeStrings(challenges)
	e.Gratitude = decodeStrings(gratitude)
	e.Tags = decodeStrings(tags)
	e.Private = intToBool(private)
	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)
	return &e, nil
}

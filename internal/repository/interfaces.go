package repository

import (
	"context"
	"errors"
	"time"

	"github.com/inkstone-app/inkstone/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListRemindersEnabled(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type JournalRepo interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	// ListByUserAndDateRange returns entries with start <= date <= end,
	// ascending by date.
	ListByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.JournalEntry, error)
	// CountCreatedBetween counts entries by creation time in [start, end).
	CountCreatedBetween(ctx context.Context, userID string, start, end time.Time) (int, error)
	Delete(ctx context.Context, id string) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListByUserAndStatuses(ctx context.Context, userID string, statuses ...domain.GoalStatus) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type InsightRepo interface {
	// FindByWeek returns the insight stored for the exact (userID, weekStart)
	// pair, or ErrNotFound.
	FindByWeek(ctx context.Context, userID string, weekStart time.Time) (*domain.WeeklyInsight, error)
	// Upsert inserts or wholesale-replaces the record for
	// (ins.UserID, ins.WeekStart) and returns the persisted row. The
	// unique index guarantees concurrent upserts converge to one record.
	Upsert(ctx context.Context, ins *domain.WeeklyInsight) (*domain.WeeklyInsight, error)
	// MarkStale overwrites the record's source version, typically with a
	// value below the current one so the next generation misses the cache.
	MarkStale(ctx context.Context, userID string, weekStart time.Time, version int) error
}

package service

import (
	"context"

	"github.com/inkstone-app/inkstone/internal/domain"
)

type UserService interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type JournalService interface {
	Create(ctx context.Context, e *domain.JournalEntry) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	ListWeek(ctx context.Context, userID, weekStartKey string) ([]*domain.JournalEntry, error)
	Delete(ctx context.Context, id string) error
}

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	ListActive(ctx context.Context, userID string) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

// InsightInvalidator marks a cached weekly insight stale. Services call
// it after journal and goal mutations; the call never fails the mutation.
type InsightInvalidator interface {
	InvalidateInsight(ctx context.Context, userID, weekStartKey string)
}

// NoopInvalidator satisfies InsightInvalidator without doing anything,
// for services wired without an insight engine.
type NoopInvalidator struct{}

func (NoopInvalidator) InvalidateInsight(context.Context, string, string) {}

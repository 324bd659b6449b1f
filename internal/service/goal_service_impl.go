package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inkstone-app/inkstone/internal/domain"
	"github.com/inkstone-app/inkstone/internal/repository"
	"github.com/inkstone-app/inkstone/internal/timeutil"
)

type goalService struct {
	goals       repository.GoalRepo
	invalidator InsightInvalidator
	obs         UseCaseObserver
	now         func() time.Time
}

func NewGoalService(goals repository.GoalRepo, invalidator InsightInvalidator, observers ...UseCaseObserver) GoalService {
	if invalidator == nil {
		invalidator = NoopInvalidator{}
	}
	return &goalService{
		goals:       goals,
		invalidator: invalidator,
		obs:         useCaseObserverOrNoop(observers),
		now:         time.Now,
	}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	return observe(ctx, s.obs, "goal.create", map[string]any{"user_id": g.UserID}, func() error {
		if err := validateGoal(g); err != nil {
			return err
		}
		if g.ID == "" {
			g.ID = uuid.New().String()
		}
		if g.Status == "" {
			g.Status = domain.GoalActive
		}
		now := s.now().UTC()
		g.CreatedAt = now
		g.UpdatedAt = now
		if err := s.goals.Create(ctx, g); err != nil {
			return err
		}
		s.invalidateCurrentWeek(ctx, g.UserID)
		return nil
	})
}

func (s *goalService) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalService) ListActive(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return s.goals.ListByUserAndStatuses(ctx, userID, domain.GoalActive)
}

func (s *goalService) Update(ctx context.Context, g *domain.Goal) error {
	return observe(ctx, s.obs, "goal.update", map[string]any{"goal_id": g.ID}, func() error {
		if err := validateGoal(g); err != nil {
			return err
		}
		g.UpdatedAt = s.now().UTC()
		if err := s.goals.Update(ctx, g); err != nil {
			return err
		}
		s.invalidateCurrentWeek(ctx, g.UserID)
		return nil
	})
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	return observe(ctx, s.obs, "goal.delete", map[string]any{"goal_id": id}, func() error {
		g, err := s.goals.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return err
			}
			return fmt.Errorf("loading goal %s: %w", id, err)
		}
		if err := s.goals.Delete(ctx, id); err != nil {
			return err
		}
		s.invalidateCurrentWeek(ctx, g.UserID)
		return nil
	})
}

// Goal changes affect how this week's journals read against the goal
// list, so the current week's cached insight goes stale.
func (s *goalService) invalidateCurrentWeek(ctx context.Context, userID string) {
	weekStart := timeutil.WeekStart(s.now().UTC())
	s.invalidator.InvalidateInsight(ctx, userID, timeutil.FormatDateKey(weekStart))
}

func validateGoal(g *domain.Goal) error {
	if g.UserID == "" {
		return errors.New("goal requires a user id")
	}
	if g.Title == "" {
		return errors.New("goal requires a title")
	}
	if !domain.ValidGoalTypes[string(g.Type)] {
		return fmt.Errorf("invalid goal type %q", g.Type)
	}
	if !domain.ValidGoalCategories[g.Category] {
		return fmt.Errorf("invalid goal category %q", g.Category)
	}
	if g.Status != "" && !domain.ValidGoalStatuses[string(g.Status)] {
		return fmt.Errorf("invalid goal status %q", g.Status)
	}
	return nil
}

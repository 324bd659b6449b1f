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

type journalService struct {
	journals    repository.JournalRepo
	invalidator InsightInvalidator
	obs         UseCaseObserver
}

func NewJournalService(journals repository.JournalRepo, invalidator InsightInvalidator, observers ...UseCaseObserver) JournalService {
	if invalidator == nil {
		invalidator = NoopInvalidator{}
	}
	return &journalService{
		journals:    journals,
		invalidator: invalidator,
		obs:         useCaseObserverOrNoop(observers),
	}
}

func (s *journalService) Create(ctx context.Context, e *domain.JournalEntry) error {
	return observe(ctx, s.obs, "journal.create", map[string]any{"user_id": e.UserID}, func() error {
		if err := validateEntry(e); err != nil {
			return err
		}
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		e.Date = timeutil.Normalize(e.Date)
		now := time.Now().UTC()
		e.CreatedAt = now
		e.UpdatedAt = now
		if err := s.journals.Create(ctx, e); err != nil {
			return err
		}
		s.invalidateWeek(ctx, e.UserID, e.Date)
		return nil
	})
}

func (s *journalService) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return s.journals.GetByID(ctx, id)
}

func (s *journalService) ListWeek(ctx context.Context, userID, weekStartKey string) ([]*domain.JournalEntry, error) {
	day, err := timeutil.ParseDateKey(weekStartKey)
	if err != nil {
		return nil, err
	}
	start := timeutil.Normalize(day)
	end := timeutil.Normalize(timeutil.WeekEnd(day))
	return s.journals.ListByUserAndDateRange(ctx, userID, start, end)
}

func (s *journalService) Delete(ctx context.Context, id string) error {
	return observe(ctx, s.obs, "journal.delete", map[string]any{"entry_id": id}, func() error {
		e, err := s.journals.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return err
			}
			return fmt.Errorf("loading entry %s: %w", id, err)
		}
		if err := s.journals.Delete(ctx, id); err != nil {
			return err
		}
		s.invalidateWeek(ctx, e.UserID, e.Date)
		return nil
	})
}

// invalidateWeek stales the insight covering the entry's calendar week.
// Best-effort: the insight engine logs its own failures.
func (s *journalService) invalidateWeek(ctx context.Context, userID string, date time.Time) {
	weekStart := timeutil.WeekStart(date)
	s.invalidator.InvalidateInsight(ctx, userID, timeutil.FormatDateKey(weekStart))
}

func validateEntry(e *domain.JournalEntry) error {
	if e.UserID == "" {
		return errors.New("journal entry requires a user id")
	}
	if e.Date.IsZero() {
		return errors.New("journal entry requires a date")
	}
	if e.Type == "" {
		e.Type = domain.EntryAnytime
	}
	if !domain.ValidEntryTypes[string(e.Type)] {
		return fmt.Errorf("invalid entry type %q", e.Type)
	}
	if e.MoodScore < 0 || e.MoodScore > 10 {
		return fmt.Errorf("mood score %d out of range 0-10", e.MoodScore)
	}
	if e.EnergyLevel < 0 || e.EnergyLevel > 10 {
		return fmt.Errorf("energy level %d out of range 0-10", e.EnergyLevel)
	}
	return nil
}

package insight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/inkstone-app/inkstone/internal/ai"
	"github.com/inkstone-app/inkstone/internal/domain"
	"github.com/inkstone-app/inkstone/internal/repository"
	"github.com/inkstone-app/inkstone/internal/timeutil"
)

// CurrentSourceVersion is the generation logic revision stamped on every
// insight. Bump it to invalidate all cached insights at once; it is a
// cache key, not a data migration marker.
const CurrentSourceVersion = 1

var (
	// ErrUserNotFound indicates the user profile lookup returned nothing.
	// Fatal for the generation call, never retried internally.
	ErrUserNotFound = errors.New("user not found")

	// ErrAIGenerationFailed wraps a classified completion client failure.
	// Callers decide retry policy; the engine does not retry.
	ErrAIGenerationFailed = errors.New("insight generation failed")

	// ErrMalformedAIResponse indicates the model returned data violating
	// the output contract. Nothing is persisted in that case.
	ErrMalformedAIResponse = errors.New("malformed insight response")
)

// Engine generates, caches, and invalidates weekly insights. One record
// exists per (user, weekStart); a stored record whose SourceVersion
// matches CurrentSourceVersion is returned without touching the model.
type Engine struct {
	journals repository.JournalRepo
	goals    repository.GoalRepo
	users    repository.UserRepo
	insights repository.InsightRepo
	client   ai.Client
	logger   *slog.Logger
	now      func() time.Time
	group    singleflight.Group
}

// NewEngine wires an Engine from its collaborators. A nil logger
// discards log output.
func NewEngine(
	journals repository.JournalRepo,
	goals repository.GoalRepo,
	users repository.UserRepo,
	insights repository.InsightRepo,
	client ai.Client,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		journals: journals,
		goals:    goals,
		users:    users,
		insights: insights,
		client:   client,
		logger:   logger,
		now:      time.Now,
	}
}

// GetInsight returns the stored insight for the exact normalized week
// start, or (nil, nil) when none exists. It never generates.
func (e *Engine) GetInsight(ctx context.Context, userID, weekStartKey string) (*domain.WeeklyInsight, error) {
	day, err := timeutil.ParseDateKey(weekStartKey)
	if err != nil {
		return nil, err
	}
	weekStart := timeutil.Normalize(day)

	ins, err := e.insights.FindByWeek(ctx, userID, weekStart)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading insight: %w", err)
	}
	return ins, nil
}

// GenerateInsight returns the cached insight for (userID, weekStartKey)
// when its source version is current, otherwise generates a fresh one:
// fetch the week's journals, the user's non-archived goals and profile,
// prompt the model, validate its output, cross-reference goal ids, and
// upsert the record. Concurrent calls for the same (user, week) share a
// single in-flight generation.
func (e *Engine) GenerateInsight(ctx context.Context, userID, weekStartKey string) (*domain.WeeklyInsight, error) {
	day, err := timeutil.ParseDateKey(weekStartKey)
	if err != nil {
		return nil, err
	}
	weekStart := timeutil.Normalize(day)
	weekEnd := timeutil.Normalize(timeutil.WeekEnd(day))

	key := userID + "|" + timeutil.FormatDateKey(weekStart)
	v, err, _ := e.group.Do(key, func() (any, error) {
		return e.generate(ctx, userID, weekStart, weekEnd)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.WeeklyInsight), nil
}

func (e *Engine) generate(ctx context.Context, userID string, weekStart, weekEnd time.Time) (*domain.WeeklyInsight, error) {
	existing, err := e.insights.FindByWeek(ctx, userID, weekStart)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading cached insight: %w", err)
	}
	if existing != nil && existing.SourceVersion == CurrentSourceVersion {
		e.logger.Info("returning cached insight",
			"user_id", userID, "week_start", timeutil.FormatDateKey(weekStart))
		return existing, nil
	}

	e.logger.Info("generating insight",
		"user_id", userID, "week_start", timeutil.FormatDateKey(weekStart))

	// The three fetches are independent; run them concurrently.
	var (
		entries []*domain.JournalEntry
		goals   []*domain.Goal
		user    *domain.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = e.journals.ListByUserAndDateRange(gctx, userID, weekStart, weekEnd)
		if err != nil {
			return fmt.Errorf("loading journal entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		goals, err = e.goals.ListByUserAndStatuses(gctx, userID, domain.InsightGoalStatuses...)
		if err != nil {
			return fmt.Errorf("loading goals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		user, err = e.users.GetByID(gctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
			}
			return fmt.Errorf("loading user: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(user, entries, goals, weekStart, weekEnd)

	raw, err := e.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAIGenerationFailed, err)
	}

	parsed, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	summaries := e.crossReference(parsed.GoalSummaries, goals)

	ins, err := e.insights.Upsert(ctx, &domain.WeeklyInsight{
		UserID:        userID,
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		JournalCount:  len(entries),
		Reflection:    parsed.Reflection,
		GoalSummaries: summaries,
		Suggestion:    parsed.Suggestion,
		GeneratedAt:   e.now().UTC(),
		SourceVersion: CurrentSourceVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("persisting insight: %w", err)
	}
	return ins, nil
}

// crossReference keeps only summaries whose goalId matches a goal
// fetched for this generation, and replaces the title with the stored
// one. Unmatched ids are dropped with a warning, never fatal: the model
// is an untrusted generator and must not corrupt relational integrity.
func (e *Engine) crossReference(raw []aiGoalSummary, goals []*domain.Goal) []domain.GoalSummary {
	byID := make(map[string]*domain.Goal, len(goals))
	for _, g := range goals {
		byID[g.ID] = g
	}

	summaries := make([]domain.GoalSummary, 0, len(raw))
	for _, gs := range raw {
		goal, ok := byID[gs.GoalID]
		if !ok {
			e.logger.Warn("dropping goal summary with unknown goal id", "goal_id", gs.GoalID)
			continue
		}
		// Status already validated during parsing.
		status, _ := domain.ParseAlignmentStatus(gs.Status)
		summaries = append(summaries, domain.GoalSummary{
			GoalID:      goal.ID,
			GoalTitle:   goal.Title,
			Status:      status,
			Explanation: gs.Explanation,
		})
	}
	return summaries
}

// InvalidateInsight marks the stored record stale by lowering its source
// version, so the next GenerateInsight regenerates. Best-effort: all
// failures are logged, none surfaced, and nothing is deleted.
func (e *Engine) InvalidateInsight(ctx context.Context, userID, weekStartKey string) {
	day, err := timeutil.ParseDateKey(weekStartKey)
	if err != nil {
		e.logger.Warn("invalidate skipped", "user_id", userID, "week_start", weekStartKey, "error", err)
		return
	}
	weekStart := timeutil.Normalize(day)

	if err := e.insights.MarkStale(ctx, userID, weekStart, CurrentSourceVersion-1); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return // nothing cached, nothing to invalidate
		}
		e.logger.Warn("invalidating insight failed",
			"user_id", userID, "week_start", weekStartKey, "error", err)
		return
	}
	e.logger.Info("invalidated insight",
		"user_id", userID, "week_start", timeutil.FormatDateKey(weekStart))
}

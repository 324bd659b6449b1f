package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/inkstone-app/inkstone/internal/domain"
	"github.com/inkstone-app/inkstone/internal/repository"
	"github.com/inkstone-app/inkstone/internal/timeutil"
)

// Notifier delivers one journaling reminder. Implementations decide the
// channel; the sweep only cares whether delivery succeeded.
type Notifier interface {
	Notify(ctx context.Context, user *domain.User, message string) error
}

// NewLogNotifier returns a Notifier that writes reminders to w instead
// of delivering them anywhere. Useful for local runs and tests.
func NewLogNotifier(w io.Writer) Notifier {
	return &logNotifier{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) Notify(ctx context.Context, user *domain.User, message string) error {
	n.logger.InfoContext(ctx, "reminder", "user_id", user.ID, "email", user.Email, "message", message)
	return nil
}

// ReminderReport summarizes one sweep.
type ReminderReport struct {
	Sent    int
	Skipped int
	Failed  int
}

// ReminderService runs the daily journaling reminder sweep.
type ReminderService struct {
	users    repository.UserRepo
	journals repository.JournalRepo
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewReminderService builds the daily reminder sweep. A nil logger
// discards log output.
func NewReminderService(users repository.UserRepo, journals repository.JournalRepo, notifier Notifier, logger *slog.Logger) *ReminderService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ReminderService{
		users:    users,
		journals: journals,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Sweep reminds every opted-in user who has not journaled today. One
// user's failure never stops the sweep; it is counted and logged.
func (s *ReminderService) Sweep(ctx context.Context) (ReminderReport, error) {
	users, err := s.users.ListRemindersEnabled(ctx)
	if err != nil {
		return ReminderReport{}, fmt.Errorf("listing reminder users: %w", err)
	}

	today := timeutil.Normalize(s.now().UTC())
	tomorrow := today.AddDate(0, 0, 1)

	var report ReminderReport
	for _, u := range users {
		count, err := s.journals.CountCreatedBetween(ctx, u.ID, today, tomorrow)
		if err != nil {
			report.Failed++
			s.logger.Warn("reminder check failed", "user_id", u.ID, "error", err)
			continue
		}
		if count > 0 {
			report.Skipped++
			continue
		}
		if err := s.notifier.Notify(ctx, u, reminderMessage(u)); err != nil {
			report.Failed++
			s.logger.Warn("reminder delivery failed", "user_id", u.ID, "error", err)
			continue
		}
		report.Sent++
	}

	s.logger.Info("reminder sweep complete",
		"sent", report.Sent, "skipped", report.Skipped, "failed", report.Failed)
	return report, nil
}

func reminderMessage(u *domain.User) string {
	name := u.Name
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("Hi %s, you haven't journaled today. A few minutes of reflection goes a long way.", name)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstone-app/inkstone/internal/domain"
	"github.com/inkstone-app/inkstone/internal/repository"
	"github.com/inkstone-app/inkstone/internal/testutil"
)

type fakeNotifier struct {
	notified []string
	failFor  map[string]bool
}

func (f *fakeNotifier) Notify(_ context.Context, user *domain.User, _ string) error {
	if f.failFor[user.ID] {
		return errors.New("delivery refused")
	}
	f.notified = append(f.notified, user.ID)
	return nil
}

func seedReminderUser(t *testing.T, svc UserService, id string) *domain.User {
	t.Helper()
	u := &domain.User{ID: id, Email: id + "@example.com", Name: id, RemindersEnabled: true}
	require.NoError(t, svc.Create(context.Background(), u))
	return u
}

func TestReminderSweep_SkipsUsersWhoJournaledToday(t *testing.T) {
	conn := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(conn)
	journals := repository.NewSQLiteJournalRepo(conn)
	userSvc := NewUserService(users)

	seedReminderUser(t, userSvc, "wrote")
	seedReminderUser(t, userSvc, "silent")

	// Opted out, must never be considered.
	optedOut := &domain.User{ID: "out", Email: "out@example.com"}
	require.NoError(t, userSvc.Create(context.Background(), optedOut))

	today := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)
	testutil.SeedJournalEntry(t, conn, "wrote", today)

	notifier := &fakeNotifier{}
	svc := NewReminderService(users, journals, notifier, nil)
	svc.now = func() time.Time { return today.Add(18 * time.Hour) }

	report, err := svc.Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ReminderReport{Sent: 1, Skipped: 1, Failed: 0}, report)
	assert.Equal(t, []string{"silent"}, notifier.notified)
}

func TestReminderSweep_YesterdayDoesNotCount(t *testing.T) {
	conn := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(conn)
	journals := repository.NewSQLiteJournalRepo(conn)
	seedReminderUser(t, NewUserService(users), "u1")

	today := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)
	testutil.SeedJournalEntry(t, conn, "u1", today.AddDate(0, 0, -1))

	notifier := &fakeNotifier{}
	svc := NewReminderService(users, journals, notifier, nil)
	svc.now = func() time.Time { return today.Add(9 * time.Hour) }

	report, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, []string{"u1"}, notifier.notified)
}

func TestReminderSweep_OneFailureDoesNotStopOthers(t *testing.T) {
	conn := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(conn)
	journals := repository.NewSQLiteJournalRepo(conn)
	userSvc := NewUserService(users)

	seedReminderUser(t, userSvc, "a")
	seedReminderUser(t, userSvc, "b")
	seedReminderUser(t, userSvc, "c")

	notifier := &fakeNotifier{failFor: map[string]bool{"b": true}}
	svc := NewReminderService(users, journals, notifier, nil)
	svc.now = func() time.Time { return time.Date(2024, time.March, 6, 19, 0, 0, 0, time.UTC) }

	report, err := svc.Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.ElementsMatch(t, []string{"a", "c"}, notifier.notified)
}

func TestReminderSweep_NoUsers(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewReminderService(
		repository.NewSQLiteUserRepo(conn),
		repository.NewSQLiteJournalRepo(conn),
		&fakeNotifier{}, nil)

	report, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReminderReport{}, report)
}

package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inkstone-app/inkstone/internal/domain"
	"github.com/inkstone-app/inkstone/internal/repository"
)

// SeedUser inserts a user with sensible profile defaults and returns it.
func SeedUser(t *testing.T, conn *sql.DB, id string) *domain.User {
	t.Helper()
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	u := &domain.User{
		ID:           id,
		Email:        id + "@example.com",
		Name:         "Test " + id,
		CurrentRole:  "Engineer",
		LifePhase:    "Working professional",
		FocusAreas:   []string{"Health", "Career"},
		InsightStyle: domain.StyleGentle,
		AIEnabled:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repository.NewSQLiteUserRepo(conn).Create(context.Background(), u); err != nil {
		t.Fatalf("seeding user %s: %v", id, err)
	}
	return u
}

// SeedJournalEntry inserts a minimal journal entry on the given day.
func SeedJournalEntry(t *testing.T, conn *sql.DB, userID string, date time.Time) *domain.JournalEntry {
	t.Helper()
	e := &domain.JournalEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		Date:         date,
		Type:         domain.EntryAnytime,
		WhatHappened: "Worked through the day on " + date.Format("2006-01-02"),
		Wins:         []string{"made progress"},
		MoodScore:    7,
		EnergyLevel:  6,
		CreatedAt:    date,
		UpdatedAt:    date,
	}
	if err := repository.NewSQLiteJournalRepo(conn).Create(context.Background(), e); err != nil {
		t.Fatalf("seeding journal entry: %v", err)
	}
	return e
}

// SeedGoal inserts an active goal with the given id and title.
func SeedGoal(t *testing.T, conn *sql.DB, userID, id, title string) *domain.Goal {
	t.Helper()
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	g := &domain.Goal{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Type:      domain.GoalWeekly,
		Category:  "Health",
		Why:       "because it matters",
		Status:    domain.GoalActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repository.NewSQLiteGoalRepo(conn).Create(context.Background(), g); err != nil {
		t.Fatalf("seeding goal %s: %v", id, err)
	}
	return g
}

package insight

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/inkstone-app/inkstone/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func promptUser() *domain.User {
	return &domain.User{
		ID:          "u1",
		Name:        "Ada",
		CurrentRole: "Engineer",
		LifePhase:   "Working professional",
		FocusAreas:  []string{"Health", "Career"},
	}
}

func TestBuildPrompt_WeekRangeAndProfile(t *testing.T) {
	p := BuildPrompt(promptUser(), nil, nil, day(2024, time.March, 4), day(2024, time.March, 10))

	assert.Contains(t, p, "Week: 2024-03-04 to 2024-03-10")
	assert.Contains(t, p, "User: Ada")
	assert.Contains(t, p, "Role: Engineer")
	assert.Contains(t, p, "Life Phase: Working professional")
	assert.Contains(t, p, "Focus Areas: Health, Career")
}

func TestBuildPrompt_DefaultsMissingName(t *testing.T) {
	u := promptUser()
	u.Name = ""
	p := BuildPrompt(u, nil, nil, day(2024, time.March, 4), day(2024, time.March, 10))
	assert.Contains(t, p, "User: User\n")
}

func TestBuildPrompt_EnumeratesJournals(t *testing.T) {
	entries := []*domain.JournalEntry{
		{
			Date:         day(2024, time.March, 4),
			WhatHappened: "shipped the release",
			Wins:         []string{"green build", "no rollbacks"},
			MoodScore:    8,
			EnergyLevel:  6,
		},
		{
			Date:       day(2024, time.March, 6),
			Challenges: []string{"flaky tests"},
		},
	}
	p := BuildPrompt(promptUser(), entries, nil, day(2024, time.March, 4), day(2024, time.March, 10))

	assert.Contains(t, p, "JOURNALS THIS WEEK (2):")
	assert.Contains(t, p, "[1] 2024-03-04:")
	assert.Contains(t, p, "What Happened: shipped the release")
	assert.Contains(t, p, "Wins: green build, no rollbacks")
	assert.Contains(t, p, "Mood Score: 8/10")
	assert.Contains(t, p, "Energy Level: 6/10")
	assert.Contains(t, p, "[2] 2024-03-06:")
	assert.Contains(t, p, "Challenges: flaky tests")
}

func TestBuildPrompt_TruncatesLongFields(t *testing.T) {
	long := strings.Repeat("x", maxFieldChars+50)
	entries := []*domain.JournalEntry{{Date: day(2024, time.March, 4), WhatHappened: long}}

	p := BuildPrompt(promptUser(), entries, nil, day(2024, time.March, 4), day(2024, time.March, 10))

	assert.Contains(t, p, "What Happened: "+long[:maxFieldChars]+"\n")
	assert.NotContains(t, p, long)
}

func TestBuildPrompt_EnumeratesGoals(t *testing.T) {
	goals := []*domain.Goal{
		{
			ID:       "g1",
			Title:    "Run 3x per week",
			Type:     domain.GoalWeekly,
			Status:   domain.GoalActive,
			Category: "Health",
			Why:      "stay sane",
		},
	}
	p := BuildPrompt(promptUser(), nil, goals, day(2024, time.March, 4), day(2024, time.March, 10))

	assert.Contains(t, p, "ACTIVE GOALS:")
	assert.Contains(t, p, "[1] ID: g1")
	assert.Contains(t, p, "Title: Run 3x per week")
	assert.Contains(t, p, "Type: weekly, Status: active")
	assert.Contains(t, p, "Category: Health")
	assert.Contains(t, p, "Why: stay sane")
}

func TestBuildPrompt_EmptyWeek(t *testing.T) {
	p := BuildPrompt(promptUser(), nil, nil, day(2024, time.March, 4), day(2024, time.March, 10))

	assert.Contains(t, p, "JOURNALS THIS WEEK (0):")
	assert.Contains(t, p, "No journal entries this week.")
	assert.Contains(t, p, "No active goals.")
}

func TestBuildPrompt_EndsWithOutputContract(t *testing.T) {
	p := BuildPrompt(promptUser(), nil, nil, day(2024, time.March, 4), day(2024, time.March, 10))

	assert.True(t, strings.HasSuffix(p, outputContract))
	assert.Contains(t, p, `"goalSummaries"`)
	assert.Contains(t, p, "aligned | partially_aligned | needs_adjustment")
	assert.Contains(t, p, "Return ONLY valid JSON")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	entries := []*domain.JournalEntry{{Date: day(2024, time.March, 4), WhatHappened: "x"}}
	a := BuildPrompt(promptUser(), entries, nil, day(2024, time.March, 4), day(2024, time.March, 10))
	b := BuildPrompt(promptUser(), entries, nil, day(2024, time.March, 4), day(2024, time.March, 10))
	assert.Equal(t, a, b)
}

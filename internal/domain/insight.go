package domain

import (
	"fmt"
	"time"
)

// AlignmentStatus classifies how a week's journals relate to one goal.
// It is a closed enum; values outside the set are rejected at parse time.
type AlignmentStatus string

const (
	Aligned          AlignmentStatus = "aligned"
	PartiallyAligned AlignmentStatus = "partially_aligned"
	NeedsAdjustment  AlignmentStatus = "needs_adjustment"
)

// ParseAlignmentStatus converts a raw string into an AlignmentStatus,
// rejecting anything outside the three-value enum.
func ParseAlignmentStatus(s string) (AlignmentStatus, error) {
	switch AlignmentStatus(s) {
	case Aligned, PartiallyAligned, NeedsAdjustment:
		return AlignmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown alignment status %q", s)
	}
}

// GoalSummary is one per-goal judgment inside a WeeklyInsight. GoalID
// always references a goal that belonged to the user at generation time,
// and GoalTitle is the authoritative stored title, never the model's.
type GoalSummary struct {
	GoalID      string          `json:"goalId"`
	GoalTitle   string          `json:"goalTitle"`
	Status      AlignmentStatus `json:"status"`
	Explanation string          `json:"explanation"`
}

// WeeklyInsight is the generated summary for one (user, week) pair.
// WeekStart is a Monday at 00:00 UTC and WeekEnd is WeekStart + 6 days.
// Exactly one record exists per (UserID, WeekStart).
type WeeklyInsight struct {
	ID            string
	UserID        string
	WeekStart     time.Time
	WeekEnd       time.Time
	JournalCount  int
	Reflection    []string
	GoalSummaries []GoalSummary
	Suggestion    string
	GeneratedAt   time.Time
	SourceVersion int
}

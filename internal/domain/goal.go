package domain

import "time"

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
	GoalArchived  GoalStatus = "archived"
)

// ValidGoalStatuses is the canonical set of accepted goal status strings.
var ValidGoalStatuses = map[string]bool{
	"active": true, "completed": true, "paused": true, "archived": true,
}

// InsightGoalStatuses is the status set fetched when generating an
// insight: everything except archived.
var InsightGoalStatuses = []GoalStatus{GoalActive, GoalCompleted, GoalPaused}

type GoalType string

const (
	GoalWeekly  GoalType = "weekly"
	GoalMonthly GoalType = "monthly"
	GoalYearly  GoalType = "yearly"
)

// ValidGoalTypes is the canonical set of accepted goal type strings.
var ValidGoalTypes = map[string]bool{
	"weekly": true, "monthly": true, "yearly": true,
}

// ValidGoalCategories is the canonical set of accepted goal categories.
var ValidGoalCategories = map[string]bool{
	"Health": true, "Career": true, "Learning": true,
	"Mindset": true, "Relationships": true, "Personal": true,
}

// Goal is a user-defined goal the insight engine summarizes journal
// alignment against. Why is an optional rationale shown to the model.
type Goal struct {
	ID        string
	UserID    string
	Title     string
	Type      GoalType
	Category  string
	Why       string
	Status    GoalStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

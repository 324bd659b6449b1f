package domain

import "time"

// User is an account plus the profile attributes the insight prompt
// renders. Authentication fields live outside this system.
type User struct {
	ID               string
	Email            string
	Name             string
	CurrentRole      string
	LifePhase        string
	FocusAreas       []string
	InsightStyle     InsightStyle
	AIEnabled        bool
	RemindersEnabled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InsightStyle is the tone the user prefers for generated insights.
type InsightStyle string

const (
	StyleGentle     InsightStyle = "gentle"
	StylePractical  InsightStyle = "practical"
	StyleAnalytical InsightStyle = "analytical"
)

// ValidInsightStyles is the canonical set of accepted insight styles.
var ValidInsightStyles = map[string]bool{
	"gentle": true, "practical": true, "analytical": true,
}

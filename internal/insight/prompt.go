package insight

import (
	"fmt"
	"strings"
	"time"

	"github.com/inkstone-app/inkstone/internal/domain"
	"github.com/inkstone-app/inkstone/internal/timeutil"
)

// maxFieldChars bounds every free-text journal field rendered into the
// prompt so a single verbose entry cannot blow up the prompt size.
const maxFieldChars = 300

// BuildPrompt renders the week's journals, the user's goals, and the
// user profile into a single prompt ending with the strict JSON output
// contract. Rendering is deterministic: same inputs, same prompt.
func BuildPrompt(user *domain.User, entries []*domain.JournalEntry, goals []*domain.Goal, weekStart, weekEnd time.Time) string {
	var b strings.Builder

	b.WriteString("You are a thoughtful journaling coach providing weekly insights ")
	b.WriteString("inside a journaling app. The user answers the prompts listed below ")
	b.WriteString("on the journaling page; give a meaningful, grounded summary and ")
	b.WriteString("one gentle suggestion.\n\n")

	fmt.Fprintf(&b, "Week: %s to %s\n", timeutil.FormatDateKey(weekStart), timeutil.FormatDateKey(weekEnd))
	name := user.Name
	if name == "" {
		name = "User"
	}
	fmt.Fprintf(&b, "User: %s\n", name)
	if user.CurrentRole != "" {
		fmt.Fprintf(&b, "Role: %s\n", user.CurrentRole)
	}
	if user.LifePhase != "" {
		fmt.Fprintf(&b, "Life Phase: %s\n", user.LifePhase)
	}
	if len(user.FocusAreas) > 0 {
		fmt.Fprintf(&b, "Focus Areas: %s\n", strings.Join(user.FocusAreas, ", "))
	}

	fmt.Fprintf(&b, "\nJOURNALS THIS WEEK (%d):\n", len(entries))
	if len(entries) == 0 {
		b.WriteString("No journal entries this week.\n")
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "\n[%d] %s:\n", i+1, timeutil.FormatDateKey(e.Date))
		if e.WhatHappened != "" {
			fmt.Fprintf(&b, "What Happened: %s\n", truncate(e.WhatHappened, maxFieldChars))
		}
		if len(e.Wins) > 0 {
			fmt.Fprintf(&b, "Wins: %s\n", truncate(strings.Join(e.Wins, ", "), maxFieldChars))
		}
		if len(e.Challenges) > 0 {
			fmt.Fprintf(&b, "Challenges: %s\n", truncate(strings.Join(e.Challenges, ", "), maxFieldChars))
		}
		if len(e.Gratitude) > 0 {
			fmt.Fprintf(&b, "Gratitude: %s\n", truncate(strings.Join(e.Gratitude, ", "), maxFieldChars))
		}
		if e.LessonsLearned != "" {
			fmt.Fprintf(&b, "Lessons Learned: %s\n", truncate(e.LessonsLearned, maxFieldChars))
		}
		if e.MoodScore > 0 {
			fmt.Fprintf(&b, "Mood Score: %d/10\n", e.MoodScore)
		}
		if e.EnergyLevel > 0 {
			fmt.Fprintf(&b, "Energy Level: %d/10\n", e.EnergyLevel)
		}
	}

	b.WriteString("\nACTIVE GOALS:\n")
	if len(goals) == 0 {
		b.WriteString("No active goals.\n")
	}
	for i, g := range goals {
		fmt.Fprintf(&b, "\n[%d] ID: %s\n", i+1, g.ID)
		fmt.Fprintf(&b, "Title: %s\n", g.Title)
		fmt.Fprintf(&b, "Type: %s, Status: %s\n", g.Type, g.Status)
		fmt.Fprintf(&b, "Category: %s\n", g.Category)
		if g.Why != "" {
			fmt.Fprintf(&b, "Why: %s\n", g.Why)
		}
	}

	b.WriteString(outputContract)
	return b.String()
}

// outputContract is the strict response format appended to every prompt.
// The field names and the status enum here must match the parser in
// response.go byte for byte.
const outputContract = `
---
Please provide a weekly insight in STRICT JSON format:

{
  "reflection": [
    "4-6 thoughtful bullet points about this week's journaling patterns, emotions, or themes"
  ],
  "goalSummaries": [
    {
      "goalId": "USE THE EXACT ID FROM THE GOALS LIST ABOVE",
      "status": "aligned | partially_aligned | needs_adjustment",
      "explanation": "brief explanation of how journals relate to this goal"
    }
  ],
  "suggestion": "ONE gentle, actionable suggestion for next week"
}

Guidelines:
- Be warm, encouraging, and specific
- Reference actual journal content when possible
- Keep explanations concise (1-2 sentences)
- Suggestion should be practical and achievable
- For goalSummaries, use the EXACT goal ID from the list above
- Only include goals that are actually mentioned or related to the journal entries
- Return ONLY valid JSON, no additional text
`

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

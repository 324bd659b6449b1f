package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inkstone-app/inkstone/internal/domain"
	"github.com/inkstone-app/inkstone/internal/timeutil"
)

// FormatInsight renders a weekly insight: the reflection bullets, the
// per-goal alignment judgments, and the suggestion.
func FormatInsight(ins *domain.WeeklyInsight) string {
	var b strings.Builder

	title := fmt.Sprintf("Week %s to %s",
		timeutil.FormatDateKey(ins.WeekStart), timeutil.FormatDateKey(ins.WeekEnd))
	b.WriteString(Header(title) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%d journal entries · generated %s",
		ins.JournalCount, ins.GeneratedAt.Format("2006-01-02 15:04"))) + "\n\n")

	b.WriteString(Bold("Reflection") + "\n")
	for _, line := range ins.Reflection {
		b.WriteString("  • " + StyleFg.Render(line) + "\n")
	}

	if len(ins.GoalSummaries) > 0 {
		b.WriteString("\n" + Bold("Goals") + "\n")
		for _, gs := range ins.GoalSummaries {
			b.WriteString(fmt.Sprintf("  %s  %s\n", AlignmentIndicator(gs.Status), StyleFg.Render(gs.GoalTitle)))
			if gs.Explanation != "" {
				b.WriteString("    " + Dim(gs.Explanation) + "\n")
			}
		}
	}

	b.WriteString("\n" + Bold("Suggestion") + "\n")
	b.WriteString("  " + StyleBlue.Render(ins.Suggestion) + "\n")

	return b.String()
}

// FormatUser renders a user profile.
func FormatUser(u *domain.User) string {
	var b strings.Builder

	b.WriteString(Header(u.Name) + "\n")
	b.WriteString(Dim("ID: "+u.ID) + "\n")
	b.WriteString("Email: " + u.Email + "\n")
	if u.CurrentRole != "" {
		b.WriteString("Role: " + u.CurrentRole + "\n")
	}
	if u.LifePhase != "" {
		b.WriteString("Life Phase: " + u.LifePhase + "\n")
	}
	if len(u.FocusAreas) > 0 {
		b.WriteString("Focus Areas: " + strings.Join(u.FocusAreas, ", ") + "\n")
	}
	b.WriteString("Insight Style: " + string(u.InsightStyle) + "\n")
	b.WriteString(fmt.Sprintf("AI: %s, Reminders: %s\n", onOff(u.AIEnabled), onOff(u.RemindersEnabled)))

	return b.String()
}

// FormatEntryList renders a week of journal entries.
func FormatEntryList(entries []*domain.JournalEntry) string {
	var b strings.Builder

	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Bold(timeutil.FormatDateKey(e.Date)) + " " + Dim(string(e.Type)))
		if e.MoodScore > 0 {
			b.WriteString(Dim(fmt.Sprintf(" mood %d/10", e.MoodScore)))
		}
		if e.EnergyLevel > 0 {
			b.WriteString(Dim(fmt.Sprintf(" energy %d/10", e.EnergyLevel)))
		}
		b.WriteString("\n")
		if e.WhatHappened != "" {
			b.WriteString("  " + StyleFg.Render(e.WhatHappened) + "\n")
		}
		for _, w := range e.Wins {
			b.WriteString("  " + StyleGreen.Render("+ "+w) + "\n")
		}
		for _, c := range e.Challenges {
			b.WriteString("  " + StyleRed.Render("- "+c) + "\n")
		}
	}

	return b.String()
}

// FormatGoalList renders a list of goals.
func FormatGoalList(goals []*domain.Goal) string {
	var b strings.Builder

	for _, g := range goals {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Bold(g.Title),
			Dim(fmt.Sprintf("[%s/%s]", g.Type, g.Category)),
			statusStyle(g.Status).Render(string(g.Status))))
		if g.Why != "" {
			b.WriteString("  " + Dim(g.Why) + "\n")
		}
		b.WriteString("  " + Dim("ID: "+g.ID) + "\n")
	}

	return b.String()
}

func statusStyle(s domain.GoalStatus) lipgloss.Style {
	switch s {
	case domain.GoalActive:
		return StyleGreen
	case domain.GoalCompleted:
		return StyleBlue
	case domain.GoalPaused:
		return StyleYellow
	default:
		return StyleDim
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

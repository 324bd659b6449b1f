package domain

import "time"

type EntryType string

const (
	EntryMorning EntryType = "morning"
	EntryEvening EntryType = "evening"
	EntryAnytime EntryType = "anytime"
)

// ValidEntryTypes is the canonical set of accepted entry type strings.
var ValidEntryTypes = map[string]bool{
	"morning": true, "evening": true, "anytime": true,
}

// JournalEntry is one dated journal record. Date carries day granularity
// (UTC midnight); mood and energy are 1-10 with 0 meaning unset.
type JournalEntry struct {
	ID             string
	UserID         string
	Date           time.Time
	Type           EntryType
	WhatHappened   string
	Wins           []string
	Challenges     []string
	Gratitude      []string
	LessonsLearned string
	MoodScore      int
	EnergyLevel    int
	Tags           []string
	Private        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

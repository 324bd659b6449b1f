package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkstone-app/inkstone/internal/cli/formatter"
	"github.com/inkstone-app/inkstone/internal/domain"
	"github.com/inkstone-app/inkstone/internal/timeutil"
)

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Manage journal entries",
	}

	cmd.AddCommand(
		newJournalAddCmd(app),
		newJournalListCmd(app),
		newJournalRemoveCmd(app),
	)

	return cmd
}

func newJournalAddCmd(app *App) *cobra.Command {
	var user, date, entryType, happened, lessons string
	var wins, challenges, gratitude, tags []string
	var mood, energy int
	var private bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, user)
			if err != nil {
				return err
			}

			day, err := timeutil.ParseDateKey(date)
			if err != nil {
				return err
			}

			e := &domain.JournalEntry{
				UserID:         u.ID,
				Date:           day,
				Type:           domain.EntryType(entryType),
				WhatHappened:   happened,
				Wins:           wins,
				Challenges:     challenges,
				Gratitude:      gratitude,
				LessonsLearned: lessons,
				MoodScore:      mood,
				EnergyLevel:    energy,
				Tags:           tags,
				Private:        private,
			}
			if err := app.Journals.Create(ctx, e); err != nil {
				return err
			}

			fmt.Printf("Logged %s entry for %s\n", e.Type, timeutil.FormatDateKey(e.Date))
			fmt.Println(formatter.Dim("ID: " + e.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID or email")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&entryType, "type", "anytime", "Entry type (morning|evening|anytime)")
	cmd.Flags().StringVar(&happened, "happened", "", "What happened")
	cmd.Flags().StringSliceVar(&wins, "win", nil, "Wins (repeatable)")
	cmd.Flags().StringSliceVar(&challenges, "challenge", nil, "Challenges (repeatable)")
	cmd.Flags().StringSliceVar(&gratitude, "gratitude", nil, "Gratitude items (repeatable)")
	cmd.Flags().StringVar(&lessons, "lessons", "", "Lessons learned")
	cmd.Flags().IntVar(&mood, "mood", 0, "Mood score 1-10")
	cmd.Flags().IntVar(&energy, "energy", 0, "Energy level 1-10")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags (repeatable)")
	cmd.Flags().BoolVar(&private, "private", false, "Exclude from shared views")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newJournalListCmd(app *App) *cobra.Command {
	var user, week string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a week of journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, user)
			if err != nil {
				return err
			}

			entries, err := app.Journals.ListWeek(ctx, u.ID, week)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No journal entries this week.")
				return nil
			}

			fmt.Println(formatter.FormatEntryList(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID or email")
	cmd.Flags().StringVar(&week, "week", "", "Week start date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("week")

	return cmd
}

func newJournalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Journals.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed journal entry %s\n", args[0])
			return nil
		},
	}
}

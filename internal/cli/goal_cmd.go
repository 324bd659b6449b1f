package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkstone-app/inkstone/internal/cli/formatter"
	"github.com/inkstone-app/inkstone/internal/domain"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalUpdateCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var user, title, goalType, category, why string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, user)
			if err != nil {
				return err
			}

			g := &domain.Goal{
				UserID:   u.ID,
				Title:    title,
				Type:     domain.GoalType(goalType),
				Category: category,
				Why:      why,
			}
			if err := app.Goals.Create(ctx, g); err != nil {
				return err
			}

			fmt.Printf("Created %s goal %q\n", g.Type, g.Title)
			fmt.Println(formatter.Dim("ID: " + g.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID or email")
	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&goalType, "type", "weekly", "Goal type (weekly|monthly|yearly)")
	cmd.Flags().StringVar(&category, "category", "", "Category (Health|Career|Learning|Mindset|Relationships|Personal)")
	cmd.Flags().StringVar(&why, "why", "", "Why this goal matters")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, user)
			if err != nil {
				return err
			}

			goals, err := app.Goals.ListActive(ctx, u.ID)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println("No active goals.")
				return nil
			}

			fmt.Println(formatter.FormatGoalList(goals))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID or email")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newGoalUpdateCmd(app *App) *cobra.Command {
	var title, status, why string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			g, err := app.Goals.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				g.Title = title
			}
			if cmd.Flags().Changed("status") {
				g.Status = domain.GoalStatus(status)
			}
			if cmd.Flags().Changed("why") {
				g.Why = why
			}

			if err := app.Goals.Update(ctx, g); err != nil {
				return err
			}
			fmt.Printf("Updated goal %q\n", g.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&status, "status", "", "Status (active|completed|paused|archived)")
	cmd.Flags().StringVar(&why, "why", "", "Why this goal matters")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Goals.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed goal %s\n", args[0])
			return nil
		},
	}
}

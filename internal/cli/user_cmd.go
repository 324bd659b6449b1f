package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkstone-app/inkstone/internal/cli/formatter"
	"github.com/inkstone-app/inkstone/internal/domain"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(
		newUserAddCmd(app),
		newUserShowCmd(app),
		newUserUpdateCmd(app),
	)

	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	var email, name, role, phase, style string
	var focus []string
	var reminders bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := &domain.User{
				Email:            email,
				Name:             name,
				CurrentRole:      role,
				LifePhase:        phase,
				FocusAreas:       focus,
				InsightStyle:     domain.InsightStyle(style),
				AIEnabled:        true,
				RemindersEnabled: reminders,
			}
			if err := app.Users.Create(context.Background(), u); err != nil {
				return err
			}

			fmt.Printf("Created user %s <%s>\n", u.Name, u.Email)
			fmt.Println(formatter.Dim("ID: " + u.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "", "Current role (e.g. Engineer)")
	cmd.Flags().StringVar(&phase, "phase", "", "Life phase (e.g. Working professional)")
	cmd.Flags().StringSliceVar(&focus, "focus", nil, "Focus areas (comma-separated)")
	cmd.Flags().StringVar(&style, "style", "gentle", "Insight style (gentle|practical|analytical)")
	cmd.Flags().BoolVar(&reminders, "reminders", false, "Enable daily journaling reminders")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUserShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID_OR_EMAIL",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatUser(u))
			return nil
		},
	}
}

func newUserUpdateCmd(app *App) *cobra.Command {
	var name, role, phase, style string
	var focus []string
	var reminders, ai bool

	cmd := &cobra.Command{
		Use:   "update ID_OR_EMAIL",
		Short: "Update a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				u.Name = name
			}
			if cmd.Flags().Changed("role") {
				u.CurrentRole = role
			}
			if cmd.Flags().Changed("phase") {
				u.LifePhase = phase
			}
			if cmd.Flags().Changed("focus") {
				u.FocusAreas = focus
			}
			if cmd.Flags().Changed("style") {
				u.InsightStyle = domain.InsightStyle(style)
			}
			if cmd.Flags().Changed("reminders") {
				u.RemindersEnabled = reminders
			}
			if cmd.Flags().Changed("ai") {
				u.AIEnabled = ai
			}

			if err := app.Users.Update(ctx, u); err != nil {
				return err
			}
			fmt.Printf("Updated user %s <%s>\n", u.Name, u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "", "Current role")
	cmd.Flags().StringVar(&phase, "phase", "", "Life phase")
	cmd.Flags().StringSliceVar(&focus, "focus", nil, "Focus areas (comma-separated)")
	cmd.Flags().StringVar(&style, "style", "", "Insight style (gentle|practical|analytical)")
	cmd.Flags().BoolVar(&reminders, "reminders", false, "Enable daily journaling reminders")
	cmd.Flags().BoolVar(&ai, "ai", true, "Enable AI insight generation")

	return cmd
}

func resolveUser(ctx context.Context, app *App, input string) (*domain.User, error) {
	if strings.Contains(input, "@") {
		return app.Users.GetByEmail(ctx, input)
	}
	return app.Users.GetByID(ctx, input)
}

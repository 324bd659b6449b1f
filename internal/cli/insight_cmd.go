package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkstone-app/inkstone/internal/cli/formatter"
)

func newInsightCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Generate and inspect weekly insights",
	}

	cmd.AddCommand(
		newInsightGenerateCmd(app),
		newInsightShowCmd(app),
		newInsightInvalidateCmd(app),
	)

	return cmd
}

func newInsightGenerateCmd(app *App) *cobra.Command {
	var user, week string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate (or fetch the cached) weekly insight",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, user)
			if err != nil {
				return err
			}

			ins, err := app.Insights.GenerateInsight(ctx, u.ID, week)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatInsight(ins))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID or email")
	cmd.Flags().StringVar(&week, "week", "", "Week start date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("week")

	return cmd
}

func newInsightShowCmd(app *App) *cobra.Command {
	var user, week string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored weekly insight without generating",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, user)
			if err != nil {
				return err
			}

			ins, err := app.Insights.GetInsight(ctx, u.ID, week)
			if err != nil {
				return err
			}
			if ins == nil {
				fmt.Println("No insight stored for that week. Run `inkstone insight generate` first.")
				return nil
			}

			fmt.Println(formatter.FormatInsight(ins))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID or email")
	cmd.Flags().StringVar(&week, "week", "", "Week start date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("week")

	return cmd
}

func newInsightInvalidateCmd(app *App) *cobra.Command {
	var user, week string

	cmd := &cobra.Command{
		Use:   "invalidate",
		Short: "Mark a stored weekly insight stale",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := resolveUser(ctx, app, user)
			if err != nil {
				return err
			}

			app.Insights.InvalidateInsight(ctx, u.ID, week)
			fmt.Printf("Invalidated insight for week %s\n", week)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User ID or email")
	cmd.Flags().StringVar(&week, "week", "", "Week start date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("week")

	return cmd
}

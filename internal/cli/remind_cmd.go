package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRemindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Send journaling reminders to users who have not written today",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reminders.Sweep(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Reminders: %d sent, %d skipped, %d failed\n",
				report.Sent, report.Skipped, report.Failed)
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/inkstone-app/inkstone/internal/insight"
	"github.com/inkstone-app/inkstone/internal/service"
)

// App holds references to all services used by CLI commands.
type App struct {
	Users     service.UserService
	Journals  service.JournalService
	Goals     service.GoalService
	Insights  *insight.Engine
	Reminders *service.ReminderService
}

// NewRootCmd creates the top-level "inkstone" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "inkstone",
		Short: "Journaling backend with AI weekly insights",
	}

	root.AddCommand(
		newUserCmd(app),
		newJournalCmd(app),
		newGoalCmd(app),
		newInsightCmd(app),
		newRemindCmd(app),
	)

	return root
}

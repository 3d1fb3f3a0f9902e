package cli

import (
	"time"

	"github.com/alexanderramin/hourlog/internal/autobackup"
	"github.com/alexanderramin/hourlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Reports  service.ReportService
	Settings service.SettingsService
	Progress service.ProgressService
	Backups  service.BackupService

	// AutoBackup configures `backup auto`; Dir empty disables it.
	AutoBackup autobackup.Options

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
	// Now is the clock used for "today"; nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "hourlog" command and registers all
// subcommands against the provided App. Run bare in a terminal it opens
// the dashboard.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "hourlog",
		Short:         "Track work hours against a monthly goal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(cmd, app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newReportCmd(app),
		newGoalCmd(app),
		newProfileCmd(app),
		newWorkDaysCmd(app),
		newStatusCmd(app),
		newShareCmd(app),
		newBackupCmd(app),
		newResetCmd(app),
		newDashboardCmd(app),
	)

	return root
}

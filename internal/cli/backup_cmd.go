package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/hourlog/internal/autobackup"
	"github.com/alexanderramin/hourlog/internal/backup"
	"github.com/alexanderramin/hourlog/internal/cli/formatter"
	"github.com/alexanderramin/hourlog/internal/service"
	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export, validate and restore JSON backups",
	}
	cmd.AddCommand(
		newBackupExportCmd(app),
		newBackupImportCmd(app),
		newBackupValidateCmd(app),
		newBackupAutoCmd(app),
	)
	return cmd
}

func newBackupExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup of all data (stdout by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := app.Backups.Create(context.Background())
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err := cmd.OutOrStdout().Write(append(raw, '\n'))
				return err
			}
			if err := os.WriteFile(out, raw, 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file")
	return cmd
}

func readBackupArg(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return raw, nil
}

func newBackupValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a file is a usable backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readBackupArg(cmd, args[0])
			if err != nil {
				return err
			}
			if !app.Backups.Validate(raw) {
				return backup.ErrInvalidBackup
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Backup is valid"))
			return nil
		},
	}
}

func newBackupImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all data with the content of a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("import replaces all existing data; re-run with --yes")
			}
			raw, err := readBackupArg(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := app.Backups.Restore(context.Background(), raw)
			switch {
			case errors.Is(err, backup.ErrInvalidBackup):
				return backup.ErrInvalidBackup
			case errors.Is(err, service.ErrRestoreFailed):
				return fmt.Errorf("%w; existing data was kept", service.ErrRestoreFailed)
			case err != nil:
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d reports from a %s backup\n", res.Reports, res.Version)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm replacing all data")
	return cmd
}

func newBackupAutoCmd(app *App) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Write backups on a schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.AutoBackup.Dir == "" {
				return errors.New("backup directory is not configured (backup.dir)")
			}
			runner := autobackup.NewRunner(app.Backups, app.AutoBackup)

			if once {
				path, err := runner.RunOnce(context.Background())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", path)
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := runner.Start(ctx); err != nil {
				return err
			}
			defer runner.Stop()
			fmt.Fprintf(cmd.OutOrStdout(), "Backing up to %s every %s (Ctrl+C to stop)\n", app.AutoBackup.Dir, app.AutoBackup.Interval)
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "Write a single backup and exit")
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all reports and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearAll(cmd, app, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deleting everything")
	return cmd
}

func clearAll(cmd *cobra.Command, app *App, yes bool) error {
	if !yes {
		return errors.New("this deletes all reports and settings; re-run with --yes")
	}
	if err := app.Reports.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hourlog/internal/cli/formatter"
	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/repository"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"r"},
		Short:   "Log and manage work reports",
	}

	cmd.AddCommand(
		newReportAddCmd(app),
		newReportListCmd(app),
		newReportShowCmd(app),
		newReportEditCmd(app),
		newReportRemoveCmd(app),
		newReportClearCmd(app),
	)

	return cmd
}

// reportFlags registers the shared report field flags. Numbers are read
// leniently: anything unparseable counts as 0.
func reportFlags(cmd *cobra.Command, v *reportFormValues) {
	cmd.Flags().StringVarP(&v.Date, "date", "d", "", "Report date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&v.Hours, "hours", "", "Whole hours worked")
	cmd.Flags().StringVar(&v.Minutes, "minutes", "", "Minutes worked, added to --hours")
	cmd.Flags().StringVarP(&v.Studies, "studies", "s", "", "Number of studies held")
	cmd.Flags().StringVarP(&v.Observations, "notes", "n", "", "Observations")
}

func anyReportFlagChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"date", "hours", "minutes", "studies", "notes"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func newReportAddCmd(app *App) *cobra.Command {
	var v reportFormValues

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a report (interactive form when no flags are given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyReportFlagChanged(cmd) {
				if !app.interactive() {
					return fmt.Errorf("nothing to log: pass --hours/--minutes or run in a terminal")
				}
				if err := reportForm(&v).Run(); err != nil {
					return err
				}
			}
			if _, err := parseDay(v.Date); err != nil {
				return err
			}

			r, err := app.Reports.Create(context.Background(), v.Input(app.now()))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s %s\n",
				formatter.Bold(formatter.FormatMinutes(r.Duration)),
				r.Date.Format("Mon Jan 2"),
				formatter.TruncID(r.ID))
			return nil
		},
	}
	reportFlags(cmd, &v)
	return cmd
}

func newReportListCmd(app *App) *cobra.Command {
	var month monthFlag
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List reports for a month",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				reports []*domain.Report
				err     error
			)
			if all {
				reports, err = app.Reports.List(ctx)
			} else {
				ref := month.Resolve(app.now())
				reports, err = app.Reports.ListMonth(ctx, ref)
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Header(formatter.MonthTitle(ref)))
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReports(reports, app.now()))
			return nil
		},
	}
	addMonthFlag(cmd.Flags(), &month)
	cmd.Flags().BoolVar(&all, "all", false, "List every report")
	return cmd
}

func newReportShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveReportID(ctx, app, args[0])
			if err != nil {
				return err
			}
			r, err := app.Reports.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(r))
			return nil
		},
	}
}

func newReportEditCmd(app *App) *cobra.Command {
	var v reportFormValues

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a report; unspecified fields keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveReportID(ctx, app, args[0])
			if err != nil {
				return err
			}
			existing, err := app.Reports.Get(ctx, id)
			if err != nil {
				return err
			}

			merged := reportFormFromReport(existing)
			if anyReportFlagChanged(cmd) {
				if cmd.Flags().Changed("date") {
					if _, err := parseDay(v.Date); err != nil {
						return err
					}
					merged.Date = v.Date
				}
				if cmd.Flags().Changed("hours") || cmd.Flags().Changed("minutes") {
					merged.Hours, merged.Minutes = v.Hours, v.Minutes
				}
				if cmd.Flags().Changed("studies") {
					merged.Studies = v.Studies
				}
				if cmd.Flags().Changed("notes") {
					merged.Observations = v.Observations
				}
			} else if app.interactive() {
				if err := reportForm(&merged).Run(); err != nil {
					return err
				}
			} else {
				return fmt.Errorf("nothing to change: pass a field flag or run in a terminal")
			}

			in := merged.Input(app.now())
			if strings.TrimSpace(merged.Date) == existing.Date.Format(time.DateOnly) {
				// Keep the stored time of day when the date is unchanged.
				in.Date = existing.Date
			}
			r, err := app.Reports.Update(ctx, id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated report %s\n", formatter.TruncID(r.ID))
			return nil
		},
	}
	reportFlags(cmd, &v)
	return cmd
}

func newReportRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a report",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveReportID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Reports.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted report %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newReportClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all reports and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearAll(cmd, app, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deleting everything")
	return cmd
}

// resolveReportID accepts a full report ID or a unique prefix of one.
func resolveReportID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("report ID is required")
	}
	if _, err := app.Reports.Get(ctx, input); err == nil {
		return input, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	reports, err := app.Reports.List(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, r := range reports {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("report %s: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("report ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

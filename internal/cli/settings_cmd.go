package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/hourlog/internal/cli/formatter"
	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Show or set the monthly goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showGoal(cmd, app)
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the monthly goal",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showGoal(cmd, app)
			},
		},
		newGoalSetCmd(app),
	)
	return cmd
}

func showGoal(cmd *cobra.Command, app *App) error {
	g, err := app.Settings.Goal(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoal(g))
	return nil
}

func newGoalSetCmd(app *App) *cobra.Command {
	var hours, minutes, total string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the monthly goal (0 clears it)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var g domain.MonthlyGoal
			switch {
			case cmd.Flags().Changed("total"):
				g = domain.MonthlyGoal{MonthlyMinutes: domain.CoerceNonNegative(domain.ParseIntOrZero(total))}
				if err := app.Settings.SetGoal(ctx, g); err != nil {
					return err
				}
			case cmd.Flags().Changed("hours") || cmd.Flags().Changed("minutes"):
				var err error
				g, err = app.Settings.SetGoalHM(ctx, domain.ParseIntOrZero(hours), domain.ParseIntOrZero(minutes))
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("pass --hours/--minutes or --total")
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoal(g))
			return nil
		},
	}
	cmd.Flags().StringVar(&hours, "hours", "", "Goal hours")
	cmd.Flags().StringVar(&minutes, "minutes", "", "Goal minutes, added to --hours")
	cmd.Flags().StringVar(&total, "total", "", "Goal as total minutes")
	cmd.MarkFlagsMutuallyExclusive("total", "hours")
	cmd.MarkFlagsMutuallyExclusive("total", "minutes")
	return cmd
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or set your name and email",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showProfile(cmd, app)
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show personal info",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showProfile(cmd, app)
			},
		},
		newProfileSetCmd(app),
	)
	return cmd
}

func showProfile(cmd *cobra.Command, app *App) error {
	p, err := app.Settings.PersonalInfo(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
	return nil
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update personal info; unspecified fields keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Settings.PersonalInfo(ctx)
			if err != nil {
				return err
			}
			switch {
			case cmd.Flags().Changed("name") || cmd.Flags().Changed("email"):
				if cmd.Flags().Changed("name") {
					p.Name = name
				}
				if cmd.Flags().Changed("email") {
					p.Email = email
				}
			case app.interactive():
				form := newForm(huh.NewGroup(
					huh.NewInput().Title("Name").Value(&p.Name),
					huh.NewInput().Title("Email").Value(&p.Email),
				))
				if err := form.Run(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("pass --name and/or --email")
			}

			saved, err := app.Settings.SetPersonalInfo(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(saved))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&email, "email", "", "Your email")
	return cmd
}

func newWorkDaysCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workdays",
		Short: "Show or choose the weekdays you work",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showWorkDays(cmd, app)
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the selected working days",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showWorkDays(cmd, app)
			},
		},
		newWorkDaysSetCmd(app),
	)
	return cmd
}

func showWorkDays(cmd *cobra.Command, app *App) error {
	days, err := app.Settings.WorkDays(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkDays(days))
	return nil
}

func newWorkDaysSetCmd(app *App) *cobra.Command {
	var days []string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the working-day selection (0=Sunday .. 6=Saturday)",
		Example: "  hourlog workdays set --days 1,2,3,4,5\n" +
			"  hourlog workdays set --days mon,wed,fri",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var set domain.WorkDaySet
			switch {
			case cmd.Flags().Changed("days"):
				set = parseWeekdays(days)
			case app.interactive():
				current, err := app.Settings.WorkDays(ctx)
				if err != nil {
					return err
				}
				selected := current.Days()
				if err := workDaysForm(&selected).Run(); err != nil {
					return err
				}
				set = domain.NewWorkDaySet(selected...)
			default:
				return fmt.Errorf("pass --days")
			}

			if err := app.Settings.SetWorkDays(ctx, set); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkDays(set))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&days, "days", nil, "Weekdays as numbers or names, comma separated (empty clears)")
	return cmd
}

var weekdayNames = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

// parseWeekdays reads weekday indices or names; anything else is dropped.
func parseWeekdays(values []string) domain.WorkDaySet {
	var set domain.WorkDaySet
	for _, raw := range values {
		v := strings.ToLower(strings.TrimSpace(raw))
		if v == "" {
			continue
		}
		if len(v) >= 3 {
			if d, ok := weekdayNames[v[:3]]; ok {
				set = set.With(d)
				continue
			}
		}
		if d := domain.ParseIntOrZero(v); d != 0 || v == "0" {
			set = set.With(d)
		}
	}
	return set
}

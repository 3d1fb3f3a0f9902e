package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/hourlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var month monthFlag

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the month's hours, goal and daily pace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := app.now()

			s, err := app.Progress.MonthSummary(ctx, month.Resolve(now), now)
			if err != nil {
				return err
			}
			info, err := app.Settings.PersonalInfo(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMonthSummary(info, *s))
			return nil
		},
	}
	addMonthFlag(cmd.Flags(), &month)
	return cmd
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/hourlog/internal/export"
	"github.com/spf13/cobra"
)

func newShareCmd(app *App) *cobra.Command {
	var month monthFlag
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print the month report as a shareable message",
		Long: "Print the month report as a plain-text message ready to paste.\n" +
			"With --xlsx, also write the month's reports and summary to a workbook.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := app.now()
			ref := month.Resolve(now)

			s, err := app.Progress.MonthSummary(ctx, ref, now)
			if err != nil {
				return err
			}
			info, err := app.Settings.PersonalInfo(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), export.ShareText(ref, info, *s))

			if xlsxPath == "" {
				return nil
			}
			reports, err := app.Reports.ListMonth(ctx, ref)
			if err != nil {
				return err
			}
			f, err := os.Create(xlsxPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", xlsxPath, err)
			}
			if err := export.WriteWorkbook(f, ref, info, reports, *s); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", xlsxPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Workbook written to %s\n", xlsxPath)
			return nil
		},
	}
	addMonthFlag(cmd.Flags(), &month)
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write an .xlsx workbook to this path")
	return cmd
}

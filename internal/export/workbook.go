package export

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/progress"
	"github.com/xuri/excelize/v2"
)

const (
	ReportsSheet = "Reports"
	SummarySheet = "Summary"
)

var reportHeader = []string{"Date", "Duration", "Minutes", "Studies", "Observations"}

// WriteWorkbook writes an xlsx file with one row per report and a summary
// sheet for the month. Reports are written in the order given.
func WriteWorkbook(w io.Writer, period time.Time, info domain.PersonalInfo, reports []*domain.Report, s progress.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", ReportsSheet)
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := writeReports(f, reports, header); err != nil {
		return err
	}
	if err := writeSummary(f, period, info, s, header); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeReports(f *excelize.File, reports []*domain.Report, headerStyle int) error {
	if err := setRow(f, ReportsSheet, 1, toAny(reportHeader)); err != nil {
		return err
	}
	if err := f.SetCellStyle(ReportsSheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	for i, r := range reports {
		row := []any{
			r.Date.Format(time.DateOnly),
			progress.FormatDuration(r.Duration),
			r.Duration,
			r.StudyHours,
			r.Observations,
		}
		if err := setRow(f, ReportsSheet, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(ReportsSheet, "A", "D", 12); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(ReportsSheet, "E", "E", 48); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, period time.Time, info domain.PersonalInfo, s progress.Summary, headerStyle int) error {
	rows := [][]any{
		{Title(period), ""},
		{"Name", info.Name},
		{"Total hours", s.TotalHours},
		{"Studies", s.TotalStudyCount},
	}
	if s.GoalMinutes > 0 {
		rows = append(rows,
			[]any{"Monthly goal", s.GoalHours},
			[]any{"Remaining", s.RemainingHours},
			[]any{"Daily goal", s.DailyGoal},
			[]any{"Working days left", s.WorkingDaysLeft},
		)
	}
	for i, row := range rows {
		if err := setRow(f, SummarySheet, i+1, row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("styling title: %w", err)
	}
	if err := f.SetColWidth(SummarySheet, "A", "B", 28); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("%s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/hourlog/internal/db"
	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/google/uuid"
)

// SQLiteReportRepo implements ReportRepo using a SQLite database.
type SQLiteReportRepo struct {
	db db.DBTX
}

// NewSQLiteReportRepo creates a new SQLiteReportRepo.
func NewSQLiteReportRepo(conn db.DBTX) *SQLiteReportRepo {
	return &SQLiteReportRepo{db: conn}
}

const reportColumns = `id, date, duration, study_hours, observations, created_at, updated_at`

func (r *SQLiteReportRepo) Create(ctx context.Context, rep *domain.Report) error {
	now := time.Now().UTC().Truncate(time.Second)
	rep.ID = uuid.New().String()
	rep.CreatedAt = now
	rep.UpdatedAt = now

	query := `INSERT INTO reports (` + reportColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rep.ID,
		formatReportDate(rep.Date),
		rep.Duration,
		rep.StudyHours,
		rep.Observations,
		rep.CreatedAt.Format(time.RFC3339),
		rep.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}
	return nil
}

func (r *SQLiteReportRepo) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = ?`
	rep, err := scanReport(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return rep, nil
}

func (r *SQLiteReportRepo) List(ctx context.Context) ([]*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

func (r *SQLiteReportRepo) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, formatReportDate(start), formatReportDate(end))
	if err != nil {
		return nil, fmt.Errorf("listing reports between %s and %s: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), err)
	}
	defer rows.Close()
	return scanReports(rows)
}

func (r *SQLiteReportRepo) Update(ctx context.Context, rep *domain.Report) error {
	if rep.UpdatedAt.IsZero() {
		rep.UpdatedAt = time.Now().UTC()
	}
	query := `UPDATE reports SET date = ?, duration = ?, study_hours = ?, observations = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		formatReportDate(rep.Date),
		rep.Duration,
		rep.StudyHours,
		rep.Observations,
		rep.UpdatedAt.UTC().Format(time.RFC3339),
		rep.ID,
	)
	if err != nil {
		return fmt.Errorf("updating report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating report: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("report %s: %w", rep.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteReportRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return nil
}

func (r *SQLiteReportRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reports`); err != nil {
		return fmt.Errorf("deleting all reports: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*domain.Report, error) {
	var rep domain.Report
	var dateStr, createdStr, updatedStr string
	if err := row.Scan(&rep.ID, &dateStr, &rep.Duration, &rep.StudyHours, &rep.Observations, &createdStr, &updatedStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}

	var err error
	if rep.Date, err = parseReportDate(dateStr); err != nil {
		return nil, err
	}
	if rep.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if rep.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rep, nil
}

func scanReports(rows *sql.Rows) ([]*domain.Report, error) {
	var reports []*domain.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	return reports, nil
}

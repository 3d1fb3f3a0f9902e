package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/hourlog/internal/db"
	"github.com/alexanderramin/hourlog/internal/domain"
)

// SQLiteGoalRepo stores the monthly goal in the single 'default' row of
// the goals table.
type SQLiteGoalRepo struct {
	db db.DBTX
}

func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

// Get returns the stored goal. A missing row reads as "no goal".
func (r *SQLiteGoalRepo) Get(ctx context.Context) (domain.MonthlyGoal, error) {
	var g domain.MonthlyGoal
	err := r.db.QueryRowContext(ctx, `SELECT monthly_minutes FROM goals WHERE id = ?`, domain.SingletonID).
		Scan(&g.MonthlyMinutes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.MonthlyGoal{}, nil
		}
		return domain.MonthlyGoal{}, fmt.Errorf("scanning goal: %w", err)
	}
	return g, nil
}

func (r *SQLiteGoalRepo) Set(ctx context.Context, g domain.MonthlyGoal) error {
	query := `INSERT OR REPLACE INTO goals (id, monthly_minutes, updated_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, domain.SingletonID, domain.CoerceNonNegative(g.MonthlyMinutes), nowUTC()); err != nil {
		return fmt.Errorf("upserting goal: %w", err)
	}
	return nil
}

// SQLitePersonalInfoRepo stores the single personal-info record.
type SQLitePersonalInfoRepo struct {
	db db.DBTX
}

func NewSQLitePersonalInfoRepo(conn db.DBTX) *SQLitePersonalInfoRepo {
	return &SQLitePersonalInfoRepo{db: conn}
}

func (r *SQLitePersonalInfoRepo) Get(ctx context.Context) (domain.PersonalInfo, error) {
	var p domain.PersonalInfo
	err := r.db.QueryRowContext(ctx, `SELECT name, email FROM personal_info WHERE id = ?`, domain.SingletonID).
		Scan(&p.Name, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PersonalInfo{}, nil
		}
		return domain.PersonalInfo{}, fmt.Errorf("scanning personal info: %w", err)
	}
	return p, nil
}

func (r *SQLitePersonalInfoRepo) Set(ctx context.Context, p domain.PersonalInfo) error {
	query := `INSERT OR REPLACE INTO personal_info (id, name, email, updated_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, domain.SingletonID, p.Name, p.Email, nowUTC()); err != nil {
		return fmt.Errorf("upserting personal info: %w", err)
	}
	return nil
}

// SQLiteWorkDayRepo keeps one row per weekday with a selection flag.
type SQLiteWorkDayRepo struct {
	db db.DBTX
}

func NewSQLiteWorkDayRepo(conn db.DBTX) *SQLiteWorkDayRepo {
	return &SQLiteWorkDayRepo{db: conn}
}

func (r *SQLiteWorkDayRepo) Get(ctx context.Context) (domain.WorkDaySet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT day_of_week FROM work_days WHERE is_selected = 1`)
	if err != nil {
		return 0, fmt.Errorf("listing work days: %w", err)
	}
	defer rows.Close()

	var set domain.WorkDaySet
	for rows.Next() {
		var d int
		if err := rows.Scan(&d); err != nil {
			return 0, fmt.Errorf("scanning work day: %w", err)
		}
		set = set.With(d)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterating work days: %w", err)
	}
	return set, nil
}

// Set writes all seven rows, so a missing weekday row is recreated.
func (r *SQLiteWorkDayRepo) Set(ctx context.Context, days domain.WorkDaySet) error {
	query := `INSERT OR REPLACE INTO work_days (day_of_week, is_selected, updated_at) VALUES (?, ?, ?)`
	now := nowUTC()
	for d := 0; d <= 6; d++ {
		if _, err := r.db.ExecContext(ctx, query, d, boolToInt(days.Has(d)), now); err != nil {
			return fmt.Errorf("updating work day %d: %w", d, err)
		}
	}
	return nil
}

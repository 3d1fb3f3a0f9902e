package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/hourlog/internal/db"
)

// Store bundles the repositories for every record kind over one
// connection or transaction.
type Store struct {
	conn         db.DBTX
	Reports      ReportRepo
	Goals        GoalRepo
	PersonalInfo PersonalInfoRepo
	WorkDays     WorkDayRepo
}

// NewStore wires SQLite repositories over conn. Pass the tx handed out by
// a UnitOfWork to get a transaction-scoped store.
func NewStore(conn db.DBTX) *Store {
	return &Store{
		conn:         conn,
		Reports:      NewSQLiteReportRepo(conn),
		Goals:        NewSQLiteGoalRepo(conn),
		PersonalInfo: NewSQLitePersonalInfoRepo(conn),
		WorkDays:     NewSQLiteWorkDayRepo(conn),
	}
}

// ClearAll deletes every record and reseeds the defaults: no goal, empty
// personal info and seven unselected weekdays.
func (s *Store) ClearAll(ctx context.Context) error {
	for _, table := range []string{"reports", "goals", "personal_info", "work_days"} {
		if _, err := s.conn.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	if err := db.SeedDefaults(ctx, s.conn); err != nil {
		return fmt.Errorf("reseeding defaults: %w", err)
	}
	return nil
}

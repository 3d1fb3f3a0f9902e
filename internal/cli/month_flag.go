package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hourlog/internal/progress"
	"github.com/spf13/pflag"
)

const monthLayout = "2006-01"

// monthFlag is a pflag.Value holding a month as YYYY-MM. Unset, it
// resolves to the current month.
type monthFlag struct {
	t   time.Time
	set bool
}

var _ pflag.Value = (*monthFlag)(nil)

func (m *monthFlag) String() string {
	if !m.set {
		return ""
	}
	return m.t.Format(monthLayout)
}

func (m *monthFlag) Set(s string) error {
	t, err := time.ParseInLocation(monthLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return fmt.Errorf("month must be YYYY-MM, got %q", s)
	}
	m.t, m.set = t, true
	return nil
}

func (m *monthFlag) Type() string { return "month" }

// Resolve returns the selected month, or now's month when unset.
func (m *monthFlag) Resolve(now time.Time) time.Time {
	if m.set {
		return m.t
	}
	return progress.StartOfMonth(now)
}

func addMonthFlag(fs *pflag.FlagSet, m *monthFlag) {
	fs.VarP(m, "month", "m", "Month to show (YYYY-MM, default current)")
}

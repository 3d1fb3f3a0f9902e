package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
)

// ErrInvalidBackup is the single error reported for any malformed backup.
var ErrInvalidBackup = errors.New("invalid backup format")

// Payload is the restorable content of one data section. Nil fields were
// absent or unusable in the document and are skipped on restore.
type Payload struct {
	Reports      []domain.ReportInput
	Goal         *domain.MonthlyGoal
	PersonalInfo *domain.PersonalInfo
	WorkDays     *domain.WorkDaySet
}

// Backup is a parsed envelope. Legacy is set for 1.0.0 documents and is
// replayed after Payload.
type Backup struct {
	Version   string
	Timestamp string
	Payload   Payload
	Legacy    *Payload
}

// Validate reports whether raw is a JSON object whose version, timestamp
// and data keys are all present and non-empty.
func Validate(raw []byte) bool {
	_, err := topLevel(raw)
	return err == nil
}

// Parse validates raw and extracts everything a restore needs. Numeric
// fields are coerced to non-negative integers and strings are trimmed.
func Parse(raw []byte, now time.Time) (*Backup, error) {
	top, err := topLevel(raw)
	if err != nil {
		return nil, err
	}

	var b Backup
	_ = json.Unmarshal(top["version"], &b.Version)
	_ = json.Unmarshal(top["timestamp"], &b.Timestamp)

	var data map[string]any
	if err := json.Unmarshal(top["data"], &data); err != nil {
		// data is truthy but not an object: nothing to restore.
		data = map[string]any{}
	}

	p, err := parseSection(data, "reports", "goals", "personalInfo", "workDays", false, now)
	if err != nil {
		return nil, err
	}
	b.Payload = p

	if b.Version == LegacyVersion {
		legacy, err := parseSection(data, LegacyReportsKey, LegacyGoalsKey, LegacyPersonalInfoKey, LegacyWorkDaysKey, true, now)
		if err != nil {
			return nil, err
		}
		b.Legacy = &legacy
	}
	return &b, nil
}

func topLevel(raw []byte) (map[string]json.RawMessage, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	for _, key := range []string{"version", "timestamp", "data"} {
		if !truthy(top[key]) {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidBackup, key)
		}
	}
	return top, nil
}

// truthy mirrors how the backup format has always been checked: absent,
// null, false, 0 and "" all count as missing.
func truthy(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	switch string(v) {
	case "", "null", "false", `""`:
		return false
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return f != 0
	}
	return true
}

func parseSection(data map[string]any, reportsKey, goalsKey, infoKey, daysKey string, legacy bool, now time.Time) (Payload, error) {
	var p Payload

	if info, ok := data[infoKey].(map[string]any); ok {
		pi := domain.PersonalInfo{
			Name:  domain.StringFromAny(info["name"]),
			Email: domain.StringFromAny(info["email"]),
		}
		p.PersonalInfo = &pi
	}

	if goals, ok := data[goalsKey].(map[string]any); ok {
		if minutes, isNum := goals["monthlyHours"].(float64); isNum && (!legacy || minutes != 0) {
			g := domain.MonthlyGoal{MonthlyMinutes: domain.CoerceNonNegative(domain.IntFromAny(minutes))}
			p.Goal = &g
		}
	}

	if set, ok := domain.WeekdaysFromAny(data[daysKey]); ok {
		p.WorkDays = &set
	}

	if items, ok := data[reportsKey].([]any); ok {
		p.Reports = make([]domain.ReportInput, 0, len(items))
		for i, item := range items {
			rec, ok := item.(map[string]any)
			if !ok {
				return Payload{}, fmt.Errorf("%w: %s[%d] is not an object", ErrInvalidBackup, reportsKey, i)
			}
			in, err := reportInput(rec, now)
			if err != nil {
				return Payload{}, fmt.Errorf("%w: %s[%d]: %v", ErrInvalidBackup, reportsKey, i, err)
			}
			p.Reports = append(p.Reports, in)
		}
	}

	return p, nil
}

func reportInput(rec map[string]any, now time.Time) (domain.ReportInput, error) {
	date := now
	if s := domain.StringFromAny(rec["date"]); s != "" {
		parsed, err := ParseDate(s)
		if err != nil {
			return domain.ReportInput{}, err
		}
		date = parsed
	}
	return domain.ReportInput{
		Date:         date,
		Duration:     domain.CoerceNonNegative(domain.IntFromAny(rec["duration"])),
		StudyHours:   domain.CoerceNonNegative(domain.IntFromAny(rec["studyHours"])),
		Observations: domain.StringFromAny(rec["observations"]),
	}, nil
}

// ParseDate accepts ISO-8601 timestamps with or without fractional
// seconds, and bare YYYY-MM-DD dates (read as local midnight).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseIntOrZero parses s as a base-10 integer. Blank, malformed and
// non-finite input yields 0. Decimal input is truncated toward zero.
func ParseIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

// CoerceNonNegative clamps negative values to 0.
func CoerceNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// IntFromAny converts a decoded JSON value into an int, returning 0 for
// anything that is not a finite number or a numeric string.
func IntFromAny(v any) int {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case string:
		return ParseIntOrZero(n)
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// StringFromAny converts a decoded JSON value into a trimmed string;
// nil and non-string values become "".
func StringFromAny(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// WeekdaysFromAny extracts valid weekday indices from a decoded JSON array.
// Non-integer and out-of-range entries are dropped.
func WeekdaysFromAny(v any) (WorkDaySet, bool) {
	arr, ok := v.([]any)
	if !ok {
		return 0, false
	}
	var s WorkDaySet
	for _, item := range arr {
		f, ok := item.(float64)
		if !ok || f != math.Trunc(f) {
			continue
		}
		s = s.With(int(f))
	}
	return s, true
}

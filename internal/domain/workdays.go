package domain

import (
	"strings"
	"time"
)

// WorkDaySet is an immutable set of weekdays (0 = Sunday .. 6 = Saturday)
// on which progress toward the monthly goal is expected. The zero value is
// the empty set.
type WorkDaySet uint8

const allWeekdaysMask WorkDaySet = 1<<7 - 1

// NewWorkDaySet builds a set from weekday indices. Values outside [0,6]
// are dropped.
func NewWorkDaySet(days ...int) WorkDaySet {
	var s WorkDaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// AllWeekdays returns the set containing every weekday.
func AllWeekdays() WorkDaySet {
	return allWeekdaysMask
}

// ValidWeekday reports whether d is a weekday index in [0,6].
func ValidWeekday(d int) bool {
	return d >= 0 && d <= 6
}

func (s WorkDaySet) With(d int) WorkDaySet {
	if !ValidWeekday(d) {
		return s
	}
	return s | 1<<uint(d)
}

func (s WorkDaySet) Without(d int) WorkDaySet {
	if !ValidWeekday(d) {
		return s
	}
	return s &^ (1 << uint(d))
}

func (s WorkDaySet) Has(d int) bool {
	return ValidWeekday(d) && s&(1<<uint(d)) != 0
}

// Contains reports whether wd is a working day.
func (s WorkDaySet) Contains(wd time.Weekday) bool {
	return s.Has(int(wd))
}

func (s WorkDaySet) IsEmpty() bool {
	return s&allWeekdaysMask == 0
}

func (s WorkDaySet) Len() int {
	n := 0
	for d := 0; d <= 6; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Days returns the selected weekday indices in ascending order. The result
// is never nil so it always serializes as a JSON array.
func (s WorkDaySet) Days() []int {
	days := make([]int, 0, 7)
	for d := 0; d <= 6; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// String renders the set as short weekday names, e.g. "Mon,Tue".
func (s WorkDaySet) String() string {
	if s.IsEmpty() {
		return "none"
	}
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, time.Weekday(d).String()[:3])
	}
	return strings.Join(names, ",")
}

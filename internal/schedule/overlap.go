// Package schedule validates booking time slots against the existing
// booking collection. Slots are same-day [start, end) ranges.
package schedule

import (
	"fmt"
	"time"

	"hallbook/internal/domain"
)

// MinutesOfDay parses an "HH:MM" clock value into minutes since midnight.
func MinutesOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Overlaps reports whether two half-open minute ranges intersect.
// Touching boundaries do not overlap and zero-length ranges never do.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// ValidRange reports whether start/end form a usable same-day range.
// Overnight spans (end before start) are rejected.
func ValidRange(start, end string) error {
	s, err := MinutesOfDay(start)
	if err != nil {
		return err
	}
	e, err := MinutesOfDay(end)
	if err != nil {
		return err
	}
	if e <= s {
		return fmt.Errorf("end time %s must be after start time %s", end, start)
	}
	return nil
}

// FindConflict scans existing bookings for one whose slot on the same
// function date intersects the candidate slot. excludeID skips the
// booking being edited. It returns the id of the first conflicting
// booking, or false when the slot is free.
//
// The check is advisory: it runs at submission time, with no lock held
// between validation and the write.
func FindConflict(date, start, end string, existing []domain.Booking, excludeID string) (string, bool) {
	s, err := MinutesOfDay(start)
	if err != nil {
		return "", false
	}
	e, err := MinutesOfDay(end)
	if err != nil {
		return "", false
	}

	for i := range existing {
		b := &existing[i]
		if b.ID == excludeID || b.FunctionDate != date {
			continue
		}
		bs, err := MinutesOfDay(b.StartTime)
		if err != nil {
			continue
		}
		be, err := MinutesOfDay(b.EndTime)
		if err != nil {
			continue
		}
		if Overlaps(s, e, bs, be) {
			return b.ID, true
		}
	}
	return "", false
}

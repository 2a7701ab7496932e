package domain

import (
	"time"
)

// DateRange is an inclusive span of calendar days.
// Start is midnight of the first day; End is 23:59:59 of the last day.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range covering every day from startDay to endDay.
// Only the calendar dates of the arguments are used.
func NewDateRange(startDay, endDay time.Time) DateRange {
	return DateRange{
		Start: StartOfDay(startDay),
		End:   EndOfDay(endDay),
	}
}

// StartOfDay returns 00:00:00 of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

// IsValid reports whether End is not before Start.
func (r DateRange) IsValid() bool {
	return !r.End.Before(r.Start)
}

// ExclusiveEnd is midnight of the day after End, built from calendar
// fields so a DST change at midnight cannot move it off the day boundary.
// Queries use [Start, ExclusiveEnd) so sub-second timestamps late on the
// last day are still included.
func (r DateRange) ExclusiveEnd() time.Time {
	y, m, d := r.End.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, r.End.Location())
}

// Days returns the number of calendar days covered.
func (r DateRange) Days() int {
	if !r.IsValid() {
		return 0
	}
	// date arithmetic in UTC avoids DST making a day 23 or 25 hours long
	sy, sm, sd := r.Start.Date()
	ey, em, ed := r.End.Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

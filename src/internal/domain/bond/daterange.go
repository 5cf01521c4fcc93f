package bond

import (
	"time"
)

// ===========================
// DateRange Value Object
// ===========================

// bankingYearDays is the 360-day banking-year convention used for all
// duration-in-years math. Calendar years are never used here.
const bankingYearDays = 360

// DateRange is an inclusive-start, exclusive-end date interval with
// start <= end enforced at construction. Both bounds are truncated to
// midnight UTC so day arithmetic is exact.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange validates and wraps an interval.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange.WithContext(
			"start", start.Format(time.DateOnly),
			"end", end.Format(time.DateOnly),
		)
	}
	return DateRange{start: start, end: end}, nil
}

// Start returns the inclusive start date.
func (d DateRange) Start() time.Time {
	return d.start
}

// End returns the exclusive end date.
func (d DateRange) End() time.Time {
	return d.end
}

// Days returns the interval length in calendar days.
func (d DateRange) Days() int {
	return int(d.end.Sub(d.start).Hours() / 24)
}

// Years360 returns the interval length in banking years (days / 360).
func (d DateRange) Years360() float64 {
	return float64(d.Days()) / bankingYearDays
}

// Contains reports whether the date falls in [start, end).
func (d DateRange) Contains(date time.Time) bool {
	date = truncateToDay(date)
	return !date.Before(d.start) && date.Before(d.end)
}

// EndedBefore reports whether the interval is fully past the given date.
func (d DateRange) EndedBefore(date time.Time) bool {
	return d.end.Before(truncateToDay(date))
}

// Equals compares both bounds.
func (d DateRange) Equals(other DateRange) bool {
	return d.start.Equal(other.start) && d.end.Equal(other.end)
}

func truncateToDay(t time.Time) time.Time {
	y, m, day := t.UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

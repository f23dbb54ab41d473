// Package stay provides half-open calendar-day range arithmetic. Every
// conflict check and per-night price breakdown in the system is built on the
// single overlap predicate defined here.
package stay

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("departure must be after arrival")

const ISODate = "2006-01-02"

// DateRange is a half-open interval [start, end) at calendar-day granularity.
// A checkout on day D never conflicts with a check-in on day D.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s := DateOnly(start)
	e := DateOnly(end)
	if !e.After(s) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{start: s, end: e}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

func (r DateRange) NightCount() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// Nights enumerates one date per night, start inclusive through end exclusive,
// ascending.
func (r DateRange) Nights() []time.Time {
	nights := make([]time.Time, 0, r.NightCount())
	for d := r.start; d.Before(r.end); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

func (r DateRange) Contains(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(r.start) && d.Before(r.end)
}

func (r DateRange) Overlaps(other DateRange) bool {
	return Overlaps(r.start, r.end, other.start, other.end)
}

func (r DateRange) Equal(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(ISODate), r.end.Format(ISODate))
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DateOnly strips the time-of-day component, keeping the calendar date as
// observed in the value's own location. All stored ranges are day-granular.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(ISODate, s, time.UTC)
}

package timerange

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format for times of day.
	ClockLayout = "15:04"
)

var (
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidClock      = errors.New("time must be in HH:MM format")
	ErrStartNotBeforeEnd = errors.New("start time must be before end time")
)

// TimeRange is a half-open interval [Start, End) on a single calendar date.
// Date, Start and End keep the zero-padded wire formats (YYYY-MM-DD, HH:MM),
// so plain string comparison orders them correctly.
type TimeRange struct {
	Date  string
	Start string
	End   string
}

// New validates the raw strings and builds a TimeRange.
// It rejects malformed dates/times and any range where start >= end.
// Overnight spans are out of scope: both bounds belong to Date.
func New(date, start, end string) (TimeRange, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return TimeRange{}, ErrInvalidDate
	}
	if _, err := time.Parse(ClockLayout, start); err != nil {
		return TimeRange{}, ErrInvalidClock
	}
	if _, err := time.Parse(ClockLayout, end); err != nil {
		return TimeRange{}, ErrInvalidClock
	}
	if start >= end {
		return TimeRange{}, ErrStartNotBeforeEnd
	}
	return TimeRange{Date: date, Start: start, End: end}, nil
}

// Overlaps reports whether two ranges intersect.
// Ranges on different dates never overlap. On the same date the intervals
// are half-open, so a range ending at 10:00 does not overlap one starting
// at 10:00.
func (r TimeRange) Overlaps(other TimeRange) bool {
	if r.Date != other.Date {
		return false
	}
	return r.Start < other.End && other.Start < r.End
}

// StartTime materializes the range's lower bound as a time.Time in loc.
func (r TimeRange) StartTime(loc *time.Location) time.Time {
	t, _ := time.ParseInLocation(DateLayout+" "+ClockLayout, r.Date+" "+r.Start, loc)
	return t
}

// EndTime materializes the range's upper bound as a time.Time in loc.
func (r TimeRange) EndTime(loc *time.Location) time.Time {
	t, _ := time.ParseInLocation(DateLayout+" "+ClockLayout, r.Date+" "+r.End, loc)
	return t
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s %s-%s", r.Date, r.Start, r.End)
}

// FromTimes rebuilds a TimeRange from stored timestamps. The timestamps are
// assumed to fall on the same calendar date in loc; overnight rows cannot be
// created through New, so this is the inverse of StartTime/EndTime.
func FromTimes(start, end time.Time, loc *time.Location) TimeRange {
	s := start.In(loc)
	e := end.In(loc)
	return TimeRange{
		Date:  s.Format(DateLayout),
		Start: s.Format(ClockLayout),
		End:   e.Format(ClockLayout),
	}
}

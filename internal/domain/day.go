package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DayLayout is the persisted and user-facing calendar day format.
const DayLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid calendar date")

// Day is a calendar day with no time-of-day component.
// The zero value is not a valid day; check IsZero.
type Day struct {
	t time.Time
}

// NewDay builds a Day. Out-of-range values normalize the way time.Date does.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return NewDay(y, m, d)
}

// Today returns the local calendar day.
func Today() Day {
	return DayOf(time.Now())
}

// ParseDay parses a YYYY-MM-DD string. Anything that is not a real
// calendar date (2025-02-30, 2025-13-01, "tomorrow") is rejected.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return DayOf(t), nil
}

func (d Day) IsZero() bool { return d.t.IsZero() }

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DayLayout)
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time { return d.t }

func (d Day) Year() int { return d.t.Year() }
func (d Day) Month() time.Month { return d.t.Month() }
func (d Day) DayOfMonth() int { return d.t.Day() }
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

// AddDays returns the day n days later (earlier when n < 0).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

func (d Day) Before(o Day) bool { return d.t.Before(o.t) }
func (d Day) After(o Day) bool { return d.t.After(o.t) }
func (d Day) Equal(o Day) bool { return d.t.Equal(o.t) }

// Within reports whether start <= d <= end.
func (d Day) Within(start, end Day) bool {
	return !d.Before(start) && !d.After(end)
}

// DaysUntil returns the signed number of whole days from d to o.
func (d Day) DaysUntil(o Day) int {
	return int(o.t.Sub(d.t).Hours() / 24)
}

// Format formats the day with a time layout, e.g. "Mon, Jan 2, 2006".
func (d Day) Format(layout string) string {
	return d.t.Format(layout)
}

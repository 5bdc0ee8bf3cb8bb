package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var shortMonths = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// DayMonth is a day of month without a year, as written in a plan ("3 Dec").
type DayMonth struct {
	Day   int
	Month time.Month
}

// ParseDayMonth parses "3 Dec". Month names are matched on their first
// three letters, case-insensitively.
func ParseDayMonth(s string) (DayMonth, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return DayMonth{}, fmt.Errorf("day-month %q: expected \"<day> <month>\"", s)
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return DayMonth{}, fmt.Errorf("day-month %q: invalid day: %w", s, err)
	}
	name := strings.ToLower(fields[1])
	if len(name) > 3 {
		name = name[:3]
	}
	month, ok := shortMonths[name]
	if !ok {
		return DayMonth{}, fmt.Errorf("day-month %q: unknown month %q", s, fields[1])
	}
	if day < 1 || day > 31 {
		return DayMonth{}, fmt.Errorf("day-month %q: day out of range", s)
	}
	return DayMonth{Day: day, Month: month}, nil
}

func (dm DayMonth) String() string {
	return fmt.Sprintf("%d %s", dm.Day, dm.Month.String()[:3])
}

// DateRange is an inclusive pair of plan days, e.g. "29 Nov - 2 Dec".
type DateRange struct {
	Start DayMonth
	End   DayMonth
}

// ParseDateRange parses "<day> <month> - <day> <month>".
func ParseDateRange(s string) (DateRange, error) {
	parts := strings.Split(s, " - ")
	if len(parts) != 2 {
		return DateRange{}, fmt.Errorf("date range %q: expected \"<start> - <end>\"", s)
	}
	start, err := ParseDayMonth(parts[0])
	if err != nil {
		return DateRange{}, fmt.Errorf("date range %q: %w", s, err)
	}
	end, err := ParseDayMonth(parts[1])
	if err != nil {
		return DateRange{}, fmt.Errorf("date range %q: %w", s, err)
	}
	return DateRange{Start: start, End: end}, nil
}

func (r DateRange) String() string {
	return r.Start.String() + " - " + r.End.String()
}

// Season anchors year-less plan dates to calendar years. A plan that
// starts in November 2025 has Season{2025, time.November}: months from
// November onward fall in 2025, earlier months roll over into 2026.
type Season struct {
	StartYear  int
	StartMonth time.Month
}

// YearOf returns the calendar year a month belongs to within the season.
func (s Season) YearOf(m time.Month) int {
	if m >= s.StartMonth {
		return s.StartYear
	}
	return s.StartYear + 1
}

// Resolve places a day-month on the calendar.
func (s Season) Resolve(dm DayMonth) Day {
	return NewDay(s.YearOf(dm.Month), dm.Month, dm.Day)
}

// ResolveStrict is Resolve for days that must exist in their year; "30 Feb"
// is rejected instead of rolling into March.
func (s Season) ResolveStrict(dm DayMonth) (Day, error) {
	d := s.Resolve(dm)
	if d.Month() != dm.Month || d.DayOfMonth() != dm.Day {
		return Day{}, fmt.Errorf("%s %d is not a calendar day", dm, s.YearOf(dm.Month))
	}
	return d, nil
}

// BoundsStrict is Bounds with both ends checked by ResolveStrict.
func (s Season) BoundsStrict(r DateRange) (Day, Day, error) {
	start, err := s.ResolveStrict(r.Start)
	if err != nil {
		return Day{}, Day{}, err
	}
	end, err := s.ResolveStrict(r.End)
	if err != nil {
		return Day{}, Day{}, err
	}
	return start, end, nil
}

// Bounds returns the first and last calendar day of r.
func (s Season) Bounds(r DateRange) (Day, Day) {
	return s.Resolve(r.Start), s.Resolve(r.End)
}

// Validate checks that the season can place dates.
func (s Season) Validate() error {
	if s.StartYear <= 0 {
		return fmt.Errorf("season start year must be positive, got %d", s.StartYear)
	}
	if s.StartMonth < time.January || s.StartMonth > time.December {
		return fmt.Errorf("season start month out of range: %d", s.StartMonth)
	}
	return nil
}

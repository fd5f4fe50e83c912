package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	DayKeyLayout = "2006-01-02"
	MonthLayout  = "2006-01"
	daysPerWeek  = 7
)

// Bounds on a single generation. The grid is MaxPeriodDays x MaxRosterSize cells at most.
const (
	MaxPeriodDays = 366
	MaxRosterSize = 1000
)

// Period is a run of consecutive days. Only the civil date of Start is
// used; day keys and weekends are computed in Location (UTC when nil).
type Period struct {
	Start    time.Time
	Days     int
	Location *time.Location
}

func (p Period) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// MonthPeriod covers the whole calendar month.
func MonthPeriod(year int, month time.Month, loc *time.Location) Period {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Period{
		Start:    start,
		Days:     time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day(),
		Location: loc,
	}
}

// ParseMonth parses "YYYY-MM" into a MonthPeriod.
func ParseMonth(value string, loc *time.Location) (Period, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(value))
	if err != nil {
		return Period{}, fmt.Errorf("%w: month %q must be YYYY-MM", ErrInvalidPeriod, value)
	}
	return MonthPeriod(t.Year(), t.Month(), loc), nil
}

// NextMonth returns the month after the one containing now in loc.
func NextMonth(now time.Time, loc *time.Location) Period {
	if loc == nil {
		loc = time.UTC
	}
	y, m, _ := now.In(loc).Date()
	first := time.Date(y, m+1, 1, 0, 0, 0, 0, loc)
	return MonthPeriod(first.Year(), first.Month(), loc)
}

// ParseDayKey parses a day key in loc.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DayKeyLayout, strings.TrimSpace(key), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDayKey, key)
	}
	return t, nil
}

// ParseOffset turns "+09:00", "-0530", "Z" or "UTC" into a fixed zone.
func ParseOffset(value string) (*time.Location, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "Z" || strings.EqualFold(value, "UTC") {
		return time.UTC, nil
	}

	t, err := time.Parse("-07:00", value)
	if err != nil {
		t, err = time.Parse("-0700", value)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOffset, value)
	}

	_, offset := t.Zone()
	return time.FixedZone(FormatOffset(offset), offset), nil
}

// FormatOffset renders an offset in seconds as +HH:MM.
func FormatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

// ResolvePeriod picks the period from either a month, a start day with a
// length, or the month after now.
func ResolvePeriod(month, start string, days int, loc *time.Location, now time.Time) (Period, error) {
	switch {
	case month != "" && start != "":
		return Period{}, fmt.Errorf("%w: give either month or start, not both", ErrInvalidPeriod)
	case month != "":
		return ParseMonth(month, loc)
	case start != "":
		first, err := ParseDayKey(start, loc)
		if err != nil {
			return Period{}, err
		}
		if days <= 0 {
			return Period{}, fmt.Errorf("%w: days must be positive with start", ErrInvalidPeriod)
		}
		if days > MaxPeriodDays {
			return Period{}, ErrPeriodTooLong
		}
		return Period{Start: first, Days: days, Location: loc}, nil
	default:
		return NextMonth(now, loc), nil
	}
}

// GenerateDays lists the days of the period in order.
func GenerateDays(p Period) ([]Day, error) {
	if p.Days <= 0 {
		return nil, ErrInvalidPeriod
	}
	if p.Days > MaxPeriodDays {
		return nil, ErrPeriodTooLong
	}

	loc := p.location()
	y, m, d := p.Start.Date()

	days := make([]Day, 0, p.Days)
	for i := 0; i < p.Days; i++ {
		date := time.Date(y, m, d+i, 0, 0, 0, 0, loc)
		wd := date.Weekday()
		days = append(days, Day{
			Key:     date.Format(DayKeyLayout),
			Date:    date,
			Weekend: wd == time.Saturday || wd == time.Sunday,
		})
	}
	return days, nil
}

// WeekendKeys returns the keys of the weekend days in order.
func WeekendKeys(days []Day) []string {
	var keys []string
	for _, day := range days {
		if day.Weekend {
			keys = append(keys, day.Key)
		}
	}
	return keys
}

func (p Period) MarshalJSON() ([]byte, error) {
	_, offset := p.Start.In(p.location()).Zone()
	return json.Marshal(struct {
		Start  string `json:"start"`
		Days   int    `json:"days"`
		Offset string `json:"offset"`
	}{
		Start:  p.Start.Format(DayKeyLayout),
		Days:   p.Days,
		Offset: FormatOffset(offset),
	})
}
